package domain

import (
	"fmt"
	"time"
)

// Layouts for the wire representation of dates and times-of-day.
// Both sort lexicographically, so interval checks are plain string compares.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ParseDate parses a calendar date in UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: %w", s, ErrInvalidDate)
	}
	return t, nil
}

// TeeDateTime combines a date and a time-of-day into a UTC instant.
func TeeDateTime(date, tod string) (time.Time, error) {
	d, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(TimeLayout, tod)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: %w", tod, ErrInvalidTime)
	}
	return d.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute), nil
}

// validTime reports whether s is a well-formed HH:MM time-of-day.
func validTime(s string) bool {
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}

// withinDates reports whether date falls in the inclusive [from, to] window.
// Empty bounds are open.
func withinDates(date, from, to string) bool {
	if from != "" && date < from {
		return false
	}
	if to != "" && date > to {
		return false
	}
	return true
}

// withinTimes reports whether tod falls in the half-open [from, to) window.
// Empty bounds are open. Windows do not wrap midnight.
func withinTimes(tod, from, to string) bool {
	if from != "" && tod < from {
		return false
	}
	if to != "" && tod >= to {
		return false
	}
	return true
}

// ResolveLeadTime returns the lead time in hours for a request: the caller's
// precomputed value when present, otherwise the distance from now to the tee
// time. Negative values (past-due requests) are allowed; they simply fail
// every minimum-lead-time predicate.
func ResolveLeadTime(req QuoteRequest, now time.Time) (float64, error) {
	if req.LeadTimeHours != nil {
		return *req.LeadTimeHours, nil
	}
	tee, err := TeeDateTime(req.Date, req.Time)
	if err != nil {
		return 0, err
	}
	return tee.Sub(now).Hours(), nil
}
