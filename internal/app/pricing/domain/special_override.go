package domain

// OverrideType selects what a matched special override does to a request.
type OverrideType string

const (
	// OverrideBlock makes the slot unavailable; no price is produced.
	OverrideBlock OverrideType = "block"
	// OverridePrice forces a fixed per-player price, bypassing the rule stack.
	OverridePrice OverrideType = "price"
)

// SpecialOverride is a dated and timed exception (holiday, tournament,
// partial closure) that outranks every price rule unconditionally when
// matched. Among matching overrides the highest priority wins.
type SpecialOverride struct {
	ID           string       `json:"id"`
	CourseID     string       `json:"course_id"`
	Name         string       `json:"name"`
	StartDate    string       `json:"start_date"` // inclusive, YYYY-MM-DD
	EndDate      string       `json:"end_date"`   // inclusive
	StartTime    string       `json:"start_time,omitempty"` // inclusive, HH:MM; empty = whole day
	EndTime      string       `json:"end_time,omitempty"`   // exclusive; empty = whole day
	OverrideType OverrideType `json:"override_type"`
	PriceValue   *Cents       `json:"price_value,omitempty"` // required for price overrides
	Priority     int64        `json:"priority"`
	Active       bool         `json:"active"`
}

// Matches reports whether the override's date interval contains date and its
// time window contains tod.
func (o *SpecialOverride) Matches(date, tod string) bool {
	return withinDates(date, o.StartDate, o.EndDate) && withinTimes(tod, o.StartTime, o.EndTime)
}

// Validate checks structural invariants before the record enters a rule set.
func (o *SpecialOverride) Validate() error {
	if o.CourseID == "" {
		return ErrEmptyCourseID
	}
	if _, err := ParseDate(o.StartDate); err != nil {
		return err
	}
	if _, err := ParseDate(o.EndDate); err != nil {
		return err
	}
	if o.EndDate < o.StartDate {
		return ErrInvalidInterval
	}
	if o.StartTime != "" && !validTime(o.StartTime) {
		return ErrInvalidTime
	}
	if o.EndTime != "" && !validTime(o.EndTime) {
		return ErrInvalidTime
	}
	switch o.OverrideType {
	case OverrideBlock:
	case OverridePrice:
		if o.PriceValue == nil {
			return ErrOverridePriceMissing
		}
	default:
		return ErrUnknownOverrideType
	}
	return nil
}

// Clone returns a deep copy; the price pointer is not shared.
func (o *SpecialOverride) Clone() SpecialOverride {
	c := *o
	c.PriceValue = cloneCents(o.PriceValue)
	return c
}
