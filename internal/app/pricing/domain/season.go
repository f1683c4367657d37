package domain

// Season is a named, dated pricing period scoped to a course. Multiple
// seasons may overlap a date; the highest-priority active one applies.
type Season struct {
	ID        string `json:"id"`
	CourseID  string `json:"course_id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"` // inclusive, YYYY-MM-DD
	EndDate   string `json:"end_date"`   // inclusive
	Priority  int64  `json:"priority"`
	Active    bool   `json:"active"`
}

// Contains reports whether the season's inclusive date interval covers date.
func (s *Season) Contains(date string) bool {
	return withinDates(date, s.StartDate, s.EndDate)
}

// Validate checks structural invariants before the record enters a rule set.
func (s *Season) Validate() error {
	if s.CourseID == "" {
		return ErrEmptyCourseID
	}
	if _, err := ParseDate(s.StartDate); err != nil {
		return err
	}
	if _, err := ParseDate(s.EndDate); err != nil {
		return err
	}
	if s.EndDate < s.StartDate {
		return ErrInvalidInterval
	}
	return nil
}
