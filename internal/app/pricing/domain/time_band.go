package domain

// TimeBand is a named slice of the day ("Early", "Prime", "Twilight") used as
// a rule-matching dimension. Its [StartTime, EndTime) window is half-open and
// does not wrap midnight.
type TimeBand struct {
	ID        string `json:"id"`
	CourseID  string `json:"course_id"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"` // inclusive, HH:MM
	EndTime   string `json:"end_time"`   // exclusive
	Active    bool   `json:"active"`
}

// Contains reports whether the band's half-open window covers tod.
func (b *TimeBand) Contains(tod string) bool {
	return withinTimes(tod, b.StartTime, b.EndTime)
}

// Validate checks structural invariants before the record enters a rule set.
func (b *TimeBand) Validate() error {
	if b.CourseID == "" {
		return ErrEmptyCourseID
	}
	if !validTime(b.StartTime) || !validTime(b.EndTime) {
		return ErrInvalidTime
	}
	if b.EndTime <= b.StartTime {
		return ErrInvalidInterval
	}
	return nil
}
