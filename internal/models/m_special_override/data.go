package m_special_override

import "cloud.google.com/go/spanner"

// Data is the database model for one special_overrides row. Price values are
// stored in integer cents; block overrides carry NULL.
type Data struct {
	CourseID     string             `spanner:"course_id"`
	OverrideID   string             `spanner:"override_id"`
	Name         string             `spanner:"name"`
	StartDate    string             `spanner:"start_date"`
	EndDate      string             `spanner:"end_date"`
	StartTime    spanner.NullString `spanner:"start_time"`
	EndTime      spanner.NullString `spanner:"end_time"`
	OverrideType string             `spanner:"override_type"`
	PriceValue   spanner.NullInt64  `spanner:"price_value"`
	Priority     int64              `spanner:"priority"`
	Active       bool               `spanner:"active"`
}
