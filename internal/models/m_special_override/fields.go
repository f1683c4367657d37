package m_special_override

// Field name constants for the special_overrides table.
const (
	TableName = "special_overrides"

	CourseID     = "course_id"
	OverrideID   = "override_id"
	Name         = "name"
	StartDate    = "start_date"
	EndDate      = "end_date"
	StartTime    = "start_time"
	EndTime      = "end_time"
	OverrideType = "override_type"
	PriceValue   = "price_value"
	Priority     = "priority"
	Active       = "active"
)

// Columns lists every column for full-row reads.
var Columns = []string{
	CourseID, OverrideID, Name, StartDate, EndDate, StartTime, EndTime,
	OverrideType, PriceValue, Priority, Active,
}
