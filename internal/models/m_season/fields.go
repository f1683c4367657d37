package m_season

// Field name constants for the seasons table.
const (
	TableName = "seasons"

	CourseID  = "course_id"
	SeasonID  = "season_id"
	Name      = "name"
	StartDate = "start_date"
	EndDate   = "end_date"
	Priority  = "priority"
	Active    = "active"
)

// Columns lists every column for full-row reads.
var Columns = []string{
	CourseID, SeasonID, Name, StartDate, EndDate, Priority, Active,
}
