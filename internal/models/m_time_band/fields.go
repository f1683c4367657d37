package m_time_band

// Field name constants for the time_bands table.
const (
	TableName = "time_bands"

	CourseID  = "course_id"
	BandID    = "band_id"
	Name      = "name"
	StartTime = "start_time"
	EndTime   = "end_time"
	Active    = "active"
)

// Columns lists every column for full-row reads.
var Columns = []string{
	CourseID, BandID, Name, StartTime, EndTime, Active,
}
