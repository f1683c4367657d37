package m_time_band

// Data is the database model for one time_bands row.
type Data struct {
	CourseID  string `spanner:"course_id"`
	BandID    string `spanner:"band_id"`
	Name      string `spanner:"name"`
	StartTime string `spanner:"start_time"`
	EndTime   string `spanner:"end_time"`
	Active    bool   `spanner:"active"`
}
