package m_season

// Data is the database model for one seasons row.
type Data struct {
	CourseID  string `spanner:"course_id"`
	SeasonID  string `spanner:"season_id"`
	Name      string `spanner:"name"`
	StartDate string `spanner:"start_date"`
	EndDate   string `spanner:"end_date"`
	Priority  int64  `spanner:"priority"`
	Active    bool   `spanner:"active"`
}
