package m_time_band

import "cloud.google.com/go/spanner"

// Model provides type-safe mutations for the time_bands table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for upserting a time band row.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		Columns,
		[]interface{}{
			data.CourseID,
			data.BandID,
			data.Name,
			data.StartTime,
			data.EndTime,
			data.Active,
		},
	)
}

// DeleteCourseMut creates a mutation deleting every time band of a course.
func (m *Model) DeleteCourseMut(courseID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.KeyRange{
		Start: spanner.Key{courseID},
		End:   spanner.Key{courseID},
		Kind:  spanner.ClosedClosed,
	})
}
