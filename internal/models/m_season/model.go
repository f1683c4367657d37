package m_season

import "cloud.google.com/go/spanner"

// Model provides type-safe mutations for the seasons table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for upserting a season row.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		Columns,
		[]interface{}{
			data.CourseID,
			data.SeasonID,
			data.Name,
			data.StartDate,
			data.EndDate,
			data.Priority,
			data.Active,
		},
	)
}

// DeleteCourseMut creates a mutation deleting every season of a course.
func (m *Model) DeleteCourseMut(courseID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.KeyRange{
		Start: spanner.Key{courseID},
		End:   spanner.Key{courseID},
		Kind:  spanner.ClosedClosed,
	})
}
