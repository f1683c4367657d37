package m_special_override

import "cloud.google.com/go/spanner"

// Model provides type-safe mutations for the special_overrides table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for upserting a special override row.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		Columns,
		[]interface{}{
			data.CourseID,
			data.OverrideID,
			data.Name,
			data.StartDate,
			data.EndDate,
			data.StartTime,
			data.EndTime,
			data.OverrideType,
			data.PriceValue,
			data.Priority,
			data.Active,
		},
	)
}

// DeleteCourseMut creates a mutation deleting every override of a course.
func (m *Model) DeleteCourseMut(courseID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.KeyRange{
		Start: spanner.Key{courseID},
		End:   spanner.Key{courseID},
		Kind:  spanner.ClosedClosed,
	})
}
