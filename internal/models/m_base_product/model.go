package m_base_product

import "cloud.google.com/go/spanner"

// Model provides type-safe mutations for the base_products table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for upserting a base product row.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		Columns,
		[]interface{}{
			data.CourseID,
			data.BasePrice,
			data.CartFee,
			data.CaddieFee,
		},
	)
}

// DeleteCourseMut creates a mutation deleting a course's base product.
func (m *Model) DeleteCourseMut(courseID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{courseID})
}
