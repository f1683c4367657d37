package m_price_rule

import "cloud.google.com/go/spanner"

// Model provides type-safe mutations for the price_rules table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for upserting a price rule row.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		Columns,
		[]interface{}{
			data.CourseID,
			data.RuleID,
			data.Name,
			data.PriceType,
			data.PriceValue,
			data.Priority,
			data.Active,
			data.EffectiveFrom,
			data.EffectiveTo,
			data.SeasonID,
			data.TimeBandID,
			data.DaysOfWeek,
			data.LeadTimeMin,
			data.LeadTimeMax,
			data.OccupancyMin,
			data.OccupancyMax,
			data.PlayersMin,
			data.PlayersMax,
			data.MinPrice,
			data.MaxPrice,
			data.RoundTo,
			data.Position,
		},
	)
}

// DeleteCourseMut creates a mutation deleting every price rule of a course.
func (m *Model) DeleteCourseMut(courseID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.KeyRange{
		Start: spanner.Key{courseID},
		End:   spanner.Key{courseID},
		Kind:  spanner.ClosedClosed,
	})
}
