package m_price_rule

import "cloud.google.com/go/spanner"

// Data is the database model for one price_rules row. Optional predicates
// map to NULL columns.
type Data struct {
	CourseID      string              `spanner:"course_id"`
	RuleID        string              `spanner:"rule_id"`
	Name          string              `spanner:"name"`
	PriceType     string              `spanner:"price_type"`
	PriceValue    string              `spanner:"price_value"`
	Priority      int64               `spanner:"priority"`
	Active        bool                `spanner:"active"`
	EffectiveFrom spanner.NullString  `spanner:"effective_from"`
	EffectiveTo   spanner.NullString  `spanner:"effective_to"`
	SeasonID      spanner.NullString  `spanner:"season_id"`
	TimeBandID    spanner.NullString  `spanner:"time_band_id"`
	DaysOfWeek    []int64             `spanner:"days_of_week"`
	LeadTimeMin   spanner.NullFloat64 `spanner:"lead_time_min"`
	LeadTimeMax   spanner.NullFloat64 `spanner:"lead_time_max"`
	OccupancyMin  spanner.NullInt64   `spanner:"occupancy_min"`
	OccupancyMax  spanner.NullInt64   `spanner:"occupancy_max"`
	PlayersMin    spanner.NullInt64   `spanner:"players_min"`
	PlayersMax    spanner.NullInt64   `spanner:"players_max"`
	MinPrice      spanner.NullInt64   `spanner:"min_price"`
	MaxPrice      spanner.NullInt64   `spanner:"max_price"`
	RoundTo       spanner.NullInt64   `spanner:"round_to"`
	Position      int64               `spanner:"position"`
}
