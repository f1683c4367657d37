package m_price_rule

// Field name constants for the price_rules table.
const (
	TableName = "price_rules"

	CourseID      = "course_id"
	RuleID        = "rule_id"
	Name          = "name"
	PriceType     = "price_type"
	PriceValue    = "price_value"
	Priority      = "priority"
	Active        = "active"
	EffectiveFrom = "effective_from"
	EffectiveTo   = "effective_to"
	SeasonID      = "season_id"
	TimeBandID    = "time_band_id"
	DaysOfWeek    = "days_of_week"
	LeadTimeMin   = "lead_time_min"
	LeadTimeMax   = "lead_time_max"
	OccupancyMin  = "occupancy_min"
	OccupancyMax  = "occupancy_max"
	PlayersMin    = "players_min"
	PlayersMax    = "players_max"
	MinPrice      = "min_price"
	MaxPrice      = "max_price"
	RoundTo       = "round_to"

	// Position records the rule's slot in the course's encounter order, which
	// breaks priority ties. Loads order by it so a save/load round trip
	// reproduces calculations exactly.
	Position = "position"
)

// Columns lists every column for full-row reads.
var Columns = []string{
	CourseID, RuleID, Name, PriceType, PriceValue, Priority, Active,
	EffectiveFrom, EffectiveTo, SeasonID, TimeBandID, DaysOfWeek,
	LeadTimeMin, LeadTimeMax, OccupancyMin, OccupancyMax,
	PlayersMin, PlayersMax, MinPrice, MaxPrice, RoundTo, Position,
}
