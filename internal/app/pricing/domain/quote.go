package domain

import "time"

// QuoteRequest describes one priced tee-time request. LeadTimeHours and
// OccupancyPct are optional precomputed signals: a missing lead time is
// derived from now versus the tee time, a missing occupancy defaults to zero.
type QuoteRequest struct {
	CourseID      string   `json:"course_id"`
	Date          string   `json:"date"` // YYYY-MM-DD
	Time          string   `json:"time"` // HH:MM
	Players       int64    `json:"players"`
	LeadTimeHours *float64 `json:"lead_time_hours,omitempty"`
	OccupancyPct  *int64   `json:"occupancy_pct,omitempty"`
}

// TraceEntry records one applied rule and the running price after it, in
// application order. The trace doubles as the audit trail and the
// admin-facing price breakdown.
type TraceEntry struct {
	RuleID      string   `json:"rule_id"`
	RuleName    string   `json:"rule_name"`
	RuleType    RuleType `json:"rule_type"`
	Value       string   `json:"value"`
	ResultPrice Cents    `json:"result_price"`
}

// Quote is the result of one price calculation.
type Quote struct {
	BasePrice      Cents        `json:"base_price"`
	Trace          []TraceEntry `json:"trace"`
	PricePerPlayer Cents        `json:"price_per_player"`
	TotalPrice     Cents        `json:"total_price"`
	Players        int64        `json:"players"`
	LeadTimeHours  float64      `json:"lead_time_hours"`
	CalculatedAt   time.Time    `json:"calculated_at"`
}

// Clone returns a deep copy; the trace slice is not shared.
func (q *Quote) Clone() Quote {
	c := *q
	c.Trace = append([]TraceEntry(nil), q.Trace...)
	return c
}
