package domain

import (
	"fmt"
	"math/big"
	"time"
)

// RuleType selects the composition operator a price rule applies.
type RuleType string

const (
	// RuleFixed replaces the running price outright. It is an absolute
	// override, not base-relative: a fixed rule discards everything applied
	// before it in the sequence, so authors rely on priority to disambiguate
	// when several fixed rules can match.
	RuleFixed RuleType = "fixed"
	// RuleDelta adds a signed amount to the running price.
	RuleDelta RuleType = "delta"
	// RuleMultiplier scales the running price; multiple multipliers compound
	// in priority order.
	RuleMultiplier RuleType = "multiplier"

	// RuleOverride tags trace entries produced by a special override, which
	// bypasses the rule stack entirely.
	RuleOverride RuleType = "override"
)

// PriceRule is the central entity of the engine. A rule applies to a request
// only when every predicate it declares is satisfied; a rule with no
// predicate on a dimension is a wildcard for that dimension.
//
// PriceValue is a decimal string: dollars for fixed and delta rules, a
// unitless factor for multiplier rules. Parsing goes through big.Rat so the
// value survives the JSON and storage boundaries exactly.
type PriceRule struct {
	ID         string   `json:"id"`
	CourseID   string   `json:"course_id"`
	Name       string   `json:"name"`
	PriceType  RuleType `json:"price_type"`
	PriceValue string   `json:"price_value"`
	Priority   int64    `json:"priority"`
	Active     bool     `json:"active"`

	// Effective window, checked against the wall clock (not the tee date).
	EffectiveFrom string `json:"effective_from,omitempty"` // inclusive, YYYY-MM-DD
	EffectiveTo   string `json:"effective_to,omitempty"`   // inclusive

	// Matching predicates. Zero values (empty string, nil, empty slice) are
	// wildcards on their dimension.
	SeasonID     string   `json:"season_id,omitempty"`
	TimeBandID   string   `json:"time_band_id,omitempty"`
	DaysOfWeek   []int64  `json:"days_of_week,omitempty"` // 0=Sunday .. 6=Saturday
	LeadTimeMin  *float64 `json:"lead_time_min,omitempty"` // hours
	LeadTimeMax  *float64 `json:"lead_time_max,omitempty"`
	OccupancyMin *int64   `json:"occupancy_min,omitempty"` // percent
	OccupancyMax *int64   `json:"occupancy_max,omitempty"`
	PlayersMin   *int64   `json:"players_min,omitempty"`
	PlayersMax   *int64   `json:"players_max,omitempty"`

	// Post-application constraints, applied in order: clamp, then round.
	MinPrice *Cents `json:"min_price,omitempty"`
	MaxPrice *Cents `json:"max_price,omitempty"`
	RoundTo  *Cents `json:"round_to,omitempty"` // nearest multiple
}

// RuleContext is the resolved request context a rule is matched against.
type RuleContext struct {
	Date          string
	Time          string
	DayOfWeek     int64
	SeasonID      string
	TimeBandID    string
	LeadTimeHours float64
	OccupancyPct  int64
	Players       int64
}

// EffectiveAt reports whether the rule's effective window (if any) contains
// the given instant.
func (r *PriceRule) EffectiveAt(now time.Time) bool {
	return withinDates(now.UTC().Format(DateLayout), r.EffectiveFrom, r.EffectiveTo)
}

// Matches reports whether every declared predicate is satisfied by ctx.
func (r *PriceRule) Matches(ctx *RuleContext) bool {
	if r.SeasonID != "" && r.SeasonID != ctx.SeasonID {
		return false
	}
	if r.TimeBandID != "" && r.TimeBandID != ctx.TimeBandID {
		return false
	}
	if len(r.DaysOfWeek) > 0 && !containsInt64(r.DaysOfWeek, ctx.DayOfWeek) {
		return false
	}
	if r.LeadTimeMin != nil && ctx.LeadTimeHours < *r.LeadTimeMin {
		return false
	}
	if r.LeadTimeMax != nil && ctx.LeadTimeHours > *r.LeadTimeMax {
		return false
	}
	if r.OccupancyMin != nil && ctx.OccupancyPct < *r.OccupancyMin {
		return false
	}
	if r.OccupancyMax != nil && ctx.OccupancyPct > *r.OccupancyMax {
		return false
	}
	if r.PlayersMin != nil && ctx.Players < *r.PlayersMin {
		return false
	}
	if r.PlayersMax != nil && ctx.Players > *r.PlayersMax {
		return false
	}
	return true
}

// Apply runs the rule's operator against the running price, then clamps to
// [MinPrice, MaxPrice] and rounds to the nearest RoundTo multiple when
// declared.
func (r *PriceRule) Apply(price Cents) (Cents, error) {
	switch r.PriceType {
	case RuleFixed:
		v, err := r.amount()
		if err != nil {
			return 0, err
		}
		price = v
	case RuleDelta:
		v, err := r.amount()
		if err != nil {
			return 0, err
		}
		price += v
	case RuleMultiplier:
		f, err := r.factor()
		if err != nil {
			return 0, err
		}
		price = MulRat(price, f)
	default:
		return 0, fmt.Errorf("rule %s: %q: %w", r.ID, r.PriceType, ErrUnknownRuleType)
	}

	if r.MinPrice != nil && price < *r.MinPrice {
		price = *r.MinPrice
	}
	if r.MaxPrice != nil && price > *r.MaxPrice {
		price = *r.MaxPrice
	}
	if r.RoundTo != nil {
		price = RoundToMultiple(price, *r.RoundTo)
	}
	return price, nil
}

// Validate checks structural invariants before the rule enters a rule set.
func (r *PriceRule) Validate() error {
	if r.CourseID == "" {
		return ErrEmptyCourseID
	}
	switch r.PriceType {
	case RuleFixed, RuleDelta:
		if _, err := r.amount(); err != nil {
			return err
		}
	case RuleMultiplier:
		if _, err := r.factor(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%q: %w", r.PriceType, ErrUnknownRuleType)
	}
	if r.EffectiveFrom != "" {
		if _, err := ParseDate(r.EffectiveFrom); err != nil {
			return err
		}
	}
	if r.EffectiveTo != "" {
		if _, err := ParseDate(r.EffectiveTo); err != nil {
			return err
		}
	}
	if r.EffectiveFrom != "" && r.EffectiveTo != "" && r.EffectiveTo < r.EffectiveFrom {
		return ErrInvalidInterval
	}
	for _, d := range r.DaysOfWeek {
		if d < 0 || d > 6 {
			return fmt.Errorf("day of week %d out of range 0-6", d)
		}
	}
	return nil
}

// Clone returns a deep copy; predicate pointers and slices are not shared.
func (r *PriceRule) Clone() PriceRule {
	c := *r
	if r.DaysOfWeek != nil {
		c.DaysOfWeek = append([]int64(nil), r.DaysOfWeek...)
	}
	c.LeadTimeMin = cloneFloat(r.LeadTimeMin)
	c.LeadTimeMax = cloneFloat(r.LeadTimeMax)
	c.OccupancyMin = cloneInt(r.OccupancyMin)
	c.OccupancyMax = cloneInt(r.OccupancyMax)
	c.PlayersMin = cloneInt(r.PlayersMin)
	c.PlayersMax = cloneInt(r.PlayersMax)
	c.MinPrice = cloneCents(r.MinPrice)
	c.MaxPrice = cloneCents(r.MaxPrice)
	c.RoundTo = cloneCents(r.RoundTo)
	return c
}

// amount parses PriceValue as a dollar amount (fixed and delta rules).
func (r *PriceRule) amount() (Cents, error) {
	return ParseDecimalCents(r.PriceValue)
}

// factor parses PriceValue as an exact rational factor (multiplier rules).
func (r *PriceRule) factor() (*big.Rat, error) {
	f, ok := new(big.Rat).SetString(r.PriceValue)
	if !ok {
		return nil, fmt.Errorf("%q: %w", r.PriceValue, ErrInvalidPriceValue)
	}
	return f, nil
}

func containsInt64(xs []int64, x int64) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneInt(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneCents(p *Cents) *Cents {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
