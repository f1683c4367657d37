package domain

import (
	"fmt"
	"sort"

	"github.com/light-bringer/teetime-pricing/internal/pkg/clock"
)

// FinalRoundIncrement is the system-wide final rounding policy: every quoted
// per-player price is an exact multiple of $5.00, independent of any per-rule
// RoundTo.
const FinalRoundIncrement Cents = 500

// Calculator derives a per-player price by layering a course's rule stack
// over its base price. It is pure and synchronous: given the same rule set,
// request, and clock reading, it produces an identical quote and trace.
type Calculator struct {
	clock clock.Clock
}

// NewCalculator creates a Calculator reading time from clk.
func NewCalculator(clk clock.Clock) *Calculator {
	return &Calculator{clock: clk}
}

// Calculate prices one request against a rule set.
//
// The order is fixed: special overrides first (a block ends the calculation
// with ErrBlocked, a price override returns immediately), then the base
// product seeds the running price, then every active, effective, matching
// rule applies in priority order, then the final multiple-of-five rounding.
func (c *Calculator) Calculate(rs *RuleSet, req QuoteRequest) (*Quote, error) {
	if req.Players <= 0 {
		return nil, fmt.Errorf("%d: %w", req.Players, ErrInvalidPlayers)
	}
	tee, err := TeeDateTime(req.Date, req.Time)
	if err != nil {
		return nil, err
	}
	now := c.clock.Now().UTC()

	// 1. Override check. Outranks the whole rule stack.
	if ov := rs.MatchOverride(req.Date, req.Time); ov != nil {
		if ov.OverrideType == OverrideBlock {
			return nil, fmt.Errorf("%s: %w", ov.Name, ErrBlocked)
		}
		price := *ov.PriceValue
		lead, err := ResolveLeadTime(req, now)
		if err != nil {
			return nil, err
		}
		return &Quote{
			BasePrice: price,
			Trace: []TraceEntry{{
				RuleID:      ov.ID,
				RuleName:    ov.Name,
				RuleType:    RuleOverride,
				Value:       price.String(),
				ResultPrice: price,
			}},
			PricePerPlayer: price,
			TotalPrice:     price * Cents(req.Players),
			Players:        req.Players,
			LeadTimeHours:  lead,
			CalculatedAt:   now,
		}, nil
	}

	// 2. Base price.
	if rs.BaseProduct == nil {
		return nil, fmt.Errorf("course %s: %w", rs.CourseID, ErrNoBaseProduct)
	}
	price := rs.BaseProduct.BasePrice

	// 3. Context resolution.
	ctx := RuleContext{
		Date:      req.Date,
		Time:      req.Time,
		DayOfWeek: int64(tee.Weekday()),
		Players:   req.Players,
	}
	if season := rs.MatchSeason(req.Date); season != nil {
		ctx.SeasonID = season.ID
	}
	if band := rs.MatchTimeBand(req.Time); band != nil {
		ctx.TimeBandID = band.ID
	}
	ctx.LeadTimeHours, err = ResolveLeadTime(req, now)
	if err != nil {
		return nil, err
	}
	if req.OccupancyPct != nil {
		ctx.OccupancyPct = *req.OccupancyPct
	}

	// 4. Rule selection. Stable sort keeps encounter order on priority ties;
	// that tie-break is load-bearing for reproducibility.
	selected := make([]*PriceRule, 0, len(rs.PriceRules))
	for i := range rs.PriceRules {
		r := &rs.PriceRules[i]
		if r.Active && r.EffectiveAt(now) && r.Matches(&ctx) {
			selected = append(selected, r)
		}
	}
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Priority > selected[j].Priority
	})

	// 5. Sequential application.
	trace := make([]TraceEntry, 0, len(selected))
	for _, r := range selected {
		price, err = r.Apply(price)
		if err != nil {
			return nil, err
		}
		trace = append(trace, TraceEntry{
			RuleID:      r.ID,
			RuleName:    r.Name,
			RuleType:    r.PriceType,
			Value:       r.PriceValue,
			ResultPrice: price,
		})
	}

	// 6. Final rounding.
	price = RoundToMultiple(price, FinalRoundIncrement)

	return &Quote{
		BasePrice:      rs.BaseProduct.BasePrice,
		Trace:          trace,
		PricePerPlayer: price,
		TotalPrice:     price * Cents(req.Players),
		Players:        req.Players,
		LeadTimeHours:  ctx.LeadTimeHours,
		CalculatedAt:   now,
	}, nil
}
