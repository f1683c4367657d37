package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/teetime-pricing/internal/app/pricing/domain"
)

// AdjustmentType selects how a bulk adjustment changes a rule's price value.
type AdjustmentType string

const (
	// AdjustPercentage scales the value: new = round(value * (1 + pct/100)).
	AdjustPercentage AdjustmentType = "percentage"
	// AdjustFixed shifts the value by a dollar delta: new = round(value + delta).
	AdjustFixed AdjustmentType = "fixed"
)

// Adjustment is a uniform change applied across a filtered subset of rules.
// Value is a percentage for AdjustPercentage and dollars for AdjustFixed.
type Adjustment struct {
	Type  AdjustmentType `json:"type"`
	Value float64        `json:"value"`
}

// RuleFilter selects the rules a bulk adjustment touches. Zero-value fields
// do not filter; DaysOfWeek matches rules whose weekday set intersects it.
type RuleFilter struct {
	SeasonID   string  `json:"season_id,omitempty"`
	TimeBandID string  `json:"time_band_id,omitempty"`
	DaysOfWeek []int64 `json:"days_of_week,omitempty"`
}

func (f RuleFilter) matches(r *domain.PriceRule) bool {
	if f.SeasonID != "" && r.SeasonID != f.SeasonID {
		return false
	}
	if f.TimeBandID != "" && r.TimeBandID != f.TimeBandID {
		return false
	}
	if len(f.DaysOfWeek) > 0 {
		overlap := false
		for _, d := range f.DaysOfWeek {
			for _, rd := range r.DaysOfWeek {
				if d == rd {
					overlap = true
					break
				}
			}
		}
		if !overlap {
			return false
		}
	}
	return true
}

// DuplicateRules copies every price rule whose effective window falls inside
// [srcFrom, srcTo] into a new rule with the same predicates and values, the
// destination effective window, and a "(Duplicated)" name suffix. Used to
// replicate a season's pricing into a future year. The copies are returned.
func (e *Engine) DuplicateRules(courseID, srcFrom, srcTo, dstFrom, dstTo string) ([]domain.PriceRule, error) {
	for _, d := range []string{srcFrom, srcTo, dstFrom, dstTo} {
		if _, err := domain.ParseDate(d); err != nil {
			return nil, err
		}
	}
	st := e.ensureCourse(courseID)

	var copies []domain.PriceRule
	for i := range st.priceRules {
		r := &st.priceRules[i]
		if r.EffectiveFrom == "" || r.EffectiveTo == "" {
			continue
		}
		if r.EffectiveFrom < srcFrom || r.EffectiveTo > srcTo {
			continue
		}
		dup := r.Clone()
		dup.ID = uuid.NewString()
		dup.Name = r.Name + " (Duplicated)"
		dup.EffectiveFrom = dstFrom
		dup.EffectiveTo = dstTo
		copies = append(copies, dup)
	}

	st.priceRules = append(st.priceRules, copies...)
	e.cache.purgeCourse(courseID)

	out := make([]domain.PriceRule, len(copies))
	for i := range copies {
		out[i] = copies[i].Clone()
	}
	return out, nil
}

// BulkAdjust applies a uniform adjustment to every rule matching the filter,
// mutating stored rules in place, and returns the number of rules changed.
// Multiplier rules are exempt: their values are relative factors, and a
// dollar or percent nudge would silently change their meaning.
func (e *Engine) BulkAdjust(courseID string, filter RuleFilter, adj Adjustment) (int, error) {
	if adj.Type != AdjustPercentage && adj.Type != AdjustFixed {
		return 0, fmt.Errorf("unknown adjustment type %q", adj.Type)
	}
	st := e.ensureCourse(courseID)

	changed := 0
	for i := range st.priceRules {
		r := &st.priceRules[i]
		if r.PriceType == domain.RuleMultiplier || !filter.matches(r) {
			continue
		}
		value, err := domain.ParseDecimalCents(r.PriceValue)
		if err != nil {
			return changed, fmt.Errorf("rule %s: %w", r.ID, err)
		}
		switch adj.Type {
		case AdjustPercentage:
			value = domain.MulRate(value, 1+adj.Value/100)
		case AdjustFixed:
			value += domain.CentsFromDollars(adj.Value)
		}
		r.PriceValue = value.String()
		changed++
	}

	e.cache.purgeCourse(courseID)
	return changed, nil
}
