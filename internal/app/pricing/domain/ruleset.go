package domain

import "fmt"

// RuleSet is the complete pricing configuration of one course, the unit the
// calculator operates on. Slice order is encounter order: it breaks priority
// ties during rule application, so holders must keep it stable across
// mutations.
type RuleSet struct {
	CourseID         string
	BaseProduct      *BaseProduct
	Seasons          []Season
	TimeBands        []TimeBand
	PriceRules       []PriceRule
	SpecialOverrides []SpecialOverride
}

// MatchOverride returns the highest-priority active override covering the
// request, or nil. Priority ties resolve to the earlier record.
func (rs *RuleSet) MatchOverride(date, tod string) *SpecialOverride {
	var best *SpecialOverride
	for i := range rs.SpecialOverrides {
		o := &rs.SpecialOverrides[i]
		if !o.Active || !o.Matches(date, tod) {
			continue
		}
		if best == nil || o.Priority > best.Priority {
			best = o
		}
	}
	return best
}

// MatchSeason returns the highest-priority active season covering the date,
// or nil.
func (rs *RuleSet) MatchSeason(date string) *Season {
	var best *Season
	for i := range rs.Seasons {
		s := &rs.Seasons[i]
		if !s.Active || !s.Contains(date) {
			continue
		}
		if best == nil || s.Priority > best.Priority {
			best = s
		}
	}
	return best
}

// MatchTimeBand returns the first active band containing the time-of-day, or
// nil. Band windows are expected to be disjoint, so at most one matches.
func (rs *RuleSet) MatchTimeBand(tod string) *TimeBand {
	for i := range rs.TimeBands {
		b := &rs.TimeBands[i]
		if b.Active && b.Contains(tod) {
			return b
		}
	}
	return nil
}

// Lint reports rule-set authoring hazards that are legal but likely
// unintended. Currently: two active fixed rules sharing a priority, where the
// surviving price would depend on record order instead of an explicit
// priority choice.
func (rs *RuleSet) Lint() []string {
	var warnings []string
	fixedByPriority := make(map[int64]*PriceRule)
	for i := range rs.PriceRules {
		r := &rs.PriceRules[i]
		if !r.Active || r.PriceType != RuleFixed {
			continue
		}
		if prev, ok := fixedByPriority[r.Priority]; ok {
			warnings = append(warnings, fmt.Sprintf(
				"fixed rules %q and %q share priority %d; the outcome depends on record order",
				prev.Name, r.Name, r.Priority))
			continue
		}
		fixedByPriority[r.Priority] = r
	}
	return warnings
}
