package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/teetime-pricing/internal/pkg/clock"
)

// 2026-06-06 is a Saturday; the mock clock sits five days before it.
var calcNow = time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)

func newTestRuleSet() *RuleSet {
	return &RuleSet{
		CourseID:    "pebble-creek",
		BaseProduct: &BaseProduct{CourseID: "pebble-creek", BasePrice: Cents(9500)},
		TimeBands: []TimeBand{
			{ID: "early", CourseID: "pebble-creek", Name: "Early", StartTime: "06:00", EndTime: "09:00", Active: true},
			{ID: "prime", CourseID: "pebble-creek", Name: "Prime", StartTime: "09:00", EndTime: "15:00", Active: true},
			{ID: "twilight", CourseID: "pebble-creek", Name: "Twilight", StartTime: "15:00", EndTime: "20:00", Active: true},
		},
	}
}

func saturdayTwilightRequest() QuoteRequest {
	return QuoteRequest{
		CourseID: "pebble-creek",
		Date:     "2026-06-06",
		Time:     "16:00",
		Players:  2,
	}
}

func TestCalculator_NoRules(t *testing.T) {
	calc := NewCalculator(clock.NewMockClock(calcNow))
	rs := newTestRuleSet()

	t.Run("base price passes through and rounds to a multiple of five dollars", func(t *testing.T) {
		q, err := calc.Calculate(rs, saturdayTwilightRequest())
		require.NoError(t, err)

		assert.Equal(t, Cents(9500), q.BasePrice)
		assert.Equal(t, Cents(9500), q.PricePerPlayer) // $95 is already a multiple of $5
		assert.Equal(t, Cents(19000), q.TotalPrice)
		assert.Equal(t, int64(2), q.Players)
		assert.Empty(t, q.Trace)
	})

	t.Run("lead time is derived from now to the tee time", func(t *testing.T) {
		q, err := calc.Calculate(rs, saturdayTwilightRequest())
		require.NoError(t, err)

		// 2026-06-01 08:00 to 2026-06-06 16:00 is 128 hours
		assert.InDelta(t, 128.0, q.LeadTimeHours, 0.001)
	})

	t.Run("caller-provided lead time wins over derivation", func(t *testing.T) {
		req := saturdayTwilightRequest()
		lead := 6.5
		req.LeadTimeHours = &lead

		q, err := calc.Calculate(rs, req)
		require.NoError(t, err)
		assert.Equal(t, 6.5, q.LeadTimeHours)
	})
}

func TestCalculator_WeekendTwilightStack(t *testing.T) {
	calc := NewCalculator(clock.NewMockClock(calcNow))
	rs := newTestRuleSet()
	rs.PriceRules = []PriceRule{
		{
			ID: "r-weekend", CourseID: "pebble-creek", Name: "Weekend Surcharge",
			PriceType: RuleDelta, PriceValue: "150.00", Priority: 20, Active: true,
			DaysOfWeek: []int64{0, 6},
		},
		{
			ID: "r-twilight", CourseID: "pebble-creek", Name: "Twilight Discount",
			PriceType: RuleMultiplier, PriceValue: "0.85", Priority: 10, Active: true,
			TimeBandID: "twilight",
		},
	}

	q, err := calc.Calculate(rs, saturdayTwilightRequest())
	require.NoError(t, err)

	// delta first (priority 20): 95 + 150 = 245
	// multiplier second (priority 10): 245 * 0.85 = 208.25
	// final rounding: 208.25 -> 210.00
	require.Len(t, q.Trace, 2)
	assert.Equal(t, "r-weekend", q.Trace[0].RuleID)
	assert.Equal(t, Cents(24500), q.Trace[0].ResultPrice)
	assert.Equal(t, "r-twilight", q.Trace[1].RuleID)
	assert.Equal(t, Cents(20825), q.Trace[1].ResultPrice)

	assert.Equal(t, Cents(21000), q.PricePerPlayer)
	assert.Equal(t, Cents(42000), q.TotalPrice)

	t.Run("sunday morning request matches neither twilight nor weekday-only rules", func(t *testing.T) {
		req := QuoteRequest{CourseID: "pebble-creek", Date: "2026-06-08", Time: "10:00", Players: 1}

		// 2026-06-08 is a Monday: no weekend delta, prime band, no twilight multiplier
		q, err := calc.Calculate(rs, req)
		require.NoError(t, err)
		assert.Empty(t, q.Trace)
		assert.Equal(t, Cents(9500), q.PricePerPlayer)
	})
}

func TestCalculator_Overrides(t *testing.T) {
	calc := NewCalculator(clock.NewMockClock(calcNow))

	t.Run("block override refuses the quote", func(t *testing.T) {
		rs := newTestRuleSet()
		rs.SpecialOverrides = []SpecialOverride{{
			ID: "o-champ", CourseID: "pebble-creek", Name: "Club Championship",
			StartDate: "2026-06-06", EndDate: "2026-06-07",
			OverrideType: OverrideBlock, Priority: 100, Active: true,
		}}

		_, err := calc.Calculate(rs, saturdayTwilightRequest())
		assert.ErrorIs(t, err, ErrBlocked)
	})

	t.Run("price override bypasses the whole rule stack", func(t *testing.T) {
		price := Cents(8000)
		rs := newTestRuleSet()
		rs.PriceRules = []PriceRule{{
			ID: "r-weekend", CourseID: "pebble-creek", Name: "Weekend Surcharge",
			PriceType: RuleDelta, PriceValue: "150.00", Priority: 20, Active: true,
		}}
		rs.SpecialOverrides = []SpecialOverride{{
			ID: "o-member", CourseID: "pebble-creek", Name: "Member Day",
			StartDate: "2026-06-06", EndDate: "2026-06-06",
			OverrideType: OverridePrice, PriceValue: &price, Priority: 50, Active: true,
		}}

		q, err := calc.Calculate(rs, saturdayTwilightRequest())
		require.NoError(t, err)

		require.Len(t, q.Trace, 1)
		assert.Equal(t, "o-member", q.Trace[0].RuleID)
		assert.Equal(t, RuleOverride, q.Trace[0].RuleType)
		assert.Equal(t, Cents(8000), q.PricePerPlayer)
		assert.Equal(t, Cents(16000), q.TotalPrice)
	})

	t.Run("highest-priority override wins", func(t *testing.T) {
		low := Cents(8000)
		rs := newTestRuleSet()
		rs.SpecialOverrides = []SpecialOverride{
			{
				ID: "o-member", CourseID: "pebble-creek", Name: "Member Day",
				StartDate: "2026-06-06", EndDate: "2026-06-06",
				OverrideType: OverridePrice, PriceValue: &low, Priority: 50, Active: true,
			},
			{
				ID: "o-champ", CourseID: "pebble-creek", Name: "Club Championship",
				StartDate: "2026-06-06", EndDate: "2026-06-06",
				OverrideType: OverrideBlock, Priority: 100, Active: true,
			},
		}

		_, err := calc.Calculate(rs, saturdayTwilightRequest())
		assert.ErrorIs(t, err, ErrBlocked)
	})

	t.Run("time-scoped override leaves other slots alone", func(t *testing.T) {
		rs := newTestRuleSet()
		rs.SpecialOverrides = []SpecialOverride{{
			ID: "o-morning", CourseID: "pebble-creek", Name: "Morning Maintenance",
			StartDate: "2026-06-06", EndDate: "2026-06-06",
			StartTime: "06:00", EndTime: "12:00",
			OverrideType: OverrideBlock, Priority: 10, Active: true,
		}}

		morning := saturdayTwilightRequest()
		morning.Time = "08:00"
		_, err := calc.Calculate(rs, morning)
		assert.ErrorIs(t, err, ErrBlocked)

		q, err := calc.Calculate(rs, saturdayTwilightRequest())
		require.NoError(t, err)
		assert.Equal(t, Cents(9500), q.PricePerPlayer)
	})

	t.Run("inactive override is ignored", func(t *testing.T) {
		rs := newTestRuleSet()
		rs.SpecialOverrides = []SpecialOverride{{
			ID: "o-champ", CourseID: "pebble-creek", Name: "Club Championship",
			StartDate: "2026-06-06", EndDate: "2026-06-07",
			OverrideType: OverrideBlock, Priority: 100, Active: false,
		}}

		_, err := calc.Calculate(rs, saturdayTwilightRequest())
		assert.NoError(t, err)
	})
}

func TestCalculator_PriorityOrdering(t *testing.T) {
	calc := NewCalculator(clock.NewMockClock(calcNow))

	t.Run("fixed rules apply high priority first, so the lowest matching one lands last", func(t *testing.T) {
		rs := newTestRuleSet()
		rs.PriceRules = []PriceRule{
			{ID: "r-low", CourseID: "pebble-creek", Name: "Low", PriceType: RuleFixed, PriceValue: "60.00", Priority: 10, Active: true},
			{ID: "r-high", CourseID: "pebble-creek", Name: "High", PriceType: RuleFixed, PriceValue: "120.00", Priority: 30, Active: true},
		}

		q, err := calc.Calculate(rs, saturdayTwilightRequest())
		require.NoError(t, err)

		require.Len(t, q.Trace, 2)
		assert.Equal(t, "r-high", q.Trace[0].RuleID)
		assert.Equal(t, "r-low", q.Trace[1].RuleID)
		assert.Equal(t, Cents(6000), q.PricePerPlayer)
	})

	t.Run("equal priority keeps record order", func(t *testing.T) {
		rs := newTestRuleSet()
		rs.PriceRules = []PriceRule{
			{ID: "r-first", CourseID: "pebble-creek", Name: "First", PriceType: RuleDelta, PriceValue: "10.00", Priority: 20, Active: true},
			{ID: "r-second", CourseID: "pebble-creek", Name: "Second", PriceType: RuleMultiplier, PriceValue: "2", Priority: 20, Active: true},
		}

		q, err := calc.Calculate(rs, saturdayTwilightRequest())
		require.NoError(t, err)

		// (95 + 10) * 2 = 210, not 95*2 + 10 = 200
		require.Len(t, q.Trace, 2)
		assert.Equal(t, "r-first", q.Trace[0].RuleID)
		assert.Equal(t, Cents(21000), q.PricePerPlayer)
	})
}

func TestCalculator_RuleConstraints(t *testing.T) {
	calc := NewCalculator(clock.NewMockClock(calcNow))

	t.Run("clamp applies before per-rule rounding", func(t *testing.T) {
		min := Cents(15000)
		roundTo := Cents(1000)
		rs := newTestRuleSet()
		rs.PriceRules = []PriceRule{{
			ID: "r-half", CourseID: "pebble-creek", Name: "Half Off",
			PriceType: RuleMultiplier, PriceValue: "0.5", Priority: 10, Active: true,
			MinPrice: &min, RoundTo: &roundTo,
		}}

		q, err := calc.Calculate(rs, saturdayTwilightRequest())
		require.NoError(t, err)

		// 95 * 0.5 = 47.50, clamped up to 150.00, rounded to nearest 10.00
		require.Len(t, q.Trace, 1)
		assert.Equal(t, Cents(15000), q.Trace[0].ResultPrice)
		assert.Equal(t, Cents(15000), q.PricePerPlayer)
	})

	t.Run("max clamp caps a surcharge", func(t *testing.T) {
		max := Cents(10000)
		rs := newTestRuleSet()
		rs.PriceRules = []PriceRule{{
			ID: "r-surge", CourseID: "pebble-creek", Name: "Surge",
			PriceType: RuleDelta, PriceValue: "500.00", Priority: 10, Active: true,
			MaxPrice: &max,
		}}

		q, err := calc.Calculate(rs, saturdayTwilightRequest())
		require.NoError(t, err)
		assert.Equal(t, Cents(10000), q.PricePerPlayer)
	})
}

func TestCalculator_Predicates(t *testing.T) {
	calc := NewCalculator(clock.NewMockClock(calcNow))

	t.Run("lead time window", func(t *testing.T) {
		min, max := 0.0, 24.0
		rs := newTestRuleSet()
		rs.PriceRules = []PriceRule{{
			ID: "r-lastminute", CourseID: "pebble-creek", Name: "Last Minute",
			PriceType: RuleMultiplier, PriceValue: "0.8", Priority: 10, Active: true,
			LeadTimeMin: &min, LeadTimeMax: &max,
		}}

		// derived lead is 128h: outside the window
		q, err := calc.Calculate(rs, saturdayTwilightRequest())
		require.NoError(t, err)
		assert.Empty(t, q.Trace)

		req := saturdayTwilightRequest()
		lead := 3.0
		req.LeadTimeHours = &lead
		q, err = calc.Calculate(rs, req)
		require.NoError(t, err)
		require.Len(t, q.Trace, 1)
		assert.Equal(t, Cents(7500), q.PricePerPlayer) // 95 * 0.8 = 76, rounded to 75
	})

	t.Run("occupancy defaults to zero when the request omits it", func(t *testing.T) {
		min := int64(80)
		rs := newTestRuleSet()
		rs.PriceRules = []PriceRule{{
			ID: "r-yield", CourseID: "pebble-creek", Name: "Nearly Full",
			PriceType: RuleDelta, PriceValue: "25.00", Priority: 10, Active: true,
			OccupancyMin: &min,
		}}

		q, err := calc.Calculate(rs, saturdayTwilightRequest())
		require.NoError(t, err)
		assert.Empty(t, q.Trace)

		req := saturdayTwilightRequest()
		occ := int64(90)
		req.OccupancyPct = &occ
		q, err = calc.Calculate(rs, req)
		require.NoError(t, err)
		assert.Len(t, q.Trace, 1)
	})

	t.Run("player count window", func(t *testing.T) {
		min := int64(4)
		rs := newTestRuleSet()
		rs.PriceRules = []PriceRule{{
			ID: "r-group", CourseID: "pebble-creek", Name: "Group Rate",
			PriceType: RuleMultiplier, PriceValue: "0.9", Priority: 10, Active: true,
			PlayersMin: &min,
		}}

		q, err := calc.Calculate(rs, saturdayTwilightRequest()) // 2 players
		require.NoError(t, err)
		assert.Empty(t, q.Trace)

		req := saturdayTwilightRequest()
		req.Players = 4
		q, err = calc.Calculate(rs, req)
		require.NoError(t, err)
		assert.Len(t, q.Trace, 1)
	})

	t.Run("season predicate resolves against the highest-priority season", func(t *testing.T) {
		rs := newTestRuleSet()
		rs.Seasons = []Season{
			{ID: "s-shoulder", CourseID: "pebble-creek", Name: "Shoulder", StartDate: "2026-04-01", EndDate: "2026-10-31", Priority: 1, Active: true},
			{ID: "s-peak", CourseID: "pebble-creek", Name: "Peak", StartDate: "2026-06-01", EndDate: "2026-08-31", Priority: 10, Active: true},
		}
		rs.PriceRules = []PriceRule{
			{ID: "r-peak", CourseID: "pebble-creek", Name: "Peak Rate", PriceType: RuleDelta, PriceValue: "40.00", Priority: 10, Active: true, SeasonID: "s-peak"},
			{ID: "r-shoulder", CourseID: "pebble-creek", Name: "Shoulder Rate", PriceType: RuleDelta, PriceValue: "10.00", Priority: 10, Active: true, SeasonID: "s-shoulder"},
		}

		q, err := calc.Calculate(rs, saturdayTwilightRequest())
		require.NoError(t, err)

		require.Len(t, q.Trace, 1)
		assert.Equal(t, "r-peak", q.Trace[0].RuleID)
	})
}

func TestCalculator_EffectiveWindows(t *testing.T) {
	calc := NewCalculator(clock.NewMockClock(calcNow))

	t.Run("expired rule is skipped even when the tee date would match", func(t *testing.T) {
		rs := newTestRuleSet()
		rs.PriceRules = []PriceRule{{
			ID: "r-old", CourseID: "pebble-creek", Name: "Old Promo",
			PriceType: RuleMultiplier, PriceValue: "0.5", Priority: 10, Active: true,
			EffectiveFrom: "2025-01-01", EffectiveTo: "2025-12-31",
		}}

		q, err := calc.Calculate(rs, saturdayTwilightRequest())
		require.NoError(t, err)
		assert.Empty(t, q.Trace)
	})

	t.Run("effectiveness is judged against the wall clock, not the tee date", func(t *testing.T) {
		rs := newTestRuleSet()
		rs.PriceRules = []PriceRule{{
			ID: "r-june", CourseID: "pebble-creek", Name: "June Promo",
			PriceType: RuleDelta, PriceValue: "5.00", Priority: 10, Active: true,
			EffectiveFrom: "2026-06-01", EffectiveTo: "2026-06-30",
		}}

		// clock is 2026-06-01: in window, applies to a July tee date too
		req := QuoteRequest{CourseID: "pebble-creek", Date: "2026-07-10", Time: "10:00", Players: 1}
		q, err := calc.Calculate(rs, req)
		require.NoError(t, err)
		assert.Len(t, q.Trace, 1)

		// move the clock past the window: same request, rule gone
		late := NewCalculator(clock.NewMockClock(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)))
		q, err = late.Calculate(rs, req)
		require.NoError(t, err)
		assert.Empty(t, q.Trace)
	})
}

func TestCalculator_Determinism(t *testing.T) {
	rs := newTestRuleSet()
	rs.PriceRules = []PriceRule{
		{ID: "r-a", CourseID: "pebble-creek", Name: "A", PriceType: RuleDelta, PriceValue: "150.00", Priority: 20, Active: true, DaysOfWeek: []int64{0, 6}},
		{ID: "r-b", CourseID: "pebble-creek", Name: "B", PriceType: RuleMultiplier, PriceValue: "0.85", Priority: 10, Active: true, TimeBandID: "twilight"},
	}

	first := NewCalculator(clock.NewMockClock(calcNow))
	second := NewCalculator(clock.NewMockClock(calcNow))

	q1, err := first.Calculate(rs, saturdayTwilightRequest())
	require.NoError(t, err)
	q2, err := second.Calculate(rs, saturdayTwilightRequest())
	require.NoError(t, err)

	assert.Equal(t, q1, q2)
}

func TestCalculator_InvalidInput(t *testing.T) {
	calc := NewCalculator(clock.NewMockClock(calcNow))
	rs := newTestRuleSet()

	t.Run("zero players", func(t *testing.T) {
		req := saturdayTwilightRequest()
		req.Players = 0
		_, err := calc.Calculate(rs, req)
		assert.ErrorIs(t, err, ErrInvalidPlayers)
	})

	t.Run("malformed date", func(t *testing.T) {
		req := saturdayTwilightRequest()
		req.Date = "06/06/2026"
		_, err := calc.Calculate(rs, req)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("malformed time", func(t *testing.T) {
		req := saturdayTwilightRequest()
		req.Time = "4pm"
		_, err := calc.Calculate(rs, req)
		assert.ErrorIs(t, err, ErrInvalidTime)
	})

	t.Run("missing base product", func(t *testing.T) {
		empty := &RuleSet{CourseID: "ghost-course"}
		_, err := calc.Calculate(empty, saturdayTwilightRequest())
		assert.ErrorIs(t, err, ErrNoBaseProduct)
	})
}
