package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateIntervals(t *testing.T) {
	t.Run("date windows are inclusive on both ends", func(t *testing.T) {
		s := Season{StartDate: "2026-06-01", EndDate: "2026-08-31"}

		assert.True(t, s.Contains("2026-06-01"))
		assert.True(t, s.Contains("2026-08-31"))
		assert.False(t, s.Contains("2026-05-31"))
		assert.False(t, s.Contains("2026-09-01"))
	})

	t.Run("empty bounds are open", func(t *testing.T) {
		assert.True(t, withinDates("1999-01-01", "", ""))
		assert.True(t, withinDates("2026-06-01", "2026-01-01", ""))
		assert.False(t, withinDates("2025-12-31", "2026-01-01", ""))
	})
}

func TestTimeIntervals(t *testing.T) {
	t.Run("time bands are half-open", func(t *testing.T) {
		b := TimeBand{StartTime: "15:00", EndTime: "20:00"}

		assert.True(t, b.Contains("15:00"))
		assert.True(t, b.Contains("19:59"))
		assert.False(t, b.Contains("20:00"))
		assert.False(t, b.Contains("14:59"))
	})
}

func TestTeeDateTime(t *testing.T) {
	tee, err := TeeDateTime("2026-06-06", "16:30")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 6, 6, 16, 30, 0, 0, time.UTC), tee)
	assert.Equal(t, time.Saturday, tee.Weekday())
}

func TestResolveLeadTime(t *testing.T) {
	now := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)

	t.Run("derived from now to tee", func(t *testing.T) {
		req := QuoteRequest{Date: "2026-06-06", Time: "16:00"}
		lead, err := ResolveLeadTime(req, now)
		require.NoError(t, err)
		assert.InDelta(t, 128.0, lead, 0.001)
	})

	t.Run("past tee times go negative", func(t *testing.T) {
		req := QuoteRequest{Date: "2026-05-31", Time: "08:00"}
		lead, err := ResolveLeadTime(req, now)
		require.NoError(t, err)
		assert.Less(t, lead, 0.0)
	})
}
