package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakdownFromSubtotal(t *testing.T) {
	t.Run("subtotal 288.00 at 16% tax totals 334.08", func(t *testing.T) {
		b := BreakdownFromSubtotal(Cents(28800), 0.16, 0)

		assert.Equal(t, Cents(28800), b.Subtotal)
		assert.Equal(t, Cents(4608), b.Tax)
		assert.Equal(t, Cents(0), b.Discount)
		assert.Equal(t, Cents(33408), b.Total)
		assert.True(t, b.Exact())
	})

	t.Run("discount is subtracted before tax is added", func(t *testing.T) {
		b := BreakdownFromSubtotal(Cents(10000), 0.10, Cents(2000))

		assert.Equal(t, Cents(1000), b.Tax)
		assert.Equal(t, Cents(9000), b.Total) // 100 - 20 + 10
		assert.True(t, b.Exact())
	})

	t.Run("zero tax rate", func(t *testing.T) {
		b := BreakdownFromSubtotal(Cents(9500), 0, 0)

		assert.Equal(t, Cents(0), b.Tax)
		assert.Equal(t, Cents(9500), b.Total)
		assert.True(t, b.Exact())
	})
}

func TestBreakdownFromTotal(t *testing.T) {
	t.Run("recovers subtotal and tax from 334.08", func(t *testing.T) {
		b := BreakdownFromTotal(Cents(33408), 0.16, 0)

		assert.Equal(t, Cents(28800), b.Subtotal)
		assert.Equal(t, Cents(4608), b.Tax)
		assert.Equal(t, Cents(33408), b.Total)
		assert.True(t, b.Exact())
	})

	t.Run("identity holds even when division does not land on a cent", func(t *testing.T) {
		b := BreakdownFromTotal(Cents(9999), 0.0825, 0)

		assert.True(t, b.Exact())
		assert.Equal(t, b.Total, b.Subtotal-b.Discount+b.Tax)
	})

	t.Run("round trip through subtotal derivation", func(t *testing.T) {
		forward := BreakdownFromSubtotal(Cents(28800), 0.16, 0)
		back := BreakdownFromTotal(forward.Total, 0.16, 0)

		assert.Equal(t, forward, back)
	})
}

func TestBreakdown_Validate(t *testing.T) {
	t.Run("clean breakdown has no violations", func(t *testing.T) {
		b := BreakdownFromSubtotal(Cents(28800), 0.16, 0)
		assert.Empty(t, b.Validate())
		require.NoError(t, b.Verify())
	})

	t.Run("negative components are reported", func(t *testing.T) {
		b := Breakdown{Subtotal: -100, Tax: 0, Discount: 0, Total: -100}

		violations := b.Validate()
		assert.Len(t, violations, 2)
	})

	t.Run("drift beyond one cent fails verification", func(t *testing.T) {
		b := Breakdown{Subtotal: 10000, Tax: 1600, Discount: 0, Total: 11700}

		err := b.Verify()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrPricingIntegrity)
	})

	t.Run("one cent of drift passes Validate but is not Exact", func(t *testing.T) {
		b := Breakdown{Subtotal: 10000, Tax: 1600, Discount: 0, Total: 11601}

		assert.Empty(t, b.Validate())
		assert.False(t, b.Exact())
	})
}
