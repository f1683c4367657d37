package domain

import (
	"fmt"
	"math"
	"math/big"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Cents is a monetary amount in integer cents.
//
// Every calculation in this package works on Cents. Float dollar values exist
// only at the edges (request input, display output) and are converted exactly
// once, so no binary floating-point drift can accumulate mid-calculation.
type Cents int64

// CentsFromDollars converts a float dollar amount to cents,
// rounding to the nearest cent.
func CentsFromDollars(d float64) Cents {
	return Cents(math.Round(d * 100))
}

// Dollars returns the approximate float dollar value (for display only).
func (c Cents) Dollars() float64 {
	return float64(c) / 100
}

// String renders the amount as a plain decimal with two places, e.g. "288.00".
func (c Cents) String() string {
	v := int64(c)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// ParseDecimalCents parses a decimal string ("95", "149.50") into cents.
// The parse is exact; values finer than a cent round half away from zero.
func ParseDecimalCents(s string) (Cents, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidPriceValue)
	}
	r.Mul(r, big.NewRat(100, 1))
	return ratToCents(r), nil
}

// MulRat multiplies an amount by an exact rational factor and rounds the
// product to the nearest cent, half away from zero.
func MulRat(c Cents, r *big.Rat) Cents {
	p := new(big.Rat).Mul(new(big.Rat).SetInt64(int64(c)), r)
	return ratToCents(p)
}

// MulRate multiplies an amount by a float rate (tax rates, percentage
// adjustments) and rounds to the nearest cent.
func MulRate(c Cents, rate float64) Cents {
	return Cents(math.Round(float64(c) * rate))
}

// RoundToMultiple rounds an amount to the nearest multiple of m,
// half away from zero. A non-positive m leaves the amount untouched.
func RoundToMultiple(c, m Cents) Cents {
	if m <= 0 {
		return c
	}
	if c < 0 {
		return -roundNonNegative(-c, m)
	}
	return roundNonNegative(c, m)
}

func roundNonNegative(c, m Cents) Cents {
	return (c + m/2) / m * m
}

// FormatCents renders an amount as a locale- and currency-aware string with
// exactly two decimal places. Callers must not format an amount before its
// breakdown passes Validate.
func FormatCents(c Cents, code string, tag language.Tag) (string, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("unknown currency %q: %w", code, err)
	}
	p := message.NewPrinter(tag)
	return p.Sprintf("%v%.2f", currency.Symbol(unit), c.Dollars()), nil
}

// ratToCents rounds a rational cent amount to the nearest integer cent,
// half away from zero.
func ratToCents(r *big.Rat) Cents {
	num := r.Num()
	den := r.Denom()
	q, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	rem.Abs(rem)
	rem.Lsh(rem, 1)
	if rem.Cmp(den) >= 0 {
		if num.Sign() < 0 {
			q.Sub(q, big.NewInt(1))
		} else {
			q.Add(q, big.NewInt(1))
		}
	}
	return Cents(q.Int64())
}
