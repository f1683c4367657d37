package domain

import (
	"fmt"
	"math"
	"strings"
)

// Breakdown is a subtotal/tax/discount/total decomposition of an amount.
// The defining identity is subtotal - discount + tax == total.
type Breakdown struct {
	Subtotal Cents `json:"subtotal"`
	Tax      Cents `json:"tax"`
	Discount Cents `json:"discount"`
	Total    Cents `json:"total"`
}

// BreakdownFromSubtotal derives tax and total from a known subtotal.
// tax = round(subtotal * taxRate), total = subtotal - discount + tax.
func BreakdownFromSubtotal(subtotal Cents, taxRate float64, discount Cents) Breakdown {
	tax := MulRate(subtotal, taxRate)
	return Breakdown{
		Subtotal: subtotal,
		Tax:      tax,
		Discount: discount,
		Total:    subtotal - discount + tax,
	}
}

// BreakdownFromTotal is the inverse operation: it recovers the subtotal and
// tax from a known total. The subtotal is first estimated as
// round((total + discount) / (1 + taxRate)), the tax derived from it, and the
// subtotal then recomputed as total + discount - tax to absorb rounding
// drift. The identity subtotal - discount + tax == total holds exactly.
func BreakdownFromTotal(total Cents, taxRate float64, discount Cents) Breakdown {
	subtotal := Cents(math.Round(float64(total+discount) / (1 + taxRate)))
	tax := MulRate(subtotal, taxRate)
	subtotal = total + discount - tax
	return Breakdown{
		Subtotal: subtotal,
		Tax:      tax,
		Discount: discount,
		Total:    total,
	}
}

// Validate returns the list of integrity violations: every component must be
// non-negative and the identity must hold within one cent. An empty slice
// means the breakdown is safe to persist or hand to a payment processor.
// Callers decide whether a one-cent mismatch is tolerable.
func (b Breakdown) Validate() []string {
	var violations []string
	if b.Subtotal < 0 {
		violations = append(violations, "subtotal is negative")
	}
	if b.Tax < 0 {
		violations = append(violations, "tax is negative")
	}
	if b.Discount < 0 {
		violations = append(violations, "discount is negative")
	}
	if b.Total < 0 {
		violations = append(violations, "total is negative")
	}
	drift := b.Subtotal - b.Discount + b.Tax - b.Total
	if drift < -1 || drift > 1 {
		violations = append(violations,
			fmt.Sprintf("subtotal - discount + tax differs from total by %d cents", drift))
	}
	return violations
}

// Verify is the strict form of Validate: any violation becomes an error
// wrapping ErrPricingIntegrity.
func (b Breakdown) Verify() error {
	violations := b.Validate()
	if len(violations) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrPricingIntegrity, strings.Join(violations, "; "))
}

// Exact reports whether the identity holds with zero drift.
func (b Breakdown) Exact() bool {
	return b.Subtotal-b.Discount+b.Tax == b.Total
}
