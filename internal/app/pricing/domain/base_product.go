package domain

// BaseProduct seeds the rule stack with a course's base green fee.
// Exactly one active record exists per course; calculation fails without it.
type BaseProduct struct {
	CourseID  string `json:"course_id"`
	BasePrice Cents  `json:"base_price"`

	// Ancillary fees, quoted separately from the green fee.
	CartFee   Cents `json:"cart_fee,omitempty"`
	CaddieFee Cents `json:"caddie_fee,omitempty"`
}

// Validate checks structural invariants before the record enters a rule set.
func (bp *BaseProduct) Validate() error {
	if bp.CourseID == "" {
		return ErrEmptyCourseID
	}
	if bp.BasePrice < 0 || bp.CartFee < 0 || bp.CaddieFee < 0 {
		return ErrInvalidPriceValue
	}
	return nil
}
