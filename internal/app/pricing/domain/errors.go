package domain

import "errors"

// Domain errors as sentinel values
var (
	// Calculation errors
	ErrBlocked        = errors.New("tee time is blocked by a special override")
	ErrNoBaseProduct  = errors.New("course has no base product")
	ErrInvalidPlayers = errors.New("player count must be positive")

	// Record validation errors
	ErrInvalidDate          = errors.New("date must use the YYYY-MM-DD format")
	ErrInvalidTime          = errors.New("time must use the HH:MM format")
	ErrInvalidInterval      = errors.New("interval end must not precede its start")
	ErrInvalidPriceValue    = errors.New("price value is not a valid decimal number")
	ErrUnknownRuleType      = errors.New("unknown price rule type")
	ErrUnknownOverrideType  = errors.New("unknown override type")
	ErrOverridePriceMissing = errors.New("price override requires a price value")
	ErrEmptyCourseID        = errors.New("course id cannot be empty")
	ErrRecordNotFound       = errors.New("record not found")

	// Money errors
	ErrPricingIntegrity = errors.New("pricing integrity violation")
)
