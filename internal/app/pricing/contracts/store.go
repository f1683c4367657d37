package contracts

import (
	"context"

	"github.com/light-bringer/teetime-pricing/internal/app/pricing/domain"
)

// CourseSnapshot is the full pricing configuration of one course as a single
// structured document. It is both the export/import payload (human-readable
// JSON backups) and the exchange shape of the persistence port.
type CourseSnapshot struct {
	Seasons          []domain.Season          `json:"seasons"`
	TimeBands        []domain.TimeBand        `json:"time_bands"`
	PriceRules       []domain.PriceRule       `json:"price_rules"`
	SpecialOverrides []domain.SpecialOverride `json:"special_overrides"`
	BaseProduct      *domain.BaseProduct      `json:"base_product,omitempty"`
}

// PricingStore is the persistence port the engine depends on. The engine
// itself stays synchronous and in-memory; only Load and Save touch durable
// storage, and only when the host asks for them. A failed Load leaves the
// engine's prior state intact; a failed Save leaves the in-memory mutation
// applied but not durable, and the host may retry the Save independently.
// The engine adds no retry, timeout, or cancellation semantics of its own.
type PricingStore interface {
	// Load fetches a course's snapshot. A course with no stored records
	// yields an empty snapshot, not an error.
	Load(ctx context.Context, courseID string) (*CourseSnapshot, error)

	// Save replaces a course's stored records with the snapshot, atomically.
	Save(ctx context.Context, courseID string, snap *CourseSnapshot) error
}
