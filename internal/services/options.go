package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/rs/zerolog"

	"github.com/light-bringer/teetime-pricing/internal/app/pricing/contracts"
	"github.com/light-bringer/teetime-pricing/internal/app/pricing/engine"
	"github.com/light-bringer/teetime-pricing/internal/app/pricing/repo"
	"github.com/light-bringer/teetime-pricing/internal/pkg/clock"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	Store         contracts.PricingStore
	Engine        *engine.Engine
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, spannerDB string, log zerolog.Logger) (*ServiceOptions, error) {
	spannerClient, err := spanner.NewClient(ctx, spannerDB)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	clk := clock.NewRealClock()
	store := repo.NewStore(spannerClient, log)
	eng := engine.New(store, clk)

	return &ServiceOptions{
		SpannerClient: spannerClient,
		Store:         store,
		Engine:        eng,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
