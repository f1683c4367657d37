// Package repo implements the PricingStore port on Cloud Spanner.
//
// Save follows the Golden Mutation Pattern: range deletes for all five
// pricing tables plus the snapshot's inserts are collected into one
// CommitPlan and applied atomically, so storage always holds a complete
// rule set for a course, never a partial one.
package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/rs/zerolog"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/teetime-pricing/internal/app/pricing/contracts"
	"github.com/light-bringer/teetime-pricing/internal/models/m_base_product"
	"github.com/light-bringer/teetime-pricing/internal/models/m_price_rule"
	"github.com/light-bringer/teetime-pricing/internal/models/m_season"
	"github.com/light-bringer/teetime-pricing/internal/models/m_special_override"
	"github.com/light-bringer/teetime-pricing/internal/models/m_time_band"
	"github.com/light-bringer/teetime-pricing/internal/pkg/committer"
	"github.com/light-bringer/teetime-pricing/internal/pkg/query"
)

// Store implements contracts.PricingStore for Spanner.
type Store struct {
	client    *spanner.Client
	committer *committer.Committer
	log       zerolog.Logger

	seasons   *m_season.Model
	bands     *m_time_band.Model
	rules     *m_price_rule.Model
	overrides *m_special_override.Model
	base      *m_base_product.Model
}

// NewStore creates a Spanner-backed PricingStore.
func NewStore(client *spanner.Client, log zerolog.Logger) contracts.PricingStore {
	return &Store{
		client:    client,
		committer: committer.NewCommitter(client),
		log:       log.With().Str("component", "pricing_store").Logger(),
		seasons:   m_season.NewModel(),
		bands:     m_time_band.NewModel(),
		rules:     m_price_rule.NewModel(),
		overrides: m_special_override.NewModel(),
		base:      m_base_product.NewModel(),
	}
}

// Load fetches a course's full snapshot. A course with no stored rows yields
// an empty snapshot. Failures are logged and returned; the engine keeps its
// prior in-memory state on a failed load.
func (s *Store) Load(ctx context.Context, courseID string) (*contracts.CourseSnapshot, error) {
	out := &contracts.CourseSnapshot{}

	if err := s.loadSeasons(ctx, courseID, out); err != nil {
		return nil, s.loadFailed(courseID, m_season.TableName, err)
	}
	if err := s.loadTimeBands(ctx, courseID, out); err != nil {
		return nil, s.loadFailed(courseID, m_time_band.TableName, err)
	}
	if err := s.loadPriceRules(ctx, courseID, out); err != nil {
		return nil, s.loadFailed(courseID, m_price_rule.TableName, err)
	}
	if err := s.loadOverrides(ctx, courseID, out); err != nil {
		return nil, s.loadFailed(courseID, m_special_override.TableName, err)
	}
	if err := s.loadBaseProduct(ctx, courseID, out); err != nil {
		return nil, s.loadFailed(courseID, m_base_product.TableName, err)
	}
	return out, nil
}

// Save replaces a course's stored rows with the snapshot atomically.
func (s *Store) Save(ctx context.Context, courseID string, snap *contracts.CourseSnapshot) error {
	plan := committer.NewPlan()

	plan.Add(s.seasons.DeleteCourseMut(courseID))
	plan.Add(s.bands.DeleteCourseMut(courseID))
	plan.Add(s.rules.DeleteCourseMut(courseID))
	plan.Add(s.overrides.DeleteCourseMut(courseID))
	plan.Add(s.base.DeleteCourseMut(courseID))

	for i := range snap.Seasons {
		plan.Add(s.seasons.InsertMut(seasonToData(courseID, &snap.Seasons[i])))
	}
	for i := range snap.TimeBands {
		plan.Add(s.bands.InsertMut(bandToData(courseID, &snap.TimeBands[i])))
	}
	for i := range snap.PriceRules {
		plan.Add(s.rules.InsertMut(ruleToData(courseID, &snap.PriceRules[i], int64(i))))
	}
	for i := range snap.SpecialOverrides {
		plan.Add(s.overrides.InsertMut(overrideToData(courseID, &snap.SpecialOverrides[i])))
	}
	if snap.BaseProduct != nil {
		plan.Add(s.base.InsertMut(baseToData(courseID, snap.BaseProduct)))
	}

	if err := s.committer.Apply(ctx, plan); err != nil {
		s.log.Warn().Err(err).Str("course_id", courseID).Int("mutations", plan.Count()).
			Msg("save failed; in-memory changes are not durable")
		return fmt.Errorf("save course %s: %w", courseID, err)
	}
	s.log.Debug().Str("course_id", courseID).Int("mutations", plan.Count()).Msg("course saved")
	return nil
}

func (s *Store) loadSeasons(ctx context.Context, courseID string, out *contracts.CourseSnapshot) error {
	stmt := query.From(m_season.TableName).
		Select(m_season.Columns...).
		Where(query.Eq(m_season.CourseID, courseID)).
		OrderBy(m_season.SeasonID, query.Asc).
		Build()
	return s.queryRows(ctx, stmt, func(row *spanner.Row) error {
		var data m_season.Data
		if err := row.ToStruct(&data); err != nil {
			return err
		}
		out.Seasons = append(out.Seasons, seasonFromData(&data))
		return nil
	})
}

func (s *Store) loadTimeBands(ctx context.Context, courseID string, out *contracts.CourseSnapshot) error {
	stmt := query.From(m_time_band.TableName).
		Select(m_time_band.Columns...).
		Where(query.Eq(m_time_band.CourseID, courseID)).
		OrderBy(m_time_band.StartTime, query.Asc).
		Build()
	return s.queryRows(ctx, stmt, func(row *spanner.Row) error {
		var data m_time_band.Data
		if err := row.ToStruct(&data); err != nil {
			return err
		}
		out.TimeBands = append(out.TimeBands, bandFromData(&data))
		return nil
	})
}

func (s *Store) loadPriceRules(ctx context.Context, courseID string, out *contracts.CourseSnapshot) error {
	// Ordering by position restores encounter order, the priority tie-break.
	stmt := query.From(m_price_rule.TableName).
		Select(m_price_rule.Columns...).
		Where(query.Eq(m_price_rule.CourseID, courseID)).
		OrderBy(m_price_rule.Position, query.Asc).
		Build()
	return s.queryRows(ctx, stmt, func(row *spanner.Row) error {
		var data m_price_rule.Data
		if err := row.ToStruct(&data); err != nil {
			return err
		}
		out.PriceRules = append(out.PriceRules, ruleFromData(&data))
		return nil
	})
}

func (s *Store) loadOverrides(ctx context.Context, courseID string, out *contracts.CourseSnapshot) error {
	stmt := query.From(m_special_override.TableName).
		Select(m_special_override.Columns...).
		Where(query.Eq(m_special_override.CourseID, courseID)).
		OrderBy(m_special_override.OverrideID, query.Asc).
		Build()
	return s.queryRows(ctx, stmt, func(row *spanner.Row) error {
		var data m_special_override.Data
		if err := row.ToStruct(&data); err != nil {
			return err
		}
		out.SpecialOverrides = append(out.SpecialOverrides, overrideFromData(&data))
		return nil
	})
}

func (s *Store) loadBaseProduct(ctx context.Context, courseID string, out *contracts.CourseSnapshot) error {
	row, err := s.client.Single().ReadRow(ctx, m_base_product.TableName,
		spanner.Key{courseID}, m_base_product.Columns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil
		}
		return err
	}
	var data m_base_product.Data
	if err := row.ToStruct(&data); err != nil {
		return err
	}
	bp := baseFromData(&data)
	out.BaseProduct = &bp
	return nil
}

// queryRows runs a statement and feeds each row to fn.
func (s *Store) queryRows(ctx context.Context, stmt spanner.Statement, fn func(*spanner.Row) error) error {
	iter := s.client.Single().Query(ctx, stmt)
	defer iter.Stop()
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(row); err != nil {
			return err
		}
	}
}

func (s *Store) loadFailed(courseID, table string, err error) error {
	s.log.Warn().Err(err).Str("course_id", courseID).Str("table", table).
		Msg("load failed; engine keeps its prior state")
	return fmt.Errorf("load %s for course %s: %w", table, courseID, err)
}
