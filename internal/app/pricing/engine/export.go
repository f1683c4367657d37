package engine

import (
	"errors"

	"github.com/light-bringer/teetime-pricing/internal/app/pricing/contracts"
	"github.com/light-bringer/teetime-pricing/internal/app/pricing/domain"
)

// Export returns a deep copy of a course's full pricing configuration as one
// structured snapshot, suitable for JSON backups and for the store's Save
// payload. An unknown course exports an empty snapshot.
func (e *Engine) Export(courseID string) *contracts.CourseSnapshot {
	snap := &contracts.CourseSnapshot{
		Seasons:          []domain.Season{},
		TimeBands:        []domain.TimeBand{},
		PriceRules:       []domain.PriceRule{},
		SpecialOverrides: []domain.SpecialOverride{},
	}
	st, ok := e.courses[courseID]
	if !ok {
		return snap
	}

	snap.Seasons = append(snap.Seasons, st.seasons...)
	snap.TimeBands = append(snap.TimeBands, st.timeBands...)
	for i := range st.priceRules {
		snap.PriceRules = append(snap.PriceRules, st.priceRules[i].Clone())
	}
	for i := range st.overrides {
		snap.SpecialOverrides = append(snap.SpecialOverrides, st.overrides[i].Clone())
	}
	if st.baseProduct != nil {
		bp := *st.baseProduct
		snap.BaseProduct = &bp
	}
	return snap
}

// Import replaces a course's in-memory state wholesale from a snapshot and
// purges the course's cache. Every record is validated first; a snapshot
// with any invalid record is rejected without touching prior state.
func (e *Engine) Import(courseID string, snap *contracts.CourseSnapshot) error {
	st := &courseState{}

	for i := range snap.Seasons {
		s := snap.Seasons[i]
		s.CourseID = courseID
		if err := s.Validate(); err != nil {
			return err
		}
		st.seasons = append(st.seasons, s)
	}
	for i := range snap.TimeBands {
		b := snap.TimeBands[i]
		b.CourseID = courseID
		if err := b.Validate(); err != nil {
			return err
		}
		st.timeBands = append(st.timeBands, b)
	}
	for i := range snap.PriceRules {
		r := snap.PriceRules[i].Clone()
		r.CourseID = courseID
		if err := r.Validate(); err != nil {
			return err
		}
		st.priceRules = append(st.priceRules, r)
	}
	for i := range snap.SpecialOverrides {
		o := snap.SpecialOverrides[i].Clone()
		o.CourseID = courseID
		if err := o.Validate(); err != nil {
			return err
		}
		st.overrides = append(st.overrides, o)
	}
	if snap.BaseProduct != nil {
		bp := *snap.BaseProduct
		bp.CourseID = courseID
		if err := bp.Validate(); err != nil {
			return err
		}
		st.baseProduct = &bp
	}

	e.courses[courseID] = st
	e.cache.purgeCourse(courseID)
	return nil
}

func isBlocked(err error) bool {
	return errors.Is(err, domain.ErrBlocked)
}
