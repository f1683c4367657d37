package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/teetime-pricing/internal/app/pricing/domain"
)

// Repository mutations. Each one is synchronous, atomic at single-record
// granularity, and immediately visible to subsequent calculations. There is
// no transactional grouping across mutations: a calculation run between two
// related changes may observe a partially updated rule set. Every mutation
// purges the whole course's cache.

// AddSeason stores a new season, assigning an ID when blank.
func (e *Engine) AddSeason(courseID string, s domain.Season) (*domain.Season, error) {
	s.CourseID = courseID
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	st := e.ensureCourse(courseID)
	st.seasons = append(st.seasons, s)
	e.cache.purgeCourse(courseID)
	return &s, nil
}

// UpdateSeason replaces a season in place, keyed by its ID.
func (e *Engine) UpdateSeason(courseID string, s domain.Season) error {
	s.CourseID = courseID
	if err := s.Validate(); err != nil {
		return err
	}
	st := e.ensureCourse(courseID)
	for i := range st.seasons {
		if st.seasons[i].ID == s.ID {
			st.seasons[i] = s
			e.cache.purgeCourse(courseID)
			return nil
		}
	}
	return notFound("season", s.ID)
}

// DeleteSeason removes a season by ID.
func (e *Engine) DeleteSeason(courseID, seasonID string) error {
	st := e.ensureCourse(courseID)
	for i := range st.seasons {
		if st.seasons[i].ID == seasonID {
			st.seasons = append(st.seasons[:i], st.seasons[i+1:]...)
			e.cache.purgeCourse(courseID)
			return nil
		}
	}
	return notFound("season", seasonID)
}

// AddTimeBand stores a new time band, assigning an ID when blank.
func (e *Engine) AddTimeBand(courseID string, b domain.TimeBand) (*domain.TimeBand, error) {
	b.CourseID = courseID
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	st := e.ensureCourse(courseID)
	st.timeBands = append(st.timeBands, b)
	e.cache.purgeCourse(courseID)
	return &b, nil
}

// UpdateTimeBand replaces a time band in place, keyed by its ID.
func (e *Engine) UpdateTimeBand(courseID string, b domain.TimeBand) error {
	b.CourseID = courseID
	if err := b.Validate(); err != nil {
		return err
	}
	st := e.ensureCourse(courseID)
	for i := range st.timeBands {
		if st.timeBands[i].ID == b.ID {
			st.timeBands[i] = b
			e.cache.purgeCourse(courseID)
			return nil
		}
	}
	return notFound("time band", b.ID)
}

// DeleteTimeBand removes a time band by ID.
func (e *Engine) DeleteTimeBand(courseID, bandID string) error {
	st := e.ensureCourse(courseID)
	for i := range st.timeBands {
		if st.timeBands[i].ID == bandID {
			st.timeBands = append(st.timeBands[:i], st.timeBands[i+1:]...)
			e.cache.purgeCourse(courseID)
			return nil
		}
	}
	return notFound("time band", bandID)
}

// AddPriceRule stores a new price rule, assigning an ID when blank.
func (e *Engine) AddPriceRule(courseID string, r domain.PriceRule) (*domain.PriceRule, error) {
	r.CourseID = courseID
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	st := e.ensureCourse(courseID)
	st.priceRules = append(st.priceRules, r.Clone())
	e.cache.purgeCourse(courseID)
	return &r, nil
}

// UpdatePriceRule replaces a rule in place, keyed by its ID. The slice
// position is kept so priority ties keep resolving the same way.
func (e *Engine) UpdatePriceRule(courseID string, r domain.PriceRule) error {
	r.CourseID = courseID
	if err := r.Validate(); err != nil {
		return err
	}
	st := e.ensureCourse(courseID)
	for i := range st.priceRules {
		if st.priceRules[i].ID == r.ID {
			st.priceRules[i] = r.Clone()
			e.cache.purgeCourse(courseID)
			return nil
		}
	}
	return notFound("price rule", r.ID)
}

// DeletePriceRule removes a rule by ID.
func (e *Engine) DeletePriceRule(courseID, ruleID string) error {
	st := e.ensureCourse(courseID)
	for i := range st.priceRules {
		if st.priceRules[i].ID == ruleID {
			st.priceRules = append(st.priceRules[:i], st.priceRules[i+1:]...)
			e.cache.purgeCourse(courseID)
			return nil
		}
	}
	return notFound("price rule", ruleID)
}

// AddSpecialOverride stores a new override, assigning an ID when blank.
func (e *Engine) AddSpecialOverride(courseID string, o domain.SpecialOverride) (*domain.SpecialOverride, error) {
	o.CourseID = courseID
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	st := e.ensureCourse(courseID)
	st.overrides = append(st.overrides, o.Clone())
	e.cache.purgeCourse(courseID)
	return &o, nil
}

// UpdateSpecialOverride replaces an override in place, keyed by its ID.
func (e *Engine) UpdateSpecialOverride(courseID string, o domain.SpecialOverride) error {
	o.CourseID = courseID
	if err := o.Validate(); err != nil {
		return err
	}
	st := e.ensureCourse(courseID)
	for i := range st.overrides {
		if st.overrides[i].ID == o.ID {
			st.overrides[i] = o.Clone()
			e.cache.purgeCourse(courseID)
			return nil
		}
	}
	return notFound("special override", o.ID)
}

// DeleteSpecialOverride removes an override by ID.
func (e *Engine) DeleteSpecialOverride(courseID, overrideID string) error {
	st := e.ensureCourse(courseID)
	for i := range st.overrides {
		if st.overrides[i].ID == overrideID {
			st.overrides = append(st.overrides[:i], st.overrides[i+1:]...)
			e.cache.purgeCourse(courseID)
			return nil
		}
	}
	return notFound("special override", overrideID)
}

// PutBaseProduct creates or replaces the course's base product.
func (e *Engine) PutBaseProduct(courseID string, bp domain.BaseProduct) error {
	bp.CourseID = courseID
	if err := bp.Validate(); err != nil {
		return err
	}
	st := e.ensureCourse(courseID)
	st.baseProduct = &bp
	e.cache.purgeCourse(courseID)
	return nil
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, domain.ErrRecordNotFound)
}
