// Package engine holds the in-memory pricing engine: the per-course rule
// repository, the quote cache, bulk administrative operations, and the
// load/save orchestration against the persistence port.
//
// The engine is deliberately unsynchronized. It assumes a single logical
// owner (one process, or one instance per course-serving unit); horizontally
// scaled hosts get independent caches and rule copies, with cross-instance
// staleness bounded only by the host's refresh policy.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/light-bringer/teetime-pricing/internal/app/pricing/contracts"
	"github.com/light-bringer/teetime-pricing/internal/app/pricing/domain"
	"github.com/light-bringer/teetime-pricing/internal/pkg/clock"
)

// Default time-to-live policies for cached quotes.
const (
	// DefaultQuoteTTL bounds how long an on-demand quote may be served from
	// cache.
	DefaultQuoteTTL = 10 * time.Minute
	// DefaultCalendarTTL applies to bulk pre-calculated calendar prices,
	// which are display-grade rather than checkout-accurate.
	DefaultCalendarTTL = 24 * time.Hour
)

// Representative request parameters for calendar pre-calculation.
const (
	calendarPlayers       = 4
	calendarLeadTimeHours = 24.0
)

// courseState holds one course's records. Slices keep encounter order, which
// is the priority tie-break during calculation; updates replace records in
// place and never reorder.
type courseState struct {
	baseProduct *domain.BaseProduct
	seasons     []domain.Season
	timeBands   []domain.TimeBand
	priceRules  []domain.PriceRule
	overrides   []domain.SpecialOverride
}

// Engine is the pricing engine facade. All state is constructor-injected so
// multiple course-scoped or test instances coexist without contamination.
type Engine struct {
	store contracts.PricingStore
	clock clock.Clock
	calc  *domain.Calculator

	courses map[string]*courseState
	cache   *priceCache

	quoteTTL    time.Duration
	calendarTTL time.Duration
}

// Option tunes an Engine at construction time.
type Option func(*Engine)

// WithQuoteTTL overrides the on-demand quote cache TTL.
func WithQuoteTTL(d time.Duration) Option {
	return func(e *Engine) { e.quoteTTL = d }
}

// WithCalendarTTL overrides the calendar pre-calculation cache TTL.
func WithCalendarTTL(d time.Duration) Option {
	return func(e *Engine) { e.calendarTTL = d }
}

// New creates an Engine. The store may be nil for hosts that never persist.
func New(store contracts.PricingStore, clk clock.Clock, opts ...Option) *Engine {
	e := &Engine{
		store:       store,
		clock:       clk,
		calc:        domain.NewCalculator(clk),
		courses:     make(map[string]*courseState),
		cache:       newPriceCache(clk),
		quoteTTL:    DefaultQuoteTTL,
		calendarTTL: DefaultCalendarTTL,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ensureCourse returns the state for courseID, creating empty state on first
// mutation.
func (e *Engine) ensureCourse(courseID string) *courseState {
	st, ok := e.courses[courseID]
	if !ok {
		st = &courseState{}
		e.courses[courseID] = st
	}
	return st
}

// RuleSet builds the calculator's view of one course. An unknown course
// yields an empty set, which fails calculation with ErrNoBaseProduct.
func (e *Engine) RuleSet(courseID string) *domain.RuleSet {
	rs := &domain.RuleSet{CourseID: courseID}
	st, ok := e.courses[courseID]
	if !ok {
		return rs
	}
	rs.BaseProduct = st.baseProduct
	rs.Seasons = st.seasons
	rs.TimeBands = st.timeBands
	rs.PriceRules = st.priceRules
	rs.SpecialOverrides = st.overrides
	return rs
}

// Quote prices a request without touching the cache.
func (e *Engine) Quote(req domain.QuoteRequest) (*domain.Quote, error) {
	return e.calc.Calculate(e.RuleSet(req.CourseID), req)
}

// QuoteCached prices a request through the cache. The key covers course,
// date, time, player count, and lead time; requests differing only in who
// asks share an entry. Entries expire passively at read time.
func (e *Engine) QuoteCached(req domain.QuoteRequest) (*domain.Quote, error) {
	lead, err := domain.ResolveLeadTime(req, e.clock.Now().UTC())
	if err != nil {
		return nil, err
	}
	req.LeadTimeHours = &lead

	key := cacheKey(req, lead)
	if q, ok := e.cache.get(key); ok {
		return q, nil
	}

	q, err := e.Quote(req)
	if err != nil {
		return nil, err
	}
	e.cache.put(key, *q, e.quoteTTL)
	return q, nil
}

// PrecalculateCalendar computes a month of calendar-view prices for a course:
// one quote per day and active time band, with a representative player count
// and lead time, cached with the long calendar TTL. Blocked slots are
// skipped. It returns the number of prices cached.
func (e *Engine) PrecalculateCalendar(courseID string, year int, month time.Month) (int, error) {
	st, ok := e.courses[courseID]
	if !ok || st.baseProduct == nil {
		return 0, fmt.Errorf("course %s: %w", courseID, domain.ErrNoBaseProduct)
	}

	lead := calendarLeadTimeHours
	cached := 0
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for day := first; day.Month() == month; day = day.AddDate(0, 0, 1) {
		date := day.Format(domain.DateLayout)
		for i := range st.timeBands {
			band := &st.timeBands[i]
			if !band.Active {
				continue
			}
			req := domain.QuoteRequest{
				CourseID:      courseID,
				Date:          date,
				Time:          band.StartTime,
				Players:       calendarPlayers,
				LeadTimeHours: &lead,
			}
			q, err := e.Quote(req)
			if err != nil {
				if isBlocked(err) {
					continue
				}
				return cached, err
			}
			e.cache.put(cacheKey(req, lead), *q, e.calendarTTL)
			cached++
		}
	}
	return cached, nil
}

// Load replaces a course's in-memory state from the store. On failure the
// prior in-memory state is left intact.
func (e *Engine) Load(ctx context.Context, courseID string) error {
	if e.store == nil {
		return fmt.Errorf("course %s: no pricing store configured", courseID)
	}
	snap, err := e.store.Load(ctx, courseID)
	if err != nil {
		return fmt.Errorf("load course %s: %w", courseID, err)
	}
	return e.Import(courseID, snap)
}

// Save persists a course's current in-memory state. On failure the in-memory
// mutations stay applied but are not durable; the caller may retry.
func (e *Engine) Save(ctx context.Context, courseID string) error {
	if e.store == nil {
		return fmt.Errorf("course %s: no pricing store configured", courseID)
	}
	if err := e.store.Save(ctx, courseID, e.Export(courseID)); err != nil {
		return fmt.Errorf("save course %s: %w", courseID, err)
	}
	return nil
}
