package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/l423r/mealrush-mobile-v2-sub001/internal/api"
	"github.com/l423r/mealrush-mobile-v2-sub001/internal/types"
)

// Nutrition holds the analytics views: period rollups, the metric trend,
// range statistics, and goal progress. Each loader fills its own slot;
// they are independent and safe to run concurrently.
type Nutrition struct {
	state
	root *Root
	deps Deps

	daily      *types.NutritionSummary
	weekly     *types.NutritionSummary
	monthly    *types.NutritionSummary
	trend      *types.NutritionTrend
	statistics *types.NutritionStatistics
	progress   *types.NutritionProgress
	loading    bool
	lastError  string

	aggFetched map[periodKey]time.Time
}

// periodKey identifies one aggregate window for the freshness map.
type periodKey struct {
	start, end string
}

func newNutrition(root *Root, deps Deps) *Nutrition {
	return &Nutrition{root: root, deps: deps, aggFetched: make(map[periodKey]time.Time)}
}

// NutritionSnapshot is an atomic copy of the analytics state.
type NutritionSnapshot struct {
	Daily      *types.NutritionSummary
	Weekly     *types.NutritionSummary
	Monthly    *types.NutritionSummary
	Trend      *types.NutritionTrend
	Statistics *types.NutritionStatistics
	Progress   *types.NutritionProgress
	Loading    bool
	LastError  string
}

func (s *Nutrition) Snapshot() NutritionSnapshot {
	var snap NutritionSnapshot
	s.read(func() {
		snap.Daily = s.daily
		snap.Weekly = s.weekly
		snap.Monthly = s.monthly
		snap.Trend = s.trend
		snap.Statistics = s.statistics
		snap.Progress = s.progress
		snap.Loading = s.loading
		snap.LastError = s.lastError
	})
	return snap
}

// doLoad runs one loader: fetch returns the mutation installing its
// result, applied atomically together with the loading flag.
func (s *Nutrition) doLoad(fetch func() (func(), error)) error {
	ep := s.begin(func() {
		s.loading = true
		s.lastError = ""
	})
	apply, err := fetch()
	if err != nil {
		s.commit(ep, func() {
			s.loading = false
			s.lastError = errMessage(err, "Could not load nutrition data")
		})
		return err
	}
	s.commit(ep, func() {
		s.loading = false
		apply()
	})
	return nil
}

// LoadDaily fetches the rollup for one calendar date (YYYY-MM-DD).
func (s *Nutrition) LoadDaily(ctx context.Context, date string) error {
	return s.doLoad(func() (func(), error) {
		sum, err := api.NutritionDaily(ctx, s.deps.Transport, date)
		if err != nil {
			return nil, err
		}
		return func() { s.daily = sum }, nil
	})
}

// LoadWeekly fetches the rollup for the week starting at startDate.
func (s *Nutrition) LoadWeekly(ctx context.Context, startDate string) error {
	return s.doLoad(func() (func(), error) {
		sum, err := api.NutritionWeekly(ctx, s.deps.Transport, startDate)
		if err != nil {
			return nil, err
		}
		return func() { s.weekly = sum }, nil
	})
}

// LoadMonthly fetches the rollup for one month (YYYY-MM).
func (s *Nutrition) LoadMonthly(ctx context.Context, month string) error {
	return s.doLoad(func() (func(), error) {
		sum, err := api.NutritionMonthly(ctx, s.deps.Transport, month)
		if err != nil {
			return nil, err
		}
		return func() { s.monthly = sum }, nil
	})
}

// LoadTrend fetches the dated series for one metric over a range.
func (s *Nutrition) LoadTrend(ctx context.Context, startDate, endDate string, metric types.NutritionMetric) error {
	return s.doLoad(func() (func(), error) {
		tr, err := api.NutritionTrend(ctx, s.deps.Transport, startDate, endDate, metric)
		if err != nil {
			return nil, err
		}
		return func() { s.trend = tr }, nil
	})
}

// LoadStatistics fetches averages and usage stats over a range.
func (s *Nutrition) LoadStatistics(ctx context.Context, startDate, endDate string) error {
	return s.doLoad(func() (func(), error) {
		st, err := api.NutritionStatistics(ctx, s.deps.Transport, startDate, endDate)
		if err != nil {
			return nil, err
		}
		return func() { s.statistics = st }, nil
	})
}

// LoadProgress fetches goal attainment over a range.
func (s *Nutrition) LoadProgress(ctx context.Context, startDate, endDate string) error {
	return s.doLoad(func() (func(), error) {
		pr, err := api.NutritionProgress(ctx, s.deps.Transport, startDate, endDate)
		if err != nil {
			return nil, err
		}
		return func() { s.progress = pr }, nil
	})
}

// LoadAllForPeriod batch-loads the analytics views for one date range:
// the calorie trend, range statistics, and goal progress run
// concurrently, and one loader's failure never cancels the others. A
// non-forced call inside the TTL window for an already-loaded period is
// an explicit no-op; the period is stamped only when every loader
// succeeded, so a partial failure refetches next time.
func (s *Nutrition) LoadAllForPeriod(ctx context.Context, startDate, endDate string, force bool) error {
	key := periodKey{start: startDate, end: endDate}
	if !force && s.periodFresh(key) {
		return nil
	}
	ep := s.begin(func() {})

	errs := make([]error, 3)
	loads := []func() error{
		func() error { return s.LoadTrend(ctx, startDate, endDate, types.MetricCalories) },
		func() error { return s.LoadStatistics(ctx, startDate, endDate) },
		func() error { return s.LoadProgress(ctx, startDate, endDate) },
	}
	var wg sync.WaitGroup
	for i, load := range loads {
		wg.Add(1)
		go func(i int, load func() error) {
			defer wg.Done()
			if err := load(); err != nil {
				log.Warn().Err(err).Str("start", startDate).Str("end", endDate).
					Msg("store: analytics loader failed")
				errs[i] = err
			}
		}(i, load)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return err
	}
	s.commit(ep, func() { s.aggFetched[key] = s.deps.Now() })
	return nil
}

func (s *Nutrition) periodFresh(key periodKey) bool {
	var fresh bool
	s.read(func() {
		at, ok := s.aggFetched[key]
		fresh = ok && s.deps.Now().Sub(at) < CacheTTL
	})
	if fresh {
		cacheHitsTotal.WithLabelValues("analytics").Inc()
	} else {
		cacheMissesTotal.WithLabelValues("analytics").Inc()
	}
	return fresh
}

func (s *Nutrition) resetState() {
	s.reset(func() {
		s.daily = nil
		s.weekly = nil
		s.monthly = nil
		s.trend = nil
		s.statistics = nil
		s.progress = nil
		s.loading = false
		s.lastError = ""
		s.aggFetched = make(map[periodKey]time.Time)
	})
}
