package store

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/l423r/mealrush-mobile-v2-sub001/internal/api"
	"github.com/l423r/mealrush-mobile-v2-sub001/internal/httperr"
	"github.com/l423r/mealrush-mobile-v2-sub001/internal/types"
)

// Weight holds the paginated weight history, the latest entry, and period
// stats. Mutations cascade into a profile refresh because the server
// derives the profile's current weight from the history; that refresh is
// best-effort and never rolls the mutation back.
type Weight struct {
	state
	root *Root
	deps Deps

	history   Paginated[types.WeightEntry]
	latest    *types.WeightEntry
	stats     *types.WeightStats
	loading   bool
	lastError string
}

func newWeight(root *Root, deps Deps) *Weight {
	return &Weight{root: root, deps: deps}
}

// WeightSnapshot is an atomic copy of the weight state.
type WeightSnapshot struct {
	History   Paginated[types.WeightEntry]
	Latest    *types.WeightEntry
	Stats     *types.WeightStats
	Loading   bool
	LastError string
}

func (s *Weight) Snapshot() WeightSnapshot {
	var snap WeightSnapshot
	s.read(func() {
		snap.History = s.history.snapshot()
		snap.Loading = s.loading
		snap.LastError = s.lastError
		if s.latest != nil {
			e := *s.latest
			snap.Latest = &e
		}
		if s.stats != nil {
			st := *s.stats
			snap.Stats = &st
		}
	})
	return snap
}

// LoadHistory fetches one page of the weight history, newest first.
func (s *Weight) LoadHistory(ctx context.Context, page int, mode MergeMode) error {
	ep := s.begin(func() {
		s.loading = true
		s.lastError = ""
	})

	pg, err := api.ListWeightHistory(ctx, s.deps.Transport, page, defaultPageSize)
	if err != nil {
		s.commit(ep, func() {
			s.loading = false
			s.lastError = errMessage(err, "Could not load weight history")
		})
		return err
	}
	s.commit(ep, func() {
		s.loading = false
		s.history.merge(pg, mode)
	})
	return nil
}

// LoadNextPage appends the next history page; no-op on the last page.
func (s *Weight) LoadNextPage(ctx context.Context) error {
	var next int
	var more bool
	s.read(func() {
		next = s.history.Page + 1
		more = s.history.HasMore
	})
	if !more {
		return nil
	}
	return s.LoadHistory(ctx, next, Append)
}

// LoadLatest fetches the most recent entry. No entries yet is an expected
// empty state, not an error.
func (s *Weight) LoadLatest(ctx context.Context) error {
	ep := s.begin(func() { s.lastError = "" })

	e, err := api.LatestWeight(ctx, s.deps.Transport)
	if httperr.IsNotFound(err) {
		s.commit(ep, func() { s.latest = nil })
		return nil
	}
	if err != nil {
		s.commit(ep, func() { s.lastError = errMessage(err, "Could not load weight") })
		return err
	}
	s.commit(ep, func() { s.latest = e })
	return nil
}

// LoadStats fetches aggregate stats over the trailing period.
func (s *Weight) LoadStats(ctx context.Context, days int) error {
	ep := s.begin(func() { s.lastError = "" })

	st, err := api.WeightStats(ctx, s.deps.Transport, days)
	if err != nil {
		s.commit(ep, func() { s.lastError = errMessage(err, "Could not load weight stats") })
		return err
	}
	s.commit(ep, func() { s.stats = st })
	return nil
}

// AddEntry records a weight measurement. On success the entry joins the
// local history immediately and a profile refresh is issued; a refresh
// failure leaves the profile stale, never the mutation undone.
func (s *Weight) AddEntry(ctx context.Context, req types.AddWeightRequest) (*types.WeightEntry, error) {
	ep := s.begin(func() {
		s.loading = true
		s.lastError = ""
	})

	e, err := api.AddWeight(ctx, s.deps.Transport, req)
	if err != nil {
		s.commit(ep, func() {
			s.loading = false
			s.lastError = errMessage(err, "Could not save the weight entry")
		})
		return nil, err
	}
	s.commit(ep, func() {
		s.loading = false
		s.history.Items = append([]types.WeightEntry{*e}, s.history.Items...)
		s.history.TotalElements++
		if s.latest == nil || !e.RecordedAt.Before(s.latest.RecordedAt) {
			s.latest = e
		}
	})
	s.refreshProfile(ctx)
	return e, nil
}

// DeleteEntry removes a measurement and issues the same best-effort
// profile refresh.
func (s *Weight) DeleteEntry(ctx context.Context, id int64) error {
	ep := s.begin(func() {
		s.loading = true
		s.lastError = ""
	})

	if err := api.DeleteWeight(ctx, s.deps.Transport, id); err != nil {
		s.commit(ep, func() {
			s.loading = false
			s.lastError = errMessage(err, "Could not delete the weight entry")
		})
		return err
	}
	s.commit(ep, func() {
		s.loading = false
		out := s.history.Items[:0]
		for _, e := range s.history.Items {
			if e.ID != id {
				out = append(out, e)
			}
		}
		s.history.Items = out
		if s.history.TotalElements > 0 {
			s.history.TotalElements--
		}
		if s.latest != nil && s.latest.ID == id {
			s.latest = nil
		}
	})
	s.refreshProfile(ctx)
	return nil
}

func (s *Weight) refreshProfile(ctx context.Context) {
	if err := s.root.Profile.Refresh(ctx); err != nil {
		log.Warn().Err(err).Msg("store: profile refresh after weight mutation failed")
	}
}

// RefreshAll reloads history, latest, and stats concurrently with
// log-and-continue semantics; one loader's failure never cancels the
// others.
func (s *Weight) RefreshAll(ctx context.Context, statsDays int) {
	var wg sync.WaitGroup
	for _, load := range []func() error{
		func() error { return s.LoadHistory(ctx, 0, Replace) },
		func() error { return s.LoadLatest(ctx) },
		func() error { return s.LoadStats(ctx, statsDays) },
	} {
		wg.Add(1)
		go func(load func() error) {
			defer wg.Done()
			if err := load(); err != nil {
				log.Warn().Err(err).Msg("store: weight refresh loader failed")
			}
		}(load)
	}
	wg.Wait()
}

// WeeklyChange derives the weight delta against the closest entry at
// least seven days before the latest one. Zero when the history is too
// short to tell.
func (s *Weight) WeeklyChange() float64 {
	var change float64
	s.read(func() {
		if len(s.history.Items) == 0 {
			return
		}
		newest := s.history.Items[0]
		cutoff := newest.RecordedAt.Add(-7 * 24 * time.Hour)
		for _, e := range s.history.Items[1:] {
			if !e.RecordedAt.After(cutoff) {
				change = newest.Weight - e.Weight
				return
			}
		}
	})
	return change
}

func (s *Weight) resetState() {
	s.reset(func() {
		s.history.clear()
		s.latest = nil
		s.stats = nil
		s.loading = false
		s.lastError = ""
	})
}
