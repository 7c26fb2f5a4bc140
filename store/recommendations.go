package store

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/l423r/mealrush-mobile-v2-sub001/internal/api"
	"github.com/l423r/mealrush-mobile-v2-sub001/internal/types"
)

// Recommendations holds three independently cached buckets: recommended
// products (paginated, infinite scroll), insights, and meal picks. A
// non-forced load inside the TTL window is an explicit no-op; a forced
// load always fetches and re-stamps the bucket with the completion time.
type Recommendations struct {
	state
	root  *Root
	deps  Deps
	cache *cacheManager

	products  Paginated[types.Product]
	insights  []types.Insight
	mealPicks []types.Product

	productsOp  AsyncOp
	insightsOp  AsyncOp
	mealPicksOp AsyncOp
}

func newRecommendations(root *Root, deps Deps) *Recommendations {
	return &Recommendations{root: root, deps: deps, cache: newCacheManager(deps.Now)}
}

// RecommendationsSnapshot is an atomic copy of the recommendation state.
type RecommendationsSnapshot struct {
	Products    Paginated[types.Product]
	Insights    []types.Insight
	MealPicks   []types.Product
	ProductsOp  AsyncOp
	InsightsOp  AsyncOp
	MealPicksOp AsyncOp
}

func (s *Recommendations) Snapshot() RecommendationsSnapshot {
	var snap RecommendationsSnapshot
	s.read(func() {
		snap.Products = s.products.snapshot()
		snap.Insights = append([]types.Insight(nil), s.insights...)
		snap.MealPicks = append([]types.Product(nil), s.mealPicks...)
		snap.ProductsOp = s.productsOp
		snap.InsightsOp = s.insightsOp
		snap.MealPicksOp = s.mealPicksOp
	})
	return snap
}

// LoadProducts fetches the first page of recommended products unless the
// bucket is still fresh and force is false.
func (s *Recommendations) LoadProducts(ctx context.Context, force bool) error {
	if !force && s.cache.fresh(bucketProducts) {
		return nil
	}
	ep := s.begin(func() { s.productsOp.start() })

	pg, err := api.RecommendedProducts(ctx, s.deps.Transport, 0, defaultPageSize)
	if err != nil {
		s.commit(ep, func() { s.productsOp.fail(errMessage(err, "Could not load recommendations")) })
		return err
	}
	if s.commit(ep, func() {
		s.productsOp.finish()
		s.products.merge(pg, Replace)
	}) {
		s.cache.stamp(bucketProducts)
	}
	return nil
}

// LoadNextProducts appends the next page; freshness does not gate
// pagination, only first-page loads.
func (s *Recommendations) LoadNextProducts(ctx context.Context) error {
	var next int
	var more bool
	s.read(func() {
		next = s.products.Page + 1
		more = s.products.HasMore
	})
	if !more {
		return nil
	}
	ep := s.begin(func() { s.productsOp.start() })

	pg, err := api.RecommendedProducts(ctx, s.deps.Transport, next, defaultPageSize)
	if err != nil {
		s.commit(ep, func() { s.productsOp.fail(errMessage(err, "Could not load recommendations")) })
		return err
	}
	if s.commit(ep, func() {
		s.productsOp.finish()
		s.products.merge(pg, Append)
	}) {
		s.cache.stamp(bucketProducts)
	}
	return nil
}

// LoadInsights fetches nutrition insights unless the bucket is fresh.
func (s *Recommendations) LoadInsights(ctx context.Context, force bool) error {
	if !force && s.cache.fresh(bucketInsights) {
		return nil
	}
	ep := s.begin(func() { s.insightsOp.start() })

	ins, err := api.Insights(ctx, s.deps.Transport)
	if err != nil {
		s.commit(ep, func() { s.insightsOp.fail(errMessage(err, "Could not load insights")) })
		return err
	}
	if s.commit(ep, func() {
		s.insightsOp.finish()
		s.insights = ins
	}) {
		s.cache.stamp(bucketInsights)
	}
	return nil
}

// LoadMealPicks fetches suggested meal products unless the bucket is
// fresh.
func (s *Recommendations) LoadMealPicks(ctx context.Context, force bool) error {
	if !force && s.cache.fresh(bucketMealPicks) {
		return nil
	}
	ep := s.begin(func() { s.mealPicksOp.start() })

	picks, err := api.MealPicks(ctx, s.deps.Transport, defaultPageSize)
	if err != nil {
		s.commit(ep, func() { s.mealPicksOp.fail(errMessage(err, "Could not load meal suggestions")) })
		return err
	}
	if s.commit(ep, func() {
		s.mealPicksOp.finish()
		s.mealPicks = picks
	}) {
		s.cache.stamp(bucketMealPicks)
	}
	return nil
}

// RefreshAll invalidates every bucket, asks the server to rebuild its own
// recommendation cache, then force-loads all three buckets in parallel.
// Each bucket keeps its own error slot; the returned error joins whatever
// failed without having blocked the rest.
func (s *Recommendations) RefreshAll(ctx context.Context) error {
	s.cache.invalidate()
	if err := api.RefreshRecommendations(ctx, s.deps.Transport); err != nil {
		log.Warn().Err(err).Msg("store: server-side recommendation refresh failed")
	}

	errs := make([]error, 3)
	var wg sync.WaitGroup
	loads := []func() error{
		func() error { return s.LoadProducts(ctx, true) },
		func() error { return s.LoadInsights(ctx, true) },
		func() error { return s.LoadMealPicks(ctx, true) },
	}
	for i, load := range loads {
		wg.Add(1)
		go func(i int, load func() error) {
			defer wg.Done()
			errs[i] = load()
		}(i, load)
	}
	wg.Wait()
	return errors.Join(errs...)
}

func (s *Recommendations) resetState() {
	s.cache.invalidate()
	s.reset(func() {
		s.products.clear()
		s.insights = nil
		s.mealPicks = nil
		s.productsOp = AsyncOp{}
		s.insightsOp = AsyncOp{}
		s.mealPicksOp = AsyncOp{}
	})
}
