package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/l423r/mealrush-mobile-v2-sub001/internal/transport"
	"github.com/l423r/mealrush-mobile-v2-sub001/internal/types"
)

// RecommendedProducts returns one page of product recommendations.
func RecommendedProducts(ctx context.Context, tc *transport.Client, page, size int) (*types.Page[types.Product], error) {
	var out types.Page[types.Product]
	if err := tc.Get(ctx, "recommended products", epRecProducts, pageQuery(page, size), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Insights returns the current nutrition insights.
func Insights(ctx context.Context, tc *transport.Client) ([]types.Insight, error) {
	var out []types.Insight
	if err := tc.Get(ctx, "insights", epRecInsights, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MealPicks returns products suggested for the next meal.
func MealPicks(ctx context.Context, tc *transport.Client, size int) ([]types.Product, error) {
	q := url.Values{}
	q.Set("size", strconv.Itoa(size))
	var out []types.Product
	if err := tc.Get(ctx, "meal picks", epRecMeals, q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RefreshRecommendations asks the server to rebuild its recommendation
// caches before clients refetch.
func RefreshRecommendations(ctx context.Context, tc *transport.Client) error {
	return tc.Post(ctx, "refresh recommendations", epRecRefresh, struct{}{}, nil)
}
