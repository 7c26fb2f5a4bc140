package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/l423r/mealrush-mobile-v2-sub001/internal/transport"
	"github.com/l423r/mealrush-mobile-v2-sub001/internal/types"
)

// AddWeight records a weight measurement. The server recomputes the
// profile's current weight as a side effect; stores follow up with a
// profile refresh.
func AddWeight(ctx context.Context, tc *transport.Client, req types.AddWeightRequest) (*types.WeightEntry, error) {
	var out types.WeightEntry
	if err := tc.Post(ctx, "add weight", epWeight, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListWeightHistory returns one page of weight history, newest first.
func ListWeightHistory(ctx context.Context, tc *transport.Client, page, size int) (*types.Page[types.WeightEntry], error) {
	var out types.Page[types.WeightEntry]
	if err := tc.Get(ctx, "list weight history", epWeight, pageQuery(page, size), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LatestWeight returns the most recent entry. 404 means no entries exist
// yet; callers map it to an empty state.
func LatestWeight(ctx context.Context, tc *transport.Client) (*types.WeightEntry, error) {
	var out types.WeightEntry
	if err := tc.Get(ctx, "latest weight", epWeightLatest, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// WeightStats summarizes movement over the trailing days window.
func WeightStats(ctx context.Context, tc *transport.Client, days int) (*types.WeightStats, error) {
	q := url.Values{}
	q.Set("days", strconv.Itoa(days))
	var out types.WeightStats
	if err := tc.Get(ctx, "weight stats", epWeightStats, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteWeight removes one history entry.
func DeleteWeight(ctx context.Context, tc *transport.Client, id int64) error {
	return tc.Delete(ctx, "delete weight", fmt.Sprintf("%s/%d", epWeight, id))
}
