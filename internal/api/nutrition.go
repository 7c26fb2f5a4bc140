package api

import (
	"context"
	"net/url"

	"github.com/l423r/mealrush-mobile-v2-sub001/internal/transport"
	"github.com/l423r/mealrush-mobile-v2-sub001/internal/types"
)

// NutritionDaily returns the macro rollup for one date (YYYY-MM-DD).
func NutritionDaily(ctx context.Context, tc *transport.Client, date string) (*types.NutritionSummary, error) {
	q := url.Values{}
	q.Set("date", date)
	var out types.NutritionSummary
	if err := tc.Get(ctx, "daily summary", epNutritionDaily, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// NutritionWeekly returns the rollup for the week starting at startDate.
func NutritionWeekly(ctx context.Context, tc *transport.Client, startDate string) (*types.NutritionSummary, error) {
	q := url.Values{}
	q.Set("startDate", startDate)
	var out types.NutritionSummary
	if err := tc.Get(ctx, "weekly summary", epNutritionWeekly, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// NutritionMonthly returns the rollup for one month (YYYY-MM).
func NutritionMonthly(ctx context.Context, tc *transport.Client, month string) (*types.NutritionSummary, error) {
	q := url.Values{}
	q.Set("month", month)
	var out types.NutritionSummary
	if err := tc.Get(ctx, "monthly summary", epNutritionMonthly, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// NutritionTrend returns the dated series for one metric over a range.
func NutritionTrend(ctx context.Context, tc *transport.Client, startDate, endDate string, metric types.NutritionMetric) (*types.NutritionTrend, error) {
	q := url.Values{}
	q.Set("startDate", startDate)
	q.Set("endDate", endDate)
	q.Set("metric", string(metric))
	var out types.NutritionTrend
	if err := tc.Get(ctx, "nutrition trend", epNutritionTrend, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// NutritionStatistics returns averages and product usage over a range.
func NutritionStatistics(ctx context.Context, tc *transport.Client, startDate, endDate string) (*types.NutritionStatistics, error) {
	q := url.Values{}
	q.Set("startDate", startDate)
	q.Set("endDate", endDate)
	var out types.NutritionStatistics
	if err := tc.Get(ctx, "nutrition statistics", epNutritionStats, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// NutritionProgress returns goal attainment over a range.
func NutritionProgress(ctx context.Context, tc *transport.Client, startDate, endDate string) (*types.NutritionProgress, error) {
	q := url.Values{}
	q.Set("startDate", startDate)
	q.Set("endDate", endDate)
	var out types.NutritionProgress
	if err := tc.Get(ctx, "nutrition progress", epNutritionProg, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
