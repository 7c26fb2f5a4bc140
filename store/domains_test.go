package store

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/l423r/mealrush-mobile-v2-sub001/internal/types"
)

func TestProductsReplaceThenAppend(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /product", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("page") {
		case "0":
			writeJSON(t, w, map[string]any{
				"content":       []map[string]any{{"id": 1, "name": "A"}, {"id": 2, "name": "B"}},
				"page":          0,
				"totalPages":    3,
				"totalElements": 6,
				"last":          false,
			})
		case "1":
			writeJSON(t, w, map[string]any{
				"content":       []map[string]any{{"id": 3, "name": "C"}, {"id": 4, "name": "D"}},
				"page":          1,
				"totalPages":    3,
				"totalElements": 6,
				"last":          false,
			})
		default:
			http.NotFound(w, r)
		}
	})
	env := newTestEnv(t, mux)
	ctx := context.Background()

	// Seed list, then check that a page-0 Replace discards it.
	require.NoError(t, env.root.Products.Load(ctx, 1, Append))
	require.NoError(t, env.root.Products.Load(ctx, 0, Replace))

	snap := env.root.Products.Snapshot()
	require.Len(t, snap.Mine.Items, 2)
	require.Equal(t, "A", snap.Mine.Items[0].Name)
	require.Equal(t, "B", snap.Mine.Items[1].Name)
	require.True(t, snap.Mine.HasMore)
	require.False(t, snap.Loading)

	require.NoError(t, env.root.Products.LoadNextPage(ctx))
	snap = env.root.Products.Snapshot()
	names := make([]string, 0, len(snap.Mine.Items))
	for _, p := range snap.Mine.Items {
		names = append(names, p.Name)
	}
	require.Equal(t, []string{"A", "B", "C", "D"}, names)
	require.Equal(t, 1, snap.Mine.Page)
}

func TestProductsLastPageStopsPagination(t *testing.T) {
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /product", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(t, w, map[string]any{
			"content": []map[string]any{{"id": 1, "name": "A"}},
			"page":    0, "totalPages": 1, "totalElements": 1, "last": true,
		})
	})
	env := newTestEnv(t, mux)
	ctx := context.Background()

	require.NoError(t, env.root.Products.Load(ctx, 0, Replace))
	require.False(t, env.root.Products.Snapshot().Mine.HasMore)
	require.NoError(t, env.root.Products.LoadNextPage(ctx))
	require.Equal(t, int32(1), calls.Load())
}

func TestRecommendationsCacheFreshness(t *testing.T) {
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /recommendations/products", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(t, w, map[string]any{
			"content": []map[string]any{{"id": 1, "name": "Kale"}},
			"page":    0, "totalPages": 1, "totalElements": 1, "last": true,
		})
	})
	env := newTestEnv(t, mux)
	ctx := context.Background()
	rec := env.root.Recommendations

	require.NoError(t, rec.LoadProducts(ctx, false))
	require.Equal(t, int32(1), calls.Load())

	// Within the TTL window: explicit no-op, state unchanged.
	env.clock.Advance(4 * time.Minute)
	require.NoError(t, rec.LoadProducts(ctx, false))
	require.Equal(t, int32(1), calls.Load())
	require.Len(t, rec.Snapshot().Products.Items, 1)

	// Past the TTL window: exactly one new call.
	env.clock.Advance(2 * time.Minute)
	require.NoError(t, rec.LoadProducts(ctx, false))
	require.Equal(t, int32(2), calls.Load())

	// Forced: fetches regardless of freshness and re-stamps.
	require.NoError(t, rec.LoadProducts(ctx, true))
	require.Equal(t, int32(3), calls.Load())
	env.clock.Advance(4 * time.Minute)
	require.NoError(t, rec.LoadProducts(ctx, false))
	require.Equal(t, int32(3), calls.Load())
}

func TestRecommendationsRefreshAllIsolatesBucketFailures(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /recommendations/refresh", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /recommendations/products", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{
			"content": []map[string]any{{"id": 1, "name": "Kale"}},
			"page":    0, "totalPages": 1, "totalElements": 1, "last": true,
		})
	})
	mux.HandleFunc("GET /recommendations/insights", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"insights are down"}`, http.StatusServiceUnavailable)
	})
	mux.HandleFunc("GET /recommendations/meals", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []map[string]any{{"id": 2, "name": "Oats"}})
	})
	env := newTestEnv(t, mux)

	err := env.root.Recommendations.RefreshAll(context.Background())
	require.Error(t, err)

	snap := env.root.Recommendations.Snapshot()
	require.Len(t, snap.Products.Items, 1)
	require.Len(t, snap.MealPicks, 1)
	require.Empty(t, snap.Insights)
	require.Equal(t, "insights are down", snap.InsightsOp.Err)
	require.Empty(t, snap.ProductsOp.Err)
	require.Empty(t, snap.MealPicksOp.Err)
}

func TestWeightCascadeDoesNotRollBackMutation(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /weight-history", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{
			"id": 42, "userId": 1, "weight": 79.5,
			"recordedAt": "2025-06-01T08:00:00Z",
		})
	})
	mux.HandleFunc("GET /user-profile", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"boom"}`, http.StatusInternalServerError)
	})
	env := newTestEnv(t, mux)

	e, err := env.root.Weight.AddEntry(context.Background(), types.AddWeightRequest{Weight: 79.5})
	require.NoError(t, err)
	require.Equal(t, int64(42), e.ID)

	snap := env.root.Weight.Snapshot()
	require.Len(t, snap.History.Items, 1)
	require.Equal(t, 79.5, snap.History.Items[0].Weight)
	require.NotNil(t, snap.Latest)
	require.Empty(t, snap.LastError)
}

func TestWeightLatestNotFoundIsEmptyState(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /weight-history/latest", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"no entries"}`, http.StatusNotFound)
	})
	env := newTestEnv(t, mux)

	require.NoError(t, env.root.Weight.LoadLatest(context.Background()))
	snap := env.root.Weight.Snapshot()
	require.Nil(t, snap.Latest)
	require.Empty(t, snap.LastError)
}

func TestAnalysisStatusMessages(t *testing.T) {
	status := map[string]int{
		"photo": http.StatusServiceUnavailable,
		"text":  http.StatusBadRequest,
		"audio": http.StatusRequestTimeout,
	}
	mux := http.NewServeMux()
	for _, kind := range []string{"photo", "text", "audio"} {
		kind := kind
		mux.HandleFunc("POST /meal_element/analyze-"+kind, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "{}", status[kind])
		})
	}
	env := newTestEnv(t, mux)
	ctx := context.Background()
	meals := env.root.Meals

	_, err := meals.AnalyzePhoto(ctx, types.PhotoAnalysisRequest{ImageBase64: "aGk="})
	require.Error(t, err)
	_, err = meals.AnalyzeText(ctx, types.TextAnalysisRequest{Description: "two eggs"})
	require.Error(t, err)
	_, err = meals.AnalyzeAudio(ctx, types.AudioAnalysisRequest{AudioBase64: "aGk="})
	require.Error(t, err)

	snap := meals.Snapshot()
	require.Equal(t, "The analysis service is temporarily unavailable", snap.PhotoOp.Err)
	require.Equal(t, "The input is missing or has an invalid format", snap.TextOp.Err)
	require.Equal(t, "Analysis timed out, please try again", snap.AudioOp.Err)
	require.False(t, snap.PhotoOp.InProgress)
	require.False(t, snap.TextOp.InProgress)
	require.False(t, snap.AudioOp.InProgress)
}

func TestMealsDailyNutrientsComputedFromElements(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /meal/findByDate", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []map[string]any{
			{"id": 1, "mealType": "BREAKFAST", "dateTime": "2025-06-01T08:00:00Z"},
			{"id": 2, "mealType": "LUNCH", "dateTime": "2025-06-01T13:00:00Z"},
		})
	})
	mux.HandleFunc("GET /meal_element/meal/{id}", func(w http.ResponseWriter, r *http.Request) {
		var els []map[string]any
		switch r.PathValue("id") {
		case "1":
			els = []map[string]any{{"id": 10, "mealId": 1, "name": "Eggs", "proteins": 12, "fats": 10, "carbohydrates": 1, "calories": 150}}
		case "2":
			els = []map[string]any{{"id": 20, "mealId": 2, "name": "Rice", "proteins": 4, "fats": 1, "carbohydrates": 45, "calories": 210}}
		}
		writeJSON(t, w, map[string]any{"content": els, "page": 0, "totalPages": 1, "last": true})
	})
	env := newTestEnv(t, mux)

	require.NoError(t, env.root.Meals.LoadForDate(context.Background(), "2025-06-01"))

	totals := env.root.Meals.DailyNutrients()
	require.Equal(t, 16.0, totals.Proteins)
	require.Equal(t, 11.0, totals.Fats)
	require.Equal(t, 46.0, totals.Carbohydrates)
	require.Equal(t, 360.0, totals.Calories)
}

func TestPreferenceValidationBlocksRequest(t *testing.T) {
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("PATCH /notifications/preferences", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(t, w, map[string]any{"globallyEnabled": true})
	})
	env := newTestEnv(t, mux)
	ctx := context.Background()
	ns := env.root.Notifications

	// Snack reminders must carry a time and a 5-120 minute offset.
	err := ns.UpdatePreferences(ctx, SetMealReminder(types.MealSupper, types.MealReminder{
		Enabled:       true,
		MinutesBefore: 15,
	}))
	require.Error(t, err)

	err = ns.UpdatePreferences(ctx, SetMealReminder(types.MealLateSupper, types.MealReminder{
		Enabled:       true,
		Time:          "21:30",
		MinutesBefore: 121,
	}))
	require.Error(t, err)
	require.Equal(t, int32(0), calls.Load())

	err = ns.UpdatePreferences(ctx,
		SetGlobalEnabled(true),
		SetMealReminder(types.MealSupper, types.MealReminder{
			Enabled:       true,
			Time:          "17:00",
			MinutesBefore: 30,
		}))
	require.NoError(t, err)
	require.Equal(t, int32(1), calls.Load())
}

func TestNutritionAggregatesBatchLoadAndCache(t *testing.T) {
	var trendCalls, statsCalls, progressCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /nutrition/trend", func(w http.ResponseWriter, r *http.Request) {
		trendCalls.Add(1)
		writeJSON(t, w, map[string]any{"metricType": "CALORIES", "direction": "STABLE"})
	})
	mux.HandleFunc("GET /nutrition/statistics", func(w http.ResponseWriter, r *http.Request) {
		statsCalls.Add(1)
		writeJSON(t, w, map[string]any{"averageCalories": 1800, "totalDays": 7})
	})
	mux.HandleFunc("GET /nutrition/progress", func(w http.ResponseWriter, r *http.Request) {
		progressCalls.Add(1)
		writeJSON(t, w, map[string]any{"goalStatus": "ON_TRACK"})
	})
	env := newTestEnv(t, mux)
	ctx := context.Background()
	n := env.root.Nutrition

	require.NoError(t, n.LoadAllForPeriod(ctx, "2025-05-25", "2025-06-01", false))
	require.Equal(t, int32(1), trendCalls.Load())
	require.Equal(t, int32(1), statsCalls.Load())
	require.Equal(t, int32(1), progressCalls.Load())

	snap := n.Snapshot()
	require.NotNil(t, snap.Trend)
	require.NotNil(t, snap.Statistics)
	require.NotNil(t, snap.Progress)
	require.Equal(t, types.GoalOnTrack, snap.Progress.GoalStatus)

	// Same period within the TTL window: explicit no-op.
	env.clock.Advance(4 * time.Minute)
	require.NoError(t, n.LoadAllForPeriod(ctx, "2025-05-25", "2025-06-01", false))
	require.Equal(t, int32(1), trendCalls.Load())

	// A different period is its own bucket.
	require.NoError(t, n.LoadAllForPeriod(ctx, "2025-06-01", "2025-06-08", false))
	require.Equal(t, int32(2), trendCalls.Load())

	// Past the TTL window, and forced at any time, refetch.
	env.clock.Advance(2 * time.Minute)
	require.NoError(t, n.LoadAllForPeriod(ctx, "2025-05-25", "2025-06-01", false))
	require.Equal(t, int32(3), trendCalls.Load())
	require.NoError(t, n.LoadAllForPeriod(ctx, "2025-05-25", "2025-06-01", true))
	require.Equal(t, int32(4), trendCalls.Load())
}

func TestNutritionAggregatesPartialFailureNotCached(t *testing.T) {
	var statsFail atomic.Bool
	statsFail.Store(true)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /nutrition/trend", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{"metricType": "CALORIES", "direction": "STABLE"})
	})
	mux.HandleFunc("GET /nutrition/statistics", func(w http.ResponseWriter, r *http.Request) {
		if statsFail.Load() {
			http.Error(w, `{"message":"stats are down"}`, http.StatusServiceUnavailable)
			return
		}
		writeJSON(t, w, map[string]any{"averageCalories": 1800})
	})
	mux.HandleFunc("GET /nutrition/progress", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{"goalStatus": "ON_TRACK"})
	})
	env := newTestEnv(t, mux)
	ctx := context.Background()
	n := env.root.Nutrition

	// One loader down: the others still land, the call reports failure.
	err := n.LoadAllForPeriod(ctx, "2025-05-25", "2025-06-01", false)
	require.Error(t, err)
	snap := n.Snapshot()
	require.NotNil(t, snap.Trend)
	require.NotNil(t, snap.Progress)
	require.Nil(t, snap.Statistics)

	// The period was not stamped, so the next non-forced call retries.
	statsFail.Store(false)
	require.NoError(t, n.LoadAllForPeriod(ctx, "2025-05-25", "2025-06-01", false))
	require.NotNil(t, n.Snapshot().Statistics)
}

func TestPreferencePatchLeavesUnsetFieldsAlone(t *testing.T) {
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("PATCH /notifications/preferences", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(t, w, map[string]any{"globallyEnabled": true})
	})
	env := newTestEnv(t, mux)
	ctx := context.Background()
	ns := env.root.Notifications

	// Zero MinutesBefore means "unchanged" for the main meals; only a
	// set value is range-checked.
	err := ns.UpdatePreferences(ctx, SetMealReminder(types.MealBreakfast, types.MealReminder{
		Enabled: true,
		Time:    "08:30",
	}))
	require.NoError(t, err)
	require.Equal(t, int32(1), calls.Load())

	err = ns.UpdatePreferences(ctx, SetMealReminder(types.MealBreakfast, types.MealReminder{
		Enabled:       true,
		MinutesBefore: 3,
	}))
	require.Error(t, err)
	require.Equal(t, int32(1), calls.Load())
}

func TestDeviceRegistrationIsNoOpWithoutToken(t *testing.T) {
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("POST /notifications/device", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(t, w, map[string]any{"id": 1, "deviceToken": "fcm-1", "deviceType": "ANDROID"})
	})
	env := newTestEnv(t, mux)
	ctx := context.Background()
	ns := env.root.Notifications

	require.NoError(t, ns.RegisterPendingDevice(ctx))
	require.Equal(t, int32(0), calls.Load())

	ns.SetDeviceToken("fcm-1", types.DeviceAndroid)
	require.NoError(t, ns.RegisterPendingDevice(ctx))
	require.Equal(t, int32(1), calls.Load())
	require.True(t, ns.Snapshot().Registered)
}

func TestWeeklyChange(t *testing.T) {
	env := newTestEnv(t, http.NewServeMux())
	w := env.root.Weight

	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	w.mutate(func() {
		w.history.Items = []types.WeightEntry{
			{ID: 3, Weight: 79.0, RecordedAt: base},
			{ID: 2, Weight: 80.0, RecordedAt: base.Add(-3 * 24 * time.Hour)},
			{ID: 1, Weight: 81.5, RecordedAt: base.Add(-8 * 24 * time.Hour)},
		}
	})
	require.InDelta(t, -2.5, w.WeeklyChange(), 1e-9)

	w.mutate(func() { w.history.Items = nil })
	require.Zero(t, w.WeeklyChange())
}

func TestBarcodeLookup(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /product/search/barcode", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("barcode") != "4600000000001" {
			http.Error(w, `{"message":"unknown code"}`, http.StatusNotFound)
			return
		}
		writeJSON(t, w, map[string]any{
			"content": []map[string]any{{"id": 5, "name": "Yogurt", "code": "4600000000001"}},
			"page":    0, "totalPages": 1, "last": true,
		})
	})
	env := newTestEnv(t, mux)
	ctx := context.Background()

	p, err := env.root.Products.LookupBarcode(ctx, "4600000000001")
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Equal(t, "Yogurt", p.Name)

	p, err = env.root.Products.LookupBarcode(ctx, "000")
	require.NoError(t, err)
	require.Nil(t, p)
}
