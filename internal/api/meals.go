package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/l423r/mealrush-mobile-v2-sub001/internal/transport"
	"github.com/l423r/mealrush-mobile-v2-sub001/internal/types"
)

// ListMealsByDate returns the meals logged on one calendar day (YYYY-MM-DD).
func ListMealsByDate(ctx context.Context, tc *transport.Client, date string) ([]types.Meal, error) {
	q := url.Values{}
	q.Set("date", date)
	var out []types.Meal
	if err := tc.Get(ctx, "list meals", epMealsByDate, q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateMeal opens a meal slot.
func CreateMeal(ctx context.Context, tc *transport.Client, req types.CreateMealRequest) (*types.Meal, error) {
	var out types.Meal
	if err := tc.Post(ctx, "create meal", epMeals, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteMeal removes a meal and all of its elements.
func DeleteMeal(ctx context.Context, tc *transport.Client, id int64) error {
	return tc.Delete(ctx, "delete meal", fmt.Sprintf("%s/%d", epMeals, id))
}

// ListMealElements returns the portions in one meal.
func ListMealElements(ctx context.Context, tc *transport.Client, mealID int64, page, size int) (*types.Page[types.MealElement], error) {
	var out types.Page[types.MealElement]
	path := fmt.Sprintf("%s/%d", epElementsByMeal, mealID)
	if err := tc.Get(ctx, "list meal elements", path, pageQuery(page, size), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateMealElement records one portion in a meal.
func CreateMealElement(ctx context.Context, tc *transport.Client, req types.CreateMealElementRequest) (*types.MealElement, error) {
	var out types.MealElement
	if err := tc.Post(ctx, "create meal element", epMealElements, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMealElement rescales an existing portion.
func UpdateMealElement(ctx context.Context, tc *transport.Client, id int64, req types.UpdateMealElementRequest) (*types.MealElement, error) {
	var out types.MealElement
	if err := tc.Put(ctx, "update meal element", fmt.Sprintf("%s/%d", epMealElements, id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteMealElement removes one portion.
func DeleteMealElement(ctx context.Context, tc *transport.Client, id int64) error {
	return tc.Delete(ctx, "delete meal element", fmt.Sprintf("%s/%d", epMealElements, id))
}

// AnalyzePhoto extracts ingredients from a meal photo. Uses the
// long-deadline client; base64 payloads take the gateway a while.
func AnalyzePhoto(ctx context.Context, tc *transport.Client, req types.PhotoAnalysisRequest) (*types.AnalysisResult, error) {
	var out types.AnalysisResult
	if err := tc.PostHeavy(ctx, "analyze photo", epAnalyzePhoto, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AnalyzeText extracts ingredients from a free-form meal description.
func AnalyzeText(ctx context.Context, tc *transport.Client, req types.TextAnalysisRequest) (*types.AnalysisResult, error) {
	var out types.AnalysisResult
	if err := tc.PostHeavy(ctx, "analyze text", epAnalyzeText, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AnalyzeAudio extracts ingredients from a voice note.
func AnalyzeAudio(ctx context.Context, tc *transport.Client, req types.AudioAnalysisRequest) (*types.AnalysisResult, error) {
	var out types.AnalysisResult
	if err := tc.PostHeavy(ctx, "analyze audio", epAnalyzeAudio, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
