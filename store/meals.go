package store

import (
	"context"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/l423r/mealrush-mobile-v2-sub001/internal/api"
	"github.com/l423r/mealrush-mobile-v2-sub001/internal/httperr"
	"github.com/l423r/mealrush-mobile-v2-sub001/internal/types"
)

// Meals holds the selected day's meals with their lazily-fetched elements,
// plus the three independent analysis operations. Daily macro totals are
// computed on read from the elements, never stored where they could
// desync.
type Meals struct {
	state
	root *Root
	deps Deps

	selectedDate string
	meals        []types.Meal
	elements     map[int64][]types.MealElement
	loading      bool
	lastError    string

	photoOp AsyncOp
	textOp  AsyncOp
	audioOp AsyncOp
}

func newMeals(root *Root, deps Deps) *Meals {
	return &Meals{root: root, deps: deps, elements: make(map[int64][]types.MealElement)}
}

// MealsSnapshot is an atomic copy of the meal-day state.
type MealsSnapshot struct {
	SelectedDate string
	Meals        []types.Meal
	Elements     map[int64][]types.MealElement
	Loading      bool
	LastError    string
	PhotoOp      AsyncOp
	TextOp       AsyncOp
	AudioOp      AsyncOp
}

func (s *Meals) Snapshot() MealsSnapshot {
	var snap MealsSnapshot
	s.read(func() {
		snap.SelectedDate = s.selectedDate
		snap.Meals = append([]types.Meal(nil), s.meals...)
		snap.Elements = make(map[int64][]types.MealElement, len(s.elements))
		for id, els := range s.elements {
			snap.Elements[id] = append([]types.MealElement(nil), els...)
		}
		snap.Loading = s.loading
		snap.LastError = s.lastError
		snap.PhotoOp = s.photoOp
		snap.TextOp = s.textOp
		snap.AudioOp = s.audioOp
	})
	return snap
}

// DailyNutrients sums the macros of every element of every loaded meal
// for the selected date.
func (s *Meals) DailyNutrients() types.NutrientTotals {
	var t types.NutrientTotals
	s.read(func() {
		for _, m := range s.meals {
			for _, el := range s.elements[m.ID] {
				t.Proteins += el.Proteins
				t.Fats += el.Fats
				t.Carbohydrates += el.Carbohydrates
				t.Calories += el.Calories
			}
		}
	})
	return t
}

// LoadForDate fetches the meals for a calendar date (YYYY-MM-DD) and
// their elements. Element fetches run concurrently; a failure for one
// meal logs and leaves that meal's elements empty without failing the
// load.
func (s *Meals) LoadForDate(ctx context.Context, date string) error {
	ep := s.begin(func() {
		s.selectedDate = date
		s.loading = true
		s.lastError = ""
	})

	meals, err := api.ListMealsByDate(ctx, s.deps.Transport, date)
	if err != nil {
		s.commit(ep, func() {
			s.loading = false
			s.lastError = errMessage(err, "Could not load meals")
		})
		return err
	}

	elements := make(map[int64][]types.MealElement, len(meals))
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, m := range meals {
		wg.Add(1)
		go func(mealID int64) {
			defer wg.Done()
			pg, err := api.ListMealElements(ctx, s.deps.Transport, mealID, 0, defaultPageSize)
			if err != nil {
				log.Warn().Err(err).Int64("meal", mealID).Msg("store: could not load meal elements")
				return
			}
			mu.Lock()
			elements[mealID] = pg.Content
			mu.Unlock()
		}(m.ID)
	}
	wg.Wait()

	s.commit(ep, func() {
		s.loading = false
		s.meals = meals
		s.elements = elements
	})
	return nil
}

// AddMeal creates a meal; it joins the local day when the dates match.
func (s *Meals) AddMeal(ctx context.Context, req types.CreateMealRequest) (*types.Meal, error) {
	ep := s.begin(func() { s.lastError = "" })

	m, err := api.CreateMeal(ctx, s.deps.Transport, req)
	if err != nil {
		s.commit(ep, func() { s.lastError = errMessage(err, "Could not create the meal") })
		return nil, err
	}
	s.commit(ep, func() {
		if s.selectedDate != "" && m.DateTime.Format("2006-01-02") == s.selectedDate {
			s.meals = append(s.meals, *m)
		}
	})
	return m, nil
}

// DeleteMeal removes a meal and its cached elements.
func (s *Meals) DeleteMeal(ctx context.Context, id int64) error {
	ep := s.begin(func() { s.lastError = "" })

	if err := api.DeleteMeal(ctx, s.deps.Transport, id); err != nil {
		s.commit(ep, func() { s.lastError = errMessage(err, "Could not delete the meal") })
		return err
	}
	s.commit(ep, func() {
		out := s.meals[:0]
		for _, m := range s.meals {
			if m.ID != id {
				out = append(out, m)
			}
		}
		s.meals = out
		delete(s.elements, id)
	})
	return nil
}

// AddElement appends a food item to a meal.
func (s *Meals) AddElement(ctx context.Context, req types.CreateMealElementRequest) (*types.MealElement, error) {
	ep := s.begin(func() { s.lastError = "" })

	el, err := api.CreateMealElement(ctx, s.deps.Transport, req)
	if err != nil {
		s.commit(ep, func() { s.lastError = errMessage(err, "Could not add the item") })
		return nil, err
	}
	s.commit(ep, func() {
		s.elements[el.MealID] = append(s.elements[el.MealID], *el)
	})
	return el, nil
}

// UpdateElement patches an element in place, wherever its meal lives in
// the cache.
func (s *Meals) UpdateElement(ctx context.Context, id int64, req types.UpdateMealElementRequest) (*types.MealElement, error) {
	ep := s.begin(func() { s.lastError = "" })

	el, err := api.UpdateMealElement(ctx, s.deps.Transport, id, req)
	if err != nil {
		s.commit(ep, func() { s.lastError = errMessage(err, "Could not update the item") })
		return nil, err
	}
	s.commit(ep, func() {
		els := s.elements[el.MealID]
		for i := range els {
			if els[i].ID == el.ID {
				els[i] = *el
			}
		}
	})
	return el, nil
}

// DeleteElement removes an element from its meal.
func (s *Meals) DeleteElement(ctx context.Context, mealID, id int64) error {
	ep := s.begin(func() { s.lastError = "" })

	if err := api.DeleteMealElement(ctx, s.deps.Transport, id); err != nil {
		s.commit(ep, func() { s.lastError = errMessage(err, "Could not remove the item") })
		return err
	}
	s.commit(ep, func() {
		els := s.elements[mealID]
		out := els[:0]
		for _, el := range els {
			if el.ID != id {
				out = append(out, el)
			}
		}
		s.elements[mealID] = out
	})
	return nil
}

// AnalyzePhoto submits a meal photo for ingredient recognition. Failures
// land in the photo operation's error slot with the fixed status mapping;
// no automatic retry.
func (s *Meals) AnalyzePhoto(ctx context.Context, req types.PhotoAnalysisRequest) (*types.AnalysisResult, error) {
	if req.Language == "" {
		req.Language = "en"
	}
	ep := s.begin(func() { s.photoOp.start() })

	res, err := api.AnalyzePhoto(ctx, s.deps.Transport, req)
	if err != nil {
		s.commit(ep, func() { s.photoOp.fail(analysisMessage(err)) })
		return nil, err
	}
	s.commit(ep, func() { s.photoOp.finish() })
	return res, nil
}

// AnalyzeText submits a free-text meal description for analysis.
func (s *Meals) AnalyzeText(ctx context.Context, req types.TextAnalysisRequest) (*types.AnalysisResult, error) {
	if req.Language == "" {
		req.Language = "en"
	}
	ep := s.begin(func() { s.textOp.start() })

	res, err := api.AnalyzeText(ctx, s.deps.Transport, req)
	if err != nil {
		s.commit(ep, func() { s.textOp.fail(analysisMessage(err)) })
		return nil, err
	}
	s.commit(ep, func() { s.textOp.finish() })
	return res, nil
}

// AnalyzeAudio submits a dictated meal description for analysis.
func (s *Meals) AnalyzeAudio(ctx context.Context, req types.AudioAnalysisRequest) (*types.AnalysisResult, error) {
	if req.Language == "" {
		req.Language = "en"
	}
	ep := s.begin(func() { s.audioOp.start() })

	res, err := api.AnalyzeAudio(ctx, s.deps.Transport, req)
	if err != nil {
		s.commit(ep, func() { s.audioOp.fail(analysisMessage(err)) })
		return nil, err
	}
	s.commit(ep, func() { s.audioOp.finish() })
	return res, nil
}

// analysisMessage maps analysis failures to their fixed user-facing
// messages; everything else falls through to the server message or a
// generic default.
func analysisMessage(err error) string {
	switch httperr.Status(err) {
	case http.StatusBadRequest:
		return "The input is missing or has an invalid format"
	case http.StatusRequestTimeout:
		return "Analysis timed out, please try again"
	case http.StatusServiceUnavailable:
		return "The analysis service is temporarily unavailable"
	}
	if httperr.IsTimeout(err) {
		return "Analysis timed out, please try again"
	}
	return errMessage(err, "Analysis failed")
}

func (s *Meals) resetState() {
	s.reset(func() {
		s.selectedDate = ""
		s.meals = nil
		s.elements = make(map[int64][]types.MealElement)
		s.loading = false
		s.lastError = ""
		s.photoOp = AsyncOp{}
		s.textOp = AsyncOp{}
		s.audioOp = AsyncOp{}
	})
}
