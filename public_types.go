package mealrush

import "github.com/l423r/mealrush-mobile-v2-sub001/internal/types"

// Aliases re-exporting the wire and domain shapes so SDK users never
// import internal packages.

type (
	User                    = types.User
	Profile                 = types.Profile
	Product                 = types.Product
	ProductCategory         = types.ProductCategory
	Meal                    = types.Meal
	MealElement             = types.MealElement
	WeightEntry             = types.WeightEntry
	WeightStats             = types.WeightStats
	Insight                 = types.Insight
	Device                  = types.Device
	MealReminder            = types.MealReminder
	NotificationPreferences = types.NotificationPreferences

	Gender           = types.Gender
	TargetWeightType = types.TargetWeightType
	ActivityLevel    = types.ActivityLevel
	MeasurementType  = types.MeasurementType
	MealType         = types.MealType
	DeviceType       = types.DeviceType
	InsightSeverity  = types.InsightSeverity

	CreateProfileRequest     = types.CreateProfileRequest
	UpdateProfileRequest     = types.UpdateProfileRequest
	CreateProductRequest     = types.CreateProductRequest
	UpdateProductRequest     = types.UpdateProductRequest
	CreateMealRequest        = types.CreateMealRequest
	CreateMealElementRequest = types.CreateMealElementRequest
	UpdateMealElementRequest = types.UpdateMealElementRequest
	AddWeightRequest         = types.AddWeightRequest
	PhotoAnalysisRequest     = types.PhotoAnalysisRequest
	TextAnalysisRequest      = types.TextAnalysisRequest
	AudioAnalysisRequest     = types.AudioAnalysisRequest

	AnalysisResult      = types.AnalysisResult
	AnalysisIngredient  = types.AnalysisIngredient
	NutrientTotals      = types.NutrientTotals
	NutritionSummary    = types.NutritionSummary
	NutritionTrend      = types.NutritionTrend
	NutritionStatistics = types.NutritionStatistics
	NutritionProgress   = types.NutritionProgress
	NutritionMetric     = types.NutritionMetric
)

const (
	GenderMale   = types.GenderMale
	GenderFemale = types.GenderFemale

	TargetLose = types.TargetLose
	TargetSave = types.TargetSave
	TargetGain = types.TargetGain

	MealBreakfast  = types.MealBreakfast
	MealLunch      = types.MealLunch
	MealDinner     = types.MealDinner
	MealSupper     = types.MealSupper
	MealLateSupper = types.MealLateSupper

	DeviceAndroid = types.DeviceAndroid
	DeviceIOS     = types.DeviceIOS

	MetricCalories      = types.MetricCalories
	MetricProteins      = types.MetricProteins
	MetricFats          = types.MetricFats
	MetricCarbohydrates = types.MetricCarbohydrates
)
