package types

// ------------------------------
// Response Types
// ------------------------------

// LoginResponse carries the bearer token issued by the public token endpoint.
type LoginResponse struct {
	Token     string `json:"jwtToken"`
	TokenType string `json:"tokenType"`
	ExpiresIn int64  `json:"expiresIn"`
}

// Page mirrors the backend pagination envelope. Last, not any local count
// arithmetic, decides whether more pages exist.
type Page[T any] struct {
	Content       []T  `json:"content"`
	Page          int  `json:"page"`
	Size          int  `json:"size"`
	TotalElements int  `json:"totalElements"`
	TotalPages    int  `json:"totalPages"`
	First         bool `json:"first"`
	Last          bool `json:"last"`
}

// NutrientTotals is the macro aggregate shared by analysis and summaries.
type NutrientTotals struct {
	Proteins      float64 `json:"proteins"`
	Fats          float64 `json:"fats"`
	Carbohydrates float64 `json:"carbohydrates"`
	Calories      float64 `json:"calories"`
}

// AnalysisIngredient is one recognized component of an analyzed meal.
type AnalysisIngredient struct {
	Name          string          `json:"name"`
	Quantity      float64         `json:"quantity"`
	Measurement   MeasurementType `json:"measurementType"`
	Proteins      float64         `json:"proteins"`
	Fats          float64         `json:"fats"`
	Carbohydrates float64         `json:"carbohydrates"`
	Calories      float64         `json:"calories"`
}

// AnalysisResult is shared by photo, text, and audio analysis.
type AnalysisResult struct {
	Ingredients    []AnalysisIngredient `json:"ingredients"`
	TotalNutrients NutrientTotals       `json:"totalNutrients"`
	Confidence     float64              `json:"confidence"`
	Notes          string               `json:"notes,omitempty"`
}

// NutritionPeriodType scopes a nutrition summary.
type NutritionPeriodType string

const (
	PeriodDay   NutritionPeriodType = "DAY"
	PeriodWeek  NutritionPeriodType = "WEEK"
	PeriodMonth NutritionPeriodType = "MONTH"
)

// NutritionMetric selects the series for trend queries.
type NutritionMetric string

const (
	MetricCalories      NutritionMetric = "CALORIES"
	MetricProteins      NutritionMetric = "PROTEINS"
	MetricFats          NutritionMetric = "FATS"
	MetricCarbohydrates NutritionMetric = "CARBOHYDRATES"
)

// NutritionSummary is the daily/weekly/monthly macro rollup.
type NutritionSummary struct {
	PeriodType         NutritionPeriodType `json:"periodType"`
	StartDate          string              `json:"startDate"`
	EndDate            string              `json:"endDate"`
	TotalProteins      float64             `json:"totalProteins"`
	TotalFats          float64             `json:"totalFats"`
	TotalCarbohydrates float64             `json:"totalCarbohydrates"`
	TotalCalories      float64             `json:"totalCalories"`
	TargetCalories     float64             `json:"targetCalories"`
	CaloriesPercentage float64             `json:"caloriesPercentage"`
}

// TrendDirection labels the slope of a nutrition trend.
type TrendDirection string

const (
	TrendIncreasing TrendDirection = "INCREASING"
	TrendDecreasing TrendDirection = "DECREASING"
	TrendStable     TrendDirection = "STABLE"
)

// TrendPoint is one dated sample in a trend series.
type TrendPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// NutritionTrend is the dated series for one metric plus derived direction.
type NutritionTrend struct {
	Metric         NutritionMetric `json:"metricType"`
	StartDate      string          `json:"startDate"`
	EndDate        string          `json:"endDate"`
	DailyValues    []TrendPoint    `json:"dailyValues"`
	Direction      TrendDirection  `json:"direction"`
	AverageValue   *float64        `json:"averageValue"`
	PredictedValue *float64        `json:"predictedValue"`
}

// TopProductStat counts how often a product was logged in a range.
type TopProductStat struct {
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
	UsageCount  int    `json:"usageCount"`
}

// NutritionStatistics aggregates averages and usage over a date range.
type NutritionStatistics struct {
	StartDate            string           `json:"startDate"`
	EndDate              string           `json:"endDate"`
	AverageCalories      float64          `json:"averageCalories"`
	AverageProteins      float64          `json:"averageProteins"`
	AverageFats          float64          `json:"averageFats"`
	AverageCarbohydrates float64          `json:"averageCarbohydrates"`
	CategoryUsage        map[string]int   `json:"categoryUsageStats"`
	TopProducts          []TopProductStat `json:"topProducts"`
	TotalMeals           int              `json:"totalMeals"`
	TotalDays            int              `json:"totalDays"`
}

// GoalStatus positions actual intake against the calorie target.
type GoalStatus string

const (
	GoalOnTrack GoalStatus = "ON_TRACK"
	GoalBehind  GoalStatus = "BEHIND"
	GoalAhead   GoalStatus = "AHEAD"
)

// DailyProgress is one day's share of the calorie target.
type DailyProgress struct {
	Date       string  `json:"date"`
	Calories   float64 `json:"calories"`
	Percentage float64 `json:"percentage"`
}

// NutritionProgress reports goal attainment over a date range.
type NutritionProgress struct {
	StartDate             string          `json:"startDate"`
	EndDate               string          `json:"endDate"`
	AverageDailyCalories  float64         `json:"averageDailyCalories"`
	TargetCalories        float64         `json:"targetCalories"`
	AchievementPercentage float64         `json:"caloriesAchievementPercentage"`
	GoalStatus            GoalStatus      `json:"goalStatus"`
	DailyProgress         []DailyProgress `json:"dailyProgress"`
}
