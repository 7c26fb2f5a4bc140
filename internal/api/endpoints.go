// Package api holds the thin per-domain request wrappers: one function per
// gateway operation, each mapping a single HTTP call onto typed request and
// response shapes. Stores own all state; nothing here is stateful.
package api

// Gateway endpoint paths, relative to the configured base URL.
const (
	epLogin         = "/auth/token"
	epRegister      = "/auth/user"
	epUser          = "/auth/user"
	epResetPassword = "/auth/reset-password"

	epProfile = "/user-profile"

	epProducts       = "/product"
	epProductsByName = "/product/search/name"
	epProductBarcode = "/product/search/barcode"
	epCategories     = "/product_category"
	epFavorites      = "/favorite"

	epMeals          = "/meal"
	epMealsByDate    = "/meal/findByDate"
	epMealElements   = "/meal_element"
	epElementsByMeal = "/meal_element/meal"
	epAnalyzePhoto   = "/meal_element/analyze-photo"
	epAnalyzeText    = "/meal_element/analyze-text"
	epAnalyzeAudio   = "/meal_element/analyze-audio"

	epWeight       = "/weight-history"
	epWeightLatest = "/weight-history/latest"
	epWeightStats  = "/weight-history/stats"

	epRecProducts = "/recommendations/products"
	epRecInsights = "/recommendations/insights"
	epRecMeals    = "/recommendations/meals"
	epRecRefresh  = "/recommendations/refresh"

	epNutritionDaily   = "/nutrition/daily"
	epNutritionWeekly  = "/nutrition/weekly"
	epNutritionMonthly = "/nutrition/monthly"
	epNutritionTrend   = "/nutrition/trend"
	epNutritionStats   = "/nutrition/statistics"
	epNutritionProg    = "/nutrition/progress"

	epDevices          = "/notifications/device"
	epPreferences      = "/notifications/preferences"
	epPreferencesReset = "/notifications/preferences/reset"
)
