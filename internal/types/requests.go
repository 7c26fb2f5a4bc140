package types

// ------------------------------
// Request Types
// ------------------------------

// LoginRequest carries credentials for the public token endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest creates a new account. Registration does not yield a
// session; callers log in with the same credentials afterwards.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// ResetPasswordRequest triggers the server-side reset flow.
type ResetPasswordRequest struct {
	Email string `json:"email"`
}

// CreateProfileRequest completes onboarding.
type CreateProfileRequest struct {
	Height        float64          `json:"height"`
	Weight        float64          `json:"weight"`
	Gender        Gender           `json:"gender"`
	Birthday      string           `json:"birthday"`
	TargetType    TargetWeightType `json:"targetWeightType,omitempty"`
	TargetWeight  float64          `json:"targetWeight,omitempty"`
	ActivityLevel ActivityLevel    `json:"physicalActivityLevel,omitempty"`
	DayLimitCal   float64          `json:"dayLimitCal,omitempty"`
	Timezone      string           `json:"timezone"`
}

// UpdateProfileRequest is a partial profile update; nil fields are untouched.
type UpdateProfileRequest struct {
	Height        *float64          `json:"height,omitempty"`
	Weight        *float64          `json:"weight,omitempty"`
	Gender        *Gender           `json:"gender,omitempty"`
	Birthday      *string           `json:"birthday,omitempty"`
	TargetType    *TargetWeightType `json:"targetWeightType,omitempty"`
	TargetWeight  *float64          `json:"targetWeight,omitempty"`
	ActivityLevel *ActivityLevel    `json:"physicalActivityLevel,omitempty"`
	DayLimitCal   *float64          `json:"dayLimitCal,omitempty"`
	Timezone      *string           `json:"timezone,omitempty"`
}

// CreateProductRequest adds a user-defined product.
type CreateProductRequest struct {
	Name          string          `json:"name"`
	Proteins      float64         `json:"proteins"`
	Fats          float64         `json:"fats"`
	Carbohydrates float64         `json:"carbohydrates"`
	Calories      float64         `json:"calories"`
	Quantity      string          `json:"quantity"`
	Measurement   MeasurementType `json:"measurementType"`
	CategoryID    string          `json:"productCategoryId,omitempty"`
	Barcode       string          `json:"code,omitempty"`
	ImageBase64   string          `json:"imageBase64,omitempty"`
}

// UpdateProductRequest is a partial product update.
type UpdateProductRequest struct {
	Name          *string          `json:"name,omitempty"`
	Proteins      *float64         `json:"proteins,omitempty"`
	Fats          *float64         `json:"fats,omitempty"`
	Carbohydrates *float64         `json:"carbohydrates,omitempty"`
	Calories      *float64         `json:"calories,omitempty"`
	Quantity      *string          `json:"quantity,omitempty"`
	Measurement   *MeasurementType `json:"measurementType,omitempty"`
	CategoryID    *string          `json:"productCategoryId,omitempty"`
	Barcode       *string          `json:"code,omitempty"`
	ImageBase64   *string          `json:"imageBase64,omitempty"`
}

// CreateMealRequest opens a meal slot for a point in time.
type CreateMealRequest struct {
	MealType MealType `json:"mealType"`
	DateTime string   `json:"dateTime"` // RFC 3339
	Name     string   `json:"name,omitempty"`
}

// CreateMealElementRequest records one portion in a meal.
type CreateMealElementRequest struct {
	MealID          int64           `json:"mealId"`
	ParentProductID *int64          `json:"parentProductId,omitempty"`
	Name            string          `json:"name"`
	Proteins        float64         `json:"proteins"`
	Fats            float64         `json:"fats"`
	Carbohydrates   float64         `json:"carbohydrates"`
	Calories        float64         `json:"calories"`
	Quantity        string          `json:"quantity"`
	Measurement     MeasurementType `json:"measurementType"`
	DefaultProteins float64         `json:"defaultProteins"`
	DefaultFats     float64         `json:"defaultFats"`
	DefaultCarbs    float64         `json:"defaultCarbohydrates"`
	DefaultCalories float64         `json:"defaultCalories"`
	DefaultQuantity string          `json:"defaultQuantity"`
	ImageBase64     string          `json:"imageBase64,omitempty"`
}

// UpdateMealElementRequest rescales an existing portion.
type UpdateMealElementRequest struct {
	Quantity      *string  `json:"quantity,omitempty"`
	Proteins      *float64 `json:"proteins,omitempty"`
	Fats          *float64 `json:"fats,omitempty"`
	Carbohydrates *float64 `json:"carbohydrates,omitempty"`
	Calories      *float64 `json:"calories,omitempty"`
}

// AddWeightRequest records a weight measurement.
type AddWeightRequest struct {
	Weight     float64 `json:"weight"`
	RecordedAt string  `json:"recordedAt,omitempty"` // RFC 3339, server default now
}

// PhotoAnalysisRequest asks the analysis service to extract ingredients
// from a photo. Payload-heavy; served by the long-deadline client.
type PhotoAnalysisRequest struct {
	ImageBase64 string `json:"imageBase64"`
	Language    string `json:"language,omitempty"`
	Comment     string `json:"comment,omitempty"`
}

// TextAnalysisRequest extracts ingredients from a free-form description.
type TextAnalysisRequest struct {
	Description string `json:"description"`
	Language    string `json:"language,omitempty"`
}

// AudioAnalysisRequest extracts ingredients from a voice note.
type AudioAnalysisRequest struct {
	AudioBase64 string `json:"audioBase64"`
	Language    string `json:"language,omitempty"`
	Comment     string `json:"comment,omitempty"`
}

// RegisterDeviceRequest submits a push token for this installation.
type RegisterDeviceRequest struct {
	DeviceToken string     `json:"fcmToken"`
	DeviceType  DeviceType `json:"deviceType"`
}

// UpdatePreferencesRequest is the PATCH body for notification preferences.
// Nil groups are untouched; see store.PreferenceUpdate for the typed
// variants that produce it.
type UpdatePreferencesRequest struct {
	GloballyEnabled     *bool         `json:"globallyEnabled,omitempty"`
	AchievementsEnabled *bool         `json:"achievementsEnabled,omitempty"`
	Breakfast           *MealReminder `json:"breakfast,omitempty"`
	Lunch               *MealReminder `json:"lunch,omitempty"`
	Dinner              *MealReminder `json:"dinner,omitempty"`
	Snack               *MealReminder `json:"snack,omitempty"`
	LateSnack           *MealReminder `json:"lateSnack,omitempty"`
}
