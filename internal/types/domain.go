package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------

// User represents the authenticated account.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Roles     []string  `json:"roles,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// Gender values accepted by the profile endpoints.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// TargetWeightType is the user's weight goal direction.
type TargetWeightType string

const (
	TargetLose TargetWeightType = "LOSE"
	TargetSave TargetWeightType = "SAVE"
	TargetGain TargetWeightType = "GAIN"
)

// ActivityLevel is the ordinal physical-activity bucket (FIRST = sedentary).
type ActivityLevel string

const (
	ActivityFirst  ActivityLevel = "FIRST"
	ActivitySecond ActivityLevel = "SECOND"
	ActivityThird  ActivityLevel = "THIRD"
	ActivityFourth ActivityLevel = "FOURTH"
	ActivityFifth  ActivityLevel = "FIFTH"
)

// MeasurementType is the unit a product quantity is expressed in.
type MeasurementType string

const (
	MeasureGram       MeasurementType = "GRAM"
	MeasureKilogram   MeasurementType = "KILOGRAM"
	MeasureLiter      MeasurementType = "LITER"
	MeasureMilliliter MeasurementType = "MILLILITER"
	MeasurePiece      MeasurementType = "PIECE"
	MeasureUnit       MeasurementType = "UNIT"
)

// MealType identifies one of the five daily meal slots.
type MealType string

const (
	MealBreakfast  MealType = "BREAKFAST"
	MealLunch      MealType = "LUNCH"
	MealDinner     MealType = "DINNER"
	MealSupper     MealType = "SUPPER"
	MealLateSupper MealType = "LATE_SUPPER"
)

// Profile is the user's nutrition profile. A missing profile means the
// account exists but onboarding has not been completed yet.
type Profile struct {
	ID            int64            `json:"id"`
	UserID        int64            `json:"userId"`
	Height        float64          `json:"height"`
	Weight        float64          `json:"weight"`
	Gender        Gender           `json:"gender"`
	Birthday      string           `json:"birthday"`
	TargetType    TargetWeightType `json:"targetWeightType"`
	TargetWeight  float64          `json:"targetWeight"`
	ActivityLevel ActivityLevel    `json:"physicalActivityLevel"`
	DayLimitCal   float64          `json:"dayLimitCal"`
	Timezone      string           `json:"timezone"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt,omitempty"`
}

// Product is a food item, either global or user-created (UserID set).
type Product struct {
	ID            int64           `json:"id"`
	UserID        *int64          `json:"userId"`
	Name          string          `json:"name"`
	Proteins      float64         `json:"proteins"`
	Fats          float64         `json:"fats"`
	Carbohydrates float64         `json:"carbohydrates"`
	Calories      float64         `json:"calories"`
	Quantity      string          `json:"quantity"`
	Measurement   MeasurementType `json:"measurementType"`
	CategoryID    string          `json:"productCategoryId,omitempty"`
	Barcode       string          `json:"code,omitempty"`
	ImageURL      string          `json:"imageUrl,omitempty"`
	Source        string          `json:"source,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ProductCategory is a server-defined grouping of products.
type ProductCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Meal is one eating event; its elements are fetched separately.
type Meal struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	MealType  MealType  `json:"mealType"`
	Name      string    `json:"name,omitempty"`
	DateTime  time.Time `json:"dateTime"`
	CreatedAt time.Time `json:"createdAt"`
}

// MealElement is one portion inside a meal. The Default* fields keep the
// reference-quantity macros so edits can be rescaled client-side.
type MealElement struct {
	ID              int64           `json:"id"`
	MealID          int64           `json:"mealId"`
	ParentProductID *int64          `json:"parentProductId"`
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
	ImageURL        string          `json:"imageUrl,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// WeightEntry is one point in the user's weight history.
type WeightEntry struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	Weight     float64   `json:"weight"`
	RecordedAt time.Time `json:"recordedAt"`
	CreatedAt  time.Time `json:"createdAt"`
}

// WeightStats summarizes weight movement over a period.
type WeightStats struct {
	PeriodDays    int     `json:"periodDays"`
	StartWeight   float64 `json:"startWeight"`
	CurrentWeight float64 `json:"currentWeight"`
	MinWeight     float64 `json:"minWeight"`
	MaxWeight     float64 `json:"maxWeight"`
	Change        float64 `json:"change"`
	EntryCount    int     `json:"entryCount"`
}

// InsightSeverity grades a nutrition insight.
type InsightSeverity string

const (
	SeverityInfo     InsightSeverity = "INFO"
	SeverityWarning  InsightSeverity = "WARNING"
	SeverityCritical InsightSeverity = "CRITICAL"
)

// Insight is a server-generated observation about recent eating habits.
type Insight struct {
	ID          int64           `json:"id"`
	InsightType string          `json:"insightType"`
	Severity    InsightSeverity `json:"severity"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// DeviceType distinguishes push-token platforms.
type DeviceType string

const (
	DeviceAndroid DeviceType = "ANDROID"
	DeviceIOS     DeviceType = "IOS"
)

// Device is a registered push-notification target.
type Device struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"userId"`
	DeviceToken string     `json:"deviceToken"`
	DeviceType  DeviceType `json:"deviceType"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// MealReminder is the per-meal slice of notification preferences.
type MealReminder struct {
	Enabled       bool   `json:"enabled"`
	Time          string `json:"time,omitempty"` // HH:MM, user-local
	MinutesBefore int    `json:"minutesBefore,omitempty"`
}

// NotificationPreferences is the full server-side reminder configuration.
type NotificationPreferences struct {
	GloballyEnabled     bool         `json:"globallyEnabled"`
	AchievementsEnabled bool         `json:"achievementsEnabled"`
	Breakfast           MealReminder `json:"breakfast"`
	Lunch               MealReminder `json:"lunch"`
	Dinner              MealReminder `json:"dinner"`
	Snack               MealReminder `json:"snack"`
	LateSnack           MealReminder `json:"lateSnack"`
}
