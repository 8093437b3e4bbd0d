package models

// UserProfile is the unit of identity, keyed by username in the store.
// Passwords are kept in plaintext to match the persisted-key contract;
// a server-grade deployment must replace this with hashed credentials.
type UserProfile struct {
	Username          string `json:"username"`
	Password          string `json:"password"`
	Age               int    `json:"age"`
	Height            int    `json:"height"` // cm
	Weight            int    `json:"weight"` // kg
	Gender            string `json:"gender"`        // male, female, other
	FitnessGoal       string `json:"fitnessGoal"`   // lose weight, gain muscle, maintain
	ActivityLevel     string `json:"activityLevel"` // sedentary, lightly active, active, very active
	WorkoutsCompleted int    `json:"workoutsCompleted"`
	TotalWorkoutTime  int    `json:"totalWorkoutTime"` // minutes
	CaloriesBurned    int    `json:"caloriesBurned"`
	ActiveMinutes     int    `json:"activeMinutes"`
}

// ActivityEntry is one planned activity. Entries are addressed by ID so
// edits and deletes survive reordering.
type ActivityEntry struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Completed   bool   `json:"completed"`
}

// Note is an addendum appended to a journal entry.
type Note struct {
	Text    string `json:"text"`
	Updated bool   `json:"updated"`
}

// JournalEntry is keyed by its creation timestamp in unix milliseconds.
type JournalEntry struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Date    string `json:"date"`
	Notes   []Note `json:"notes"`
}

// Nutrition mirrors the shape returned by the nutrition analysis API.
type Nutrition struct {
	Calories       float64             `json:"calories"`
	TotalNutrients map[string]Nutrient `json:"totalNutrients"`
}

// Nutrient keys of interest: FAT, PROCNT, CHOCDF.
type Nutrient struct {
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type FoodLogEntry struct {
	Food          string    `json:"food"`
	NutritionData Nutrition `json:"nutritionData"`
}

// FoodWaterSummary is the combined denormalized record kept under the
// <username>-food-water key for the dashboard's cross-slice read.
type FoodWaterSummary struct {
	Calories float64 `json:"calories"`
	Water    float64 `json:"water"`
}

// Workout is one entry of the exercise catalog.
type Workout struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	BodyPart         string   `json:"bodyPart"`
	Target           string   `json:"target"`
	SecondaryMuscles []string `json:"secondaryMuscles"`
	Equipment        string   `json:"equipment"`
	Instructions     []string `json:"instructions"`
	GifURL           string   `json:"gifUrl"`
}

// WorkoutRecord is a completed workout on a calendar date.
// CaloriesBurned is always duration times ten.
type WorkoutRecord struct {
	Name           string `json:"name"`
	Target         string `json:"target"`
	Duration       int    `json:"duration"` // minutes
	CaloriesBurned int    `json:"caloriesBurned"`
	Date           string `json:"date"`
}

// WorkoutData groups completed workouts by date string.
type WorkoutData map[string][]WorkoutRecord

// MenstrualCycle is a single record per user; the next-period date is
// derived, never stored.
type MenstrualCycle struct {
	StartDate string   `json:"startDate"` // YYYY-MM-DD
	Duration  int      `json:"duration"`  // days
	Symptoms  []string `json:"symptoms"`
}
