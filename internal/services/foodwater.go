package services

import (
	"context"
	"errors"
	"strings"

	"fittrack/internal/models"
	"fittrack/internal/repo"
	"fittrack/internal/store"
)

var (
	ErrFoodRequired  = errors.New("food item required")
	ErrInvalidAmount = errors.New("water amount must be positive")
)

// FoodWaterService owns the food and water logs plus the denormalized
// calorie/water keys the dashboard reads.
type FoodWaterService struct {
	kv store.KV
}

func NewFoodWaterService(kv store.KV) *FoodWaterService {
	return &FoodWaterService{kv: kv}
}

func (s *FoodWaterService) FoodLog(ctx context.Context, username string) ([]models.FoodLogEntry, error) {
	return repo.Load[models.FoodLogEntry](ctx, s.kv, username, store.FeatureFoodLog)
}

func (s *FoodWaterService) WaterLog(ctx context.Context, username string) ([]float64, error) {
	return repo.Load[float64](ctx, s.kv, username, store.FeatureWaterLog)
}

// LogFood appends to the food log and rewrites the derived calorie keys.
func (s *FoodWaterService) LogFood(ctx context.Context, username, food string, nutrition models.Nutrition) (float64, error) {
	if strings.TrimSpace(food) == "" {
		return 0, ErrFoodRequired
	}
	log, err := repo.Load[models.FoodLogEntry](ctx, s.kv, username, store.FeatureFoodLog)
	if err != nil {
		return 0, err
	}
	log = append(log, models.FoodLogEntry{Food: food, NutritionData: nutrition})
	if err := repo.Save(ctx, s.kv, username, store.FeatureFoodLog, log); err != nil {
		return 0, err
	}
	total := TotalCalories(log)
	if err := repo.SaveValue(ctx, s.kv, store.UserKey(username, store.FeatureCalories), total); err != nil {
		return 0, err
	}
	return total, s.updateSummary(ctx, username)
}

// LogWater appends liters consumed and rewrites the derived water keys.
func (s *FoodWaterService) LogWater(ctx context.Context, username string, liters float64) (float64, error) {
	if liters <= 0 {
		return 0, ErrInvalidAmount
	}
	log, err := repo.Load[float64](ctx, s.kv, username, store.FeatureWaterLog)
	if err != nil {
		return 0, err
	}
	log = append(log, liters)
	if err := repo.Save(ctx, s.kv, username, store.FeatureWaterLog, log); err != nil {
		return 0, err
	}
	total := TotalWater(log)
	if err := repo.SaveValue(ctx, s.kv, store.UserKey(username, store.FeatureWater), total); err != nil {
		return 0, err
	}
	return total, s.updateSummary(ctx, username)
}

// Summary returns the combined calorie/water record.
func (s *FoodWaterService) Summary(ctx context.Context, username string) (models.FoodWaterSummary, error) {
	return repo.LoadValue[models.FoodWaterSummary](ctx, s.kv, store.UserKey(username, store.FeatureFoodWater))
}

// Suggestion derives a meal hint from the user's goal and the looked-up
// calorie count.
func Suggestion(fitnessGoal string, calories float64) string {
	switch {
	case fitnessGoal == "lose weight" && calories > 200:
		return "Consider a lower-calorie option or smaller portion."
	case fitnessGoal == "gain muscle" && calories < 200:
		return "Consider adding a protein-rich food to your meal."
	}
	return ""
}

func (s *FoodWaterService) updateSummary(ctx context.Context, username string) error {
	calories, err := repo.LoadValue[float64](ctx, s.kv, store.UserKey(username, store.FeatureCalories))
	if err != nil {
		return err
	}
	water, err := repo.LoadValue[float64](ctx, s.kv, store.UserKey(username, store.FeatureWater))
	if err != nil {
		return err
	}
	summary := models.FoodWaterSummary{Calories: calories, Water: water}
	return repo.SaveValue(ctx, s.kv, store.UserKey(username, store.FeatureFoodWater), summary)
}
