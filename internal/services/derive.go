package services

import (
	"math"
	"time"

	"fittrack/internal/models"
)

// Recommended daily water intake in liters, fixed by gender.
const (
	WaterIntakeMale    = 3.7
	WaterIntakeDefault = 2.7
)

// BMI computes weight(kg) / height(m)^2 rounded to one decimal.
// Returns 0 when height is unset.
func BMI(heightCm, weightKg int) float64 {
	if heightCm <= 0 {
		return 0
	}
	meters := float64(heightCm) / 100
	return math.Round(float64(weightKg)/(meters*meters)*10) / 10
}

// NextPeriod derives the next expected period date. The zero time is
// returned when either field is unset.
func NextPeriod(cycle models.MenstrualCycle) (time.Time, bool) {
	if cycle.StartDate == "" || cycle.Duration <= 0 {
		return time.Time{}, false
	}
	start, err := time.Parse("2006-01-02", cycle.StartDate)
	if err != nil {
		return time.Time{}, false
	}
	return start.AddDate(0, 0, cycle.Duration), true
}

// RecommendedWater returns the fixed daily target for a gender.
func RecommendedWater(gender string) float64 {
	if gender == "male" {
		return WaterIntakeMale
	}
	return WaterIntakeDefault
}

// TotalCalories sums the food log.
func TotalCalories(log []models.FoodLogEntry) float64 {
	var total float64
	for _, entry := range log {
		total += entry.NutritionData.Calories
	}
	return total
}

// TotalWater sums the water log in liters.
func TotalWater(log []float64) float64 {
	var total float64
	for _, liters := range log {
		total += liters
	}
	return total
}

// Recommendation maps a fitness goal to the dashboard hint.
func Recommendation(fitnessGoal string) string {
	switch fitnessGoal {
	case "lose weight":
		return "Focus on cardio exercises and maintaining a caloric deficit."
	case "gain muscle":
		return "Incorporate strength training and ensure a protein-rich diet."
	case "maintain":
		return "Balance your workout routine with a mix of cardio and strength training."
	}
	return ""
}
