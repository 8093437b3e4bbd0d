package services_test

import (
	"context"
	"testing"

	"fittrack/internal/models"
	"fittrack/internal/services"
	"fittrack/internal/session"
	"fittrack/internal/store"
)

func TestDashboardAggregatesSlices(t *testing.T) {
	t.Parallel()
	kv := store.NewMemory()
	sessions := session.NewManager(kv)
	ctx := context.Background()

	if err := sessions.Register(ctx, models.UserProfile{
		Username: "alice", Password: "pw", Age: 30, Height: 170, Weight: 70,
		Gender: "female", FitnessGoal: "lose weight", ActivityLevel: "active",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	foodWater := services.NewFoodWaterService(kv)
	if _, err := foodWater.LogFood(ctx, "alice", "toast", models.Nutrition{Calories: 300}); err != nil {
		t.Fatalf("log food: %v", err)
	}
	if _, err := foodWater.LogWater(ctx, "alice", 1.2); err != nil {
		t.Fatalf("log water: %v", err)
	}

	workouts := services.NewWorkoutService(kv, sessions)
	if _, err := workouts.Complete(ctx, "alice", "squat", "glutes", 15); err != nil {
		t.Fatalf("complete workout: %v", err)
	}

	menstrual := services.NewMenstrualService(kv)
	if _, err := menstrual.SaveCycle(ctx, "alice", "2024-01-01", 28); err != nil {
		t.Fatalf("save cycle: %v", err)
	}

	d, err := services.NewDashboardService(kv, sessions).Get(ctx, "alice")
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}

	if d.BMI != 24.2 {
		t.Fatalf("expected BMI 24.2, got %v", d.BMI)
	}
	if d.CaloriesGained != 300 || d.WaterIntake != 1.2 {
		t.Fatalf("food/water summary wrong: %+v", d)
	}
	if d.TotalCaloriesBurned != 150 || d.WorkoutsCompleted != 1 || d.ActiveMinutes != 15 {
		t.Fatalf("workout metrics wrong: %+v", d)
	}
	if d.MenstrualCycle == nil || d.NextPeriod != "2024-01-29" {
		t.Fatalf("cycle section wrong: %+v", d)
	}
	if d.Recommendation == "" {
		t.Fatal("expected a recommendation for the lose weight goal")
	}
}

func TestDashboardHidesCycleForMaleProfiles(t *testing.T) {
	t.Parallel()
	kv := store.NewMemory()
	sessions := session.NewManager(kv)
	ctx := context.Background()

	if err := sessions.Register(ctx, models.UserProfile{
		Username: "bob", Password: "pw", Height: 180, Weight: 80, Gender: "male", FitnessGoal: "maintain",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	d, err := services.NewDashboardService(kv, sessions).Get(ctx, "bob")
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if d.MenstrualCycle != nil || d.NextPeriod != "" {
		t.Fatalf("cycle section should be absent for male profiles: %+v", d)
	}
}
