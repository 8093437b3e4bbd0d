package services_test

import (
	"context"
	"errors"
	"testing"

	"fittrack/internal/models"
	"fittrack/internal/repo"
	"fittrack/internal/services"
	"fittrack/internal/store"
)

func TestLogFoodUpdatesDerivedKeys(t *testing.T) {
	t.Parallel()
	kv := store.NewMemory()
	svc := services.NewFoodWaterService(kv)
	ctx := context.Background()

	total, err := svc.LogFood(ctx, "alice", "1 cup rice", models.Nutrition{Calories: 200})
	if err != nil {
		t.Fatalf("log food: %v", err)
	}
	if total != 200 {
		t.Fatalf("expected total 200, got %v", total)
	}
	total, err = svc.LogFood(ctx, "alice", "10 oz chickpeas", models.Nutrition{Calories: 350})
	if err != nil {
		t.Fatalf("log food: %v", err)
	}
	if total != 550 {
		t.Fatalf("expected total 550, got %v", total)
	}

	log, err := svc.FoodLog(ctx, "alice")
	if err != nil {
		t.Fatalf("food log: %v", err)
	}
	if len(log) != 2 || log[0].Food != "1 cup rice" {
		t.Fatalf("unexpected log %+v", log)
	}

	calories, _ := repo.LoadValue[float64](ctx, kv, "alice-calories")
	if calories != 550 {
		t.Fatalf("derived calories key not rewritten: %v", calories)
	}
	summary, err := svc.Summary(ctx, "alice")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Calories != 550 || summary.Water != 0 {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

func TestLogWaterUpdatesDerivedKeys(t *testing.T) {
	t.Parallel()
	kv := store.NewMemory()
	svc := services.NewFoodWaterService(kv)
	ctx := context.Background()

	for _, liters := range []float64{0.5, 1.0, 0.2} {
		if _, err := svc.LogWater(ctx, "alice", liters); err != nil {
			t.Fatalf("log water %v: %v", liters, err)
		}
	}

	log, err := svc.WaterLog(ctx, "alice")
	if err != nil {
		t.Fatalf("water log: %v", err)
	}
	if got := services.TotalWater(log); got != 1.7 {
		t.Fatalf("expected total 1.7, got %v", got)
	}

	water, _ := repo.LoadValue[float64](ctx, kv, "alice-water")
	if water != 1.7 {
		t.Fatalf("derived water key not rewritten: %v", water)
	}
	summary, _ := svc.Summary(ctx, "alice")
	if summary.Water != 1.7 {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

func TestCombinedSummaryTracksBothSlices(t *testing.T) {
	t.Parallel()
	kv := store.NewMemory()
	svc := services.NewFoodWaterService(kv)
	ctx := context.Background()

	if _, err := svc.LogFood(ctx, "alice", "toast", models.Nutrition{Calories: 120}); err != nil {
		t.Fatalf("log food: %v", err)
	}
	if _, err := svc.LogWater(ctx, "alice", 0.4); err != nil {
		t.Fatalf("log water: %v", err)
	}

	summary, _ := repo.LoadValue[models.FoodWaterSummary](ctx, kv, "alice-food-water")
	if summary.Calories != 120 || summary.Water != 0.4 {
		t.Fatalf("combined record out of sync: %+v", summary)
	}
}

func TestLogValidation(t *testing.T) {
	t.Parallel()
	svc := services.NewFoodWaterService(store.NewMemory())
	ctx := context.Background()

	if _, err := svc.LogFood(ctx, "alice", " ", models.Nutrition{}); !errors.Is(err, services.ErrFoodRequired) {
		t.Fatalf("expected ErrFoodRequired, got %v", err)
	}
	if _, err := svc.LogWater(ctx, "alice", 0); !errors.Is(err, services.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if _, err := svc.LogWater(ctx, "alice", -1); !errors.Is(err, services.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}
