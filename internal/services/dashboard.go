package services

import (
	"context"

	"fittrack/internal/models"
	"fittrack/internal/repo"
	"fittrack/internal/session"
	"fittrack/internal/store"
)

// DashboardService aggregates the cross-slice reads that power the
// landing view: profile metrics, food/water summary, workout totals and
// the cycle record.
type DashboardService struct {
	kv       store.KV
	sessions *session.Manager
}

func NewDashboardService(kv store.KV, sessions *session.Manager) *DashboardService {
	return &DashboardService{kv: kv, sessions: sessions}
}

type Dashboard struct {
	Username            string                 `json:"username"`
	Age                 int                    `json:"age"`
	Height              int                    `json:"height"`
	Weight              int                    `json:"weight"`
	Gender              string                 `json:"gender"`
	FitnessGoal         string                 `json:"fitnessGoal"`
	ActivityLevel       string                 `json:"activityLevel"`
	BMI                 float64                `json:"bmi"`
	CaloriesGained      float64                `json:"caloriesGained"`
	WaterIntake         float64                `json:"waterIntake"`
	TotalCaloriesBurned int                    `json:"totalCaloriesBurned"`
	WorkoutsCompleted   int                    `json:"workoutsCompleted"`
	TotalWorkoutTime    int                    `json:"totalWorkoutTime"`
	CaloriesBurned      int                    `json:"caloriesBurned"`
	ActiveMinutes       int                    `json:"activeMinutes"`
	MenstrualCycle      *models.MenstrualCycle `json:"menstrualCycle,omitempty"`
	NextPeriod          string                 `json:"nextPeriod,omitempty"`
	Recommendation      string                 `json:"recommendation"`
}

// Get assembles the dashboard for one user.
func (s *DashboardService) Get(ctx context.Context, username string) (Dashboard, error) {
	profile, err := s.sessions.Profile(ctx, username)
	if err != nil {
		return Dashboard{}, err
	}

	summary, err := repo.LoadValue[models.FoodWaterSummary](ctx, s.kv, store.UserKey(username, store.FeatureFoodWater))
	if err != nil {
		return Dashboard{}, err
	}
	workoutData, err := repo.LoadValue[models.WorkoutData](ctx, s.kv, store.UserKey(username, store.FeatureWorkoutData))
	if err != nil {
		return Dashboard{}, err
	}

	d := Dashboard{
		Username:            profile.Username,
		Age:                 profile.Age,
		Height:              profile.Height,
		Weight:              profile.Weight,
		Gender:              profile.Gender,
		FitnessGoal:         profile.FitnessGoal,
		ActivityLevel:       profile.ActivityLevel,
		BMI:                 BMI(profile.Height, profile.Weight),
		CaloriesGained:      summary.Calories,
		WaterIntake:         summary.Water,
		TotalCaloriesBurned: TotalCaloriesBurned(workoutData),
		WorkoutsCompleted:   profile.WorkoutsCompleted,
		TotalWorkoutTime:    profile.TotalWorkoutTime,
		CaloriesBurned:      profile.CaloriesBurned,
		ActiveMinutes:       profile.ActiveMinutes,
		Recommendation:      Recommendation(profile.FitnessGoal),
	}

	// The cycle section is hidden for male-coded profiles, matching the
	// navigation gating elsewhere.
	if profile.Gender != "male" {
		cycle, err := repo.LoadValue[models.MenstrualCycle](ctx, s.kv, store.UserKey(username, store.FeatureMenstrualData))
		if err != nil {
			return Dashboard{}, err
		}
		d.MenstrualCycle = &cycle
		if next, ok := NextPeriod(cycle); ok {
			d.NextPeriod = next.Format("2006-01-02")
		}
	}
	return d, nil
}
