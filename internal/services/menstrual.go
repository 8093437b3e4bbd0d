package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"fittrack/internal/models"
	"fittrack/internal/repo"
	"fittrack/internal/store"
)

var (
	ErrStartDateRequired = errors.New("start date is required")
	ErrInvalidDuration   = errors.New("duration must be greater than 0")
	ErrSymptomEmpty      = errors.New("symptom cannot be empty")
	ErrSymptomExists     = errors.New("symptom is already logged")
)

// MenstrualService owns the single cycle record per user.
type MenstrualService struct {
	kv store.KV
}

func NewMenstrualService(kv store.KV) *MenstrualService {
	return &MenstrualService{kv: kv}
}

func (s *MenstrualService) Cycle(ctx context.Context, username string) (models.MenstrualCycle, error) {
	cycle, err := repo.LoadValue[models.MenstrualCycle](ctx, s.kv, store.UserKey(username, store.FeatureMenstrualData))
	if err != nil {
		return models.MenstrualCycle{}, err
	}
	if cycle.Symptoms == nil {
		cycle.Symptoms = []string{}
	}
	return cycle, nil
}

// SaveCycle replaces the start date and duration, keeping symptoms.
func (s *MenstrualService) SaveCycle(ctx context.Context, username, startDate string, duration int) (models.MenstrualCycle, error) {
	if startDate == "" {
		return models.MenstrualCycle{}, ErrStartDateRequired
	}
	if _, err := time.Parse("2006-01-02", startDate); err != nil {
		return models.MenstrualCycle{}, ErrStartDateRequired
	}
	if duration <= 0 {
		return models.MenstrualCycle{}, ErrInvalidDuration
	}
	cycle, err := s.Cycle(ctx, username)
	if err != nil {
		return models.MenstrualCycle{}, err
	}
	cycle.StartDate = startDate
	cycle.Duration = duration
	if err := repo.SaveValue(ctx, s.kv, store.UserKey(username, store.FeatureMenstrualData), cycle); err != nil {
		return models.MenstrualCycle{}, err
	}
	return cycle, nil
}

// AddSymptom appends a unique symptom to the record.
func (s *MenstrualService) AddSymptom(ctx context.Context, username, symptom string) (models.MenstrualCycle, error) {
	symptom = strings.TrimSpace(symptom)
	if symptom == "" {
		return models.MenstrualCycle{}, ErrSymptomEmpty
	}
	cycle, err := s.Cycle(ctx, username)
	if err != nil {
		return models.MenstrualCycle{}, err
	}
	for _, existing := range cycle.Symptoms {
		if existing == symptom {
			return models.MenstrualCycle{}, ErrSymptomExists
		}
	}
	cycle.Symptoms = append(cycle.Symptoms, symptom)
	if err := repo.SaveValue(ctx, s.kv, store.UserKey(username, store.FeatureMenstrualData), cycle); err != nil {
		return models.MenstrualCycle{}, err
	}
	return cycle, nil
}
