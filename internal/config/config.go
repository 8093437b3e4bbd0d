package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the full runtime configuration, read from the environment
// with an optional .env file on top.
type Config struct {
	Port      string `env:"PORT" envDefault:"8080"`
	JWTSecret string `env:"JWT_SECRET,required"`

	// DATABASE_URL selects the Postgres backend; otherwise the service
	// runs on a local SQLite file.
	DatabaseURL string `env:"DATABASE_URL"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"fittrack.db"`

	WeatherAPIKey   string `env:"WEATHER_API_KEY"`
	NutritionAPIKey string `env:"NUTRITION_API_KEY"`
	ExerciseAPIKey  string `env:"EXERCISE_API_KEY"`

	WeatherBaseURL   string `env:"WEATHER_BASE_URL"`
	NutritionBaseURL string `env:"NUTRITION_BASE_URL"`
	ExerciseBaseURL  string `env:"EXERCISE_BASE_URL"`
}

// Load reads .env if present and parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
