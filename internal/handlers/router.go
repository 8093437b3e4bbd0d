package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"fittrack/internal/clients/exercisedb"
	"fittrack/internal/clients/nutrition"
	"fittrack/internal/clients/weather"
	"fittrack/internal/middleware"
	"fittrack/internal/services"
	"fittrack/internal/session"
	"fittrack/internal/store"
)

// Deps carries everything the API needs.
type Deps struct {
	KV        store.KV
	Sessions  *session.Manager
	JWTSecret []byte
	Logger    *zap.Logger

	Weather   *weather.Client
	Nutrition *nutrition.Client
	Exercises *exercisedb.Client
}

// NewRouter assembles the full API route tree.
func NewRouter(deps Deps) http.Handler {
	activities := NewActivityHandler(services.NewActivityService(deps.KV))
	journal := NewJournalHandler(services.NewJournalService(deps.KV))
	foodWater := NewFoodWaterHandler(services.NewFoodWaterService(deps.KV), deps.Sessions, deps.Nutrition)
	workouts := NewWorkoutHandler(services.NewWorkoutService(deps.KV, deps.Sessions), deps.Exercises)
	menstrual := NewMenstrualHandler(services.NewMenstrualService(deps.KV))
	dashboard := NewDashboardHandler(services.NewDashboardService(deps.KV, deps.Sessions))
	weatherH := NewWeatherHandler(deps.Weather)
	auth := NewAuthHandler(deps.Sessions, deps.JWTSecret)
	authMW := middleware.NewAuthMiddleware(deps.JWTSecret)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	if deps.Logger != nil {
		r.Use(middleware.ZapRequestLogger(deps.Logger))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/register", auth.Register)
		api.Post("/auth/login", auth.Login)
		api.Get("/auth/session", auth.Session)

		api.Group(func(pr chi.Router) {
			pr.Use(authMW.RequireAuth)

			pr.Post("/auth/logout", auth.Logout)
			pr.Get("/dashboard", dashboard.Get)

			pr.Get("/activities", activities.List)
			pr.Post("/activities", activities.Add)
			pr.Put("/activities/{id}", activities.Edit)
			pr.Post("/activities/{id}/toggle", activities.Toggle)
			pr.Delete("/activities/{id}", activities.Delete)

			pr.Get("/journal", journal.List)
			pr.Post("/journal", journal.Add)
			pr.Get("/journal/{id}", journal.Get)
			pr.Delete("/journal/{id}", journal.Delete)
			pr.Post("/journal/{id}/notes", journal.AddNote)

			pr.Get("/food", foodWater.FoodLog)
			pr.Post("/food", foodWater.LogFood)
			pr.Get("/food/lookup", foodWater.Lookup)
			pr.Get("/water", foodWater.WaterLog)
			pr.Post("/water", foodWater.LogWater)

			pr.Get("/workouts/catalog", workouts.Catalog)
			pr.Get("/workouts", workouts.History)
			pr.Post("/workouts/complete", workouts.Complete)

			pr.Get("/menstrual", menstrual.Get)
			pr.Put("/menstrual", menstrual.Save)
			pr.Post("/menstrual/symptoms", menstrual.AddSymptom)

			pr.Get("/weather", weatherH.Get)
		})
	})
	return r
}
