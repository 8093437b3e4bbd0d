package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"fittrack/internal/clients/exercisedb"
	"fittrack/internal/clients/nutrition"
	"fittrack/internal/clients/weather"
	"fittrack/internal/config"
	"fittrack/internal/handlers"
	"fittrack/internal/session"
	"fittrack/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.Any("err", err))
		os.Exit(1)
	}

	var kv store.KV
	if cfg.DatabaseURL != "" {
		kv, err = store.OpenPostgres(cfg.DatabaseURL)
	} else {
		kv, err = store.OpenSQLite(cfg.SQLitePath)
	}
	if err != nil {
		slog.Error("failed to open store", slog.Any("err", err))
		os.Exit(1)
	}
	defer kv.Close()

	sessions := session.NewManager(kv)
	if err := sessions.Restore(context.Background()); err != nil {
		slog.Warn("could not restore session", slog.Any("err", err))
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		slog.Error("failed to build request logger", slog.Any("err", err))
		os.Exit(1)
	}
	defer zapLogger.Sync()

	router := handlers.NewRouter(handlers.Deps{
		KV:        kv,
		Sessions:  sessions,
		JWTSecret: []byte(cfg.JWTSecret),
		Logger:    zapLogger,
		Weather:   &weather.Client{APIKey: cfg.WeatherAPIKey, BaseURL: cfg.WeatherBaseURL},
		Nutrition: &nutrition.Client{APIKey: cfg.NutritionAPIKey, BaseURL: cfg.NutritionBaseURL},
		Exercises: &exercisedb.Client{APIKey: cfg.ExerciseAPIKey, BaseURL: cfg.ExerciseBaseURL},
	})

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: router}
	go func() {
		slog.Info("server starting", slog.String("addr", ":"+cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.Any("err", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutdown initiated")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	slog.Info("server stopped")
}
