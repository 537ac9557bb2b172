// Package main is the entry point for the EduWealth backend.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dhanushcr18/Edu-wealth/internal/advisor"
	"github.com/Dhanushcr18/Edu-wealth/internal/api"
	"github.com/Dhanushcr18/Edu-wealth/internal/config"
	"github.com/Dhanushcr18/Edu-wealth/internal/database"
	"github.com/Dhanushcr18/Edu-wealth/internal/logger"
	"github.com/Dhanushcr18/Edu-wealth/internal/recommend"
	"github.com/Dhanushcr18/Edu-wealth/internal/report"
	"github.com/Dhanushcr18/Edu-wealth/internal/repository"
	"github.com/Dhanushcr18/Edu-wealth/internal/telemetry"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("eduwealth %s (commit: %s, built: %s)\n", version, commit, date)
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to load config")
	}

	logger.SetLevel(cfg.LogLevel)
	logger.InitHashSalt()

	shutdownTelemetry, err := telemetry.Init(ctx, cfg.ServiceName, cfg.OTLPEndpoint)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to initialize telemetry")
	}
	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			logger.Log.Error().Err(err).Msg("Telemetry shutdown failed")
		}
	}()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pool.Close()

	if err := database.RunMigrations(ctx, pool); err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	if err := database.SeedInterests(ctx, pool); err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to seed interests")
	}

	logger.Log.Info().Msg("Database initialized successfully")

	users := repository.NewUserRepository(pool)
	expenses := repository.NewExpenseRepository(pool)
	courses := repository.NewCourseRepository(pool)
	savedCourses := repository.NewSavedCourseRepository(pool)
	interests := repository.NewInterestRepository(pool)

	if cfg.SeedCatalog {
		if err := seedCatalog(ctx, courses); err != nil {
			logger.Log.Fatal().Err(err).Msg("Failed to seed course catalog")
		}
	}

	provider := recommend.NewCuratedProvider()
	selector := recommend.NewSelector(courses, provider)
	worker := recommend.NewWorker(courses, provider, cfg.SearchQueueSize, cfg.SearchResultsCap)
	worker.Start(ctx)

	advisorSvc := advisor.NewService(users, expenses, interests, selector, worker, cfg.DefaultCurrency)
	reporter := report.NewReporter(expenses, cfg.DefaultCurrency)
	server := api.NewServer(advisorSvc, reporter, users, expenses, courses, savedCourses, interests)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		logger.Log.Info().Msg("Shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error().Err(err).Msg("HTTP shutdown failed")
		}
		cancel()
	}()

	logger.Log.Info().Str("addr", cfg.HTTPAddr).Msg("HTTP server listening")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Log.Fatal().Err(err).Msg("HTTP server failed")
	}

	worker.Wait()
}

// seedCatalog loads the curated course list. Re-running is a no-op because
// every entry upserts by its source hash.
func seedCatalog(ctx context.Context, courses *repository.CourseRepository) error {
	seeded := 0
	for _, course := range recommend.CuratedCatalog() {
		if err := courses.UpsertBySourceHash(ctx, &course); err != nil {
			return fmt.Errorf("failed to seed course %q: %w", course.Title, err)
		}
		seeded++
	}
	logger.Log.Info().Int("courses", seeded).Msg("Course catalog seeded")
	return nil
}
