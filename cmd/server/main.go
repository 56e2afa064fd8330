package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/workout-generator-web/internal/api"
	"github.com/workout-generator-web/internal/config"
	"github.com/workout-generator-web/internal/content"
	"github.com/workout-generator-web/internal/database"
	"github.com/workout-generator-web/internal/repository"
	"github.com/workout-generator-web/internal/service"
	"github.com/workout-generator-web/pkg/logger"
)

func main() {
	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting Workout Generator web server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize content source
	source, err := newContentSource(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize content source")
	}

	// Fail fast on broken content (duplicate slugs, bad dates)
	posts, err := source.Posts(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("Content source unavailable")
	}
	if err := content.Validate(posts); err != nil {
		log.Fatal().Err(err).Msg("Invalid post collection")
	}
	log.Info().
		Str("source", cfg.Content.Source).
		Int("posts", len(posts)).
		Msg("Content source ready")

	if cfg.ChatKit.APIKey == "" {
		log.Warn().Msg("OPENAI_API_KEY not set; chat session endpoint will report a configuration error")
	}

	// Initialize repositories
	repos := repository.New(source)

	// Initialize services
	services := service.NewServices(repos, cfg, log)

	// Initialize router
	router := api.NewRouter(services, cfg, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Str("base_url", cfg.Site.BaseURL).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}

// newContentSource wires the configured content backend. The postgres source
// also runs pending migrations so a fresh database is usable immediately.
func newContentSource(cfg *config.Config, log zerolog.Logger) (content.Source, error) {
	switch cfg.Content.Source {
	case config.SourceFiles:
		return content.NewFilesSource(cfg.Content.Dir), nil

	case config.SourcePostgres:
		db, err := database.New(&cfg.Database, log)
		if err != nil {
			return nil, err
		}

		migrationsPath := os.Getenv("MIGRATIONS_PATH")
		if migrationsPath == "" {
			migrationsPath = "./migrations"
		}
		if err := db.RunMigrations(migrationsPath); err != nil {
			return nil, err
		}

		return content.NewPostgresSource(db), nil

	default:
		return content.NewStaticSource(), nil
	}
}
