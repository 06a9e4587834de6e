// Package main is the entry point for the SkyPath itinerary search service.
//
//	@title						SkyPath Itinerary Search API
//	@version					1.0.0
//	@description				Finds and ranks direct and connecting flight itineraries between two airports on a given date, with timezone-correct times and realistic layover rules.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/skypath/itinerary-search/docs"

	"github.com/skypath/itinerary-search/internal/adapter/dataset"
	itinhttp "github.com/skypath/itinerary-search/internal/adapter/http"
	"github.com/skypath/itinerary-search/internal/adapter/http/middleware"
	"github.com/skypath/itinerary-search/internal/config"
	"github.com/skypath/itinerary-search/internal/domain"
	"github.com/skypath/itinerary-search/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("flights_file", cfg.Data.FlightsFile).
		Msg("Configuration loaded")

	// Load the static dataset. Any record that fails validation or time
	// normalization aborts startup: the engine never serves a partially
	// loaded catalog.
	directory, cat, err := dataset.Load(cfg.Data.FlightsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load flight dataset")
	}

	log.Info().
		Int("airports", directory.Len()).
		Int("flights", cat.Len()).
		Msg("Flight dataset loaded")

	// Wire the engine: validator, search use case, HTTP handler.
	validator := domain.NewConnectionValidator(directory, domain.LayoverBounds{
		MinDomestic:      cfg.Search.MinDomesticLayover,
		MinInternational: cfg.Search.MinInternationalLayover,
		Max:              cfg.Search.MaxLayover,
	})

	searchUC := usecase.NewItinerarySearch(directory, cat, validator, &usecase.Config{
		MaxSegments: cfg.Search.MaxSegments,
	})

	handler := itinhttp.NewItineraryHandler(searchUC)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)
	itinhttp.RegisterRoutes(e, handler)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e)
}

// setupLogger configures the global zerolog logger based on config.
func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if cfg.Logging.Format != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	switch cfg.Logging.Level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
