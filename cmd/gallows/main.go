// Package main is the entry point for Gallows.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/samdwyer/gallows/internal/app"
	"github.com/samdwyer/gallows/internal/telemetry"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	// Load .env file for local development
	// This makes HONEYCOMB_GALLOWS_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Debug().Msgf(".env file not loaded: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx := context.Background()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		// Continue without telemetry - the game still works
		log.Warn().Err(err).Msg("telemetry setup failed, running without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Error().Err(err).Msg("error shutting down telemetry")
			}
		}()
	}

	a, err := app.New(app.FromEnv())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize game")
	}

	if err := a.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("game error")
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Construct the headers from our API key; the .env file may have an
	// unexpanded variable reference that doesn't work
	apiKey := os.Getenv("HONEYCOMB_GALLOWS_API_KEY")
	dataset := os.Getenv("HONEYCOMB_GALLOWS_DATASET")
	if dataset == "" {
		dataset = "gallows" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
