// Package main is the entry point for mealrun.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/samdwyer/mealrun/internal/game"
	"github.com/samdwyer/mealrun/internal/telemetry"
)

func main() {
	// Not fatal: variables may be set directly.
	envErr := godotenv.Load()

	logFile := openLog(getEnv("MEALRUN_LOG_FILE", "mealrun.log"))
	log.Logger = zerolog.New(logFile).With().Timestamp().Logger()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if envErr != nil {
		log.Debug().Err(envErr).Msg(".env file not loaded")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx)
	stop()

	if err != nil {
		log.Error().Err(err).Msg("mealrun failed")
		fmt.Fprintf(os.Stderr, "mealrun: %v\n", err)
		logFile.Close()
		os.Exit(1)
	}
	logFile.Close()
}

// run sets up tracing, loads the configuration and plays until the player
// quits. Deferred cleanup always runs before it returns.
func run(ctx context.Context) error {
	if setupOTelEnv() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("telemetry setup failed, running without tracing")
			telemetry.Disable()
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.Error().Err(err).Msg("telemetry shutdown")
				}
			}()
		}
	} else {
		telemetry.Disable()
	}

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	g, err := game.New(ctx, cfg, log.Logger)
	if err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}

	if err := g.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("game: %w", err)
	}
	return nil
}

// setupOTelEnv maps the Honeycomb settings onto the standard OTEL
// variables. It reports whether an API key was found.
func setupOTelEnv() bool {
	apiKey := os.Getenv("MEALRUN_HONEYCOMB_API_KEY")
	if apiKey == "" {
		return false
	}
	dataset := getEnv("MEALRUN_HONEYCOMB_DATASET", "mealrun")

	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	return true
}

// openLog opens the log file for appending. The terminal belongs to the
// game screen, so logs never go to stderr once it is up.
func openLog(path string) io.WriteCloser {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mealrun: cannot open log %s: %v\n", path, err)
		return nopCloser{io.Discard}
	}
	return f
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
