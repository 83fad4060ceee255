// Package main is the entry point for minesweeper.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/samdwyer/minesweeper/internal/game"
	"github.com/samdwyer/minesweeper/internal/gamedata"
	"github.com/samdwyer/minesweeper/internal/telemetry"
	"github.com/samdwyer/minesweeper/internal/ui"
)

var log = logrus.New()

func main() {
	exitCode := 0
	defer func() { os.Exit(exitCode) }()

	// Load .env file for local development
	envErr := godotenv.Load()

	flags := game.NewFlagSet(os.Args[0])
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	cfg, err := game.LoadConfig(flags)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logFile, err := setupLogging(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	if envErr != nil {
		// Not fatal - env vars might be set directly
		log.WithError(envErr).Debug(".env file not loaded")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if setupOTelEnv() {
		shutdown, err := telemetry.Setup(ctx, telemetry.GameAttributes(cfg.Mode, cfg.Preset, cfg.Seed != 0)...)
		if err != nil {
			log.WithError(err).Warn("Telemetry setup failed, running without observability")
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.WithError(err).Error("Error shutting down telemetry")
				}
			}()
		}
	}

	if err := run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Error("Game error")
		exitCode = 1
	}
}

func run(ctx context.Context, cfg game.Config) error {
	presets, err := gamedata.LoadPresetRegistry()
	if err != nil {
		return err
	}

	opts := []game.SessionOption{
		game.WithLogger(log),
		game.WithSeed(cfg.Seed),
	}

	if cfg.Mode == game.ModeConsole {
		console := game.NewConsole(os.Stdin, os.Stdout, presets, cfg.Debug, opts...)
		return console.Run(ctx, cfg.Preset)
	}

	preset := presets.Default()
	if cfg.Preset != "" {
		if preset = presets.Lookup(cfg.Preset); preset == nil {
			return fmt.Errorf("unknown preset %q", cfg.Preset)
		}
	}

	theme, err := gamedata.LoadTheme()
	if err != nil {
		return err
	}
	screen, err := ui.NewScreen()
	if err != nil {
		return err
	}
	return game.New(screen, theme, presets, preset, cfg.Debug, opts...).Run(ctx)
}

// setupLogging applies the configured level and output. The terminal belongs
// to tcell in tui mode, so logs go to the log file or nowhere.
func setupLogging(cfg game.Config) (*os.File, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		log.SetOutput(f)
		return f, nil
	}
	if cfg.Mode == game.ModeTUI {
		log.SetOutput(io.Discard)
	} else {
		log.SetOutput(os.Stderr)
	}
	return nil, nil
}

// setupOTelEnv maps our Honeycomb variables onto the OTEL exporter variables.
// It reports whether an API key is configured.
func setupOTelEnv() bool {
	apiKey := os.Getenv("HONEYCOMB_MINESWEEPER_API_KEY")
	if apiKey == "" {
		return false
	}
	dataset := os.Getenv("HONEYCOMB_MINESWEEPER_DATASET")
	if dataset == "" {
		dataset = telemetry.ServiceName
	}

	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	return true
}
