package game

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Front ends.
const (
	ModeTUI     = "tui"
	ModeConsole = "console"
)

// EnvPrefix prefixes every environment variable the game reads.
const EnvPrefix = "MINESWEEPER"

// Config holds game configuration options.
type Config struct {
	// Mode selects the front end: ModeTUI or ModeConsole.
	Mode string
	// Preset is a preset id or key. Empty means ask (console) or the first preset (tui).
	Preset string
	// Seed for mine placement. A seed of 0 means a random seed will be generated.
	Seed int64
	// Debug renders cells in their diagnostic form.
	Debug bool

	LogLevel string
	LogFile  string
}

// NewFlagSet declares the command-line flags LoadConfig understands.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "config file (yaml, toml or json)")
	fs.String("mode", ModeTUI, "front end: tui or console")
	fs.StringP("preset", "p", "", "board preset: small, medium, large, xlarge (or S, M, L, X)")
	fs.Int64("seed", 0, "mine placement seed, 0 for random")
	fs.Bool("debug", false, "show cell diagnostics")
	fs.String("log-level", "info", "log level")
	fs.String("log-file", "", "log file (tui mode logs nowhere without one)")
	return fs
}

// LoadConfig resolves configuration from flags, MINESWEEPER_* environment
// variables, an optional config file and defaults, in that order of precedence.
func LoadConfig(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetDefault("mode", ModeTUI)
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		bindings := map[string]string{
			"config":    "config",
			"mode":      "mode",
			"preset":    "preset",
			"seed":      "seed",
			"debug":     "debug",
			"log.level": "log-level",
			"log.file":  "log-file",
		}
		for key, name := range bindings {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := Config{
		Mode:     strings.ToLower(v.GetString("mode")),
		Preset:   v.GetString("preset"),
		Seed:     v.GetInt64("seed"),
		Debug:    v.GetBool("debug"),
		LogLevel: v.GetString("log.level"),
		LogFile:  v.GetString("log.file"),
	}
	if cfg.Mode != ModeTUI && cfg.Mode != ModeConsole {
		return Config{}, fmt.Errorf("unknown mode %q", cfg.Mode)
	}
	return cfg, nil
}
