package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/cascadeui/cascade/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envMenuFile        = "CASCADE_MENU_FILE"
	envWidth           = "CASCADE_WIDTH"
	envHeight          = "CASCADE_HEIGHT"
	envPadding         = "CASCADE_PADDING"
	envHoverOpenDelay  = "CASCADE_HOVER_OPEN_DELAY"
	envHoverCloseDelay = "CASCADE_HOVER_CLOSE_DELAY"
	envReloadInterval  = "CASCADE_RELOAD_INTERVAL"
	envShowFooter      = "CASCADE_FOOTER"
	envVerbose         = "CASCADE_VERBOSE"
	envTrace           = "CASCADE_TRACE"
	envLogFile         = "CASCADE_LOG_FILE"
	envDebug           = "CASCADE_DEBUG"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := pflag.NewFlagSet("cascade", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	menuFile := fs.String("menu-file", envOrDefault(env, envMenuFile, ""), "path to a YAML menu definition (empty uses the built-in demo menu)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	padding := fs.Int("padding", envOrInt(env, envPadding, 0), "cells of breathing room kept between popups and the viewport edges")
	openDelay := fs.Duration("hover-open-delay", envOrDuration(env, envHoverOpenDelay, 200*time.Millisecond), "hover dwell before a submenu opens")
	closeDelay := fs.Duration("hover-close-delay", envOrDuration(env, envHoverCloseDelay, 400*time.Millisecond), "hover dwell before an abandoned submenu closes")
	reload := fs.Duration("reload-interval", envOrDuration(env, envReloadInterval, 1500*time.Millisecond), "poll interval for menu definition reloads")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	debug := fs.Bool("debug", envOrBool(env, envDebug, false), "log an open-state snapshot on shutdown")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *padding < 0 {
		return Config{}, fmt.Errorf("padding must be >= 0 (got %d)", *padding)
	}
	if *openDelay < 0 || *closeDelay < 0 {
		return Config{}, fmt.Errorf("hover delays must be >= 0")
	}
	if *reload < 100*time.Millisecond {
		return Config{}, fmt.Errorf("reload interval must be >= 100ms (got %s)", *reload)
	}

	cfg := Config{
		App: app.Config{
			MenuFile:        *menuFile,
			Width:           *width,
			Height:          *height,
			Padding:         *padding,
			HoverOpenDelay:  *openDelay,
			HoverCloseDelay: *closeDelay,
			ReloadInterval:  *reload,
			ShowFooter:      *footer,
			Verbose:         *verbose,
			Debug:           *debug,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"menuFile":        *menuFile,
			"width":           strconv.Itoa(*width),
			"height":          strconv.Itoa(*height),
			"padding":         strconv.Itoa(*padding),
			"hoverOpenDelay":  openDelay.String(),
			"hoverCloseDelay": closeDelay.String(),
			"reloadInterval":  reload.String(),
			"footer":          strconv.FormatBool(*footer),
			"trace":           strconv.FormatBool(*trace),
			"verbose":         strconv.FormatBool(*verbose),
			"logFile":         *logFile,
			"debug":           strconv.FormatBool(*debug),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.App.MenuFile == "" {
		return nil
	}
	if _, err := os.Stat(cfg.App.MenuFile); err != nil {
		return fmt.Errorf("menu file: %w", err)
	}
	return nil
}
