package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/stagetools/staging-console/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envSourceRoot = "STAGING_CONSOLE_SOURCE"
	envDestRoot   = "STAGING_CONSOLE_DEST"
	envWidth      = "STAGING_CONSOLE_WIDTH"
	envHeight     = "STAGING_CONSOLE_HEIGHT"
	envShowFooter = "STAGING_CONSOLE_FOOTER"
	envHidden     = "STAGING_CONSOLE_HIDDEN"
	envVerbose    = "STAGING_CONSOLE_VERBOSE"
	envWatch      = "STAGING_CONSOLE_WATCH"
	envTrace      = "STAGING_CONSOLE_TRACE"
	envLogFile    = "STAGING_CONSOLE_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("staging-console", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	source := fs.String("source", envOrDefault(env, envSourceRoot, ""), "source pane root (defaults to the first detected drive)")
	dest := fs.String("dest", envOrDefault(env, envDestRoot, ""), "destination pane root (defaults to the second detected drive)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the key hint footer")
	hidden := fs.Bool("hidden", envOrBool(env, envHidden, false), "list dot-prefixed files and folders")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	watch := fs.Bool("watch", envOrBool(env, envWatch, true), "refresh panes on filesystem changes")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			SourceRoot: *source,
			DestRoot:   *dest,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			ShowHidden: *hidden,
			Verbose:    *verbose,
			Watch:      *watch,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"source":  *source,
			"dest":    *dest,
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"footer":  strconv.FormatBool(*footer),
			"hidden":  strconv.FormatBool(*hidden),
			"verbose": strconv.FormatBool(*verbose),
			"watch":   strconv.FormatBool(*watch),
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
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

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures the configured pane roots exist when given explicitly.
func Validate(cfg Config) error {
	for name, root := range map[string]string{"source": cfg.App.SourceRoot, "dest": cfg.App.DestRoot} {
		if root == "" {
			continue
		}
		info, err := os.Stat(root)
		if err != nil {
			return fmt.Errorf("%s root %q: %w", name, root, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%s root %q is not a directory", name, root)
		}
	}
	return nil
}
