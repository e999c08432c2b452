package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/exp/slices"
)

const (
	DefaultCompletionsURL = "https://api.openai.com/v1/chat/completions"
	DefaultModel          = "gpt-3.5-turbo"
	DefaultPort           = 3000
	DefaultTimeout        = 30 * time.Second
)

var knownEnvs = []string{"dev", "test", "staging", "prod"}

var knownLogLevels = []string{"debug", "info", "warn", "error"}

// Config is read once at start-up and handed to the components that need it.
type Config struct {
	Env            string
	APIKey         string
	CompletionsURL string
	Model          string
	// UpstreamTimeout bounds a single completion call. Zero means no timeout.
	UpstreamTimeout time.Duration
	Port            int
	LogLevel        string
	LogFile         string
	TelemetryDir    string
	BotAPIKey       string
}

// Env returns ASK_ENV, or "dev" when unset.
func Env() string {
	env, exists := os.LookupEnv("ASK_ENV")
	if !exists || env == "" {
		env = "dev"
	}
	return env
}

// Init loads <dir>/.env.<env>.local and <dir>/.env.<env> into the process
// environment. Missing files are skipped and variables that are already set
// are left alone.
func Init(dir string) ([]string, error) {
	env := Env()
	var files []string
	for _, name := range []string{".env." + env + ".local", ".env." + env} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		files = append(files, path)
	}
	if len(files) == 0 {
		return nil, nil
	}
	if err := godotenv.Load(files...); err != nil {
		return nil, fmt.Errorf("loading env files: %w", err)
	}
	return files, nil
}

// Load builds a Config from the environment.
func Load() (Config, error) {
	cfg := Config{
		Env:             Env(),
		APIKey:          os.Getenv("OPENAI_API_KEY"),
		CompletionsURL:  getOr("OPENAI_COMPLETIONS_URL", DefaultCompletionsURL),
		Model:           getOr("OPENAI_MODEL", DefaultModel),
		UpstreamTimeout: DefaultTimeout,
		Port:            DefaultPort,
		LogLevel:        strings.ToLower(getOr("LOG_LEVEL", "info")),
		LogFile:         os.Getenv("LOG_FILE"),
		TelemetryDir:    os.Getenv("TELEMETRY_DIR"),
		BotAPIKey:       os.Getenv("BOT_API_KEY"),
	}

	if !slices.Contains(knownEnvs, cfg.Env) {
		return Config{}, fmt.Errorf("unknown ASK_ENV %q", cfg.Env)
	}
	if !slices.Contains(knownLogLevels, cfg.LogLevel) {
		return Config{}, fmt.Errorf("unknown LOG_LEVEL %q", cfg.LogLevel)
	}

	if v := os.Getenv("UPSTREAM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parsing UPSTREAM_TIMEOUT: %w", err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("UPSTREAM_TIMEOUT must not be negative, got %s", d)
		}
		cfg.UpstreamTimeout = d
	}

	if v := os.Getenv("HTTP_SERVER_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parsing HTTP_SERVER_PORT: %w", err)
		}
		if port <= 0 || port > 65535 {
			return Config{}, fmt.Errorf("HTTP_SERVER_PORT out of range: %d", port)
		}
		cfg.Port = port
	}

	return cfg, nil
}

// Level maps LogLevel onto a slog level.
func (c Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%v", c.Port)
}

func getOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
