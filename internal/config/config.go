package config

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// App holds core runtime configuration shared across services.
type App struct {
	Name                    string        `env:"APP_NAME" envDefault:"study-buddy"`
	Env                     string        `env:"APP_ENV" envDefault:"development"`
	HTTPAddr                string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:5000"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_SECONDS" envDefault:"20s"`

	AI      AI
	Storage Storage
	Quiz    Quiz
}

// AI configures the Gemini generation capability. An empty or placeholder
// APIKey leaves the app in degraded mode where every AI-dependent feature
// uses its fallback path.
type AI struct {
	APIKey      string        `env:"GEMINI_API_KEY" envDefault:""`
	Model       string        `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	HTTPTimeout time.Duration `env:"AI_HTTP_TIMEOUT" envDefault:"30s"`
}

// Storage locates the JSON persistence files.
type Storage struct {
	DataDir       string `env:"DATA_DIR" envDefault:"."`
	CacheFile     string `env:"ANSWER_CACHE_FILE" envDefault:"ai_cache.json"`
	SchedulesFile string `env:"SCHEDULES_FILE" envDefault:"study_schedules.json"`
}

// Quiz groups quiz generation defaults.
type Quiz struct {
	DefaultQuestionCount int `env:"DEFAULT_QUESTION_COUNT" envDefault:"5"`
}

// PlaceholderAPIKey is the value shipped in .env templates; it is treated
// the same as no key at all.
const PlaceholderAPIKey = "your_api_key_here"

// AIConfigured reports whether a usable generation credential is present.
func (c *App) AIConfigured() bool {
	return c.AI.APIKey != "" && c.AI.APIKey != PlaceholderAPIKey
}

// Load parses environment variables into App config.
func Load(ctx context.Context) (*App, error) {
	cfg := &App{}
	if err := env.ParseWithOptions(cfg, env.Options{RequiredIfNoDef: true}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
