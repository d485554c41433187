package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is the root application configuration.
type Config struct {
	API   APIConfig   `yaml:"api"`
	Study StudyConfig `yaml:"study"`
	Log   LogConfig   `yaml:"log"`
}

// APIConfig holds settings for the analysis collaborator.
type APIConfig struct {
	BaseURL        string        `yaml:"base_url"        env:"TUBELINGO_API_URL"         env-default:"http://localhost:8000"`
	AnalyzeTimeout time.Duration `yaml:"analyze_timeout" env:"TUBELINGO_ANALYZE_TIMEOUT" env-default:"90s"`
}

// StudyConfig holds learning-session settings.
type StudyConfig struct {
	DailyGoalXP int `yaml:"daily_goal_xp" env:"TUBELINGO_DAILY_GOAL_XP" env-default:"100"`
}

// LogConfig holds logging settings. A TUI owns the terminal, so
// diagnostics go to a file rather than stderr.
type LogConfig struct {
	Level string `yaml:"level" env:"TUBELINGO_LOG_LEVEL" env-default:"info"`
	File  string `yaml:"file"  env:"TUBELINGO_LOG_FILE"  env-default:""`
}

// Load reads configuration from the environment, with a local .env file
// (if present) loaded first. Priority: process ENV > .env > defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks cross-field constraints not expressible in tags.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("TUBELINGO_API_URL %q is not an absolute URL", c.API.BaseURL)
	}
	if c.API.AnalyzeTimeout <= 0 {
		return fmt.Errorf("TUBELINGO_ANALYZE_TIMEOUT must be positive, got %s", c.API.AnalyzeTimeout)
	}
	if c.Study.DailyGoalXP <= 0 {
		return fmt.Errorf("TUBELINGO_DAILY_GOAL_XP must be positive, got %d", c.Study.DailyGoalXP)
	}
	if c.Log.File != "" {
		if _, err := os.Stat(c.Log.File); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("log file %s: %w", c.Log.File, err)
		}
	}
	return nil
}
