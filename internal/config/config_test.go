package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
	assert.Equal(t, 90*time.Second, cfg.API.AnalyzeTimeout)
	assert.Equal(t, 100, cfg.Study.DailyGoalXP)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TUBELINGO_API_URL", "https://api.tubelingo.app")
	t.Setenv("TUBELINGO_ANALYZE_TIMEOUT", "30s")
	t.Setenv("TUBELINGO_DAILY_GOAL_XP", "250")
	t.Setenv("TUBELINGO_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.tubelingo.app", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.AnalyzeTimeout)
	assert.Equal(t, 250, cfg.Study.DailyGoalXP)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"relative API URL", map[string]string{"TUBELINGO_API_URL": "localhost:8000"}},
		{"empty API URL", map[string]string{"TUBELINGO_API_URL": " "}},
		{"zero timeout", map[string]string{"TUBELINGO_ANALYZE_TIMEOUT": "0s"}},
		{"negative goal", map[string]string{"TUBELINGO_DAILY_GOAL_XP": "-5"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
