package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, ":8080", cfg.Server.Addr())
	assert.Equal(t, "quiz.db", cfg.Database.Sqlite.Path)
	assert.Equal(t, "localhost:6379", cfg.Database.Redis.Address)
	assert.Equal(t, "assets/questions.json", cfg.Seed.QuestionsFile)
	assert.False(t, cfg.Seed.ResetDatabase)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("RESET_DATABASE", "true")
	t.Setenv("DATABASE_REDIS_ADDRESS", "redis:6379")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr())
	assert.True(t, cfg.Seed.ResetDatabase)
	assert.Equal(t, "redis:6379", cfg.Database.Redis.Address)
}
