package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("DARKCHESS_LOG_LEVEL=debug\nDARKCHESS_SEED=99\nDARKCHESS_AI_NAME=flipper\n"), 0o644))
	// godotenv 不覆盖已存在的变量，测试结束后清理
	t.Setenv("DARKCHESS_LOG_LEVEL", "")
	t.Setenv("DARKCHESS_SEED", "")
	t.Setenv("DARKCHESS_AI_NAME", "")
	os.Unsetenv("DARKCHESS_LOG_LEVEL")
	os.Unsetenv("DARKCHESS_SEED")
	os.Unsetenv("DARKCHESS_AI_NAME")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, "flipper", cfg.AIName)
	assert.Equal(t, "1.0.0", cfg.AIVersion)
}

func TestEnvOverridesDefaults(t *testing.T) {
	t.Setenv("DARKCHESS_LOG_FORMAT", "JSON")
	t.Setenv("DARKCHESS_AI_VERSION", "2.1.0")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "2.1.0", cfg.AIVersion)
}

func TestBadSeed(t *testing.T) {
	t.Setenv("DARKCHESS_SEED", "abc")
	_, err := FromEnv()
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "warn"
	cfg.LogFormat = "json"
	l, err := cfg.NewLogger()
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, l.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, l.Formatter)

	cfg.LogLevel = "loud"
	_, err = cfg.NewLogger()
	assert.Error(t, err)

	cfg.LogLevel = "info"
	cfg.LogFormat = "xml"
	_, err = cfg.NewLogger()
	assert.Error(t, err)
}
