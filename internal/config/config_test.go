package config

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mordilloSan/sinklog/logger"
)

func TestLoadEnvironmentVariables(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"SINKLOG_TRANSPORTS", "SINKLOG_FILE", "SINKLOG_COLOR"} {
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}

		envVars, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "file,console", envVars.Transports)
		assert.Equal(t, "log.log", envVars.File)
		assert.Equal(t, ColorAuto, envVars.Color)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("SINKLOG_TRANSPORTS", "console")
		t.Setenv("SINKLOG_FILE", "/var/log/app.log")
		t.Setenv("SINKLOG_COLOR", "never")

		envVars, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "console", envVars.Transports)
		assert.Equal(t, "/var/log/app.log", envVars.File)
		assert.Equal(t, ColorNever, envVars.Color)
	})

	t.Run("invalid color", func(t *testing.T) {
		t.Setenv("SINKLOG_COLOR", "rainbow")

		_, err := Load()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEnvVariablesNotValid)
	})
}

func TestValidateColor(t *testing.T) {
	for _, mode := range []string{ColorAuto, ColorAlways, ColorNever} {
		assert.NoError(t, ValidateColor(mode))
	}
	assert.Error(t, ValidateColor("Always"))
	assert.Error(t, ValidateColor(""))
}

func TestLoggerOptions(t *testing.T) {
	t.Run("console only with forced color", func(t *testing.T) {
		cfg := &Config{Transports: " console , ", File: "/logs/app.log", Color: ColorAlways}
		fs := afero.NewMemMapFs()
		var stdout, stderr bytes.Buffer

		opts := append(cfg.LoggerOptions(), logger.WithFs(fs), logger.WithConsole(&stdout, &stderr))
		l, err := logger.New(opts...)
		require.NoError(t, err)

		require.NoError(t, l.Warn("hot"))
		assert.Contains(t, stderr.String(), "\033[")
		assert.Equal(t, "/logs/app.log", l.LogFilePath())

		exists, err := afero.Exists(fs, "/logs/app.log")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("file only without color", func(t *testing.T) {
		cfg := &Config{Transports: "file", File: "/logs/app.log", Color: ColorNever}
		fs := afero.NewMemMapFs()
		var stdout, stderr bytes.Buffer

		opts := append(cfg.LoggerOptions(), logger.WithFs(fs), logger.WithConsole(&stdout, &stderr))
		l, err := logger.New(opts...)
		require.NoError(t, err)
		require.NoError(t, l.Warn("quiet"))
		require.NoError(t, l.Close())

		assert.Empty(t, stderr.String())
		content, err := afero.ReadFile(fs, "/logs/app.log")
		require.NoError(t, err)
		assert.Contains(t, string(content), "[WARN] : quiet")
	})
}
