package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Reads the config file", func(t *testing.T) {
		// Given: a config file with debug logging and no coordinates
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nconsole:\n  show-help: false\n  show-coordinates: false\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		conf, err := Load(path)

		// Then: the file values are used
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.False(t, conf.Console.ShowHelp)
		assert.False(t, conf.Console.ShowCoordinates)
	})

	t.Run("Falls back to defaults without a file", func(t *testing.T) {
		// When: loading a path that does not exist
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: the defaults are used
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.True(t, conf.Console.ShowHelp)
		assert.True(t, conf.Console.ShowCoordinates)
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		// Given: the log level is set in the environment
		t.Setenv("TICTACTOE_LOG_LEVEL", "warn")

		// When: loading without a file
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: the environment value is used
		require.NoError(t, err)
		assert.Equal(t, "warn", conf.LogLevel)
	})

	t.Run("Malformed file", func(t *testing.T) {
		// Given: a file that is not yaml
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: [unclosed"), 0o600))

		// When: loading it
		_, err := Load(path)

		// Then: an error is returned
		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(path) })
	})
}

func TestLoad_DisableConsoleOptions(t *testing.T) {
	t.Run("Only one option disabled in the file", func(t *testing.T) {
		// Given: a config file that turns off only the help text
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("console:\n  show-help: false\n"), 0o600))

		// When: loading it
		conf, err := Load(path)

		// Then: help is off and coordinates keep their default
		require.NoError(t, err)
		assert.False(t, conf.Console.ShowHelp)
		assert.True(t, conf.Console.ShowCoordinates)
	})

	t.Run("Disabled from the environment", func(t *testing.T) {
		// Given: coordinates are turned off in the environment
		t.Setenv("TICTACTOE_SHOW_COORDINATES", "false")

		// When: loading without a file
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: coordinates are off and help keeps its default
		require.NoError(t, err)
		assert.False(t, conf.Console.ShowCoordinates)
		assert.True(t, conf.Console.ShowHelp)
	})
}
