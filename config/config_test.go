package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/TwirlySeal/duit/pkg/terrors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestInitViper(t *testing.T) {
	assert := assert.New(t)

	t.Run("defaults are written on first run", func(t *testing.T) {
		viper.Reset()
		dir := t.TempDir()
		if !assert.NoError(InitViper(dir)) {
			assert.FailNow("InitViper")
		}
		assert.Equal(dir, ConfigPath())
		assert.FileExists(filepath.Join(dir, "duit.yaml"))
		assert.Equal("observed", viper.GetString("parser.flush"))
		assert.Equal("yaml", viper.GetString("output"))
		assert.Equal("#6aa88f", viper.GetString("print.color-date"))
	})

	t.Run("user file overrides defaults", func(t *testing.T) {
		viper.Reset()
		dir := t.TempDir()
		err := os.WriteFile(filepath.Join(dir, "duit.yaml"), []byte("parser:\n  flush: strict\noutput: json\n"), 0o644)
		assert.NoError(err)
		if !assert.NoError(InitViper(dir)) {
			assert.FailNow("InitViper")
		}
		assert.Equal("strict", viper.GetString("parser.flush"))
		assert.Equal("json", viper.GetString("output"))
		assert.Equal(1, viper.GetInt("logging.console-level"))
	})

	t.Run("invalid values are all reported", func(t *testing.T) {
		viper.Reset()
		dir := t.TempDir()
		err := os.WriteFile(filepath.Join(dir, "duit.yaml"), []byte(
			"parser:\n  flush: eager\nlogging:\n  console-level: 9\nprint:\n  color-date: '#zzzzzz'\n"), 0o644)
		assert.NoError(err)
		err = InitViper(dir)
		assert.ErrorIs(err, terrors.ErrConf)
		assert.ErrorContains(err, "parser.flush")
		assert.ErrorContains(err, "logging.console-level")
		assert.ErrorContains(err, "print.color-date")
	})

	t.Run("environment overrides nested keys", func(t *testing.T) {
		viper.Reset()
		dir := t.TempDir()
		t.Setenv("DUIT_PARSER_FLUSH", "strict")
		t.Setenv("DUIT_OUTPUT", "json")
		t.Setenv("DUIT_LOGGING_CONSOLE_LEVEL", "0")
		if !assert.NoError(InitViper(dir)) {
			assert.FailNow("InitViper")
		}
		assert.Equal("strict", viper.GetString("parser.flush"))
		assert.Equal("json", viper.GetString("output"))
		assert.Equal(0, viper.GetInt("logging.console-level"))

		data, err := os.ReadFile(filepath.Join(dir, "duit.yaml"))
		assert.NoError(err)
		assert.Contains(string(data), "flush: observed")
		assert.NotContains(string(data), "strict")
	})

	t.Run("environment values are validated", func(t *testing.T) {
		viper.Reset()
		t.Setenv("DUIT_LOGGING_FILE_LEVEL", "loud")
		t.Setenv("DUIT_PARSER_FLUSH", "eager")
		err := InitViper(t.TempDir())
		assert.ErrorIs(err, terrors.ErrType)
		assert.ErrorContains(err, "logging.file-level")
		assert.ErrorContains(err, "parser.flush")
	})

	t.Run("config dir from env", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv(EnvCFG, dir)
		assert.NoError(SelectConfigDir(""))
		assert.Equal(dir, ConfigPath())
	})
}

func TestValidate(t *testing.T) {
	assert := assert.New(t)
	viper.Reset()
	viper.Set("logging.console-level", "loud")
	viper.Set("logging.file-level", -1)
	viper.Set("parser.flush", "observed")
	viper.Set("output", "toml")
	for _, key := range []string{"color-default", "color-date", "color-time"} {
		viper.Set("print."+key, "#FFFFFF")
	}
	viper.Set("print.color-time", "FFFFFF")

	errs := Validate()
	if assert.Len(errs, 3) {
		assert.ErrorIs(errs[0], terrors.ErrType)
		assert.ErrorContains(errs[1], "output")
		assert.ErrorContains(errs[2], "print.color-time")
	}
}
