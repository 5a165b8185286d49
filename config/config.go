package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/TwirlySeal/duit/pkg/terrors"
	"github.com/TwirlySeal/duit/pkg/utils"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "DUIT"
	EnvCFG    = "DUIT_CONFIG"
)

var DefaultPath = "~/.duit"

var configPath string

func ConfigPath() string {
	return configPath
}

// SelectConfigDir picks the config directory: flag, then $DUIT_CONFIG, then the default.
func SelectConfigDir(arg string) error {
	path := DefaultPath
	if env := os.Getenv(EnvCFG); arg != "" {
		path = arg
	} else if env != "" {
		path = env
	}
	path, err := utils.NormalizePath(path)
	if err != nil {
		return fmt.Errorf("%w: config path '%s': %w", terrors.ErrConf, path, err)
	}
	configPath = path
	return nil
}

// InitViper loads the embedded defaults, overlays <dir>/duit.yaml and the
// DUIT_* environment, and writes the defaults out on first run.
func InitViper(arg string) error {
	if err := SelectConfigDir(arg); err != nil {
		return err
	}
	path := ConfigPath()
	file := filepath.Join(path, "duit.yaml")
	viper.SetConfigType("yaml")
	viper.SetConfigFile(file)
	viper.SetEnvPrefix(EnvPrefix)
	// parser.flush is read from DUIT_PARSER_FLUSH
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadConfig(bytes.NewReader([]byte(DefaultConfig))); err != nil {
		return fmt.Errorf("%w: failed parsing default configurations: %w", terrors.ErrParse, err)
	}
	if err := viper.MergeInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %w", terrors.ErrConf, err)
		}
	}
	if errs := Validate(); len(errs) > 0 {
		return errors.Join(errs...)
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return err
	}
	// the defaults are written as is; environment and flag values stay out of the file
	f, err := os.OpenFile(file, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return nil
	} else if err != nil {
		return err
	}
	_, err = f.WriteString(DefaultConfig)
	return errors.Join(err, f.Close())
}
