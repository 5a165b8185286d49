package config

import (
	"fmt"
	"slices"
	"strconv"
	"unicode"

	"github.com/TwirlySeal/duit/pkg/terrors"
	"github.com/TwirlySeal/duit/pkg/utils"
	"github.com/spf13/viper"
)

var (
	FlushPolicies = []string{"observed", "strict"}
	OutputFormats = []string{"yaml", "json"}
)

// Validate checks every known key and reports all problems at once.
func Validate() []error {
	var errs []error
	// logging.*
	{
		for _, key := range []string{"logging.console-level", "logging.file-level"} {
			if err := validateLogLevel(key); err != nil {
				errs = append(errs, err)
			}
		}
	}
	// parser.*
	{
		if err := validateOneOf("parser.flush", FlushPolicies); err != nil {
			errs = append(errs, err)
		}
	}
	if err := validateOneOf("output", OutputFormats); err != nil {
		errs = append(errs, err)
	}
	// print.color-*
	{
		for _, key := range []string{"color-default", "color-date", "color-time"} {
			if err := validateColor("print." + key); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errs
}

func validateOneOf(key string, allowed []string) error {
	if err := validateTypeString(key); err != nil {
		return err
	}
	val := viper.GetString(key)
	if !slices.Contains(allowed, val) {
		return fmt.Errorf("%w: %w: config key '%s' must be one of %q and not '%s'", terrors.ErrConf, terrors.ErrValue, key, allowed, val)
	}
	return nil
}

func validateColor(key string) error {
	if err := validateTypeString(key); err != nil {
		return err
	}
	color := viper.GetString(key)
	colorLen := utils.RuneCount(color)
	if colorLen != 7 {
		return fmt.Errorf("%w: %w: length of hex color '%s' must be '7' and not '%d'", terrors.ErrConf, terrors.ErrValue, key, colorLen)
	}
	if color[0] != '#' {
		return fmt.Errorf("%w: %w: hex color '%s' must start with '#' and not '%c'", terrors.ErrConf, terrors.ErrValue, key, color[0])
	}
	for _, char := range color[1:] {
		if !unicode.Is(unicode.ASCII_Hex_Digit, char) {
			return fmt.Errorf("%w: %w: hex color '%s' must only consist of hex digits not '%c'", terrors.ErrConf, terrors.ErrValue, key, char)
		}
	}
	return nil
}

func validateLogLevel(key string) error {
	if err := validateTypeInt(key); err != nil {
		return err
	}
	val := viper.GetInt(key)
	if val < -1 || val > 5 {
		return fmt.Errorf("%w: %w: config key '%s' must be between '-1' and '5' and not '%d'", terrors.ErrConf, terrors.ErrValue, key, val)
	}
	return nil
}

func validateTypeInt(key string) error {
	raw := viper.Get(key)
	switch val := raw.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return nil
	case string:
		// environment overrides arrive as text
		if _, err := strconv.Atoi(val); err == nil {
			return nil
		}
		return fmt.Errorf("%w: %w: config key '%s' must be an integer not '%s'", terrors.ErrConf, terrors.ErrType, key, raw)
	default:
		return fmt.Errorf("%w: %w: config key '%s' must be of an int type not '%T'", terrors.ErrConf, terrors.ErrType, key, raw)
	}
}

func validateTypeString(key string) error {
	raw := viper.Get(key)
	switch raw.(type) {
	case string:
		return nil
	default:
		return fmt.Errorf("%w: %w: config key '%s' must be of type string not '%T'", terrors.ErrConf, terrors.ErrType, key, raw)
	}
}
