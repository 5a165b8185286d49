package terrors

import (
	"errors"
	"fmt"
)

var (
	ErrArg            = errors.New("arg error")
	ErrNoArgsProvided = fmt.Errorf("%w: no args provided error", ErrArg)
	ErrFlag           = errors.New("flag error")
	ErrEmptyText      = errors.New("empty text error")
	ErrParse          = errors.New("failed to parse error")
	ErrValue          = errors.New("value error")
	ErrType           = errors.New("type error")
	ErrConf           = errors.New("config error")
	ErrNotFound       = errors.New("not found error")
)

func ErrorArgParse(arg string, err error) error {
	if err == nil {
		return fmt.Errorf("%w: %w: arg %s", ErrArg, ErrParse, arg)
	}
	return fmt.Errorf("%w: %w: arg %s: %w", ErrArg, ErrParse, arg, err)
}

func ErrorFlagValue(flag string, allowed []string, got string) error {
	return fmt.Errorf("%w: %w: flag '--%s' must be one of %q and not '%s'", ErrFlag, ErrValue, flag, allowed, got)
}
