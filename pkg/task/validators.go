package task

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/TwirlySeal/duit/pkg/terrors"
	"github.com/TwirlySeal/duit/pkg/utils"
)

func validateEmptyText(text string) error {
	if strings.TrimSpace(text) == "" {
		return terrors.ErrEmptyText
	}
	return nil
}

func validateHexColor(color string) error {
	if utils.RuneCount(color) != 7 {
		return fmt.Errorf("%w: length of hex color '%s' must be '7'", terrors.ErrValue, color)
	}
	if color[0] != '#' {
		return fmt.Errorf("%w: hex color '%s' must start with '#'", terrors.ErrValue, color)
	}
	for _, char := range color[1:] {
		if !unicode.Is(unicode.ASCII_Hex_Digit, char) {
			return fmt.Errorf("%w: hex color '%s' must only consist of hex digits", terrors.ErrValue, color)
		}
	}
	return nil
}
