package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/TwirlySeal/duit/pkg/terrors"
	"gopkg.in/yaml.v3"
)

// Encode writes v to w as yaml or json.
func Encode(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err := enc.Encode(v)
		return errors.Join(err, enc.Close())
	}
	return fmt.Errorf("%w: unknown output format '%s'", terrors.ErrValue, format)
}
