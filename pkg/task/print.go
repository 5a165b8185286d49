package task

import (
	"fmt"
	"io"
	"strings"

	"github.com/TwirlySeal/duit/pkg/terrors"
	"github.com/TwirlySeal/duit/pkg/utils"
)

type Style int

const (
	StylePlain Style = iota
	StyleConky
	StyleTerm
)

// Palette holds "#rrggbb" colors for highlighted titles.
type Palette struct {
	Default string
	Date    string
	Time    string
}

func (p Palette) Validate() error {
	for _, color := range []string{p.Default, p.Date, p.Time} {
		if err := validateHexColor(color); err != nil {
			return err
		}
	}
	return nil
}

/*
Highlight marks every expression of the title:

	plain   [friday 6pm]
	conky   ${color #date}friday${color #default}
	term    ANSI colors, dropped when the output is not a terminal

Expressions carrying a time use the time color, date-only ones the date color.
*/
func (t *Title) Highlight(style Style, pal Palette) string {
	return utils.Surround(t.Text, t.Spans(), func(ndx int, text string) string {
		color := pal.Date
		if t.Exprs[ndx].Time != nil {
			color = pal.Time
		}
		switch style {
		case StyleConky:
			return utils.Colorize(true, color, text) + utils.Colorize(true, pal.Default, "")
		case StyleTerm:
			return utils.Paint(color, text)
		}
		return "[" + text + "]"
	})
}

// PrintTitles writes one highlighted title per line.
func PrintTitles(w io.Writer, titles []*Title, style Style, pal Palette) error {
	if style != StylePlain {
		if err := pal.Validate(); err != nil {
			return err
		}
	}
	var out strings.Builder
	for _, title := range titles {
		out.WriteString(title.Highlight(style, pal))
		out.WriteByte('\n')
	}
	_, err := io.WriteString(w, out.String())
	return err
}

func StyleByFlags(color, conky bool) (Style, error) {
	switch {
	case color && conky:
		return StylePlain, fmt.Errorf("%w: '--color' and '--conky' are mutually exclusive", terrors.ErrFlag)
	case color:
		return StyleTerm, nil
	case conky:
		return StyleConky, nil
	}
	return StylePlain, nil
}
