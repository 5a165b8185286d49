package utils

import (
	"strings"
	"unicode/utf8"
)

func RuneCount(s string) int {
	return utf8.RuneCountInString(s)
}

// RuneSlice slices s by rune offsets. Offsets out of range panic just like
// they would for a regular slice expression.
func RuneSlice(s string, start, stop int) string {
	return string([]rune(s)[start:stop])
}

// Span is a half-open range of rune offsets.
type Span struct {
	Start, End int
}

/*
Surround replaces the text of every span with wrap's result. Spans must be
ordered and must not overlap, which is what the date parser hands out.
*/
func Surround(s string, spans []Span, wrap func(ndx int, text string) string) string {
	rs := []rune(s)
	var out strings.Builder
	last := 0
	for ndx, span := range spans {
		out.WriteString(string(rs[last:span.Start]))
		out.WriteString(wrap(ndx, string(rs[span.Start:span.End])))
		last = span.End
	}
	out.WriteString(string(rs[last:]))
	return out.String()
}

// CutSpan removes span from s together with the spaces around it,
// leaving a single space where text remains on both sides.
func CutSpan(s string, span Span) string {
	rs := []rune(s)
	start := span.Start - 1
	for start >= 0 && rs[start] == ' ' {
		start--
	}
	end := span.End
	for end < len(rs) && rs[end] == ' ' {
		end++
	}
	switch {
	case span.Start == 0:
		return string(rs[end:])
	case span.End == len(rs):
		return string(rs[:start+1])
	}
	return string(rs[:start+1]) + " " + string(rs[end:])
}
