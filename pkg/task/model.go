package task

import (
	"github.com/TwirlySeal/duit/pkg/dates"
	"github.com/TwirlySeal/duit/pkg/utils"
	"github.com/oklog/ulid/v2"
)

// Title is a normalized task title together with the date/time
// expressions found in it.
type Title struct {
	Text  string
	Exprs []dates.Expression
}

func (t *Title) Spans() []utils.Span {
	spans := make([]utils.Span, len(t.Exprs))
	for ndx, expr := range t.Exprs {
		spans[ndx] = utils.Span{Start: expr.Start, End: expr.End}
	}
	return spans
}

// Last is the expression a submitted task takes its date from.
func (t *Title) Last() (dates.Expression, bool) {
	if len(t.Exprs) == 0 {
		return dates.Expression{}, false
	}
	return t.Exprs[len(t.Exprs)-1], true
}

// Match returns the part of the title an expression was read from.
func (t *Title) Match(expr dates.Expression) string {
	return utils.RuneSlice(t.Text, expr.Start, expr.End)
}

// Draft is the payload handed to storage when a task is submitted.
type Draft struct {
	ID    ulid.ULID           `json:"id" yaml:"id"`
	Title string              `json:"title" yaml:"title"`
	Date  *dates.CalendarDate `json:"date,omitempty" yaml:"date,omitempty"`
	Time  *dates.ClockTime    `json:"time,omitempty" yaml:"time,omitempty"`
}

// Due renders the draft's date and time in the wire format, or "" without a date.
func (d *Draft) Due() string {
	if d.Date == nil {
		return ""
	}
	return dates.EncodeDateTime(*d.Date, d.Time)
}

// Report is what `duit parse` prints for one title.
type Report struct {
	Title       string       `json:"title" yaml:"title"`
	Expressions []ExprReport `json:"expressions" yaml:"expressions"`
}

type ExprReport struct {
	dates.Expression `yaml:",inline"`
	Match            string `json:"match" yaml:"match"`
	Human            string `json:"human" yaml:"human"`
}
