package task

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/TwirlySeal/duit/pkg/dates"
	"github.com/TwirlySeal/duit/pkg/logging"
	"github.com/TwirlySeal/duit/pkg/terrors"
	"github.com/TwirlySeal/duit/pkg/utils"
	"github.com/oklog/ulid/v2"
	"golang.org/x/text/unicode/norm"
)

// Editor turns typed titles into highlighted text and task drafts.
type Editor struct {
	clock  dates.Clock
	parser *dates.Parser
}

func NewEditor(clock dates.Clock, policy dates.FlushPolicy) *Editor {
	return &Editor{
		clock:  clock,
		parser: dates.NewParser(dates.WithClock(clock), dates.WithFlushPolicy(policy)),
	}
}

func (e *Editor) Parse(line string) (*Title, error) {
	if err := validateEmptyText(line); err != nil {
		return nil, err
	}
	// offsets refer to the composed form, so accents typed as
	// combining marks count as a single character
	line = norm.NFC.String(line)
	title := &Title{Text: line, Exprs: e.parser.Parse(line)}
	logging.Logger.Debugw("parsed title", "title", line, "expressions", len(title.Exprs))
	return title, nil
}

/*
Draft builds the payload for storage. Only the last expression is used: it
is cut out of the title along with the spaces around it, and its date and
time become the draft's. Without any expression the title is kept as typed.
*/
func (e *Editor) Draft(line string) (*Draft, error) {
	title, err := e.Parse(line)
	if err != nil {
		return nil, err
	}
	id, err := ulid.New(ulid.Timestamp(e.clock()), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("draft id: %w", err)
	}
	draft := &Draft{ID: id, Title: strings.TrimSpace(title.Text)}
	expr, ok := title.Last()
	if !ok {
		return draft, nil
	}
	draft.Title = strings.TrimSpace(utils.CutSpan(title.Text, utils.Span{Start: expr.Start, End: expr.End}))
	draft.Date = utils.MkPtr(expr.Date)
	draft.Time = expr.Time
	if draft.Title == "" {
		return nil, fmt.Errorf("%w: nothing but a date in '%s'", terrors.ErrEmptyText, line)
	}
	return draft, nil
}

// Report describes every expression of a title for display.
func (e *Editor) Report(title *Title) *Report {
	rep := &Report{Title: title.Text, Expressions: make([]ExprReport, 0, len(title.Exprs))}
	for _, expr := range title.Exprs {
		rep.Expressions = append(rep.Expressions, ExprReport{
			Expression: expr,
			Match:      title.Match(expr),
			Human:      dates.FormatDateTime(e.clock, expr.Date, expr.Time),
		})
	}
	return rep
}

// Describe decodes a stored wire string and formats it for display.
func (e *Editor) Describe(wire string) (string, error) {
	date, t, err := dates.DecodeDateTime(wire)
	if err != nil {
		logging.Logger.Debugw("decoded malformed wire string", "wire", wire, "err", err)
		return "", fmt.Errorf("%w: '%s': %w", terrors.ErrParse, wire, err)
	}
	return dates.FormatDateTime(e.clock, date, t), nil
}
