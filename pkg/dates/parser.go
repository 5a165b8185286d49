package dates

import "time"

const (
	// someday is a placeholder horizon, not a real date
	somedayMonths = 2
	// TODO: let config choose the weekday "next week" lands on
	nextWeekAnchor = time.Monday
)

// Expression is one run of date/time tokens found in a title.
// Start and End are rune offsets of the first and last contributing token.
// Time is nil when the run carried no am/pm time.
type Expression struct {
	Start int          `json:"start" yaml:"start"`
	End   int          `json:"end" yaml:"end"`
	Date  CalendarDate `json:"date" yaml:"date"`
	Time  *ClockTime   `json:"time,omitempty" yaml:"time,omitempty"`
}

type Parser struct {
	clock Clock
	flush FlushPolicy
}

type Option func(*Parser)

func WithClock(c Clock) Option {
	return func(p *Parser) { p.clock = c }
}

func WithFlushPolicy(f FlushPolicy) Option {
	return func(p *Parser) { p.flush = f }
}

func NewParser(opts ...Option) *Parser {
	p := &Parser{clock: SystemClock, flush: ObservedFlush}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse runs a default parser over text.
func Parse(text string) []Expression {
	return NewParser().Parse(text)
}

/*
Parse returns the date/time expressions of text ordered by Start.
Expressions never overlap.

	weekday       next date on that weekday, never today
	today         today
	tomorrow      today + 1 day
	someday       today + 2 months
	next week     next Monday
	next month    today + 1 month
	next year     today + 1 year
	<n> am|pm     n:00 or (n+12):00, today unless merged into a date

Any text token closes the expression being merged.
*/
func (p *Parser) Parse(text string) []Expression {
	// one reading of the clock per parse
	m := merger{clock: FixedClock(p.clock()), flush: p.flush, scanner: NewScanner(text)}
	return m.run()
}

type step int

const (
	stepAdvance step = iota
	// the current token was read as lookahead and must be looked at again
	stepReprocess
	// input ended during lookahead
	stepStop
)

type merger struct {
	clock   Clock
	flush   FlushPolicy
	scanner *Scanner

	tk   Token
	done bool

	state MergeState
	node  Expression
	nodes []Expression
}

func (m *merger) advance() {
	var ok bool
	m.tk, ok = m.scanner.Next()
	m.done = !ok
}

func (m *merger) run() []Expression {
	m.advance()
loop:
	for !m.done {
		st := stepAdvance
		switch m.tk.Kind {
		case TokenText:
			m.reset()
		case TokenKeyword:
			st = m.keyword()
		case TokenNumber:
			st = m.number()
		}
		switch st {
		case stepStop:
			break loop
		case stepAdvance:
			m.advance()
		}
	}
	m.reset()
	return m.nodes
}

func (m *merger) keyword() step {
	id := m.tk.Value
	if isWeekday(id) {
		m.setDate(NextWeekday(m.clock(), time.Weekday(id)), m.tk.Start)
		return stepAdvance
	}
	switch id {
	case KwToday:
		m.setDate(m.clock.Today(), m.tk.Start)
	case KwTomorrow:
		m.setDate(PlusDays(m.clock(), 1), m.tk.Start)
	case KwSomeday:
		m.setDate(PlusMonths(m.clock(), somedayMonths), m.tk.Start)
	case KwNext:
		return m.next()
	}
	return stepAdvance
}

func (m *merger) next() step {
	start := m.tk.Start
	m.advance()
	if m.done {
		return stepStop
	}
	if m.tk.Kind != TokenKeyword {
		return stepReprocess
	}
	switch m.tk.Value {
	case KwWeek:
		m.setDate(NextWeekday(m.clock(), nextWeekAnchor), start)
	case KwMonth:
		m.setDate(PlusMonths(m.clock(), 1), start)
	case KwYear:
		m.setDate(PlusYears(m.clock(), 1), start)
	default:
		return stepReprocess
	}
	return stepAdvance
}

func (m *merger) number() step {
	hour, start := m.tk.Value, m.tk.Start
	m.advance()
	if m.done {
		return stepStop
	}
	// an abandoned hour leaves the open expression alone
	if m.tk.Kind != TokenKeyword {
		return stepReprocess
	}
	switch m.tk.Value {
	case KwAm:
		m.setTime(NewTime(hour, 0, 0), start)
	case KwPm:
		m.setTime(NewTime(hour+12, 0, 0), start)
	}
	// any other keyword is swallowed along with the number
	return stepAdvance
}

func (m *merger) reset() {
	if m.state.Window == WindowClosed {
		return
	}
	m.nodes = append(m.nodes, m.node)
	m.node = Expression{}
	m.state = MergeState{}
}

func (m *merger) setDate(date CalendarDate, start int) {
	if m.state.Window != WindowClosed && m.flush(m.state, EventDate) {
		m.reset()
	}
	if m.state.Window == WindowClosed {
		m.node.Time = nil
		m.node.Start = start
		m.state.Window = WindowDate
	}
	m.node.End = m.tk.End
	m.node.Date = date
	m.state.DateSet = true
}

func (m *merger) setTime(t ClockTime, start int) {
	if m.state.Window != WindowClosed && m.flush(m.state, EventTime) {
		m.reset()
	}
	if m.state.Window == WindowClosed {
		m.node.Date = m.clock.Today()
		m.node.Start = start
		m.state.Window = WindowDateTime
	}
	m.node.End = m.tk.End
	m.node.Time = &t
	m.state.TimeSet = true
}
