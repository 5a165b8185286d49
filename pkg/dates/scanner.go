package dates

import (
	"fmt"
	"strconv"
)

type TokenKind int

const (
	TokenText TokenKind = iota
	TokenKeyword
	TokenNumber
)

func (k TokenKind) String() string {
	switch k {
	case TokenText:
		return "text"
	case TokenKeyword:
		return "keyword"
	case TokenNumber:
		return "number"
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is a classified run of the input. Start and End are rune offsets,
// End exclusive. Value holds the keyword id or the number; it is zero for text.
type Token struct {
	Kind  TokenKind `json:"kind" yaml:"kind"`
	Value int       `json:"value,omitempty" yaml:"value,omitempty"`
	Start int       `json:"start" yaml:"start"`
	End   int       `json:"end" yaml:"end"`
}

/*
Scanner walks a string once, front to back:
  - [A-Za-z] starts a word that runs up to the next ' ' (exclusive) or the end.
    The word becomes a keyword token if it is in the table, a text token otherwise.
  - [1-9] starts a number that runs while the characters stay in [1-9].
    '0' is not part of the class, so "10" scans as 1 followed by a skipped '0'.
  - anything else is skipped.

A Scanner cannot be rewound; scan the string again for a fresh stream.
*/
type Scanner struct {
	text []rune
	pos  int
}

func NewScanner(text string) *Scanner {
	return &Scanner{text: []rune(text)}
}

// Next returns the next token, or false once the input is exhausted.
func (s *Scanner) Next() (Token, bool) {
	n := len(s.text)
	for ; s.pos < n; s.pos++ {
		start := s.pos
		r := s.text[start]
		switch {
		case isLetter(r):
			for s.pos < n && s.text[s.pos] != ' ' {
				s.pos++
			}
			end := s.pos
			// the separating space is never part of a token
			s.pos++
			if id, ok := LookupKeyword(string(s.text[start:end])); ok {
				return Token{Kind: TokenKeyword, Value: id, Start: start, End: end}, true
			}
			return Token{Kind: TokenText, Start: start, End: end}, true
		case isDigit(r):
			for s.pos < n && isDigit(s.text[s.pos]) {
				s.pos++
			}
			// the terminating character is examined again on the next call
			return Token{Kind: TokenNumber, Value: atoiSaturated(string(s.text[start:s.pos])), Start: start, End: s.pos}, true
		}
	}
	return Token{}, false
}

// Tokens drains a fresh scanner over text.
func Tokens(text string) []Token {
	var tokens []Token
	s := NewScanner(text)
	for tk, ok := s.Next(); ok; tk, ok = s.Next() {
		tokens = append(tokens, tk)
	}
	return tokens
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '1' && r <= '9'
}

// atoiSaturated only sees [1-9] runs, so the only failure is overflow,
// where ParseInt already returns the maximum value.
func atoiSaturated(digits string) int {
	val, _ := strconv.ParseInt(digits, 10, strconv.IntSize)
	return int(val)
}
