package framework

import (
	"strconv"
	"strings"
)

// token is a slice of the message text with its byte offsets.
type token struct {
	text       string
	start, end int
}

// tokenize splits s on any of the literal delimiters, preferring the longest
// delimiter at each position. Empty tokens are dropped.
func tokenize(s string, delimiters []string) []token {
	var tokens []token
	start := 0
	for i := 0; i < len(s); {
		n := matchDelimiter(s[i:], delimiters)
		if n == 0 {
			i++
			continue
		}
		if i > start {
			tokens = append(tokens, token{text: s[start:i], start: start, end: i})
		}
		i += n
		start = i
	}
	if start < len(s) {
		tokens = append(tokens, token{text: s[start:], start: start, end: len(s)})
	}
	return tokens
}

func matchDelimiter(s string, delimiters []string) int {
	best := 0
	for _, d := range delimiters {
		if len(d) > best && strings.HasPrefix(s, d) {
			best = len(d)
		}
	}
	return best
}

// Args is a cursor over the arguments that follow a resolved command.
type Args struct {
	raw    string
	tokens []token
	pos    int
}

// newArgs builds Args from the tokens of text, keeping the span between the
// first and last token verbatim.
func newArgs(text string, tokens []token) *Args {
	if len(tokens) == 0 {
		return &Args{}
	}
	offset := tokens[0].start
	raw := text[offset:tokens[len(tokens)-1].end]
	shifted := make([]token, len(tokens))
	for i, t := range tokens {
		shifted[i] = token{text: t.text, start: t.start - offset, end: t.end - offset}
	}
	return &Args{raw: raw, tokens: shifted}
}

// Message returns the full argument text regardless of the cursor.
func (a *Args) Message() string {
	return a.raw
}

// Len returns the total number of arguments.
func (a *Args) Len() int {
	return len(a.tokens)
}

// Remaining returns the number of arguments not yet consumed.
func (a *Args) Remaining() int {
	return len(a.tokens) - a.pos
}

// Current returns the next argument without consuming it.
func (a *Args) Current() (string, bool) {
	if a.pos >= len(a.tokens) {
		return "", false
	}
	return a.tokens[a.pos].text, true
}

// Single consumes and returns the next argument.
func (a *Args) Single() (string, error) {
	s, ok := a.Current()
	if !ok {
		return "", ErrArgsExhausted
	}
	a.pos++
	return s, nil
}

// SingleFloat consumes the next argument as a float64.
// The cursor does not advance when parsing fails.
func (a *Args) SingleFloat() (float64, error) {
	s, ok := a.Current()
	if !ok {
		return 0, ErrArgsExhausted
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ArgumentError{Position: a.pos, Value: s, Err: err}
	}
	a.pos++
	return f, nil
}

// SingleInt consumes the next argument as an int64.
func (a *Args) SingleInt() (int64, error) {
	s, ok := a.Current()
	if !ok {
		return 0, ErrArgsExhausted
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &ArgumentError{Position: a.pos, Value: s, Err: err}
	}
	a.pos++
	return n, nil
}

// Rest returns the unconsumed text verbatim and exhausts the cursor.
func (a *Args) Rest() string {
	if a.pos >= len(a.tokens) {
		return ""
	}
	rest := a.raw[a.tokens[a.pos].start:]
	a.pos = len(a.tokens)
	return rest
}
