package framework

import (
	"errors"
	"strconv"
	"testing"
)

func TestTokenize_MultipleDelimiters(t *testing.T) {
	tokens := tokenize("a, b,c d", DefaultDelimiters)

	want := []string{"a", "b", "c", "d"}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}
	for i, tok := range tokens {
		if tok.text != want[i] {
			t.Errorf("token %d: expected %q, got %q", i, want[i], tok.text)
		}
	}
}

func TestTokenize_DropsEmptyTokens(t *testing.T) {
	tokens := tokenize("  a   b  ", []string{" "})

	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	if tokens[0].start != 2 || tokens[0].end != 3 {
		t.Errorf("expected offsets [2,3), got [%d,%d)", tokens[0].start, tokens[0].end)
	}
}

func TestTokenize_Empty(t *testing.T) {
	if tokens := tokenize("", DefaultDelimiters); len(tokens) != 0 {
		t.Errorf("expected no tokens, got %d", len(tokens))
	}
}

func TestArgs_MessageKeepsInnerTextVerbatim(t *testing.T) {
	text := "say hello,  world  "
	tokens := tokenize(text, DefaultDelimiters)
	args := newArgs(text, tokens[1:])

	if args.Message() != "hello,  world" {
		t.Errorf("expected %q, got %q", "hello,  world", args.Message())
	}
	if args.Len() != 2 {
		t.Errorf("expected 2 args, got %d", args.Len())
	}
}

func TestArgs_SingleAndRest(t *testing.T) {
	text := "one two three four"
	args := newArgs(text, tokenize(text, []string{" "}))

	first, err := args.Single()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != "one" {
		t.Errorf("expected %q, got %q", "one", first)
	}

	if rest := args.Rest(); rest != "two three four" {
		t.Errorf("expected %q, got %q", "two three four", rest)
	}
	if args.Remaining() != 0 {
		t.Errorf("expected no remaining args, got %d", args.Remaining())
	}
	if _, err := args.Single(); !errors.Is(err, ErrArgsExhausted) {
		t.Errorf("expected ErrArgsExhausted, got %v", err)
	}
}

func TestArgs_SingleFloat(t *testing.T) {
	text := "2.5 x"
	args := newArgs(text, tokenize(text, []string{" "}))

	f, err := args.SingleFloat()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f != 2.5 {
		t.Errorf("expected 2.5, got %v", f)
	}

	_, err = args.SingleFloat()
	var argErr *ArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("expected ArgumentError, got %v", err)
	}
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Errorf("expected wrapped strconv.ErrSyntax, got %v", err)
	}
	if argErr.Position != 1 {
		t.Errorf("expected position 1, got %d", argErr.Position)
	}

	// A failed parse does not consume the argument.
	if cur, ok := args.Current(); !ok || cur != "x" {
		t.Errorf("expected current %q, got %q (ok=%v)", "x", cur, ok)
	}
}

func TestArgs_SingleInt(t *testing.T) {
	text := "7"
	args := newArgs(text, tokenize(text, []string{" "}))

	n, err := args.SingleInt()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 7 {
		t.Errorf("expected 7, got %d", n)
	}
	if _, err := args.SingleInt(); !errors.Is(err, ErrArgsExhausted) {
		t.Errorf("expected ErrArgsExhausted, got %v", err)
	}
}

func TestArgs_Empty(t *testing.T) {
	args := newArgs("", nil)

	if args.Message() != "" || args.Len() != 0 || args.Rest() != "" {
		t.Error("expected empty args")
	}
}

func TestTokenize_WhitespaceDelimiters(t *testing.T) {
	tokens := tokenize("a\tb\nc d", DefaultDelimiters)

	want := []string{"a", "b", "c", "d"}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}
	for i, tok := range tokens {
		if tok.text != want[i] {
			t.Errorf("token %d: expected %q, got %q", i, want[i], tok.text)
		}
	}
}
