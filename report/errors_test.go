package report

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKindCategory(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{ErrLexical, "lexical"},
		{ErrExpect, "syntax"},
		{ErrUnreachable, "syntax"},
		{ErrMultipleDefinition, "name"},
		{ErrNotAProcedure, "name"},
		{ErrExpectedScalar, "type"},
		{ErrTooManyArguments, "type"},
	}

	for _, test := range tests {
		if got := test.kind.Category(); got != test.want {
			t.Errorf("%s.Category() = %q, want %q", test.kind, got, test.want)
		}
	}
}

func TestRaise(t *testing.T) {
	cerr := Raise(SourcePos{Line: 3, Col: 7}, ErrUnknownIdentifier, "unknown identifier '%s'", "x")

	if cerr.Message != "unknown identifier 'x'" {
		t.Errorf("message = %q", cerr.Message)
	}
	if got := cerr.Error(); got != "3:7: unknown identifier 'x'" {
		t.Errorf("Error() = %q", got)
	}
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("analysis failed: %w", Raise(SourcePos{Line: 1, Col: 1}, ErrTooFewArguments, "too few"))

	if kind, ok := KindOf(wrapped); !ok || kind != ErrTooFewArguments {
		t.Errorf("KindOf(wrapped) = %s, %v", kind, ok)
	}

	if _, ok := KindOf(errors.New("plain")); ok {
		t.Error("KindOf reported a kind for a plain error")
	}
}

func TestParseLogLevel(t *testing.T) {
	for want, name := range LogLevelNames {
		if got, err := ParseLogLevel(name); err != nil || got != want {
			t.Errorf("ParseLogLevel(%q) = %d, %v", name, got, err)
		}
	}

	if _, err := ParseLogLevel("loud"); err == nil {
		t.Error("ParseLogLevel accepted an unknown level")
	}
}
