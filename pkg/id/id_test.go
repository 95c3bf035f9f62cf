package id

import (
	"strings"
	"testing"
)

func TestNewStringShape(t *testing.T) {
	s, err := NewString()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if len(s) != 32 {
		t.Fatalf("want 32 hex digits, got %d: %q", len(s), s)
	}
	if strings.ToLower(s) != s {
		t.Fatalf("expected lowercase hex: %q", s)
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdef", r) {
			t.Fatalf("non-hex rune %q in %q", r, s)
		}
	}
}

func TestNewUnique(t *testing.T) {
	seen := map[string]struct{}{}
	for i := 0; i < 1000; i++ {
		s, err := NewString()
		if err != nil {
			t.Fatalf("new: %v", err)
		}
		if _, dup := seen[s]; dup {
			t.Fatalf("duplicate id %q", s)
		}
		seen[s] = struct{}{}
	}
}

func TestParseRoundTrip(t *testing.T) {
	i, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	got, err := Parse(i.String())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != i {
		t.Fatalf("round trip mismatch: %v != %v", got, i)
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	if _, err := Parse("abc"); err == nil {
		t.Fatalf("expected error for short input")
	}
	if _, err := Parse(strings.Repeat("g", 32)); err == nil {
		t.Fatalf("expected error for non-hex input")
	}
}
