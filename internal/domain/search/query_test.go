package search

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Atlético Madrid", "atletico madrid"},
		{"  SAINT-ÉTIENNE!! ", "saint etienne"},
		{"Bayern  München", "bayern munchen"},
		{"***", ""},
		{"1. FC Köln", "1 fc koln"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParse_PlainTokens(t *testing.T) {
	q := Parse("Real Madrid")
	if q.Versus() {
		t.Fatal("plain query parsed as versus")
	}
	if !reflect.DeepEqual(q.Tokens, []string{"real", "madrid"}) {
		t.Fatalf("unexpected tokens %v", q.Tokens)
	}
}

func TestParse_VersusForms(t *testing.T) {
	for _, raw := range []string{"Arsenal vs Chelsea", "arsenal v chelsea", "Arsenal - Chelsea"} {
		q := Parse(raw)
		if !q.Versus() {
			t.Fatalf("expected %q to parse as versus query", raw)
		}
		if !reflect.DeepEqual(q.Home, []string{"arsenal"}) || !reflect.DeepEqual(q.Away, []string{"chelsea"}) {
			t.Fatalf("unexpected split for %q: home=%v away=%v", raw, q.Home, q.Away)
		}
	}
}

func TestParse_VersusNeedsBothSides(t *testing.T) {
	q := Parse("vs Chelsea")
	if q.Versus() {
		t.Fatal("one-sided versus should fall back to plain tokens")
	}
	if !reflect.DeepEqual(q.Tokens, []string{"vs", "chelsea"}) {
		t.Fatalf("unexpected tokens %v", q.Tokens)
	}
}

func TestParse_HyphenInsideWordIsNotSeparator(t *testing.T) {
	q := Parse("saint-etienne")
	if q.Versus() {
		t.Fatal("intra-word hyphen treated as separator")
	}
}

func TestParse_Empty(t *testing.T) {
	q := Parse("  ¡¡¡  ")
	if !q.Empty() {
		t.Fatalf("expected empty query, got %+v", q)
	}
}

func TestMatchesAll(t *testing.T) {
	name := Normalize("Atlético Madrid")

	if !MatchesAll(name, []string{"atletico"}) {
		t.Fatal("accent-folded token should match")
	}
	if !MatchesAll(name, []string{"atl", "madr"}) {
		t.Fatal("substring tokens should AND together")
	}
	if MatchesAll(name, []string{"atletico", "sevilla"}) {
		t.Fatal("one non-matching token should fail the AND")
	}
	if MatchesAll(name, nil) {
		t.Fatal("empty token list must not match")
	}
}
