package search

import (
	"strings"

	"github.com/gosimple/unidecode"
)

// Query is a parsed free-text lookup. When Home and Away are non-empty the
// query had a "X vs Y" shape and match lookups should pin each token group to
// one side; otherwise Tokens carries the flat token list.
type Query struct {
	Tokens []string
	Home   []string
	Away   []string
}

func (q Query) Versus() bool {
	return len(q.Home) > 0 && len(q.Away) > 0
}

func (q Query) Empty() bool {
	return len(q.Tokens) == 0 && !q.Versus()
}

// Parse normalizes a raw query and extracts its tokens. The "vs" separator
// ("vs", "v" or "-" as a standalone word) is detected before punctuation
// stripping, because stripping would otherwise dissolve the hyphen form.
func Parse(raw string) Query {
	folded := strings.ToLower(unidecode.Unidecode(raw))

	if home, away, ok := splitVersus(folded); ok {
		return Query{Home: home, Away: away}
	}

	return Query{Tokens: Tokenize(folded)}
}

// Normalize lowercases, folds diacritics and collapses every non-alphanumeric
// run into a single space. Catalog names pass through the same fold so token
// containment is accent- and case-insensitive.
func Normalize(s string) string {
	folded := strings.ToLower(unidecode.Unidecode(s))

	var b strings.Builder
	b.Grow(len(folded))
	lastSpace := true
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			b.WriteByte(' ')
			lastSpace = true
		}
	}

	return strings.TrimSpace(b.String())
}

// Tokenize splits a string into normalized whitespace tokens.
func Tokenize(s string) []string {
	fields := strings.Fields(Normalize(s))
	if len(fields) == 0 {
		return nil
	}

	return fields
}

// MatchesAll reports whether every token is a substring of the normalized
// name. An empty token list never matches.
func MatchesAll(normalizedName string, tokens []string) bool {
	if len(tokens) == 0 {
		return false
	}
	for _, token := range tokens {
		if !strings.Contains(normalizedName, token) {
			return false
		}
	}

	return true
}

func splitVersus(folded string) (home, away []string, ok bool) {
	words := strings.Fields(folded)
	for i, word := range words {
		if !isVersusSeparator(word) {
			continue
		}

		home = Tokenize(strings.Join(words[:i], " "))
		away = Tokenize(strings.Join(words[i+1:], " "))
		if len(home) == 0 || len(away) == 0 {
			return nil, nil, false
		}

		return home, away, true
	}

	return nil, nil, false
}

func isVersusSeparator(word string) bool {
	switch word {
	case "vs", "v", "-":
		return true
	default:
		return false
	}
}
