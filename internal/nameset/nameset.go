package nameset

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// accentFolder maps the accented characters seen in roster exports to their
// unaccented form, and the separators `-` and `_` to a space so hyphenated
// names split into individual tokens.
var accentFolder = strings.NewReplacer(
	"é", "e",
	"è", "e",
	"ê", "e",
	"ë", "e",
	"à", "a",
	"â", "a",
	"ô", "o",
	"ö", "o",
	"ù", "u",
	"û", "u",
	"ü", "u",
	"î", "i",
	"ï", "i",
	"ç", "c",
	"ñ", "n",
	"-", " ",
	"_", " ",
)

// TokenSet is the normalized form of a name: the set of its lowercase,
// accent-folded tokens. Names are only ever compared through their TokenSets,
// never as raw strings.
type TokenSet map[string]struct{}

// Normalize converts a free-form name into its TokenSet. The function is pure:
// repeated calls on the same input always produce the same set.
func Normalize(name string) TokenSet {
	// cases.Caser carries internal state, so a fresh one per call keeps
	// Normalize safe under concurrent use.
	folded := accentFolder.Replace(cases.Fold().String(name))
	set := make(TokenSet)
	for _, token := range strings.Fields(folded) {
		set[token] = struct{}{}
	}
	return set
}

// Len returns the number of distinct tokens.
func (s TokenSet) Len() int { return len(s) }

// Empty reports whether the set has no tokens (blank or whitespace-only name).
func (s TokenSet) Empty() bool { return len(s) == 0 }

// Equal reports whether both sets hold exactly the same tokens.
func (s TokenSet) Equal(other TokenSet) bool {
	if len(s) != len(other) {
		return false
	}
	for token := range s {
		if _, ok := other[token]; !ok {
			return false
		}
	}
	return true
}

// SubsetOf reports whether every token of s appears in other. An empty set is
// never considered a subset; see the package documentation.
func (s TokenSet) SubsetOf(other TokenSet) bool {
	if len(s) == 0 || len(s) > len(other) {
		return false
	}
	for token := range s {
		if _, ok := other[token]; !ok {
			return false
		}
	}
	return true
}

// Intersects reports whether the sets share at least one token.
func (s TokenSet) Intersects(other TokenSet) bool {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	for token := range small {
		if _, ok := large[token]; ok {
			return true
		}
	}
	return false
}

// String renders the tokens sorted and space-joined. Intended for logs and
// test failure messages only; comparisons always go through the set methods.
func (s TokenSet) String() string {
	tokens := make([]string, 0, len(s))
	for token := range s {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}
