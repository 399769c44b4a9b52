// Package nameset normalizes free-form student names into comparable token
// sets and provides the comparison predicates the fusion engine matches with.
//
// Normalization casefolds the whole string (full Unicode folding, not ASCII
// lowercasing), folds a fixed table of accented characters to their bare
// form, turns hyphens and underscores into spaces, and splits on whitespace.
// The resulting TokenSet is order-independent, so "Dupont Jean" and
// "Jean Dupont" normalize identically.
//
// The predicates come in decreasing strictness: ExactEquals (raw string
// identity), TokensEqual (identical token sets), TokensContain (one set
// contained in the other), and TokensIntersect (any shared token). An empty
// TokenSet never contains or intersects anything; without that rule a blank
// roster row would match every record.
package nameset
