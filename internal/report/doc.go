// Package report renders fusion results for the terminal.
//
// Summary produces one table per source listing every roster name with its
// matched source spelling, tier, and scores. Review narrows that down to what
// deserves manual attention: matches at or above the review tier, contested
// groups, orphans, and unmatched roster names. Red highlighting follows the
// configured color mode, falling back to TTY detection on auto.
package report
