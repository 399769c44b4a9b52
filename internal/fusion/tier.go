package fusion

import "fmt"

// Tier ranks how a match was established. Lower values are stronger evidence.
type Tier int

const (
	// TierExact is a verbatim key hit, no normalization involved.
	TierExact Tier = iota
	// TierTokens means both names normalize to identical token sets.
	TierTokens
	// TierSubset means one name's token set is contained in the other's.
	TierSubset
	// TierOverlap means the names merely share a token. Weakest evidence.
	TierOverlap
)

func (t Tier) String() string {
	switch t {
	case TierExact:
		return "exact"
	case TierTokens:
		return "tokens"
	case TierSubset:
		return "subset"
	case TierOverlap:
		return "overlap"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// NeedsReview reports whether a match at this tier should be flagged for
// manual verification in reports.
func (t Tier) NeedsReview() bool {
	return t >= TierSubset
}
