package fusion

// Policy centralizes the knobs governing a resolution run.
type Policy struct {
	// AllowOverlap enables the weakest pass, where a single shared token is
	// enough to propose a match. Disable for rosters with many siblings.
	AllowOverlap bool
	// ReviewTier is the tier at and above which matches are flagged for
	// manual review in reports.
	ReviewTier Tier
}

// DefaultPolicy mirrors the historical behavior: all four passes run and
// containment or weaker gets flagged.
func DefaultPolicy() Policy {
	return Policy{
		AllowOverlap: true,
		ReviewTier:   TierSubset,
	}
}

func (p Policy) normalized() Policy {
	if p.ReviewTier < TierTokens || p.ReviewTier > TierOverlap {
		p.ReviewTier = TierSubset
	}
	return p
}

// NeedsReview reports whether a match at the given tier crosses the policy's
// review threshold.
func (p Policy) NeedsReview(t Tier) bool {
	return t >= p.ReviewTier
}
