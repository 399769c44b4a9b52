package fusion_test

import (
	"testing"

	"scoremerge/internal/fusion"
)

func TestTierStrings(t *testing.T) {
	cases := map[fusion.Tier]string{
		fusion.TierExact:   "exact",
		fusion.TierTokens:  "tokens",
		fusion.TierSubset:  "subset",
		fusion.TierOverlap: "overlap",
	}
	for tier, want := range cases {
		if got := tier.String(); got != want {
			t.Fatalf("Tier(%d).String() = %q, want %q", int(tier), got, want)
		}
	}
}

func TestTierReviewThreshold(t *testing.T) {
	if fusion.TierExact.NeedsReview() || fusion.TierTokens.NeedsReview() {
		t.Fatal("strong tiers must not need review")
	}
	if !fusion.TierSubset.NeedsReview() || !fusion.TierOverlap.NeedsReview() {
		t.Fatal("weak tiers must need review")
	}
}

func TestPolicyNormalization(t *testing.T) {
	policy := fusion.Policy{ReviewTier: fusion.Tier(7)}
	engine, err := fusion.NewEngine([]string{"Jean Dupont"}, policy, nil)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	if engine.Policy().ReviewTier != fusion.TierSubset {
		t.Fatalf("out-of-range review tier must fall back to subset, got %s", engine.Policy().ReviewTier)
	}
}

func TestScoreString(t *testing.T) {
	if got := fusion.SomeScore(12.5).String(); got != "12.5" {
		t.Fatalf("unexpected score rendering %q", got)
	}
	if got := fusion.NoScore().String(); got != "" {
		t.Fatalf("empty cell must render empty, got %q", got)
	}
}
