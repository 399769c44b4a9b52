package fusion

import "sort"

// State is the read-only outcome of resolving one source. It accounts for the
// full roster, not just the names this source resolved.
type State struct {
	roster      []string
	policy      Policy
	results     *resultSet
	orphans     []Record
	ambiguities []Ambiguity
}

func newState(roster []string, policy Policy, results *resultSet, remaining map[string][]Score, ambiguities []Ambiguity) *State {
	orphans := make([]Record, 0, len(remaining))
	for name, scores := range remaining {
		orphans = append(orphans, Record{SourceName: name, Scores: scores})
	}
	sort.Slice(orphans, func(i, j int) bool { return orphans[i].SourceName < orphans[j].SourceName })

	return &State{
		roster:      roster,
		policy:      policy,
		results:     results,
		orphans:     orphans,
		ambiguities: ambiguities,
	}
}

// Roster returns the canonical roster in construction order.
func (s *State) Roster() []string {
	return append([]string(nil), s.roster...)
}

// Lookup returns the match for a roster name, or false when the name stayed
// unmatched for this source.
func (s *State) Lookup(name string) (Match, bool) {
	return s.results.get(name)
}

// Unmatched returns the roster names this source did not resolve, in roster
// order.
func (s *State) Unmatched() []string {
	var names []string
	for _, name := range s.roster {
		if _, ok := s.results.get(name); !ok {
			names = append(names, name)
		}
	}
	return names
}

// Orphans returns the source records no roster name consumed, sorted by
// source name.
func (s *State) Orphans() []Record {
	return append([]Record(nil), s.orphans...)
}

// Ambiguities returns the contested match groups found during resolution.
func (s *State) Ambiguities() []Ambiguity {
	return append([]Ambiguity(nil), s.ambiguities...)
}

// MatchedCount returns how many roster names this source resolved.
func (s *State) MatchedCount() int {
	return s.results.len()
}

// TierCounts returns the number of matches established at each tier.
func (s *State) TierCounts() map[Tier]int {
	counts := make(map[Tier]int, 4)
	for _, name := range s.roster {
		if match, ok := s.results.get(name); ok {
			counts[match.Tier]++
		}
	}
	return counts
}

// NeedsReview reports whether anything in this source deserves manual
// attention: a match at or above the review tier, an orphan, an unmatched
// roster name, or a contested group.
func (s *State) NeedsReview() bool {
	if len(s.orphans) > 0 || len(s.ambiguities) > 0 {
		return true
	}
	if s.results.len() < len(s.roster) {
		return true
	}
	for _, name := range s.roster {
		if match, ok := s.results.get(name); ok && s.policy.NeedsReview(match.Tier) {
			return true
		}
	}
	return false
}

// Policy returns the policy the source was resolved under.
func (s *State) Policy() Policy {
	return s.policy
}
