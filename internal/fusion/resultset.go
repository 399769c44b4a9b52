package fusion

import "fmt"

// resultSet is a write-once match map over a predeclared roster. Keys are
// fixed at construction; setting an unknown key or setting a key twice is a
// programming error in the caller, not a recoverable condition.
type resultSet struct {
	known   map[string]struct{}
	results map[string]Match
}

func newResultSet(roster []string) *resultSet {
	known := make(map[string]struct{}, len(roster))
	for _, name := range roster {
		known[name] = struct{}{}
	}
	return &resultSet{
		known:   known,
		results: make(map[string]Match, len(roster)),
	}
}

func (r *resultSet) set(name string, match Match) error {
	if _, ok := r.known[name]; !ok {
		return fmt.Errorf("assign match: unknown roster name %q", name)
	}
	if prev, ok := r.results[name]; ok {
		return fmt.Errorf("%w: %q already resolved at tier %s, refusing tier %s",
			ErrDuplicateAssignment, name, prev.Tier, match.Tier)
	}
	r.results[name] = match
	return nil
}

func (r *resultSet) get(name string) (Match, bool) {
	match, ok := r.results[name]
	return match, ok
}

func (r *resultSet) len() int {
	return len(r.results)
}
