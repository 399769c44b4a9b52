package fusion

import (
	"fmt"
	"log/slog"
	"sort"

	"scoremerge/internal/logging"
	"scoremerge/internal/nameset"
)

type predicate func(a, b string) bool

// Engine matches source records against a fixed canonical roster. Construct
// one per merge run; the roster is immutable afterwards. The engine has no
// internal synchronization, so callers running sources in parallel must use
// independent engines or serialize ResolveSource calls.
type Engine struct {
	roster []string
	policy Policy
	logger *slog.Logger
}

// NewEngine validates the roster and builds an engine. The roster is compared
// by raw string, case-sensitive; a repeated entry fails with
// ErrDuplicateRosterEntry because downstream bookkeeping assumes names are
// unique keys.
func NewEngine(roster []string, policy Policy, logger *slog.Logger) (*Engine, error) {
	seen := make(map[string]struct{}, len(roster))
	for _, name := range roster {
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRosterEntry, name)
		}
		seen[name] = struct{}{}
	}
	return &Engine{
		roster: append([]string(nil), roster...),
		policy: policy.normalized(),
		logger: logging.NewComponentLogger(logger, "fusion"),
	}, nil
}

// Roster returns a copy of the canonical roster in construction order.
func (e *Engine) Roster() []string {
	return append([]string(nil), e.roster...)
}

// Policy returns the normalized policy the engine runs under.
func (e *Engine) Policy() Policy {
	return e.policy
}

// ResolveSource assigns the given records to roster names and returns the
// resulting State. The input map is not mutated. Failed resolution of one
// source leaves previously returned States untouched.
func (e *Engine) ResolveSource(records map[string][]Score) (*State, error) {
	remaining := make(map[string][]Score, len(records))
	for name, scores := range records {
		remaining[name] = append([]Score(nil), scores...)
	}
	unresolved := make(map[string]struct{}, len(e.roster))
	for _, name := range e.roster {
		unresolved[name] = struct{}{}
	}

	results := newResultSet(e.roster)

	// Verbatim pass first: clean data short-circuits the normalization
	// machinery entirely.
	for _, name := range e.roster {
		scores, ok := remaining[name]
		if !ok {
			continue
		}
		if err := results.set(name, Match{SourceName: name, Scores: scores, Tier: TierExact}); err != nil {
			return nil, err
		}
		delete(unresolved, name)
		delete(remaining, name)
	}
	e.logPass(TierExact, results.len(), len(unresolved), len(remaining), 0)

	passes := []struct {
		tier Tier
		pred predicate
	}{
		{TierTokens, nameset.TokensEqual},
		{TierSubset, nameset.TokensContain},
		{TierOverlap, nameset.TokensIntersect},
	}

	var ambiguities []Ambiguity
	for _, pass := range passes {
		if pass.tier == TierOverlap && !e.policy.AllowOverlap {
			break
		}
		found, err := e.runPass(pass.tier, pass.pred, unresolved, remaining, results)
		if err != nil {
			return nil, err
		}
		for _, amb := range found {
			if !containsAmbiguity(ambiguities, amb) {
				ambiguities = append(ambiguities, amb)
			}
		}
	}

	return newState(e.roster, e.policy, results, remaining, ambiguities), nil
}

// runPass sweeps every unresolved name against every remaining record with
// the tier's predicate, then commits. Candidates are only applied after the
// sweep completes, so two names cannot race for one record mid-pass; when
// they do collide, the collision surfaces as an Ambiguity and neither side
// is consumed.
func (e *Engine) runPass(tier Tier, match predicate, unresolved map[string]struct{}, remaining map[string][]Score, results *resultSet) ([]Ambiguity, error) {
	names := sortedSetKeys(unresolved)
	candidates := sortedRecordKeys(remaining)

	byName := make(map[string][]string)
	byRecord := make(map[string][]string)
	for _, name := range names {
		for _, candidate := range candidates {
			if match(name, candidate) {
				byName[name] = append(byName[name], candidate)
				byRecord[candidate] = append(byRecord[candidate], name)
			}
		}
	}

	ambiguities := collectAmbiguities(tier, byName, byRecord)

	committed := 0
	for _, name := range names {
		recs := byName[name]
		if len(recs) != 1 {
			continue
		}
		candidate := recs[0]
		if len(byRecord[candidate]) != 1 {
			continue
		}
		if err := results.set(name, Match{SourceName: candidate, Scores: remaining[candidate], Tier: tier}); err != nil {
			return nil, err
		}
		delete(unresolved, name)
		delete(remaining, candidate)
		committed++
	}

	e.logPass(tier, committed, len(unresolved), len(remaining), len(ambiguities))
	for _, amb := range ambiguities {
		e.logger.Warn("fusion pass found contested match",
			logging.String(logging.FieldEventType, "decision_summary"),
			logging.String(logging.FieldDecisionType, "fusion_ambiguity"),
			logging.String("tier", amb.Tier.String()),
			logging.Any("roster_names", amb.RosterNames),
			logging.Any("source_names", amb.SourceNames),
		)
	}
	return ambiguities, nil
}

// collectAmbiguities groups contested names and records into connected
// components of the candidate graph. Each component becomes one Ambiguity;
// a pair is contested when either endpoint has more than one candidate.
func collectAmbiguities(tier Tier, byName, byRecord map[string][]string) []Ambiguity {
	contested := make(map[string]struct{})
	for name, recs := range byName {
		if len(recs) > 1 {
			contested["n:"+name] = struct{}{}
		}
	}
	for rec, names := range byRecord {
		if len(names) > 1 {
			contested["r:"+rec] = struct{}{}
		}
	}
	if len(contested) == 0 {
		return nil
	}

	seeds := make([]string, 0, len(contested))
	for key := range contested {
		seeds = append(seeds, key)
	}
	sort.Strings(seeds)

	visited := make(map[string]struct{})
	var ambiguities []Ambiguity
	for _, seed := range seeds {
		if _, ok := visited[seed]; ok {
			continue
		}
		var nameList, recList []string
		queue := []string{seed}
		for len(queue) > 0 {
			key := queue[0]
			queue = queue[1:]
			if _, ok := visited[key]; ok {
				continue
			}
			visited[key] = struct{}{}
			value := key[2:]
			if key[0] == 'n' {
				nameList = append(nameList, value)
				for _, rec := range byName[value] {
					queue = append(queue, "r:"+rec)
				}
			} else {
				recList = append(recList, value)
				for _, name := range byRecord[value] {
					queue = append(queue, "n:"+name)
				}
			}
		}
		sort.Strings(nameList)
		sort.Strings(recList)
		ambiguities = append(ambiguities, Ambiguity{
			Tier:        tier,
			RosterNames: nameList,
			SourceNames: recList,
		})
	}
	return ambiguities
}

// containsAmbiguity matches on shared participants; a conflict already
// reported at a stronger tier is not repeated when a weaker predicate
// rediscovers it, even when the component has grown more members since.
func containsAmbiguity(list []Ambiguity, amb Ambiguity) bool {
	for _, existing := range list {
		if intersectsSorted(existing.RosterNames, amb.RosterNames) || intersectsSorted(existing.SourceNames, amb.SourceNames) {
			return true
		}
	}
	return false
}

// intersectsSorted reports whether two sorted string slices share an element.
func intersectsSorted(a, b []string) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			return true
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return false
}

func (e *Engine) logPass(tier Tier, committed, unresolved, remaining, contested int) {
	e.logger.Debug("fusion pass complete",
		logging.String("tier", tier.String()),
		logging.Int("committed", committed),
		logging.Int("unresolved_names", unresolved),
		logging.Int("remaining_records", remaining),
		logging.Int("contested", contested),
	)
}

func sortedSetKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func sortedRecordKeys(records map[string][]Score) []string {
	keys := make([]string, 0, len(records))
	for key := range records {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
