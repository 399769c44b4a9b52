// Package fusion reconciles per-source score records against a canonical
// student roster.
//
// The Engine is constructed once with the roster and invoked once per source
// sheet. Each call runs four passes of decreasing strictness: verbatim key
// lookup, equal token sets, token-set containment, and token-set overlap.
// Each pass sweeps every still-unresolved roster name against every remaining
// record before committing anything, so a strong match can never be shadowed
// by a weaker coincidental overlap found earlier in the same pass.
//
// When two roster names claim the same record (or one name claims two
// records) inside a single pass, neither side is committed; the conflict is
// reported on the State as an Ambiguity for manual review instead of letting
// sweep order pick a winner.
//
// Every call returns an independent State. A State accounts for the complete
// roster: each name is either matched at exactly one tier or unmatched, and
// each input record is either consumed by exactly one match or listed as an
// orphan. Assigning a second match to an already-resolved name is a bug in
// the sweep bookkeeping and fails the call with ErrDuplicateAssignment
// rather than silently overwriting.
package fusion
