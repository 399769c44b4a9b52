package fusion

import "errors"

var (
	// ErrDuplicateRosterEntry is returned by NewEngine when the roster holds
	// the same raw string twice. The roster must be deduplicated upstream.
	ErrDuplicateRosterEntry = errors.New("duplicate roster entry")

	// ErrDuplicateAssignment is returned by ResolveSource when the sweep
	// bookkeeping tries to resolve a roster name that already carries a
	// match. This previously surfaced as silent last-writer-wins ambiguity,
	// so it aborts the source instead of overwriting.
	ErrDuplicateAssignment = errors.New("duplicate assignment")
)
