package fusion

import (
	"strconv"
	"strings"
)

// Score models one spreadsheet cell: a numeric value or an empty cell.
type Score struct {
	Value float64
	Valid bool
}

// SomeScore returns a present score.
func SomeScore(value float64) Score {
	return Score{Value: value, Valid: true}
}

// NoScore returns an empty-cell score.
func NoScore() Score {
	return Score{}
}

func (s Score) String() string {
	if !s.Valid {
		return ""
	}
	return strconv.FormatFloat(s.Value, 'f', -1, 64)
}

// Record is one source-side entry: the name as the source spelled it plus its
// row of scores. Arity is fixed within a source but varies across sources.
type Record struct {
	SourceName string
	Scores     []Score
}

// Match binds a roster name to the source record that resolved it and the
// tier the resolution was established at.
type Match struct {
	SourceName string
	Scores     []Score
	Tier       Tier
}

// Ambiguity reports a conflict found during one pass: the listed roster names
// and source records claimed each other in a way that has no unique
// assignment. None of the participants were committed.
type Ambiguity struct {
	Tier        Tier
	RosterNames []string
	SourceNames []string
}

func (a Ambiguity) String() string {
	return "tier " + a.Tier.String() +
		": roster [" + strings.Join(a.RosterNames, ", ") +
		"] contests records [" + strings.Join(a.SourceNames, ", ") + "]"
}
