package report_test

import (
	"strings"
	"testing"

	"scoremerge/internal/fusion"
	"scoremerge/internal/report"
	"scoremerge/internal/workbook"
)

func resolved(t *testing.T, roster []string, records map[string][]fusion.Score) *fusion.State {
	t.Helper()
	engine, err := fusion.NewEngine(roster, fusion.DefaultPolicy(), nil)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	state, err := engine.ResolveSource(records)
	if err != nil {
		t.Fatalf("ResolveSource failed: %v", err)
	}
	return state
}

func TestSummaryListsRosterMatchesAndOrphans(t *testing.T) {
	state := resolved(t, []string{"Jean Dupont", "Alice Bernard"}, map[string][]fusion.Score{
		"Dupont Jean": {fusion.SomeScore(12.5)},
		"Bob Charlie": {fusion.SomeScore(8.0)},
	})
	out := report.Summary(workbook.MergeResult{
		Roster:  []string{"Jean Dupont", "Alice Bernard"},
		Sources: []workbook.SourceResult{{Sheet: "Exam", Columns: 1, State: state}},
	}, report.Options{})

	for _, want := range []string{"Exam", "Jean Dupont", "Dupont Jean", "tokens", "12.5", "Alice Bernard", "unmatched", "Bob Charlie", "orphan"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestReviewEmptyWhenClean(t *testing.T) {
	state := resolved(t, []string{"Jean Dupont"}, map[string][]fusion.Score{
		"Jean Dupont": {fusion.SomeScore(15.0)},
	})
	out := report.Review(workbook.MergeResult{
		Roster:  []string{"Jean Dupont"},
		Sources: []workbook.SourceResult{{Sheet: "Exam", Columns: 1, State: state}},
	}, report.Options{})
	if out != "" {
		t.Fatalf("expected empty review report, got:\n%s", out)
	}
}

func TestReviewReportsWeakMatchesAndContests(t *testing.T) {
	state := resolved(t, []string{"Jean Paul Martin", "Marc Durand", "Marc Bernard"}, map[string][]fusion.Score{
		"Jean Martin": {fusion.SomeScore(14.0)},
		"Marc":        {fusion.SomeScore(10.0)},
	})
	out := report.Review(workbook.MergeResult{
		Roster:  []string{"Jean Paul Martin", "Marc Durand", "Marc Bernard"},
		Sources: []workbook.SourceResult{{Sheet: "Exam", Columns: 1, State: state}},
	}, report.Options{})

	for _, want := range []string{"weak match", "contested", "Marc"} {
		if !strings.Contains(out, want) {
			t.Fatalf("review missing %q:\n%s", want, out)
		}
	}
}
