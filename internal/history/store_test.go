package history_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"scoremerge/internal/history"
	"scoremerge/internal/testsupport"
)

func TestOpenAppliesMigrations(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenHistory(t, cfg)

	ctx := context.Background()
	run, err := store.RecordRun(ctx, history.Run{
		Workbook:      "/tmp/scores.xlsx",
		OutputPath:    "/tmp/scores_output.xlsx",
		Sources:       2,
		Matched:       24,
		MatchedExact:  20,
		MatchedTokens: 3,
		MatchedSubset: 1,
		Orphans:       1,
		NeedsReview:   true,
	})
	if err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}
	if run.ID == "" {
		t.Fatal("expected run ID to be assigned")
	}
	if run.StartedAt.IsZero() || run.FinishedAt.IsZero() {
		t.Fatal("expected timestamps to be assigned")
	}

	runs, err := store.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected one run, got %d", len(runs))
	}
	got := runs[0]
	if got.ID != run.ID || got.Workbook != "/tmp/scores.xlsx" || !got.NeedsReview {
		t.Fatalf("unexpected run: %#v", got)
	}
	if got.MatchedExact != 20 || got.MatchedTokens != 3 || got.MatchedSubset != 1 || got.MatchedOverlap != 0 {
		t.Fatalf("tier counters dropped: %#v", got)
	}
}

func TestListRunsOrdersNewestFirstAndLimits(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenHistory(t, cfg)

	ctx := context.Background()
	base := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := store.RecordRun(ctx, history.Run{
			Workbook:   fmt.Sprintf("/tmp/run-%d.xlsx", i),
			StartedAt:  base.Add(time.Duration(i) * time.Hour),
			FinishedAt: base.Add(time.Duration(i)*time.Hour + time.Minute),
		})
		if err != nil {
			t.Fatalf("RecordRun failed: %v", err)
		}
	}

	runs, err := store.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected limit 2, got %d", len(runs))
	}
	if runs[0].Workbook != "/tmp/run-2.xlsx" || runs[1].Workbook != "/tmp/run-1.xlsx" {
		t.Fatalf("unexpected order: %q, %q", runs[0].Workbook, runs[1].Workbook)
	}
}

func TestOpenRefusesSecondInstance(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	_ = testsupport.MustOpenHistory(t, cfg)

	if _, err := history.Open(cfg); err == nil {
		t.Fatal("expected second Open on the same database to fail while locked")
	}
}
