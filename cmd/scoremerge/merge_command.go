package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"scoremerge/internal/fusion"
	"scoremerge/internal/history"
	"scoremerge/internal/logging"
	"scoremerge/internal/report"
	"scoremerge/internal/workbook"
)

func newMergeCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "merge <workbook.xlsx>",
		Short: "Merge every source sheet of a workbook against its roster sheet",
		Long: `Merge reads the workbook's first sheet as the canonical roster and every
later sheet as one source of (name, scores...) records, matches each source
against the roster, writes a Fusion sheet into <base>_output.xlsx, and prints
a per-source summary. Matches established by token containment or overlap are
flagged for manual review.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(ctx, cmd, args[0], dryRun, jsonOut)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Resolve and report without writing the output workbook")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit a machine-readable summary instead of tables")
	return cmd
}

type mergeSourceSummary struct {
	Sheet       string         `json:"sheet"`
	Matched     int            `json:"matched"`
	Unmatched   int            `json:"unmatched"`
	Orphans     int            `json:"orphans"`
	Ambiguities int            `json:"ambiguities"`
	Tiers       map[string]int `json:"tiers"`
	NeedsReview bool           `json:"needs_review"`
}

type mergeSummary struct {
	Workbook   string               `json:"workbook"`
	OutputPath string               `json:"output_path,omitempty"`
	Roster     int                  `json:"roster"`
	Sources    []mergeSourceSummary `json:"sources"`
}

func runMerge(ctx *commandContext, cmd *cobra.Command, path string, dryRun, jsonOut bool) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return err
	}
	started := time.Now().UTC()

	wb, err := workbook.Read(path)
	if err != nil {
		return err
	}
	logger.Info("workbook loaded",
		logging.String(logging.FieldWorkbook, path),
		logging.Int("roster", len(wb.Roster)),
		logging.Int("sources", len(wb.Sources)),
	)

	policy := fusion.Policy{
		AllowOverlap: cfg.Fusion.AllowOverlap,
		ReviewTier:   fusion.Tier(cfg.Fusion.ReviewTier),
	}
	engine, err := fusion.NewEngine(wb.Roster, policy, logger)
	if err != nil {
		return err
	}

	result := workbook.MergeResult{Roster: wb.Roster}
	for _, source := range wb.Sources {
		state, err := engine.ResolveSource(source.Records)
		if err != nil {
			return fmt.Errorf("resolve sheet %q: %w", source.Sheet, err)
		}
		result.Sources = append(result.Sources, workbook.SourceResult{
			Sheet:   source.Sheet,
			Columns: source.Columns,
			State:   state,
		})
	}

	outPath := ""
	if !dryRun {
		outPath, err = workbook.Write(path, result, workbook.WriteOptions{
			ColumnWidth: cfg.Report.SheetColumnWidth,
		})
		if err != nil {
			return err
		}
		logger.Info("fusion sheet written", logging.String("output", outPath))

		recordMergeRun(cmd, ctx, logger, result, path, outPath, started)
	}

	if jsonOut {
		return emitJSON(cmd.OutOrStdout(), buildMergeSummary(result, path, outPath))
	}

	colored := report.ColorEnabled(cfg.Report.Color, os.Stdout)
	opts := report.Options{Color: colored}
	fmt.Fprintln(cmd.OutOrStdout(), report.Summary(result, opts))
	if review := report.Review(result, opts); review != "" {
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), review)
	}
	if outPath != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "\nWrote %s\n", outPath)
	}
	return nil
}

func buildMergeSummary(result workbook.MergeResult, path, outPath string) mergeSummary {
	summary := mergeSummary{
		Workbook:   path,
		OutputPath: outPath,
		Roster:     len(result.Roster),
	}
	for _, source := range result.Sources {
		state := source.State
		tiers := make(map[string]int, 4)
		for tier, count := range state.TierCounts() {
			tiers[tier.String()] = count
		}
		summary.Sources = append(summary.Sources, mergeSourceSummary{
			Sheet:       source.Sheet,
			Matched:     state.MatchedCount(),
			Unmatched:   len(state.Unmatched()),
			Orphans:     len(state.Orphans()),
			Ambiguities: len(state.Ambiguities()),
			Tiers:       tiers,
			NeedsReview: state.NeedsReview(),
		})
	}
	return summary
}

// recordMergeRun journals the run. History being unavailable (for example a
// concurrent invocation holding the lock) downgrades to a warning; the merge
// output itself is already on disk.
func recordMergeRun(cmd *cobra.Command, ctx *commandContext, logger *slog.Logger, result workbook.MergeResult, path, outPath string, started time.Time) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return
	}
	store, err := history.Open(cfg)
	if err != nil {
		logger.Warn("run not journaled", logging.Error(err))
		return
	}
	defer store.Close()

	run := history.Run{
		Workbook:   path,
		OutputPath: outPath,
		Sources:    len(result.Sources),
		StartedAt:  started,
		FinishedAt: time.Now().UTC(),
	}
	for _, source := range result.Sources {
		state := source.State
		counts := state.TierCounts()
		run.Matched += state.MatchedCount()
		run.MatchedExact += counts[fusion.TierExact]
		run.MatchedTokens += counts[fusion.TierTokens]
		run.MatchedSubset += counts[fusion.TierSubset]
		run.MatchedOverlap += counts[fusion.TierOverlap]
		run.Unmatched += len(state.Unmatched())
		run.Orphans += len(state.Orphans())
		run.Ambiguities += len(state.Ambiguities())
		if state.NeedsReview() {
			run.NeedsReview = true
		}
	}
	if _, err := store.RecordRun(cmd.Context(), run); err != nil {
		logger.Warn("run not journaled", logging.Error(err))
	}
}
