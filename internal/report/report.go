package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"scoremerge/internal/fusion"
	"scoremerge/internal/workbook"
)

// Options control report rendering.
type Options struct {
	Color bool
}

// ColorEnabled resolves a color mode (auto, always, never) against the given
// output stream.
func ColorEnabled(mode string, out *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if out == nil {
			return false
		}
		return isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())
	}
}

// Summary renders one table per source covering the full roster.
func Summary(result workbook.MergeResult, opts Options) string {
	var sections []string
	for _, source := range result.Sources {
		sections = append(sections, sourceTable(source, opts))
	}
	return strings.Join(sections, "\n\n")
}

func sourceTable(source workbook.SourceResult, opts Options) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(source.Sheet)
	tw.AppendHeader(table.Row{"Student", "Matched As", "Tier", "Scores"})

	state := source.State
	for _, name := range state.Roster() {
		match, ok := state.Lookup(name)
		if !ok {
			tw.AppendRow(redRow(opts, name, "", "unmatched", ""))
			continue
		}
		row := table.Row{name, match.SourceName, match.Tier.String(), formatScores(match.Scores)}
		if state.Policy().NeedsReview(match.Tier) {
			row = redRow(opts, name, match.SourceName, match.Tier.String(), formatScores(match.Scores))
		}
		tw.AppendRow(row)
	}
	for _, orphan := range state.Orphans() {
		tw.AppendRow(redRow(opts, "", orphan.SourceName, "orphan", formatScores(orphan.Scores)))
	}
	return tw.Render()
}

// Review renders only the entries that need a human: weak matches, contested
// groups, orphans, and unmatched roster names. Returns "" when everything
// resolved cleanly.
func Review(result workbook.MergeResult, opts Options) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle("Manual review")
	tw.AppendHeader(table.Row{"Source", "Kind", "Detail"})

	rows := 0
	for _, source := range result.Sources {
		state := source.State
		for _, name := range state.Roster() {
			match, ok := state.Lookup(name)
			if !ok {
				continue
			}
			if state.Policy().NeedsReview(match.Tier) {
				detail := fmt.Sprintf("%s matched %q at tier %s", name, match.SourceName, match.Tier)
				tw.AppendRow(redRow(opts, source.Sheet, "weak match", detail))
				rows++
			}
		}
		for _, amb := range state.Ambiguities() {
			tw.AppendRow(redRow(opts, source.Sheet, "contested", amb.String()))
			rows++
		}
		for _, orphan := range state.Orphans() {
			detail := orphan.SourceName
			if scores := formatScores(orphan.Scores); scores != "" {
				detail += " (" + scores + ")"
			}
			tw.AppendRow(redRow(opts, source.Sheet, "orphan", detail))
			rows++
		}
		for _, name := range state.Unmatched() {
			tw.AppendRow(redRow(opts, source.Sheet, "unmatched", name))
			rows++
		}
	}
	if rows == 0 {
		return ""
	}
	return tw.Render()
}

func redRow(opts Options, values ...any) table.Row {
	row := make(table.Row, len(values))
	for i, value := range values {
		if opts.Color {
			row[i] = text.FgRed.Sprint(value)
		} else {
			row[i] = value
		}
	}
	return row
}

func formatScores(scores []fusion.Score) string {
	parts := make([]string, 0, len(scores))
	for _, score := range scores {
		if score.Valid {
			parts = append(parts, score.String())
		} else {
			parts = append(parts, "-")
		}
	}
	return strings.Join(parts, " ")
}
