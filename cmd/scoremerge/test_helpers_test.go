package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	logDir     string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	logDir := filepath.Join(base, "logs")
	configPath := filepath.Join(base, "config.toml")

	content := fmt.Sprintf(
		"[paths]\nlog_dir = %q\n\n[logging]\nformat = \"console\"\nlevel = \"warn\"\n\n[report]\ncolor = \"never\"\n",
		logDir,
	)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return &cliTestEnv{baseDir: base, configPath: configPath, logDir: logDir}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{}
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writeFixtureWorkbook builds a two-sheet workbook: a roster sheet holding
// names in column A and one source sheet with names plus score columns.
func writeFixtureWorkbook(t *testing.T, path string, roster []string, sourceSheet string, records map[string][]float64) {
	t.Helper()

	file := excelize.NewFile()
	defer file.Close()

	first := file.GetSheetName(0)
	if err := file.SetSheetName(first, "Roster"); err != nil {
		t.Fatalf("rename roster sheet: %v", err)
	}
	for i, name := range roster {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := file.SetCellValue("Roster", cell, name); err != nil {
			t.Fatalf("set roster cell: %v", err)
		}
	}

	if _, err := file.NewSheet(sourceSheet); err != nil {
		t.Fatalf("new source sheet: %v", err)
	}
	names := make([]string, 0, len(records))
	for name := range records {
		names = append(names, name)
	}
	// Sorted for a stable fixture.
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			if names[j] < names[i] {
				names[i], names[j] = names[j], names[i]
			}
		}
	}
	for row, name := range names {
		cell, err := excelize.CoordinatesToCellName(1, row+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := file.SetCellValue(sourceSheet, cell, name); err != nil {
			t.Fatalf("set source name: %v", err)
		}
		for col, score := range records[name] {
			cell, err := excelize.CoordinatesToCellName(col+2, row+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := file.SetCellValue(sourceSheet, cell, score); err != nil {
				t.Fatalf("set score: %v", err)
			}
		}
	}

	if err := file.SaveAs(path); err != nil {
		t.Fatalf("save fixture workbook: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
