package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scoremerge/internal/config"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("SCOREMERGE_CONFIG", "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantLogDir := filepath.Join(tempHome, ".local", "share", "scoremerge", "logs")
	if cfg.Paths.LogDir != wantLogDir {
		t.Fatalf("unexpected log dir: got %q want %q", cfg.Paths.LogDir, wantLogDir)
	}
	if cfg.HistoryDBPath() != filepath.Join(wantLogDir, "history.db") {
		t.Fatalf("unexpected history db path: %q", cfg.HistoryDBPath())
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Fusion.ReviewTier != 2 || !cfg.Fusion.AllowOverlap {
		t.Fatalf("unexpected fusion defaults: %+v", cfg.Fusion)
	}
	if cfg.Report.Color != "auto" || cfg.Report.SheetColumnWidth != 25 {
		t.Fatalf("unexpected report defaults: %+v", cfg.Report)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	info, err := os.Stat(cfg.Paths.LogDir)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected log dir to exist: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "scoremerge.toml")

	content := strings.Join([]string{
		"[paths]",
		`log_dir = "` + filepath.Join(tempDir, "logs") + `"`,
		"[logging]",
		`level = "debug"`,
		"[fusion]",
		"review_tier = 3",
		"allow_overlap = false",
		"[report]",
		`color = "never"`,
		"sheet_column_width = 18.5",
	}, "\n")
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected config at %q to be found, got %q exists=%v", configPath, resolved, exists)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected level: %q", cfg.Logging.Level)
	}
	if cfg.Fusion.ReviewTier != 3 || cfg.Fusion.AllowOverlap {
		t.Fatalf("unexpected fusion config: %+v", cfg.Fusion)
	}
	if cfg.Report.Color != "never" || cfg.Report.SheetColumnWidth != 18.5 {
		t.Fatalf("unexpected report config: %+v", cfg.Report)
	}
}

func TestLoadEnvPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "via-env.toml")
	if err := os.WriteFile(configPath, []byte("[logging]\nlevel = \"warn\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("SCOREMERGE_CONFIG", configPath)

	cfg, _, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected env-pointed config to be found")
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("unexpected level: %q", cfg.Logging.Level)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"bad format", func(c *config.Config) { c.Logging.Format = "xml" }},
		{"bad level", func(c *config.Config) { c.Logging.Level = "loud" }},
		{"review tier low", func(c *config.Config) { c.Fusion.ReviewTier = 0 }},
		{"review tier high", func(c *config.Config) { c.Fusion.ReviewTier = 4 }},
		{"bad color", func(c *config.Config) { c.Report.Color = "sometimes" }},
		{"bad width", func(c *config.Config) { c.Report.SheetColumnWidth = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestSampleConfigMentionsEverySection(t *testing.T) {
	sample := config.SampleConfig()
	for _, section := range []string{"[paths]", "[logging]", "[fusion]", "[report]"} {
		if !strings.Contains(sample, section) {
			t.Fatalf("sample config missing %s", section)
		}
	}
}
