package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"spotifyeq/internal/config"
	"spotifyeq/internal/plistdoc"
	"spotifyeq/internal/testsupport"
)

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	home := testsupport.IsolateEnv(t)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	want := filepath.Join(home, ".config", "spotifyeq", "config.toml")
	if resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.OutputFormat() != plistdoc.FormatBinary {
		t.Fatalf("unexpected output format: %q", cfg.OutputFormat())
	}
	if cfg.Output.Precision != 3 {
		t.Fatalf("unexpected precision: %d", cfg.Output.Precision)
	}
	if cfg.Patch.KeyMarker != "equalizer.values" {
		t.Fatalf("unexpected key marker: %q", cfg.Patch.KeyMarker)
	}
	table, err := cfg.PresetTable()
	if err != nil {
		t.Fatalf("PresetTable: %v", err)
	}
	if len(table.Names()) != 7 {
		t.Fatalf("expected built-in presets only, got %v", table.Names())
	}
}

func TestLoadCustomPath(t *testing.T) {
	testsupport.IsolateEnv(t)
	configPath := filepath.Join(t.TempDir(), "spotifyeq.toml")

	type payload struct {
		Logging struct {
			Level string `toml:"level"`
		} `toml:"logging"`
		Output struct {
			Format    string `toml:"format"`
			Precision int    `toml:"precision"`
		} `toml:"output"`
		Patch struct {
			KeyMarker string `toml:"key_marker"`
		} `toml:"patch"`
		Presets map[string][]float64 `toml:"presets"`
	}
	custom := payload{}
	custom.Logging.Level = "DEBUG"
	custom.Output.Format = "XML"
	custom.Output.Precision = 4
	custom.Patch.KeyMarker = "  eq.bands "
	custom.Presets = map[string][]float64{
		"podcast": {-3, -2, 0, 2, 4, 4, 2, 0, -2, -3},
	}
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected custom path to be used, got %q (exists=%v)", resolved, exists)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized level, got %q", cfg.Logging.Level)
	}
	if cfg.OutputFormat() != plistdoc.FormatXML {
		t.Fatalf("expected xml output, got %q", cfg.OutputFormat())
	}
	if cfg.Output.Precision != 4 {
		t.Fatalf("unexpected precision %d", cfg.Output.Precision)
	}
	if cfg.Patch.KeyMarker != "eq.bands" {
		t.Fatalf("expected trimmed marker, got %q", cfg.Patch.KeyMarker)
	}
	table, err := cfg.PresetTable()
	if err != nil {
		t.Fatalf("PresetTable: %v", err)
	}
	if _, err := table.Lookup("Podcast"); err != nil {
		t.Fatalf("expected custom preset: %v", err)
	}
}

func TestLoadProjectConfigFallback(t *testing.T) {
	testsupport.IsolateEnv(t)
	if err := os.WriteFile("spotifyeq.toml", []byte("[output]\nformat = \"source\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || filepath.Base(resolved) != "spotifyeq.toml" {
		t.Fatalf("expected project config, got %q (exists=%v)", resolved, exists)
	}
	if cfg.OutputFormat() != plistdoc.FormatSource {
		t.Fatalf("unexpected format %q", cfg.OutputFormat())
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	testsupport.IsolateEnv(t)
	t.Setenv("SPOTIFYEQ_LOG_LEVEL", "error")
	t.Setenv("SPOTIFYEQ_LOG_FORMAT", "json")
	t.Setenv("SPOTIFYEQ_OUTPUT_FORMAT", "openstep")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Logging.Level != "error" || cfg.Logging.Format != "json" {
		t.Fatalf("env overrides not applied: %+v", cfg.Logging)
	}
	if cfg.OutputFormat() != plistdoc.FormatOpenStep {
		t.Fatalf("unexpected format %q", cfg.OutputFormat())
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad format", "[output]\nformat = \"yaml\"\n", "output.format"},
		{"bad precision", "[output]\nprecision = 20\n", "output.precision"},
		{"bad level", "[logging]\nlevel = \"loud\"\n", "logging.level"},
		{"bad log format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"short preset", "[presets]\ntiny = [1.0, 2.0]\n", "presets"},
		{"shadowed preset", "[presets]\nrock = [0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0]\n", "already defined"},
		{"unknown key", "[output]\ncolour = \"red\"\n", "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testsupport.IsolateEnv(t)
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatal(err)
			}
			_, _, _, err := config.Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestCreateSampleLoads(t *testing.T) {
	testsupport.IsolateEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config should load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if cfg.Patch.KeyMarker != "equalizer.values" {
		t.Fatalf("unexpected marker %q", cfg.Patch.KeyMarker)
	}
}

func TestExpandPath(t *testing.T) {
	home := testsupport.IsolateEnv(t)
	got, err := config.ExpandPath("~/prefs/../prefs.bnk")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, "prefs.bnk") {
		t.Fatalf("unexpected expansion %q", got)
	}
}
