package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"omegraph/internal/consolidate"
	"omegraph/internal/domain"
	"omegraph/internal/enums"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}
	if cfg.EnumPolicy() != enums.PolicyFallback {
		t.Errorf("EnumPolicy() = %s, want fallback", cfg.EnumPolicy())
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %s, want json", cfg.Output.Format)
	}
	if cfg.Watch.Debounce.Duration() != 500*time.Millisecond {
		t.Errorf("Watch.Debounce = %s, want 500ms", cfg.Watch.Debounce.Duration())
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}

	p, err := cfg.Policy()
	if err != nil {
		t.Fatalf("Policy() error: %v", err)
	}
	want := consolidate.DefaultBands()
	if len(p.Bands) != len(want) {
		t.Fatalf("Bands = %v, want %v", p.Bands, want)
	}
	for i := range want {
		if p.Bands[i] != want[i] {
			t.Errorf("Bands[%d] = %+v, want %+v", i, p.Bands[i], want[i])
		}
	}
	if !p.Prunable[domain.TypePlane] || len(p.Prunable) != 1 {
		t.Errorf("Prunable = %v, want only Plane", p.Prunable)
	}
	if p.DefaultNames[domain.TypeImage] != "Image" {
		t.Errorf("DefaultNames[Image] = %q, want Image", p.DefaultNames[domain.TypeImage])
	}
	if p.Neutral != domain.White {
		t.Errorf("Neutral = %+v, want white", p.Neutral)
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Output.Format = "msgpack"
	cfg.Enumerations.Policy = "strict"
	cfg.Consolidation.OverrideColors = true
	cfg.Consolidation.Palette = []string{"#00ffff"}
	cfg.Watch.Debounce = Duration(2 * time.Second)

	if err := cfg.Save(configPath); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, path, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if path != configPath {
		t.Errorf("path = %s, want %s", path, configPath)
	}
	if loaded.Output.Format != "msgpack" {
		t.Errorf("Output.Format = %s, want msgpack", loaded.Output.Format)
	}
	if loaded.EnumPolicy() != enums.PolicyStrict {
		t.Errorf("EnumPolicy() = %s, want strict", loaded.EnumPolicy())
	}
	if loaded.Watch.Debounce.Duration() != 2*time.Second {
		t.Errorf("Watch.Debounce = %s, want 2s", loaded.Watch.Debounce.Duration())
	}

	p, err := loaded.Policy()
	if err != nil {
		t.Fatalf("Policy() error: %v", err)
	}
	if !p.OverrideColors {
		t.Error("OverrideColors should survive the round trip")
	}
	if len(p.Palette) != 1 || p.Palette[0] != domain.RGB(0, 255, 255) {
		t.Errorf("Palette = %v, want [cyan]", p.Palette)
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	path := writeConfig(t, "log:\n  level: debug\n")

	cfg, _, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %s, want debug", cfg.Log.Level)
	}
	if cfg.Log.Format != "console" {
		t.Errorf("Log.Format = %s, want console", cfg.Log.Format)
	}
	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
	if cfg.Enumerations.Policy != "fallback" {
		t.Errorf("Enumerations.Policy = %s, want fallback", cfg.Enumerations.Policy)
	}
	if len(cfg.Consolidation.Bands) != 3 {
		t.Errorf("Bands = %v, want the three default bands", cfg.Consolidation.Bands)
	}
	if len(cfg.Consolidation.NonFluorescentContrast) == 0 {
		t.Error("NonFluorescentContrast should default to the transmitted-light methods")
	}
	if cfg.Watch.Debounce.Duration() != 500*time.Millisecond {
		t.Errorf("Watch.Debounce = %s, want 500ms", cfg.Watch.Debounce.Duration())
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	path := writeConfig(t, "log:\n  level: debug\nworkers: 2\noutput:\n  format: yaml\n")

	t.Setenv("OMEGRAPH_LOG_LEVEL", "warn")
	t.Setenv("OMEGRAPH_WORKERS", "8")
	t.Setenv("OMEGRAPH_OVERRIDE_COLORS", "true")
	t.Setenv("OMEGRAPH_WATCH_DEBOUNCE", "1s")

	cfg, _, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %s, want warn", cfg.Log.Level)
	}
	if cfg.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Workers)
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("Output.Format = %s, want yaml from the file", cfg.Output.Format)
	}
	if !cfg.Consolidation.OverrideColors {
		t.Error("OverrideColors should be set from the environment")
	}
	if cfg.Watch.Debounce.Duration() != time.Second {
		t.Errorf("Watch.Debounce = %s, want 1s", cfg.Watch.Debounce.Duration())
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"enumeration policy", "enumerations:\n  policy: loose\n"},
		{"log format", "log:\n  format: xml\n"},
		{"log level", "log:\n  level: chatty\n"},
		{"band color", "consolidation:\n  bands:\n    - {name: x, min: 1, max: 2, color: \"#12\"}\n"},
		{"empty bands", "consolidation:\n  bands: []\n"},
		{"inverted band", "consolidation:\n  bands:\n    - {name: x, min: 600, max: 500, color: \"#ff0000\"}\n"},
		{"palette color", "consolidation:\n  palette: [\"red\"]\n"},
		{"neutral color", "consolidation:\n  neutral: \"#zzzzzz\"\n"},
		{"contrast method", "consolidation:\n  non_fluorescent_contrast: [Phasey]\n"},
		{"illumination type", "consolidation:\n  non_fluorescent_illumination: [Sideways]\n"},
		{"prune type", "consolidation:\n  prune: [Pixel]\n"},
		{"default name type", "consolidation:\n  default_names:\n    Album: Album\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := LoadFromPath(writeConfig(t, tt.body)); err == nil {
				t.Error("LoadFromPath() should fail")
			}
		})
	}

	if _, _, err := LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadFromPath() should fail for a missing file")
	}
}

func TestPolicyConversion(t *testing.T) {
	path := writeConfig(t, `consolidation:
  bands:
    - {name: cyan, min: 480, max: 520, color: "#00ffff"}
  palette: ["#ffff00", "#ff00ff"]
  neutral: "#808080"
  non_fluorescent_contrast: [Phase]
  non_fluorescent_illumination: []
  default_names:
    Plate: Unnamed plate
  prune: []
`)

	cfg, _, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	p, err := cfg.Policy()
	if err != nil {
		t.Fatalf("Policy() error: %v", err)
	}

	b, ok := p.Band(500)
	if !ok || b.Name != "cyan" || b.Color != domain.RGB(0, 255, 255) {
		t.Errorf("Band(500) = %+v, %v; want cyan", b, ok)
	}
	if _, ok := p.Band(600); ok {
		t.Error("Band(600) should fall outside the configured bands")
	}
	if len(p.Palette) != 2 || p.Palette[1] != domain.RGB(255, 0, 255) {
		t.Errorf("Palette = %v", p.Palette)
	}
	if p.Neutral != domain.RGB(128, 128, 128) {
		t.Errorf("Neutral = %+v, want grey", p.Neutral)
	}

	phase := &domain.Channel{ContrastMethod: domain.ContrastPhase}
	bright := &domain.Channel{ContrastMethod: domain.ContrastBrightfield}
	transmitted := &domain.Channel{IlluminationType: domain.IlluminationTransmitted}
	if !p.NonFluorescent(phase) {
		t.Error("Phase should be non-fluorescent")
	}
	if p.NonFluorescent(bright) {
		t.Error("Brightfield was not configured as non-fluorescent")
	}
	if p.NonFluorescent(transmitted) {
		t.Error("an empty illumination list should match nothing")
	}

	if p.DefaultNames[domain.TypePlate] != "Unnamed plate" || len(p.DefaultNames) != 1 {
		t.Errorf("DefaultNames = %v", p.DefaultNames)
	}
	if len(p.Prunable) != 0 {
		t.Errorf("Prunable = %v, want none", p.Prunable)
	}
}

func TestEmptyPalette(t *testing.T) {
	cfg, _, err := LoadFromPath(writeConfig(t, "consolidation:\n  palette: []\n"))
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if cfg.Consolidation.Palette == nil || len(cfg.Consolidation.Palette) != 0 {
		t.Fatalf("Palette = %v, want explicitly empty", cfg.Consolidation.Palette)
	}
	if len(cfg.Consolidation.Bands) != 3 {
		t.Errorf("Bands = %v, want the defaults", cfg.Consolidation.Bands)
	}

	p, err := cfg.Policy()
	if err != nil {
		t.Fatalf("Policy() error: %v", err)
	}
	if len(p.Palette) != 0 {
		t.Errorf("Palette = %v, want none", p.Palette)
	}

	// Survives a save and reload
	path := filepath.Join(t.TempDir(), "saved.yaml")
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	reloaded, _, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if reloaded.Consolidation.Palette == nil || len(reloaded.Consolidation.Palette) != 0 {
		t.Errorf("reloaded Palette = %v, want explicitly empty", reloaded.Consolidation.Palette)
	}

	// A missing palette still gets the defaults
	cfg, _, err = LoadFromPath(writeConfig(t, "workers: 2\n"))
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if len(cfg.Consolidation.Palette) != len(consolidate.DefaultPolicy().Palette) {
		t.Errorf("Palette = %v, want the defaults", cfg.Consolidation.Palette)
	}
}

func TestLogger(t *testing.T) {
	for _, format := range []string{"console", "json", "JSON", ""} {
		cfg := DefaultConfig()
		cfg.Log.Format = format
		cfg.Log.Level = "debug"
		logger, err := cfg.Logger()
		if err != nil {
			t.Fatalf("Logger() with format %q error: %v", format, err)
		}
		if !logger.Core().Enabled(-1) {
			t.Errorf("format %q: debug should be enabled", format)
		}
	}

	cfg := DefaultConfig()
	cfg.Log.Level = "warn"
	logger, err := cfg.Logger()
	if err != nil {
		t.Fatalf("Logger() error: %v", err)
	}
	if logger.Core().Enabled(0) {
		t.Error("info should be disabled at warn level")
	}
}

func TestFindConfigPath(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", filepath.Join(tmpDir, "home"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv(EnvConfigPath, "")

	oldWd, _ := os.Getwd()
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer os.Chdir(oldWd)

	// Nothing in the working directory, XDG or HOME
	if _, err := os.Stat("/etc/omegraph/config.yaml"); err != nil {
		if found := FindConfigPath(); found != "" {
			t.Errorf("FindConfigPath() = %s, want none", found)
		}
	}

	xdgPath := filepath.Join(tmpDir, "xdg", ConfigDirName, "config.yaml")
	if err := DefaultConfig().Save(xdgPath); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if found := FindConfigPath(); found != xdgPath {
		t.Errorf("FindConfigPath() = %s, want %s", found, xdgPath)
	}
	if DefaultConfigPath() != xdgPath {
		t.Errorf("DefaultConfigPath() = %s, want %s", DefaultConfigPath(), xdgPath)
	}

	// Working directory beats XDG
	if err := DefaultConfig().Save(ConfigFileName); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if found := FindConfigPath(); filepath.Base(found) != ConfigFileName {
		t.Errorf("FindConfigPath() = %s, want ./%s", found, ConfigFileName)
	}

	// Explicit path beats everything, a missing one falls through
	explicit := filepath.Join(tmpDir, "explicit.yaml")
	t.Setenv(EnvConfigPath, explicit)
	if found := FindConfigPath(); filepath.Base(found) != ConfigFileName {
		t.Errorf("FindConfigPath() = %s, want fallback to ./%s", found, ConfigFileName)
	}
	if err := DefaultConfig().Save(explicit); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if found := FindConfigPath(); found != explicit {
		t.Errorf("FindConfigPath() = %s, want %s", found, explicit)
	}
}

func TestDuration(t *testing.T) {
	d := Duration(5 * time.Minute)

	if d.Duration() != 5*time.Minute {
		t.Errorf("Duration() = %s, want 5m", d.Duration())
	}

	marshaled, err := d.MarshalYAML()
	if err != nil {
		t.Fatalf("MarshalYAML() error: %v", err)
	}
	if marshaled != "5m0s" {
		t.Errorf("MarshalYAML() = %v, want 5m0s", marshaled)
	}

	if err := d.SetValue("90s"); err != nil || d.Duration() != 90*time.Second {
		t.Errorf("SetValue(90s) = %v, got %s", err, d.Duration())
	}
	if err := d.SetValue("soon"); err == nil {
		t.Error("SetValue(soon) should fail")
	}
}
