package config

import (
	"fmt"
	"time"
)

// Config is the root configuration structure. YAML values are overridden
// by the environment variables named in the env tags.
type Config struct {
	Version       int                 `yaml:"version" env-default:"1"`
	Log           LogConfig           `yaml:"log"`
	Enumerations  EnumerationConfig   `yaml:"enumerations"`
	Consolidation ConsolidationConfig `yaml:"consolidation"`
	Workers       int                 `yaml:"workers" env:"OMEGRAPH_WORKERS" env-default:"4"`
	Output        OutputConfig        `yaml:"output"`
	Watch         WatchConfig         `yaml:"watch"`
}

// LogConfig selects the zap encoder and level
type LogConfig struct {
	Level  string `yaml:"level" env:"OMEGRAPH_LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"OMEGRAPH_LOG_FORMAT" env-default:"console"` // console or json
}

// EnumerationConfig controls how free-text vocabulary values are resolved
type EnumerationConfig struct {
	Policy string `yaml:"policy" env:"OMEGRAPH_ENUM_POLICY" env-default:"fallback"` // strict or fallback
}

// ConsolidationConfig mirrors consolidate.Policy in a serializable form.
// Colors are #rrggbb or #rrggbbaa; vocabulary values use canonical labels.
type ConsolidationConfig struct {
	Bands                      []BandConfig      `yaml:"bands"`
	Palette                    []string          `yaml:"palette"`
	Neutral                    string            `yaml:"neutral,omitempty"`
	NonFluorescentContrast     []string          `yaml:"non_fluorescent_contrast"`
	NonFluorescentIllumination []string          `yaml:"non_fluorescent_illumination"`
	OverrideColors             bool              `yaml:"override_colors" env:"OMEGRAPH_OVERRIDE_COLORS"`
	DefaultNames               map[string]string `yaml:"default_names,omitempty"`
	Prune                      []string          `yaml:"prune,omitempty"`
}

// BandConfig is one wavelength band in nanometres
type BandConfig struct {
	Name  string  `yaml:"name"`
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	Color string  `yaml:"color"`
}

// OutputConfig holds CLI export defaults
type OutputConfig struct {
	Format string `yaml:"format" env:"OMEGRAPH_OUTPUT_FORMAT" env-default:"json"`
}

// WatchConfig holds settings for the CLI watch mode
type WatchConfig struct {
	Debounce Duration `yaml:"debounce" env:"OMEGRAPH_WATCH_DEBOUNCE" env-default:"500ms"`
}

const defaultDebounce = 500 * time.Millisecond

// Duration wraps time.Duration for YAML and environment values
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	return d.SetValue(s)
}

// MarshalYAML implements yaml.Marshaler
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// SetValue implements cleanenv.Setter
func (d *Duration) SetValue(s string) error {
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Duration returns the underlying time.Duration
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}
