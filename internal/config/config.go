// Package config provides configuration management for omegraph.
//
// Configuration is read from a YAML file with environment variable
// overrides. Without a file the built-in defaults apply, still subject to
// the environment.
//
// Config file locations (priority order):
//  1. $OMEGRAPH_CONFIG
//  2. ./omegraph.yaml
//  3. $XDG_CONFIG_HOME/omegraph/config.yaml
//  4. ~/.config/omegraph/config.yaml
//  5. /etc/omegraph/config.yaml
package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"

	"omegraph/internal/consolidate"
	"omegraph/internal/domain"
	"omegraph/internal/enums"
)

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		cfg := DefaultConfig()
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, "", fmt.Errorf("read environment: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, "", err
		}
		return cfg, "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}

	return &cfg, path, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns the stock configuration
func DefaultConfig() *Config {
	return &Config{
		Version:       1,
		Log:           LogConfig{Level: "info", Format: "console"},
		Enumerations:  EnumerationConfig{Policy: string(enums.PolicyFallback)},
		Consolidation: consolidationFromPolicy(consolidate.DefaultPolicy()),
		Workers:       4,
		Output:        OutputConfig{Format: "json"},
		Watch:         WatchConfig{Debounce: Duration(defaultDebounce)},
	}
}

// applyDefaults fills in consolidation settings the file left out. An
// explicitly empty palette is kept.
func (c *Config) applyDefaults() {
	def := consolidationFromPolicy(consolidate.DefaultPolicy())
	cc := &c.Consolidation

	if cc.Bands == nil {
		cc.Bands = def.Bands
	}
	if cc.Palette == nil {
		cc.Palette = def.Palette
	}
	if cc.Neutral == "" {
		cc.Neutral = def.Neutral
	}
	if cc.NonFluorescentContrast == nil {
		cc.NonFluorescentContrast = def.NonFluorescentContrast
	}
	if cc.NonFluorescentIllumination == nil {
		cc.NonFluorescentIllumination = def.NonFluorescentIllumination
	}
	if cc.DefaultNames == nil {
		cc.DefaultNames = def.DefaultNames
	}
	if cc.Prune == nil {
		cc.Prune = def.Prune
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
}

// Validate checks every setting that would otherwise fail at use
func (c *Config) Validate() error {
	if _, err := enums.ParsePolicy(c.Enumerations.Policy); err != nil {
		return fmt.Errorf("enumerations.policy: %w", err)
	}
	if _, err := c.Policy(); err != nil {
		return err
	}
	if _, err := c.Log.zapConfig(); err != nil {
		return err
	}
	return nil
}

// EnumPolicy returns the parsed enumeration policy
func (c *Config) EnumPolicy() enums.Policy {
	p, err := enums.ParsePolicy(c.Enumerations.Policy)
	if err != nil {
		return enums.PolicyFallback
	}
	return p
}

// Policy converts the consolidation settings
func (c *Config) Policy() (consolidate.Policy, error) {
	cc := c.Consolidation
	p := consolidate.DefaultPolicy()
	p.OverrideColors = cc.OverrideColors

	if cc.Bands != nil {
		if len(cc.Bands) == 0 {
			return p, fmt.Errorf("bands: at least one band is required")
		}
		p.Bands = make([]consolidate.Band, 0, len(cc.Bands))
		for _, b := range cc.Bands {
			if b.Min > b.Max {
				return p, fmt.Errorf("band %q: min %v exceeds max %v", b.Name, b.Min, b.Max)
			}
			color, err := domain.ParseHex(b.Color)
			if err != nil {
				return p, fmt.Errorf("band %q: %w", b.Name, err)
			}
			p.Bands = append(p.Bands, consolidate.Band{Name: b.Name, Min: b.Min, Max: b.Max, Color: color})
		}
	}

	if cc.Palette != nil {
		p.Palette = make([]domain.Color, 0, len(cc.Palette))
		for _, s := range cc.Palette {
			color, err := domain.ParseHex(s)
			if err != nil {
				return p, fmt.Errorf("palette: %w", err)
			}
			p.Palette = append(p.Palette, color)
		}
	}

	if cc.Neutral != "" {
		color, err := domain.ParseHex(cc.Neutral)
		if err != nil {
			return p, fmt.Errorf("neutral: %w", err)
		}
		p.Neutral = color
	}

	methods, err := labels("non_fluorescent_contrast", domain.ContrastMethods, cc.NonFluorescentContrast)
	if err != nil {
		return p, err
	}
	illumination, err := labels("non_fluorescent_illumination", domain.IlluminationTypes, cc.NonFluorescentIllumination)
	if err != nil {
		return p, err
	}
	if cc.NonFluorescentContrast == nil {
		methods = consolidate.DefaultNonFluorescentContrast()
	}
	if cc.NonFluorescentIllumination == nil {
		illumination = consolidate.DefaultNonFluorescentIllumination()
	}
	p.NonFluorescent = consolidate.NonFluorescentBy(methods, illumination)

	if cc.DefaultNames != nil {
		p.DefaultNames = make(map[domain.EntityType]string, len(cc.DefaultNames))
		for t, name := range cc.DefaultNames {
			et, err := entityType(t)
			if err != nil {
				return p, fmt.Errorf("default_names: %w", err)
			}
			p.DefaultNames[et] = name
		}
	}

	if cc.Prune != nil {
		p.Prunable = make(map[domain.EntityType]bool, len(cc.Prune))
		for _, t := range cc.Prune {
			et, err := entityType(t)
			if err != nil {
				return p, fmt.Errorf("prune: %w", err)
			}
			p.Prunable[et] = true
		}
	}

	return p, nil
}

func labels[V ~string](field string, set map[string]V, values []string) ([]V, error) {
	out := make([]V, 0, len(values))
	for _, s := range values {
		v, ok := set[s]
		if !ok {
			return nil, fmt.Errorf("%s: unknown value %q", field, s)
		}
		out = append(out, v)
	}
	return out, nil
}

func entityType(s string) (domain.EntityType, error) {
	t := domain.EntityType(s)
	if _, ok := domain.SchemaOf(t); !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedEntityType, s)
	}
	return t, nil
}

func consolidationFromPolicy(p consolidate.Policy) ConsolidationConfig {
	cc := ConsolidationConfig{
		Neutral:        p.Neutral.Hex(),
		OverrideColors: p.OverrideColors,
		DefaultNames:   make(map[string]string, len(p.DefaultNames)),
	}
	for _, b := range p.Bands {
		cc.Bands = append(cc.Bands, BandConfig{Name: b.Name, Min: b.Min, Max: b.Max, Color: b.Color.Hex()})
	}
	for _, c := range p.Palette {
		cc.Palette = append(cc.Palette, c.Hex())
	}
	for _, m := range consolidate.DefaultNonFluorescentContrast() {
		cc.NonFluorescentContrast = append(cc.NonFluorescentContrast, string(m))
	}
	for _, i := range consolidate.DefaultNonFluorescentIllumination() {
		cc.NonFluorescentIllumination = append(cc.NonFluorescentIllumination, string(i))
	}
	for t, name := range p.DefaultNames {
		cc.DefaultNames[string(t)] = name
	}
	for t := range p.Prunable {
		cc.Prune = append(cc.Prune, string(t))
	}
	sort.Strings(cc.Prune)
	return cc
}

// Summary returns a human-readable config summary
func (c *Config) Summary() string {
	summary := fmt.Sprintf("Log: %s/%s, Enumerations: %s, Workers: %d, Output: %s\n",
		c.Log.Level, c.Log.Format, c.Enumerations.Policy, c.Workers, c.Output.Format)
	summary += fmt.Sprintf("Bands (%d):", len(c.Consolidation.Bands))
	for _, b := range c.Consolidation.Bands {
		summary += fmt.Sprintf(" %s[%g-%g]", b.Name, b.Min, b.Max)
	}
	return summary
}
