package config

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Logger builds a zap logger from the log settings
func (c *Config) Logger() (*zap.Logger, error) {
	zc, err := c.Log.zapConfig()
	if err != nil {
		return nil, err
	}
	return zc.Build()
}

// zapConfig uses the development encoder for console output and the
// production one for json. Both write to stderr so stdout stays free for
// exported graphs.
func (l LogConfig) zapConfig() (zap.Config, error) {
	level, err := zap.ParseAtomicLevel(strings.ToLower(l.Level))
	if err != nil {
		return zap.Config{}, fmt.Errorf("log.level: %w", err)
	}

	var zc zap.Config
	switch strings.ToLower(l.Format) {
	case "", "console":
		zc = zap.NewDevelopmentConfig()
	case "json":
		zc = zap.NewProductionConfig()
	default:
		return zap.Config{}, fmt.Errorf("log.format: unknown format %q", l.Format)
	}
	zc.Level = level
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc, nil
}
