package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"omegraph/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "omegraph",
	Short: "Consolidate microscopy metadata assertions into an entity graph",
	Long: `omegraph - replay assertion logs recorded by format readers, consolidate
them into a typed entity graph and export the result.

Configuration is read from the first file found in:
  $OMEGRAPH_CONFIG
  ./omegraph.yaml
  $XDG_CONFIG_HOME/omegraph/config.yaml
  ~/.config/omegraph/config.yaml
  /etc/omegraph/config.yaml

Environment variables (OMEGRAPH_LOG_LEVEL, OMEGRAPH_WORKERS, ...) override
file values.

Examples:
  omegraph replay widefield.yaml
  omegraph replay --format yaml --out graphs/ a.yaml b.yaml
  omegraph resolve correction "Plan Apo"`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default: search path)")
}

// loadConfig reads the file named by --config, or searches the default
// locations. The returned path is empty when built-in defaults are used.
func loadConfig() (*config.Config, string, error) {
	var (
		cfg  *config.Config
		path string
		err  error
	)
	if configPath != "" {
		cfg, path, err = config.LoadFromPath(configPath)
	} else {
		cfg, path, err = config.Load()
	}
	if err != nil {
		return nil, path, fmt.Errorf("config not available: %w", err)
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	return cfg, path, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	logger, err := cfg.Logger()
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return logger, nil
}
