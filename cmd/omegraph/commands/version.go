package commands

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X omegraph/cmd/omegraph/commands.version=..."
var version = ""

func buildVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "omegraph %s\n", buildVersion())
		if verbose {
			fmt.Fprintf(out, "  go:     %s\n", runtime.Version())
			if _, path, err := loadConfig(); err != nil {
				fmt.Fprintf(out, "  config: (unavailable: %v)\n", err)
			} else if path == "" {
				fmt.Fprintf(out, "  config: (defaults)\n")
			} else {
				fmt.Fprintf(out, "  config: %s\n", path)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
