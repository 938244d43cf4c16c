package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	Major = "1"
	Minor = "0"
	Fix   = "0"
)

var configDir string //nolint:gochecknoglobals

var rootCmd = &cobra.Command{ //nolint:gochecknoglobals
	Use:           "balance-gateway",
	Long:          "Balance gateway - oracle functions over the stock backend",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Run enters into the cobra command tree.
func Run() error {
	if err := rootCmd.Execute(); err != nil {
		newLogger("info").WithError(err).Error("command failed")
		return err
	}
	return nil
}

var versionCmd = &cobra.Command{ //nolint:gochecknoglobals
	Use:   "version",
	Short: "Describes version.",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "Version: %s.%s.%s\n", Major, Minor, Fix)
	},
}

func init() { //nolint:gochecknoinits
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "configs", "directory holding config.yaml")
	rootCmd.AddCommand(versionCmd)
}
