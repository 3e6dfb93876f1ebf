package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootConfig holds the persistent flag values shared by all subcommands.
type RootConfig struct {
	ConfigPath string
	DBPath     string
}

func NewRootCmd() *cobra.Command {
	rc := &RootConfig{}

	cmd := &cobra.Command{
		Use:           "stochastic",
		Short:         "Stochastic — GBM path simulation and option pricing tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global / persistent flags
	cmd.PersistentFlags().StringVar(&rc.ConfigPath, "config", "", "Path to scenario file (optional)")
	cmd.PersistentFlags().StringVar(&rc.DBPath, "db", "./stochastic.sqlite", "SQLite run journal database")

	// Subcommands
	cmd.AddCommand(
		newSimulateCmd(rc),
		newPriceCmd(rc),
		newSurfaceCmd(rc),
	)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("stochastic (dev)")
		},
	})

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
