package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath   string
	snapshotName string
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "factoryplanner",
		Short: "Factory planner - plan production networks and power grids",
		Long: `Factory planner models factories, production lines, raw extraction,
power generation and the logistics lines between facilities, then reports
item balances and power figures for the whole network.

State lives in named snapshots in the local database; every command works
against one snapshot (--snapshot, default "default").

Examples:
  factoryplanner factory create --name "Iron Works"
  factoryplanner factory add-line --factory 1 --name Smelting --recipe IRON_INGOT --count 2 --clock 100
  factoryplanner logistics connect --from 1 --to 2 --variant TRUCK --item IRON_INGOT --rate 30
  factoryplanner balance
  factoryplanner power
  factoryplanner snapshot list`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: config.yaml in ., ./configs, /etc/factoryplanner)")
	rootCmd.PersistentFlags().StringVar(&snapshotName, "snapshot", "default",
		"Snapshot the command works against")

	// Add command groups
	rootCmd.AddCommand(NewFactoryCommand())
	rootCmd.AddCommand(NewLogisticsCommand())
	rootCmd.AddCommand(NewBalanceCommand())
	rootCmd.AddCommand(NewPowerCommand())
	rootCmd.AddCommand(NewSnapshotCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
