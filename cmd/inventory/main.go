// Package main is the entry point for the inventory CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "inventory",
		Short: "Manage RPG item inventories",
		Long: `Inventory keeps a character's items in a JSON file. Items keep their exact
variant, equip state and consumed state across runs.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.flushMetrics(cmd.Context())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.opts.file, "file", "f", "", "Inventory file (default $INVENTORY_FILE or inventory.json)")
	flags.StringVar(&a.opts.envFile, "env-file", "", "Env file to load instead of ./.env")
	flags.StringVar(&a.opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&a.opts.logFormat, "log-format", "", "Log format: text or json")
	flags.StringVar(&a.opts.metricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile")

	rootCmd.AddCommand(newInitCmd(a))
	rootCmd.AddCommand(newAddCmd(a))
	rootCmd.AddCommand(newBrewCmd(a))
	rootCmd.AddCommand(newEquipCmd(a))
	rootCmd.AddCommand(newUseCmd(a))
	rootCmd.AddCommand(newDropCmd(a))
	rootCmd.AddCommand(newRemoveCmd(a))
	rootCmd.AddCommand(newViewCmd(a))

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
