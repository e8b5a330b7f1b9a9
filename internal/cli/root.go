// Package cli implements the gtools CLI commands.
package cli

import (
	"github.com/spf13/cobra"
)

var debugFlag bool

var rootCmd = &cobra.Command{
	Use:   "gtools",
	Short: "Menu-bar launcher for your everyday links and tools",
	Long: `GTools keeps a list of menu items in ~/.gtools/menu_items.yaml and shows
them in the system status bar. Edit the list with 'gtools items' or by hand;
a running instance picks up changes automatically.`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(itemsCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}
