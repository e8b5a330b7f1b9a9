package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gtools-app/gtools/internal/config"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show where GTools keeps its files",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := config.GlobalDir()
		if err != nil {
			return err
		}
		menuFile, err := config.GlobalMenuItemsFile()
		if err != nil {
			return err
		}
		settingsFile, err := config.GlobalSettingsFile()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s\n", styleLabel.Render("Directory:"), styleValue.Render(dir))
		fmt.Fprintf(out, "%s %s\n", styleLabel.Render("Menu:     "), styleValue.Render(menuFile))
		fmt.Fprintf(out, "%s %s\n", styleLabel.Render("Settings: "), styleValue.Render(settingsFile))
		return nil
	},
}
