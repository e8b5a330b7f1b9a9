package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gtools-app/gtools/internal/config"
	"github.com/gtools-app/gtools/internal/models"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default menu",
	Long: `Write the default menu to ~/.gtools/menu_items.yaml and the default
settings to ~/.gtools/settings.yaml.

An existing menu is left untouched unless --force is given. Existing settings
are never overwritten.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing menu")
}

func runInit(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := writeDefaultSettings(out); err != nil {
		return err
	}

	if store.Exists() && !initForce {
		fmt.Fprintf(out, "%s %s\n", styleWarning.Render("Menu already exists:"), store.Path())
		fmt.Fprintln(out, styleHint.Render("Use --force to replace it with the defaults."))
		return nil
	}

	if err := store.SaveMenuItems(models.DefaultMenuItems()); err != nil {
		return fmt.Errorf("failed to write menu: %w", err)
	}
	fmt.Fprintf(out, "%s %s\n", styleSuccess.Render("Wrote default menu to"), store.Path())
	return nil
}

func writeDefaultSettings(out io.Writer) error {
	path, err := config.GlobalSettingsFile()
	if err != nil {
		return err
	}
	if config.FileExists(path) {
		return nil
	}
	if err := config.SaveSettings(models.NewSettings()); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	fmt.Fprintf(out, "%s %s\n", styleSuccess.Render("Wrote default settings to"), path)
	return nil
}
