package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gtools-app/gtools/internal/logging"
	"github.com/gtools-app/gtools/internal/menu"
	"github.com/gtools-app/gtools/internal/models"
	"github.com/gtools-app/gtools/internal/tui"
)

var itemsCmd = &cobra.Command{
	Use:     "items",
	Aliases: []string{"item"},
	Short:   "Manage menu items",
	Long: `Manage the entries of the status-bar menu.

Positions are 1-based as shown by 'gtools items list'. A running instance
reloads its menu whenever the list changes.`,
}

var itemsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List menu items",
	Args:    cobra.NoArgs,
	RunE:    runItemsList,
}

var itemsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a menu item",
	Example: `  gtools items add --title "Go Docs" --url https://go.dev/doc --category Dev
  gtools items add --separator --at 2
  gtools items add --title "Open GTools" --action show_window --at 1`,
	Args: cobra.NoArgs,
	RunE: runItemsAdd,
}

var itemsRemoveCmd = &cobra.Command{
	Use:     "remove [position]",
	Aliases: []string{"rm"},
	Short:   "Remove a menu item",
	Args:    cobra.ExactArgs(1),
	RunE:    runItemsRemove,
}

var itemsMoveCmd = &cobra.Command{
	Use:     "move [from] [to]",
	Aliases: []string{"mv"},
	Short:   "Move a menu item to another position",
	Args:    cobra.ExactArgs(2),
	RunE:    runItemsMove,
}

var itemsEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the menu interactively",
	Args:  cobra.NoArgs,
	RunE:  runItemsEdit,
}

var itemsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all menu items",
	Args:  cobra.NoArgs,
	RunE:  runItemsClear,
}

var addOpts struct {
	item      models.MenuItem
	action    string
	separator bool
	at        int
}

func init() {
	f := itemsAddCmd.Flags()
	f.StringVar(&addOpts.item.Title, "title", "", "Menu title")
	f.StringVar(&addOpts.action, "action", "", "Action: open_url, show_window, reload, edit_config, quit (default open_url when --url is set)")
	f.StringVar(&addOpts.item.URL, "url", "", "URL opened by open_url")
	f.StringVar(&addOpts.item.Tooltip, "tooltip", "", "Tooltip")
	f.StringVar(&addOpts.item.Icon, "icon", "", "Icon shown on the home page")
	f.StringVar(&addOpts.item.Desc, "desc", "", "Description shown on the home page")
	f.StringVar(&addOpts.item.Category, "category", "", "Home page category")
	f.BoolVar(&addOpts.item.Disabled, "disabled", false, "Show the item greyed out")
	f.BoolVar(&addOpts.item.Checked, "checked", false, "Show a check mark")
	f.BoolVar(&addOpts.separator, "separator", false, "Add a separator line")
	f.IntVar(&addOpts.at, "at", 0, "Insert at position (default: end)")

	itemsCmd.AddCommand(itemsAddCmd)
	itemsCmd.AddCommand(itemsClearCmd)
	itemsCmd.AddCommand(itemsEditCmd)
	itemsCmd.AddCommand(itemsListCmd)
	itemsCmd.AddCommand(itemsMoveCmd)
	itemsCmd.AddCommand(itemsRemoveCmd)
}

func openStore() (*menu.DataManager, error) {
	return menu.NewDefaultDataManager(logging.NewConsole(debugFlag))
}

func runItemsList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	items := store.LoadMenuItems()
	out := cmd.OutOrStdout()
	if len(items) == 0 {
		fmt.Fprintf(out, "No menu items. Run %s or %s to create some.\n",
			styleCommand.Render("gtools init"), styleCommand.Render("gtools items add"))
		return nil
	}

	printItems(out, items)
	return nil
}

func printItems(out io.Writer, items []models.MenuItem) {
	width := len(strconv.Itoa(len(items)))
	for i, item := range items {
		fmt.Fprintf(out, "  %*d  %s\n", width, i+1, formatItem(item))
	}
}

func formatItem(item models.MenuItem) string {
	if item.IsSeparator() {
		return styleHint.Render("────────")
	}

	var b strings.Builder
	b.WriteString(styleValue.Render(item.Title))
	if item.Action != models.ActionNone {
		b.WriteString(" ")
		b.WriteString(badgeAction.Render("[" + string(item.Action) + "]"))
	}
	if item.URL != "" {
		b.WriteString(" ")
		b.WriteString(styleHint.Render(item.URL))
	}
	if item.Disabled {
		b.WriteString(" ")
		b.WriteString(badgeDisabled.Render("(disabled)"))
	}
	if item.Checked {
		b.WriteString(" ")
		b.WriteString(badgeChecked.Render("✓"))
	}
	return b.String()
}

// buildItem turns the add flags into a validated descriptor.
func buildItem() (models.MenuItem, error) {
	if addOpts.separator {
		return models.MenuItem{Action: models.ActionSeparator}, nil
	}

	item := addOpts.item
	item.Action = models.MenuAction(addOpts.action)
	if item.Action == models.ActionNone && item.URL != "" {
		item.Action = models.ActionOpenURL
	}
	if err := item.Validate(); err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

func runItemsAdd(cmd *cobra.Command, args []string) error {
	item, err := buildItem()
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	items, err := menu.Insert(store.LoadMenuItems(), addOpts.at, item)
	if err != nil {
		return err
	}
	if err := store.SaveMenuItems(items); err != nil {
		return fmt.Errorf("failed to save menu: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", styleSuccess.Render("Added"), formatItem(item))
	return nil
}

func runItemsRemove(cmd *cobra.Command, args []string) error {
	pos, err := parsePosition(args[0])
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	items, removed, err := menu.Remove(store.LoadMenuItems(), pos)
	if err != nil {
		return err
	}
	if err := store.SaveMenuItems(items); err != nil {
		return fmt.Errorf("failed to save menu: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", styleSuccess.Render("Removed"), formatItem(removed))
	return nil
}

func runItemsMove(cmd *cobra.Command, args []string) error {
	from, err := parsePosition(args[0])
	if err != nil {
		return err
	}
	to, err := parsePosition(args[1])
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	items, err := menu.Move(store.LoadMenuItems(), from, to)
	if err != nil {
		return err
	}
	if err := store.SaveMenuItems(items); err != nil {
		return fmt.Errorf("failed to save menu: %w", err)
	}

	printItems(cmd.OutOrStdout(), items)
	return nil
}

func runItemsEdit(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	discarded, err := tui.Run(store)
	if err != nil {
		return err
	}
	if discarded {
		fmt.Fprintln(cmd.OutOrStdout(), styleWarning.Render("Unsaved changes were discarded."))
	}
	return nil
}

func runItemsClear(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	if err := store.SaveMenuItems(nil); err != nil {
		return fmt.Errorf("failed to save menu: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), styleSuccess.Render("Menu cleared."))
	return nil
}

func parsePosition(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid position %q: expected a number starting at 1", s)
	}
	return n, nil
}
