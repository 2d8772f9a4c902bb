package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var autoCmd = &cobra.Command{
	Use:   "auto [on|off]",
	Short: "Control automatic color picking",
	Long: `Enable or disable automatic color picking. When enabled, projects
opened without a saved color get a generated one, persisted for next
time. Without an argument, prints the current state.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"on", "off"},
	RunE:      runAuto,
}

func init() {
	rootCmd.AddCommand(autoCmd)
}

func runAuto(_ *cobra.Command, args []string) error {
	app := GetApp()

	if len(args) == 0 {
		state := "off"
		if app.Store.AutoPickEnabled() {
			state = "on"
		}
		fmt.Println("auto-pick is " + app.Theme.Highlight.Render(state))
		return nil
	}

	enable := args[0] == "on"
	if err := app.Store.SetAutoPickEnabled(enable); err != nil {
		return fmt.Errorf("persist auto-pick flag: %w", err)
	}
	if enable {
		fmt.Println(app.Theme.SuccessStyle.Render("auto-pick enabled"))
	} else {
		fmt.Println(app.Theme.SuccessStyle.Render("auto-pick disabled"))
	}
	return nil
}
