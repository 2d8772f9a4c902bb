package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset [project-path]",
	Short: "Forget a project's title-bar color",
	Long: `Remove the saved title-bar color for a project so its windows fall
back to host chrome. With auto-pick enabled, the next open generates a
fresh color.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

func runReset(_ *cobra.Command, args []string) error {
	app := GetApp()
	path, err := projectArg(args)
	if err != nil {
		return err
	}

	if err := app.Store.Delete(app.Ctx(), path); err != nil {
		return fmt.Errorf("delete color: %w", err)
	}
	fmt.Println(app.Theme.SuccessStyle.Render("forgot color for " + path))
	return nil
}
