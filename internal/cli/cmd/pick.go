package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/tintbar/internal/cli/model"
	"github.com/bnema/tintbar/internal/cli/styles"
	"github.com/bnema/tintbar/internal/domain/entity"
)

var (
	pickHex   string
	pickLight bool
	pickDark  bool
)

var pickCmd = &cobra.Command{
	Use:   "pick [project-path]",
	Short: "Pick a title-bar color for a project",
	Long: `Pick and save a title-bar color for a project.

Without --color, an interactive swatch picker offers generated candidates
matching the active light/dark theme. The chosen color is saved for the
project path (default: current directory) and applied by a running engine.

Examples:
  tintbar pick                            # interactive, current directory
  tintbar pick ~/code/app --color "#2d6a4f"
  tintbar pick --light                    # force light-band candidates`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)

	pickCmd.Flags().StringVar(&pickHex, "color", "", "save this hex color without the picker")
	pickCmd.Flags().BoolVar(&pickLight, "light", false, "offer light-band candidates")
	pickCmd.Flags().BoolVar(&pickDark, "dark", false, "offer dark-band candidates")
}

func projectArg(args []string) (string, error) {
	if len(args) > 0 {
		return entity.CleanProjectPath(args[0]), nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve current directory: %w", err)
	}
	return entity.CleanProjectPath(cwd), nil
}

func runPick(cmd *cobra.Command, args []string) error {
	app := GetApp()
	path, err := projectArg(args)
	if err != nil {
		return err
	}

	if pickHex != "" {
		color, parseErr := entity.ParseHex(pickHex)
		if parseErr != nil {
			return parseErr
		}
		return savePicked(path, color)
	}

	lum := entity.LuminosityFor(app.Scheme.Resolve().PrefersDark)
	if pickLight {
		lum = entity.LuminosityLight
	}
	if pickDark {
		lum = entity.LuminosityDark
	}

	m := model.NewPickerModel(app.Theme, app.Generator, lum, path)
	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		return err
	}

	picker, ok := final.(model.PickerModel)
	if !ok {
		return fmt.Errorf("unexpected picker state")
	}
	color, chosen := picker.Chosen()
	if !chosen {
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Subtle.Render("canceled"))
		return nil
	}
	return savePicked(path, color)
}

func savePicked(path string, color entity.Color) error {
	app := GetApp()
	if err := app.Store.Save(app.Ctx(), path, color, false); err != nil {
		return fmt.Errorf("save color: %w", err)
	}
	fmt.Printf("%s %s\n", styles.SwatchLabel(color), app.Theme.SuccessStyle.Render("saved for "+path))
	return nil
}
