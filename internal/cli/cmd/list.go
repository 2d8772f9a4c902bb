package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tintbar/internal/cli/styles"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved project colors",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
}

type listEntry struct {
	Path       string `json:"path"`
	Color      string `json:"color"`
	AutoPicked bool   `json:"auto_picked"`
}

func runList(_ *cobra.Command, _ []string) error {
	app := GetApp()

	entries, err := app.Store.All(app.Ctx())
	if err != nil {
		return fmt.Errorf("load colors: %w", err)
	}

	if listJSON {
		out := make([]listEntry, 0, len(entries))
		for _, e := range entries {
			out = append(out, listEntry{
				Path:       e.Path,
				Color:      e.Color.Hex(),
				AutoPicked: e.AutoPicked,
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Print(styles.RenderProjectColors(app.Theme, entries))
	return nil
}
