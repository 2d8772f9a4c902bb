package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/tintbar/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write the JSON schema for config.toml",
	Long: `Generate a JSON schema describing config.toml and write it next to
the config file, for editor completion and validation.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		path, err := config.GenerateSchemaFile()
		if err != nil {
			return fmt.Errorf("generate schema: %w", err)
		}
		fmt.Println(path)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(_ *cobra.Command, _ []string) error {
		dir, err := config.GetConfigDir()
		if err != nil {
			return err
		}
		fmt.Println(filepath.Join(dir, "config.toml"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configPathCmd)
}
