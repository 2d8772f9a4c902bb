package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

const schemaFilePerm = 0o644

// GenerateSchemaFile generates a JSON schema file for the configuration,
// for editors that validate the TOML against it.
func GenerateSchemaFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}

	schemaFile := filepath.Join(configDir, "config.schema.json")

	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/tintbar/config.schema.json"
	schema.Title = "Tintbar Configuration"
	schema.Description = "Configuration schema for tintbar, a per-project title-bar tinting engine"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal schema: %w", err)
	}

	if err := os.WriteFile(schemaFile, data, schemaFilePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}

	return schemaFile, nil
}
