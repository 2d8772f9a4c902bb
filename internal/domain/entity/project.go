package entity

import (
	"path/filepath"
	"strings"
	"time"
)

// ProjectColor represents the persisted title-bar color for one project.
// Projects are identified by their root path.
type ProjectColor struct {
	Path       string // Cleaned absolute project root
	Color      Color
	AutoPicked bool // True when the color came from auto-pick, not the user
	UpdatedAt  time.Time
}

// NewProjectColor creates a project color entry with a cleaned path.
func NewProjectColor(path string, color Color, autoPicked bool) *ProjectColor {
	return &ProjectColor{
		Path:       CleanProjectPath(path),
		Color:      color,
		AutoPicked: autoPicked,
		UpdatedAt:  time.Now(),
	}
}

// CleanProjectPath normalizes a project path for use as a persistence key.
// Two spellings of the same directory must map to the same entry.
func CleanProjectPath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	return filepath.Clean(path)
}
