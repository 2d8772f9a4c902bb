package repository

import (
	"context"

	"github.com/bnema/tintbar/internal/domain/entity"
)

// ProjectColorRepository defines operations for per-project color persistence.
type ProjectColorRepository interface {
	// Get retrieves the color entry for a project path.
	// Returns nil if no color is stored.
	Get(ctx context.Context, path string) (*entity.ProjectColor, error)

	// Set saves or updates the color entry for a project path.
	Set(ctx context.Context, color *entity.ProjectColor) error

	// Delete removes the stored color for a project path.
	Delete(ctx context.Context, path string) error

	// GetAll retrieves all stored project colors.
	GetAll(ctx context.Context) ([]*entity.ProjectColor, error)
}
