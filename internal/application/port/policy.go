package port

import (
	"context"

	"github.com/bnema/tintbar/internal/domain/entity"
)

// ColorPolicyStore is the persistence surface for project colors and the
// global auto-pick flag. Storage format and medium are adapter concerns;
// access is plain last-write-wins get/set with no transactional guarantees.
type ColorPolicyStore interface {
	// TryGet returns the stored color for a project path, or nil when no
	// entry exists. A miss is not an error.
	TryGet(ctx context.Context, path string) (*entity.Color, error)

	// Save creates or overwrites the entry for a project path.
	Save(ctx context.Context, path string, color entity.Color, autoPicked bool) error

	// Delete removes the entry for a project path.
	Delete(ctx context.Context, path string) error

	// All returns every stored entry.
	All(ctx context.Context) ([]*entity.ProjectColor, error)

	// AutoPickEnabled reports whether colors are generated automatically
	// for projects that have none saved.
	AutoPickEnabled() bool

	// SetAutoPickEnabled persists the auto-pick flag.
	SetAutoPickEnabled(enabled bool) error
}
