// Package policy implements the color policy store over the sqlite
// repository and the config-backed auto-pick flag.
package policy

import (
	"context"

	"github.com/bnema/tintbar/internal/domain/entity"
	"github.com/bnema/tintbar/internal/domain/repository"
)

// FlagStore persists the auto-pick flag. The config manager implements it.
type FlagStore interface {
	// AutoPick returns the current flag value.
	AutoPick() bool
	// SetAutoPick persists a new flag value.
	SetAutoPick(enabled bool) error
}

// Store implements port.ColorPolicyStore. Colors live in the database,
// the auto-pick flag in the user's config file: the flag is a preference,
// the colors are data.
type Store struct {
	repo  repository.ProjectColorRepository
	flags FlagStore
}

// NewStore wires a policy store.
func NewStore(repo repository.ProjectColorRepository, flags FlagStore) *Store {
	return &Store{repo: repo, flags: flags}
}

// TryGet implements port.ColorPolicyStore.
func (s *Store) TryGet(ctx context.Context, path string) (*entity.Color, error) {
	pc, err := s.repo.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	if pc == nil {
		return nil, nil
	}
	color := pc.Color
	return &color, nil
}

// Save implements port.ColorPolicyStore.
func (s *Store) Save(ctx context.Context, path string, color entity.Color, autoPicked bool) error {
	return s.repo.Set(ctx, entity.NewProjectColor(path, color, autoPicked))
}

// Delete implements port.ColorPolicyStore.
func (s *Store) Delete(ctx context.Context, path string) error {
	return s.repo.Delete(ctx, path)
}

// All implements port.ColorPolicyStore.
func (s *Store) All(ctx context.Context) ([]*entity.ProjectColor, error) {
	return s.repo.GetAll(ctx)
}

// AutoPickEnabled implements port.ColorPolicyStore.
func (s *Store) AutoPickEnabled() bool {
	return s.flags.AutoPick()
}

// SetAutoPickEnabled implements port.ColorPolicyStore.
func (s *Store) SetAutoPickEnabled(enabled bool) error {
	return s.flags.SetAutoPick(enabled)
}
