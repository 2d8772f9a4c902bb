package policy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tintbar/internal/domain/entity"
)

type memRepo struct {
	entries map[string]*entity.ProjectColor
}

func newMemRepo() *memRepo {
	return &memRepo{entries: make(map[string]*entity.ProjectColor)}
}

func (r *memRepo) Get(_ context.Context, path string) (*entity.ProjectColor, error) {
	return r.entries[entity.CleanProjectPath(path)], nil
}

func (r *memRepo) Set(_ context.Context, pc *entity.ProjectColor) error {
	r.entries[pc.Path] = pc
	return nil
}

func (r *memRepo) Delete(_ context.Context, path string) error {
	delete(r.entries, entity.CleanProjectPath(path))
	return nil
}

func (r *memRepo) GetAll(_ context.Context) ([]*entity.ProjectColor, error) {
	out := make([]*entity.ProjectColor, 0, len(r.entries))
	for _, pc := range r.entries {
		out = append(out, pc)
	}
	return out, nil
}

type memFlags struct {
	autoPick bool
}

func (f *memFlags) AutoPick() bool            { return f.autoPick }
func (f *memFlags) SetAutoPick(on bool) error { f.autoPick = on; return nil }

func TestStoreTryGetMissIsNil(t *testing.T) {
	store := NewStore(newMemRepo(), &memFlags{})

	c, err := store.TryGet(context.Background(), "/nope")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestStoreSaveThenTryGet(t *testing.T) {
	store := NewStore(newMemRepo(), &memFlags{})
	ctx := context.Background()

	want := entity.Color{R: 0x10, G: 0x20, B: 0x30}
	require.NoError(t, store.Save(ctx, "/work/proj", want, true))

	got, err := store.TryGet(ctx, "/work/proj")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)
}

func TestStoreFlagRoundTrip(t *testing.T) {
	flags := &memFlags{}
	store := NewStore(newMemRepo(), flags)

	assert.False(t, store.AutoPickEnabled())
	require.NoError(t, store.SetAutoPickEnabled(true))
	assert.True(t, store.AutoPickEnabled())
	assert.True(t, flags.autoPick)
}
