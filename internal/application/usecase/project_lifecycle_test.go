package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tintbar/internal/application/port"
	"github.com/bnema/tintbar/internal/application/usecase"
	"github.com/bnema/tintbar/internal/domain/entity"
)

type fakeStore struct {
	colors   map[string]entity.Color
	autoPick bool
	saves    int
}

func newFakeStore() *fakeStore {
	return &fakeStore{colors: make(map[string]entity.Color)}
}

func (s *fakeStore) TryGet(_ context.Context, path string) (*entity.Color, error) {
	c, ok := s.colors[path]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *fakeStore) Save(_ context.Context, path string, color entity.Color, _ bool) error {
	s.colors[path] = color
	s.saves++
	return nil
}

func (s *fakeStore) Delete(_ context.Context, path string) error {
	delete(s.colors, path)
	return nil
}

func (s *fakeStore) All(_ context.Context) ([]*entity.ProjectColor, error) {
	out := make([]*entity.ProjectColor, 0, len(s.colors))
	for path, c := range s.colors {
		out = append(out, &entity.ProjectColor{Path: path, Color: c})
	}
	return out, nil
}

func (s *fakeStore) AutoPickEnabled() bool            { return s.autoPick }
func (s *fakeStore) SetAutoPickEnabled(on bool) error { s.autoPick = on; return nil }

// fakeGenerator hands out colors from a fixed sequence.
type fakeGenerator struct {
	sequence []entity.Color
	calls    int
	lastLum  entity.Luminosity
}

func (g *fakeGenerator) Generate(lum entity.Luminosity) entity.Color {
	g.lastLum = lum
	c := g.sequence[g.calls%len(g.sequence)]
	g.calls++
	return c
}

// fakeLister serves a mutable window set as ground truth.
type fakeLister struct {
	snap port.WindowSnapshot
}

func (l *fakeLister) Snapshot() port.WindowSnapshot { return l.snap }

type fakeTracker struct {
	path string
	open bool
}

func (t *fakeTracker) CurrentProjectPath() (string, bool) { return t.path, t.open }

type fakeScheme struct {
	dark bool
}

func (s *fakeScheme) Resolve() port.ColorSchemePreference {
	return port.ColorSchemePreference{PrefersDark: s.dark, Source: "test"}
}
func (s *fakeScheme) RegisterDetector(port.ColorSchemeDetector) {}
func (s *fakeScheme) Refresh() port.ColorSchemePreference       { return s.Resolve() }

type lifecycleFixture struct {
	registry  *usecase.WindowRegistry
	listener  *usecase.ProjectLifecycleListener
	factory   *fakeFactory
	store     *fakeStore
	generator *fakeGenerator
	lister    *fakeLister
	tracker   *fakeTracker
	scheme    *fakeScheme
}

func newLifecycleFixture(windows ...port.Window) *lifecycleFixture {
	factory := newFakeFactory()
	registry := usecase.NewWindowRegistry(factory)
	store := newFakeStore()
	generator := &fakeGenerator{sequence: []entity.Color{
		{R: 0xaa, G: 0x11, B: 0x22},
		{R: 0x33, G: 0xbb, B: 0x44},
	}}
	var primary port.Window
	if len(windows) > 0 {
		primary = windows[0]
	}
	lister := &fakeLister{snap: port.WindowSnapshot{All: windows, Primary: primary}}
	tracker := &fakeTracker{}
	scheme := &fakeScheme{}

	return &lifecycleFixture{
		registry:  registry,
		listener:  usecase.NewProjectLifecycleListener(registry, store, generator, lister, tracker, scheme),
		factory:   factory,
		store:     store,
		generator: generator,
		lister:    lister,
		tracker:   tracker,
		scheme:    scheme,
	}
}

func TestStoredColorWinsOverAutoPick(t *testing.T) {
	ctx := testContext()
	w1 := newFakeWindow(1, "main")
	fx := newLifecycleFixture(w1)

	stored := entity.Color{R: 0x10, G: 0x20, B: 0x30}
	fx.store.colors["/work/proj"] = stored
	fx.store.autoPick = true

	fx.listener.OnHostEvent(ctx, port.HostEventWindowCreated) // tracks w1
	fx.tracker.path, fx.tracker.open = "/work/proj", true
	fx.listener.OnHostEvent(ctx, port.HostEventProjectOpened)

	got, ok := fx.registry.ColorOf(w1)
	require.True(t, ok)
	assert.Equal(t, stored, got)
	// Auto-pick never overwrites a stored entry.
	assert.Equal(t, 0, fx.generator.calls)
	assert.Equal(t, 0, fx.store.saves)
}

func TestAutoPickGeneratesAndPersists(t *testing.T) {
	ctx := testContext()
	w1 := newFakeWindow(1, "main")
	fx := newLifecycleFixture(w1)
	fx.store.autoPick = true

	fx.listener.Refresh(ctx)
	fx.listener.OnProjectOpened(ctx, "/work/fresh")

	require.Equal(t, 1, fx.generator.calls)
	picked := fx.generator.sequence[0]
	got, _ := fx.registry.ColorOf(w1)
	assert.Equal(t, picked, got)
	assert.Equal(t, picked, fx.store.colors["/work/fresh"])

	// Reopening is a hit, not a fresh generation.
	fx.listener.OnProjectClosed(ctx)
	fx.listener.OnProjectOpened(ctx, "/work/fresh")
	assert.Equal(t, 1, fx.generator.calls)
	got, _ = fx.registry.ColorOf(w1)
	assert.Equal(t, picked, got)
}

func TestAutoPickFollowsThemeLuminosity(t *testing.T) {
	ctx := testContext()
	fx := newLifecycleFixture(newFakeWindow(1, "main"))
	fx.store.autoPick = true
	fx.scheme.dark = true

	fx.listener.OnProjectOpened(ctx, "/work/night")
	assert.Equal(t, entity.LuminosityDark, fx.generator.lastLum)

	fx.scheme.dark = false
	fx.listener.OnProjectOpened(ctx, "/work/day")
	assert.Equal(t, entity.LuminosityLight, fx.generator.lastLum)
}

func TestAutoPickDisabledLeavesDefault(t *testing.T) {
	ctx := testContext()
	w1 := newFakeWindow(1, "main")
	fx := newLifecycleFixture(w1)

	fx.listener.Refresh(ctx)
	fx.listener.OnProjectOpened(ctx, "/work/plain")

	got, ok := fx.registry.ColorOf(w1)
	require.True(t, ok)
	assert.Equal(t, entity.ColorDefault, got)
	assert.Nil(t, fx.listener.CurrentColor())
	assert.Equal(t, 0, fx.generator.calls)
}

func TestProjectCloseResetsEveryWindow(t *testing.T) {
	ctx := testContext()
	w1 := newFakeWindow(1, "main")
	w2 := newFakeWindow(2, "side")
	fx := newLifecycleFixture(w1, w2)
	fx.store.autoPick = true

	fx.listener.Refresh(ctx)
	fx.listener.OnProjectOpened(ctx, "/work/proj")

	fx.tracker.open = false
	fx.listener.OnHostEvent(ctx, port.HostEventProjectClosed)

	for _, w := range []port.Window{w1, w2} {
		got, ok := fx.registry.ColorOf(w)
		require.True(t, ok)
		assert.Equal(t, entity.ColorDefault, got)
	}
	_, open := fx.listener.OpenProject()
	assert.False(t, open)
	assert.Nil(t, fx.listener.CurrentColor())
}

func TestLateWindowPicksUpDecidedColor(t *testing.T) {
	ctx := testContext()
	w1 := newFakeWindow(1, "main")
	fx := newLifecycleFixture(w1)
	fx.store.autoPick = true

	fx.listener.Refresh(ctx)
	fx.listener.OnProjectOpened(ctx, "/work/proj")
	picked := fx.generator.sequence[0]
	existing := fx.factory.controllers[w1]
	appliesBefore := existing.applies

	// A window is created after the project opened; the host event
	// triggers a full reconcile and the newcomer gets the color.
	w2 := newFakeWindow(2, "undocked")
	fx.lister.snap = port.WindowSnapshot{All: []port.Window{w1, w2}, Primary: w1}
	fx.listener.OnHostEvent(ctx, port.HostEventWindowCreated)

	got, ok := fx.registry.ColorOf(w2)
	require.True(t, ok)
	assert.Equal(t, picked, got)
	// The earlier window was not repainted by the reconcile.
	assert.Equal(t, appliesBefore, existing.applies)
}

func TestOutOfOrderActivationForClosedWindow(t *testing.T) {
	ctx := testContext()
	w1 := newFakeWindow(1, "main")
	w2 := newFakeWindow(2, "gone")
	fx := newLifecycleFixture(w1, w2)

	fx.listener.Refresh(ctx)
	require.Equal(t, 2, fx.registry.TrackedCount())

	// The activation notification arrives after the window already
	// closed; ground truth wins over event semantics.
	fx.lister.snap = port.WindowSnapshot{All: []port.Window{w1}, Primary: w1}
	fx.listener.OnHostEvent(ctx, port.HostEventWindowActivated)

	assert.False(t, fx.registry.Tracked(w2))
	assert.Equal(t, 1, fx.registry.TrackedCount())
}

func TestApplyPickedOnlyAffectsOpenProject(t *testing.T) {
	ctx := testContext()
	w1 := newFakeWindow(1, "main")
	fx := newLifecycleFixture(w1)

	fx.listener.Refresh(ctx)
	fx.listener.OnProjectOpened(ctx, "/work/proj")

	other := entity.Color{R: 0x99, G: 0x99, B: 0x00}
	fx.listener.ApplyPicked(ctx, "/work/other", other)
	got, _ := fx.registry.ColorOf(w1)
	assert.Equal(t, entity.ColorDefault, got)

	mine := entity.Color{R: 0x12, G: 0x34, B: 0x56}
	fx.listener.ApplyPicked(ctx, "/work/proj", mine)
	got, _ = fx.registry.ColorOf(w1)
	assert.Equal(t, mine, got)

	fx.listener.ClearPicked(ctx, "/work/proj")
	got, _ = fx.registry.ColorOf(w1)
	assert.Equal(t, entity.ColorDefault, got)
	assert.Nil(t, fx.listener.CurrentColor())
}
