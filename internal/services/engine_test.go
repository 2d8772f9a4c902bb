package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tintbar/internal/application/port"
	"github.com/bnema/tintbar/internal/application/usecase"
	"github.com/bnema/tintbar/internal/domain/entity"
	"github.com/bnema/tintbar/internal/logging"
	"github.com/bnema/tintbar/internal/services"
	"github.com/bnema/tintbar/pkg/chrome"
)

func testContext() context.Context {
	logger := logging.New(logging.Config{Level: logging.ParseLevel("error"), Format: "json"})
	return logging.WithContext(context.Background(), logger)
}

type engineStore struct {
	colors   map[string]entity.Color
	autoPick bool
	saves    int
}

func newEngineStore() *engineStore {
	return &engineStore{colors: map[string]entity.Color{}}
}

func (s *engineStore) TryGet(_ context.Context, path string) (*entity.Color, error) {
	if c, ok := s.colors[entity.CleanProjectPath(path)]; ok {
		return &c, nil
	}
	return nil, nil
}

func (s *engineStore) Save(_ context.Context, path string, color entity.Color, _ bool) error {
	s.colors[entity.CleanProjectPath(path)] = color
	s.saves++
	return nil
}

func (s *engineStore) Delete(_ context.Context, path string) error {
	delete(s.colors, entity.CleanProjectPath(path))
	return nil
}

func (s *engineStore) All(_ context.Context) ([]*entity.ProjectColor, error) {
	return nil, nil
}

func (s *engineStore) AutoPickEnabled() bool           { return s.autoPick }
func (s *engineStore) SetAutoPickEnabled(v bool) error { s.autoPick = v; return nil }

type engineGenerator struct {
	color entity.Color
	calls int
}

func (g *engineGenerator) Generate(entity.Luminosity) entity.Color {
	g.calls++
	return g.color
}

type engineTracker struct {
	path string
	open bool
}

func (t *engineTracker) CurrentProjectPath() (string, bool) { return t.path, t.open }

type engineScheme struct{}

func (engineScheme) Resolve() port.ColorSchemePreference       { return port.ColorSchemePreference{} }
func (engineScheme) RegisterDetector(port.ColorSchemeDetector) {}
func (engineScheme) Refresh() port.ColorSchemePreference       { return port.ColorSchemePreference{} }

type engineFixture struct {
	engine    *services.Engine
	session   *chrome.Session
	store     *engineStore
	generator *engineGenerator
	tracker   *engineTracker
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()
	chrome.ResetStubsForTesting()

	session := chrome.NewSession()
	store := newEngineStore()
	generator := &engineGenerator{color: entity.Color{R: 0x11, G: 0x22, B: 0x33}}
	tracker := &engineTracker{}

	registry := usecase.NewWindowRegistry(chrome.NewFactory())
	listener := usecase.NewProjectLifecycleListener(
		registry, store, generator, session, tracker, engineScheme{},
	)
	engine := services.NewEngine(testContext(), registry, listener, store)
	t.Cleanup(engine.Close)

	return &engineFixture{
		engine:    engine,
		session:   session,
		store:     store,
		generator: generator,
		tracker:   tracker,
	}
}

func tintOf(t *testing.T, w *chrome.Window) (entity.Color, bool) {
	t.Helper()
	return chrome.TintForTesting(w)
}

func TestEngineAppliesStoredColorOnProjectOpen(t *testing.T) {
	fx := newEngineFixture(t)
	stored := entity.Color{R: 0xAA, G: 0x00, B: 0x55}
	fx.store.colors["/work/app"] = stored

	win := fx.session.OpenWindow("app")
	fx.tracker.path = "/work/app"
	fx.tracker.open = true

	fx.engine.OnHostEvent(port.HostEventProjectOpened)
	fx.engine.DrainForTesting()

	got, tinted := tintOf(t, win)
	require.True(t, tinted)
	assert.Equal(t, stored, got)
	assert.Zero(t, fx.generator.calls)
}

func TestEngineCoalescesHostEventBursts(t *testing.T) {
	fx := newEngineFixture(t)
	fx.store.autoPick = true
	fx.session.OpenWindow("app")
	fx.tracker.path = "/work/app"
	fx.tracker.open = true

	fx.engine.OnHostEvent(port.HostEventProjectOpened)
	fx.engine.OnHostEvent(port.HostEventProjectOpened)
	fx.engine.OnHostEvent(port.HostEventProjectOpened)
	fx.engine.DrainForTesting()

	assert.Equal(t, 1, fx.generator.calls, "burst should collapse into one open")
}

func TestEngineLateWindowPicksUpDecidedColor(t *testing.T) {
	fx := newEngineFixture(t)
	stored := entity.Color{R: 0x10, G: 0x20, B: 0x30}
	fx.store.colors["/work/app"] = stored
	fx.session.OpenWindow("main")
	fx.tracker.path = "/work/app"
	fx.tracker.open = true

	fx.engine.OnHostEvent(port.HostEventProjectOpened)
	fx.engine.DrainForTesting()

	late := fx.session.OpenWindow("detached editor")
	fx.engine.OnHostEvent(port.HostEventWindowCreated)
	fx.engine.DrainForTesting()

	got, tinted := tintOf(t, late)
	require.True(t, tinted)
	assert.Equal(t, stored, got)
}

func TestEnginePickColorPersistsAndRepaints(t *testing.T) {
	fx := newEngineFixture(t)
	win := fx.session.OpenWindow("app")
	fx.tracker.path = "/work/app"
	fx.tracker.open = true

	fx.engine.OnHostEvent(port.HostEventProjectOpened)
	fx.engine.DrainForTesting()

	picked := entity.Color{R: 0x00, G: 0x80, B: 0x40}
	require.NoError(t, fx.engine.PickColor(testContext(), "/work/app", picked))
	fx.engine.DrainForTesting()

	got, tinted := tintOf(t, win)
	require.True(t, tinted)
	assert.Equal(t, picked, got)
	assert.Equal(t, picked, fx.store.colors["/work/app"])
}

func TestEngineResetColorClearsTintAndEntry(t *testing.T) {
	fx := newEngineFixture(t)
	stored := entity.Color{R: 0xAA, G: 0xBB, B: 0xCC}
	fx.store.colors["/work/app"] = stored
	win := fx.session.OpenWindow("app")
	fx.tracker.path = "/work/app"
	fx.tracker.open = true

	fx.engine.OnHostEvent(port.HostEventProjectOpened)
	fx.engine.DrainForTesting()

	require.NoError(t, fx.engine.ResetColor(testContext(), "/work/app"))
	fx.engine.DrainForTesting()

	got, _ := tintOf(t, win)
	assert.True(t, got.IsDefault())
	assert.NotContains(t, fx.store.colors, "/work/app")
}

func TestEngineProjectClosedResetsWindows(t *testing.T) {
	fx := newEngineFixture(t)
	fx.store.colors["/work/app"] = entity.Color{R: 0x01}
	win := fx.session.OpenWindow("app")
	fx.tracker.path = "/work/app"
	fx.tracker.open = true

	fx.engine.OnHostEvent(port.HostEventProjectOpened)
	fx.engine.DrainForTesting()

	fx.tracker.open = false
	fx.engine.ProjectClosed()
	fx.engine.DrainForTesting()

	got, _ := tintOf(t, win)
	assert.True(t, got.IsDefault())
}

func TestEngineCurrentColorReflectsOpenProject(t *testing.T) {
	fx := newEngineFixture(t)
	stored := entity.Color{R: 0x2d, G: 0x6a, B: 0x4f}
	fx.store.colors["/work/app"] = stored
	fx.session.OpenWindow("app")
	fx.tracker.path = "/work/app"
	fx.tracker.open = true

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = fx.engine.Run(ctx) }()

	got, ok := fx.engine.CurrentColor()
	require.False(t, ok, "no color decided before the project opens")
	assert.True(t, got.IsDefault())

	fx.engine.OnHostEvent(port.HostEventProjectOpened)

	got, ok = fx.engine.CurrentColor()
	require.True(t, ok)
	assert.Equal(t, stored, got)
}

func TestEngineSetAutoPickFlipsFlag(t *testing.T) {
	fx := newEngineFixture(t)
	require.NoError(t, fx.engine.SetAutoPick(true))
	assert.True(t, fx.store.AutoPickEnabled())
	require.NoError(t, fx.engine.SetAutoPick(false))
	assert.False(t, fx.store.AutoPickEnabled())
}
