package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/tintbar/internal/application/port"
	"github.com/bnema/tintbar/internal/application/usecase"
	"github.com/bnema/tintbar/internal/infrastructure/config"
	"github.com/bnema/tintbar/internal/logging"
	"github.com/bnema/tintbar/internal/services"
	"github.com/bnema/tintbar/pkg/chrome"
)

var (
	runProject string
	runWindows int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the title-bar tinting engine",
	Long: `Run the engine that keeps window title bars in sync with the open
project's color. The engine reconciles against the host's window set on
every lifecycle event and reloads its configuration on change.

Without the native GTK backend compiled in, windows are simulated
in-process, which is useful for trying out colors and auto-pick.`,
	RunE: runEngine,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runProject, "project", "", "project path to open (default: current directory)")
	runCmd.Flags().IntVar(&runWindows, "windows", 1, "number of windows to open")
}

// staticTracker reports the project the engine was started for.
type staticTracker struct {
	path string
}

func (t *staticTracker) CurrentProjectPath() (string, bool) {
	return t.path, t.path != ""
}

func runEngine(_ *cobra.Command, _ []string) error {
	app := GetApp()

	var args []string
	if runProject != "" {
		args = []string{runProject}
	}
	project, err := projectArg(args)
	if err != nil {
		return err
	}

	baseCtx := logging.WithProject(app.Ctx(), project)
	log := logging.FromContext(baseCtx)

	session := chrome.NewSession()
	tracker := &staticTracker{path: project}

	registry := usecase.NewWindowRegistry(chrome.NewFactory())
	listener := usecase.NewProjectLifecycleListener(
		registry, app.Store, app.Generator, session, tracker, app.Scheme,
	)
	engine := services.NewEngine(baseCtx, registry, listener, app.Store)
	defer engine.Close()

	app.Config.OnChange(func(*config.Config) {
		app.Scheme.Refresh()
		engine.OnHostEvent(port.HostEventWindowActivated)
		log.Debug().Msg("config reloaded, reconcile queued")
	})
	if err := app.Config.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watching unavailable")
	}

	ctx, stop := signal.NotifyContext(baseCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().
		Bool("native", chrome.IsNativeAvailable()).
		Msg("engine starting")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return engine.Run(ctx)
	})
	g.Go(func() error {
		if runWindows < 1 {
			runWindows = 1
		}
		for i := 0; i < runWindows; i++ {
			title := fmt.Sprintf("%s (window %d)", project, i+1)
			session.OpenWindow(title)
			engine.OnHostEvent(port.HostEventWindowCreated)
		}
		engine.OnHostEvent(port.HostEventProjectOpened)

		<-ctx.Done()
		return ctx.Err()
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info().Msg("engine stopped")
	return nil
}
