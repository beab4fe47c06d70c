package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/pirago/internal/config"
	"github.com/specialistvlad/pirago/internal/ctxlog"
	"github.com/specialistvlad/pirago/internal/functor"
	"github.com/specialistvlad/pirago/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
}

// Resolution is one resolved functor together with the target it was
// resolved for.
type Resolution struct {
	Target  config.Target
	Functor functor.Functor
}

// NewApp is the constructor for the main application. Results are written
// to outW, logs to logW. A nil registry means registry.Default.
func NewApp(outW, logW io.Writer, appConfig *Config, reg *registry.Registry) *App {
	if reg == nil {
		reg = registry.Default
	}
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:     outW,
		logger:   logger,
		config:   appConfig,
		registry: reg,
	}
}

// Run loads the configuration, resolves the selected functors and renders
// them to the output writer.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	resolutions, err := a.Resolve(ctx)
	if err != nil {
		return err
	}
	if err := a.Render(resolutions); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// Render writes resolutions to the output writer in the configured format.
func (a *App) Render(resolutions []Resolution) error {
	if err := render(a.outW, a.config.Output, resolutions); err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}
	return nil
}

// Resolve performs the load and resolution steps of Run without rendering.
func (a *App) Resolve(ctx context.Context) ([]Resolution, error) {
	ctx = ctxlog.With(ctxlog.WithLogger(ctx, a.logger), "config", a.config.ConfigPath)
	logger := ctxlog.FromContext(ctx)

	loader, err := selectLoader(a.config.Format, a.config.ConfigPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("Configuration loader selected.", "loader", fmt.Sprintf("%T", loader))

	model, err := loader.Load(ctx, a.config.ConfigPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("Configuration loaded.", "builds", len(model.Builds))

	var opts []functor.Option
	if a.config.Strict {
		opts = append(opts, functor.WithValidation())
	}
	mgr, err := a.registry.FromConfig(model, opts...)
	if err != nil {
		return nil, err
	}

	targets := []config.Target{{Build: a.config.Build, Item: a.config.Item, Flavor: a.config.Flavor}}
	if a.config.List {
		targets = model.Targets()
		logger.Debug("Listing all targets.", "count", len(targets))
	}

	var out []Resolution
	for _, t := range targets {
		for _, role := range a.config.roles() {
			f, err := mgr.Resolve(role, t.Build, t.Item, t.Flavor)
			if err != nil {
				return nil, err
			}
			out = append(out, Resolution{Target: t, Functor: f})
		}
	}

	logger.Info("Functors resolved.", "targets", len(targets), "functors", len(out))
	return out, nil
}
