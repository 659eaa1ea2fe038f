package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/vk/scenec/internal/codec"
	"github.com/vk/scenec/internal/ctxlog"
	"github.com/vk/scenec/internal/engine"
	"github.com/vk/scenec/internal/sceneio"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader *sceneio.Loader
	engine *engine.Engine
	codec  codec.Options
}

// NewApp is the constructor for the main application. Logs and listings are
// written to outW.
func NewApp(outW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	loader := sceneio.NewLoader(cfg.ProjectRoot)
	opts := engine.Options{Compiling: !cfg.Editor}
	if opts.Compiling {
		opts.Exists = loader.Exists
	}

	logger.Debug("App initialized.",
		"root", cfg.ProjectRoot,
		"out", cfg.OutDir,
		"compiling", opts.Compiling,
		"format", cfg.Format,
		"compress", cfg.Compress,
	)
	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: loader,
		engine: engine.New(loader, opts),
		codec:  cfg.CodecOptions(),
	}
}

// Logger returns the application's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Run executes the mode selected by the configuration: dependency listing,
// a single compile of every input, or a compile followed by watching.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.ListDeps {
		return a.PrintDeps(ctx)
	}

	if _, err := a.CompileAll(ctx); err != nil {
		if !a.config.Watch {
			return err
		}
		a.logger.Error("Initial compile failed, watching for changes.", "error", err)
	}

	if a.config.Watch {
		return a.Watch(ctx)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
