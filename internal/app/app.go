package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/scenewalk/internal/ctxlog"
	"github.com/vk/scenewalk/memscene"
	"github.com/vk/scenewalk/scenehcl"
	"github.com/vk/scenewalk/walk"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	scene  *memscene.Scene
	walker *walk.Walker
}

// NewApp is the constructor for the main application. It loads the scene
// description and returns a fully initialized App instance with its own
// isolated logger.
func NewApp(ctx context.Context, outW io.Writer, errW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.")

	s, err := scenehcl.NewLoader().LoadFile(ctx, cfg.ScenePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene: %w", err)
	}
	logger.Debug("Scene loaded.", "path", cfg.ScenePath)

	return &App{
		outW:   outW,
		logger: logger,
		scene:  s,
		walker: walk.New(s, walk.WithLogger(logger)),
	}, nil
}

// Scene returns the loaded scene. This is primarily for testing.
func (a *App) Scene() *memscene.Scene {
	return a.scene
}
