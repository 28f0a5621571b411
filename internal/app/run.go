package app

import (
	"context"
	"fmt"

	"github.com/vk/scenewalk/internal/ctxlog"
	"github.com/vk/scenewalk/scene"
	"github.com/vk/scenewalk/walk"
)

// Run executes the traversal selected by the configuration and prints one
// result per line to the output writer.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "mode", cfg.Mode)

	var err error
	switch cfg.Mode {
	case ModeHierarchy:
		err = a.runHierarchy(cfg)
	case ModeConnections:
		err = a.runConnections(cfg)
	case ModePlugs:
		err = a.runPlugs(cfg)
	case ModeTop:
		err = a.runTop(cfg)
	default:
		err = fmt.Errorf("unknown mode %q", cfg.Mode)
	}
	if err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) runHierarchy(cfg *Config) error {
	root := a.scene.World()
	if cfg.Root != "" {
		n, ok := a.scene.Node(cfg.Root)
		if !ok {
			return fmt.Errorf("unknown root node %q", cfg.Root)
		}
		root = n
	}

	for n := range a.walker.Hierarchy(root, traversalOptions(cfg)...) {
		a.printNode(n)
	}
	return nil
}

func (a *App) runConnections(cfg *Config) error {
	root, ok := a.scene.Node(cfg.Root)
	if !ok {
		return fmt.Errorf("unknown root node %q", cfg.Root)
	}

	for n := range a.walker.Connections(root, traversalOptions(cfg)...) {
		a.printNode(n)
	}
	return nil
}

func (a *App) runPlugs(cfg *Config) error {
	n, ok := a.scene.Node(cfg.Root)
	if !ok {
		return fmt.Errorf("unknown root node %q", cfg.Root)
	}
	status, err := walk.ParseConnectionStatus(cfg.Status)
	if err != nil {
		return err
	}

	for p, err := range a.walker.Plugs(n, status) {
		if err != nil {
			return err
		}
		fmt.Fprintln(a.outW, a.scene.PlugName(p))
	}
	return nil
}

func (a *App) runTop(cfg *Config) error {
	nodes := make([]scene.Node, 0, len(cfg.Nodes))
	for _, name := range cfg.Nodes {
		n, ok := a.scene.Node(name)
		if !ok {
			return fmt.Errorf("unknown node %q", name)
		}
		nodes = append(nodes, n)
	}

	for n := range a.walker.TopNodes(nodes, cfg.Sparse) {
		a.printNode(n)
	}
	return nil
}

func (a *App) printNode(n scene.Node) {
	fmt.Fprintln(a.outW, a.scene.NodeName(n))
}

func traversalOptions(cfg *Config) []walk.Option {
	var opts []walk.Option
	if cfg.TypeFilter != "" {
		opts = append(opts, walk.WithType(scene.TypeTag(cfg.TypeFilter)))
	}
	if cfg.DepthFirst {
		opts = append(opts, walk.DepthFirst())
	}
	if cfg.Upstream {
		opts = append(opts, walk.Upstream())
	}
	return opts
}
