package app

import (
	"errors"
	"fmt"
)

// Traversal modes accepted by the walk tool.
const (
	ModeHierarchy   = "hierarchy"
	ModeConnections = "connections"
	ModePlugs       = "plugs"
	ModeTop         = "top"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ScenePath string // hcl scene description
	Mode      string

	Root       string   // start node for hierarchy, connections and plugs
	Nodes      []string // input set for top mode
	TypeFilter string
	Status     string // plug connectivity filter for plugs mode
	DepthFirst bool
	Upstream   bool
	Sparse     bool // gap-tolerant ancestor matching in top mode

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ScenePath == "" {
		return nil, errors.New("ScenePath is a required configuration field and cannot be empty")
	}

	switch cfg.Mode {
	case ModeHierarchy:
		// Root is optional; defaults to the world root.
	case ModeConnections, ModePlugs:
		if cfg.Root == "" {
			return nil, fmt.Errorf("mode %q requires a root node", cfg.Mode)
		}
	case ModeTop:
		if len(cfg.Nodes) == 0 {
			return nil, fmt.Errorf("mode %q requires at least one input node", cfg.Mode)
		}
	default:
		return nil, fmt.Errorf("unknown mode %q", cfg.Mode)
	}

	return &cfg, nil
}
