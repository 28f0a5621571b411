package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/scenewalk/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("scenewalk", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
scenewalk - traversal queries over a declarative scene description.

Usage:
  scenewalk [options] [SCENE_PATH]

Arguments:
  SCENE_PATH
    Path to an .hcl scene description file.

Options:
`)
		flagSet.PrintDefaults()
	}

	sceneFlag := flagSet.String("scene", "", "Path to the scene description file.")
	sFlag := flagSet.String("s", "", "Path to the scene description file (shorthand).")
	modeFlag := flagSet.String("mode", "hierarchy", "Traversal mode. Options: 'hierarchy', 'connections', 'plugs', 'top'.")
	rootFlag := flagSet.String("root", "", "Start node for hierarchy, connections and plugs modes.")
	nodesFlag := flagSet.String("nodes", "", "Comma-separated input nodes for top mode.")
	typeFlag := flagSet.String("type", "", "Restrict yielded nodes to this entity type.")
	statusFlag := flagSet.String("status", "any", "Plug connectivity filter for plugs mode. Options: 'any', 'connected', 'sources', 'destinations', 'disconnected', 'no-sources', 'no-destinations'.")
	depthFirstFlag := flagSet.Bool("depth-first", false, "Traverse depth-first instead of breadth-first.")
	upstreamFlag := flagSet.Bool("upstream", false, "Traverse upstream (parents or sources) instead of downstream.")
	sparseFlag := flagSet.Bool("sparse", false, "Check the whole ancestor chain in top mode, not just parents.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *sceneFlag != "" {
		path = *sceneFlag
	} else if *sFlag != "" {
		path = *sFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Scene path determined.", "path", path)

	if path == "" {
		slog.Debug("No scene path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	var nodes []string
	for _, name := range strings.Split(*nodesFlag, ",") {
		if name = strings.TrimSpace(name); name != "" {
			nodes = append(nodes, name)
		}
	}

	config, err := app.NewConfig(app.Config{
		ScenePath:  path,
		Mode:       strings.ToLower(*modeFlag),
		Root:       *rootFlag,
		Nodes:      nodes,
		TypeFilter: *typeFlag,
		Status:     strings.ToLower(*statusFlag),
		DepthFirst: *depthFirstFlag,
		Upstream:   *upstreamFlag,
		Sparse:     *sparseFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
