package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"

	"github.com/vk/scenec/internal/app"
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

func usageError(err error) *ExitError {
	return &ExitError{Code: 2, Message: err.Error()}
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
//
// Values are layered: defaults, then the YAML file named by --config, then
// the flags that were set explicitly on the command line.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := pflag.NewFlagSet("scenec", pflag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.SortFlags = false

	flagSet.Usage = func() {
		fmt.Fprint(output, `
scenec - Compiles GUI scene files by expanding templates and flattening them.

Usage:
  scenec [options] SCENE_PATH...

Arguments:
  SCENE_PATH
    A scene file (.gui, .gui.json, .gui.jsonc) or a directory of them.

Options:
`)
		flagSet.PrintDefaults()
	}

	defaults := app.DefaultConfig()
	configFlag := flagSet.StringP("config", "c", "", "YAML config file.")
	rootFlag := flagSet.StringP("root", "r", defaults.ProjectRoot, "Project root that scene paths are resolved against.")
	outFlag := flagSet.StringP("out", "o", defaults.OutDir, "Output directory.")
	editorFlag := flagSet.Bool("editor", false, "Preview mode: no extension rewriting, no validation.")
	formatFlag := flagSet.StringP("format", "f", defaults.Format, "Output format. Options: 'cbor', 'json' or 'yaml'.")
	compressFlag := flagSet.Bool("compress", false, "Compress output with zstd.")
	depsFlag := flagSet.Bool("deps", false, "Print the transitive build inputs and exit.")
	watchFlag := flagSet.BoolP("watch", "w", false, "Recompile when inputs change.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	workersFlag := flagSet.Int("workers", defaults.WorkerCount, "Number of scenes compiled concurrently.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError(err)
	}
	slog.Debug("Arguments parsed successfully.")

	cfg := defaults
	if *configFlag != "" {
		loaded, err := app.LoadConfigFile(*configFlag, cfg)
		if err != nil {
			return nil, false, usageError(err)
		}
		cfg = loaded
		slog.Debug("Config file loaded.", "path", *configFlag)
	}

	if flagSet.NArg() > 0 {
		cfg.Inputs = flagSet.Args()
	}
	if len(cfg.Inputs) == 0 {
		slog.Debug("No scene path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	set := func(name string, apply func()) {
		if flagSet.Changed(name) {
			apply()
		}
	}
	set("root", func() { cfg.ProjectRoot = *rootFlag })
	set("out", func() { cfg.OutDir = *outFlag })
	set("editor", func() { cfg.Editor = *editorFlag })
	set("format", func() { cfg.Format = *formatFlag })
	set("compress", func() { cfg.Compress = *compressFlag })
	set("deps", func() { cfg.ListDeps = *depsFlag })
	set("watch", func() { cfg.Watch = *watchFlag })
	set("log-level", func() { cfg.LogLevel = *logLevelFlag })
	set("log-format", func() { cfg.LogFormat = *logFormatFlag })
	set("workers", func() { cfg.WorkerCount = *workersFlag })

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, usageError(err)
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
