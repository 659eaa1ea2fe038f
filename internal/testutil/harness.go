package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/vk/scenec/internal/app"
	"github.com/vk/scenec/internal/ctxlog"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	Err       error
	App       *app.App
	Config    *app.Config
	Outputs   []*app.Output
	Root      string

	// Logs keeps receiving output from App after the run returns.
	Logs *SafeBuffer
}

// RunCompile writes files into a temporary project and compiles every scene
// in it. mutate, when non-nil, adjusts the configuration before the app is
// created; inputs are resolved against the project root.
func RunCompile(t *testing.T, files map[string]string, mutate func(cfg *app.Config)) *HarnessResult {
	t.Helper()
	return RunCompileWithContext(context.Background(), t, files, mutate)
}

// RunCompileWithContext is RunCompile with a caller-provided context.
func RunCompileWithContext(ctx context.Context, t *testing.T, files map[string]string, mutate func(cfg *app.Config)) *HarnessResult {
	t.Helper()

	root := WriteProject(t, files)

	cfg := app.DefaultConfig()
	cfg.ProjectRoot = root
	cfg.OutDir = t.TempDir()
	cfg.Inputs = []string{root}
	cfg.LogLevel = "debug"
	if mutate != nil {
		mutate(&cfg)
	}

	logBuffer := &SafeBuffer{}
	result := &HarnessResult{Root: root, Logs: logBuffer}

	appConfig, err := app.NewConfig(cfg)
	if err != nil {
		result.Err = fmt.Errorf("invalid configuration: %w", err)
		return result
	}
	result.Config = appConfig

	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		result.App = app.NewApp(logBuffer, appConfig)
		runCtx := ctxlog.WithLogger(ctx, result.App.Logger())
		if appConfig.ListDeps {
			result.Err = result.App.PrintDeps(runCtx)
			return
		}
		result.Outputs, result.Err = result.App.CompileAll(runCtx)
	}()
	if panicErr != nil {
		result.Err = fmt.Errorf("compile run panicked | %v", panicErr)
	}

	result.LogOutput = logBuffer.String()
	if os.Getenv("SCENEC_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), result.LogOutput)
	}
	return result
}
