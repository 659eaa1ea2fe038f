package testutil

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/scenec/internal/codec"
	"github.com/vk/scenec/internal/scene"
)

// AssertSceneCompiled checks the log output within a HarnessResult to
// confirm that the scene at projectPath was compiled and written.
func AssertSceneCompiled(t *testing.T, result *HarnessResult, projectPath string) {
	t.Helper()

	logFragment := fmt.Sprintf(`msg="Scene compiled." input=%s `, projectPath)
	require.True(t, strings.Contains(result.LogOutput, logFragment),
		"expected scene '%s' to be compiled, but it was not found in logs.\n--- LOGS ---\n%s", projectPath, result.LogOutput)
}

// ReadOutput decodes the compiled output of the scene at projectPath.
func ReadOutput(t *testing.T, result *HarnessResult, projectPath string) *scene.Scene {
	t.Helper()
	require.NotNil(t, result.App, "the run did not create an app")

	f, err := os.Open(result.App.OutputPath(projectPath))
	require.NoError(t, err)
	defer f.Close()

	s, err := codec.Decode(f, result.Config.CodecOptions())
	require.NoError(t, err)
	return s
}
