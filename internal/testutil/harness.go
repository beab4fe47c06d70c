package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/pirago/internal/app"
	"github.com/specialistvlad/pirago/internal/registry"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output      string
	LogOutput   string
	Err         error
	Resolutions []app.Resolution
	Registry    *registry.Registry
}

// RunIntegrationTest provides a standardized harness for running integration tests
// using a default background context.
func RunIntegrationTest(t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, cfg)
}

// RunIntegrationTestWithContext writes files below a temporary root, points
// cfg.ConfigPath into it and runs the app with a private registry. A relative
// cfg.ConfigPath is taken relative to the root; an empty one means the root.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	cfg.ConfigPath = filepath.Join(tmpDir, cfg.ConfigPath)
	cfg.LogLevel = "debug"
	cfg.LogFormat = "text"
	appConfig, err := app.NewConfig(cfg)
	require.NoError(t, err)

	out := &SafeBuffer{}
	logBuffer := &SafeBuffer{}
	reg := registry.New()
	testApp := app.NewApp(out, logBuffer, appConfig, reg)

	// Resolve and Render are the two halves of App.Run; calling them
	// separately keeps the resolutions and the rendered output from one load.
	resolutions, runErr := testApp.Resolve(ctx)
	if runErr == nil {
		runErr = testApp.Render(resolutions)
	}

	if os.Getenv("PIRAGO_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		Output:      out.String(),
		LogOutput:   logBuffer.String(),
		Err:         runErr,
		Resolutions: resolutions,
		Registry:    reg,
	}
}
