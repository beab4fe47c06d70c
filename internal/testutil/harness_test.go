package testutil

import (
	"strings"
	"testing"

	"github.com/specialistvlad/pirago/internal/app"
	"github.com/stretchr/testify/require"
)

func TestRunIntegrationTest_LoadsOnce(t *testing.T) {
	// --- Arrange ---
	files := map[string]string{"main.hcl": `
		build "/srv/bench" {
			flavors = ["vanilla", "ct"]
			item "amg" {
				builder = "/functors/amg"
				runner  = "/functors/amg/run"
			}
		}
	`}

	// --- Act ---
	result := RunIntegrationTest(t, files, app.Config{ConfigPath: "main.hcl", List: true, Role: "build"})

	// --- Assert ---
	require.NoError(t, result.Err)
	require.Equal(t, 1, strings.Count(result.LogOutput, "Functors resolved."), "the configuration must be resolved once")
	require.Equal(t, 1, strings.Count(result.LogOutput, "HCL loader started."), "the configuration must be loaded once")

	lines := strings.Split(strings.TrimSpace(result.Output), "\n")
	require.Len(t, lines, len(result.Resolutions)+1, "output rows must match the returned resolutions")
	for i, r := range result.Resolutions {
		require.Contains(t, lines[i+1], r.Functor.File)
	}
}
