package integration_tests

import (
	"testing"

	"github.com/specialistvlad/pirago/internal/app"
	"github.com/specialistvlad/pirago/internal/config"
	"github.com/specialistvlad/pirago/internal/functor"
	"github.com/specialistvlad/pirago/internal/testutil"
	"github.com/stretchr/testify/require"
)

// TestCLI_MergesHCL_FromDirectoryPath validates that the loader discovers
// and merges all HCL files from a given directory path.
func TestCLI_MergesHCL_FromDirectoryPath(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	hclFileA := `
		build "/srv/bench" {
			flavors = ["vanilla"]
			item "amg" {
				builder = "/functors/amg"
				runner  = "/functors/amg/run"
			}
		}
	`
	hclFileB := `
		build "/srv/bench" {
			item "lulesh" {
				builder = "/functors/lulesh"
				runner  = "/functors/lulesh/run"
				analysis {
					functors = "/functors/analysis"
				}
			}
		}
	`
	files := map[string]string{
		"functors/a.hcl": hclFileA,
		"functors/b.hcl": hclFileB,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, app.Config{
		ConfigPath: "functors",
		List:       true,
	})

	// --- Assert ---
	require.NoError(t, result.Err, "app.Run() returned an unexpected error")
	require.Len(t, result.Resolutions, 8, "two items, one flavor, four roles")

	lulesh := config.Target{Build: "/srv/bench", Item: "lulesh", Flavor: "vanilla"}
	testutil.AssertResolved(t, result, lulesh, functor.RoleAnalyze, "/functors/analysis/analyse_lulesh_vanilla.py")
	testutil.AssertResolved(t, result, lulesh, functor.RoleClean, "/functors/lulesh/clean_lulesh_vanilla.py")

	amg := config.Target{Build: "/srv/bench", Item: "amg", Flavor: "vanilla"}
	testutil.AssertResolved(t, result, amg, functor.RoleRun, "/functors/amg/run/runner_amg_vanilla.py")
}
