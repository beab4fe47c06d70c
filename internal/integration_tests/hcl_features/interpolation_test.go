package integration_tests

import (
	"testing"

	"github.com/specialistvlad/pirago/internal/app"
	"github.com/specialistvlad/pirago/internal/config"
	"github.com/specialistvlad/pirago/internal/functor"
	"github.com/specialistvlad/pirago/internal/testutil"
	"github.com/stretchr/testify/require"
)

// Test for: build.dir, item.name and functions in item attributes
func TestHclFeatures_Interpolation(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	hclConfig := `
		build "/srv/bench/" {
			flavors = ["vanilla", "ct"]

			item "AMG" {
				flavors = ["ct"]
				builder = "${build.dir}/functors/${lower(item.name)}"
				runner  = join("/", [build.dir, "run", upper(item.name)])
				analysis {
					functors = format("%s/analysis/%s", build.dir, item.name)
				}
			}
		}
	`
	files := map[string]string{"main.hcl": hclConfig}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, app.Config{ConfigPath: "main.hcl", List: true})

	// --- Assert ---
	require.NoError(t, result.Err)
	require.Len(t, result.Resolutions, 4, "the item flavor list overrides the build one")

	target := config.Target{Build: "/srv/bench", Item: "AMG", Flavor: "ct"}
	testutil.AssertResolved(t, result, target, functor.RoleBuild, "/srv/bench/functors/amg/AMG_ct.py")
	testutil.AssertResolved(t, result, target, functor.RoleRun, "/srv/bench/run/AMG/runner_AMG_ct.py")
	testutil.AssertResolved(t, result, target, functor.RoleAnalyze, "/srv/bench/analysis/AMG/analyse_AMG_ct.py")
}
