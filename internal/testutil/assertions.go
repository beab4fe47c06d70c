package testutil

import (
	"testing"

	"github.com/specialistvlad/pirago/internal/config"
	"github.com/specialistvlad/pirago/internal/functor"
	"github.com/stretchr/testify/require"
)

// AssertResolved checks that the run resolved the given role for target to
// file, and that the rendered output mentions it.
func AssertResolved(t *testing.T, result *HarnessResult, target config.Target, role functor.Role, file string) {
	t.Helper()
	require.NoError(t, result.Err, "logs:\n%s", result.LogOutput)

	for _, r := range result.Resolutions {
		if r.Target == target && r.Functor.Role == role {
			require.Equal(t, file, r.Functor.File, "unexpected %s functor for %+v", role, target)
			require.Contains(t, result.Output, file)
			return
		}
	}
	require.Failf(t, "functor not resolved", "no %s functor for %+v", role, target)
}
