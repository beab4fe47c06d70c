package integration_tests

import (
	"testing"

	"github.com/specialistvlad/pirago/internal/app"
	"github.com/specialistvlad/pirago/internal/testutil"
	"github.com/stretchr/testify/require"
)

// Test for: invalid HCL is rejected
func TestErrorHandling_InvalidHCL_IsRejected(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	invalidHCL := `
		build "/srv/bench" {
			item "amg" {
				builder = "/functors/amg"
		// Missing closing braces here
	`
	files := map[string]string{"main.hcl": invalidHCL}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, app.Config{ConfigPath: "main.hcl", List: true})

	// --- Assert ---
	require.Error(t, result.Err, "expected an error for invalid HCL syntax")
	require.Contains(t, result.Err.Error(), "failed to parse HCL file")
	require.Empty(t, result.Output)

	_, err := result.Registry.Instance()
	require.Error(t, err, "no manager should be registered after a failed load")
}
