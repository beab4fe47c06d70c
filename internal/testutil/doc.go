// Package testutil holds the integration test harness shared by the
// packages under internal/integration_tests.
package testutil
