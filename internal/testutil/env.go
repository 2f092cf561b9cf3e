package testutil

import (
	"os"
	"testing"
)

// WithEnv sets env var to val for the duration of the test scope.
// Returns a cleanup func to restore previous value.
func WithEnv(t *testing.T, key, val string) func() {
	t.Helper()
	old, had := os.LookupEnv(key)
	if val == "" {
		_ = os.Unsetenv(key)
	} else {
		_ = os.Setenv(key, val)
	}
	return func() {
		if had {
			_ = os.Setenv(key, old)
		} else {
			_ = os.Unsetenv(key)
		}
	}
}

// WithConfigHome redirects both XDG_CONFIG_HOME and HOME to dir so file
// stores resolve under a test-owned directory on every platform fallback.
func WithConfigHome(t *testing.T, dir string) func() {
	t.Helper()
	restoreXDG := WithEnv(t, "XDG_CONFIG_HOME", dir)
	restoreHome := WithEnv(t, "HOME", dir)
	return func() {
		restoreHome()
		restoreXDG()
	}
}
