package testutils

import (
	"os"
	"testing"
)

// Unsetenv unsets the environment variables for the duration of the test.
// Unlike t.Setenv(key, ""), the variables are absent, and any set by the code
// under test, e.g. from a .env file, are removed once the test finishes.
func Unsetenv(t *testing.T, keys ...string) {
	t.Helper()

	for _, key := range keys {
		// t.Setenv registers the cleanup restoring the original value.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
