package testsupport

import "testing"

// IsolateEnv points HOME at a fresh temp directory, clears spotifyeq
// environment overrides, and changes into another temp directory so neither a
// user nor a project config file is picked up. It returns the new HOME.
func IsolateEnv(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{"SPOTIFYEQ_LOG_LEVEL", "SPOTIFYEQ_LOG_FORMAT", "SPOTIFYEQ_OUTPUT_FORMAT"} {
		t.Setenv(key, "")
	}
	t.Chdir(t.TempDir())
	return home
}
