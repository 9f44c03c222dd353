package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"howett.net/plist"
)

// EqualizerKey is the key Spotify uses for the band values.
const EqualizerKey = "com.spotify.equalizer.values"

// SpotifyPrefs returns a small preferences dictionary shaped like the one the
// Spotify desktop client writes, with a flat equalizer.
func SpotifyPrefs() map[string]any {
	return map[string]any{
		"app.last-launched-version":     "1.2.31",
		"com.spotify.equalizer.enabled": true,
		EqualizerKey:                    []any{0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0},
		"ui.zoom":                       int64(100),
	}
}

// WritePlist encodes values in the given plist format (for example
// plist.BinaryFormat) at path, creating parent directories as needed.
func WritePlist(t testing.TB, path string, values any, format int) {
	t.Helper()

	data, err := plist.Marshal(values, format)
	if err != nil {
		t.Fatalf("marshal plist for %s: %v", path, err)
	}
	WriteFile(t, path, data)
}

// WriteFile writes data to path, creating parent directories as needed.
func WriteFile(t testing.TB, path string, data []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
