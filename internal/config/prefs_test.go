package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "prefs.yaml")
	base := Prefs{Debug: Debug{ShowFPS: true}}

	assert.Equal(t, base, LoadPrefs(path, base))

	saved := Prefs{Debug: Debug{ShowMemAlloc: true, ShowAvatar: true}}
	require.NoError(t, SavePrefs(path, saved))
	assert.Equal(t, saved, LoadPrefs(path, base))
}

func TestPrefsPartialFileKeepsBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("debug:\n  show_avatar: true\n"), 0o644))

	got := LoadPrefs(path, Prefs{Debug: Debug{ShowFPS: true}})
	assert.Equal(t, Debug{ShowFPS: true, ShowAvatar: true}, got.Debug)

	require.NoError(t, os.WriteFile(path, []byte("debug: [broken"), 0o644))
	assert.Equal(t, Prefs{}, LoadPrefs(path, Prefs{}))
}
