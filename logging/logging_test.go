package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesToStateDir(t *testing.T) {
	state := t.TempDir()
	t.Setenv("XDG_STATE_HOME", state)
	xdg.Reload()

	Setup(2)
	logger := Component("test")
	logger.Debug().Msg("hello")

	data, err := os.ReadFile(filepath.Join(state, "namesprout", "namesprout.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), `"component":"test"`)
}

func TestSetupVerbosityLevels(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	xdg.Reload()

	// Must not panic at any verbosity.
	for v := 0; v <= 3; v++ {
		Setup(v)
	}
}
