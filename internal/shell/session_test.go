package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustpress/adminterm/internal/config"
	"github.com/rustpress/adminterm/internal/vfs"
)

func TestNewSessionDefaults(t *testing.T) {
	cfg := config.DefaultConfig()
	s := NewSession(cfg, vfs.DefaultTree())

	assert.Equal(t, vfs.DefaultProjectRoot, s.Cwd)
	assert.True(t, s.Locked)
	assert.Equal(t, "admin", s.Env["USER"])
	assert.Equal(t, vfs.DefaultProjectRoot, s.Env["HOME"])

	// Project root plus its five immediate subdirectories.
	require.Len(t, s.AllowList, 6)
	assert.Equal(t, vfs.DefaultProjectRoot, s.AllowList[0])
	assert.Contains(t, s.AllowList, vfs.DefaultProjectRoot+"/crates")
}

func TestNewSessionMissingProjectRoot(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Terminal.ProjectRoot = "/does/not/exist"
	s := NewSession(cfg, vfs.NewDir("/"))

	assert.Equal(t, "/", s.Cwd)
	assert.Equal(t, []string{"/does/not/exist"}, s.AllowList)
}

func TestHistoryNavigation(t *testing.T) {
	i, s := newTestShell()

	i.Run(s, "first")
	i.Run(s, "second")
	i.Run(s, "third")

	// Backward, most recent first.
	entry, ok := s.HistoryPrev()
	require.True(t, ok)
	assert.Equal(t, "third", entry)

	entry, ok = s.HistoryPrev()
	require.True(t, ok)
	assert.Equal(t, "second", entry)

	entry, ok = s.HistoryPrev()
	require.True(t, ok)
	assert.Equal(t, "first", entry)

	// Past the oldest entry: exhausted.
	_, ok = s.HistoryPrev()
	assert.False(t, ok)

	// Forward again.
	entry, ok = s.HistoryNext()
	require.True(t, ok)
	assert.Equal(t, "second", entry)

	entry, ok = s.HistoryNext()
	require.True(t, ok)
	assert.Equal(t, "third", entry)

	// Stepping past the newest entry returns to a blank line.
	entry, ok = s.HistoryNext()
	assert.False(t, ok)
	assert.Equal(t, "", entry)
}

func TestHistoryBrowseResetsOnSubmit(t *testing.T) {
	i, s := newTestShell()

	i.Run(s, "pwd")
	i.Run(s, "whoami")

	entry, _ := s.HistoryPrev()
	assert.Equal(t, "whoami", entry)

	// Submitting a command leaves browse mode.
	i.Run(s, "hostname")
	entry, _ = s.HistoryPrev()
	assert.Equal(t, "hostname", entry)
}

func TestHistoryLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Terminal.HistoryLimit = 2
	i := testInterp(cfg)
	s := NewSession(cfg, vfs.DefaultTree())

	i.Run(s, "pwd")
	i.Run(s, "whoami")
	i.Run(s, "hostname")

	assert.Equal(t, []string{"whoami", "hostname"}, s.History)
}

func TestMayNavigateUnlocked(t *testing.T) {
	cfg := testConfig()
	s := NewSession(cfg, vfs.DefaultTree())
	assert.True(t, s.MayNavigate("/anywhere"))
}
