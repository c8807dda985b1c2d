package config

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockFS serves config file content from memory.
type mockFS struct {
	home    string
	homeErr error
	files   map[string][]byte
	readErr error
}

func (m *mockFS) UserHomeDir() (string, error) {
	if m.homeErr != nil {
		return "", m.homeErr
	}
	return m.home, nil
}

func (m *mockFS) ReadFile(path string) ([]byte, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	data, ok := m.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	loader := NewLoaderWithFS(&mockFS{home: "/home/u"})

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadDefaultsWhenNoHomeDir(t *testing.T) {
	loader := NewLoaderWithFS(&mockFS{homeErr: errors.New("no home")})

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverlaysDotfile(t *testing.T) {
	loader := NewLoaderWithFS(&mockFS{
		home: "/home/u",
		files: map[string][]byte{
			"/home/u/.config/adminterm/config.json": []byte(
				`{"terminal": {"user": "ops", "locked": false}, "server": {"addr": "0.0.0.0:9000"}}`),
		},
	})

	cfg, err := loader.Load()
	require.NoError(t, err)

	// Present keys override, including explicit zero values.
	assert.Equal(t, "ops", cfg.Terminal.User)
	assert.False(t, cfg.Terminal.Locked)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Addr)

	// Missing keys keep their defaults.
	assert.Equal(t, "rustpress-prod", cfg.Terminal.Hostname)
	assert.Equal(t, 500, cfg.Terminal.HistoryLimit)
}

func TestLoadMalformedJSON(t *testing.T) {
	loader := NewLoaderWithFS(&mockFS{
		home: "/home/u",
		files: map[string][]byte{
			"/home/u/.config/adminterm/config.json": []byte(`{not json`),
		},
	})

	_, err := loader.Load()
	assert.Error(t, err)
}

func TestLoadInvalidConfig(t *testing.T) {
	loader := NewLoaderWithFS(&mockFS{
		home: "/home/u",
		files: map[string][]byte{
			"/home/u/.config/adminterm/config.json": []byte(`{"terminal": {"user": ""}}`),
		},
	})

	_, err := loader.Load()
	assert.Error(t, err)
}

func TestLoadPermissionError(t *testing.T) {
	loader := NewLoaderWithFS(&mockFS{
		home:    "/home/u",
		readErr: os.ErrPermission,
	})

	_, err := loader.Load()
	assert.Error(t, err)
}
