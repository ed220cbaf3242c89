package file

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(content), 0600))
}

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	dir, err := DefaultDir()
	if err != nil {
		t.Skip("Cannot determine config directory")
	}

	store, err := NewConfigStore("")
	if err != nil {
		t.Skipf("user config file is not loadable: %v", err)
	}

	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}

func TestNewConfigStore_DoesNotCreateDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")

	_, err := NewConfigStore(dir)
	require.NoError(t, err)

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestConfigStore_NestedKeys(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `
[render]
density = 600

[tools]
editor = "code --wait"

[workspace]
temp_dir = "/scratch"

[log]
verbose = true
`)

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 600, store.GetInt("render.density"))
	assert.Equal(t, "code --wait", store.GetString("tools.editor"))
	assert.Equal(t, "/scratch", store.GetString("workspace.temp_dir"))
	assert.True(t, store.GetBool("log.verbose"))
}

func TestConfigStore_WrongTypes(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `
[render]
density = "high"

[tools]
editor = 42

[log]
verbose = "yes"
`)

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 0, store.GetInt("render.density"))
	assert.Equal(t, "", store.GetString("tools.editor"))
	assert.False(t, store.GetBool("log.verbose"))
}

func TestConfigStore_Get_NotFound(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	val, ok := store.Get("nonexistent")
	assert.False(t, ok)
	assert.Nil(t, val)
	assert.Equal(t, 0, store.GetInt("nonexistent"))
	assert.Equal(t, "", store.GetString("nonexistent"))
	assert.False(t, store.GetBool("nonexistent"))
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, "")

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	_, ok := store.Get("render.density")
	assert.False(t, ok)
}

func TestNewConfigStore_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, "[render\ndensity = ")

	_, err := NewConfigStore(tmpDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.toml")
}

func TestConfigStore_Load_ReadFileError(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("directory permissions differ on Windows")
	}

	tmpDir := t.TempDir()
	// A directory where the file should be cannot be read as a file
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, configFileName), 0700))

	_, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
}

func TestConfigStore_Reload(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, "[render]\ndensity = 150\n")

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, 150, store.GetInt("render.density"))

	writeConfig(t, tmpDir, "[render]\ndensity = 450\n")
	require.NoError(t, store.Load())

	assert.Equal(t, 450, store.GetInt("render.density"))
}

func TestFlattenMap(t *testing.T) {
	in := map[string]any{
		"a": map[string]any{
			"b": 1,
			"c": map[string]any{"d": "x"},
		},
		"e": true,
	}

	got := flattenMap(in, "")

	assert.Equal(t, map[string]any{"a.b": 1, "a.c.d": "x", "e": true}, got)
}
