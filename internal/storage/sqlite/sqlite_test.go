package sqlitestorage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackforge/kartchar/internal/config"
	"github.com/trackforge/kartchar/internal/storage"
	"github.com/trackforge/kartchar/internal/storage/storagetest"
)

var _ storage.Backend = (*Backend)(nil)

func TestBackend_InMemory(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Backend {
		b, err := New(config.SQLiteConfig{}, zerolog.Nop())
		require.NoError(t, err)
		return b
	})
}

func TestBackend_File(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Backend {
		b, err := New(config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "kartchar.db")}, zerolog.Nop())
		require.NoError(t, err)
		return b
	})
}

func TestClose_DumpsInMemoryDB(t *testing.T) {
	dump := filepath.Join(t.TempDir(), "dump.db")
	b, err := New(config.SQLiteConfig{DumpPath: dump}, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, b.Init())
	require.NoError(t, b.Save("tux", storagetest.Snapshot(t, 225)))
	require.NoError(t, b.Close())

	reopened, err := New(config.SQLiteConfig{Path: dump}, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, reopened.Init())
	defer reopened.Close()

	got, err := reopened.Load("tux")
	require.NoError(t, err)
	assert.Equal(t, 225.0, got.Values["mass"])
}

func TestClose_FileBackendDoesNotDump(t *testing.T) {
	dir := t.TempDir()
	dump := filepath.Join(dir, "dump.db")
	b, err := New(config.SQLiteConfig{Path: filepath.Join(dir, "kartchar.db"), DumpPath: dump}, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, b.Init())
	require.NoError(t, b.Close())

	_, err = os.Stat(dump)
	assert.True(t, os.IsNotExist(err))
}
