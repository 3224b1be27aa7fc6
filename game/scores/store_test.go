package scores

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, path string) (*FileStore, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	return NewFileStore(path, logger), &buf
}

func TestFileStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	store, _ := newTestStore(t, path)

	assert.Equal(t, path, store.Path())
	assert.Equal(t, Record{}, store.Load())

	record, improved := store.Load().RecordResult("hard", 4)
	require.True(t, improved)
	assert.True(t, store.Save(record))
	assert.Equal(t, Record{"hard": 4}, store.Load())
}

func TestFileStore_MissingFileIsQuiet(t *testing.T) {
	store, buf := newTestStore(t, filepath.Join(t.TempDir(), "scores.json"))

	var handled []*PersistenceError
	store.OnError(func(err *PersistenceError) { handled = append(handled, err) })

	assert.Equal(t, Record{}, store.Load())
	assert.Empty(t, handled)
	assert.NotContains(t, buf.String(), `"level":"warn"`)
}

func TestFileStore_DowngradesSaveFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "scores.json")
	store, buf := newTestStore(t, path)

	var handled []*PersistenceError
	store.OnError(func(err *PersistenceError) { handled = append(handled, err) })

	var saved bool
	assert.NotPanics(t, func() { saved = store.Save(Record{"easy": 2}) })
	assert.False(t, saved)
	require.Len(t, handled, 1)
	assert.Equal(t, OpSave, handled[0].Op)
	assert.Contains(t, buf.String(), "score persistence failed")
}

func TestFileStore_DowngradesCorruptLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	require.NoError(t, os.WriteFile(path, []byte("{{{{"), 0644))
	store, buf := newTestStore(t, path)

	var handled []*PersistenceError
	store.OnError(func(err *PersistenceError) { handled = append(handled, err) })

	assert.Equal(t, Record{}, store.Load())
	require.Len(t, handled, 1)
	assert.ErrorIs(t, handled[0], ErrCorruptRecord)
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestFileStore_Reset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	store, _ := newTestStore(t, path)

	require.NoError(t, store.Reset(), "absent file resets cleanly")
	require.True(t, store.Save(Record{"easy": 1}))
	require.NoError(t, store.Reset())
	assert.Equal(t, Record{}, store.Load())
}

func TestNewFileStore_DefaultPath(t *testing.T) {
	store := NewFileStore("", zerolog.Nop())
	assert.Equal(t, DefaultPath(), store.Path())
}
