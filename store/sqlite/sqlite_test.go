package sqlite_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/attendance-engine/state"
	"github.com/warp/attendance-engine/store/sqlite"
)

func TestBackend_SetGetRemove(t *testing.T) {
	backend, err := sqlite.New(":memory:")
	require.NoError(t, err)
	defer backend.Close()

	_, ok := backend.Get("missing")
	assert.False(t, ok)

	require.True(t, backend.Set("employees", []byte(`[{"id":1}]`)))
	got, ok := backend.Get("employees")
	require.True(t, ok)
	assert.Equal(t, []byte(`[{"id":1}]`), got)

	// Upsert replaces the row.
	require.True(t, backend.Set("employees", []byte(`[]`)))
	got, _ = backend.Get("employees")
	assert.Equal(t, []byte(`[]`), got)

	require.True(t, backend.Remove("employees"))
	_, ok = backend.Get("employees")
	assert.False(t, ok)

	// Removing an absent key still succeeds.
	assert.True(t, backend.Remove("employees"))
}

func TestBackend_Clear(t *testing.T) {
	backend, err := sqlite.New(":memory:")
	require.NoError(t, err)
	defer backend.Close()

	backend.Set("a", []byte(`1`))
	backend.Set("b", []byte(`2`))

	require.True(t, backend.Clear())
	_, ok := backend.Get("a")
	assert.False(t, ok)
	_, ok = backend.Get("b")
	assert.False(t, ok)
}

func TestBackend_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attendance.db")

	first, err := sqlite.New(path)
	require.NoError(t, err)
	require.True(t, first.Set("version", []byte(`"2.0"`)))
	require.NoError(t, first.Close())

	second, err := sqlite.New(path)
	require.NoError(t, err)
	defer second.Close()

	got, ok := second.Get("version")
	require.True(t, ok)
	assert.Equal(t, []byte(`"2.0"`), got)
}

func TestBackend_DrivesStateStore(t *testing.T) {
	// The whole stack over a real database file.
	path := filepath.Join(t.TempDir(), "attendance.db")

	backend, err := sqlite.New(path)
	require.NoError(t, err)
	defer backend.Close()

	store := state.New(backend)
	store.Load()

	st := store.State()
	assert.Len(t, st.Departments, 7)

	got, ok := backend.Get(state.KeyVersion)
	require.True(t, ok)
	assert.Equal(t, `"2.0"`, string(got))
}
