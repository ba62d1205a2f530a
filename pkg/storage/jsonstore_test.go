package storage

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestStore(t *testing.T) *FileStore {
	t.Helper()

	store, err := NewFileStore(afero.NewMemMapFs(), "data", zap.NewNop())
	require.NoError(t, err)
	return store
}

func TestReadAllMissingCollection(t *testing.T) {
	store := newTestStore(t)

	var records []testRecord
	err := store.ReadAll(context.Background(), "ghosts", &records)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestWriteReadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	in := []testRecord{
		{ID: "1", Name: "first"},
		{ID: "2", Name: "second"},
		{ID: "3", Name: "third"},
	}

	require.NoError(t, store.WriteAll(ctx, "records", in))

	var out []testRecord
	require.NoError(t, store.ReadAll(ctx, "records", &out))
	assert.Equal(t, in, out, "round trip must preserve order and content")
}

func TestWriteAllOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.WriteAll(ctx, "records", []testRecord{{ID: "1", Name: "old"}}))
	require.NoError(t, store.WriteAll(ctx, "records", []testRecord{{ID: "2", Name: "new"}}))

	var out []testRecord
	require.NoError(t, store.ReadAll(ctx, "records", &out))
	require.Len(t, out, 1)
	assert.Equal(t, "2", out[0].ID)
}

func TestReadAllCorruptedFileFailsOpen(t *testing.T) {
	fs := afero.NewMemMapFs()
	store, err := NewFileStore(fs, "data", zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, afero.WriteFile(fs, "data/records.json", []byte("{not json"), 0o644))

	var out []testRecord
	require.NoError(t, store.ReadAll(context.Background(), "records", &out))
	assert.Empty(t, out, "corrupted collection reads as empty")
}

func TestWriteAllFailsClosed(t *testing.T) {
	fs := afero.NewMemMapFs()
	store, err := NewFileStore(fs, "data", zap.NewNop())
	require.NoError(t, err)

	store.fs = afero.NewReadOnlyFs(fs)

	err = store.WriteAll(context.Background(), "records", []testRecord{{ID: "1"}})
	assert.Error(t, err, "write failures must surface to the caller")
}
