package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Store interface untuk abstraction datastore
type Store interface {
	// ReadAll decodes the full collection into out, which must be a pointer
	// to a slice. A missing or unreadable collection yields an empty slice.
	ReadAll(ctx context.Context, collection string, out any) error
	// WriteAll overwrites the full collection with records.
	WriteAll(ctx context.Context, collection string, records any) error
}

// FileStore keeps each collection as a JSON array in <dir>/<collection>.json.
type FileStore struct {
	fs  afero.Fs
	dir string
	log *zap.Logger
}

func NewFileStore(fs afero.Fs, dir string, log *zap.Logger) (*FileStore, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}

	return &FileStore{
		fs:  fs,
		dir: dir,
		log: log,
	}, nil
}

// InitStore membuat file store di direktori data lokal
func InitStore(dir string, log *zap.Logger) (Store, error) {
	return NewFileStore(afero.NewOsFs(), dir, log)
}

func (fs *FileStore) path(collection string) string {
	return filepath.Join(fs.dir, collection+".json")
}

// ReadAll implements Store. Read failures are logged and degrade to an
// empty collection so one corrupted file cannot take the whole app down.
func (fs *FileStore) ReadAll(ctx context.Context, collection string, out any) error {
	data, err := afero.ReadFile(fs.fs, fs.path(collection))
	if err != nil {
		if !os.IsNotExist(err) {
			fs.log.Warn("Failed to read collection, treating as empty",
				zap.String("collection", collection),
				zap.Error(err),
			)
		}
		return json.Unmarshal([]byte("[]"), out)
	}

	if len(data) == 0 {
		return json.Unmarshal([]byte("[]"), out)
	}

	if err := json.Unmarshal(data, out); err != nil {
		fs.log.Warn("Failed to decode collection, treating as empty",
			zap.String("collection", collection),
			zap.Error(err),
		)
		return json.Unmarshal([]byte("[]"), out)
	}

	return nil
}

// WriteAll implements Store. The collection is written to a temp file and
// renamed into place so a reader never observes a partial array.
func (fs *FileStore) WriteAll(ctx context.Context, collection string, records any) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		fs.log.Error("Failed to encode collection",
			zap.String("collection", collection),
			zap.Error(err),
		)
		return fmt.Errorf("encode collection %s: %w", collection, err)
	}

	target := fs.path(collection)
	tmp := target + ".tmp"

	if err := afero.WriteFile(fs.fs, tmp, data, 0o644); err != nil {
		fs.log.Error("Failed to write collection",
			zap.String("collection", collection),
			zap.Error(err),
		)
		return fmt.Errorf("write collection %s: %w", collection, err)
	}

	if err := fs.fs.Rename(tmp, target); err != nil {
		fs.log.Error("Failed to replace collection file",
			zap.String("collection", collection),
			zap.Error(err),
		)
		return fmt.Errorf("replace collection %s: %w", collection, err)
	}

	return nil
}
