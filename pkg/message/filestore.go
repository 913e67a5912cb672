// filestore.go — Filesystem-backed Store: one JSON document per id
// under <root>/messages/. Writes go through a temp file and rename so a
// reader never observes a partial document.
package message

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const messagePath = "messages"

// FileStore persists records as messages/<id>.json under a root
// directory. Concurrent Puts of the same record are safe: both derive
// the same id and write identical content, so the losing rename is
// harmless.
type FileStore struct {
	root string
}

// NewFileStore creates the messages directory under root if needed.
func NewFileStore(root string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Join(root, messagePath), 0o755); err != nil {
		return nil, &StorageError{Op: "init", Err: err}
	}
	return &FileStore{root: root}, nil
}

func (s *FileStore) Put(ctx context.Context, rec Record) (string, error) {
	rec = Normalize(rec)
	if rec.Message == "" {
		return "", ErrEmptyMessage
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id := DeriveID(rec)
	path := s.docPath(id)

	// Idempotent create: the document is a pure function of its id, so
	// an existing file needs no rewrite.
	if _, err := os.Stat(path); err == nil {
		return id, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", &StorageError{Op: "stat", Err: err}
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return "", &StorageError{Op: "encode", Err: err}
	}

	tmp := filepath.Join(s.root, messagePath, "."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", &StorageError{Op: "write", Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", &StorageError{Op: "write", Err: err}
	}

	return id, nil
}

func (s *FileStore) Get(ctx context.Context, id string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	if !validID(id) {
		return Record{}, ErrNotFound
	}

	data, err := os.ReadFile(s.docPath(id))
	if errors.Is(err, fs.ErrNotExist) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, &StorageError{Op: "read", Err: err}
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		// A corrupted document is indistinguishable from a missing one
		// to callers; it must not crash the render path.
		return Record{}, ErrNotFound
	}

	return rec, nil
}

func (s *FileStore) docPath(id string) string {
	return filepath.Join(s.root, messagePath, id+".json")
}

// validID guards the key path against traversal through caller-supplied
// ids.
func validID(id string) bool {
	if id == "" || len(id) > 64 {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-':
		default:
			return false
		}
	}
	return true
}
