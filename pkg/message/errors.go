package message

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means no document exists for the id, or the stored
	// document is unreadable. Distinct from a backend outage.
	ErrNotFound = errors.New("message not found")

	// ErrEmptyMessage rejects a create whose message is empty after
	// trimming, before any hashing or storage work.
	ErrEmptyMessage = errors.New("message is empty")
)

// StorageError marks a transient backend fault on read or write. The
// store never retries; callers decide on retry policy and user-facing
// status.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
