package repositories

import "errors"

var (
	// ErrRecordNotFound is wrapped by every lookup that matched no row.
	ErrRecordNotFound = errors.New("record not found")
	// ErrDuplicate is wrapped when a unique constraint rejects a write.
	ErrDuplicate = errors.New("duplicate record")
)
