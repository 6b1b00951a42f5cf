package repository

import "errors"

var (
	// ErrNotFound means the requested row does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConcurrencyConflict means a row staged for update was modified
	// or removed by another committed transaction since it was read.
	ErrConcurrencyConflict = errors.New("record was modified concurrently")

	// ErrConstraintViolation means the storage engine rejected a write
	// that breaks a declared uniqueness or reference constraint. It is
	// the authoritative backstop behind the guard pre-checks and must be
	// translated to a domain conflict before reaching a caller.
	ErrConstraintViolation = errors.New("storage constraint violated")
)
