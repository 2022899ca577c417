package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when an operation requiring a non-transactional
	// context is attempted while already inside a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when a transaction-specific operation is attempted
	// while not currently inside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrPageExists is returned by CreatePage when a page with the same ID
	// already exists, regardless of its owner.
	ErrPageExists = errors.New("page already exists")
	// ErrVersionMismatch is returned by UpdatePage when the stored record is
	// missing or its version differs from the one supplied by the caller.
	ErrVersionMismatch = errors.New("page version mismatch")
)
