package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates a required port was not wired.
	ErrNotImplemented = errors.New("not implemented")
)

// InitError reports that the store could not be opened, migrated, or seeded.
// The process must not start without a working store.
type InitError struct {
	Op  string
	Err error
}

func (e *InitError) Error() string {
	return "initialising store: " + e.Op + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error { return e.Err }

// QueryError reports a failed read: prepare, execute, scan, or iteration.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return "query " + e.Op + ": " + e.Err.Error()
}

func (e *QueryError) Unwrap() error { return e.Err }

// WriteError reports a failed insert, update, or delete,
// including foreign key violations.
type WriteError struct {
	Op  string
	Err error
}

func (e *WriteError) Error() string {
	return "write " + e.Op + ": " + e.Err.Error()
}

func (e *WriteError) Unwrap() error { return e.Err }

// IsInitError reports whether err carries an InitError.
func IsInitError(err error) bool {
	var target *InitError
	return errors.As(err, &target)
}

// IsQueryError reports whether err carries a QueryError.
func IsQueryError(err error) bool {
	var target *QueryError
	return errors.As(err, &target)
}

// IsWriteError reports whether err carries a WriteError.
func IsWriteError(err error) bool {
	var target *WriteError
	return errors.As(err, &target)
}
