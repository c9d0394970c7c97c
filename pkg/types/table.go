package types

import (
	"errors"
	"fmt"
)

// ID identifies a record within its entity kind. Integer-keyed kinds store
// the canonical decimal form ("7", never "07").
type ID string

// Table provides uniform CRUD operations for a single entity kind.
// Get, GetAll, Create and Update return any; callers type-assert to the
// concrete entity struct (Team, Player, Match, Tournament, SquadEntry).
type Table interface {
	// Name returns the table name (one of the *Table constants).
	Name() string

	// GetAll returns every live record, in file order.
	GetAll() ([]any, error)

	// Get retrieves the record with the given ID.
	// Returns ErrNotFound if no record exists with that ID.
	Get(id ID) (any, error)

	// Create inserts a record. When its ID is empty the next ID is allocated.
	// Returns ErrDuplicate if the ID is already present.
	Create(data any) (any, error)

	// Update replaces the fields of the record with the given ID; the ID is
	// kept. Returns ErrNotFound if no record exists with that ID.
	Update(id ID, data any) (any, error)

	// Delete removes the record and moves it to the trash.
	// Returns ErrNotFound if no record exists with that ID.
	Delete(id ID) error

	// Fetch returns the records whose columns equal every filter value.
	// An empty filter returns every record.
	Fetch(filter map[string]string) ([]any, error)

	// History returns the audit trail, oldest first.
	History() ([]HistoryEntry, error)

	// Trash returns the deleted records, oldest first.
	Trash() ([]TrashEntry, error)
}

// Record operation errors. Typed errors below wrap these so callers can
// branch with errors.Is and still read the details with errors.As.
var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicate    = errors.New("record already exists")
	ErrValidation   = errors.New("invalid field value")
	ErrPersistence  = errors.New("persistence failure")
	ErrInvalidData  = errors.New("invalid record data")
	ErrHistoryWrite = errors.New("history write failed")
	ErrTrashWrite   = errors.New("trash write failed")
)

// NotFoundError reports an ID absent from the table.
type NotFoundError struct {
	Kind string
	ID   ID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// DuplicateError reports a create whose ID is already present.
type DuplicateError struct {
	Kind string
	ID   ID
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Kind, e.ID)
}

// Is reports whether target is ErrDuplicate.
func (e *DuplicateError) Is(target error) bool { return target == ErrDuplicate }

// ValidationError reports a value that cannot be coerced to its declared
// type or that breaks a field constraint. Row is the 1-based data row
// (header excluded) when the error came from a file load, 0 otherwise.
type ValidationError struct {
	Field   string
	Value   string
	Row     int
	Message string
}

func (e *ValidationError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	if e.Value != "" {
		msg = fmt.Sprintf("%s (got %q)", msg, e.Value)
	}
	if e.Row > 0 {
		msg = fmt.Sprintf("row %d: %s", e.Row, msg)
	}
	return msg
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// PersistenceError reports a backing file that could not be read or written.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Is reports whether target is ErrPersistence.
func (e *PersistenceError) Is(target error) bool { return target == ErrPersistence }

// AuxWriteError reports a history or trash append that failed after the
// primary mutation was committed. It is a warning: the live table already
// reflects the operation.
type AuxWriteError struct {
	Target string // "history" or "trash"
	Kind   string
	ID     ID
	Err    error
}

func (e *AuxWriteError) Error() string {
	return fmt.Sprintf("%s %q committed but %s append failed: %v", e.Kind, e.ID, e.Target, e.Err)
}

func (e *AuxWriteError) Unwrap() error { return e.Err }

// Is matches ErrHistoryWrite or ErrTrashWrite depending on Target.
func (e *AuxWriteError) Is(target error) bool {
	switch e.Target {
	case AuxHistory:
		return target == ErrHistoryWrite
	case AuxTrash:
		return target == ErrTrashWrite
	}
	return false
}

// Aux write targets.
const (
	AuxHistory = "history"
	AuxTrash   = "trash"
)

// IsWarning reports whether err consists only of aux-write failures, that
// is, the operation itself succeeded.
func IsWarning(err error) bool {
	if err == nil {
		return false
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			if !IsWarning(e) {
				return false
			}
		}
		return true
	}
	var aux *AuxWriteError
	return errors.As(err, &aux)
}

// Backend lifecycle errors.
var (
	ErrBackendDetached = errors.New("backend is detached")
	ErrAlreadyAttached = errors.New("backend is already attached")
	ErrTableNotFound   = errors.New("table not found")
)
