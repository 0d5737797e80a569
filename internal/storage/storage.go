// Package storage defines the Storage interface — a contract that any
// persistence backend must satisfy to work with this application.
//
// Handlers depend only on this interface, so swapping backends (the
// default JSON file, SQLite, an in-memory fake in tests) changes one
// line in main.go and zero handler code.
package storage

import (
	"errors"

	"github.com/aanand-mishra/student-registration/internal/types"
)

// ErrEmailRegistered is returned by InsertStudent when a record with
// the same email already exists. Handlers match it with errors.Is and
// translate it to a client error; anything else is a server error.
var ErrEmailRegistered = errors.New("email already registered")

// Storage is the persistence contract.
type Storage interface {
	// InsertStudent appends the record if and only if no stored record
	// has the same email (exact, case-sensitive match). The check and
	// the append are atomic with respect to other InsertStudent calls:
	// two concurrent registrations for one email must yield exactly one
	// stored record and one ErrEmailRegistered.
	InsertStudent(student types.Student) error

	// ListStudents returns every stored record in insertion order.
	// Returns an empty slice (not nil) when the store is empty.
	ListStudents() ([]types.Student, error)
}
