package repository

import (
	stderrors "errors"

	"github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned when a requested record is not found in the repository.
// This abstracts away the underlying storage implementation (SQL, NoSQL, etc.)
// from the service layer.
var ErrNotFound = stderrors.New("record not found")

// ErrDuplicate is returned when a write violates a uniqueness rule, such as
// a taken username or a category name the user already has.
var ErrDuplicate = stderrors.New("duplicate record")

// translate maps driver errors onto repository errors
func translate(err error) error {
	var sqliteErr sqlite3.Error
	if stderrors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return ErrDuplicate
	}
	return err
}
