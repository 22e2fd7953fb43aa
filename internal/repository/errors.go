// Package repository defines error types that are reused across multiple
// repositories.  Lookups return the per-entity NotFound sentinels; every
// other store error is wrapped in a *Failure carrying a FailureKind so
// that handlers can show one generic message while logging what actually
// went wrong.
package repository

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// ErrVenueNotFound is returned when a venue cannot be found in the DB.
var ErrVenueNotFound = errors.New("venue not found")

// ErrArtistNotFound is returned when an artist cannot be found in the DB.
var ErrArtistNotFound = errors.New("artist not found")

// ErrInvalidReference is returned when a show points at an artist or a
// venue that does not exist.
var ErrInvalidReference = errors.New("referenced record does not exist")

// FailureKind groups store errors by how they happened, not by which
// statement produced them.
type FailureKind int

const (
	KindUnknown FailureKind = iota
	KindConstraint
	KindConnection
	KindNotFound
	// KindInvalid marks a submission rejected before it reached the
	// store: a field failed to parse or to validate.
	KindInvalid
)

func (k FailureKind) String() string {
	switch k {
	case KindConstraint:
		return "constraint_violation"
	case KindConnection:
		return "connection_failure"
	case KindNotFound:
		return "not_found"
	case KindInvalid:
		return "invalid_input"
	}
	return "unknown"
}

// Failure is the error returned by mutations when the unit of work was
// rolled back.  Op names the repository operation (e.g. "venue.create").
type Failure struct {
	Op   string
	Kind FailureKind
	Err  error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s: %v", f.Op, f.Kind, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

// classify wraps err into a *Failure unless it already is one.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var f *Failure
	if errors.As(err, &f) {
		return err
	}
	return &Failure{Op: op, Kind: KindOf(err), Err: err}
}

// KindOf reports the FailureKind of any error returned by this package
// or by one of the supported database drivers.
func KindOf(err error) FailureKind {
	if err == nil {
		return KindUnknown
	}
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	switch {
	case errors.Is(err, ErrVenueNotFound), errors.Is(err, ErrArtistNotFound), errors.Is(err, sql.ErrNoRows):
		return KindNotFound
	case errors.Is(err, ErrInvalidReference):
		return KindConstraint
	case errors.Is(err, driver.ErrBadConn), errors.Is(err, sql.ErrConnDone), errors.Is(err, mysql.ErrInvalidConn):
		return KindConnection
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case 1048, 1062, 1216, 1217, 1451, 1452, 3819: // not null, duplicate, foreign key, check
			return KindConstraint
		case 1040, 1045, 1053, 2002, 2003, 2006, 2013:
			return KindConnection
		}
		return KindUnknown
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case "23": // integrity_constraint_violation
			return KindConstraint
		case "08", "57": // connection_exception, operator_intervention
			return KindConnection
		}
		return KindUnknown
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code {
		case sqlite3.ErrConstraint:
			return KindConstraint
		case sqlite3.ErrCantOpen, sqlite3.ErrBusy, sqlite3.ErrLocked:
			return KindConnection
		}
		return KindUnknown
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindConnection
	}
	return KindUnknown
}

// IsNotFound reports whether err means the requested record is absent.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}
