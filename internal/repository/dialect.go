package repository

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

// Queries in this package are written with '?' placeholders and passed
// through Rebind, so the same text runs on mysql, sqlite3 and postgres.

// withTx runs fn inside a transaction.  The transaction is released on
// every exit path: rolled back when fn fails or panics, committed
// otherwise.  Errors come back classified under op.
func withTx(ctx context.Context, db *sqlx.DB, op string, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return classify(op, err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			err = classify(op, err)
			return
		}
		if cerr := tx.Commit(); cerr != nil {
			err = classify(op, cerr)
		}
	}()
	return fn(tx)
}

// insertID executes an INSERT and returns the generated id.  lib/pq does
// not implement LastInsertId, so postgres gets a RETURNING clause.
func insertID(ctx context.Context, tx *sqlx.Tx, query string, args ...any) (uint64, error) {
	if tx.DriverName() == "postgres" {
		var id uint64
		err := tx.QueryRowxContext(ctx, tx.Rebind(query+" RETURNING id"), args...).Scan(&id)
		return id, err
	}
	res, err := tx.ExecContext(ctx, tx.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// exists reports whether a row with the given id is present in table.
func exists(ctx context.Context, q sqlx.ExtContext, table string, id uint64) (bool, error) {
	var n int
	if err := sqlx.GetContext(ctx, q, &n, q.Rebind("SELECT COUNT(*) FROM "+table+" WHERE id = ?"), id); err != nil {
		return false, err
	}
	return n > 0, nil
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// likePattern turns a free-text term into a case-insensitive substring
// pattern for `LOWER(col) LIKE ? ESCAPE '!'`.  Wildcards typed by the
// user match literally.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(term))) + "%"
}

// now is the timestamp written into created_at/updated_at.  Seconds
// precision matches mysql DATETIME.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
