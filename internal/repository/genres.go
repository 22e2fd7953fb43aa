package repository

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
)

// genreTable describes one of the one-to-many genre tables.  Position
// keeps the order in which genres were submitted.
type genreTable struct {
	name string
	fk   string
}

var (
	venueGenres  = genreTable{name: "venue_genres", fk: "venue_id"}
	artistGenres = genreTable{name: "artist_genres", fk: "artist_id"}
)

// replace overwrites the genre list of one record.
func (t genreTable) replace(ctx context.Context, tx *sqlx.Tx, id uint64, genres []string) error {
	if err := t.deleteAll(ctx, tx, id); err != nil {
		return err
	}
	q := tx.Rebind("INSERT INTO " + t.name + " (" + t.fk + ", position, genre) VALUES (?, ?, ?)")
	pos := 0
	for _, g := range genres {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx, q, id, pos, g); err != nil {
			return err
		}
		pos++
	}
	return nil
}

func (t genreTable) deleteAll(ctx context.Context, tx *sqlx.Tx, id uint64) error {
	_, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM "+t.name+" WHERE "+t.fk+" = ?"), id)
	return err
}

// load returns the genres of one record in submission order.  The
// result is never nil so that it encodes as [] rather than null.
func (t genreTable) load(ctx context.Context, q sqlx.ExtContext, id uint64) ([]string, error) {
	out := []string{}
	query := q.Rebind("SELECT genre FROM " + t.name + " WHERE " + t.fk + " = ? ORDER BY position")
	if err := sqlx.SelectContext(ctx, q, &out, query, id); err != nil {
		return nil, err
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}
