package database

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Schema returns the CREATE statements for the given driver.
func Schema(driver string) (string, error) {
	b, err := schemaFS.ReadFile("schema/" + driver + ".sql")
	if err != nil {
		return "", fmt.Errorf("database: no schema for driver %q: %w", driver, err)
	}
	return string(b), nil
}

// Migrate creates the tables that do not exist yet.  Statements are
// executed one by one because the mysql driver rejects multi-statement
// strings unless the DSN opts in.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	schema, err := Schema(db.DriverName())
	if err != nil {
		return err
	}
	for _, stmt := range strings.Split(schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("database: migrate: %w", err)
		}
	}
	return nil
}
