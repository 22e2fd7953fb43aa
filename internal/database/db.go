package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"

	"github.com/iliyamo/fyyur/internal/config"
)

// sqliteDriver replaces SQLite's lower(), which only folds ASCII, so that
// LOWER(name) LIKE ? matches "Café" the way mysql and postgres do.
var sqliteDriver = &sqlite3.SQLiteDriver{
	ConnectHook: func(conn *sqlite3.SQLiteConn) error {
		return conn.RegisterFunc("lower", strings.ToLower, true)
	},
}

// sqliteConnector opens connections through sqliteDriver while the pool
// keeps reporting the "sqlite3" driver name to sqlx.
type sqliteConnector struct {
	dsn string
}

func (c sqliteConnector) Connect(context.Context) (driver.Conn, error) {
	return sqliteDriver.Open(c.dsn)
}

func (c sqliteConnector) Driver() driver.Driver {
	return sqliteDriver
}

// Open connects to the configured store and verifies the connection.
func Open(cfg config.Database) (*sqlx.DB, error) {
	dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}
	var db *sqlx.DB
	if cfg.Driver == config.DriverSQLite {
		db = sqlx.NewDb(sql.OpenDB(sqliteConnector{dsn: dsn}), cfg.Driver)
	} else if db, err = sqlx.Open(cfg.Driver, dsn); err != nil {
		return nil, err
	}

	// Pool settings
	if cfg.Driver == config.DriverSQLite {
		// a single connection keeps :memory: databases alive and serializes writers
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// DSN builds the driver specific connection string.
func DSN(cfg config.Database) (string, error) {
	switch cfg.Driver {
	case config.DriverMySQL:
		auth := cfg.User
		if cfg.Pass != "" {
			auth = fmt.Sprintf("%s:%s", cfg.User, cfg.Pass)
		}
		// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
		return fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
			auth, cfg.Host, cfg.Port, cfg.Name), nil
	case config.DriverPostgres:
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			cfg.Host, cfg.Port, cfg.User, cfg.Pass, cfg.Name), nil
	case config.DriverSQLite:
		return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", cfg.Path), nil
	}
	return "", fmt.Errorf("database: unsupported driver %q", cfg.Driver)
}
