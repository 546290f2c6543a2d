package db

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQLite string

//go:embed schema_mysql.sql
var schemaMySQL string

type DB struct {
	*sqlx.DB
	driver string
}

// IsMySQL reports whether the underlying engine is MySQL.
// Used where upsert syntax differs between dialects.
func (db *DB) IsMySQL() bool {
	return db.driver == "mysql"
}

// New opens a database from a DSN and applies the schema.
//
// MySQL DSNs look like user:password@tcp(host:port)/dbname; anything
// containing '@' is treated as MySQL. Everything else is a SQLite file
// path (or :memory:).
func New(dsn string) (*DB, error) {
	var conn *sqlx.DB
	var err error
	var driver string

	if strings.Contains(dsn, "@") {
		driver = "mysql"
		// Ownership checks rely on RowsAffected counting matched rows,
		// not changed rows, so a no-change update still reads as found.
		if !strings.Contains(dsn, "clientFoundRows") {
			if strings.Contains(dsn, "?") {
				dsn += "&clientFoundRows=true"
			} else {
				dsn += "?clientFoundRows=true"
			}
		}
		conn, err = sqlx.Open("mysql", dsn)
	} else {
		driver = "sqlite"
		if dsn != ":memory:" && !strings.HasPrefix(dsn, "file:") {
			dir := filepath.Dir(dsn)
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}

		// Apply pragmas via DSN so they hold for every pooled connection.
		// modernc.org/sqlite reads them as _pragma query parameters.
		if strings.Contains(dsn, "?") {
			dsn += "&"
		} else {
			dsn += "?"
		}
		pragmas := []string{
			"_pragma=foreign_keys(1)",
			"_pragma=journal_mode(WAL)",
			"_pragma=busy_timeout(30000)",
			"_pragma=synchronous(NORMAL)",
		}
		dsn += strings.Join(pragmas, "&")

		conn, err = sqlx.Open("sqlite", dsn)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if driver == "sqlite" {
		conn.SetMaxOpenConns(25)
	}

	db := &DB{DB: conn, driver: driver}
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

func (db *DB) initSchema() error {
	schema := schemaSQLite
	if db.IsMySQL() {
		schema = schemaMySQL
	}

	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ErrNoRows is re-exported so callers don't import database/sql for one check.
var ErrNoRows = sql.ErrNoRows
