package db

import (
	"database/sql"
	"fmt"
	"strings"

	"roster-scraper/models"

	_ "modernc.org/sqlite"
)

// DB wraps the database connection
type DB struct {
	conn *sql.DB
}

// NewDB opens (creating if needed) the SQLite database at path and
// ensures the schema exists.
func NewDB(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := &DB{conn: conn}

	// Initialize schema
	if err := db.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// GetConn returns the underlying database connection
func (db *DB) GetConn() *sql.DB {
	return db.conn
}

// initSchema creates the bio and stats tables if they don't exist. The
// column lists come from the schema declarations shared with the loader.
// The foreign key on stats is declarative only: SQLite leaves foreign
// key enforcement off by default and loading does not turn it on, so a
// stats row without a matching bio row still inserts.
func (db *DB) initSchema() error {
	if _, err := db.conn.Exec(createTableSQL("bio", models.BioSchema, "")); err != nil {
		return fmt.Errorf("failed to create bio table: %w", err)
	}

	fk := fmt.Sprintf("FOREIGN KEY (%s) REFERENCES bio (%s)",
		strings.Join(models.KeyColumns(models.StatsSchema), ", "),
		strings.Join(models.KeyColumns(models.BioSchema), ", "))
	if _, err := db.conn.Exec(createTableSQL("stats", models.StatsSchema, fk)); err != nil {
		return fmt.Errorf("failed to create stats table: %w", err)
	}

	return nil
}

// createTableSQL renders CREATE TABLE IF NOT EXISTS for one schema,
// appending extra as a trailing table constraint when non-empty.
func createTableSQL(table string, schema []models.FieldSpec, extra string) string {
	cols := make([]string, 0, len(schema)+2)
	for _, f := range schema {
		cols = append(cols, fmt.Sprintf("%s %s", f.Column, sqlType(f.Kind)))
	}
	cols = append(cols, fmt.Sprintf("PRIMARY KEY (%s)", strings.Join(models.KeyColumns(schema), ", ")))
	if extra != "" {
		cols = append(cols, extra)
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n\t%s\n)", table, strings.Join(cols, ",\n\t"))
}

func sqlType(kind models.FieldKind) string {
	switch kind {
	case models.KindInt:
		return "INTEGER"
	case models.KindFloat:
		return "REAL"
	default:
		return "TEXT"
	}
}
