package db

import (
	"database/sql"
	"fmt"
	"strings"

	"roster-scraper/models"
)

// insertSQL renders the parameterized INSERT statement for one table.
func insertSQL(table string, schema []models.FieldSpec) string {
	cols := models.Columns(schema)
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(cols, ", "), placeholders)
}

// insertArgs orders a record's column values to match insertSQL, so
// the argument list cannot drift from the schema's column list.
func insertArgs(schema []models.FieldSpec, values map[string]any) []any {
	args := make([]any, len(schema))
	for i, f := range schema {
		args[i] = values[f.Column]
	}
	return args
}

// InsertBios inserts all rows in a single transaction. Any failure,
// including a primary key collision, rolls back the whole batch; a
// partial load is never committed.
func (db *DB) InsertBios(bios []models.Bio) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(insertSQL("bio", models.BioSchema))
	if err != nil {
		return fmt.Errorf("failed to prepare bio insert: %w", err)
	}
	defer stmt.Close()

	for _, b := range bios {
		_, err := stmt.Exec(insertArgs(models.BioSchema, b.ColumnValues())...)
		if err != nil {
			return fmt.Errorf("failed to insert bio %s %s: %w", b.FirstName, b.LastName, err)
		}
	}

	return tx.Commit()
}

// InsertStats inserts all rows in a single transaction with the same
// all-or-nothing semantics as InsertBios.
func (db *DB) InsertStats(stats []models.Stats) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(insertSQL("stats", models.StatsSchema))
	if err != nil {
		return fmt.Errorf("failed to prepare stats insert: %w", err)
	}
	defer stmt.Close()

	for _, st := range stats {
		_, err := stmt.Exec(insertArgs(models.StatsSchema, st.ColumnValues())...)
		if err != nil {
			return fmt.Errorf("failed to insert stats %s %s: %w", st.FirstName, st.LastName, err)
		}
	}

	return tx.Commit()
}

// GetBio returns one bio row by its composite key, or nil when absent.
func (db *DB) GetBio(firstName, lastName string) (*models.Bio, error) {
	var b models.Bio
	err := db.conn.QueryRow(`
		SELECT Number, Player, FirstName, LastName, Position, Height, Weight, Class, Hometown, HighSchool
		FROM bio
		WHERE FirstName = ? AND LastName = ?`, firstName, lastName).
		Scan(&b.Number, &b.Player, &b.FirstName, &b.LastName,
			&b.Position, &b.Height, &b.Weight, &b.Class, &b.Hometown, &b.HighSchool)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query bio: %w", err)
	}
	return &b, nil
}

// CountBios returns the number of rows in the bio table.
func (db *DB) CountBios() (int, error) {
	var n int
	err := db.conn.QueryRow(`SELECT COUNT(*) FROM bio`).Scan(&n)
	return n, err
}

// CountStats returns the number of rows in the stats table.
func (db *DB) CountStats() (int, error) {
	var n int
	err := db.conn.QueryRow(`SELECT COUNT(*) FROM stats`).Scan(&n)
	return n, err
}
