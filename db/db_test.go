package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"roster-scraper/models"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	database, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewDB() error = %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func sampleBios() []models.Bio {
	return []models.Bio{
		{
			Number:    sql.NullInt64{Int64: 17, Valid: true},
			Player:    "Jane Doe",
			FirstName: "Jane",
			LastName:  "Doe",
			Position:  "Forward",
			Height:    "5-9",
			Weight:    "160 lbs",
			Class:     "Junior",
			Hometown:  "Erie, Pa.",
		},
		{
			Player:    "John Smith",
			FirstName: "John",
			LastName:  "Smith",
			Position:  "Defense",
		},
	}
}

func TestInsertBios_Roundtrip(t *testing.T) {
	database := newTestDB(t)

	if err := database.InsertBios(sampleBios()); err != nil {
		t.Fatalf("InsertBios() error = %v", err)
	}

	n, err := database.CountBios()
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("bio table has %d rows, want 2", n)
	}

	b, err := database.GetBio("Jane", "Doe")
	if err != nil {
		t.Fatalf("GetBio() error = %v", err)
	}
	if b == nil {
		t.Fatal("GetBio() returned nil for an inserted row")
	}
	if !b.Number.Valid || b.Number.Int64 != 17 {
		t.Errorf("Number = %+v, want 17", b.Number)
	}
	if b.Hometown != "Erie, Pa." {
		t.Errorf("Hometown = %q, want %q", b.Hometown, "Erie, Pa.")
	}

	// Jersey number absent in CSV stays absent in the store.
	b, err = database.GetBio("John", "Smith")
	if err != nil {
		t.Fatal(err)
	}
	if b == nil || b.Number.Valid {
		t.Errorf("John Smith Number = %+v, want absent", b)
	}

	missing, err := database.GetBio("Nobody", "Here")
	if err != nil {
		t.Fatal(err)
	}
	if missing != nil {
		t.Errorf("GetBio() for absent key = %+v, want nil", missing)
	}
}

func TestInsertBios_CollisionRollsBackBatch(t *testing.T) {
	database := newTestDB(t)

	bios := sampleBios()
	// Duplicate composite key inside one batch.
	bios = append(bios, models.Bio{Player: "Jane Doe", FirstName: "Jane", LastName: "Doe"})

	if err := database.InsertBios(bios); err == nil {
		t.Fatal("InsertBios() with duplicate key should fail")
	}

	n, err := database.CountBios()
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("bio table has %d rows after rollback, want 0", n)
	}
}

func TestInsertStats(t *testing.T) {
	database := newTestDB(t)

	if err := database.InsertBios(sampleBios()); err != nil {
		t.Fatal(err)
	}

	stats := []models.Stats{
		{
			Number:    sql.NullInt64{Int64: 17, Valid: true},
			FirstName: "Jane",
			LastName:  "Doe",
			GP:        sql.NullInt64{Int64: 24, Valid: true},
			G:         sql.NullInt64{Int64: 10, Valid: true},
			SHPct:     sql.NullFloat64{Float64: 12.5, Valid: true},
			PlusMinus: sql.NullInt64{Int64: -3, Valid: true},
			PnPim:     "5",
		},
	}
	if err := database.InsertStats(stats); err != nil {
		t.Fatalf("InsertStats() error = %v", err)
	}

	n, err := database.CountStats()
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("stats table has %d rows, want 1", n)
	}

	// Verify through a raw query that the CSV-only header name was stored
	// under its renamed column.
	var pnPim string
	err = database.GetConn().
		QueryRow(`SELECT PN_PIM FROM stats WHERE FirstName = ? AND LastName = ?`, "Jane", "Doe").
		Scan(&pnPim)
	if err != nil {
		t.Fatalf("failed to query PN_PIM: %v", err)
	}
	if pnPim != "5" {
		t.Errorf("PN_PIM = %q, want %q", pnPim, "5")
	}
}

func TestInsertStats_NoBioRowStillInserts(t *testing.T) {
	// The foreign key on stats is declarative; SQLite leaves enforcement
	// off by default, matching the load behavior this store replaces.
	database := newTestDB(t)

	stats := []models.Stats{{FirstName: "Or", LastName: "Phan"}}
	if err := database.InsertStats(stats); err != nil {
		t.Fatalf("InsertStats() without bio row error = %v", err)
	}
}

func TestNewDB_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	database, err := NewDB(path)
	if err != nil {
		t.Fatalf("first NewDB() error = %v", err)
	}
	if err := database.InsertBios(sampleBios()); err != nil {
		t.Fatal(err)
	}
	database.Close()

	// Reopening runs initSchema again; existing data must survive.
	database, err = NewDB(path)
	if err != nil {
		t.Fatalf("second NewDB() error = %v", err)
	}
	defer database.Close()

	n, err := database.CountBios()
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("bio table has %d rows after reopen, want 2", n)
	}
}
