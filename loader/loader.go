package loader

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"roster-scraper/db"
	"roster-scraper/models"
)

// readRows reads a CSV file into one header-keyed map per row, in file
// order. Short rows and partial headers are tolerated: a column that is
// absent from the header simply never appears in the map.
func readRows(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(rec) {
				row[name] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// coerceInt parses a cell as an integer. Anything unparseable, including
// a missing cell, becomes an absent value; never zero, never an error.
func coerceInt(value string) sql.NullInt64 {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: n, Valid: true}
}

// coerceFloat is coerceInt for float cells.
func coerceFloat(value string) sql.NullFloat64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: f, Valid: true}
}

// coerceString trims a cell. A missing cell yields the empty string,
// never an absent value.
func coerceString(value string) string {
	return strings.TrimSpace(value)
}

// coerced holds one row's cells after per-field coercion, keyed by
// stored column name.
type coerced struct {
	ints    map[string]sql.NullInt64
	floats  map[string]sql.NullFloat64
	strings map[string]string
}

// coerceRow applies each field's declared kind to the cell under its
// source header. This is where a header rename such as PN-PIM takes
// effect: the cell is read by header, the result is keyed by column.
// Columns whose header is absent coerce like empty cells.
func coerceRow(schema []models.FieldSpec, row map[string]string) coerced {
	c := coerced{
		ints:    make(map[string]sql.NullInt64),
		floats:  make(map[string]sql.NullFloat64),
		strings: make(map[string]string),
	}
	for _, f := range schema {
		cell := row[f.Header]
		switch f.Kind {
		case models.KindInt:
			c.ints[f.Column] = coerceInt(cell)
		case models.KindFloat:
			c.floats[f.Column] = coerceFloat(cell)
		default:
			c.strings[f.Column] = coerceString(cell)
		}
	}
	return c
}

// ReadBios reads the bio CSV at path and returns one Bio per row, in
// file order. No database work happens here.
func ReadBios(path string) ([]models.Bio, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}

	bios := make([]models.Bio, 0, len(rows))
	for _, row := range rows {
		c := coerceRow(models.BioSchema, row)
		bios = append(bios, models.Bio{
			Number:     c.ints["Number"],
			Player:     c.strings["Player"],
			FirstName:  c.strings["FirstName"],
			LastName:   c.strings["LastName"],
			Position:   c.strings["Position"],
			Height:     c.strings["Height"],
			Weight:     c.strings["Weight"],
			Class:      c.strings["Class"],
			Hometown:   c.strings["Hometown"],
			HighSchool: c.strings["HighSchool"],
		})
	}
	return bios, nil
}

// ReadStats reads the stats CSV at path and returns one Stats per row,
// in file order. The header-to-column mapping, including the PN-PIM to
// PN_PIM rename, comes from models.StatsSchema.
func ReadStats(path string) ([]models.Stats, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}

	stats := make([]models.Stats, 0, len(rows))
	for _, row := range rows {
		c := coerceRow(models.StatsSchema, row)
		stats = append(stats, models.Stats{
			Number:    c.ints["Number"],
			FirstName: c.strings["FirstName"],
			LastName:  c.strings["LastName"],
			GP:        c.ints["GP"],
			G:         c.ints["G"],
			A:         c.ints["A"],
			PTS:       c.ints["PTS"],
			SH:        c.ints["SH"],
			SHPct:     c.floats["SH_PCT"],
			PlusMinus: c.ints["plus_minus"],
			PPG:       c.ints["PPG"],
			SHG:       c.ints["SHG"],
			FG:        c.ints["FG"],
			GWG:       c.ints["GWG"],
			GTG:       c.ints["GTG"],
			OTG:       c.ints["OTG"],
			HTG:       c.ints["HTG"],
			UAG:       c.ints["UAG"],
			PnPim:     c.strings["PN_PIM"],
			MIN:       c.ints["MIN"],
			MAJ:       c.ints["MAJ"],
			OTH:       c.ints["OTH"],
			BLK:       c.ints["BLK"],
		})
	}
	return stats, nil
}

// LoadResult reports how many rows each table received.
type LoadResult struct {
	BioRows   int
	StatsRows int
}

// RunLoad coerces the given CSV files and inserts them into database in
// two all-or-nothing batches, bio first. An empty path skips that
// table; the stats CSV is produced externally and may not exist yet.
func RunLoad(bioCSV, statsCSV string, database *db.DB) (*LoadResult, error) {
	res := &LoadResult{}

	if bioCSV != "" {
		bios, err := ReadBios(bioCSV)
		if err != nil {
			return nil, err
		}
		if err := database.InsertBios(bios); err != nil {
			return nil, fmt.Errorf("failed to load bios: %w", err)
		}
		res.BioRows = len(bios)
	}

	if statsCSV != "" {
		stats, err := ReadStats(statsCSV)
		if err != nil {
			return nil, err
		}
		if err := database.InsertStats(stats); err != nil {
			return nil, fmt.Errorf("failed to load stats: %w", err)
		}
		res.StatsRows = len(stats)
	}

	return res, nil
}
