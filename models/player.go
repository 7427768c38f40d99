package models

import "database/sql"

// BioHeaders is the fixed column order of the scraper output CSV.
var BioHeaders = []string{
	"Number",
	"Player",
	"FirstName",
	"LastName",
	"Position",
	"Height",
	"Weight",
	"Class",
	"Hometown",
	"HighSchool",
}

// Profile holds the raw string fields scraped from one player profile
// page, before any coercion. Missing fields stay empty.
type Profile struct {
	Number     string
	Player     string
	FirstName  string
	LastName   string
	Position   string
	Height     string
	Weight     string
	Class      string
	Hometown   string
	HighSchool string
}

// Row returns the profile values in BioHeaders order.
func (p Profile) Row() []string {
	return []string{
		p.Number,
		p.Player,
		p.FirstName,
		p.LastName,
		p.Position,
		p.Height,
		p.Weight,
		p.Class,
		p.Hometown,
		p.HighSchool,
	}
}

// Bio represents one coerced roster row stored in the bio table.
// FirstName and LastName together form the natural key.
type Bio struct {
	Number     sql.NullInt64
	Player     string
	FirstName  string
	LastName   string
	Position   string
	Height     string
	Weight     string
	Class      string
	Hometown   string
	HighSchool string
}

// ColumnValues returns the record's values keyed by stored column
// name, for inserts ordered by BioSchema.
func (b Bio) ColumnValues() map[string]any {
	return map[string]any{
		"Number":     b.Number,
		"Player":     b.Player,
		"FirstName":  b.FirstName,
		"LastName":   b.LastName,
		"Position":   b.Position,
		"Height":     b.Height,
		"Weight":     b.Weight,
		"Class":      b.Class,
		"Hometown":   b.Hometown,
		"HighSchool": b.HighSchool,
	}
}

// Stats represents one coerced season line stored in the stats table,
// keyed by the same FirstName+LastName pair as Bio.
type Stats struct {
	Number    sql.NullInt64
	FirstName string
	LastName  string
	GP        sql.NullInt64
	G         sql.NullInt64
	A         sql.NullInt64
	PTS       sql.NullInt64
	SH        sql.NullInt64
	SHPct     sql.NullFloat64 // stored as SH_PCT
	PlusMinus sql.NullInt64   // stored as plus_minus
	PPG       sql.NullInt64
	SHG       sql.NullInt64
	FG        sql.NullInt64
	GWG       sql.NullInt64
	GTG       sql.NullInt64
	OTG       sql.NullInt64
	HTG       sql.NullInt64
	UAG       sql.NullInt64
	PnPim     string // CSV header "PN-PIM"; kept as raw text, stored as PN_PIM
	MIN       sql.NullInt64
	MAJ       sql.NullInt64
	OTH       sql.NullInt64
	BLK       sql.NullInt64
}

// ColumnValues returns the record's values keyed by stored column
// name, for inserts ordered by StatsSchema.
func (st Stats) ColumnValues() map[string]any {
	return map[string]any{
		"Number":     st.Number,
		"FirstName":  st.FirstName,
		"LastName":   st.LastName,
		"GP":         st.GP,
		"G":          st.G,
		"A":          st.A,
		"PTS":        st.PTS,
		"SH":         st.SH,
		"SH_PCT":     st.SHPct,
		"plus_minus": st.PlusMinus,
		"PPG":        st.PPG,
		"SHG":        st.SHG,
		"FG":         st.FG,
		"GWG":        st.GWG,
		"GTG":        st.GTG,
		"OTG":        st.OTG,
		"HTG":        st.HTG,
		"UAG":        st.UAG,
		"PN_PIM":     st.PnPim,
		"MIN":        st.MIN,
		"MAJ":        st.MAJ,
		"OTH":        st.OTH,
		"BLK":        st.BLK,
	}
}
