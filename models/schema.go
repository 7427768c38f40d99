package models

// FieldKind is the semantic type a CSV cell is coerced to.
type FieldKind int

const (
	KindString FieldKind = iota
	KindInt
	KindFloat
)

// FieldSpec declares one stored column: its name, the CSV header it is
// read from, how its cells are coerced, and whether it takes part in
// the composite natural key. The loader and the database layer both
// consume these declarations, so the DDL, the insert statements and the
// coercion policy cannot drift apart.
type FieldSpec struct {
	Column string
	Header string
	Kind   FieldKind
	Key    bool
}

// BioSchema declares the bio table in column order.
var BioSchema = []FieldSpec{
	{Column: "Number", Header: "Number", Kind: KindInt},
	{Column: "Player", Header: "Player", Kind: KindString},
	{Column: "FirstName", Header: "FirstName", Kind: KindString, Key: true},
	{Column: "LastName", Header: "LastName", Kind: KindString, Key: true},
	{Column: "Position", Header: "Position", Kind: KindString},
	{Column: "Height", Header: "Height", Kind: KindString},
	{Column: "Weight", Header: "Weight", Kind: KindString},
	{Column: "Class", Header: "Class", Kind: KindString},
	{Column: "Hometown", Header: "Hometown", Kind: KindString},
	{Column: "HighSchool", Header: "HighSchool", Kind: KindString},
}

// StatsSchema declares the stats table in column order. PN_PIM is the
// one column whose CSV header differs from its stored name: the source
// header carries a hyphen, which column names do not allow.
var StatsSchema = []FieldSpec{
	{Column: "Number", Header: "Number", Kind: KindInt},
	{Column: "FirstName", Header: "FirstName", Kind: KindString, Key: true},
	{Column: "LastName", Header: "LastName", Kind: KindString, Key: true},
	{Column: "GP", Header: "GP", Kind: KindInt},
	{Column: "G", Header: "G", Kind: KindInt},
	{Column: "A", Header: "A", Kind: KindInt},
	{Column: "PTS", Header: "PTS", Kind: KindInt},
	{Column: "SH", Header: "SH", Kind: KindInt},
	{Column: "SH_PCT", Header: "SH_PCT", Kind: KindFloat},
	{Column: "plus_minus", Header: "plus_minus", Kind: KindInt},
	{Column: "PPG", Header: "PPG", Kind: KindInt},
	{Column: "SHG", Header: "SHG", Kind: KindInt},
	{Column: "FG", Header: "FG", Kind: KindInt},
	{Column: "GWG", Header: "GWG", Kind: KindInt},
	{Column: "GTG", Header: "GTG", Kind: KindInt},
	{Column: "OTG", Header: "OTG", Kind: KindInt},
	{Column: "HTG", Header: "HTG", Kind: KindInt},
	{Column: "UAG", Header: "UAG", Kind: KindInt},
	{Column: "PN_PIM", Header: "PN-PIM", Kind: KindString},
	{Column: "MIN", Header: "MIN", Kind: KindInt},
	{Column: "MAJ", Header: "MAJ", Kind: KindInt},
	{Column: "OTH", Header: "OTH", Kind: KindInt},
	{Column: "BLK", Header: "BLK", Kind: KindInt},
}

// Columns returns the stored column names of a schema in order.
func Columns(schema []FieldSpec) []string {
	cols := make([]string, len(schema))
	for i, f := range schema {
		cols[i] = f.Column
	}
	return cols
}

// KeyColumns returns the composite key columns of a schema in order.
func KeyColumns(schema []FieldSpec) []string {
	var keys []string
	for _, f := range schema {
		if f.Key {
			keys = append(keys, f.Column)
		}
	}
	return keys
}
