package models

import "testing"

func TestColumnValues_CoverBioSchema(t *testing.T) {
	values := Bio{}.ColumnValues()
	if len(values) != len(BioSchema) {
		t.Errorf("Bio.ColumnValues() has %d entries, schema has %d", len(values), len(BioSchema))
	}
	for _, f := range BioSchema {
		if _, ok := values[f.Column]; !ok {
			t.Errorf("Bio.ColumnValues() is missing column %q", f.Column)
		}
	}
}

func TestColumnValues_CoverStatsSchema(t *testing.T) {
	values := Stats{}.ColumnValues()
	if len(values) != len(StatsSchema) {
		t.Errorf("Stats.ColumnValues() has %d entries, schema has %d", len(values), len(StatsSchema))
	}
	for _, f := range StatsSchema {
		if _, ok := values[f.Column]; !ok {
			t.Errorf("Stats.ColumnValues() is missing column %q", f.Column)
		}
	}
}

func TestStatsSchema_HeaderRename(t *testing.T) {
	for _, f := range StatsSchema {
		if f.Column == "PN_PIM" {
			if f.Header != "PN-PIM" {
				t.Errorf("PN_PIM header = %q, want %q", f.Header, "PN-PIM")
			}
			return
		}
	}
	t.Fatal("StatsSchema has no PN_PIM column")
}
