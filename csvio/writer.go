package csvio

import (
	"encoding/csv"
	"fmt"
	"os"

	"roster-scraper/models"
)

// WriteBioCSV writes the scraped profiles to path with the fixed bio
// header row first, overwriting any existing file.
func WriteBioCSV(path string, rows []models.Profile) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(models.BioHeaders); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row.Row()); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return nil
}
