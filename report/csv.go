package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harlens/harlens/lens"
)

// WriteCSV writes each report table to its own CSV file under dir, named
// <base>_<table>.csv. It returns the paths written.
func WriteCSV(r *lens.Report, dir, base string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create report directory: %w", err)
	}

	paths := make([]string, 0, 4)
	for _, table := range BuildTables(r) {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.csv", base, fileToken(table.Name)))
		if err := writeCSVFile(table, path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}

func writeCSVFile(table Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(table.Header); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", path, err)
	}
	for _, row := range table.Rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row of %s: %w", path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return nil
}

func fileToken(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}
