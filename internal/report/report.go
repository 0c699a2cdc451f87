// Package report renders the comparison tables of a validation run
// for the analyst: CSV, XLSX, PDF and bar-chart output under a plots
// directory.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/GbotemiB/PyPSA-EAPP/internal/compare"
)

// PlotsDir returns the plots directory under the output root.
func PlotsDir(outputDir string) string {
	return filepath.Join(outputDir, "plots")
}

// EnsureResultsDir creates the plots directory under the output root
// if it does not already exist.
func EnsureResultsDir(outputDir string) error {
	if err := os.MkdirAll(PlotsDir(outputDir), 0o755); err != nil {
		return fmt.Errorf("report: create results dir: %w", err)
	}
	return nil
}

// WriteCSV writes a merged comparison table: one category column
// followed by one column per source.
func WriteCSV(w io.Writer, m *compare.Merged) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	columns := m.Columns()
	header := append([]string{"Category"}, columns...)
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, label := range m.Labels() {
		row := make([]string, 0, len(header))
		row = append(row, label)
		for _, column := range columns {
			row = append(row, strconv.FormatFloat(m.Value(label, column), 'f', -1, 64))
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteCSVFile writes a merged comparison table to a file.
func WriteCSVFile(path string, m *compare.Merged) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}
	defer file.Close()
	if err := WriteCSV(file, m); err != nil {
		return fmt.Errorf("report: write %s: %w", path, err)
	}
	return nil
}
