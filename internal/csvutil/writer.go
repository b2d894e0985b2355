// Package csvutil writes export data as CSV.
package csvutil

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// WriterOptions configures CSV writing behavior.
type WriterOptions struct {
	// Overwrite controls whether an existing file may be replaced.
	Overwrite bool
}

// WriteCSV writes items to a CSV file, header first. The formatter converts
// each item into one CSV record.
func WriteCSV[T any](filename string, header []string, items []T, formatter func(T) []string, opts WriterOptions) error {
	if !opts.Overwrite {
		if _, err := os.Stat(filename); err == nil {
			return fmt.Errorf("file %s already exists", filename)
		}
	}

	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	csvFile, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer func() { _ = csvFile.Close() }()

	writer := csv.NewWriter(csvFile)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, item := range items {
		record := formatter(item)
		if len(record) != len(header) {
			return fmt.Errorf("record has %d fields, header has %d", len(record), len(header))
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV file: %w", err)
	}
	return nil
}
