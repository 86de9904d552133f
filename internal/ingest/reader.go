// Package ingest converts heterogeneous credential input files into a single
// flat, deduplicated corpus. Each input file is handled by a SourceReader
// variant selected once by file extension; unsupported files are skipped.
package ingest

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// SourceReader reads one input file into raw candidate lines. Implementations
// are stateless; selection happens once per file at ingestion time.
type SourceReader interface {
	// Read returns the candidate strings found in the file, in file order,
	// untrimmed and undeduplicated.
	Read(path string) ([]string, error)
	// Format returns the human-readable format name.
	Format() string
}

// ReaderFor selects the reader variant for a file path by extension.
// Returns nil for unsupported extensions.
func ReaderFor(path string) SourceReader {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		return PlainTextReader{}
	case ".csv":
		return DelimitedReader{}
	case ".xlsx":
		return SpreadsheetReader{}
	default:
		return nil
	}
}

// PlainTextReader reads one candidate per line from a plain text file.
type PlainTextReader struct{}

// Format returns "plain-text".
func (PlainTextReader) Format() string { return "plain-text" }

// Read returns every line of the file.
func (PlainTextReader) Read(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}

// DelimitedReader reads candidates from a comma-delimited table. Every cell
// is a candidate; rows with varying field counts are accepted.
type DelimitedReader struct{}

// Format returns "delimited-table".
func (DelimitedReader) Format() string { return "delimited-table" }

// Read returns every cell of the file.
func (DelimitedReader) Read(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	var cells []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		cells = append(cells, record...)
	}
	return cells, nil
}

// SpreadsheetReader reads candidates from an Excel workbook. Every cell of
// every sheet is a candidate.
type SpreadsheetReader struct{}

// Format returns "spreadsheet".
func (SpreadsheetReader) Format() string { return "spreadsheet" }

// Read returns every cell of every sheet in the workbook.
func (SpreadsheetReader) Read(path string) ([]string, error) {
	book, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer book.Close()

	var cells []string
	for _, sheet := range book.GetSheetList() {
		rows, err := book.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q of %s: %w", sheet, path, err)
		}
		for _, row := range rows {
			cells = append(cells, row...)
		}
	}
	return cells, nil
}
