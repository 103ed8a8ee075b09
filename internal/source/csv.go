package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"

	"backtest-pdf-report/internal/table"
)

// parseCSV reads a header row followed by data rows, keeping header order.
// Quotes are parsed lazily and leading cell spaces trimmed.
func parseCSV(raw []byte) (table.Table, error) {
	r := gocsv.LazyCSVReader(bytes.NewReader(raw))
	var records [][]string
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return table.Table{}, fmt.Errorf("invalid csv: %w", err)
		}
		records = append(records, record)
	}
	if len(records) == 0 {
		return table.Table{}, nil
	}

	header := records[0]
	if len(header) > 0 {
		// Spreadsheet exports often start with a UTF-8 byte order mark.
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	return table.FromRows(header, records[1:]...), nil
}
