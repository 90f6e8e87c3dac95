package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"govista/domain/dataset"
)

// ReadWorkbook reads the first sheet of an Excel workbook into a typed row
// table. The first row is the header; data rows follow the same acceptance
// and coercion rules as CSV parsing, so downstream profiling is identical
// for both ingestion paths.
func ReadWorkbook(r io.Reader) (*dataset.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &dataset.Table{}, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	table := &dataset.Table{}
	if len(rows) == 0 {
		return table, nil
	}

	headers := make([]string, 0, len(rows[0]))
	for _, cell := range rows[0] {
		headers = append(headers, strings.TrimSpace(cell))
	}
	table.Headers = headers

	for _, cells := range rows[1:] {
		if len(cells) != len(headers) {
			table.DroppedRows++
			continue
		}
		row := make(dataset.Row, len(headers))
		for i, header := range headers {
			row[header] = coerceField(cells[i])
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
