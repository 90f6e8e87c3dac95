// Package ingest turns raw uploads (CSV text, Excel workbooks) into typed
// row tables. The CSV convention is deliberately simple: comma-delimited,
// mandatory header row, a single layer of double quotes stripped from
// headers, no embedded-comma or escape handling. Rows whose field count
// does not match the header are silently dropped; the drop count is kept
// on the table as a diagnostic.
package ingest

import (
	"strconv"
	"strings"

	"govista/domain/dataset"
)

// ParseCSV parses raw delimited text into a typed row table. It is total:
// any input yields a table, and an empty table is the failure signal the
// caller must treat as a terminal ingestion error.
func ParseCSV(raw string) *dataset.Table {
	lines := make([]string, 0)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}

	table := &dataset.Table{}
	if len(lines) == 0 {
		return table
	}

	headers := make([]string, 0)
	for _, field := range strings.Split(lines[0], ",") {
		headers = append(headers, stripQuotes(strings.TrimSpace(field)))
	}
	table.Headers = headers

	for _, line := range lines[1:] {
		fields := strings.Split(line, ",")
		if len(fields) != len(headers) {
			table.DroppedRows++
			continue
		}
		row := make(dataset.Row, len(headers))
		for i, header := range headers {
			row[header] = coerceField(fields[i])
		}
		table.Rows = append(table.Rows, row)
	}

	return table
}

// stripQuotes removes one layer of surrounding double quotes
func stripQuotes(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}

// coerceField turns a raw field into a typed cell: a number when the whole
// trimmed field parses as a finite float, otherwise the trimmed string.
// Empty fields collapse to missing.
func coerceField(field string) dataset.Value {
	trimmed := strings.TrimSpace(field)
	if trimmed == "" {
		return dataset.NewMissingValue()
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return dataset.NewNumericValue(n)
	}
	return dataset.NewStringValue(trimmed)
}
