package ingest

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"govista/domain/dataset"
)

func workbookBytes(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, cells := range rows {
		for j, cell := range cells {
			name, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue(sheet, name, cell); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return &buf
}

func TestReadWorkbook_BasicSheet(t *testing.T) {
	buf := workbookBytes(t, [][]interface{}{
		{"name", "price"},
		{"widget", 9.99},
		{"gadget", 24.5},
	})

	table, err := ReadWorkbook(buf)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if table.RowCount() != 2 {
		t.Fatalf("expected 2 rows, got %d", table.RowCount())
	}
	if table.Headers[1] != "price" {
		t.Errorf("unexpected headers %v", table.Headers)
	}

	price, ok := table.Rows[0]["price"].Number()
	if !ok || price != 9.99 {
		t.Errorf("expected 9.99, got %v ok=%v", price, ok)
	}
	if table.Rows[0]["name"].Type != dataset.ValueTypeString {
		t.Errorf("expected string name cell")
	}
}

func TestReadWorkbook_RaggedRowsDropped(t *testing.T) {
	buf := workbookBytes(t, [][]interface{}{
		{"a", "b"},
		{1, 2},
		{3}, // short row
		{5, 6},
	})

	table, err := ReadWorkbook(buf)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if table.RowCount() != 2 {
		t.Errorf("expected 2 rows, got %d", table.RowCount())
	}
	if table.DroppedRows != 1 {
		t.Errorf("expected 1 dropped row, got %d", table.DroppedRows)
	}
}

func TestReadWorkbook_NotAWorkbook(t *testing.T) {
	if _, err := ReadWorkbook(bytes.NewBufferString("plain text, not xlsx")); err == nil {
		t.Error("expected an error for non-workbook input")
	}
}
