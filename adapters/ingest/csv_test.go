package ingest

import (
	"testing"

	"govista/domain/dataset"
)

func TestParseCSV_BasicTable(t *testing.T) {
	raw := "name,price,stock\nwidget,9.99,12\ngadget,24.50,3\n"

	table := ParseCSV(raw)

	if got := len(table.Headers); got != 3 {
		t.Fatalf("expected 3 headers, got %d", got)
	}
	if got := table.RowCount(); got != 2 {
		t.Fatalf("expected 2 rows, got %d", got)
	}

	price, ok := table.Rows[0]["price"].Number()
	if !ok {
		t.Fatal("price should coerce to numeric")
	}
	if price != 9.99 {
		t.Errorf("expected 9.99, got %f", price)
	}

	name := table.Rows[0]["name"]
	if name.Type != dataset.ValueTypeString || name.Render() != "widget" {
		t.Errorf("expected string 'widget', got %v", name)
	}
}

func TestParseCSV_QuotedHeaders(t *testing.T) {
	table := ParseCSV("\"order id\",\"total\"\n1,2\n")

	want := []string{"order id", "total"}
	for i, header := range want {
		if table.Headers[i] != header {
			t.Errorf("header %d: expected %q, got %q", i, header, table.Headers[i])
		}
	}
}

func TestParseCSV_RaggedRowsDropped(t *testing.T) {
	raw := "a,b\n1,2\n1,2,3\nonly_one\n3,4\n"

	table := ParseCSV(raw)

	if got := table.RowCount(); got != 2 {
		t.Errorf("expected 2 surviving rows, got %d", got)
	}
	if table.DroppedRows != 2 {
		t.Errorf("expected 2 dropped rows, got %d", table.DroppedRows)
	}
}

func TestParseCSV_BlankLinesAndCRLF(t *testing.T) {
	raw := "a,b\r\n\r\n1,2\r\n   \r\n3,4\r\n"

	table := ParseCSV(raw)

	if got := table.RowCount(); got != 2 {
		t.Errorf("expected 2 rows, got %d", got)
	}
	if v, ok := table.Rows[1]["b"].Number(); !ok || v != 4 {
		t.Errorf("expected b=4, got %v ok=%v", v, ok)
	}
}

func TestParseCSV_EmptyFieldIsMissing(t *testing.T) {
	table := ParseCSV("a,b\n1,\n,2\n")

	if !table.Rows[0]["b"].IsMissing {
		t.Error("empty field should be missing")
	}
	if !table.Rows[1]["a"].IsMissing {
		t.Error("empty field should be missing")
	}
	if v, ok := table.Rows[1]["b"].Number(); !ok || v != 2 {
		t.Errorf("expected b=2, got %v", v)
	}
}

func TestParseCSV_WhitespaceTrimmed(t *testing.T) {
	table := ParseCSV("a,b\n  7.5 ,  east \n")

	if v, ok := table.Rows[0]["a"].Number(); !ok || v != 7.5 {
		t.Errorf("expected 7.5, got %v", v)
	}
	if got := table.Rows[0]["b"].Render(); got != "east" {
		t.Errorf("expected 'east', got %q", got)
	}
}

func TestParseCSV_NonFiniteStaysString(t *testing.T) {
	// strconv parses "NaN" and "Inf" as floats, but the Value layer
	// refuses non-finite numerics downstream.
	table := ParseCSV("a\nNaN\nInf\n")

	for i, row := range table.Rows {
		if _, ok := row["a"].Number(); ok {
			t.Errorf("row %d: non-finite value should not read as a number", i)
		}
	}
}

func TestParseCSV_EmptyInput(t *testing.T) {
	for _, raw := range []string{"", "\n\n", "   \n"} {
		table := ParseCSV(raw)
		if !table.IsEmpty() {
			t.Errorf("input %q should produce an empty table", raw)
		}
	}
}

func TestParseCSV_HeaderOnly(t *testing.T) {
	table := ParseCSV("a,b,c\n")

	if !table.IsEmpty() {
		t.Error("header-only input should produce an empty table")
	}
	if len(table.Headers) != 3 {
		t.Errorf("headers should still parse, got %d", len(table.Headers))
	}
}
