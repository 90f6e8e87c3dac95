package viz

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"govista/adapters/ingest"
	"govista/domain/dataset"
)

func chart(kind dataset.ChartKind, x string, ys ...string) dataset.ChartConfig {
	return dataset.ChartConfig{Kind: kind, XAxis: x, YAxes: ys}
}

func TestPrepare_EmptyInputs(t *testing.T) {
	if got := Prepare(nil, chart(dataset.ChartBar, "x")); len(got) != 0 {
		t.Errorf("nil table should yield an empty series, got %d", len(got))
	}

	table := ingest.ParseCSV("x,y\n1,2\n")
	if got := Prepare(table, chart(dataset.ChartBar, "")); len(got) != 0 {
		t.Errorf("missing x axis should yield an empty series, got %d", len(got))
	}
}

func TestPrepare_Idempotent(t *testing.T) {
	table := ingest.ParseCSV("region,price\nEast,10\nWest,20\nEast,30\n")
	config := chart(dataset.ChartBar, "region", "price")

	first := Prepare(table, config)
	second := Prepare(table, config)
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs must yield identical series")
	}
}

func TestPrepareScatter_FiltersAndCaps(t *testing.T) {
	raw := "x,y\n"
	for i := 0; i < 600; i++ {
		raw += fmt.Sprintf("%d,%d\n", i, i*2)
	}
	raw += "text,1\n5," // text x and missing y rows

	table := ingest.ParseCSV(raw)
	series := Prepare(table, chart(dataset.ChartScatter, "x", "y"))

	if len(series) != 500 {
		t.Fatalf("expected the 500-row cap, got %d", len(series))
	}
	if series[0]["x"] != 0.0 || series[0]["y"] != 0.0 {
		t.Errorf("cap keeps the first rows, got %+v", series[0])
	}
}

func TestPrepareScatter_DropsIncompletePoints(t *testing.T) {
	table := ingest.ParseCSV("x,y\n1,2\n3,\nfour,5\n6,7\n")

	series := Prepare(table, chart(dataset.ChartScatter, "x", "y"))
	if len(series) != 2 {
		t.Errorf("expected 2 complete points, got %d", len(series))
	}
}

func TestPreparePie_TopSlicesByFrequency(t *testing.T) {
	raw := "kind\n"
	for i := 0; i < 12; i++ {
		for j := 0; j <= i; j++ {
			raw += fmt.Sprintf("label-%d\n", i)
		}
	}
	table := ingest.ParseCSV(raw)

	series := Prepare(table, chart(dataset.ChartPie, "kind"))
	if len(series) != 10 {
		t.Fatalf("expected 10 slices, got %d", len(series))
	}
	if series[0]["name"] != "label-11" || series[0]["value"] != 12 {
		t.Errorf("largest slice first, got %+v", series[0])
	}
	for _, datum := range series {
		if datum["name"] == "label-0" || datum["name"] == "label-1" {
			t.Errorf("smallest slices should be cut, found %v", datum["name"])
		}
	}
}

func TestPreparePie_SkipsNullishLabels(t *testing.T) {
	table := ingest.ParseCSV("kind\na\nnull\nundefined\n\na\n")

	series := Prepare(table, chart(dataset.ChartPie, "kind"))
	if len(series) != 1 {
		t.Fatalf("expected one slice, got %d", len(series))
	}
	if series[0]["name"] != "a" || series[0]["value"] != 2 {
		t.Errorf("unexpected slice %+v", series[0])
	}
}

func TestPrepareAggregated_GroupMeans(t *testing.T) {
	table := ingest.ParseCSV("region,price\nEast,10\nWest,20\nEast,20\nWest,40\n")

	series := Prepare(table, chart(dataset.ChartBar, "region", "price"))
	if len(series) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(series))
	}

	byRegion := make(map[string]float64)
	for _, datum := range series {
		byRegion[datum["region"].(string)] = datum["price"].(float64)
	}
	if byRegion["East"] != 15 {
		t.Errorf("East mean: expected 15, got %f", byRegion["East"])
	}
	if byRegion["West"] != 30 {
		t.Errorf("West mean: expected 30, got %f", byRegion["West"])
	}
}

func TestPrepareAggregated_CountFallbacks(t *testing.T) {
	table := ingest.ParseCSV("region,tag\nEast,a\nEast,b\nWest,c\n")

	// Non-numeric y falls back to the group size.
	series := Prepare(table, chart(dataset.ChartBar, "region", "tag"))
	byRegion := make(map[string]int)
	for _, datum := range series {
		byRegion[datum["region"].(string)] = datum["tag"].(int)
	}
	if byRegion["East"] != 2 || byRegion["West"] != 1 {
		t.Errorf("expected counts 2/1, got %+v", byRegion)
	}

	// No y at all reports a count column.
	series = Prepare(table, chart(dataset.ChartBar, "region"))
	for _, datum := range series {
		if _, ok := datum["count"]; !ok {
			t.Errorf("expected a count key, got %+v", datum)
		}
	}
}

func TestPrepareAggregated_DropsEmptyX(t *testing.T) {
	table := ingest.ParseCSV("region,price\nEast,10\n,20\nWest,30\n")

	series := Prepare(table, chart(dataset.ChartBar, "region", "price"))
	if len(series) != 2 {
		t.Errorf("rows with empty x must be dropped, got %d groups", len(series))
	}
}

func TestPrepareAggregated_NumericBinning(t *testing.T) {
	raw := "age,score\n"
	for i := 0; i < 50; i++ {
		raw += fmt.Sprintf("%d,%d\n", i, i*3)
	}
	table := ingest.ParseCSV(raw)

	series := Prepare(table, chart(dataset.ChartBar, "age", "score"))
	if len(series) > 10 {
		t.Fatalf("binning should collapse to at most 10 groups, got %d", len(series))
	}
	for _, datum := range series {
		label := datum["age"].(string)
		if !strings.Contains(label, " - ") {
			t.Errorf("expected a range label, got %q", label)
		}
	}

	// Bins sort in ascending numeric order by their leading bound.
	first := series[0]["age"].(string)
	last := series[len(series)-1]["age"].(string)
	if CompareLabels(first, last) >= 0 {
		t.Errorf("bins out of order: %q before %q", first, last)
	}
}

func TestPrepareAggregated_LowCardinalityNumericStaysUnbinned(t *testing.T) {
	table := ingest.ParseCSV("size,price\n1,10\n2,20\n3,30\n1,40\n")

	series := Prepare(table, chart(dataset.ChartBar, "size", "price"))
	if len(series) != 3 {
		t.Fatalf("expected 3 unbinned groups, got %d", len(series))
	}
	if series[0]["size"] != "1" {
		t.Errorf("expected rendered value labels, got %v", series[0]["size"])
	}
}

func TestPrepareAggregated_TopCategoriesPlusOthers(t *testing.T) {
	raw := "cat,v\n"
	// 30 distinct categories with distinct frequencies: cat-29 most common.
	for i := 0; i < 30; i++ {
		for j := 0; j <= i; j++ {
			raw += fmt.Sprintf("cat-%02d,%d\n", i, i)
		}
	}
	table := ingest.ParseCSV(raw)

	series := Prepare(table, chart(dataset.ChartBar, "cat", "v"))
	if len(series) != 21 {
		t.Fatalf("expected 20 kept categories plus Others, got %d", len(series))
	}
	if got := series[len(series)-1]["cat"]; got != "Others" {
		t.Errorf("Others must sort last, got %v", got)
	}

	kept := make(map[string]bool)
	for _, datum := range series {
		kept[datum["cat"].(string)] = true
	}
	for i := 0; i < 10; i++ {
		if kept[fmt.Sprintf("cat-%02d", i)] {
			t.Errorf("low-frequency cat-%02d should fold into Others", i)
		}
	}
}

func TestBinLabels_DegenerateRange(t *testing.T) {
	if _, ok := binLabels([]float64{5, 5, 5}); ok {
		t.Error("equal min and max cannot bin")
	}
}

func TestFormatBound(t *testing.T) {
	if got := formatBound(4); got != "4" {
		t.Errorf("expected '4', got %q", got)
	}
	if got := formatBound(4.25); got != "4.2" {
		t.Errorf("expected '4.2', got %q", got)
	}
}
