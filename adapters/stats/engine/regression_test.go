package engine

import (
	"math"
	"testing"

	"govista/adapters/ingest"
	"govista/domain/dataset"
)

func numericTable(t *testing.T, raw string) *dataset.Table {
	t.Helper()
	table := ingest.ParseCSV(raw)
	if table.IsEmpty() {
		t.Fatal("fixture table parsed empty")
	}
	return table
}

func TestFitRegression_PerfectLine(t *testing.T) {
	table := numericTable(t, "x,y\n1,3\n2,5\n3,7\n4,9\n5,11\n")

	result := FitRegression(table, "x", "y")
	if result == nil {
		t.Fatal("expected a fit")
	}
	if math.Abs(result.Slope-2) > 1e-9 {
		t.Errorf("slope: expected 2, got %f", result.Slope)
	}
	if math.Abs(result.Intercept-1) > 1e-9 {
		t.Errorf("intercept: expected 1, got %f", result.Intercept)
	}
	if math.Abs(result.RSquared-1) > 1e-9 {
		t.Errorf("r²: expected 1, got %f", result.RSquared)
	}
	if result.Equation != "y = 2.00x + 1.00" {
		t.Errorf("unexpected equation %q", result.Equation)
	}
	if result.Trendline[0].X != 1 || math.Abs(result.Trendline[0].Y-3) > 1e-9 {
		t.Errorf("trendline start: got %+v", result.Trendline[0])
	}
	if result.Trendline[1].X != 5 || math.Abs(result.Trendline[1].Y-11) > 1e-9 {
		t.Errorf("trendline end: got %+v", result.Trendline[1])
	}
}

func TestFitRegression_NegativeIntercept(t *testing.T) {
	table := numericTable(t, "x,y\n1,-1\n2,1\n3,3\n")

	result := FitRegression(table, "x", "y")
	if result == nil {
		t.Fatal("expected a fit")
	}
	if result.Equation != "y = 2.00x - 3.00" {
		t.Errorf("unexpected equation %q", result.Equation)
	}
}

func TestFitRegression_NoisyFitBounds(t *testing.T) {
	table := numericTable(t, "x,y\n1,2.9\n2,5.2\n3,6.8\n4,9.1\n5,10.9\n")

	result := FitRegression(table, "x", "y")
	if result == nil {
		t.Fatal("expected a fit")
	}
	if result.RSquared < 0.95 || result.RSquared > 1 {
		t.Errorf("near-linear data should fit tightly, r²=%f", result.RSquared)
	}
}

func TestFitRegression_TooFewPoints(t *testing.T) {
	table := numericTable(t, "x,y\n1,2\n")
	if result := FitRegression(table, "x", "y"); result != nil {
		t.Errorf("expected nil for a single point, got %+v", result)
	}
}

func TestFitRegression_ConstantX(t *testing.T) {
	table := numericTable(t, "x,y\n4,1\n4,2\n4,3\n")
	if result := FitRegression(table, "x", "y"); result != nil {
		t.Errorf("expected nil for constant x, got %+v", result)
	}
}

func TestFitRegression_ConstantY(t *testing.T) {
	table := numericTable(t, "x,y\n1,5\n2,5\n3,5\n")

	result := FitRegression(table, "x", "y")
	if result == nil {
		t.Fatal("a flat line is still a perfect fit")
	}
	if result.Slope != 0 {
		t.Errorf("expected zero slope, got %f", result.Slope)
	}
	if result.RSquared != 1 {
		t.Errorf("expected r²=1 for a flat perfect fit, got %f", result.RSquared)
	}
}

func TestFitRegression_SkipsRowsWithMissingValues(t *testing.T) {
	table := numericTable(t, "x,y\n1,3\n2,\n3,7\n,9\n5,11\n")

	result := FitRegression(table, "x", "y")
	if result == nil {
		t.Fatal("expected a fit from the complete pairs")
	}
	if math.Abs(result.Slope-2) > 1e-9 || math.Abs(result.Intercept-1) > 1e-9 {
		t.Errorf("incomplete pairs should be excluded: slope=%f intercept=%f",
			result.Slope, result.Intercept)
	}
}
