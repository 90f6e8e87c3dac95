package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"govista/domain/dataset"
)

func sampleStats() *dataset.DatasetStats {
	return &dataset.DatasetStats{
		RowCount: 3,
		Columns: []dataset.ColumnProfile{
			{Name: "price", Type: dataset.TypeNumeric, Role: dataset.RoleCurrency},
			{Name: "region", Type: dataset.TypeCategorical, Role: dataset.RoleGeographic},
		},
		Insights: []string{"Average price is 20.00 across 3 rows."},
	}
}

func TestAnalyze_ParsesStructuredResponse(t *testing.T) {
	client := &MockClient{Response: `{
		"persona": "Retail Analyst",
		"summary": "## Sales\nPrices cluster tightly.",
		"insights": ["Price variance is low."],
		"actions": ["Review outlier orders."],
		"charts": [
			{"title": "Price by region", "kind": "Bar", "x_axis": "region", "y_axes": ["price"]},
			{"title": "Bad kind", "kind": "heatmap", "x_axis": "region"},
			{"title": "No axis", "kind": "pie", "x_axis": ""}
		]
	}`}
	analyst := NewAnalyst(client, "test-model", 512)

	result, err := analyst.Analyze(context.Background(), sampleStats(), nil, dataset.AnalysisOptions{})
	if err != nil {
		t.Fatalf("analyze must not error: %v", err)
	}
	if result.Degraded {
		t.Error("successful parse must not be degraded")
	}
	if result.Persona != "Retail Analyst" {
		t.Errorf("unexpected persona %q", result.Persona)
	}
	if len(result.Charts) != 1 {
		t.Fatalf("invalid charts must be dropped, got %d", len(result.Charts))
	}

	chart := result.Charts[0]
	if chart.Kind != dataset.ChartBar {
		t.Errorf("kind should normalize to lowercase, got %s", chart.Kind)
	}
	if chart.ID == "" {
		t.Error("accepted charts must receive an ID")
	}
}

func TestAnalyze_FallbackOnProviderError(t *testing.T) {
	client := &MockClient{Error: errors.New("provider down")}
	analyst := NewAnalyst(client, "test-model", 512)

	result, err := analyst.Analyze(context.Background(), sampleStats(), nil, dataset.AnalysisOptions{})
	if err != nil {
		t.Fatalf("analyst boundary must stay total: %v", err)
	}
	if !result.Degraded {
		t.Error("fallback must be flagged degraded")
	}
	// Computed insights survive into the fallback.
	found := false
	for _, insight := range result.Insights {
		if insight == "Average price is 20.00 across 3 rows." {
			found = true
		}
	}
	if !found {
		t.Error("fallback should carry the computed insights")
	}
}

func TestAnalyze_FallbackOnGarbageContent(t *testing.T) {
	client := &MockClient{Response: "I could not produce JSON, sorry."}
	analyst := NewAnalyst(client, "test-model", 512)

	result, _ := analyst.Analyze(context.Background(), sampleStats(), nil, dataset.AnalysisOptions{})
	if !result.Degraded {
		t.Error("unparsable content must fall back")
	}
}

func TestAnalyze_DefaultMockResponseParses(t *testing.T) {
	analyst := NewAnalyst(&MockClient{}, "test-model", 512)

	result, _ := analyst.Analyze(context.Background(), sampleStats(), nil, dataset.AnalysisOptions{})
	if result.Degraded {
		t.Error("the default mock payload must parse cleanly")
	}
	if result.Persona != "Data Analyst" {
		t.Errorf("unexpected persona %q", result.Persona)
	}
}

func TestBuildPrompt_IncludesDirectives(t *testing.T) {
	analyst := NewAnalyst(&MockClient{}, "test-model", 512)

	prompt, err := analyst.buildPrompt(sampleStats(), nil, dataset.AnalysisOptions{
		Persona:            "CFO",
		Goal:               "find cost savings",
		Grounded:           true,
		PredictiveModeling: true,
	})
	if err != nil {
		t.Fatalf("buildPrompt failed: %v", err)
	}

	for _, want := range []string{"CFO", "find cost savings", "citations", "Monte Carlo"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestCleanJSONContent(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"{\"a\":1}", "{\"a\":1}"},
		{"```json\n{\"a\":1}\n```", "{\"a\":1}"},
		{"```\n[1,2]\n```", "[1,2]"},
		{"Here is the result: {\"a\":1}", "{\"a\":1}"},
		{"  {\"a\":1}  ", "{\"a\":1}"},
	}
	for _, tc := range cases {
		if got := cleanJSONContent(tc.in); got != tc.want {
			t.Errorf("cleanJSONContent(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
