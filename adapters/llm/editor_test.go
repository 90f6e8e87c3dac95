package llm

import (
	"context"
	"errors"
	"testing"

	"govista/domain/dataset"
)

func TestEdit_DecodesUpdatedLayout(t *testing.T) {
	client := &MockClient{Response: `[
		{"id": "el-1", "kind": "metric", "metric": {"title": "Orders", "column": "", "op": "count"}},
		{"id": "el-2", "kind": "text", "text": "Q3 review"}
	]`}
	editor := NewDashboardEditor(client, "test-model", 512)

	layout := []dataset.DashboardElement{{ID: "el-1", Kind: dataset.ElementText, Text: "old"}}
	updated, err := editor.Edit(context.Background(), "add an order counter", layout)
	if err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	if len(updated) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(updated))
	}
	if updated[0].Kind != dataset.ElementMetric || updated[0].Metric == nil {
		t.Errorf("unexpected first element %+v", updated[0])
	}
	if updated[0].Metric.Op != dataset.MetricCount {
		t.Errorf("expected count op, got %s", updated[0].Metric.Op)
	}
}

func TestEdit_ProviderErrorSurfaces(t *testing.T) {
	editor := NewDashboardEditor(&MockClient{Error: errors.New("down")}, "test-model", 512)

	if _, err := editor.Edit(context.Background(), "anything", nil); err == nil {
		t.Error("provider failures must surface, not fall back")
	}
}

func TestEdit_GarbageResponseSurfaces(t *testing.T) {
	editor := NewDashboardEditor(&MockClient{Response: "not json"}, "test-model", 512)

	if _, err := editor.Edit(context.Background(), "anything", nil); err == nil {
		t.Error("unparsable layouts must surface as errors")
	}
}
