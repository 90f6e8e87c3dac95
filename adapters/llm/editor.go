package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"govista/domain/dataset"
	"govista/ports"
)

// DashboardEditor implements the dashboard-edit boundary: a natural
// language command plus the current layout yields an updated layout.
// Unlike the analyst, an unusable response here is an error; silently
// rearranging someone's dashboard to a fallback would be worse than
// refusing the edit.
type DashboardEditor struct {
	client    ports.LLMClient
	model     string
	maxTokens int
}

// NewDashboardEditor creates an editor over the given client
func NewDashboardEditor(client ports.LLMClient, model string, maxTokens int) *DashboardEditor {
	return &DashboardEditor{client: client, model: model, maxTokens: maxTokens}
}

// Edit forwards the command and layout to the provider and decodes the
// updated element list.
func (e *DashboardEditor) Edit(ctx context.Context, command string, layout []dataset.DashboardElement) ([]dataset.DashboardElement, error) {
	layoutJSON, err := json.MarshalIndent(layout, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal layout: %w", err)
	}

	prompt := fmt.Sprintf(
		"Apply this command to a dashboard layout and respond with the full updated layout as a JSON array of elements, keeping the element schema unchanged.\n\nCommand: %s\n\nCurrent layout:\n%s",
		command, layoutJSON)

	content, err := e.client.ChatCompletion(ctx, e.model, prompt, e.maxTokens)
	if err != nil {
		return nil, fmt.Errorf("dashboard edit request failed: %w", err)
	}

	var updated []dataset.DashboardElement
	if err := json.Unmarshal([]byte(cleanJSONContent(content)), &updated); err != nil {
		return nil, fmt.Errorf("unparsable layout response: %w", err)
	}
	return updated, nil
}
