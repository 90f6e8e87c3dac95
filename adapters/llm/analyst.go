package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"govista/domain/core"
	"govista/domain/dataset"
	"govista/ports"
)

// Analyst implements the narrative-generation boundary: statistics snapshot
// in, structured analysis out. Every failure path substitutes the fixed
// fallback analysis instead of surfacing an error; the caller can always
// render something.
type Analyst struct {
	client    ports.LLMClient
	model     string
	maxTokens int
}

// NewAnalyst creates an analyst over the given client
func NewAnalyst(client ports.LLMClient, model string, maxTokens int) *Analyst {
	return &Analyst{client: client, model: model, maxTokens: maxTokens}
}

// analysisResponse is the wire shape expected back from the provider
type analysisResponse struct {
	Persona   string   `json:"persona"`
	Summary   string   `json:"summary"`
	Insights  []string `json:"insights"`
	Actions   []string `json:"actions"`
	Citations []string `json:"citations"`
	Charts    []struct {
		Title       string   `json:"title"`
		Kind        string   `json:"kind"`
		XAxis       string   `json:"x_axis"`
		YAxes       []string `json:"y_axes"`
		Description string   `json:"description"`
	} `json:"charts"`
}

// Analyze builds the prompt, queries the provider and decodes the result.
// On any failure it returns the fallback analysis with Degraded set; err is
// always nil so the boundary stays total.
func (a *Analyst) Analyze(ctx context.Context, stats *dataset.DatasetStats, sample []dataset.Row, opts dataset.AnalysisOptions) (*dataset.AnalysisResult, error) {
	prompt, err := a.buildPrompt(stats, sample, opts)
	if err != nil {
		log.Printf("[Analyst] prompt build failed: %v", err)
		return fallbackAnalysis(stats), nil
	}

	content, err := a.client.ChatCompletion(ctx, a.model, prompt, a.maxTokens)
	if err != nil {
		log.Printf("[Analyst] provider call failed: %v", err)
		return fallbackAnalysis(stats), nil
	}

	var decoded analysisResponse
	if err := json.Unmarshal([]byte(cleanJSONContent(content)), &decoded); err != nil {
		log.Printf("[Analyst] unparsable analysis content: %v", err)
		return fallbackAnalysis(stats), nil
	}

	result := &dataset.AnalysisResult{
		Persona:   decoded.Persona,
		Summary:   decoded.Summary,
		Insights:  decoded.Insights,
		Actions:   decoded.Actions,
		Citations: decoded.Citations,
	}
	for _, c := range decoded.Charts {
		kind := dataset.ChartKind(strings.ToLower(c.Kind))
		switch kind {
		case dataset.ChartBar, dataset.ChartLine, dataset.ChartScatter, dataset.ChartPie:
		default:
			continue // unknown kinds are dropped, not errored
		}
		if c.XAxis == "" {
			continue
		}
		result.Charts = append(result.Charts, dataset.ChartConfig{
			ID:          core.ChartID(core.NewID()),
			Title:       c.Title,
			Kind:        kind,
			XAxis:       c.XAxis,
			YAxes:       c.YAxes,
			Description: c.Description,
		})
	}

	if result.Persona == "" {
		result.Persona = "Data Analyst"
	}
	return result, nil
}

// buildPrompt serializes the snapshot and sample for the provider. Rows are
// flattened to plain values so the prompt stays readable.
func (a *Analyst) buildPrompt(stats *dataset.DatasetStats, sample []dataset.Row, opts dataset.AnalysisOptions) (string, error) {
	statsJSON, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal stats: %w", err)
	}

	plainSample := make([]map[string]interface{}, 0, len(sample))
	for _, row := range sample {
		plain := make(map[string]interface{}, len(row))
		for key, value := range row {
			plain[key] = value.Interface()
		}
		plainSample = append(plainSample, plain)
	}
	sampleJSON, err := json.MarshalIndent(plainSample, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal sample: %w", err)
	}

	var b strings.Builder
	b.WriteString("Analyze this dataset and respond with a single JSON object of the shape ")
	b.WriteString(`{"persona","summary","insights":[],"actions":[],"charts":[{"title","kind","x_axis","y_axes":[],"description"}]`)
	if opts.Grounded {
		b.WriteString(`,"citations":[]`)
	}
	b.WriteString("}. Chart kinds: bar, line, scatter, pie. Use only column names present in the statistics.\n\n")

	if opts.Persona != "" {
		fmt.Fprintf(&b, "Adopt this persona: %s\n", opts.Persona)
	}
	if opts.Goal != "" {
		fmt.Fprintf(&b, "Analysis goal: %s\n", opts.Goal)
	}
	if opts.Grounded {
		b.WriteString("Ground every insight in the statistics below and cite the column or statistic it comes from.\n")
	}
	if opts.PredictiveModeling {
		b.WriteString("Discuss the regression and Monte Carlo results if present.\n")
	}

	b.WriteString("\nDataset statistics:\n")
	b.Write(statsJSON)
	b.WriteString("\n\nSample rows:\n")
	b.Write(sampleJSON)
	return b.String(), nil
}

// fallbackAnalysis is the fixed degraded-state analysis substituted when
// the provider is unreachable or returns unparsable content.
func fallbackAnalysis(stats *dataset.DatasetStats) *dataset.AnalysisResult {
	insights := []string{"Narrative analysis is unavailable; showing computed statistics only."}
	if stats != nil {
		insights = append(insights, stats.Insights...)
	}
	return &dataset.AnalysisResult{
		Persona:  "Data Analyst",
		Summary:  "## Analysis unavailable\nThe narrative service could not be reached. The statistical profile below is unaffected.",
		Insights: insights,
		Actions:  []string{"Retry the analysis once the narrative service is reachable."},
		Charts:   nil,
		Degraded: true,
	}
}
