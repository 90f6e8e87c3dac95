package dataset

// AnalysisOptions is the free-text configuration forwarded to the narrative
// analyst alongside the statistics snapshot.
type AnalysisOptions struct {
	Persona            string `json:"persona,omitempty"` // persona override
	Goal               string `json:"goal,omitempty"`    // analysis goal override
	Grounded           bool   `json:"grounded"`          // request citations
	DeepScan           bool   `json:"deep_scan"`         // distribution markers
	PredictiveModeling bool   `json:"predictive_modeling"`
}

// AnalysisResult is the structured response from the narrative analyst.
// Degraded is set when the analyst was unreachable or returned unparsable
// content and a fixed fallback was substituted.
type AnalysisResult struct {
	Persona   string        `json:"persona"`
	Summary   string        `json:"summary"` // markdown
	Insights  []string      `json:"insights"`
	Actions   []string      `json:"actions"`
	Charts    []ChartConfig `json:"charts"`
	Citations []string      `json:"citations,omitempty"`
	Degraded  bool          `json:"degraded"`
}
