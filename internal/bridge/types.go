// Package bridge is the typed client for the external knowledge-graph
// engine. It resolves configuration once at construction, generates one
// engine invocation per call, and decodes engine output into typed results.
package bridge

// ErrorCapture is the request shape for recording an error. All fields are
// caller-supplied; validation beyond safe encoding belongs to the engine.
type ErrorCapture struct {
	Signature   string `json:"signature"`
	Category    string `json:"category"`
	Language    string `json:"language"`
	Severity    string `json:"severity"`
	Description string `json:"description,omitempty"`
}

// ErrorPattern is a recorded error pattern as returned by the engine.
// Only produced by decoding engine output, never constructed by the bridge.
type ErrorPattern struct {
	ID              string `json:"id"`
	ErrorSignature  string `json:"error_signature"`
	ErrorCategory   string `json:"error_category"`
	Language        string `json:"language"`
	Severity        string `json:"severity"`
	Description     string `json:"description"`
	OccurrenceCount int    `json:"occurrence_count"`
	FirstSeen       string `json:"first_seen"`
	LastSeen        string `json:"last_seen"`
	SolutionCount   int    `json:"solution_count"`
}

// PatternSummary is the engine's aggregate statistics shape. TopErrors is
// deliberately loose; the engine may evolve the record shape independently.
type PatternSummary struct {
	TotalPatterns  int              `json:"total_patterns"`
	TotalSolutions int              `json:"total_solutions"`
	Languages      map[string]int   `json:"languages"`
	TopErrors      []map[string]any `json:"top_errors"`
}
