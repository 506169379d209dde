package main

import (
	"strings"
	"testing"

	"nebula/internal/bridge"
	"nebula/internal/kgsync"
)

func TestFormatResponse_JSON(t *testing.T) {
	patterns := []bridge.ErrorPattern{{ID: "p1", ErrorSignature: "NPE", OccurrenceCount: 3}}

	out, err := FormatResponse(patterns, FormatJSON)
	if err != nil {
		t.Fatalf("FormatResponse: %v", err)
	}
	if !strings.Contains(out, `"error_signature": "NPE"`) {
		t.Errorf("JSON output should use the wire field names:\n%s", out)
	}
}

func TestFormatResponse_HumanPatterns(t *testing.T) {
	patterns := []bridge.ErrorPattern{{
		ID:              "p1",
		ErrorSignature:  "nil deref",
		ErrorCategory:   "runtime",
		Language:        "go",
		Severity:        "high",
		OccurrenceCount: 4,
		SolutionCount:   2,
	}}

	out, err := FormatResponse(patterns, FormatHuman)
	if err != nil {
		t.Fatalf("FormatResponse: %v", err)
	}
	for _, want := range []string{"p1", "nil deref", "occurrences: 4", "solutions: 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("human output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatResponse_HumanEmptyPatterns(t *testing.T) {
	out, err := FormatResponse([]bridge.ErrorPattern{}, FormatHuman)
	if err != nil {
		t.Fatalf("FormatResponse: %v", err)
	}
	if !strings.Contains(out, "No matching patterns") {
		t.Errorf("empty search should say so, got:\n%s", out)
	}
}

func TestFormatResponse_HumanSummary(t *testing.T) {
	summary := &bridge.PatternSummary{
		TotalPatterns:  10,
		TotalSolutions: 4,
		Languages:      map[string]int{"go": 10},
	}

	out, err := FormatResponse(summary, FormatHuman)
	if err != nil {
		t.Fatalf("FormatResponse: %v", err)
	}
	if !strings.Contains(out, "Patterns: 10") || !strings.Contains(out, "go") {
		t.Errorf("summary output incomplete:\n%s", out)
	}
}

func TestFormatResponse_HumanSync(t *testing.T) {
	out, err := FormatResponse(kgsync.Summary{PatternsSynced: 2, PatternsFailed: 1, Errors: []string{"boom"}}, FormatHuman)
	if err != nil {
		t.Fatalf("FormatResponse: %v", err)
	}
	if !strings.Contains(out, "Patterns synced: 2") || !strings.Contains(out, "boom") {
		t.Errorf("sync output incomplete:\n%s", out)
	}
}

func TestFormatResponse_UnsupportedFormat(t *testing.T) {
	if _, err := FormatResponse(nil, OutputFormat("xml")); err == nil {
		t.Error("unsupported format should error")
	}
}
