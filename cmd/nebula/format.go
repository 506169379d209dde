package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"nebula/internal/bridge"
	"nebula/internal/kgsync"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatHuman OutputFormat = "human"
)

// FormatResponse formats a response according to the specified format
func FormatResponse(resp interface{}, format OutputFormat) (string, error) {
	switch format {
	case FormatJSON:
		return formatJSON(resp)
	case FormatHuman:
		return formatHuman(resp)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func formatJSON(resp interface{}) (string, error) {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

func formatHuman(resp interface{}) (string, error) {
	switch v := resp.(type) {
	case []bridge.ErrorPattern:
		return formatPatternsHuman(v), nil
	case *bridge.PatternSummary:
		return formatSummaryHuman(v), nil
	case kgsync.Summary:
		return formatSyncHuman(v), nil
	default:
		// For unknown types, fall back to JSON
		return formatJSON(resp)
	}
}

func formatPatternsHuman(patterns []bridge.ErrorPattern) string {
	if len(patterns) == 0 {
		return "No matching patterns found."
	}

	var b strings.Builder
	for _, p := range patterns {
		b.WriteString(fmt.Sprintf("%s  [%s/%s] %s\n", p.ID, p.Language, p.Severity, p.ErrorSignature))
		b.WriteString(fmt.Sprintf("    category: %s  occurrences: %d  solutions: %d\n",
			p.ErrorCategory, p.OccurrenceCount, p.SolutionCount))
		if p.Description != "" {
			b.WriteString(fmt.Sprintf("    %s\n", p.Description))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatSummaryHuman(s *bridge.PatternSummary) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Patterns: %d  Solutions: %d\n", s.TotalPatterns, s.TotalSolutions))

	if len(s.Languages) > 0 {
		b.WriteString("Languages:\n")
		for lang, count := range s.Languages {
			b.WriteString(fmt.Sprintf("  %-12s %d\n", lang, count))
		}
	}
	if len(s.TopErrors) > 0 {
		b.WriteString(fmt.Sprintf("Top errors: %d recorded\n", len(s.TopErrors)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatSyncHuman(s kgsync.Summary) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Patterns synced: %d (failed: %d)\n", s.PatternsSynced, s.PatternsFailed))
	b.WriteString(fmt.Sprintf("Solutions synced: %d (failed: %d)\n", s.SolutionsSynced, s.SolutionsFailed))
	for _, e := range s.Errors {
		b.WriteString("  error: " + e + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
