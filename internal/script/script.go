// Package script builds the python -c bodies the bridge hands to the
// external knowledge-graph engine. Each builder produces a self-contained
// script that performs exactly one logical operation and writes exactly one
// line (an identifier) or one JSON document to standard output.
package script

import (
	"fmt"
	"strings"

	"nebula/internal/nebulaerr"
)

// Escape prepares a caller-supplied string for embedding inside a
// single-quoted python literal. The order is fixed: backslashes first, then
// quotes, then newlines. Escaping quotes before backslashes would
// double-escape.
func Escape(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "'", "\\'")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}

// CaptureError builds the script for recording one error pattern.
// The script prints the new pattern identifier as a single line.
func CaptureError(dbPath, signature, category, language, severity, description string) string {
	descValue := "None"
	if description != "" {
		descValue = fmt.Sprintf("'%s'", Escape(description))
	}

	return fmt.Sprintf(`
import sys
sys.path.insert(0, '.')
from local_kg.local_kg import get_local_kg

kg = get_local_kg('%s')
pattern_id = kg.capture_error(
    error_signature='%s',
    error_category='%s',
    language='%s',
    description=%s,
    severity='%s'
)
print(pattern_id)
`,
		Escape(dbPath),
		Escape(signature),
		Escape(category),
		Escape(language),
		descValue,
		Escape(severity),
	)
}

// SearchPatterns builds the script for querying similar patterns.
// The script prints a JSON list. The limit bounds how many results the
// engine returns; it is validated here, not enforced client-side.
func SearchPatterns(dbPath, query string, limit int) (string, error) {
	if limit < 0 {
		return "", nebulaerr.New(nebulaerr.Precondition,
			fmt.Sprintf("search limit must be non-negative, got %d", limit), nil)
	}

	return fmt.Sprintf(`
import sys
import json
sys.path.insert(0, '.')
from local_kg.local_kg import get_local_kg

kg = get_local_kg('%s')
patterns = kg.search_patterns('%s', %d)
print(json.dumps(patterns, default=str))
`,
		Escape(dbPath),
		Escape(query),
		limit,
	), nil
}

// AddSolution builds the script for attaching a solution to a pattern.
// The script prints the new solution identifier as a single line.
func AddSolution(dbPath, patternID, solutionText, effectiveness string) string {
	return fmt.Sprintf(`
import sys
sys.path.insert(0, '.')
from local_kg.local_kg import get_local_kg

kg = get_local_kg('%s')
solution_id = kg.add_solution(
    pattern_id='%s',
    solution_text='%s',
    effectiveness='%s'
)
print(solution_id)
`,
		Escape(dbPath),
		Escape(patternID),
		Escape(solutionText),
		Escape(effectiveness),
	)
}

// Summary builds the script for fetching pattern statistics.
// The script prints one JSON object.
func Summary(dbPath string) string {
	return fmt.Sprintf(`
import sys
import json
sys.path.insert(0, '.')
from local_kg.local_kg import get_local_kg

kg = get_local_kg('%s')
summary = kg.get_pattern_summary()
print(json.dumps(summary, default=str))
`,
		Escape(dbPath),
	)
}
