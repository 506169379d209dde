package bridge

import (
	"encoding/json"

	"github.com/tidwall/gjson"

	"nebula/internal/nebulaerr"
)

// decodePatterns parses a search response. A DECODE_ERROR signals a protocol
// mismatch with the engine, distinct from a process failure, and is never
// collapsed into an empty result.
func decodePatterns(out string) ([]ErrorPattern, error) {
	if !gjson.Valid(out) {
		return nil, nebulaerr.New(nebulaerr.DecodeError, "engine returned invalid JSON for pattern search", nil)
	}
	if !gjson.Parse(out).IsArray() {
		return nil, nebulaerr.New(nebulaerr.DecodeError, "engine returned non-list JSON for pattern search", nil)
	}

	var patterns []ErrorPattern
	if err := json.Unmarshal([]byte(out), &patterns); err != nil {
		return nil, nebulaerr.New(nebulaerr.DecodeError, "failed to parse patterns", err)
	}
	return patterns, nil
}

// decodeSummary parses a summary response into PatternSummary.
func decodeSummary(out string) (*PatternSummary, error) {
	if !gjson.Valid(out) {
		return nil, nebulaerr.New(nebulaerr.DecodeError, "engine returned invalid JSON for summary", nil)
	}
	if !gjson.Parse(out).IsObject() {
		return nil, nebulaerr.New(nebulaerr.DecodeError, "engine returned non-object JSON for summary", nil)
	}

	var summary PatternSummary
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		return nil, nebulaerr.New(nebulaerr.DecodeError, "failed to parse summary", err)
	}
	return &summary, nil
}
