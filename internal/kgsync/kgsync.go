// Package kgsync pushes locally captured patterns and solutions to a central
// knowledge-graph service. Sync is best-effort per item; one failed submit
// never aborts the batch.
package kgsync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"nebula/internal/bridge"
	"nebula/internal/nebulaerr"
)

// Client submits local knowledge to the central KG API.
type Client struct {
	baseURL    string
	instanceID string
	httpClient *http.Client
	logger     *slog.Logger
}

// Summary reports the outcome of one sync batch.
type Summary struct {
	PatternsSynced  int      `json:"patterns_synced"`
	PatternsFailed  int      `json:"patterns_failed"`
	SolutionsSynced int      `json:"solutions_synced"`
	SolutionsFailed int      `json:"solutions_failed"`
	Errors          []string `json:"errors,omitempty"`
}

// New creates a sync client for the central KG at baseURL. Each client gets
// a unique instance ID so the central service can attribute submissions.
func New(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		instanceID: uuid.NewString(),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

// InstanceID returns this client's submission identity.
func (c *Client) InstanceID() string {
	return c.instanceID
}

type patternPayload struct {
	InstanceID     string `json:"instance_id"`
	ErrorSignature string `json:"error_signature"`
	ErrorCategory  string `json:"error_category"`
	Language       string `json:"language"`
	Severity       string `json:"severity,omitempty"`
	Description    string `json:"description,omitempty"`
}

type solutionPayload struct {
	InstanceID       string `json:"instance_id"`
	CentralPatternID string `json:"central_pattern_id"`
	SolutionText     string `json:"solution_text"`
	Effectiveness    string `json:"effectiveness,omitempty"`
}

type submitResponse struct {
	ID                string `json:"id"`
	ExistingPatternID string `json:"existing_pattern_id"`
}

// SubmitPattern pushes one pattern and returns the central pattern ID, which
// may identify an existing duplicate.
func (c *Client) SubmitPattern(ctx context.Context, p bridge.ErrorPattern) (string, error) {
	payload := patternPayload{
		InstanceID:     c.instanceID,
		ErrorSignature: p.ErrorSignature,
		ErrorCategory:  p.ErrorCategory,
		Language:       p.Language,
		Severity:       p.Severity,
		Description:    p.Description,
	}
	return c.post(ctx, "/api/v1/patterns/submit", payload)
}

// SubmitSolution pushes one solution for an already-synced pattern.
func (c *Client) SubmitSolution(ctx context.Context, centralPatternID, solutionText, effectiveness string) (string, error) {
	payload := solutionPayload{
		InstanceID:       c.instanceID,
		CentralPatternID: centralPatternID,
		SolutionText:     solutionText,
		Effectiveness:    effectiveness,
	}
	return c.post(ctx, "/api/v1/solutions/submit", payload)
}

// SyncPatterns pushes a batch of patterns, continuing past individual
// failures, and returns per-batch counts.
func (c *Client) SyncPatterns(ctx context.Context, patterns []bridge.ErrorPattern) Summary {
	var summary Summary
	for _, p := range patterns {
		centralID, err := c.SubmitPattern(ctx, p)
		if err != nil {
			summary.PatternsFailed++
			summary.Errors = append(summary.Errors, err.Error())
			c.logger.Warn("pattern sync failed", "signature", p.ErrorSignature, "error", err.Error())
			continue
		}
		summary.PatternsSynced++
		c.logger.Debug("pattern synced", "signature", p.ErrorSignature, "centralId", centralID)
	}
	return summary
}

func (c *Client) post(ctx context.Context, path string, payload any) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", nebulaerr.New(nebulaerr.SyncError, "failed to encode sync payload", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return "", nebulaerr.New(nebulaerr.SyncError, "failed to build sync request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", nebulaerr.New(nebulaerr.SyncError, "central KG request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nebulaerr.New(nebulaerr.SyncError, "failed to read central KG response", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", nebulaerr.New(nebulaerr.SyncError,
			fmt.Sprintf("central KG returned %d: %s", resp.StatusCode, strings.TrimSpace(string(data))), nil)
	}

	var result submitResponse
	if err := json.Unmarshal(data, &result); err != nil {
		return "", nebulaerr.New(nebulaerr.DecodeError, "central KG returned malformed JSON", err)
	}
	if result.ID != "" {
		return result.ID, nil
	}
	return result.ExistingPatternID, nil
}
