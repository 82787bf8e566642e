// Package subgraph implements the read-only client for the protocol's
// GraphQL indexer. Queries are POSTed as a query string plus a variables
// mapping; responses are JSON-decoded into typed results. The client never
// caches or retries: every failure is surfaced to the caller.
package subgraph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Client talks to one subgraph endpoint.
type Client struct {
	url        string
	httpClient *http.Client
}

// New creates a subgraph client for the given GraphQL endpoint URL.
// The timeout bounds one query round trip.
func New(url string, timeout time.Duration) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// URL returns the configured endpoint.
func (c *Client) URL() string {
	return c.url
}

// graphqlRequest is the standard GraphQL-over-HTTP request envelope.
type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// graphqlResponse is the standard GraphQL-over-HTTP response envelope.
type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Query executes a GraphQL query with the given variables and decodes the
// response's data object into out. A non-2xx HTTP status, a transport
// failure, or a GraphQL-level error all fail the call.
func (c *Client) Query(ctx context.Context, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("failed to marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		zap.L().Error("subgraph request failed", zap.String("url", c.url), zap.Error(err))
		return err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			zap.L().Error("failed to close subgraph response", zap.Error(err))
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		zap.L().Error("subgraph returned non-2xx status",
			zap.Int("status", resp.StatusCode),
			zap.String("url", c.url))
		return fmt.Errorf("subgraph returned status %d: %s", resp.StatusCode, string(raw))
	}

	var envelope graphqlResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("subgraph query failed: %s", envelope.Errors[0].Message)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to decode query data: %w", err)
	}
	return nil
}
