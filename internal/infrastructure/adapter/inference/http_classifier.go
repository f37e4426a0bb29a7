package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPClassifier calls a model server over HTTP. The server hosts one
// pre-trained classifier and exposes a single predict endpoint taking the
// feature column and returning the category id.
type HTTPClassifier struct {
	name       string
	url        string
	httpClient *http.Client
}

// predictRequest is the wire format sent to the model server: the input rows
// reshaped into a single feature column.
type predictRequest struct {
	Instances []string `json:"instances"`
}

// predictResponse is the wire format returned by the model server
type predictResponse struct {
	CategoryID int `json:"category_id"`
}

// NewHTTPClassifier creates a classifier client for one model server.
// The client is stateless and safe for concurrent use.
func NewHTTPClassifier(name, url string) *HTTPClassifier {
	return &HTTPClassifier{
		name: name,
		url:  url,
		httpClient: &http.Client{
			// Per-call deadlines come from the caller's context; this is a
			// hard ceiling against servers that never answer.
			Timeout: 2 * time.Minute,
		},
	}
}

// Name returns the catalog name this classifier serves
func (c *HTTPClassifier) Name() string {
	return c.name
}

// Predict posts the feature column to the model server and returns the
// predicted category id
func (c *HTTPClassifier) Predict(ctx context.Context, rows []string) (int, error) {
	body, err := json.Marshal(predictRequest{Instances: rows})
	if err != nil {
		return 0, fmt.Errorf("encoding predict request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("building predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("calling model server %s: %w", c.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Read a bounded slice of the body for the log line; model servers
		// can echo large payloads back on errors.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("model server %s returned status %d: %s", c.name, resp.StatusCode, snippet)
	}

	var parsed predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, fmt.Errorf("decoding predict response from %s: %w", c.name, err)
	}

	return parsed.CategoryID, nil
}
