package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gravitrone/qbank/internal/catalog"
)

// Client fetches the question document over HTTP.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a client for the document at url.
func NewClient(url string, timeout ...time.Duration) *Client {
	httpTimeout := 30 * time.Second
	if len(timeout) > 0 && timeout[0] > 0 {
		httpTimeout = timeout[0]
	}
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: httpTimeout,
		},
	}
}

// WithTimeout clones the client with a different HTTP timeout.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	return NewClient(c.url, timeout)
}

// Load fetches, decodes and validates the record collection.
func (c *Client) Load(ctx context.Context) ([]catalog.Record, error) {
	body, status, err := c.get(ctx)
	if err != nil {
		return nil, &LoadError{Source: c.url, Status: status, Err: err}
	}
	records, err := decodeRecords(body)
	if err != nil {
		return nil, &LoadError{Source: c.url, Status: status, Err: err}
	}
	return records, nil
}

// get executes the GET request and returns the raw response body.
func (c *Client) get(ctx context.Context) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if excerpt := bodyExcerpt(respBody); excerpt != "" {
			return nil, resp.StatusCode, fmt.Errorf("HTTP %d: %s", resp.StatusCode, excerpt)
		}
		return nil, resp.StatusCode, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	return respBody, resp.StatusCode, nil
}

// maxExcerptRunes caps how much of an error body ends up in a LoadError.
const maxExcerptRunes = 120

// bodyExcerpt folds whitespace in body and truncates it for error messages.
func bodyExcerpt(body []byte) string {
	text := strings.Join(strings.Fields(string(body)), " ")
	runes := []rune(text)
	if len(runes) <= maxExcerptRunes {
		return text
	}
	return string(runes[:maxExcerptRunes]) + "..."
}
