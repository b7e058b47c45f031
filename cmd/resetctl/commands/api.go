package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
)

const userAgent = "freelanceos-resetctl/1.0"

// apiClient sends JSON requests to the orchestrator.
type apiClient struct {
	baseURL    string
	httpClient *http.Client
}

func newAPIClient(cmd *cobra.Command) (*apiClient, error) {
	baseURL, err := cmd.Flags().GetString("url")
	if err != nil {
		return nil, err
	}
	if baseURL == "" {
		return nil, fmt.Errorf("--url must not be empty")
	}
	hc, err := httpClientFor(cmd)
	if err != nil {
		return nil, err
	}
	return &apiClient{baseURL: strings.TrimRight(baseURL, "/"), httpClient: hc}, nil
}

func httpClientFor(cmd *cobra.Command) (*http.Client, error) {
	timeout, err := cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, err
	}
	return &http.Client{Timeout: timeout}, nil
}

func (c *apiClient) do(ctx context.Context, method, path string, headers map[string]string, body, out any) (int, error) {
	return sendJSON(ctx, c.httpClient, method, c.baseURL+path, headers, body, out)
}

// sendJSON encodes body (when non-nil) and decodes a JSON reply into out (when non-nil).
// Replies that are not JSON leave out untouched; the status code is returned either way.
func sendJSON(ctx context.Context, hc *http.Client, method, url string, headers map[string]string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("User-Agent", userAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := hc.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s %s failed: %w", method, url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return resp.StatusCode, fmt.Errorf("failed to read reply: %w", err)
	}
	if out != nil && len(raw) > 0 {
		_ = json.Unmarshal(raw, out)
	}
	return resp.StatusCode, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return "unknown error"
}
