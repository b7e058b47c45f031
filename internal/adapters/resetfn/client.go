// Package resetfn calls the reset procedure over its HTTP contract.
package resetfn

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

	portssvc "github.com/SscSPs/freelanceos/internal/core/ports/services"
	"github.com/SscSPs/freelanceos/internal/dto"
	"github.com/SscSPs/freelanceos/internal/middleware"
)

// maxReplyBytes bounds how much of a reply body is read.
const maxReplyBytes = 1 << 20

const defaultUserAgent = "freelanceos-reset-orchestrator/1.0"

// Client posts reset requests to <baseURL><path> authenticated with a service key.
type Client struct {
	endpoint   string
	serviceKey string
	userAgent  string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a client. timeout caps every call, including reading the reply.
func NewClient(baseURL, path, serviceKey string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		endpoint:   strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/"),
		serviceKey: serviceKey,
		userAgent:  defaultUserAgent,
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ portssvc.ResetFunctionInvoker = (*Client)(nil)

func (c *Client) Endpoint() string {
	return c.endpoint
}

func (c *Client) Invoke(ctx context.Context, payload dto.ResetFunctionRequest) (*dto.ResetFunctionReply, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode reset request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build reset request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reset request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read reset reply: %w", err)
	}

	reply := &dto.ResetFunctionReply{StatusCode: resp.StatusCode}
	// A proxy or a missing route may answer with HTML; the status code alone then decides.
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &reply.ResetFunctionResponse); err != nil {
			middleware.GetLoggerFromCtx(ctx).Debug("Reset reply is not JSON",
				slog.Int("status", resp.StatusCode),
				slog.String("content_type", resp.Header.Get("Content-Type")),
				slog.String("error", err.Error()))
		}
	}
	return reply, nil
}
