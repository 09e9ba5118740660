package hrapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/staffdeck/workforce-console/internal/domain/leave"
)

// Client talks to the remote HR API. It implements every domain source
// interface consumed by the views: attendance.Source, leave.Source,
// dashboard.StatsSource and session.Gateway.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  *slog.Logger
}

func New(baseURL string, apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// envelope matches the remote API response contract.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *remoteError    `json:"error,omitempty"`
}

type remoteError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body %s: %w", path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("hr api request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		// Proxies and gateways can answer with non-JSON bodies; the status
		// code is the only reliable signal then.
		if resp.StatusCode >= http.StatusBadRequest {
			return fmt.Errorf("hr api returned status %d", resp.StatusCode)
		}
		return fmt.Errorf("decode hr api response (%s): %w", resp.Status, err)
	}

	if !env.Success || resp.StatusCode >= http.StatusBadRequest {
		err := mapRemoteError(env.Error, resp.StatusCode)
		c.logger.Debug("hr api call rejected",
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
			slog.String("error", err.Error()),
		)
		return err
	}

	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode hr api data: %w", err)
		}
	}
	return nil
}

// mapRemoteError translates remote error codes into domain sentinels so
// callers can branch with errors.Is.
func mapRemoteError(re *remoteError, status int) error {
	if re == nil {
		return fmt.Errorf("hr api returned status %d", status)
	}

	switch re.Code {
	case "LEAVE_REQUEST_NOT_FOUND":
		return leave.ErrRequestNotFound
	case "LEAVE_REQUEST_ALREADY_PROCESSED", "CONFLICT":
		return leave.ErrAlreadyProcessed
	default:
		return fmt.Errorf("hr api error %s: %s", re.Code, re.Message)
	}
}
