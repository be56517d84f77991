// Package client talks to the learnloop backend API. It implements
// planner.Backend for the session controller and adds the supplemental
// end-session and progress calls.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/learnloop/learnloop/internal/api"
	"github.com/learnloop/learnloop/internal/planner"
)

// Client sends requests to the learnloop server over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ planner.Backend = (*Client)(nil)

// New creates a client for the server at baseURL. A zero timeout uses
// 10 seconds.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// CreatePlan requests a learning plan for a free-text user request.
func (c *Client) CreatePlan(ctx context.Context, userRequest string) (*api.Plan, error) {
	var resp api.CreatePlanResponse
	err := c.postJSON(ctx, "create-plan", api.CreatePlanRequest{UserRequest: userRequest}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Plan == nil {
		return nil, &APIError{Endpoint: "create-plan", Message: "response missing plan"}
	}
	return resp.Plan, nil
}

// StartSession starts a weekly learning session for userID.
func (c *Client) StartSession(ctx context.Context, userID string) (*api.Session, error) {
	var resp api.StartSessionResponse
	err := c.postJSON(ctx, "start-session", api.StartSessionRequest{UserID: userID}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Session == nil {
		return nil, &APIError{Endpoint: "start-session", Message: "response missing session"}
	}
	return resp.Session, nil
}

// TakeTest runs the weekly test for userID and returns the score.
func (c *Client) TakeTest(ctx context.Context, userID string) (float64, error) {
	var resp api.TakeTestResponse
	err := c.postJSON(ctx, "take-test", api.TakeTestRequest{UserID: userID}, &resp)
	if err != nil {
		return 0, err
	}
	return resp.Score, nil
}

// EndSession tells the server the user's session is over.
func (c *Client) EndSession(ctx context.Context, userID string) error {
	var resp api.EndSessionResponse
	return c.postJSON(ctx, "end-session", api.EndSessionRequest{UserID: userID}, &resp)
}

// Progress fetches the server's accumulated progress for userID.
func (c *Client) Progress(ctx context.Context, userID string) (*api.Progress, error) {
	endpoint := "progress"
	url := fmt.Sprintf("%s/api/progress/%s", c.baseURL, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &APIError{Endpoint: endpoint, Err: err}
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{Endpoint: endpoint, Err: err}
	}
	defer func() { _ = httpResp.Body.Close() }()

	if httpResp.StatusCode != http.StatusOK {
		return nil, errorFromResponse(endpoint, httpResp)
	}

	var resp api.ProgressResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, &APIError{Endpoint: endpoint, Err: fmt.Errorf("decode response: %w", err)}
	}
	if resp.Progress == nil {
		return nil, &APIError{Endpoint: endpoint, Message: "response missing progress"}
	}
	return resp.Progress, nil
}

// postJSON marshals body, POSTs it to /api/<endpoint>, and decodes the
// 200 response into out. All failure modes come back as *APIError.
func (c *Client) postJSON(ctx context.Context, endpoint string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &APIError{Endpoint: endpoint, Err: fmt.Errorf("marshal request: %w", err)}
	}

	url := c.baseURL + "/api/" + endpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return &APIError{Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Endpoint: endpoint, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return errorFromResponse(endpoint, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Endpoint: endpoint, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// errorFromResponse builds an APIError from a non-200 response, pulling
// the server's error text out of the body when present.
func errorFromResponse(endpoint string, resp *http.Response) *APIError {
	apiErr := &APIError{Endpoint: endpoint, Status: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return apiErr
	}

	var wire api.ErrorResponse
	if json.Unmarshal(data, &wire) == nil && wire.Error != "" {
		apiErr.Message = wire.Error
	} else if text := strings.TrimSpace(string(data)); text != "" {
		apiErr.Message = text
	}
	return apiErr
}
