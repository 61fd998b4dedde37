// Package ghastly is the HTTP client for the remote Ghastly prediction API.
// The API is an opaque collaborator: this tier only logs in, registers,
// lists predictions and flips their approval state.
package ghastly

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

const (
	loginPath       = "users/login"
	registerPath    = "users/register"
	predictionsPath = "predictions/"

	tokenHeader = "x-access-token"

	requestTimeout = 10 * time.Second
)

// ErrUnavailable marks a transport-level failure reaching the API. Callers
// turn it into a degraded-service response, never a crash or a retry.
var ErrUnavailable = errors.New("ghastly api unavailable")

// StatusError reports a non-success status from the API together with the
// body, which the web tier surfaces verbatim in warnings.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("ghastly api status %d: %s", e.Code, e.Body)
}

// Prediction is the remote record as listed by GET predictions/. It is never
// stored locally.
type Prediction struct {
	ID       int             `json:"id"`
	Odds     decimal.Decimal `json:"odds"`
	Comment  string          `json:"comment"`
	Approved bool            `json:"approved"`
}

// LoginResult carries the fields extracted from a successful login response.
type LoginResult struct {
	Token string `json:"token"`
	Admin bool   `json:"admin"`
}

// Registration is the payload for POST users/register.
type Registration struct {
	Name     string `json:"name"`
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// API is the surface handlers depend on; tests substitute a mock.
type API interface {
	Login(ctx context.Context, userName, password string) (*LoginResult, error)
	Register(ctx context.Context, reg Registration) error
	ListPredictions(ctx context.Context, token string) ([]Prediction, error)
	UpdatePrediction(ctx context.Context, token, predID, comment string, approved bool) error
}

// Client is the concrete API client.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ API = (*Client)(nil)

// NewClient builds a client for the given base URL (trailing slash expected).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// Login exchanges credentials for an opaque token. A non-200 status comes
// back as *StatusError so the caller can show code and body.
func (c *Client) Login(ctx context.Context, userName, password string) (*LoginResult, error) {
	payload := map[string]string{
		"user_name": userName,
		"password":  password,
	}
	body, status, err := c.do(ctx, http.MethodPost, loginPath, "", payload)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, &StatusError{Code: status, Body: string(body)}
	}
	var result LoginResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode login response: %w", err)
	}
	return &result, nil
}

// Register submits a new account. Success is status 201.
func (c *Client) Register(ctx context.Context, reg Registration) error {
	body, status, err := c.do(ctx, http.MethodPost, registerPath, "", reg)
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return &StatusError{Code: status, Body: string(body)}
	}
	return nil
}

// ListPredictions fetches every prediction visible to the token.
func (c *Client) ListPredictions(ctx context.Context, token string) ([]Prediction, error) {
	body, status, err := c.do(ctx, http.MethodGet, predictionsPath, token, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, &StatusError{Code: status, Body: string(body)}
	}
	var wrapper struct {
		Predictions []Prediction `json:"predictions"`
	}
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return nil, fmt.Errorf("decode predictions response: %w", err)
	}
	return wrapper.Predictions, nil
}

// UpdatePrediction PUTs a new comment and approval flag. The API reports a
// successful write with 201.
func (c *Client) UpdatePrediction(ctx context.Context, token, predID, comment string, approved bool) error {
	payload := map[string]any{
		"comment":  comment,
		"approved": approved,
	}
	body, status, err := c.do(ctx, http.MethodPut, predictionsPath+predID, token, payload)
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return &StatusError{Code: status, Body: string(body)}
	}
	return nil
}

// do issues one request and reads the whole body. Transport failures wrap
// ErrUnavailable; status interpretation is left to the caller.
func (c *Client) do(ctx context.Context, method, path, token string, payload any) ([]byte, int, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	if token != "" {
		req.Header.Set(tokenHeader, token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read response: %w", err)
	}
	return body, resp.StatusCode, nil
}
