package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Client talks to the mock-interview auth backend. It is safe for concurrent
// use; the ambient bearer token is guarded by an internal lock.
type Client struct {
	baseURL    string
	userAgent  string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger

	mu    sync.RWMutex
	token string
}

// NewClient creates a backend client. It reads configuration from
// AUTHCLIENT_* environment variables by default; options override.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:   os.Getenv("AUTHCLIENT_API_URL"),
		userAgent: "authclient-go",
		timeout:   parseDurationEnv("AUTHCLIENT_TIMEOUT", 10*time.Second),
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{
			Timeout: c.timeout,
		}
	}

	return c
}

// SetToken attaches tok as the default Authorization bearer header on every
// subsequent request made through this client.
func (c *Client) SetToken(tok string) {
	c.mu.Lock()
	c.token = tok
	c.mu.Unlock()
}

// ClearToken detaches the default Authorization header.
func (c *Client) ClearToken() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}

// Token returns the currently attached bearer token, or "" when detached.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SignIn exchanges credentials for a bearer token via POST /auth/signin.
func (c *Client) SignIn(ctx context.Context, email, password string) (*SignInResponse, error) {
	var resp SignInResponse
	err := c.doRequest(ctx, http.MethodPost, "/auth/signin", signInRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, &APIError{StatusCode: http.StatusOK, Message: "sign-in response missing token"}
	}
	return &resp, nil
}

// SignUp registers a new account via POST /auth/signup.
func (c *Client) SignUp(ctx context.Context, username, email, password string) (*MessageResponse, error) {
	var resp MessageResponse
	err := c.doRequest(ctx, http.MethodPost, "/auth/signup", signUpRequest{Username: username, Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me fetches the profile of the bearer attached via SetToken through
// GET /auth/me.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var resp MeResponse
	err := c.doRequest(ctx, http.MethodGet, "/auth/me", nil, &resp)
	if err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, &APIError{StatusCode: http.StatusOK, Message: "profile response missing user"}
	}
	return resp.User, nil
}

// ForgotPassword starts the reset flow via POST /auth/forgotpassword.
func (c *Client) ForgotPassword(ctx context.Context, email string) (*MessageResponse, error) {
	var resp MessageResponse
	err := c.doRequest(ctx, http.MethodPost, "/auth/forgotpassword", forgotPasswordRequest{Email: email}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ResetPassword completes the reset flow via PUT /auth/resetpassword/:token.
func (c *Client) ResetPassword(ctx context.Context, resetToken, newPassword string) (*MessageResponse, error) {
	var resp MessageResponse
	path := "/auth/resetpassword/" + url.PathEscape(resetToken)
	err := c.doRequest(ctx, http.MethodPut, path, resetPasswordRequest{Password: newPassword}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// doRequest performs a single HTTP exchange against the backend. Non-2xx
// statuses become *APIError with the backend message when the body carried
// one; transport-level failures become *ServerUnreachableError.
func (c *Client) doRequest(ctx context.Context, method, path string, body any, result any) error {
	u := strings.TrimRight(c.baseURL, "/") + path

	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return fmt.Errorf("api: create request: %w", err)
	}

	requestID := uuid.NewString()
	httpReq.Header.Set("X-Request-ID", requestID)
	httpReq.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if tok := c.Token(); tok != "" {
		httpReq.Header.Set("Authorization", "Bearer "+tok)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		c.logger.Warn("auth backend unreachable",
			"method", method,
			"path", path,
			"request_id", requestID,
			"error", err,
		)
		return &ServerUnreachableError{Cause: err}
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return &ServerUnreachableError{Cause: err}
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		apiErr := &APIError{
			StatusCode: httpResp.StatusCode,
			Message:    extractMessage(respBody),
			RequestID:  requestID,
		}
		c.logger.Debug("auth backend rejected request",
			"method", method,
			"path", path,
			"status", httpResp.StatusCode,
			"request_id", requestID,
		)
		return apiErr
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return &APIError{
				StatusCode: httpResp.StatusCode,
				Message:    "malformed response body",
				RequestID:  requestID,
			}
		}
	}

	return nil
}

// maxResponseBytes bounds response reads; auth payloads are tiny.
const maxResponseBytes = 1 << 20

func extractMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	return envelope.Message
}

func parseDurationEnv(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	return defaultVal
}
