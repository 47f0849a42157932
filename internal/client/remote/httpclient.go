package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dara283/clio-client/internal/client/models"
	"github.com/dara283/clio-client/internal/common"
)

const defaultTimeout = 10 * time.Second

// HTTPClient implements Client against a JSON HTTP backend:
//
//	POST <base>/api/auth/login   {email, password}
//	POST <base>/api/auth/signup  {name, email, password}
//
// A 2xx response body is {user?: {email, name}, token?: string}; a missing
// user object is tolerated and synthesized from the request.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient builds a client for the given base URL. An empty base means
// the remote feature is absent: the client reports Enabled() == false and
// every auth call returns common.ErrUnavailable. A non-positive timeout
// falls back to a bounded default so a hung backend cannot stall the caller
// forever.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Enabled() bool {
	return c.baseURL != ""
}

type authResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	payload := map[string]string{"email": email, "password": password}

	res, err := c.post(ctx, "/api/auth/login", payload, common.ErrInvalidCredentials)
	if err != nil {
		return nil, err
	}
	if res.User == nil {
		res.User = &models.User{Email: email}
	}
	return &AuthResult{User: *res.User, Token: res.Token}, nil
}

func (c *HTTPClient) Signup(ctx context.Context, email, password, name string) (*AuthResult, error) {
	payload := map[string]string{"name": name, "email": email, "password": password}

	res, err := c.post(ctx, "/api/auth/signup", payload, common.ErrAccountExists)
	if err != nil {
		return nil, err
	}
	if res.User == nil {
		res.User = &models.User{Email: email, Name: name}
	}
	return &AuthResult{User: *res.User, Token: res.Token}, nil
}

// post sends the JSON payload and classifies the outcome: transport errors,
// 5xx and undecodable bodies become ErrUnavailable, any other non-2xx status
// becomes rejectErr.
func (c *HTTPClient) post(ctx context.Context, path string, payload any, rejectErr error) (*authResponse, error) {
	if !c.Enabled() {
		return nil, common.ErrUnavailable
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("%w: remote returned %s", common.ErrUnavailable, resp.Status)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: remote returned %s", rejectErr, resp.Status)
	}

	var res authResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", common.ErrUnavailable, err)
	}
	return &res, nil
}

func (c *HTTPClient) Do(ctx context.Context, method, path string, body io.Reader, header http.Header, token string) (*http.Response, error) {
	url := path
	if !strings.HasPrefix(path, "http") {
		url = c.baseURL + path
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		return nil, common.ErrUnauthorized
	}
	return resp, nil
}
