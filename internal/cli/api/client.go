package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"sync"

	"Lumme/internal/cli/repo"
	"Lumme/internal/metrics"

	"go.uber.org/zap"
)

// DefaultBaseURL is used when neither an explicit base URL nor API_URL is set.
const DefaultBaseURL = "https://lumme-production.up.railway.app/api"

// EnvBaseURL is the environment variable consulted for the base URL.
const EnvBaseURL = "API_URL"

// Client is the single point of HTTP access to the marketplace backend.
// The token is mirrored into the state store; the client itself never
// parses or validates it.
type Client struct {
	baseURL string
	store   repo.StateStore
	http    *http.Client
	diag    Diagnostics

	mu    sync.RWMutex
	token string
}

// RequestOptions are the per-call method, extra headers and body.
// A nil Body sends no body; otherwise it is JSON-encoded
// (json.RawMessage and []byte are sent as-is).
type RequestOptions struct {
	Method  string
	Headers map[string]string
	Body    any
}

// New constructs a Client. An empty baseURL falls back to $API_URL and then
// to DefaultBaseURL. The token is loaded from store.
func New(baseURL string, store repo.StateStore, opts ...Option) (*Client, error) {
	if store == nil {
		return nil, errors.New("state store is required")
	}
	if baseURL == "" {
		baseURL = os.Getenv(EnvBaseURL)
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: baseURL,
		store:   store,
		http:    &http.Client{},
		diag:    NewZapDiagnostics(zap.S()),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	tok, err := store.Get(repo.KeyToken)
	switch {
	case err == nil:
		c.token = tok
	case errors.Is(err, repo.ErrNotFound):
	default:
		return nil, fmt.Errorf("load token: %w", err)
	}
	return c, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// SetToken stores token in memory and in the state store; subsequent
// requests carry it.
func (c *Client) SetToken(token string) error {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
	return c.store.Set(repo.KeyToken, token)
}

// Token returns the current in-memory token, or "" when anonymous.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Logout clears the token and the cached user profile and cart.
// Safe to call when no token was ever set.
func (c *Client) Logout() error {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
	var errs []error
	for _, k := range []string{repo.KeyToken, repo.KeyUser, repo.KeyCart} {
		if err := c.store.Remove(k); err != nil {
			errs = append(errs, fmt.Errorf("remove %s: %w", k, err))
		}
	}
	return errors.Join(errs...)
}

// Request executes a call against baseURL+endpoint and returns the parsed
// JSON body. Non-2xx responses yield *APIError; transport and JSON errors are
// returned unchanged. Every error is reported to the diagnostics sink first.
func (c *Client) Request(ctx context.Context, endpoint string, opts *RequestOptions) (json.RawMessage, error) {
	return c.exec(ctx, endpoint, opts, nil)
}

// exec выполняет запрос и, если out задан, декодирует в него ответ.
// Любая ошибка, включая декодирование, попадает в диагностику ровно один раз.
func (c *Client) exec(ctx context.Context, endpoint string, opts *RequestOptions, out any) (json.RawMessage, error) {
	if opts == nil {
		opts = &RequestOptions{}
	}
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}
	// токен читается один раз в начале вызова
	token := c.Token()

	data, status, err := c.do(ctx, method, endpoint, opts, token)
	if err == nil && out != nil {
		if derr := json.Unmarshal(data, out); derr != nil {
			err = fmt.Errorf("decode %s: %w", endpoint, derr)
		}
	}
	if err != nil {
		c.diag.RequestFailed(method, endpoint, status, err)
		metrics.ClientRequestsTotal.WithLabelValues(method, statusLabel(status, err)).Inc()
		return nil, err
	}
	metrics.ClientRequestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	return data, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, opts *RequestOptions, token string) (json.RawMessage, int, error) {
	var body io.Reader
	if opts.Body != nil {
		b, err := encodeBody(opts.Body)
		if err != nil {
			return nil, 0, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	var data json.RawMessage
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, resp.StatusCode, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, newAPIError(resp.StatusCode, data)
	}
	return data, resp.StatusCode, nil
}

// call runs the request and decodes the payload into out.
func (c *Client) call(ctx context.Context, endpoint string, opts *RequestOptions, out any) error {
	_, err := c.exec(ctx, endpoint, opts, out)
	return err
}

func encodeBody(v any) ([]byte, error) {
	switch b := v.(type) {
	case json.RawMessage:
		return b, nil
	case []byte:
		return b, nil
	}
	return json.Marshal(v)
}

func statusLabel(status int, err error) string {
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		return strconv.Itoa(status)
	case status != 0:
		return "decode"
	}
	return "transport"
}
