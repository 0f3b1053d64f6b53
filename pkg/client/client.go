// Package client is the Go SDK for the SocialAI Manager API. The Gateway
// wraps the HTTP surface with typed methods, the Session type layers
// credential persistence on top, and AlertCenter collects transient
// user-facing alerts.
//
// The package mirrors the wire shapes instead of importing server internals
// so it can be vendored into other programs on its own.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/socialai/socialai-backend/pkg/logger"
)

const defaultTimeout = 30 * time.Second

// TokenSource supplies the bearer token attached to authenticated calls.
// An empty token means the call goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed TokenSource, useful for scripts and tests.
type StaticToken string

// Token returns the fixed token value.
func (s StaticToken) Token() string { return string(s) }

// APIError is a non-2xx response mapped from the server's error envelope.
type APIError struct {
	Status  int
	Code    string
	Message string
}

// Error renders the failure for logs and wrapped errors.
func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d %s: %s", e.Status, e.Code, e.Message)
}

// IsUnauthorized reports whether err is an APIError carrying a 401.
func IsUnauthorized(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == http.StatusUnauthorized
}

// Gateway is the typed HTTP client for the API. All methods are safe for
// concurrent use. Failed calls return an error and are never retried,
// queued, or cached.
type Gateway struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logg       *logger.Logger
}

// Option configures optional gateway behavior.
type Option func(*Gateway)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(g *Gateway) {
		if client != nil {
			g.httpClient = client
		}
	}
}

// WithTokenSource sets where the gateway reads bearer tokens from.
func WithTokenSource(tokens TokenSource) Option {
	return func(g *Gateway) {
		g.tokens = tokens
	}
}

// WithLogger overrides the default logger.
func WithLogger(logg *logger.Logger) Option {
	return func(g *Gateway) {
		if logg != nil {
			g.logg = logg
		}
	}
}

// NewGateway builds a gateway rooted at baseURL (scheme and host, no /api
// suffix).
func NewGateway(baseURL string, opts ...Option) (*Gateway, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	g := &Gateway{
		baseURL:    trimmed,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logg:       logger.New(logger.Options{ServiceName: "socialai-client"}),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g, nil
}

type successEnvelope struct {
	Data json.RawMessage `json:"data"`
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// do executes one JSON request. body is marshalled when non-nil; the data
// envelope is unwrapped into out when out is non-nil.
func (g *Gateway) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s %s request: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.buildURL(path, query), reader)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return g.execute(req, out)
}

// doMultipart executes one multipart/form-data request, streaming file under
// the "file" part alongside the plain fields.
func (g *Gateway) doMultipart(ctx context.Context, path string, fields map[string]string, fileName string, file io.Reader, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("write form field %s: %w", name, err)
		}
	}
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("copy upload body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.buildURL(path, nil), &buf)
	if err != nil {
		return fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return g.execute(req, out)
}

func (g *Gateway) execute(req *http.Request, out any) error {
	if g.tokens != nil {
		if token := g.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	ctx := g.logg.WithFields(req.Context(), map[string]any{
		"method": req.Method,
		"path":   req.URL.Path,
	})

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.logg.Error(ctx, "request failed", err)
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode, Code: "INTERNAL_ERROR", Message: "request failed"}
		var envelope errorEnvelope
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error.Code != "" {
			apiErr.Code = envelope.Error.Code
			apiErr.Message = envelope.Error.Message
		}
		g.logg.Error(g.logg.WithField(ctx, "status", resp.StatusCode), "request rejected", apiErr)
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	var envelope successEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		g.logg.Error(ctx, "decode response failed", err)
		return fmt.Errorf("decode %s %s response: %w", req.Method, req.URL.Path, err)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("decode %s %s payload: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

func (g *Gateway) buildURL(path string, query url.Values) string {
	u := g.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}
