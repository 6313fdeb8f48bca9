package jobsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	defaultBaseURL = "https://apis.ccbp.in"
	defaultTimeout = 15 * time.Second

	// RequestIDHeader carries a per-request id for correlating logs
	RequestIDHeader = "X-Request-ID"
)

// NewClient instantiates a job board API client
func NewClient(cfg Config) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("jobsapi: parse base url: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}, nil
}

// Execute performs exactly one GET round trip and decodes a 2xx JSON body
// into out. Every failure is returned as *Error. An empty token sends the
// request without an Authorization header.
func (c *Client) Execute(ctx context.Context, path string, params []Param, token string, out any) error {
	if c == nil {
		return transportError(fmt.Errorf("client is nil"))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BuildURL(path, params), nil)
	if err != nil {
		return transportError(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportError(fmt.Errorf("request failed: %w", err))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		kind := KindHTTP
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			kind = KindUnauthorized
		}
		return &Error{
			Kind:   kind,
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(body)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return transportError(fmt.Errorf("decode response: %w", err))
	}

	return nil
}

// BuildURL joins the base URL, an already escaped path and params, keeping
// param order as given
func (c *Client) BuildURL(path string, params []Param) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + EncodeParams(params)
	}
	return u
}

// EncodeParams renders params as k=v pairs in order. url.Values is not used
// because it sorts keys.
func EncodeParams(params []Param) string {
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}
