// Package client wraps HTTP access to the bidding service API. It reports
// every HTTP status back to the caller; only transport failures surface as
// errors, so the console can show 4xx/5xx bodies the way the service wrote
// them.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Params carries the inputs of a GET request. Query entries become a query
// string. A non-empty PathSegment is URL-escaped and appended to the path
// as a trailing segment instead; the two forms never combine.
type Params struct {
	Query       map[string]string
	PathSegment string
}

// Empty reports whether the request carries neither query values nor a
// path segment.
func (p Params) Empty() bool {
	return len(p.Query) == 0 && p.PathSegment == ""
}

// Client is a thin wrapper over http.Client for the bidding service.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *logrus.Logger
}

// New creates an API client. A zero timeout means requests block until the
// server responds, which is what an interactive console wants for slow
// admin operations. A non-empty token is sent verbatim as a bearer
// credential.
func New(baseURL, token string, timeout time.Duration, log *logrus.Logger) (*Client, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout < 0 {
		timeout = 0
	}
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Client{
		baseURL:    normalized,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}, nil
}

// Get issues a GET request to the given path.
func (c *Client) Get(ctx context.Context, path string, params Params) (int, []byte, error) {
	target := c.join(path)
	switch {
	case params.PathSegment != "":
		target += "/" + url.PathEscape(params.PathSegment)
	case len(params.Query) > 0:
		q := url.Values{}
		for k, v := range params.Query {
			q.Set(k, v)
		}
		target += "?" + q.Encode()
	}

	req, err := c.newRequest(ctx, http.MethodGet, target, nil)
	if err != nil {
		return 0, nil, err
	}
	return c.do(req)
}

// Post issues a POST request with body marshaled as JSON.
func (c *Client) Post(ctx context.Context, path string, body any) (int, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBytes, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("marshal body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBytes)
	}

	req, err := c.newRequest(ctx, http.MethodPost, c.join(path), bodyReader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *Client) join(path string) string {
	if path == "" {
		return c.baseURL
	}
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

func (c *Client) newRequest(ctx context.Context, method, target string, body io.Reader) (*http.Request, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

func (c *Client) do(req *http.Request) (int, []byte, error) {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"method": req.Method,
			"url":    req.URL.String(),
		}).WithError(err).Debug("request failed")
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	c.log.WithFields(logrus.Fields{
		"method":     req.Method,
		"url":        req.URL.String(),
		"status":     resp.StatusCode,
		"latency":    time.Since(start),
		"request_id": req.Header.Get("X-Request-ID"),
	}).Debug("request")
	return resp.StatusCode, body, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("server URL is empty")
	}

	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		raw = strings.TrimRight(raw, "/")
	} else if strings.HasPrefix(raw, ":") {
		raw = "http://localhost" + raw
	} else {
		raw = "http://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("invalid server URL: %q", raw)
	}
	return strings.TrimRight(raw, "/"), nil
}
