package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/lexhub-io/lexadmin/pkg/types/v1"
)

// Client is a thin wrapper over the platform's admin REST surface. It holds
// no state besides connection details; every call is a single attempt with
// no retries.
type Client struct {
	base  *url.URL
	token string
	httpc *http.Client
}

func New(baseURL, token string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL %q: %w", baseURL, err)
	}

	return &Client{
		base:  u,
		token: token,
		httpc: &http.Client{Timeout: timeout},
	}, nil
}

// List fetches one page of a resource. Only non-empty params are
// serialized; an unset filter is omitted, never sent as an empty string.
func (c *Client) List(ctx context.Context, path string, params map[string]string) ([]byte, error) {
	u := c.resolve(path)
	u.RawQuery = encodeParams(params)
	return c.do(ctx, http.MethodGet, u, nil)
}

func (c *Client) Get(ctx context.Context, path string, id v1.ID) ([]byte, error) {
	return c.do(ctx, http.MethodGet, c.resolve(itemPath(path, id)), nil)
}

func (c *Client) Create(ctx context.Context, path string, body interface{}) ([]byte, error) {
	return c.doJSON(ctx, http.MethodPost, c.resolve(path), body)
}

func (c *Client) Update(ctx context.Context, path string, id v1.ID, body interface{}) ([]byte, error) {
	return c.doJSON(ctx, http.MethodPut, c.resolve(itemPath(path, id)), body)
}

func (c *Client) Remove(ctx context.Context, path string, id v1.ID) error {
	_, err := c.do(ctx, http.MethodDelete, c.resolve(itemPath(path, id)), nil)
	return err
}

// Stats fetches the aggregate counters backing a screen's analytics cards.
func (c *Client) Stats(ctx context.Context, path string) (map[string]interface{}, error) {
	raw, err := c.do(ctx, http.MethodGet, c.resolve(path), nil)
	if err != nil {
		return nil, err
	}
	stats := map[string]interface{}{}
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("unable to decode stats body: %w", err)
	}
	return stats, nil
}

// Post issues a request with a caller-built body, e.g. a multipart upload.
func (c *Client) Post(ctx context.Context, path, contentType string, body io.Reader) ([]byte, error) {
	u := c.resolve(path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	return c.send(req)
}

func (c *Client) resolve(path string) *url.URL {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	return &u
}

func itemPath(path string, id v1.ID) string {
	return fmt.Sprintf("%s/%s", path, id)
}

func (c *Client) doJSON(ctx context.Context, method string, u *url.URL, body interface{}) ([]byte, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("unable to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), bytes.NewReader(encoded))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.send(req)
}

func (c *Client) do(ctx context.Context, method string, u *url.URL, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, err
	}
	return c.send(req)
}

func (c *Client) send(req *http.Request) ([]byte, error) {
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: req.URL.String(), Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{URL: req.URL.String(), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestError{Status: resp.StatusCode, Message: detailMessage(raw)}
	}
	return raw, nil
}

// detailMessage extracts the conventional {"detail": "..."} error body.
// Anything else falls back to the status-derived message in RequestError.
func detailMessage(raw []byte) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return body.Detail
}

func encodeParams(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	q := url.Values{}
	for _, k := range keys {
		q.Set(k, params[k])
	}
	return q.Encode()
}
