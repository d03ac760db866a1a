package sheetdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 15 * time.Second

// Client is the HTTP wrapper for a SheetDB endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a SheetDB client for baseURL (https://sheetdb.io/api/v1/<id>).
func NewClient(baseURL string) *Client {
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: defaultTimeout})
}

// NewClientWithHTTP creates a SheetDB client with a custom HTTP client.
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Row is one spreadsheet row as SheetDB returns it.
type Row struct {
	Names  string `json:"Names"`
	Points Points `json:"Points"`
}

// Points decodes a cell that SheetDB may return as a string, a number or empty.
type Points int

func (p *Points) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*p = 0
		return nil
	}
	if unq, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unq)
	}
	if s == "" {
		*p = 0
		return nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid points value %q: %w", s, err)
	}
	*p = Points(int(f))
	return nil
}

// ListRows fetches every row via GET <base>.
func (c *Client) ListRows(ctx context.Context) ([]Row, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build list request: %w", err)
	}

	var rows []Row
	if err := c.do(req, &rows); err != nil {
		return nil, fmt.Errorf("sheetdb list: %w", err)
	}
	return rows, nil
}

// DeleteRows removes every row whose column equals value via DELETE <base>/<column>/<value>.
func (c *Client) DeleteRows(ctx context.Context, column, value string) error {
	u := fmt.Sprintf("%s/%s/%s", c.baseURL, url.PathEscape(column), url.PathEscape(value))

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build delete request: %w", err)
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("sheetdb delete: %w", err)
	}
	return nil
}

// CreateRow appends a row via POST <base> {"data": {...}}.
func (c *Client) CreateRow(ctx context.Context, data map[string]any) error {
	body, err := json.Marshal(map[string]any{"data": data})
	if err != nil {
		return fmt.Errorf("failed to marshal create request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("sheetdb create: %w", err)
	}
	return nil
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("status %d: %s", resp.StatusCode, string(raw))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
