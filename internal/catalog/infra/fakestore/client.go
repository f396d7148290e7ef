// Package fakestore reads products from a fakestoreapi-compatible REST API.
package fakestore

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-faster/errors"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
)

// ErrUnexpectedStatus is returned for any non-2xx response.
var ErrUnexpectedStatus = errors.New("unexpected status")

type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for baseURL. A nil httpClient uses http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "parse base url")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.Errorf("base url %q: scheme must be http or https", baseURL)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: u.String(), http: httpClient}, nil
}

func (c *Client) List(ctx context.Context) ([]domain.Product, error) {
	return c.get(ctx, "/products")
}

func (c *Client) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return c.get(ctx, "/products/category/"+url.PathEscape(category))
}

func (c *Client) get(ctx context.Context, path string) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "GET %s", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return nil, errors.Wrapf(ErrUnexpectedStatus, "GET %s: %d", path, resp.StatusCode)
	}

	var out []domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	if out == nil {
		out = []domain.Product{}
	}
	return out, nil
}
