package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrijs2005/usercatalog/internal/client/models"
	"github.com/dmitrijs2005/usercatalog/internal/logging"
)

const usersPath = "/users"

type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     logging.Logger
}

// NewUsersClient returns a client for the users resource under baseURL.
// A zero timeout leaves request deadlines to the transport and the context.
func NewUsersClient(baseURL string, timeout time.Duration, logger logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid api url %q: scheme must be http or https", baseURL)
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &HTTPClient{
		baseURL:    u,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

func (c *HTTPClient) collectionURL(query string) string {
	u := c.baseURL.ResolveReference(&url.URL{Path: usersPath})
	if query != "" {
		u.RawQuery = url.Values{"q": []string{query}}.Encode()
	}
	return u.String()
}

func (c *HTTPClient) itemURL(id models.ID) string {
	escaped := url.PathEscape(id.String())
	ref := &url.URL{Path: usersPath + "/" + id.String(), RawPath: usersPath + "/" + escaped}
	return c.baseURL.ResolveReference(ref).String()
}

func (c *HTTPClient) do(ctx context.Context, op, method, target string, body any) (*http.Response, error) {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s: encode request: %w", op, err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, rdr)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("%w: %v", ErrUnavailable, err)}
	}
	c.logger.Debug(ctx, "users api call", "op", op, "method", method, "url", target,
		"status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, &TransportError{Op: op, StatusCode: resp.StatusCode}
	}
	return resp, nil
}

func decodeBody[T any](op string, resp *http.Response) (T, error) {
	defer resp.Body.Close()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		return v, fmt.Errorf("%s: decode response: %w", op, err)
	}
	return v, nil
}

// List fetches the users matching query. An empty query lists everything.
func (c *HTTPClient) List(ctx context.Context, query string) ([]models.User, error) {
	resp, err := c.do(ctx, "list", http.MethodGet, c.collectionURL(query), nil)
	if err != nil {
		return nil, err
	}
	users, err := decodeBody[[]models.User]("list", resp)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// Create submits a new record and returns it with the server-assigned id.
func (c *HTTPClient) Create(ctx context.Context, draft models.Draft) (models.User, error) {
	resp, err := c.do(ctx, "create", http.MethodPost, c.collectionURL(""), draft)
	if err != nil {
		return models.User{}, err
	}
	return decodeBody[models.User]("create", resp)
}

// Update replaces every editable field of the record id.
func (c *HTTPClient) Update(ctx context.Context, id models.ID, draft models.Draft) (models.User, error) {
	resp, err := c.do(ctx, "update", http.MethodPut, c.itemURL(id), draft)
	if err != nil {
		return models.User{}, err
	}
	return decodeBody[models.User]("update", resp)
}

// Delete removes the record id. Whatever the success body holds is ignored,
// so empty and non-JSON bodies are fine.
func (c *HTTPClient) Delete(ctx context.Context, id models.ID) error {
	resp, err := c.do(ctx, "delete", http.MethodDelete, c.itemURL(id), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
