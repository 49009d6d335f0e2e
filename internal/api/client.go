package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

const (
	defaultBaseURL = "https://api.github.com"
	perPage        = 100
)

// Client lists codespaces for the authenticated user.
type Client struct {
	Token      string
	BaseURL    string       // empty uses the public GitHub API
	HTTPClient *http.Client // nil uses http.DefaultClient
	Logger     *slog.Logger
}

// List fetches all codespaces accessible to the token, following pagination
// until the full set is collected. Ordering across pages is not meaningful;
// callers sort the result themselves.
func (c *Client) List(ctx context.Context) ([]Codespace, error) {
	base := c.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	var all []Codespace
	total := -1
	for page := 1; ; page++ {
		url := fmt.Sprintf("%s/user/codespaces?per_page=%d&page=%d", base, perPage, page)
		batch, pageTotal, err := c.fetchPage(ctx, client, url)
		if err != nil {
			return nil, err
		}
		total = pageTotal

		if c.Logger != nil {
			c.Logger.Debug("fetched codespaces page", "page", page, "count", len(batch), "total", total)
		}

		all = append(all, batch...)
		if len(batch) == 0 || len(all) >= total {
			break
		}
	}

	return all, nil
}

func (c *Client) fetchPage(ctx context.Context, client *http.Client, url string) ([]Codespace, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, &ServiceError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, 0, &AuthError{StatusCode: resp.StatusCode}
	case resp.StatusCode >= 500:
		return nil, 0, &ServiceError{StatusCode: resp.StatusCode}
	case resp.StatusCode != http.StatusOK:
		return nil, 0, fmt.Errorf("GitHub API returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, &ServiceError{Err: err}
	}

	var lr listResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		return nil, 0, &MalformedResponseError{Err: err}
	}

	return lr.Codespaces, lr.TotalCount, nil
}
