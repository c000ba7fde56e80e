package revalidate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Kind tells the rendering layer whether to drop a single page or a whole
// layout subtree.
type Kind string

const (
	KindPage   Kind = "page"
	KindLayout Kind = "layout"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(strings.TrimSpace(s)) {
	case "", KindPage:
		return KindPage, nil
	case KindLayout:
		return KindLayout, nil
	default:
		return "", fmt.Errorf("type must be %q or %q", KindPage, KindLayout)
	}
}

type Request struct {
	Path string `json:"path"`
	Type Kind   `json:"type"`
}

// permanentError marks failures that retrying will not fix.
type permanentError struct {
	err error
}

func (e permanentError) Error() string { return e.err.Error() }
func (e permanentError) Unwrap() error { return e.err }

// Client posts revalidation signals to the rendering layer. A client
// without a URL does nothing.
type Client struct {
	url        string
	secret     string
	httpClient *http.Client
	backoffs   []time.Duration
}

func NewClient(url, secret string) *Client {
	return &Client{
		url:    url,
		secret: secret,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		backoffs: []time.Duration{500 * time.Millisecond, 1 * time.Second, 2 * time.Second},
	}
}

// WithBackoffs replaces the wait between attempts; the number of attempts is
// len(backoffs)+1.
func (c *Client) WithBackoffs(backoffs ...time.Duration) *Client {
	c.backoffs = backoffs
	return c
}

func (c *Client) Enabled() bool {
	return c != nil && c.url != ""
}

func (c *Client) Revalidate(ctx context.Context, path string, kind Kind) error {
	if !c.Enabled() {
		return nil
	}
	return c.RetryWithBackoff(ctx, func() error {
		return c.send(ctx, Request{Path: path, Type: kind})
	})
}

func (c *Client) send(ctx context.Context, body Request) error {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return permanentError{fmt.Errorf("failed to marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(jsonData))
	if err != nil {
		return permanentError{fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.secret != "" {
		req.Header.Set("Authorization", "Bearer "+c.secret)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	err = fmt.Errorf("revalidate %s failed: status %d, body: %s", body.Path, resp.StatusCode, string(respBody))
	if resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
		return permanentError{err}
	}
	return err
}

// RetryWithBackoff executes fn until it succeeds, returns a permanent error,
// the context ends or the attempts run out.
func (c *Client) RetryWithBackoff(ctx context.Context, fn func() error) error {
	attempts := len(c.backoffs) + 1

	var lastErr error
	for i := 0; i < attempts; i++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		var perm permanentError
		if errors.As(err, &perm) {
			return perm.err
		}
		if i == attempts-1 {
			break
		}

		timer := time.NewTimer(c.backoffs[i])
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("revalidate cancelled: %w", ctx.Err())
		case <-timer.C:
		}
	}

	return fmt.Errorf("failed after %d attempts: %w", attempts, lastErr)
}
