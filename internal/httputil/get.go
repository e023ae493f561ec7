// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by the E-utilities clients.
package httputil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxBodySize bounds how much of a response body Get will read. Tests
// lower it.
var MaxBodySize int64 = 10 << 20

// ErrBodyTooLarge is returned when a response body exceeds MaxBodySize.
var ErrBodyTooLarge = errors.New("response body too large")

// StatusError is returned when the server answers with anything but 200.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
}

// Get issues one GET request and returns the response body. It sets the
// User-Agent header when userAgent is non-empty. There is no retry: a
// non-200 status is returned as a *StatusError and the caller decides what
// to do with it.
func Get(ctx context.Context, client *http.Client, url, userAgent string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, io.LimitReader(resp.Body, MaxBodySize))
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: url}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if int64(len(body)) > MaxBodySize {
		return nil, fmt.Errorf("%w: more than %d bytes from %s", ErrBodyTooLarge, MaxBodySize, url)
	}
	return body, nil
}
