// Package webapi is the single-attempt HTTP GET helper behind the
// lookup commands. Every call is bounded by the client's timeout; a
// non-2xx status is an error, the body is size-capped.
package webapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

const maxBodyBytes = 5 * 1024 * 1024

func Get(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; kira/1.0)")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		msg := strings.TrimSpace(string(b))
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, fmt.Errorf("status=%d: %s", resp.StatusCode, msg)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
}

// GetJSON fetches url and returns the parsed document root.
func GetJSON(ctx context.Context, client *http.Client, url string) (gjson.Result, error) {
	body, err := Get(ctx, client, url)
	if err != nil {
		return gjson.Result{}, err
	}
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, fmt.Errorf("invalid json response")
	}
	return gjson.ParseBytes(body), nil
}
