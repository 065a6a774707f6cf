// Package ingest collects source material for content generation:
// reference URL text and uploaded success-case PDFs.
package ingest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"golang.org/x/net/html"
)

const maxBodySize = 4 << 20

// Fetcher downloads reference pages and reduces them to plain text.
// Transient failures are retried; the generation path itself never sees
// a retry.
type Fetcher struct {
	client   *http.Client
	attempts uint
	delay    time.Duration
}

// NewFetcher creates a fetcher with default timeout and retry settings.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client:   &http.Client{Timeout: 10 * time.Second},
		attempts: 3,
		delay:    1 * time.Second,
	}
}

// Fetch downloads a URL and returns its visible text content.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	var body []byte
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if err != nil {
				return err
			}
			resp, err := f.client.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("unexpected status: %d", resp.StatusCode)
			}
			body, err = io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
			return err
		},
		retry.Context(ctx),
		retry.Attempts(f.attempts),
		retry.Delay(f.delay),
	)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	return htmlText(body), nil
}

// htmlText extracts the visible text of an HTML document, one line per
// text node. Script and style contents are dropped.
func htmlText(body []byte) string {
	tok := html.NewTokenizer(bytes.NewReader(body))
	var b strings.Builder
	skip := 0
	for {
		switch tok.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(b.String())
		case html.StartTagToken:
			if name, _ := tok.TagName(); isInvisible(string(name)) {
				skip++
			}
		case html.EndTagToken:
			if name, _ := tok.TagName(); isInvisible(string(name)) && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip > 0 {
				continue
			}
			if t := strings.TrimSpace(string(tok.Text())); t != "" {
				b.WriteString(t)
				b.WriteString("\n")
			}
		}
	}
}

func isInvisible(tag string) bool {
	return tag == "script" || tag == "style" || tag == "noscript"
}
