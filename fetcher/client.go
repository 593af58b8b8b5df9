package fetcher

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
)

const (
	acceptHTML     = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
	acceptEncoding = "gzip, br"

	// Video pages run to a few MB once the hydration state is inlined
	maxPageSize = 16 << 20
)

var browserHeaders = map[string]string{
	"Accept":          acceptHTML,
	"Accept-Language": "en-US,en;q=0.5",
	"Accept-Encoding": acceptEncoding,
}

// StatusError is returned when the page responds outside the 2xx range.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to fetch page: %d", e.StatusCode)
}

type Client struct {
	userAgent  string
	HTTPClient *http.Client
}

func NewClient(userAgent string) *Client {
	return &Client{
		userAgent:  userAgent,
		HTTPClient: http.DefaultClient,
	}
}

// FetchPage GETs pageURL with browser-like headers and returns the decoded body.
// There are no retries; the redirect policy and timeouts are the HTTP client's.
func (c Client) FetchPage(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to create request")
	}
	headers := maps.Clone(browserHeaders)
	headers["User-Agent"] = c.userAgent
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "failed to fetch page")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &StatusError{StatusCode: resp.StatusCode}
	}

	body, err := decodeBody(resp)
	if err != nil {
		return "", err
	}
	defer body.Close()

	// one byte past the cap tells a page that fits apart from one that doesn't
	page, err := io.ReadAll(io.LimitReader(body, maxPageSize+1))
	if err != nil {
		return "", errors.Wrap(err, "failed to read page body")
	}
	if len(page) > maxPageSize {
		return "", errors.Errorf("page exceeds %d bytes", maxPageSize)
	}
	return string(page), nil
}

// Setting Accept-Encoding ourselves turns off the transport's transparent gzip, so the
// body has to be unwrapped here.
func decodeBody(resp *http.Response) (io.ReadCloser, error) {
	switch strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))) {
	case "gzip":
		reader, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open gzip body")
		}
		return reader, nil
	case "br":
		return io.NopCloser(brotli.NewReader(resp.Body)), nil
	default:
		return io.NopCloser(resp.Body), nil
	}
}
