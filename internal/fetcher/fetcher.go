package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultURL is the dictionary.com word of the day page
const DefaultURL = "https://www.dictionary.com/e/word-of-the-day/"

// browserHeaders mimic a desktop browser so basic bot filters let us through
var browserHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.5",
	"Connection":      "keep-alive",
}

// StatusError is returned when the page responds with anything but 200 OK
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected HTTP status: %d", e.StatusCode)
}

// Fetcher downloads the word of the day page
type Fetcher struct {
	url  string
	http *resty.Client
}

// New creates a fetcher for the given page url
func New(url string, timeout time.Duration) *Fetcher {
	client := resty.New()
	client.SetHeaders(browserHeaders)
	client.SetTimeout(timeout)

	return &Fetcher{
		url:  url,
		http: client,
	}
}

// Fetch performs a single GET request and returns the page markup.
// No retry happens here.
func (f *Fetcher) Fetch(ctx context.Context) (string, error) {
	res, err := f.http.R().
		SetContext(ctx).
		Get(f.url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", f.url, err)
	}

	if res.StatusCode() != http.StatusOK {
		return "", &StatusError{StatusCode: res.StatusCode()}
	}

	return res.String(), nil
}
