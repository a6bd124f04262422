package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// HTTPError is returned when the upstream portal answers with a
// non-success status. The status code travels with the error so the
// caller can tell "blocked by source" apart from transport failures.
type HTTPError struct {
	URL        string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("fetch %s: HTTP %d", e.URL, e.StatusCode)
}

// Fetcher retrieves answer-key HTML pages. Board portals block obvious
// non-browser traffic, so every request carries realistic browser headers.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

func New(timeout time.Duration, userAgent string) *Fetcher {
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Fetch issues a single GET and returns the raw HTML body.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request for %s: %w", url, err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &HTTPError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", url, err)
	}

	return string(body), nil
}

// FetchAll retrieves every URL concurrently and returns the bodies in
// input order. A failed fetch yields an empty string in its slot rather
// than failing the batch; the first slot is the base page and its error
// is returned because the base page carries the candidate identity.
func (f *Fetcher) FetchAll(ctx context.Context, urls []string) ([]string, error) {
	pages := make([]string, len(urls))
	errs := make([]error, len(urls))

	var wg sync.WaitGroup
	for i, u := range urls {
		wg.Add(1)
		go func(i int, u string) {
			defer wg.Done()
			pages[i], errs[i] = f.Fetch(ctx, u)
		}(i, u)
	}
	wg.Wait()

	if len(errs) > 0 && errs[0] != nil {
		return nil, errs[0]
	}
	return pages, nil
}
