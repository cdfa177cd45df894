// Package content reads event pages of providers to fill in what their feeds leave out.
package content

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

const maxPageSize = 5 * 1024 * 1024

// Page is what was extracted from an event page
type Page struct {
	Text  string // main text of the page
	Image string // og:image, absolute
}

// HTTPExtractor extracts event page content using trafilatura
type HTTPExtractor struct {
	client *http.Client
}

// NewHTTPExtractor creates a new content extractor
func NewHTTPExtractor(timeout time.Duration) *HTTPExtractor {
	return &HTTPExtractor{client: &http.Client{Timeout: timeout}}
}

// Extract retrieves the page and extracts its main text and cover image.
// The og:description is used when no main text can be found.
func (e *HTTPExtractor) Extract(ctx context.Context, urlStr string) (*Page, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("invalid URL: %s", urlStr)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; Blizbi/1.0)")
	req.Header.Set("Accept-Language", "nb-NO,nb;q=0.9,no;q=0.8,en;q=0.7")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL %s: %w", urlStr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d for URL %s", resp.StatusCode, urlStr)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", urlStr, err)
	}

	meta := openGraph(body, parsedURL)
	page := &Page{Image: meta["og:image"]}

	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		IncludeImages:   false,
		IncludeLinks:    false,
		Deduplicate:     true,
		OriginalURL:     parsedURL,
	}
	result, err := trafilatura.Extract(bytes.NewReader(body), opts)
	if err == nil && result != nil {
		page.Text = strings.TrimSpace(result.ContentText)
	}
	if page.Text == "" {
		page.Text = strings.TrimSpace(meta["og:description"])
	}

	if page.Text == "" && page.Image == "" {
		return nil, fmt.Errorf("no content extracted from %s", urlStr)
	}
	return page, nil
}

// openGraph collects og:* meta properties of the page head, relative image links are resolved
func openGraph(body []byte, base *url.URL) map[string]string {
	res := map[string]string{}
	z := html.NewTokenizer(bytes.NewReader(body))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return res
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if string(name) == "body" {
				return res
			}
			if string(name) != "meta" || !hasAttr {
				continue
			}
			var prop, val string
			for {
				k, v, more := z.TagAttr()
				switch string(k) {
				case "property", "name":
					prop = string(v)
				case "content":
					val = string(v)
				}
				if !more {
					break
				}
			}
			if !strings.HasPrefix(prop, "og:") || val == "" {
				continue
			}
			if _, seen := res[prop]; seen {
				continue
			}
			if prop == "og:image" {
				ref, err := url.Parse(val)
				if err != nil {
					continue
				}
				val = base.ResolveReference(ref).String()
			}
			res[prop] = val
		}
	}
}
