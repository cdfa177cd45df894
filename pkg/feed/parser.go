// Package feed reads provider RSS/Atom feeds and renders events back as RSS.
package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
)

const (
	maxFeedSize  = 5 << 20
	fetchRetries = 3
)

// eventModule is the prefix of the RSS event module elements, http://purl.org/rss/1.0/modules/event/
const eventModule = "ev"

// eventTimeLayouts are the date formats seen in ev:startdate and ev:enddate
var eventTimeLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02 15:04", time.DateOnly}

// Parser fetches provider feeds
type Parser struct {
	client    *http.Client
	userAgent string
	retries   int
}

// NewParser creates a feed parser with the request timeout and user agent
func NewParser(timeout time.Duration, userAgent string) *Parser {
	if userAgent == "" {
		userAgent = "Mozilla/5.0 (compatible; Blizbi/1.0)"
	}
	return &Parser{client: &http.Client{Timeout: timeout}, userAgent: userAgent, retries: fetchRetries}
}

// Parse fetches and parses the feed at url. Transport errors and 5xx responses are retried.
func (p *Parser) Parse(ctx context.Context, url string) (*ParsedFeed, error) {
	var data []byte
	err := repeater.NewBackoff(p.retries, 200*time.Millisecond).Do(ctx, func() error {
		var err error
		data, err = p.fetch(ctx, url)
		return err
	}, errPermanent)
	if err != nil {
		var pe *permanentError
		if errors.As(err, &pe) {
			err = pe.err
		}
		return nil, fmt.Errorf("fetch feed: %w", err)
	}

	feed, err := gofeed.NewParser().ParseString(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	res := &ParsedFeed{Title: feed.Title, Description: feed.Description, Link: feed.Link,
		Items: make([]ParsedItem, 0, len(feed.Items))}
	for _, item := range feed.Items {
		res.Items = append(res.Items, toItem(feed.Title, item))
	}
	return res, nil
}

func toItem(feedTitle string, item *gofeed.Item) ParsedItem {
	res := ParsedItem{
		GUID:        item.GUID,
		Title:       strings.TrimSpace(item.Title),
		Link:        item.Link,
		Description: item.Description,
		Content:     item.Content,
		Categories:  item.Categories,
		ImageURL:    imageOf(item),
	}
	if res.GUID == "" {
		res.GUID = item.Link
	}
	if res.GUID == "" {
		res.GUID = feedTitle + "-" + item.Title
	}

	switch {
	case item.PublishedParsed != nil:
		res.Published = *item.PublishedParsed
	case item.UpdatedParsed != nil:
		res.Published = *item.UpdatedParsed
	}

	if ev, ok := item.Extensions[eventModule]; ok {
		res.Starts = eventTime(ev, "startdate")
		res.Ends = eventTime(ev, "enddate")
		res.Location = strings.TrimSpace(eventValue(ev, "location"))
	}
	return res
}

// imageOf returns the item image, falling back to the first image enclosure
func imageOf(item *gofeed.Item) string {
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}
	for _, enc := range item.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}
	return ""
}

func eventValue(ev map[string][]ext.Extension, name string) string {
	if vals := ev[name]; len(vals) > 0 {
		return vals[0].Value
	}
	return ""
}

// eventTime parses an event module date, zero if missing or malformed.
// Dates without zone are in UTC, the importer converts them to the configured location.
func eventTime(ev map[string][]ext.Extension, name string) time.Time {
	v := strings.TrimSpace(eventValue(ev, name))
	if v == "" {
		return time.Time{}
	}
	for _, layout := range eventTimeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

// errPermanent marks fetch errors not worth retrying
var errPermanent = errors.New("permanent error")

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }

func (e *permanentError) Is(target error) bool {
	return target == errPermanent //nolint:errorlint // sentinel identity check
}

// fetch reads the feed body. Client errors are permanent.
func (p *Parser) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, &permanentError{err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "application/rss+xml,application/atom+xml,application/xml;q=0.9,text/xml;q=0.8,*/*;q=0.5")
	req.Header.Set("Accept-Language", "nb-NO,nb;q=0.9,no;q=0.8,en;q=0.7")

	resp, err := p.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, &permanentError{err: err}
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		if resp.StatusCode < http.StatusInternalServerError {
			return nil, &permanentError{err: err}
		}
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedSize+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(data) > maxFeedSize {
		return nil, &permanentError{err: fmt.Errorf("feed larger than %d bytes", maxFeedSize)}
	}
	return data, nil
}
