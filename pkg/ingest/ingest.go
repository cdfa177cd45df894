// Package ingest periodically imports provider events from their RSS/Atom feeds.
package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"html"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/sync/errgroup"

	"github.com/blizbi/blizbi/pkg/content"
	"github.com/blizbi/blizbi/pkg/domain"
	"github.com/blizbi/blizbi/pkg/feed"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/parser.go -pkg mocks -skip-ensure -fmt goimports . Parser
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor

// Store keeps providers, events and import markers
type Store interface {
	ProvidersWithFeeds(ctx context.Context) ([]domain.Provider, error)
	UpsertEvent(ctx context.Context, ev *domain.Event) error
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

// Parser reads a provider feed
type Parser interface {
	Parse(ctx context.Context, url string) (*feed.ParsedFeed, error)
}

// Extractor reads an event page
type Extractor interface {
	Extract(ctx context.Context, url string) (*content.Page, error)
}

// Config holds importer configuration
type Config struct {
	Interval   time.Duration
	MaxWorkers int
	Location   *time.Location // zone event start times are shown in
}

// Stats sums up one import run
type Stats struct {
	Providers int
	Events    int
	Failed    int
}

// Importer imports events of all providers having a feed
type Importer struct {
	store     Store
	parser    Parser
	extractor Extractor // optional
	cfg       Config
	policy    *bluemonday.Policy
	now       func() time.Time

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// New makes an importer. The extractor is optional, without it events keep what the feed has.
func New(store Store, parser Parser, extractor Extractor, cfg Config) *Importer {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 4
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Importer{
		store:     store,
		parser:    parser,
		extractor: extractor,
		cfg:       cfg,
		policy:    bluemonday.StrictPolicy(),
		now:       time.Now,
	}
}

// Start runs imports right away and then every interval until Stop or ctx is done
func (im *Importer) Start(ctx context.Context) {
	ctx, im.cancel = context.WithCancel(ctx)
	im.wg.Add(1)
	go func() {
		defer im.wg.Done()
		ticker := time.NewTicker(im.cfg.Interval)
		defer ticker.Stop()

		im.ImportAll(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				im.ImportAll(ctx)
			}
		}
	}()
	lgr.Printf("[INFO] feed import started with interval %v, %d workers", im.cfg.Interval, im.cfg.MaxWorkers)
}

// Stop stops periodic imports and waits for the running one
func (im *Importer) Stop() {
	if im.cancel != nil {
		im.cancel()
	}
	im.wg.Wait()
	lgr.Printf("[INFO] feed import stopped")
}

// ImportAll imports every provider feed concurrently. Failures are logged and counted, never fatal.
func (im *Importer) ImportAll(ctx context.Context) Stats {
	providers, err := im.store.ProvidersWithFeeds(ctx)
	if err != nil {
		lgr.Printf("[ERROR] failed to get providers with feeds: %v", err)
		return Stats{}
	}
	lgr.Printf("[INFO] importing events of %d providers", len(providers))

	var mu sync.Mutex
	stats := Stats{Providers: len(providers)}

	g := errgroup.Group{}
	g.SetLimit(im.cfg.MaxWorkers)
	for _, p := range providers {
		g.Go(func() error {
			n, err := im.ImportProvider(ctx, p)
			mu.Lock()
			defer mu.Unlock()
			stats.Events += n
			if err != nil {
				stats.Failed++
				lgr.Printf("[WARN] failed to import feed of %s: %v", p.Name, err)
			}
			return nil
		})
	}
	_ = g.Wait()

	lgr.Printf("[INFO] feed import completed, %d events, %d providers failed", stats.Events, stats.Failed)
	return stats
}

// ImportProvider imports the feed of a single provider and returns the number of stored events.
// The outcome is recorded in the provider's import markers.
func (im *Importer) ImportProvider(ctx context.Context, p domain.Provider) (int, error) {
	if p.FeedURL == "" {
		return 0, fmt.Errorf("provider %s has no feed", p.ID)
	}
	started := im.now().UTC()
	lastRun := im.lastRun(ctx, p.ID)

	parsed, err := im.parser.Parse(ctx, p.FeedURL)
	if err != nil {
		im.mark(ctx, domain.IngestErrorKey(p.ID), err.Error())
		return 0, fmt.Errorf("parse %s: %w", p.FeedURL, err)
	}

	count := 0
	for _, item := range parsed.Items {
		ev, ok := im.toEvent(p, item)
		if !ok {
			lgr.Printf("[DEBUG] skipping item %q of %s, no date", item.Title, p.Name)
			continue
		}
		if im.extractor != nil && ev.URL != "" && (ev.Description == "" || ev.CoverURL == "") && newer(item, lastRun) {
			im.enrich(ctx, ev)
		}
		if err := im.store.UpsertEvent(ctx, ev); err != nil {
			lgr.Printf("[WARN] failed to store event %q of %s: %v", ev.Title, p.Name, err)
			continue
		}
		count++
	}

	im.mark(ctx, domain.IngestLastRunKey(p.ID), started.Format(time.RFC3339))
	im.mark(ctx, domain.IngestErrorKey(p.ID), "")
	if count > 0 {
		lgr.Printf("[INFO] imported %d events of %s", count, p.Name)
	}
	return count, nil
}

// toEvent maps a feed item to an event. The event module dates win over the publish date,
// items without any date can't be events.
func (im *Importer) toEvent(p domain.Provider, item feed.ParsedItem) (*domain.Event, bool) {
	starts := item.Starts
	if starts.IsZero() {
		starts = item.Published
	}
	if starts.IsZero() || strings.TrimSpace(item.Title) == "" {
		return nil, false
	}
	start := starts.In(im.cfg.Location)
	ev := &domain.Event{
		ProviderID:  p.ID,
		Title:       im.plain(item.Title),
		Description: im.plain(firstNonEmpty(item.Description, item.Content)),
		StartDate:   start.Format(time.DateOnly),
		StartTime:   clock(start),
		URL:         item.Link,
		CoverURL:    item.ImageURL,
		Location:    firstNonEmpty(im.plain(item.Location), p.Address),
		PriceType:   domain.PriceFree,
		Hash:        Hash(p.ID, item.GUID),
	}
	if !item.Ends.IsZero() && !item.Ends.Before(starts) {
		end := item.Ends.In(im.cfg.Location)
		if end.Format(time.DateOnly) != ev.StartDate {
			ev.EndDate = end.Format(time.DateOnly)
		}
		ev.EndTime = clock(end)
	}
	return ev, true
}

// clock returns the HH:MM time, empty at midnight as date-only values carry no time
func clock(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 {
		return ""
	}
	return t.Format("15:04")
}

// enrich fills description and cover from the event page
func (im *Importer) enrich(ctx context.Context, ev *domain.Event) {
	page, err := im.extractor.Extract(ctx, ev.URL)
	if err != nil {
		lgr.Printf("[DEBUG] can't extract %s: %v", ev.URL, err)
		return
	}
	if ev.Description == "" {
		ev.Description = im.plain(page.Text)
	}
	if ev.CoverURL == "" {
		ev.CoverURL = page.Image
	}
}

// plain strips markup and collapses whitespace
func (im *Importer) plain(s string) string {
	return strings.Join(strings.Fields(html.UnescapeString(im.policy.Sanitize(s))), " ")
}

func (im *Importer) lastRun(ctx context.Context, providerID string) time.Time {
	v, err := im.store.GetSetting(ctx, domain.IngestLastRunKey(providerID))
	if err != nil || v == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}
	}
	return t
}

func (im *Importer) mark(ctx context.Context, key, value string) {
	if err := im.store.SetSetting(ctx, key, value); err != nil {
		lgr.Printf("[WARN] failed to set %s: %v", key, err)
	}
}

// newer reports whether the item appeared after the last run, items of the first run always are
func newer(item feed.ParsedItem, lastRun time.Time) bool {
	return lastRun.IsZero() || item.Published.After(lastRun)
}

// Hash identifies an imported event by provider and feed guid
func Hash(providerID, guid string) string {
	sum := sha256.Sum256([]byte(providerID + "\x00" + guid))
	return hex.EncodeToString(sum[:])
}


func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
