package feed

import (
	"encoding/xml"
	"fmt"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/blizbi/blizbi/pkg/domain"
)

// Generator renders upcoming events as an RSS feed
type Generator struct {
	baseURL string
	now     func() time.Time
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{baseURL: strings.TrimRight(baseURL, "/"), now: time.Now}
}

// GenerateRSS creates an RSS 2.0 feed of events. With a provider the feed is titled and linked for it.
func (g *Generator) GenerateRSS(events []domain.Event, provider *domain.Provider) (string, error) {
	title := "Blizbi - upcoming events"
	selfLink := g.baseURL + "/rss"
	description := "Upcoming events from all providers"
	if provider != nil {
		title = "Blizbi - " + provider.Name
		selfLink = fmt.Sprintf("%s/rss/%s", g.baseURL, provider.ID)
		description = "Upcoming events by " + provider.Name
		if provider.ShortDescription != "" {
			description = provider.ShortDescription
		}
	}

	rssItems := make([]*RSSItem, 0, len(events))
	for _, ev := range events {
		rssItems = append(rssItems, g.convertToRSSItem(ev))
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         title,
			Link:          g.baseURL + "/",
			Description:   description,
			Language:      "no",
			AtomLink:      &AtomLink{Href: selfLink, Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: g.now().Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}
	return xml.Header + string(output), nil
}

// convertToRSSItem converts an event to an RSS item, the publish date is the event start
func (g *Generator) convertToRSSItem(ev domain.Event) *RSSItem {
	when := ev.StartDate
	if ev.StartTime != "" {
		when += " " + ev.StartTime
	}
	var lines []string
	lines = append(lines, "When: "+when)
	if loc := ev.Suggestion().Location; loc != "" {
		lines = append(lines, "Where: "+loc)
	}
	if ev.PriceType == domain.PricePaid && ev.PriceAmount != nil {
		lines = append(lines, fmt.Sprintf("Price: %.0f NOK", *ev.PriceAmount))
	} else {
		lines = append(lines, "Price: free")
	}
	desc := strings.Join(lines, "\n")
	if ev.Description != "" {
		desc += "\n\n" + ev.Description
	}

	link := ev.URL
	if link == "" {
		link = fmt.Sprintf("%s/events/%s", g.baseURL, ev.ID)
	}

	item := &RSSItem{
		Title:       ev.Title,
		Link:        link,
		GUID:        ev.ID,
		Description: desc,
	}
	if start, err := time.Parse(time.DateOnly, ev.StartDate); err == nil {
		if ev.StartTime != "" {
			if t, err := time.Parse("2006-01-02 15:04", ev.StartDate+" "+ev.StartTime); err == nil {
				start = t
			}
		}
		item.PubDate = start.Format(time.RFC1123Z)
	}
	if ev.Provider != nil && ev.Provider.Name != "" {
		item.Categories = []string{ev.Provider.Name}
	}
	if ev.CoverURL != "" {
		item.Enclosure = &RSSEnclosure{URL: ev.CoverURL, Type: imageType(ev.CoverURL)}
	}
	return item
}

// imageType guesses the enclosure mime type from the image extension
func imageType(u string) string {
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		u = u[:i]
	}
	if t := mime.TypeByExtension(path.Ext(u)); strings.HasPrefix(t, "image/") {
		return t
	}
	return "image/jpeg"
}
