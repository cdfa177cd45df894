package domain

import (
	"strings"
	"time"
)

// Provider organizes events
type Provider struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	ShortDescription string    `json:"short_description,omitempty"`
	WebsiteURL       string    `json:"website_url,omitempty"`
	CoverURL         string    `json:"cover_url,omitempty"`
	Address          string    `json:"address,omitempty"`
	FeedURL          string    `json:"feed_url,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ImportStatus is the feed import state of a provider
type ImportStatus struct {
	ProviderID string     `json:"provider_id"`
	Name       string     `json:"name"`
	FeedURL    string     `json:"feed_url"`
	LastRun    *time.Time `json:"last_run,omitempty"`
	LastError  string     `json:"last_error,omitempty"`
}

// IngestSettingsPrefix starts the keys of every import marker setting
const IngestSettingsPrefix = "ingest."

// IngestLastRunKey is the setting holding the last successful import time of the provider
func IngestLastRunKey(providerID string) string {
	return IngestSettingsPrefix + providerID + ".last_run"
}

// IngestErrorKey is the setting holding the last import error of the provider, empty after a success
func IngestErrorKey(providerID string) string {
	return IngestSettingsPrefix + providerID + ".last_error"
}

// Event is a single happening users can discover and bookmark.
// Dates are kept as YYYY-MM-DD and times as HH:MM strings.
type Event struct {
	ID          string    `json:"id"`
	ProviderID  string    `json:"provider_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date,omitempty"`
	StartTime   string    `json:"start_time,omitempty"`
	EndTime     string    `json:"end_time,omitempty"`
	CoverURL    string    `json:"cover_url,omitempty"`
	URL         string    `json:"url,omitempty"`
	PriceType   PriceType `json:"price_type"`
	PriceAmount *float64  `json:"price_amount,omitempty"`
	Hash        string    `json:"-"`
	Provider    *Provider `json:"provider,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Suggestion converts the event to the compact form the assistant returns
func (e Event) Suggestion() EventSuggestion {
	res := EventSuggestion{
		ID:       e.ID,
		Title:    e.Title,
		Location: e.Location,
		Date:     e.StartDate,
		Time:     e.StartTime,
		ImageURL: e.CoverURL,
		Price:    Price{Type: e.PriceType, Amount: e.PriceAmount},
	}
	if res.Price.Type == "" {
		res.Price.Type = PriceFree
	}
	if e.Provider != nil {
		res.Provider = e.Provider.Name
		if res.Location == "" {
			res.Location = e.Provider.Address
		}
	}
	return res
}

// EventFilter defines event search criteria. From and To bound the start date, inclusive.
type EventFilter struct {
	Query      string
	From       string
	To         string
	ProviderID string
	Limit      int
	Offset     int
}

// Terms splits the query into lowercase search words, skipping very short ones
func (f EventFilter) Terms() []string {
	var res []string
	for _, w := range strings.Fields(strings.ToLower(f.Query)) {
		w = strings.Trim(w, ".,!?;:\"'()")
		if len([]rune(w)) < 3 {
			continue
		}
		res = append(res, w)
	}
	return res
}
