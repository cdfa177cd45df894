package server

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/blizbi/blizbi/pkg/domain"
	"github.com/blizbi/blizbi/pkg/feed"
	"github.com/blizbi/blizbi/pkg/repository"
)

const defaultRSSLimit = 100

// rssHandler serves RSS feed of upcoming events.
// Supports both /rss/{providerID} and /rss?provider=... patterns
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	providerID := r.PathValue("providerID")
	if providerID == "" {
		providerID = r.URL.Query().Get("provider")
	}

	var provider *domain.Provider
	if providerID != "" {
		p, err := s.db.GetProvider(ctx, providerID)
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "Provider not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Printf("[ERROR] failed to get provider %s for RSS: %v", providerID, err)
			http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
			return
		}
		provider = p
	}

	filter := domain.EventFilter{From: time.Now().Format(time.DateOnly), ProviderID: providerID, Limit: defaultRSSLimit}
	events, err := s.db.SearchEvents(ctx, filter)
	if err != nil {
		log.Printf("[ERROR] failed to get events for RSS: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	rss, err := feed.NewGenerator(s.config.GetBaseURL()).GenerateRSS(events, provider)
	if err != nil {
		log.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		log.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}
