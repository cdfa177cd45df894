package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/blizbi/blizbi/pkg/domain"
	"github.com/blizbi/blizbi/pkg/repository"
)

// adminMiddleware lets through users with the admin claim only, runs after authMiddleware
func (s *Server) adminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !userFrom(r).Admin {
			renderError(w, r, errors.New("admin access required"), http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// dashboardHandler returns catalog and user counts with per-provider metrics
func (s *Server) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	res, err := s.db.Dashboard(r.Context(), time.Now().Format(time.DateOnly))
	if err != nil {
		renderDBError(w, r, "get dashboard", err)
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

// createEventHandler adds an event to the catalog
func (s *Server) createEventHandler(w http.ResponseWriter, r *http.Request) {
	ev, ok := s.decodeEvent(w, r)
	if !ok {
		return
	}
	ev.ID, ev.Hash = "", ""
	if err := s.db.CreateEvent(r.Context(), ev); err != nil {
		renderDBError(w, r, "create event", err)
		return
	}
	log.Printf("[INFO] event %s created by %s", ev.ID, userFrom(r).ID)
	s.renderEvent(w, r, http.StatusCreated, ev.ID)
}

// updateEventHandler replaces the fields of an event
func (s *Server) updateEventHandler(w http.ResponseWriter, r *http.Request) {
	ev, ok := s.decodeEvent(w, r)
	if !ok {
		return
	}
	ev.ID = r.PathValue("id")
	if err := s.db.UpdateEvent(r.Context(), ev); err != nil {
		renderDBError(w, r, "update event", err)
		return
	}
	log.Printf("[INFO] event %s updated by %s", ev.ID, userFrom(r).ID)
	s.renderEvent(w, r, http.StatusOK, ev.ID)
}

// deleteEventHandler removes an event, bookmarks of it are skipped from then on
func (s *Server) deleteEventHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.db.DeleteEvent(r.Context(), id); err != nil {
		renderDBError(w, r, "delete event", err)
		return
	}
	log.Printf("[INFO] event %s deleted by %s", id, userFrom(r).ID)
	w.WriteHeader(http.StatusNoContent)
}

// createProviderHandler adds a provider, the id is generated unless given
func (s *Server) createProviderHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := decodeProvider(w, r)
	if !ok {
		return
	}
	if err := s.db.CreateProvider(r.Context(), p); err != nil {
		renderDBError(w, r, "create provider", err)
		return
	}
	log.Printf("[INFO] provider %s created by %s", p.ID, userFrom(r).ID)
	s.renderProvider(w, r, http.StatusCreated, p.ID)
}

// updateProviderHandler replaces the fields of a provider
func (s *Server) updateProviderHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := decodeProvider(w, r)
	if !ok {
		return
	}
	p.ID = r.PathValue("id")
	if err := s.db.UpdateProvider(r.Context(), p); err != nil {
		renderDBError(w, r, "update provider", err)
		return
	}
	log.Printf("[INFO] provider %s updated by %s", p.ID, userFrom(r).ID)
	s.renderProvider(w, r, http.StatusOK, p.ID)
}

// deleteProviderHandler removes a provider and all of its events
func (s *Server) deleteProviderHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.db.DeleteProvider(r.Context(), id); err != nil {
		renderDBError(w, r, "delete provider", err)
		return
	}
	log.Printf("[INFO] provider %s deleted by %s", id, userFrom(r).ID)
	w.WriteHeader(http.StatusNoContent)
}

// listInterestsHandler returns the interests profiles can pick
func (s *Server) listInterestsHandler(w http.ResponseWriter, r *http.Request) {
	res, err := s.db.ListInterests(r.Context())
	if err != nil {
		renderDBError(w, r, "list interests", err)
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

// createInterestHandler adds an interest
func (s *Server) createInterestHandler(w http.ResponseWriter, r *http.Request) {
	var in domain.Interest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		renderError(w, r, fmt.Errorf("invalid request: %w", err), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(in.Name) == "" {
		renderError(w, r, errors.New("name is required"), http.StatusBadRequest)
		return
	}
	if err := s.db.CreateInterest(r.Context(), &in); err != nil {
		renderDBError(w, r, "create interest", err)
		return
	}
	renderJSON(w, r, http.StatusCreated, in)
}

// decodeEvent reads and checks the event of the request body, renders the error if invalid
func (s *Server) decodeEvent(w http.ResponseWriter, r *http.Request) (*domain.Event, bool) {
	var ev domain.Event
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		renderError(w, r, fmt.Errorf("invalid request: %w", err), http.StatusBadRequest)
		return nil, false
	}
	if err := validateEvent(&ev); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return nil, false
	}

	_, err := s.db.GetProvider(r.Context(), ev.ProviderID)
	if errors.Is(err, repository.ErrNotFound) {
		renderError(w, r, fmt.Errorf("unknown provider %q", ev.ProviderID), http.StatusBadRequest)
		return nil, false
	}
	if err != nil {
		renderDBError(w, r, "get provider", err)
		return nil, false
	}
	ev.Provider = nil
	return &ev, true
}

// validateEvent checks required fields and formats, the price type defaults to free
func validateEvent(ev *domain.Event) error {
	ev.Title = strings.TrimSpace(ev.Title)
	if ev.Title == "" {
		return errors.New("title is required")
	}
	if ev.ProviderID == "" {
		return errors.New("provider_id is required")
	}
	if _, err := time.Parse(time.DateOnly, ev.StartDate); err != nil {
		return fmt.Errorf("invalid start_date %q, expected YYYY-MM-DD", ev.StartDate)
	}
	if ev.EndDate != "" {
		if _, err := time.Parse(time.DateOnly, ev.EndDate); err != nil {
			return fmt.Errorf("invalid end_date %q, expected YYYY-MM-DD", ev.EndDate)
		}
		if ev.EndDate < ev.StartDate {
			return errors.New("end_date is before start_date")
		}
	}
	for _, t := range []string{ev.StartTime, ev.EndTime} {
		if t == "" {
			continue
		}
		if _, err := time.Parse("15:04", t); err != nil {
			return fmt.Errorf("invalid time %q, expected HH:MM", t)
		}
	}

	switch ev.PriceType {
	case "":
		ev.PriceType = domain.PriceFree
	case domain.PriceFree, domain.PricePaid:
	default:
		return fmt.Errorf("invalid price_type %q", ev.PriceType)
	}
	if ev.PriceType == domain.PriceFree {
		ev.PriceAmount = nil
	}
	if ev.PriceAmount != nil && *ev.PriceAmount < 0 {
		return errors.New("price_amount is negative")
	}
	return nil
}

// decodeProvider reads the provider of the request body, renders the error if invalid
func decodeProvider(w http.ResponseWriter, r *http.Request) (*domain.Provider, bool) {
	var p domain.Provider
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		renderError(w, r, fmt.Errorf("invalid request: %w", err), http.StatusBadRequest)
		return nil, false
	}
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		renderError(w, r, errors.New("name is required"), http.StatusBadRequest)
		return nil, false
	}
	return &p, true
}

// renderEvent sends the stored event, with its provider joined
func (s *Server) renderEvent(w http.ResponseWriter, r *http.Request, code int, id string) {
	ev, err := s.db.GetEvent(r.Context(), id)
	if err != nil {
		renderDBError(w, r, "get event", err)
		return
	}
	renderJSON(w, r, code, ev)
}

// renderProvider sends the stored provider
func (s *Server) renderProvider(w http.ResponseWriter, r *http.Request, code int, id string) {
	p, err := s.db.GetProvider(r.Context(), id)
	if err != nil {
		renderDBError(w, r, "get provider", err)
		return
	}
	renderJSON(w, r, code, p)
}
