package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/blizbi/blizbi/pkg/domain"
	"github.com/blizbi/blizbi/pkg/repository"
)

type userCtxKey struct{}

// authMiddleware verifies the bearer token and puts the user into the request context
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			renderError(w, r, errors.New("authorization required"), http.StatusUnauthorized)
			return
		}
		user, err := s.auth.Verify(header)
		if err != nil {
			log.Printf("[DEBUG] rejected token, %v", err)
			renderError(w, r, errors.New("invalid token"), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userCtxKey{}, user)))
	})
}

// userFrom returns the authenticated user of the request
func userFrom(r *http.Request) domain.User {
	user, _ := r.Context().Value(userCtxKey{}).(domain.User)
	return user
}

// chatHandler answers a chat message
func (s *Server) chatHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request: %w", err), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		renderError(w, r, errors.New("message is required"), http.StatusBadRequest)
		return
	}

	resp, err := s.assistant.Answer(r.Context(), req)
	if err != nil {
		log.Printf("[ERROR] failed to answer chat message: %v", err)
		renderError(w, r, errors.New("assistant is not available"), http.StatusBadGateway)
		return
	}
	renderJSON(w, r, http.StatusOK, resp)
}

// listEventsHandler searches events, supports q, from, to, provider, limit and offset params
func (s *Server) listEventsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.EventFilter{
		Query:      q.Get("q"),
		From:       q.Get("from"),
		To:         q.Get("to"),
		ProviderID: q.Get("provider"),
	}
	for _, p := range []struct {
		name string
		dst  *int
	}{{"limit", &filter.Limit}, {"offset", &filter.Offset}} {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			renderError(w, r, fmt.Errorf("invalid %s", p.name), http.StatusBadRequest)
			return
		}
		*p.dst = n
	}
	for _, d := range []string{filter.From, filter.To} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(time.DateOnly, d); err != nil {
			renderError(w, r, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", d), http.StatusBadRequest)
			return
		}
	}

	events, err := s.db.SearchEvents(r.Context(), filter)
	if err != nil {
		log.Printf("[ERROR] failed to search events: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, events)
}

// getEventHandler returns a single event
func (s *Server) getEventHandler(w http.ResponseWriter, r *http.Request) {
	ev, err := s.db.GetEvent(r.Context(), r.PathValue("id"))
	if err != nil {
		renderDBError(w, r, "get event", err)
		return
	}
	renderJSON(w, r, http.StatusOK, ev)
}

// listProvidersHandler returns all providers
func (s *Server) listProvidersHandler(w http.ResponseWriter, r *http.Request) {
	providers, err := s.db.ListProviders(r.Context())
	if err != nil {
		renderDBError(w, r, "list providers", err)
		return
	}
	renderJSON(w, r, http.StatusOK, providers)
}

// getProviderHandler returns a single provider
func (s *Server) getProviderHandler(w http.ResponseWriter, r *http.Request) {
	p, err := s.db.GetProvider(r.Context(), r.PathValue("id"))
	if err != nil {
		renderDBError(w, r, "get provider", err)
		return
	}
	renderJSON(w, r, http.StatusOK, p)
}

// importStatusHandler returns the feed import state of providers
func (s *Server) importStatusHandler(w http.ResponseWriter, r *http.Request) {
	res, err := s.db.ImportStatus(r.Context())
	if err != nil {
		renderDBError(w, r, "get import status", err)
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

// getProfileHandler returns the profile of the user, 404 if not created yet
func (s *Server) getProfileHandler(w http.ResponseWriter, r *http.Request) {
	p, err := s.db.GetProfile(r.Context(), userFrom(r).ID)
	if err != nil {
		renderDBError(w, r, "get profile", err)
		return
	}
	renderJSON(w, r, http.StatusOK, p)
}

// ensureProfileHandler returns the profile of the user, creating it if needed
func (s *Server) ensureProfileHandler(w http.ResponseWriter, r *http.Request) {
	p, err := s.db.EnsureProfile(r.Context(), userFrom(r).ID)
	if err != nil {
		renderDBError(w, r, "ensure profile", err)
		return
	}
	renderJSON(w, r, http.StatusOK, p)
}

// updateInterestsHandler replaces the interests of the user profile
func (s *Server) updateInterestsHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		InterestIDs []string `json:"interest_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request: %w", err), http.StatusBadRequest)
		return
	}
	if req.InterestIDs == nil {
		req.InterestIDs = []string{}
	}
	p, err := s.db.UpdateInterests(r.Context(), userFrom(r).ID, req.InterestIDs)
	if err != nil {
		renderDBError(w, r, "update interests", err)
		return
	}
	renderJSON(w, r, http.StatusOK, p)
}

// ownProfile checks the profile in the path belongs to the user, renders the error if not
func (s *Server) ownProfile(w http.ResponseWriter, r *http.Request) (string, bool) {
	profileID := r.PathValue("profileID")
	p, err := s.db.GetProfile(r.Context(), userFrom(r).ID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		renderDBError(w, r, "get profile", err)
		return "", false
	}
	if p == nil || p.ID != profileID {
		renderError(w, r, errors.New("profile not found"), http.StatusNotFound)
		return "", false
	}
	return profileID, true
}

// listBookmarksHandler returns bookmarked event IDs of the profile
func (s *Server) listBookmarksHandler(w http.ResponseWriter, r *http.Request) {
	profileID, ok := s.ownProfile(w, r)
	if !ok {
		return
	}
	ids, err := s.db.ListBookmarks(r.Context(), profileID)
	if err != nil {
		renderDBError(w, r, "list bookmarks", err)
		return
	}
	renderJSON(w, r, http.StatusOK, ids)
}

// bookmarkDetailsHandler returns bookmarked events with providers, newest first
func (s *Server) bookmarkDetailsHandler(w http.ResponseWriter, r *http.Request) {
	profileID, ok := s.ownProfile(w, r)
	if !ok {
		return
	}
	details, err := s.db.BookmarkDetails(r.Context(), profileID)
	if err != nil {
		renderDBError(w, r, "bookmark details", err)
		return
	}
	renderJSON(w, r, http.StatusOK, details)
}

// addBookmarkHandler bookmarks the event, 409 if bookmarked already
func (s *Server) addBookmarkHandler(w http.ResponseWriter, r *http.Request) {
	profileID, ok := s.ownProfile(w, r)
	if !ok {
		return
	}
	b, err := s.db.AddBookmark(r.Context(), profileID, r.PathValue("eventID"))
	if err != nil {
		renderDBError(w, r, "add bookmark", err)
		return
	}
	renderJSON(w, r, http.StatusCreated, b)
}

// removeBookmarkHandler removes the bookmark, missing bookmark is fine
func (s *Server) removeBookmarkHandler(w http.ResponseWriter, r *http.Request) {
	profileID, ok := s.ownProfile(w, r)
	if !ok {
		return
	}
	if err := s.db.RemoveBookmark(r.Context(), profileID, r.PathValue("eventID")); err != nil {
		renderDBError(w, r, "remove bookmark", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// getConsentHandler returns the stored consent of the user, 404 if none
func (s *Server) getConsentHandler(w http.ResponseWriter, r *http.Request) {
	rec, err := s.db.GetConsent(r.Context(), userFrom(r).ID)
	if err != nil {
		renderDBError(w, r, "get consent", err)
		return
	}
	renderJSON(w, r, http.StatusOK, rec)
}

// putConsentHandler stores the consent of the user
func (s *Server) putConsentHandler(w http.ResponseWriter, r *http.Request) {
	var rec domain.ConsentRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		renderError(w, r, fmt.Errorf("invalid request: %w", err), http.StatusBadRequest)
		return
	}
	if rec.Version == "" {
		renderError(w, r, errors.New("version is required"), http.StatusBadRequest)
		return
	}
	rec.UserID = userFrom(r).ID
	rec.Preferences.Essential = true
	if err := s.db.UpsertConsent(r.Context(), rec); err != nil {
		renderDBError(w, r, "upsert consent", err)
		return
	}
	renderJSON(w, r, http.StatusOK, rec)
}

// deleteConsentHandler removes the stored consent of the user
func (s *Server) deleteConsentHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.db.DeleteConsent(r.Context(), userFrom(r).ID); err != nil {
		renderDBError(w, r, "delete consent", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// getChatHistoryHandler returns the stored conversation, empty if the user has no profile yet
func (s *Server) getChatHistoryHandler(w http.ResponseWriter, r *http.Request) {
	p, err := s.db.GetProfile(r.Context(), userFrom(r).ID)
	if errors.Is(err, repository.ErrNotFound) {
		renderJSON(w, r, http.StatusOK, []domain.Message{})
		return
	}
	if err != nil {
		renderDBError(w, r, "get profile", err)
		return
	}
	msgs, err := s.db.ChatHistory(r.Context(), p.ID)
	if err != nil {
		renderDBError(w, r, "get chat history", err)
		return
	}
	renderJSON(w, r, http.StatusOK, msgs)
}

// appendChatHistoryHandler adds messages to the stored conversation
func (s *Server) appendChatHistoryHandler(w http.ResponseWriter, r *http.Request) {
	var msgs []domain.Message
	if err := json.NewDecoder(r.Body).Decode(&msgs); err != nil {
		renderError(w, r, fmt.Errorf("invalid request: %w", err), http.StatusBadRequest)
		return
	}
	for _, m := range msgs {
		if m.Role != domain.RoleUser && m.Role != domain.RoleAssistant {
			renderError(w, r, fmt.Errorf("invalid message role %q", m.Role), http.StatusBadRequest)
			return
		}
	}
	p, err := s.db.EnsureProfile(r.Context(), userFrom(r).ID)
	if err != nil {
		renderDBError(w, r, "ensure profile", err)
		return
	}
	if err := s.db.AppendChatHistory(r.Context(), p.ID, msgs...); err != nil {
		renderDBError(w, r, "append chat history", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// clearChatHistoryHandler empties the stored conversation
func (s *Server) clearChatHistoryHandler(w http.ResponseWriter, r *http.Request) {
	p, err := s.db.GetProfile(r.Context(), userFrom(r).ID)
	if err != nil {
		renderDBError(w, r, "get profile", err)
		return
	}
	if err := s.db.ClearChatHistory(r.Context(), p.ID); err != nil {
		renderDBError(w, r, "clear chat history", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// deleteUserDataHandler erases the user rows of one collection
func (s *Server) deleteUserDataHandler(w http.ResponseWriter, r *http.Request) {
	collection := r.PathValue("collection")
	if !slices.Contains(domain.UserCollections, collection) {
		renderError(w, r, fmt.Errorf("unknown collection %q", collection), http.StatusBadRequest)
		return
	}
	user := userFrom(r)
	if err := s.db.DeleteUserData(r.Context(), user.ID, collection); err != nil {
		renderDBError(w, r, "delete "+collection, err)
		return
	}
	log.Printf("[INFO] deleted %s of %s", collection, user.ID)
	w.WriteHeader(http.StatusNoContent)
}

// renderDBError maps repository errors to status codes
func renderDBError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		renderError(w, r, err, http.StatusNotFound)
	case errors.Is(err, repository.ErrDuplicate):
		renderError(w, r, err, http.StatusConflict)
	default:
		log.Printf("[ERROR] failed to %s: %v", op, err)
		renderError(w, r, fmt.Errorf("%s failed", op), http.StatusInternalServerError)
	}
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
