package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blizbi/blizbi/pkg/domain"
	"github.com/blizbi/blizbi/pkg/repository"
)

// RepositoryAdapter adapts repositories to server.Database interface
type RepositoryAdapter struct {
	repos *repository.Repositories
}

// NewRepositoryAdapter creates a new repository adapter
func NewRepositoryAdapter(repos *repository.Repositories) *RepositoryAdapter {
	return &RepositoryAdapter{repos: repos}
}

// GetProfile returns the profile of the identity
func (r *RepositoryAdapter) GetProfile(ctx context.Context, clerkID string) (*domain.Profile, error) {
	return r.repos.Profile.GetByClerkID(ctx, clerkID)
}

// EnsureProfile returns the profile of the identity, creating it if needed
func (r *RepositoryAdapter) EnsureProfile(ctx context.Context, clerkID string) (*domain.Profile, error) {
	return r.repos.Profile.Ensure(ctx, clerkID)
}

// UpdateInterests replaces the interests of the profile
func (r *RepositoryAdapter) UpdateInterests(ctx context.Context, clerkID string, interestIDs []string) (*domain.Profile, error) {
	return r.repos.Profile.UpdateInterests(ctx, clerkID, interestIDs)
}

// ListBookmarks returns bookmarked event IDs of the profile
func (r *RepositoryAdapter) ListBookmarks(ctx context.Context, profileID string) ([]string, error) {
	return r.repos.Bookmark.ListEventIDs(ctx, profileID)
}

// AddBookmark bookmarks the event
func (r *RepositoryAdapter) AddBookmark(ctx context.Context, profileID, eventID string) (*domain.Bookmark, error) {
	return r.repos.Bookmark.Add(ctx, profileID, eventID)
}

// RemoveBookmark removes the bookmark
func (r *RepositoryAdapter) RemoveBookmark(ctx context.Context, profileID, eventID string) error {
	return r.repos.Bookmark.Remove(ctx, profileID, eventID)
}

// BookmarkDetails returns bookmarked events of the profile
func (r *RepositoryAdapter) BookmarkDetails(ctx context.Context, profileID string) ([]domain.BookmarkedEvent, error) {
	return r.repos.Bookmark.ListDetails(ctx, profileID)
}

// GetConsent returns the stored consent of the user
func (r *RepositoryAdapter) GetConsent(ctx context.Context, userID string) (*domain.ConsentRecord, error) {
	return r.repos.Consent.Get(ctx, userID)
}

// UpsertConsent stores the consent
func (r *RepositoryAdapter) UpsertConsent(ctx context.Context, rec domain.ConsentRecord) error {
	return r.repos.Consent.Upsert(ctx, rec)
}

// DeleteConsent removes the stored consent of the user
func (r *RepositoryAdapter) DeleteConsent(ctx context.Context, userID string) error {
	return r.repos.Consent.Delete(ctx, userID)
}

// ChatHistory returns the stored conversation of the profile
func (r *RepositoryAdapter) ChatHistory(ctx context.Context, profileID string) ([]domain.Message, error) {
	return r.repos.ChatHistory.Get(ctx, profileID)
}

// AppendChatHistory adds messages to the stored conversation
func (r *RepositoryAdapter) AppendChatHistory(ctx context.Context, profileID string, msgs ...domain.Message) error {
	return r.repos.ChatHistory.Append(ctx, profileID, msgs...)
}

// ClearChatHistory empties the stored conversation
func (r *RepositoryAdapter) ClearChatHistory(ctx context.Context, profileID string) error {
	return r.repos.ChatHistory.Clear(ctx, profileID)
}

// DeleteUserData erases the rows of the identity in the collection.
// Nothing to delete is not an error.
func (r *RepositoryAdapter) DeleteUserData(ctx context.Context, clerkID, collection string) error {
	switch collection {
	case domain.CollectionConsent:
		return r.repos.Consent.Delete(ctx, clerkID)
	case domain.CollectionProfiles:
		return r.repos.Profile.DeleteByClerkID(ctx, clerkID)
	case domain.CollectionBookmarks, domain.CollectionChatHistory:
	default:
		return fmt.Errorf("unknown collection %q", collection)
	}

	p, err := r.repos.Profile.GetByClerkID(ctx, clerkID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if collection == domain.CollectionBookmarks {
		_, err = r.repos.Bookmark.DeleteByProfile(ctx, p.ID)
		return err
	}
	return r.repos.ChatHistory.DeleteByProfile(ctx, p.ID)
}

// SearchEvents returns events matching the filter
func (r *RepositoryAdapter) SearchEvents(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error) {
	return r.repos.Event.Search(ctx, filter)
}

// GetEvent returns a single event
func (r *RepositoryAdapter) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	return r.repos.Event.Get(ctx, id)
}

// ListProviders returns all providers
func (r *RepositoryAdapter) ListProviders(ctx context.Context) ([]domain.Provider, error) {
	return r.repos.Event.ListProviders(ctx)
}

// GetProvider returns a single provider
func (r *RepositoryAdapter) GetProvider(ctx context.Context, id string) (*domain.Provider, error) {
	return r.repos.Event.GetProvider(ctx, id)
}

// ImportStatus returns the import state of every provider with a feed
func (r *RepositoryAdapter) ImportStatus(ctx context.Context) ([]domain.ImportStatus, error) {
	providers, err := r.repos.Event.ProvidersWithFeeds(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := r.repos.Setting.ListSettings(ctx, domain.IngestSettingsPrefix)
	if err != nil {
		return nil, err
	}

	res := make([]domain.ImportStatus, 0, len(providers))
	for _, p := range providers {
		st := domain.ImportStatus{ProviderID: p.ID, Name: p.Name, FeedURL: p.FeedURL,
			LastError: settings[domain.IngestErrorKey(p.ID)]}
		if v := settings[domain.IngestLastRunKey(p.ID)]; v != "" {
			if t, err := time.Parse(time.RFC3339, v); err == nil {
				st.LastRun = &t
			}
		}
		res = append(res, st)
	}
	return res, nil
}

// ListInterests returns the interests profiles can pick
func (r *RepositoryAdapter) ListInterests(ctx context.Context) ([]domain.Interest, error) {
	return r.repos.Interest.List(ctx)
}

// CreateInterest adds an interest
func (r *RepositoryAdapter) CreateInterest(ctx context.Context, in *domain.Interest) error {
	return r.repos.Interest.Create(ctx, in)
}

// CreateEvent adds an event, the ID is set on ev
func (r *RepositoryAdapter) CreateEvent(ctx context.Context, ev *domain.Event) error {
	return r.repos.Event.Upsert(ctx, ev)
}

// UpdateEvent replaces the fields of an event
func (r *RepositoryAdapter) UpdateEvent(ctx context.Context, ev *domain.Event) error {
	return r.repos.Event.Update(ctx, ev)
}

// DeleteEvent removes an event
func (r *RepositoryAdapter) DeleteEvent(ctx context.Context, id string) error {
	return r.repos.Event.Delete(ctx, id)
}

// CreateProvider adds a provider, the ID is set on p
func (r *RepositoryAdapter) CreateProvider(ctx context.Context, p *domain.Provider) error {
	return r.repos.Event.CreateProvider(ctx, p)
}

// UpdateProvider replaces the fields of a provider
func (r *RepositoryAdapter) UpdateProvider(ctx context.Context, p *domain.Provider) error {
	return r.repos.Event.UpdateProvider(ctx, p)
}

// DeleteProvider removes a provider with its events
func (r *RepositoryAdapter) DeleteProvider(ctx context.Context, id string) error {
	return r.repos.Event.DeleteProvider(ctx, id)
}

// Dashboard returns the admin overview, active events start on or after today
func (r *RepositoryAdapter) Dashboard(ctx context.Context, today string) (*domain.Dashboard, error) {
	return r.repos.Event.Stats(ctx, today)
}
