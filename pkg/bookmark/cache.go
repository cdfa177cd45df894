// Package bookmark keeps the set of events the signed-in user bookmarked,
// toggled optimistically and reconciled with the remote bookmarks collection.
package bookmark

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/go-pkgz/lgr"

	"github.com/blizbi/blizbi/pkg/domain"
	"github.com/blizbi/blizbi/pkg/optimistic"
)

//go:generate moq -out mocks/remote.go -pkg mocks -skip-ensure -fmt goimports . Remote
//go:generate moq -out mocks/identity.go -pkg mocks -skip-ensure -fmt goimports . Identity

var (
	// ErrNotSignedIn is returned when there is no identity to keep bookmarks for
	ErrNotSignedIn = errors.New("not signed in")
	// ErrInFlight is returned when a toggle of the same event is still waiting for the remote
	ErrInFlight = errors.New("bookmark change in progress")
)

// Remote is the remote profiles and bookmarks collections of the signed-in user
type Remote interface {
	EnsureProfile(ctx context.Context) (*domain.Profile, error)
	ListBookmarks(ctx context.Context, profileID string) ([]string, error)
	AddBookmark(ctx context.Context, profileID, eventID string) error
	RemoveBookmark(ctx context.Context, profileID, eventID string) error
	BookmarkDetails(ctx context.Context, profileID string) ([]domain.BookmarkedEvent, error)
}

// Identity reports the signed-in user, nil when signed out
type Identity interface {
	User() *domain.User
}

// Result is a completed toggle
type Result struct {
	EventID    string
	Bookmarked bool
}

// Notice is the message shown to the user for the completed toggle
func (r Result) Notice() string {
	if r.Bookmarked {
		return "Event bookmarked successfully"
	}
	return "Event removed from bookmarks"
}

// ToggleError is a failed toggle, the cache is back to what it was before the toggle
type ToggleError struct {
	EventID string
	Adding  bool
	Err     error
}

func (e *ToggleError) Error() string {
	op := "remove"
	if e.Adding {
		op = "add"
	}
	return fmt.Sprintf("%s bookmark %s: %v", op, e.EventID, e.Err)
}

func (e *ToggleError) Unwrap() error { return e.Err }

// Duplicate reports whether the remote refused the add because the bookmark exists already
func (e *ToggleError) Duplicate() bool {
	return e.Adding && e.Err != nil && strings.Contains(strings.ToLower(e.Err.Error()), "duplicate key")
}

// Notice is the message shown to the user for the failure
func (e *ToggleError) Notice() string {
	switch {
	case e.Duplicate():
		return "Event is already bookmarked"
	case e.Adding:
		return "Failed to bookmark event"
	default:
		return "Failed to remove bookmark"
	}
}

// Cache is the bookmarked event IDs of the signed-in user, including toggles still in flight
type Cache struct {
	remote   Remote
	identity Identity

	mu        sync.Mutex
	gen       uint64 // bumped by Reset, results of older calls are dropped
	userID    string // identity the cached data belongs to
	profileID string
	ids       map[string]struct{}
	pending   map[string]struct{}
	details   []domain.BookmarkedEvent
	detailsOK bool
}

// NewCache makes an empty cache, call Refresh to load the stored bookmarks
func NewCache(remote Remote, identity Identity) *Cache {
	return &Cache{remote: remote, identity: identity, ids: map[string]struct{}{}, pending: map[string]struct{}{}}
}

// Refresh replaces the cached IDs with the remote ones
func (c *Cache) Refresh(ctx context.Context) error {
	gen := c.generation()
	profileID, err := c.profile(ctx)
	if err != nil {
		return err
	}
	ids, err := c.remote.ListBookmarks(ctx, profileID)
	if err != nil {
		return fmt.Errorf("list bookmarks: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return nil // identity changed meanwhile
	}
	c.ids = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		c.ids[id] = struct{}{}
	}
	lgr.Printf("[DEBUG] loaded %d bookmarks", len(ids))
	return nil
}

// IsBookmarked reports whether the event is bookmarked, toggles in flight included
func (c *Cache) IsBookmarked(eventID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.ids[eventID]
	return ok
}

// Pending reports whether a toggle of the event is waiting for the remote
func (c *Cache) Pending(eventID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.pending[eventID]
	return ok
}

// IDs returns the bookmarked event IDs sorted
func (c *Cache) IDs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	res := make([]string, 0, len(c.ids))
	for id := range c.ids {
		res = append(res, id)
	}
	sort.Strings(res)
	return res
}

// Toggle flips the bookmark of the event. The cache changes before the remote call and
// the change is reverted if the call fails, in which case a *ToggleError is returned.
// A second toggle of the same event while the first is in flight gets ErrInFlight.
// If the cache is Reset while the remote call runs, the outcome no longer touches the cache.
func (c *Cache) Toggle(ctx context.Context, eventID string) (Result, error) {
	gen := c.generation()
	profileID, err := c.profile(ctx)
	if err != nil {
		if errors.Is(err, ErrNotSignedIn) {
			return Result{}, err
		}
		return Result{}, &ToggleError{EventID: eventID, Adding: !c.IsBookmarked(eventID), Err: err}
	}

	c.mu.Lock()
	if c.gen != gen {
		c.mu.Unlock()
		return Result{}, ErrNotSignedIn
	}
	if _, busy := c.pending[eventID]; busy {
		c.mu.Unlock()
		return Result{}, ErrInFlight
	}
	_, bookmarked := c.ids[eventID]
	adding := !bookmarked
	c.pending[eventID] = struct{}{}
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		if c.gen == gen {
			delete(c.pending, eventID)
		}
		c.mu.Unlock()
	}()

	add := func() {
		c.mu.Lock()
		if c.gen == gen {
			c.ids[eventID] = struct{}{}
		}
		c.mu.Unlock()
	}
	remove := func() {
		c.mu.Lock()
		if c.gen == gen {
			delete(c.ids, eventID)
		}
		c.mu.Unlock()
	}

	apply, inverse, call := add, remove, c.remote.AddBookmark
	if !adding {
		apply, inverse, call = remove, add, c.remote.RemoveBookmark
	}

	err = optimistic.Apply(ctx, apply, inverse, func(ctx context.Context) error {
		return call(ctx, profileID, eventID)
	})
	if err != nil {
		terr := &ToggleError{EventID: eventID, Adding: adding, Err: err}
		lgr.Printf("[WARN] %v", terr)
		return Result{}, terr
	}

	c.invalidateDetails(gen)
	lgr.Printf("[DEBUG] bookmark %s set to %t", eventID, adding)
	return Result{EventID: eventID, Bookmarked: adding}, nil
}

// Details returns the bookmarked events with their provider, newest bookmark first.
// The list is cached until a toggle succeeds or RefetchDetails is called.
func (c *Cache) Details(ctx context.Context) ([]domain.BookmarkedEvent, error) {
	c.mu.Lock()
	if c.detailsOK {
		res := append([]domain.BookmarkedEvent(nil), c.details...)
		c.mu.Unlock()
		return res, nil
	}
	c.mu.Unlock()
	return c.RefetchDetails(ctx)
}

// RefetchDetails loads the bookmarked events again. Bookmarks of deleted events are left out.
func (c *Cache) RefetchDetails(ctx context.Context) ([]domain.BookmarkedEvent, error) {
	gen := c.generation()
	profileID, err := c.profile(ctx)
	if err != nil {
		return nil, err
	}
	details, err := c.remote.BookmarkDetails(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("bookmark details: %w", err)
	}

	res := make([]domain.BookmarkedEvent, 0, len(details))
	for _, d := range details {
		if d.Event.ID == "" {
			continue // dangling bookmark
		}
		res = append(res, d)
	}

	c.mu.Lock()
	if c.gen == gen {
		c.details, c.detailsOK = res, true
	}
	c.mu.Unlock()
	return append([]domain.BookmarkedEvent(nil), res...), nil
}

// Reset drops everything cached, toggles in flight included, used when the identity changes
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.userID, c.profileID = "", ""
	c.ids = map[string]struct{}{}
	c.pending = map[string]struct{}{}
	c.details, c.detailsOK = nil, false
}

func (c *Cache) generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

func (c *Cache) invalidateDetails(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen == gen {
		c.details, c.detailsOK = nil, false
	}
}

// profile returns the profile ID of the signed-in user, creating the profile on first use
func (c *Cache) profile(ctx context.Context) (string, error) {
	user := c.identity.User()
	if user == nil {
		return "", ErrNotSignedIn
	}

	c.mu.Lock()
	gen := c.gen
	if c.userID == user.ID && c.profileID != "" {
		id := c.profileID
		c.mu.Unlock()
		return id, nil
	}
	c.mu.Unlock()

	p, err := c.remote.EnsureProfile(ctx)
	if err != nil {
		return "", fmt.Errorf("ensure profile: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return "", ErrNotSignedIn // reset while resolving, the user is gone
	}
	if c.userID != user.ID {
		// another identity, nothing cached belongs to it
		c.ids = map[string]struct{}{}
		c.details, c.detailsOK = nil, false
	}
	c.userID, c.profileID = user.ID, p.ID
	return p.ID, nil
}
