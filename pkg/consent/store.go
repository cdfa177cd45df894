// Package consent keeps the user's consent decision and gates local storage by it.
// Store is constructed once per application instance and passed to whatever needs it.
package consent

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/blizbi/blizbi/pkg/domain"
	"github.com/blizbi/blizbi/pkg/storage"
)

//go:generate moq -out mocks/remote.go -pkg mocks -skip-ensure -fmt goimports . Remote
//go:generate moq -out mocks/eraser.go -pkg mocks -skip-ensure -fmt goimports . Eraser
//go:generate moq -out mocks/identity.go -pkg mocks -skip-ensure -fmt goimports . Identity

// deletion result messages
const (
	msgDeletionNotSignedIn = "Must be signed in to request data deletion"
	msgDeletionFailed      = "Some data could not be deleted. Please contact support."
	msgDeletionDone        = "All your data has been successfully deleted."
)

// Remote is the user_consent row of the signed-in user.
// GetConsent returns nil record without error when the user has none.
type Remote interface {
	GetConsent(ctx context.Context) (*domain.ConsentRecord, error)
	UpsertConsent(ctx context.Context, rec domain.ConsentRecord) error
	DeleteConsent(ctx context.Context) error
}

// Eraser deletes the signed-in user's rows of a remote collection
type Eraser interface {
	DeleteUserData(ctx context.Context, collection string) error
}

// Identity reports the signed-in user, nil when signed out
type Identity interface {
	User() *domain.User
}

// DeletionResult is the outcome of a data deletion request
type DeletionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Params to create a Store. Durable and Session are required, the rest is optional:
// without Remote consent lives locally only, without Eraser data deletion always fails.
type Params struct {
	Durable     storage.Store
	Session     storage.Store
	Remote      Remote
	Eraser      Eraser
	Identity    Identity
	Collections []string         // collections erased on data deletion, domain.UserCollections by default
	Now         func() time.Time // clock, time.Now by default
}

// Store is the authority on the consent decision of the current user
type Store struct {
	durable     storage.Store
	session     storage.Store
	remote      Remote
	eraser      Eraser
	identity    Identity
	collections []string
	now         func() time.Time

	mu        sync.Mutex
	state     *domain.ConsentState
	listeners []func(*domain.ConsentState)
}

// New makes a Store with no consent loaded yet, call Load to read the stored decision
func New(p Params) *Store {
	if p.Durable == nil || p.Session == nil {
		panic("consent: durable and session storage are required")
	}
	res := &Store{
		durable:     p.Durable,
		session:     p.Session,
		remote:      p.Remote,
		eraser:      p.Eraser,
		identity:    p.Identity,
		collections: p.Collections,
		now:         p.Now,
	}
	if len(res.collections) == 0 {
		res.collections = domain.UserCollections
	}
	if res.now == nil {
		res.now = time.Now
	}
	return res
}

// Load resolves the stored decision. The local copy is read first, a remote record of the
// signed-in user wins over it. Copies recorded under another policy version are ignored.
// Failures are logged and leave the consent absent.
func (s *Store) Load(ctx context.Context) {
	var state *domain.ConsentState

	raw, ok, err := s.durable.Get(ctx, domain.ConsentStorageKey)
	switch {
	case err != nil:
		lgr.Printf("[WARN] can't read local consent, %v", err)
	case ok:
		local := domain.ConsentState{}
		if err := json.Unmarshal([]byte(raw), &local); err != nil {
			lgr.Printf("[WARN] can't parse local consent, %v", err)
			break
		}
		if !local.Current() {
			lgr.Printf("[INFO] local consent version %q outdated, asking again", local.Version)
			break
		}
		state = &local
	}

	if user := s.user(); user != nil && s.remote != nil {
		rec, err := s.remote.GetConsent(ctx)
		switch {
		case err != nil:
			lgr.Printf("[WARN] can't load consent of %s, %v", user.ID, err)
		case rec == nil:
			lgr.Printf("[DEBUG] no stored consent for %s", user.ID)
		case rec.Version != domain.ConsentVersion:
			lgr.Printf("[INFO] stored consent of %s has outdated version %q", user.ID, rec.Version)
		default:
			remoteState := rec.State()
			state = &remoteState
		}
	}

	s.setState(state)
}

// UpdateConsent merges the partial update onto the current preferences and saves the result
func (s *Store) UpdateConsent(ctx context.Context, upd domain.PartialPreferences) domain.ConsentState {
	current, responded := s.current()
	action := "granted"
	if responded {
		action = "updated"
	}
	return s.save(ctx, current.Merge(upd), action)
}

// AcceptAll grants every category
func (s *Store) AcceptAll(ctx context.Context) domain.ConsentState {
	action := "granted_all"
	if _, responded := s.current(); responded {
		action = "accepted_all"
	}
	return s.save(ctx, domain.AllGranted(), action)
}

// RejectAll refuses every optional category
func (s *Store) RejectAll(ctx context.Context) domain.ConsentState {
	action := "granted_essential_only"
	if _, responded := s.current(); responded {
		action = "rejected_all"
	}
	return s.save(ctx, domain.DefaultPreferences(), action)
}

// ResetConsent withdraws the decision. Data of optional categories is removed locally
// and the remote record is deleted best effort.
func (s *Store) ResetConsent(ctx context.Context) {
	s.audit("withdrawn_and_reset", nil)
	s.setState(nil)
	s.cleanupOptional(ctx)

	if err := s.durable.Remove(ctx, domain.ConsentStorageKey); err != nil {
		lgr.Printf("[WARN] can't remove local consent, %v", err)
	}

	if user := s.user(); user != nil && s.remote != nil {
		if err := s.remote.DeleteConsent(ctx); err != nil {
			lgr.Printf("[WARN] can't remove stored consent of %s, %v", user.ID, err)
			return
		}
		lgr.Printf("[DEBUG] stored consent of %s removed", user.ID)
	}
}

// RequestDataDeletion erases every user collection of the signed-in user concurrently.
// All deletions are attempted. The result is a success only if all of them succeeded,
// the ones that did are not undone otherwise.
func (s *Store) RequestDataDeletion(ctx context.Context) DeletionResult {
	user := s.user()
	if user == nil {
		return DeletionResult{Success: false, Message: msgDeletionNotSignedIn}
	}
	s.audit("data_deletion_requested", nil)

	if s.eraser == nil {
		lgr.Printf("[ERROR] data deletion for %s requested without remote eraser", user.ID)
		return DeletionResult{Success: false, Message: msgDeletionFailed}
	}

	// plain group without context, a failed deletion doesn't cancel the others
	var g errgroup.Group
	var mu sync.Mutex
	var failed []string
	for _, collection := range s.collections {
		g.Go(func() error {
			if err := s.eraser.DeleteUserData(ctx, collection); err != nil {
				lgr.Printf("[WARN] can't delete %s of %s, %v", collection, user.ID, err)
				mu.Lock()
				failed = append(failed, collection)
				mu.Unlock()
				return fmt.Errorf("delete %s: %w", collection, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		lgr.Printf("[ERROR] data deletion for %s incomplete, failed %v", user.ID, failed)
		return DeletionResult{Success: false, Message: msgDeletionFailed}
	}

	s.cleanupOptional(ctx)
	if err := s.durable.Remove(ctx, domain.ConsentStorageKey); err != nil {
		lgr.Printf("[WARN] can't remove local consent, %v", err)
	}
	s.setState(nil)
	lgr.Printf("[INFO] data deletion for %s completed", user.ID)
	return DeletionResult{Success: true, Message: msgDeletionDone}
}

// HasConsent reports whether data of the category may be kept. Essential is always allowed,
// other categories are refused until the user responded.
func (s *Store) HasConsent(c domain.Category) bool {
	if c == domain.CategoryEssential {
		return true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil || !s.state.HasResponded {
		return false
	}
	return s.state.Preferences.Allows(c)
}

// IsConsentRequired reports whether the user has to be asked for a decision
func (s *Store) IsConsentRequired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == nil || !s.state.HasResponded
}

// State returns a copy of the current decision, nil if absent
func (s *Store) State() *domain.ConsentState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return nil
	}
	st := *s.state
	return &st
}

// OnChange registers fn to be called with the new state after every change, including Load
func (s *Store) OnChange(fn func(*domain.ConsentState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// save replaces the state and persists it, locally always and remotely when signed in
func (s *Store) save(ctx context.Context, prefs domain.ConsentPreferences, action string) domain.ConsentState {
	prefs.Essential = true
	now := s.now().UTC()
	state := domain.ConsentState{
		HasResponded: true,
		Preferences:  prefs,
		Timestamp:    now.Format(time.RFC3339),
		Version:      domain.ConsentVersion,
	}
	s.audit(action, &prefs)
	s.setState(&state)

	if data, err := json.Marshal(state); err != nil {
		lgr.Printf("[WARN] can't encode consent, %v", err)
	} else if err := s.durable.Set(ctx, domain.ConsentStorageKey, string(data)); err != nil {
		lgr.Printf("[WARN] can't save consent locally, %v", err)
	}

	if user := s.user(); user != nil && s.remote != nil {
		rec := domain.ConsentRecord{UserID: user.ID, Preferences: prefs, Version: domain.ConsentVersion, UpdatedAt: now}
		if err := s.remote.UpsertConsent(ctx, rec); err != nil {
			lgr.Printf("[WARN] can't save consent of %s, %v", user.ID, err)
		}
	}
	return state
}

func (s *Store) current() (prefs domain.ConsentPreferences, responded bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return domain.DefaultPreferences(), false
	}
	return s.state.Preferences, s.state.HasResponded
}

func (s *Store) setState(state *domain.ConsentState) {
	s.mu.Lock()
	s.state = state
	listeners := s.listeners
	s.mu.Unlock()

	for _, fn := range listeners {
		if state == nil {
			fn(nil)
			continue
		}
		st := *state
		fn(&st)
	}
}

func (s *Store) cleanupOptional(ctx context.Context) {
	for _, c := range domain.OptionalCategories {
		s.cleanup(ctx, c)
	}
}

func (s *Store) user() *domain.User {
	if s.identity == nil {
		return nil
	}
	return s.identity.User()
}

// audit logs a consent decision
func (s *Store) audit(action string, prefs *domain.ConsentPreferences) {
	userID := "anonymous"
	if user := s.user(); user != nil {
		userID = user.ID
	}
	if prefs == nil {
		lgr.Printf("[INFO] consent %s, user=%s, version=%s", action, userID, domain.ConsentVersion)
		return
	}
	lgr.Printf("[INFO] consent %s, user=%s, version=%s, functional=%t, analytics=%t, personalization=%t",
		action, userID, domain.ConsentVersion, prefs.Functional, prefs.Analytics, prefs.Personalization)
}
