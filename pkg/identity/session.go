package identity

import (
	"fmt"
	"sync"

	"github.com/go-pkgz/lgr"

	"github.com/blizbi/blizbi/pkg/domain"
)

// Session holds the identity the client is signed in with, nil when signed out.
// Subscribers are notified on every change.
type Session struct {
	mu        sync.RWMutex
	user      *domain.User
	token     string
	listeners []func(*domain.User)
}

// NewSession makes a signed out session
func NewSession() *Session {
	return &Session{}
}

// SignIn switches the session to the identity carried by the token
func (s *Session) SignIn(token string) error {
	user, err := ReadUnverified(token)
	if err != nil {
		return fmt.Errorf("sign in: %w", err)
	}
	s.mu.Lock()
	s.user = &user
	s.token = stripBearer(token)
	listeners := s.listeners
	s.mu.Unlock()

	lgr.Printf("[DEBUG] signed in as %s", user.ID)
	s.notify(listeners, &user)
	return nil
}

// SignOut drops the identity
func (s *Session) SignOut() {
	s.mu.Lock()
	was := s.user
	s.user, s.token = nil, ""
	listeners := s.listeners
	s.mu.Unlock()

	if was == nil {
		return
	}
	lgr.Printf("[DEBUG] signed out %s", was.ID)
	s.notify(listeners, nil)
}

// User returns a copy of the current identity, nil when signed out
func (s *Session) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Token returns the raw token of the current identity, empty when signed out
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// OnChange registers fn to be called with the new identity after sign in and sign out
func (s *Session) OnChange(fn func(*domain.User)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *Session) notify(listeners []func(*domain.User), user *domain.User) {
	for _, fn := range listeners {
		if user == nil {
			fn(nil)
			continue
		}
		u := *user
		fn(&u)
	}
}
