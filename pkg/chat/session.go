// Package chat keeps the conversation of the user with the event assistant.
package chat

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/blizbi/blizbi/pkg/domain"
)

//go:generate moq -out mocks/remote.go -pkg mocks -skip-ensure -fmt goimports . Remote

// Apology is the assistant reply added when the assistant can't be reached
const Apology = "Sorry, I'm having trouble responding right now. Please try again later."

// ErrNotSignedIn is returned by history operations without a signed-in user
var ErrNotSignedIn = errors.New("not signed in")

// Remote is the chat endpoint and the stored history of the signed-in user
type Remote interface {
	Chat(ctx context.Context, req domain.ChatRequest) (*domain.ChatResponse, error)
	ChatHistory(ctx context.Context) ([]domain.Message, error)
	ClearChatHistory(ctx context.Context) error
	AppendChatHistory(ctx context.Context, msgs ...domain.Message) error
}

// Identity reports the signed-in user, nil when signed out
type Identity interface {
	User() *domain.User
}

// Params to create a Session. Language returns the name of the language replies are expected in,
// English if not set.
type Params struct {
	Remote   Remote
	Identity Identity
	Language func() string
	Now      func() time.Time
}

// Session is an ordered message log and the round trips growing and clearing it.
// Messages are kept in append order, nothing is merged or reordered.
type Session struct {
	remote   Remote
	identity Identity
	language func() string
	now      func() time.Time

	mu         sync.Mutex
	gen        uint64 // bumped by Reset, replies to older messages are dropped
	messages   []domain.Message
	responding int // messages waiting for a reply
}

// NewSession makes an empty session
func NewSession(p Params) *Session {
	res := &Session{remote: p.Remote, identity: p.Identity, language: p.Language, now: p.Now}
	if res.language == nil {
		res.language = func() string { return "English" }
	}
	if res.now == nil {
		res.now = time.Now
	}
	return res
}

// SendMessage adds the user message and the assistant reply to the log. If the assistant
// fails, a fixed apology is added instead, the user message always stays.
// Blank input is expected to be rejected by the caller.
func (s *Session) SendMessage(ctx context.Context, text string) {
	userMsg := domain.Message{Role: domain.RoleUser, Content: text, CreatedAt: s.now()}

	s.mu.Lock()
	history := make([]domain.Message, 0, len(s.messages))
	history = append(history, s.messages...)
	s.messages = append(s.messages, userMsg)
	s.responding++
	gen := s.gen
	s.mu.Unlock()

	req := domain.ChatRequest{Message: text, ChatHistory: history, UserLanguage: s.language()}
	user := s.user()
	if user != nil {
		req.UserName, req.ClerkID = user.Name, user.ID
	}

	reply := domain.Message{Role: domain.RoleAssistant, Content: Apology}
	resp, err := s.remote.Chat(ctx, req)
	switch {
	case err != nil:
		lgr.Printf("[WARN] chat request failed, %v", err)
	case resp == nil:
		lgr.Printf("[WARN] chat request returned no response")
	default:
		reply.Content, reply.Events = resp.Answer, resp.Events
	}
	reply.CreatedAt = s.now()

	s.mu.Lock()
	current := s.gen == gen
	if current {
		s.messages = append(s.messages, reply)
		s.responding--
	}
	s.mu.Unlock()

	if !current {
		lgr.Printf("[DEBUG] chat reply dropped, session was reset")
		return
	}
	if err != nil || resp == nil || user == nil {
		return
	}
	// keep the exchange in the stored history, the local log is what matters
	if err := s.remote.AppendChatHistory(ctx, userMsg, reply); err != nil {
		lgr.Printf("[WARN] can't store chat exchange, %v", err)
	}
}

// LoadHistory replaces the log with the stored history. Local messages not stored yet are lost.
func (s *Session) LoadHistory(ctx context.Context) error {
	if s.user() == nil {
		return ErrNotSignedIn
	}
	s.mu.Lock()
	gen := s.gen
	s.mu.Unlock()
	msgs, err := s.remote.ChatHistory(ctx)
	if err != nil {
		return fmt.Errorf("load chat history: %w", err)
	}
	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		return nil
	}
	s.messages = append([]domain.Message{}, msgs...)
	s.mu.Unlock()
	lgr.Printf("[DEBUG] loaded %d chat messages", len(msgs))
	return nil
}

// ClearChatHistory clears the stored history, then the log. The log is kept if the remote clear fails.
func (s *Session) ClearChatHistory(ctx context.Context) error {
	if s.user() == nil {
		return ErrNotSignedIn
	}
	if err := s.remote.ClearChatHistory(ctx); err != nil {
		return fmt.Errorf("clear chat history: %w", err)
	}
	s.mu.Lock()
	s.messages = nil
	s.mu.Unlock()
	return nil
}

// Reset drops the log without touching the stored history, used when the identity changes.
// Replies still in flight are not added to the new log.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.messages = nil
	s.responding = 0
}

// Messages returns a copy of the log
func (s *Session) Messages() []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Message{}, s.messages...)
}

// IsResponding reports whether a message is waiting for the assistant reply
func (s *Session) IsResponding() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.responding > 0
}

func (s *Session) user() *domain.User {
	if s.identity == nil {
		return nil
	}
	return s.identity.User()
}
