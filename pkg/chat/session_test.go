package chat

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blizbi/blizbi/pkg/chat/mocks"
	"github.com/blizbi/blizbi/pkg/domain"
)

type staticIdentity struct{ user *domain.User }

func (s staticIdentity) User() *domain.User { return s.user }

var kari = staticIdentity{user: &domain.User{ID: "user_1", Name: "Kari"}}

func fixedClock() func() time.Time {
	ts := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		ts = ts.Add(time.Second)
		return ts
	}
}

func TestSession_SendMessageFailure(t *testing.T) {
	remote := &mocks.RemoteMock{
		ChatFunc: func(context.Context, domain.ChatRequest) (*domain.ChatResponse, error) {
			return nil, errors.New("503 service unavailable")
		},
	}
	s := NewSession(Params{Remote: remote, Identity: kari, Now: fixedClock()})

	s.SendMessage(context.Background(), "hello")

	msgs := s.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, domain.RoleUser, msgs[0].Role)
	assert.Equal(t, "hello", msgs[0].Content)
	assert.Equal(t, domain.RoleAssistant, msgs[1].Role)
	assert.Equal(t, Apology, msgs[1].Content)
	assert.Empty(t, msgs[1].Events)
	assert.False(t, s.IsResponding())
	assert.Empty(t, remote.AppendChatHistoryCalls(), "failed exchange not stored")
}

func TestSession_SendMessage(t *testing.T) {
	price := 150.0
	events := []domain.EventSuggestion{{ID: "e1", Title: "Jazz night", Price: domain.Price{Type: domain.PricePaid, Amount: &price}}}

	var sawResponding bool
	var s *Session
	remote := &mocks.RemoteMock{
		AppendChatHistoryFunc: func(context.Context, ...domain.Message) error { return nil },
	}
	remote.ChatFunc = func(_ context.Context, req domain.ChatRequest) (*domain.ChatResponse, error) {
		sawResponding = s.IsResponding()
		return &domain.ChatResponse{Answer: "reply to " + req.Message, Events: events}, nil
	}
	s = NewSession(Params{Remote: remote, Identity: kari, Language: func() string { return "Norwegian" }, Now: fixedClock()})
	ctx := context.Background()

	s.SendMessage(ctx, "first")
	s.SendMessage(ctx, "second")

	assert.True(t, sawResponding)
	assert.False(t, s.IsResponding())

	msgs := s.Messages()
	require.Len(t, msgs, 4)
	assert.Equal(t, "reply to second", msgs[3].Content)
	assert.Equal(t, events, msgs[3].Events)
	assert.True(t, msgs[0].CreatedAt.Before(msgs[1].CreatedAt))

	calls := remote.ChatCalls()
	require.Len(t, calls, 2)
	assert.Empty(t, calls[0].Req.ChatHistory)
	req := calls[1].Req
	assert.Equal(t, "second", req.Message)
	assert.Equal(t, "Kari", req.UserName)
	assert.Equal(t, "user_1", req.ClerkID)
	assert.Equal(t, "Norwegian", req.UserLanguage)
	require.Len(t, req.ChatHistory, 2, "prior history without the message being sent")
	assert.Equal(t, "first", req.ChatHistory[0].Content)

	appends := remote.AppendChatHistoryCalls()
	require.Len(t, appends, 2)
	require.Len(t, appends[1].Msgs, 2)
	assert.Equal(t, "second", appends[1].Msgs[0].Content)
	assert.Equal(t, "reply to second", appends[1].Msgs[1].Content)
}

func TestSession_SendMessageAnonymous(t *testing.T) {
	remote := &mocks.RemoteMock{
		ChatFunc: func(_ context.Context, req domain.ChatRequest) (*domain.ChatResponse, error) {
			return &domain.ChatResponse{Answer: "hi"}, nil
		},
	}
	s := NewSession(Params{Remote: remote})
	s.SendMessage(context.Background(), "hello")

	require.Len(t, s.Messages(), 2)
	req := remote.ChatCalls()[0].Req
	assert.Empty(t, req.ClerkID)
	assert.Empty(t, req.UserName)
	assert.Equal(t, "English", req.UserLanguage)
	assert.Empty(t, remote.AppendChatHistoryCalls())
}

func TestSession_StoreFailureKeepsReply(t *testing.T) {
	remote := &mocks.RemoteMock{
		ChatFunc: func(context.Context, domain.ChatRequest) (*domain.ChatResponse, error) {
			return &domain.ChatResponse{Answer: "hi"}, nil
		},
		AppendChatHistoryFunc: func(context.Context, ...domain.Message) error { return errors.New("db down") },
	}
	s := NewSession(Params{Remote: remote, Identity: kari})
	s.SendMessage(context.Background(), "hello")

	msgs := s.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "hi", msgs[1].Content)
}

func TestSession_ClearChatHistory(t *testing.T) {
	remote := &mocks.RemoteMock{
		ChatFunc: func(context.Context, domain.ChatRequest) (*domain.ChatResponse, error) {
			return &domain.ChatResponse{Answer: "hi"}, nil
		},
		AppendChatHistoryFunc: func(context.Context, ...domain.Message) error { return nil },
		ClearChatHistoryFunc:  func(context.Context) error { return errors.New("timeout") },
	}
	s := NewSession(Params{Remote: remote, Identity: kari})
	ctx := context.Background()
	s.SendMessage(ctx, "hello")
	before := s.Messages()

	err := s.ClearChatHistory(ctx)
	require.Error(t, err)
	assert.Equal(t, before, s.Messages(), "log untouched when remote clear fails")

	remote.ClearChatHistoryFunc = func(context.Context) error { return nil }
	require.NoError(t, s.ClearChatHistory(ctx))
	assert.Empty(t, s.Messages())
}

func TestSession_ClearChatHistoryNotSignedIn(t *testing.T) {
	remote := &mocks.RemoteMock{}
	s := NewSession(Params{Remote: remote})
	require.ErrorIs(t, s.ClearChatHistory(context.Background()), ErrNotSignedIn)
	require.ErrorIs(t, s.LoadHistory(context.Background()), ErrNotSignedIn)
	assert.Empty(t, remote.ClearChatHistoryCalls())
}

func TestSession_LoadHistoryReplaces(t *testing.T) {
	stored := []domain.Message{
		{Role: domain.RoleUser, Content: "old question"},
		{Role: domain.RoleAssistant, Content: "old answer"},
	}
	remote := &mocks.RemoteMock{
		ChatFunc: func(context.Context, domain.ChatRequest) (*domain.ChatResponse, error) {
			return nil, errors.New("down")
		},
		ChatHistoryFunc: func(context.Context) ([]domain.Message, error) { return stored, nil },
	}
	s := NewSession(Params{Remote: remote, Identity: kari})
	ctx := context.Background()

	s.SendMessage(ctx, "unsynced")
	require.Len(t, s.Messages(), 2)

	require.NoError(t, s.LoadHistory(ctx))
	assert.Equal(t, stored, s.Messages(), "local messages replaced, not merged")

	remote.ChatHistoryFunc = func(context.Context) ([]domain.Message, error) { return nil, errors.New("boom") }
	require.Error(t, s.LoadHistory(ctx))
	assert.Equal(t, stored, s.Messages())
}

func TestSession_MessagesIsCopy(t *testing.T) {
	remote := &mocks.RemoteMock{
		ChatFunc: func(context.Context, domain.ChatRequest) (*domain.ChatResponse, error) { return nil, errors.New("x") },
	}
	s := NewSession(Params{Remote: remote})
	s.SendMessage(context.Background(), "hello")
	msgs := s.Messages()
	msgs[0].Content = "changed"
	assert.Equal(t, "hello", s.Messages()[0].Content)
}

func TestSession_FirstMessageSendsEmptyHistory(t *testing.T) {
	var body []byte
	remote := &mocks.RemoteMock{
		ChatFunc: func(_ context.Context, req domain.ChatRequest) (*domain.ChatResponse, error) {
			var err error
			body, err = json.Marshal(req)
			return &domain.ChatResponse{Answer: "hi"}, err
		},
	}
	s := NewSession(Params{Remote: remote, Now: fixedClock()})
	s.SendMessage(context.Background(), "hello")

	require.Len(t, remote.ChatCalls(), 1)
	assert.NotNil(t, remote.ChatCalls()[0].Req.ChatHistory)
	assert.Contains(t, string(body), `"chatHistory":[]`)
}

func TestSession_RespondingWhileAnyPending(t *testing.T) {
	release := map[string]chan struct{}{"first": make(chan struct{}), "second": make(chan struct{})}
	started := make(chan struct{}, 2)
	remote := &mocks.RemoteMock{
		ChatFunc: func(_ context.Context, req domain.ChatRequest) (*domain.ChatResponse, error) {
			started <- struct{}{}
			<-release[req.Message]
			return &domain.ChatResponse{Answer: "re " + req.Message}, nil
		},
	}
	s := NewSession(Params{Remote: remote, Now: fixedClock()})
	ctx := context.Background()

	var wg sync.WaitGroup
	for _, m := range []string{"first", "second"} {
		wg.Add(1)
		go func(m string) {
			defer wg.Done()
			s.SendMessage(ctx, m)
		}(m)
	}
	<-started
	<-started

	close(release["first"])
	require.Eventually(t, func() bool { return len(s.Messages()) == 3 }, time.Second, time.Millisecond)
	assert.True(t, s.IsResponding(), "second message still waiting")

	close(release["second"])
	wg.Wait()
	assert.False(t, s.IsResponding())
	assert.Len(t, s.Messages(), 4)
}

func TestSession_Reset(t *testing.T) {
	var s *Session
	remote := &mocks.RemoteMock{
		AppendChatHistoryFunc: func(context.Context, ...domain.Message) error { return nil },
	}
	remote.ChatFunc = func(_ context.Context, req domain.ChatRequest) (*domain.ChatResponse, error) {
		if req.Message == "switch" {
			s.Reset() // identity changed while waiting for the assistant
		}
		return &domain.ChatResponse{Answer: "re " + req.Message}, nil
	}
	s = NewSession(Params{Remote: remote, Identity: kari, Now: fixedClock()})
	ctx := context.Background()

	s.SendMessage(ctx, "hello")
	require.Len(t, s.Messages(), 2)

	s.Reset()
	assert.Empty(t, s.Messages())
	assert.False(t, s.IsResponding())

	s.SendMessage(ctx, "switch")
	assert.Empty(t, s.Messages(), "reply of the previous identity not added")
	assert.False(t, s.IsResponding())
	assert.Len(t, remote.AppendChatHistoryCalls(), 1, "exchange of the previous identity not stored")
}
