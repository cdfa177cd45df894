package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blizbi/blizbi/pkg/domain"
	"github.com/blizbi/blizbi/pkg/repository"
	"github.com/blizbi/blizbi/server/mocks"
)

func testConfig() *mocks.ConfigProviderMock {
	return &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return ":8080", 30 * time.Second },
		GetBaseURLFunc:      func() string { return "https://blizbi.example" },
	}
}

func testAuth() *mocks.AuthenticatorMock {
	return &mocks.AuthenticatorMock{VerifyFunc: func(token string) (domain.User, error) {
		if token == "Bearer good" {
			return domain.User{ID: "user_1", Name: "Kari"}, nil
		}
		return domain.User{}, errors.New("bad token")
	}}
}

func TestServer_New(t *testing.T) {
	srv := New(testConfig(), &mocks.DatabaseMock{}, &mocks.AssistantMock{}, testAuth(), "1.0.0", true)
	require.NotNil(t, srv)
	assert.Equal(t, "1.0.0", srv.version)
	assert.True(t, srv.debug)
	assert.NotNil(t, srv.Handler())
}

func TestServer_StatusAndPing(t *testing.T) {
	srv := New(testConfig(), &mocks.DatabaseMock{}, &mocks.AssistantMock{}, testAuth(), "1.2.3", false)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/status")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1.2.3", resp.Header.Get("App-Version"))

	var status map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "1.2.3", status["version"])

	ping, err := http.Get(ts.URL + "/ping")
	require.NoError(t, err)
	defer ping.Body.Close()
	assert.Equal(t, http.StatusOK, ping.StatusCode)
}

func TestServer_Run(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	cfg := testConfig()
	cfg.GetServerConfigFunc = func() (string, time.Duration) { return addr, 5 * time.Second }
	srv := New(cfg, &mocks.DatabaseMock{}, &mocks.AssistantMock{}, testAuth(), "1.0.0", false)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://%s/ping", addr))
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_rssHandler(t *testing.T) {
	database := &mocks.DatabaseMock{
		SearchEventsFunc: func(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error) {
			assert.Equal(t, time.Now().Format(time.DateOnly), filter.From)
			assert.Equal(t, defaultRSSLimit, filter.Limit)
			return []domain.Event{{ID: "e1", ProviderID: filter.ProviderID, Title: "Jazz night", StartDate: "2099-06-01",
				StartTime: "20:00", PriceType: domain.PriceFree}}, nil
		},
		GetProviderFunc: func(ctx context.Context, id string) (*domain.Provider, error) {
			if id == "kulturhuset" {
				return &domain.Provider{ID: id, Name: "Kulturhuset"}, nil
			}
			return nil, repository.ErrNotFound
		},
	}
	srv := New(testConfig(), database, &mocks.AssistantMock{}, testAuth(), "1.0.0", false)

	t.Run("all providers", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rss", http.NoBody))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/rss+xml; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), "<title>Blizbi - upcoming events</title>")
		assert.Contains(t, w.Body.String(), "<title>Jazz night</title>")
		assert.Contains(t, w.Body.String(), "https://blizbi.example/rss")
		assert.Empty(t, database.GetProviderCalls())
	})

	t.Run("single provider", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rss/kulturhuset", http.NoBody))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "<title>Blizbi - Kulturhuset</title>")
		assert.Contains(t, w.Body.String(), "https://blizbi.example/rss/kulturhuset")
	})

	t.Run("provider from query", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rss?provider=kulturhuset", http.NoBody))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "<title>Blizbi - Kulturhuset</title>")
	})

	t.Run("unknown provider", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rss/nope", http.NoBody))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestServer_rssHandlerError(t *testing.T) {
	database := &mocks.DatabaseMock{
		SearchEventsFunc: func(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error) {
			return nil, errors.New("database error")
		},
	}
	srv := New(testConfig(), database, &mocks.AssistantMock{}, testAuth(), "1.0.0", false)

	w := httptest.NewRecorder()
	srv.rssHandler(w, httptest.NewRequest(http.MethodGet, "/rss", http.NoBody))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to generate RSS feed")
}
