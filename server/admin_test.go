package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blizbi/blizbi/pkg/domain"
	"github.com/blizbi/blizbi/pkg/repository"
	"github.com/blizbi/blizbi/server/mocks"
)

func adminAuth() *mocks.AuthenticatorMock {
	return &mocks.AuthenticatorMock{VerifyFunc: func(token string) (domain.User, error) {
		switch token {
		case "Bearer admin":
			return domain.User{ID: "admin_1", Name: "Ada", Admin: true}, nil
		case "Bearer good":
			return domain.User{ID: "user_1", Name: "Kari"}, nil
		}
		return domain.User{}, errors.New("bad token")
	}}
}

// doAs sends the request with the given bearer token, none if empty
func doAs(t *testing.T, srv *Server, token, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestServer_adminAccess(t *testing.T) {
	database := &mocks.DatabaseMock{
		DashboardFunc: func(context.Context, string) (*domain.Dashboard, error) { return &domain.Dashboard{}, nil },
	}
	srv := New(testConfig(), database, &mocks.AssistantMock{}, adminAuth(), "1.0.0", false)

	tbl := []struct {
		name, token string
		code        int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"bad token", "bad", http.StatusUnauthorized},
		{"regular user", "good", http.StatusForbidden},
		{"admin", "admin", http.StatusOK},
	}
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			w := doAs(t, srv, tt.token, http.MethodGet, "/api/v1/dashboard", "")
			assert.Equal(t, tt.code, w.Code)
		})
	}

	w := doAs(t, srv, "good", http.MethodDelete, "/api/v1/events/ev1", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "admin access required", errorOf(t, w))
	assert.Len(t, database.DashboardCalls(), 1)
}

func TestServer_dashboardHandler(t *testing.T) {
	database := &mocks.DatabaseMock{
		DashboardFunc: func(_ context.Context, today string) (*domain.Dashboard, error) {
			return &domain.Dashboard{Profiles: 4, Events: 10, Providers: 2,
				ProviderMetrics: []domain.ProviderMetrics{{ID: "p1", Name: "Kulturhuset", TotalEvents: 7, ActiveEvents: 3}}}, nil
		},
	}
	srv := New(testConfig(), database, &mocks.AssistantMock{}, adminAuth(), "1.0.0", false)

	w := doAs(t, srv, "admin", http.MethodGet, "/api/v1/dashboard", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp domain.Dashboard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Profiles)
	require.Len(t, resp.ProviderMetrics, 1)
	assert.Equal(t, 3, resp.ProviderMetrics[0].ActiveEvents)

	require.Len(t, database.DashboardCalls(), 1)
	assert.Equal(t, time.Now().Format(time.DateOnly), database.DashboardCalls()[0].Today)
}

func TestServer_eventAdminHandlers(t *testing.T) {
	stored := map[string]domain.Event{}
	database := &mocks.DatabaseMock{
		GetProviderFunc: func(_ context.Context, id string) (*domain.Provider, error) {
			if id != "p1" {
				return nil, repository.ErrNotFound
			}
			return &domain.Provider{ID: "p1", Name: "Kulturhuset"}, nil
		},
		CreateEventFunc: func(_ context.Context, ev *domain.Event) error {
			ev.ID = "ev-new"
			stored[ev.ID] = *ev
			return nil
		},
		UpdateEventFunc: func(_ context.Context, ev *domain.Event) error {
			if _, ok := stored[ev.ID]; !ok {
				return repository.ErrNotFound
			}
			stored[ev.ID] = *ev
			return nil
		},
		DeleteEventFunc: func(_ context.Context, id string) error {
			if _, ok := stored[id]; !ok {
				return repository.ErrNotFound
			}
			delete(stored, id)
			return nil
		},
		GetEventFunc: func(_ context.Context, id string) (*domain.Event, error) {
			ev, ok := stored[id]
			if !ok {
				return nil, repository.ErrNotFound
			}
			return &ev, nil
		},
	}
	srv := New(testConfig(), database, &mocks.AssistantMock{}, adminAuth(), "1.0.0", false)

	t.Run("create", func(t *testing.T) {
		w := doAs(t, srv, "admin", http.MethodPost, "/api/v1/events",
			`{"id":"ignored","provider_id":"p1","title":" Jazz night ","start_date":"2099-06-01","start_time":"20:00","price_type":"free","price_amount":100}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var ev domain.Event
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ev))
		assert.Equal(t, "ev-new", ev.ID)
		assert.Equal(t, "Jazz night", ev.Title)
		assert.Nil(t, ev.PriceAmount, "free events carry no price")
	})

	t.Run("invalid input", func(t *testing.T) {
		tbl := []struct{ body, err string }{
			{`{"provider_id":"p1","start_date":"2099-06-01"}`, "title is required"},
			{`{"title":"x","start_date":"2099-06-01"}`, "provider_id is required"},
			{`{"provider_id":"p1","title":"x","start_date":"01.06.2099"}`, `invalid start_date "01.06.2099", expected YYYY-MM-DD`},
			{`{"provider_id":"p1","title":"x","start_date":"2099-06-02","end_date":"2099-06-01"}`, "end_date is before start_date"},
			{`{"provider_id":"p1","title":"x","start_date":"2099-06-01","start_time":"8pm"}`, `invalid time "8pm", expected HH:MM`},
			{`{"provider_id":"p1","title":"x","start_date":"2099-06-01","price_type":"donation"}`, `invalid price_type "donation"`},
			{`{"provider_id":"nope","title":"x","start_date":"2099-06-01"}`, `unknown provider "nope"`},
		}
		for _, tt := range tbl {
			w := doAs(t, srv, "admin", http.MethodPost, "/api/v1/events", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code, tt.body)
			assert.Equal(t, tt.err, errorOf(t, w))
		}
	})

	t.Run("update", func(t *testing.T) {
		w := doAs(t, srv, "admin", http.MethodPut, "/api/v1/events/ev-new",
			`{"provider_id":"p1","title":"Jazz night, moved","start_date":"2099-06-02","price_type":"paid","price_amount":150}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "Jazz night, moved", stored["ev-new"].Title)
		require.NotNil(t, stored["ev-new"].PriceAmount)
		assert.InDelta(t, 150.0, *stored["ev-new"].PriceAmount, 0.001)

		w = doAs(t, srv, "admin", http.MethodPut, "/api/v1/events/missing",
			`{"provider_id":"p1","title":"x","start_date":"2099-06-02"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		w := doAs(t, srv, "admin", http.MethodDelete, "/api/v1/events/ev-new", "")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, stored)

		w = doAs(t, srv, "admin", http.MethodDelete, "/api/v1/events/ev-new", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestServer_providerAdminHandlers(t *testing.T) {
	stored := map[string]domain.Provider{}
	database := &mocks.DatabaseMock{
		CreateProviderFunc: func(_ context.Context, p *domain.Provider) error {
			if p.ID == "" {
				p.ID = "p-new"
			}
			if _, ok := stored[p.ID]; ok {
				return repository.ErrDuplicate
			}
			stored[p.ID] = *p
			return nil
		},
		UpdateProviderFunc: func(_ context.Context, p *domain.Provider) error {
			if _, ok := stored[p.ID]; !ok {
				return repository.ErrNotFound
			}
			stored[p.ID] = *p
			return nil
		},
		DeleteProviderFunc: func(_ context.Context, id string) error {
			if _, ok := stored[id]; !ok {
				return repository.ErrNotFound
			}
			delete(stored, id)
			return nil
		},
		GetProviderFunc: func(_ context.Context, id string) (*domain.Provider, error) {
			p, ok := stored[id]
			if !ok {
				return nil, repository.ErrNotFound
			}
			return &p, nil
		},
	}
	srv := New(testConfig(), database, &mocks.AssistantMock{}, adminAuth(), "1.0.0", false)

	w := doAs(t, srv, "admin", http.MethodPost, "/api/v1/providers", `{"name":"Kulturhuset","feed_url":"https://k.example/rss"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var p domain.Provider
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, "p-new", p.ID)
	assert.Equal(t, "https://k.example/rss", p.FeedURL)

	w = doAs(t, srv, "admin", http.MethodPost, "/api/v1/providers", `{"id":"p-new","name":"Again"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doAs(t, srv, "admin", http.MethodPost, "/api/v1/providers", `{"name":"  "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "name is required", errorOf(t, w))

	w = doAs(t, srv, "admin", http.MethodPut, "/api/v1/providers/p-new", `{"name":"Kulturhuset Oslo"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Kulturhuset Oslo", stored["p-new"].Name)
	assert.Empty(t, stored["p-new"].FeedURL, "update replaces every field")

	w = doAs(t, srv, "admin", http.MethodPut, "/api/v1/providers/missing", `{"name":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doAs(t, srv, "admin", http.MethodDelete, "/api/v1/providers/p-new", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, stored)
}

func TestServer_interestHandlers(t *testing.T) {
	var stored []domain.Interest
	database := &mocks.DatabaseMock{
		ListInterestsFunc: func(context.Context) ([]domain.Interest, error) { return stored, nil },
		CreateInterestFunc: func(_ context.Context, in *domain.Interest) error {
			in.ID = "music"
			stored = append(stored, *in)
			return nil
		},
	}
	srv := New(testConfig(), database, &mocks.AssistantMock{}, adminAuth(), "1.0.0", false)

	// listing is public, creating is not
	w := doAs(t, srv, "good", http.MethodPost, "/api/v1/interests", `{"name":"Music"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doAs(t, srv, "admin", http.MethodPost, "/api/v1/interests", `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doAs(t, srv, "admin", http.MethodPost, "/api/v1/interests", `{"name":"Music"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doAs(t, srv, "", http.MethodGet, "/api/v1/interests", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []domain.Interest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, []domain.Interest{{ID: "music", Name: "Music"}}, list)
}
