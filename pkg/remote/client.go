// Package remote is the HTTP client of the blizbi backend. It serves the consent store, the bookmark
// cache and the chat session as their remote collections, acting for the signed-in user.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"

	"github.com/blizbi/blizbi/pkg/domain"
)

var (
	// ErrStatus is matched by every non-2xx response error
	ErrStatus = errors.New("unexpected status")
	// ErrNotSignedIn is returned by user operations without a token
	ErrNotSignedIn = errors.New("not signed in")
)

// StatusError is a non-2xx response with the error text sent by the server
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s %d", ErrStatus, e.Code)
	}
	return fmt.Sprintf("%s %d: %s", ErrStatus, e.Code, e.Message)
}

// Is makes StatusError match ErrStatus
func (e *StatusError) Is(target error) bool {
	return target == ErrStatus //nolint:errorlint // sentinel identity check
}

// IsStatus checks the error is a response with the given status code
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}

// TokenSource provides the bearer token of the signed-in user, empty when signed out
type TokenSource interface {
	Token() string
}

// Params to create a Client
type Params struct {
	BaseURL string
	Timeout time.Duration // per request, default 10s
	Retries int           // attempts of idempotent reads, a single attempt by default
	Tokens  TokenSource
}

// Client talks to the blizbi backend
type Client struct {
	baseURL string
	http    *http.Client
	retries int
	tokens  TokenSource
}

// New makes a client for the backend at base url
func New(p Params) *Client {
	if p.Timeout <= 0 {
		p.Timeout = 10 * time.Second
	}
	if p.Retries <= 0 {
		p.Retries = 1
	}
	return &Client{
		baseURL: strings.TrimRight(p.BaseURL, "/"),
		http:    &http.Client{Timeout: p.Timeout},
		retries: p.Retries,
		tokens:  p.Tokens,
	}
}

// GetConsent returns the stored consent, nil if the user has none
func (c *Client) GetConsent(ctx context.Context) (*domain.ConsentRecord, error) {
	var rec domain.ConsentRecord
	err := c.get(ctx, "/api/v1/consent", true, &rec)
	if IsStatus(err, http.StatusNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get consent: %w", err)
	}
	return &rec, nil
}

// UpsertConsent stores the consent, the server keys it by the token user
func (c *Client) UpsertConsent(ctx context.Context, rec domain.ConsentRecord) error {
	if err := c.send(ctx, http.MethodPut, "/api/v1/consent", rec, nil); err != nil {
		return fmt.Errorf("upsert consent: %w", err)
	}
	return nil
}

// DeleteConsent removes the stored consent
func (c *Client) DeleteConsent(ctx context.Context) error {
	if err := c.send(ctx, http.MethodDelete, "/api/v1/consent", nil, nil); err != nil {
		return fmt.Errorf("delete consent: %w", err)
	}
	return nil
}

// DeleteUserData erases the user rows of the collection
func (c *Client) DeleteUserData(ctx context.Context, collection string) error {
	if err := c.send(ctx, http.MethodDelete, "/api/v1/data/"+url.PathEscape(collection), nil, nil); err != nil {
		return fmt.Errorf("delete %s: %w", collection, err)
	}
	return nil
}

// EnsureProfile returns the profile of the user, created on first call
func (c *Client) EnsureProfile(ctx context.Context) (*domain.Profile, error) {
	var p domain.Profile
	if err := c.send(ctx, http.MethodPost, "/api/v1/profile", nil, &p); err != nil {
		return nil, fmt.Errorf("ensure profile: %w", err)
	}
	return &p, nil
}

// ListBookmarks returns the bookmarked event IDs of the profile
func (c *Client) ListBookmarks(ctx context.Context, profileID string) ([]string, error) {
	var ids []string
	if err := c.get(ctx, bookmarksPath(profileID), true, &ids); err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	return ids, nil
}

// AddBookmark bookmarks the event. An existing bookmark is a 409 error carrying the server's duplicate key text.
func (c *Client) AddBookmark(ctx context.Context, profileID, eventID string) error {
	err := c.send(ctx, http.MethodPost, bookmarksPath(profileID)+"/"+url.PathEscape(eventID), nil, nil)
	if IsStatus(err, http.StatusConflict) {
		lgr.Printf("[DEBUG] event %s bookmarked already", eventID)
	}
	if err != nil {
		return fmt.Errorf("add bookmark: %w", err)
	}
	return nil
}

// RemoveBookmark removes the bookmark of the event
func (c *Client) RemoveBookmark(ctx context.Context, profileID, eventID string) error {
	if err := c.send(ctx, http.MethodDelete, bookmarksPath(profileID)+"/"+url.PathEscape(eventID), nil, nil); err != nil {
		return fmt.Errorf("remove bookmark: %w", err)
	}
	return nil
}

// BookmarkDetails returns the bookmarked events with their providers
func (c *Client) BookmarkDetails(ctx context.Context, profileID string) ([]domain.BookmarkedEvent, error) {
	var res []domain.BookmarkedEvent
	if err := c.get(ctx, bookmarksPath(profileID)+"/details", true, &res); err != nil {
		return nil, fmt.Errorf("bookmark details: %w", err)
	}
	return res, nil
}

// Chat sends the message to the assistant. The endpoint is public, the token is sent if present.
func (c *Client) Chat(ctx context.Context, req domain.ChatRequest) (*domain.ChatResponse, error) {
	var resp domain.ChatResponse
	if err := c.do(ctx, http.MethodPost, "/chat", false, req, &resp); err != nil {
		return nil, fmt.Errorf("chat: %w", err)
	}
	return &resp, nil
}

// ChatHistory returns the stored conversation
func (c *Client) ChatHistory(ctx context.Context) ([]domain.Message, error) {
	var msgs []domain.Message
	if err := c.get(ctx, "/api/v1/chat/history", true, &msgs); err != nil {
		return nil, fmt.Errorf("chat history: %w", err)
	}
	return msgs, nil
}

// ClearChatHistory empties the stored conversation, a user without profile has nothing to clear
func (c *Client) ClearChatHistory(ctx context.Context) error {
	err := c.send(ctx, http.MethodDelete, "/api/v1/chat/history", nil, nil)
	if IsStatus(err, http.StatusNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("clear chat history: %w", err)
	}
	return nil
}

// AppendChatHistory adds messages to the stored conversation
func (c *Client) AppendChatHistory(ctx context.Context, msgs ...domain.Message) error {
	if len(msgs) == 0 {
		return nil
	}
	if err := c.send(ctx, http.MethodPost, "/api/v1/chat/history", msgs, nil); err != nil {
		return fmt.Errorf("append chat history: %w", err)
	}
	return nil
}

// SearchEvents lists events of the public catalog
func (c *Client) SearchEvents(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error) {
	q := url.Values{}
	for k, v := range map[string]string{"q": filter.Query, "from": filter.From, "to": filter.To, "provider": filter.ProviderID} {
		if v != "" {
			q.Set(k, v)
		}
	}
	if filter.Limit > 0 {
		q.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Offset > 0 {
		q.Set("offset", strconv.Itoa(filter.Offset))
	}
	path := "/api/v1/events"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var res []domain.Event
	if err := c.get(ctx, path, false, &res); err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}
	return res, nil
}

// ImportStatus returns the feed import state of providers
func (c *Client) ImportStatus(ctx context.Context) ([]domain.ImportStatus, error) {
	var res []domain.ImportStatus
	if err := c.get(ctx, "/api/v1/ingest", false, &res); err != nil {
		return nil, fmt.Errorf("import status: %w", err)
	}
	return res, nil
}

func bookmarksPath(profileID string) string {
	return "/api/v1/profiles/" + url.PathEscape(profileID) + "/bookmarks"
}

// errCritical is the repeater termination marker matched by every criticalError
var errCritical = errors.New("critical error")

// criticalError wraps an error to stop the retries
type criticalError struct {
	err error
}

func (e *criticalError) Error() string { return e.err.Error() }

func (e *criticalError) Is(target error) bool {
	return target == errCritical //nolint:errorlint // sentinel identity check
}

func (e *criticalError) Unwrap() error { return e.err }

// get reads the path. With more than one attempt configured transport errors and 5xx
// responses are retried with backoff.
func (c *Client) get(ctx context.Context, path string, auth bool, result any) error {
	retrier := repeater.NewBackoff(c.retries, 100*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		err := c.do(ctx, http.MethodGet, path, auth, nil, result)
		var se *StatusError
		if (errors.As(err, &se) && se.Code < http.StatusInternalServerError) || errors.Is(err, ErrNotSignedIn) {
			return &criticalError{err: err}
		}
		return err
	}, errCritical)

	var ce *criticalError
	if errors.As(err, &ce) {
		return ce.err
	}
	return err
}

// send makes a user request, not retried as it is not always idempotent
func (c *Client) send(ctx context.Context, method, path string, body, result any) error {
	return c.do(ctx, method, path, true, body, result)
}

// do makes a single request. With auth a token is required, without it the token is sent if present.
func (c *Client) do(ctx context.Context, method, path string, auth bool, body, result any) error {
	token := ""
	if c.tokens != nil {
		token = c.tokens.Token()
	}
	if auth && token == "" {
		return ErrNotSignedIn
	}

	var rdr io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		rdr = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return fmt.Errorf("make request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		se := &StatusError{Code: resp.StatusCode}
		var payload struct {
			Error string `json:"error"`
		}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
		if json.Unmarshal(raw, &payload) == nil && payload.Error != "" {
			se.Message = payload.Error
		} else {
			se.Message = strings.TrimSpace(string(raw))
		}
		return se
	}

	if result == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
