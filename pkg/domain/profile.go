package domain

import "time"

// User is a signed-in identity as seen by the identity provider
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Admin bool   `json:"admin,omitempty"`
}

// Interest is a topic profiles pick to get matching suggestions
type Interest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Profile is the application record owned by a signed-in identity
type Profile struct {
	ID          string    `json:"id"`
	ClerkID     string    `json:"clerk_id"`
	InterestIDs []string  `json:"interest_ids"`
	CreatedAt   time.Time `json:"created_at"`
}

// Bookmark relates a profile to an event
type Bookmark struct {
	ID        string    `json:"id"`
	ProfileID string    `json:"profile_id"`
	EventID   string    `json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
}

// BookmarkedEvent is a bookmark joined with its event and provider
type BookmarkedEvent struct {
	EventID   string    `json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
	Event     Event     `json:"event"`
}

// ChatHistory is the stored conversation of a profile
type ChatHistory struct {
	ProfileID string    `json:"profile_id"`
	Messages  []Message `json:"messages"`
	UpdatedAt time.Time `json:"updated_at"`
}

// user-owned remote collections, erased on data deletion requests
const (
	CollectionConsent     = "user_consent"
	CollectionBookmarks   = "bookmarks"
	CollectionChatHistory = "chat_history"
	CollectionProfiles    = "profiles"
)

// UserCollections lists collections holding user data, profiles last
var UserCollections = []string{CollectionConsent, CollectionBookmarks, CollectionChatHistory, CollectionProfiles}
