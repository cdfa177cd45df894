package db

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/blizbi/blizbi/pkg/domain"
)

// Profile represents a user profile row
type Profile struct {
	ID          string    `db:"id"`
	ClerkID     string    `db:"clerk_id"`
	InterestIDs Strings   `db:"interest_ids"`
	CreatedAt   time.Time `db:"created_at"`
}

// Bookmark represents a bookmark row
type Bookmark struct {
	ID        string    `db:"id"`
	ProfileID string    `db:"profile_id"`
	EventID   string    `db:"event_id"`
	CreatedAt time.Time `db:"created_at"`
}

// Consent represents a user_consent row
type Consent struct {
	UserID      string      `db:"user_id"`
	Preferences Preferences `db:"preferences"`
	Version     string      `db:"version"`
	UpdatedAt   time.Time   `db:"updated_at"`
}

// ChatHistory represents a chat_history row, one message array per profile
type ChatHistory struct {
	ProfileID string    `db:"profile_id"`
	Messages  Messages  `db:"messages"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Provider represents an event provider row
type Provider struct {
	ID               string         `db:"id"`
	Name             string         `db:"name"`
	ShortDescription sql.NullString `db:"short_description"`
	WebsiteURL       sql.NullString `db:"website_url"`
	CoverURL         sql.NullString `db:"cover_url"`
	Address          sql.NullString `db:"address"`
	FeedURL          sql.NullString `db:"feed_url"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

// Event represents an event row
type Event struct {
	ID          string          `db:"id"`
	ProviderID  string          `db:"provider_id"`
	Title       string          `db:"title"`
	Details     Details         `db:"details"`
	StartDate   string          `db:"start_date"`
	EndDate     sql.NullString  `db:"end_date"`
	StartTime   sql.NullString  `db:"start_time"`
	EndTime     sql.NullString  `db:"end_time"`
	CoverURL    sql.NullString  `db:"cover_url"`
	PriceType   string          `db:"price_type"`
	PriceAmount sql.NullFloat64 `db:"price_amount"`
	Location    sql.NullString  `db:"location"`
	Hash        sql.NullString  `db:"hash"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`

	// joined from providers, empty when not selected
	ProviderName    sql.NullString `db:"provider_name"`
	ProviderWebsite sql.NullString `db:"provider_website"`
	ProviderAddress sql.NullString `db:"provider_address"`
}

// Details holds free-form event details stored as JSON
type Details struct {
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Value implements driver.Valuer
func (d Details) Value() (driver.Value, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshal details: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (d *Details) Scan(value any) error {
	return scanJSON(value, d)
}

// Strings is a string list stored as a JSON array
type Strings []string

// Value implements driver.Valuer, nil is stored as an empty array
func (s Strings) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(s))
	if err != nil {
		return nil, fmt.Errorf("marshal strings: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (s *Strings) Scan(value any) error {
	return scanJSON(value, s)
}

// Preferences is consent preferences stored as a JSON object
type Preferences domain.ConsentPreferences

// Value implements driver.Valuer
func (p Preferences) Value() (driver.Value, error) {
	data, err := json.Marshal(domain.ConsentPreferences(p))
	if err != nil {
		return nil, fmt.Errorf("marshal preferences: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (p *Preferences) Scan(value any) error {
	return scanJSON(value, (*domain.ConsentPreferences)(p))
}

// Messages is a chat message array stored as JSON
type Messages []domain.Message

// Value implements driver.Valuer, nil is stored as an empty array
func (m Messages) Value() (driver.Value, error) {
	if m == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]domain.Message(m))
	if err != nil {
		return nil, fmt.Errorf("marshal messages: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (m *Messages) Scan(value any) error {
	return scanJSON(value, (*[]domain.Message)(m))
}

// scanJSON decodes a TEXT or BLOB column holding JSON, NULL leaves the target untouched
func scanJSON(value, target any) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported json column type %T", value)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("unmarshal json column: %w", err)
	}
	return nil
}

// ToDomain converts the row to a domain profile
func (p Profile) ToDomain() domain.Profile {
	ids := []string(p.InterestIDs)
	if ids == nil {
		ids = []string{}
	}
	return domain.Profile{ID: p.ID, ClerkID: p.ClerkID, InterestIDs: ids, CreatedAt: p.CreatedAt}
}

// ToDomain converts the row to a domain consent record
func (c Consent) ToDomain() domain.ConsentRecord {
	return domain.ConsentRecord{
		UserID:      c.UserID,
		Preferences: domain.ConsentPreferences(c.Preferences),
		Version:     c.Version,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToDomain converts the row to a domain provider
func (p Provider) ToDomain() domain.Provider {
	return domain.Provider{
		ID:               p.ID,
		Name:             p.Name,
		ShortDescription: p.ShortDescription.String,
		WebsiteURL:       p.WebsiteURL.String,
		CoverURL:         p.CoverURL.String,
		Address:          p.Address.String,
		FeedURL:          p.FeedURL.String,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// ToDomain converts the row to a domain event, attaching the provider if it was joined
func (e Event) ToDomain() domain.Event {
	res := domain.Event{
		ID:          e.ID,
		ProviderID:  e.ProviderID,
		Title:       e.Title,
		Description: e.Details.Description,
		URL:         e.Details.URL,
		Location:    e.Location.String,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate.String,
		StartTime:   e.StartTime.String,
		EndTime:     e.EndTime.String,
		CoverURL:    e.CoverURL.String,
		PriceType:   domain.PriceType(e.PriceType),
		Hash:        e.Hash.String,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if e.PriceAmount.Valid {
		amount := e.PriceAmount.Float64
		res.PriceAmount = &amount
	}
	if e.ProviderName.Valid {
		res.Provider = &domain.Provider{
			ID:         e.ProviderID,
			Name:       e.ProviderName.String,
			WebsiteURL: e.ProviderWebsite.String,
			Address:    e.ProviderAddress.String,
		}
	}
	return res
}

// EventFromDomain converts a domain event to a row
func EventFromDomain(e domain.Event) Event {
	res := Event{
		ID:         e.ID,
		ProviderID: e.ProviderID,
		Title:      e.Title,
		Details:    Details{Description: e.Description, URL: e.URL},
		StartDate:  e.StartDate,
		EndDate:    nullString(e.EndDate),
		StartTime:  nullString(e.StartTime),
		EndTime:    nullString(e.EndTime),
		CoverURL:   nullString(e.CoverURL),
		PriceType:  string(e.PriceType),
		Location:   nullString(e.Location),
		Hash:       nullString(e.Hash),
	}
	if res.PriceType == "" {
		res.PriceType = string(domain.PriceFree)
	}
	if e.PriceAmount != nil {
		res.PriceAmount = sql.NullFloat64{Float64: *e.PriceAmount, Valid: true}
	}
	return res
}

// ProviderFromDomain converts a domain provider to a row
func ProviderFromDomain(p domain.Provider) Provider {
	return Provider{
		ID:               p.ID,
		Name:             p.Name,
		ShortDescription: nullString(p.ShortDescription),
		WebsiteURL:       nullString(p.WebsiteURL),
		CoverURL:         nullString(p.CoverURL),
		Address:          nullString(p.Address),
		FeedURL:          nullString(p.FeedURL),
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
