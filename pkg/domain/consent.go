package domain

import (
	"fmt"
	"time"
)

// ConsentVersion is the current consent policy version. Stored consent with any other
// version is treated as absent and the user is asked again.
const ConsentVersion = "1.0.0"

// ConsentStorageKey is the durable storage key holding the local consent copy
const ConsentStorageKey = "blizbi_consent"

// Category is a data category consent is given for
type Category string

// enum of consent categories
const (
	CategoryEssential       Category = "essential"
	CategoryFunctional      Category = "functional"
	CategoryAnalytics       Category = "analytics"
	CategoryPersonalization Category = "personalization"
)

// Categories lists every category, essential first
var Categories = []Category{CategoryEssential, CategoryFunctional, CategoryAnalytics, CategoryPersonalization}

// OptionalCategories lists the categories a user can refuse
var OptionalCategories = []Category{CategoryFunctional, CategoryAnalytics, CategoryPersonalization}

// ParseCategory converts a string to a Category
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown consent category %q", s)
}

// ConsentPreferences holds one decision per category. Essential is always true.
type ConsentPreferences struct {
	Essential       bool `json:"essential"`
	Functional      bool `json:"functional"`
	Analytics       bool `json:"analytics"`
	Personalization bool `json:"personalization"`
}

// DefaultPreferences returns essential-only preferences
func DefaultPreferences() ConsentPreferences {
	return ConsentPreferences{Essential: true}
}

// AllGranted returns preferences with every category granted
func AllGranted() ConsentPreferences {
	return ConsentPreferences{Essential: true, Functional: true, Analytics: true, Personalization: true}
}

// Allows reports the decision for the given category
func (p ConsentPreferences) Allows(c Category) bool {
	switch c {
	case CategoryEssential:
		return true
	case CategoryFunctional:
		return p.Functional
	case CategoryAnalytics:
		return p.Analytics
	case CategoryPersonalization:
		return p.Personalization
	default:
		return false
	}
}

// PartialPreferences is a partial update, nil fields keep the current value
type PartialPreferences struct {
	Essential       *bool `json:"essential,omitempty"`
	Functional      *bool `json:"functional,omitempty"`
	Analytics       *bool `json:"analytics,omitempty"`
	Personalization *bool `json:"personalization,omitempty"`
}

// Merge applies the partial update. Essential stays true whatever the update says.
func (p ConsentPreferences) Merge(upd PartialPreferences) ConsentPreferences {
	if upd.Functional != nil {
		p.Functional = *upd.Functional
	}
	if upd.Analytics != nil {
		p.Analytics = *upd.Analytics
	}
	if upd.Personalization != nil {
		p.Personalization = *upd.Personalization
	}
	p.Essential = true
	return p
}

// ConsentState is the full consent decision of a user
type ConsentState struct {
	HasResponded bool               `json:"hasResponded"`
	Preferences  ConsentPreferences `json:"preferences"`
	Timestamp    string             `json:"timestamp"`
	Version      string             `json:"version"`
}

// Current reports whether the state was recorded under the current policy version
func (s *ConsentState) Current() bool {
	return s != nil && s.Version == ConsentVersion
}

// ConsentRecord is the remote user_consent row
type ConsentRecord struct {
	UserID      string             `json:"user_id"`
	Preferences ConsentPreferences `json:"preferences"`
	Version     string             `json:"version"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// State converts the remote record to a responded consent state
func (r ConsentRecord) State() ConsentState {
	return ConsentState{
		HasResponded: true,
		Preferences:  r.Preferences,
		Timestamp:    r.UpdatedAt.UTC().Format(time.RFC3339),
		Version:      r.Version,
	}
}
