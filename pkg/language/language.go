// Package language keeps the UI language the user picked in functional storage.
package language

import (
	"fmt"
	"sync"

	"github.com/go-pkgz/lgr"

	"github.com/blizbi/blizbi/pkg/consent"
	"github.com/blizbi/blizbi/pkg/domain"
)

// supported languages
const (
	Norwegian = "no"
	English   = "en"
)

// Default is used when nothing is stored
const Default = Norwegian

// Storage is the key-value view the preference is kept in
type Storage interface {
	SetItem(key, value string)
	GetItem(key string) (string, bool)
}

// Preference is the current UI language
type Preference struct {
	storage Storage

	mu      sync.RWMutex
	current string
}

// New makes a preference reading the stored language
func New(storage Storage) *Preference {
	p := &Preference{storage: storage, current: Default}
	p.Reload()
	return p
}

// Watch reloads the stored language every time consent is given
func (p *Preference) Watch(store *consent.Store) {
	store.OnChange(func(st *domain.ConsentState) {
		if st != nil && st.HasResponded {
			p.Reload()
		}
	})
}

// Reload reads the stored language, falling back to Default
func (p *Preference) Reload() {
	lang, ok := p.storage.GetItem(consent.KeyLanguage)
	if !ok || !Supported(lang) {
		lang = Default
	}
	p.mu.Lock()
	p.current = lang
	p.mu.Unlock()
}

// Get returns the current language code
func (p *Preference) Get() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// Set changes and stores the language
func (p *Preference) Set(lang string) error {
	if !Supported(lang) {
		return fmt.Errorf("unsupported language %q", lang)
	}
	p.mu.Lock()
	p.current = lang
	p.mu.Unlock()
	p.storage.SetItem(consent.KeyLanguage, lang)
	lgr.Printf("[DEBUG] language set to %s", lang)
	return nil
}

// ChatLanguage returns the name of the current language the assistant should answer in
func (p *Preference) ChatLanguage() string {
	if p.Get() == Norwegian {
		return "Norwegian"
	}
	return "English"
}

// Supported reports whether the language code is known
func Supported(lang string) bool {
	return lang == Norwegian || lang == English
}
