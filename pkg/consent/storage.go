package consent

import (
	"context"
	"slices"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/blizbi/blizbi/pkg/domain"
)

// local storage is on disk or in memory, a stuck call means something is badly wrong
const storageTimeout = 5 * time.Second

// CategoryStorage is a key-value view gated by the consent of one category:
//   - essential always writes durably
//   - functional writes durably when granted and falls back to session storage otherwise
//   - analytics and personalization drop writes and read nothing when refused
//
// Storage failures are logged and never returned.
type CategoryStorage struct {
	category domain.Category
	store    *Store
}

// Storage returns the view of the category
func (s *Store) Storage(c domain.Category) *CategoryStorage {
	return &CategoryStorage{category: c, store: s}
}

// Essential returns the ungated view
func (s *Store) Essential() *CategoryStorage { return s.Storage(domain.CategoryEssential) }

// Functional returns the view with session fallback
func (s *Store) Functional() *CategoryStorage { return s.Storage(domain.CategoryFunctional) }

// Analytics returns the analytics view
func (s *Store) Analytics() *CategoryStorage { return s.Storage(domain.CategoryAnalytics) }

// Personalization returns the personalization view
func (s *Store) Personalization() *CategoryStorage { return s.Storage(domain.CategoryPersonalization) }

// Category returns the category of the view
func (c *CategoryStorage) Category() domain.Category { return c.category }

// SetItem stores the value if the category allows it
func (c *CategoryStorage) SetItem(key, value string) {
	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()

	if c.category != domain.CategoryEssential && !slices.Contains(Registry[c.category], key) {
		lgr.Printf("[WARN] key %q is not registered for %s, it will survive consent withdrawal", key, c.category)
	}

	granted := c.store.HasConsent(c.category)
	switch {
	case granted:
		if err := c.store.durable.Set(ctx, key, value); err != nil {
			lgr.Printf("[WARN] can't set %s storage %s, %v", c.category, key, err)
		}
	case c.category == domain.CategoryFunctional:
		if err := c.store.session.Set(ctx, key, value); err != nil {
			lgr.Printf("[WARN] can't set session storage %s, %v", key, err)
		}
	default:
		lgr.Printf("[DEBUG] %s storage refused, %s dropped", c.category, key)
	}
}

// GetItem returns the value if the category allows reading it
func (c *CategoryStorage) GetItem(key string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()

	granted := c.store.HasConsent(c.category)
	switch {
	case granted:
		v, ok, err := c.store.durable.Get(ctx, key)
		if err != nil {
			lgr.Printf("[WARN] can't get %s storage %s, %v", c.category, key, err)
			return "", false
		}
		return v, ok
	case c.category == domain.CategoryFunctional:
		v, ok, err := c.store.session.Get(ctx, key)
		if err != nil {
			lgr.Printf("[WARN] can't get session storage %s, %v", key, err)
			return "", false
		}
		return v, ok
	default:
		return "", false
	}
}

// RemoveItem deletes the key whatever the consent is. Functional keys are removed
// from session storage too.
func (c *CategoryStorage) RemoveItem(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()

	if err := c.store.durable.Remove(ctx, key); err != nil {
		lgr.Printf("[WARN] can't remove %s storage %s, %v", c.category, key, err)
	}
	if c.category != domain.CategoryFunctional {
		return
	}
	if err := c.store.session.Remove(ctx, key); err != nil {
		lgr.Printf("[WARN] can't remove session storage %s, %v", key, err)
	}
}

// CleanupCategory removes every registered key of the category from durable and session storage.
// Essential data is never cleaned.
func (s *Store) CleanupCategory(c domain.Category) {
	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()
	s.cleanup(ctx, c)
}

func (s *Store) cleanup(ctx context.Context, c domain.Category) {
	if c == domain.CategoryEssential {
		lgr.Printf("[WARN] essential storage is not cleaned up")
		return
	}
	for _, key := range Registry[c] {
		if err := s.durable.Remove(ctx, key); err != nil {
			lgr.Printf("[WARN] can't remove %s storage %s, %v", c, key, err)
		}
		if err := s.session.Remove(ctx, key); err != nil {
			lgr.Printf("[WARN] can't remove session storage %s, %v", key, err)
		}
	}
	lgr.Printf("[DEBUG] %s storage cleaned up", c)
}
