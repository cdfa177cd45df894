package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/blizbi/blizbi/pkg/db"
	"github.com/blizbi/blizbi/pkg/domain"
)

// BookmarkRepository handles bookmark-related database operations
type BookmarkRepository struct {
	db *sqlx.DB
}

// NewBookmarkRepository creates a new bookmark repository
func NewBookmarkRepository(conn *sqlx.DB) *BookmarkRepository {
	return &BookmarkRepository{db: conn}
}

// ListEventIDs returns the IDs of events bookmarked by the profile, dangling ones included
func (r *BookmarkRepository) ListEventIDs(ctx context.Context, profileID string) ([]string, error) {
	ids := []string{}
	err := r.db.SelectContext(ctx, &ids,
		"SELECT event_id FROM bookmarks WHERE profile_id = ? ORDER BY created_at, rowid", profileID)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	return ids, nil
}

// Add bookmarks the event for the profile, ErrDuplicate if it is bookmarked already
func (r *BookmarkRepository) Add(ctx context.Context, profileID, eventID string) (*domain.Bookmark, error) {
	row := db.Bookmark{ID: uuid.NewString(), ProfileID: profileID, EventID: eventID, CreatedAt: time.Now().UTC()}
	err := withRetry(ctx, func() error {
		_, err := r.db.NamedExecContext(ctx,
			`INSERT INTO bookmarks (id, profile_id, event_id, created_at) VALUES (:id, :profile_id, :event_id, :created_at)`, row)
		return err
	})
	if isUniqueError(err) {
		return nil, fmt.Errorf("bookmark %s: %w", eventID, ErrDuplicate)
	}
	if err != nil {
		return nil, fmt.Errorf("add bookmark: %w", err)
	}
	return &domain.Bookmark{ID: row.ID, ProfileID: profileID, EventID: eventID, CreatedAt: row.CreatedAt}, nil
}

// Remove deletes the bookmark. Removing a missing bookmark is not an error.
func (r *BookmarkRepository) Remove(ctx context.Context, profileID, eventID string) error {
	err := withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, "DELETE FROM bookmarks WHERE profile_id = ? AND event_id = ?", profileID, eventID)
		return err
	})
	if err != nil {
		return fmt.Errorf("remove bookmark: %w", err)
	}
	return nil
}

// bookmarkDetails is a bookmark joined with its event and provider
type bookmarkDetails struct {
	BookmarkEventID   string    `db:"bookmark_event_id"`
	BookmarkCreatedAt time.Time `db:"bookmark_created_at"`
	db.Event
}

// ListDetails returns bookmarked events with provider info, newest bookmark first.
// Bookmarks pointing at deleted events are skipped.
func (r *BookmarkRepository) ListDetails(ctx context.Context, profileID string) ([]domain.BookmarkedEvent, error) {
	query := `
		SELECT
			b.event_id AS bookmark_event_id,
			b.created_at AS bookmark_created_at,
			e.*,
			p.name AS provider_name,
			p.website_url AS provider_website,
			p.address AS provider_address
		FROM bookmarks b
		LEFT JOIN event e ON e.id = b.event_id
		LEFT JOIN providers p ON p.id = e.provider_id
		WHERE b.profile_id = ? AND e.id IS NOT NULL
		ORDER BY b.created_at DESC, b.rowid DESC
	`
	var rows []bookmarkDetails
	if err := r.db.SelectContext(ctx, &rows, query, profileID); err != nil {
		return nil, fmt.Errorf("list bookmark details: %w", err)
	}

	res := make([]domain.BookmarkedEvent, 0, len(rows))
	for _, row := range rows {
		res = append(res, domain.BookmarkedEvent{
			EventID:   row.BookmarkEventID,
			CreatedAt: row.BookmarkCreatedAt,
			Event:     row.Event.ToDomain(),
		})
	}
	return res, nil
}

// DeleteByProfile removes every bookmark of the profile
func (r *BookmarkRepository) DeleteByProfile(ctx context.Context, profileID string) (int64, error) {
	var res sql.Result
	err := withRetry(ctx, func() error {
		var err error
		res, err = r.db.ExecContext(ctx, "DELETE FROM bookmarks WHERE profile_id = ?", profileID)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("delete bookmarks: %w", err)
	}
	return res.RowsAffected()
}
