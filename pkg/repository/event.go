package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/blizbi/blizbi/pkg/db"
	"github.com/blizbi/blizbi/pkg/domain"
)

const (
	defaultEventLimit = 25
	maxEventLimit     = 100

	recentPerProvider = 3
	recentOverall     = 10
)

// EventRepository handles events and their providers
type EventRepository struct {
	db *sqlx.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(conn *sqlx.DB) *EventRepository {
	return &EventRepository{db: conn}
}

const eventSelect = `
	SELECT
		e.*,
		p.name AS provider_name,
		p.website_url AS provider_website,
		p.address AS provider_address
	FROM event e
	LEFT JOIN providers p ON p.id = e.provider_id`

// Search returns events matching the filter ordered by start date and time
func (r *EventRepository) Search(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error) {
	var where []string
	var args []any

	// every search term has to match title, description or location
	for _, term := range filter.Terms() {
		where = append(where, `(LOWER(e.title) LIKE ? OR LOWER(JSON_EXTRACT(e.details, '$.description')) LIKE ? OR LOWER(e.location) LIKE ?)`)
		like := "%" + term + "%"
		args = append(args, like, like, like)
	}
	if filter.From != "" {
		where = append(where, "e.start_date >= ?")
		args = append(args, filter.From)
	}
	if filter.To != "" {
		where = append(where, "e.start_date <= ?")
		args = append(args, filter.To)
	}
	if filter.ProviderID != "" {
		where = append(where, "e.provider_id = ?")
		args = append(args, filter.ProviderID)
	}

	query := eventSelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY e.start_date, COALESCE(e.start_time, ''), e.title LIMIT ? OFFSET ?"

	limit := filter.Limit
	switch {
	case limit <= 0:
		limit = defaultEventLimit
	case limit > maxEventLimit:
		limit = maxEventLimit
	}
	offset := max(filter.Offset, 0)
	args = append(args, limit, offset)

	var rows []db.Event
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}

	res := make([]domain.Event, 0, len(rows))
	for _, row := range rows {
		res = append(res, row.ToDomain())
	}
	return res, nil
}

// Get returns a single event with its provider, ErrNotFound if missing
func (r *EventRepository) Get(ctx context.Context, id string) (*domain.Event, error) {
	var row db.Event
	err := r.db.GetContext(ctx, &row, eventSelect+" WHERE e.id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	res := row.ToDomain()
	return &res, nil
}

// GetMany returns the events with the given IDs that exist, in the order of ids
func (r *EventRepository) GetMany(ctx context.Context, ids []string) ([]domain.Event, error) {
	if len(ids) == 0 {
		return []domain.Event{}, nil
	}
	query, args, err := sqlx.In(eventSelect+" WHERE e.id IN (?)", ids)
	if err != nil {
		return nil, fmt.Errorf("build get events query: %w", err)
	}
	var rows []db.Event
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("get events: %w", err)
	}

	byID := make(map[string]domain.Event, len(rows))
	for _, row := range rows {
		byID[row.ID] = row.ToDomain()
	}
	res := make([]domain.Event, 0, len(rows))
	for _, id := range ids {
		if ev, ok := byID[id]; ok {
			res = append(res, ev)
		}
	}
	return res, nil
}

// Upsert inserts the event, or updates the existing one with the same hash.
// Events without hash are always inserted. The stored event ID is set on ev.
func (r *EventRepository) Upsert(ctx context.Context, ev *domain.Event) error {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	row := db.EventFromDomain(*ev)
	query := `
		INSERT INTO event (id, provider_id, title, details, start_date, end_date, start_time, end_time,
			cover_url, price_type, price_amount, location, hash)
		VALUES (:id, :provider_id, :title, :details, :start_date, :end_date, :start_time, :end_time,
			:cover_url, :price_type, :price_amount, :location, :hash)
		ON CONFLICT(hash) DO UPDATE SET
			title = excluded.title,
			details = excluded.details,
			start_date = excluded.start_date,
			end_date = excluded.end_date,
			start_time = excluded.start_time,
			end_time = excluded.end_time,
			cover_url = excluded.cover_url,
			price_type = excluded.price_type,
			price_amount = excluded.price_amount,
			location = excluded.location
	`
	err := withRetry(ctx, func() error {
		_, err := r.db.NamedExecContext(ctx, query, row)
		return err
	})
	if err != nil {
		return fmt.Errorf("upsert event: %w", err)
	}

	if ev.Hash != "" {
		// on conflict the row keeps its original id
		if err := r.db.GetContext(ctx, &ev.ID, "SELECT id FROM event WHERE hash = ?", ev.Hash); err != nil {
			return fmt.Errorf("get upserted event id: %w", err)
		}
	}
	return nil
}

// Delete removes the event, ErrNotFound if missing. Bookmarks pointing at it are left dangling.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	return r.execOne(ctx, "delete event", func() (sql.Result, error) {
		return r.db.ExecContext(ctx, "DELETE FROM event WHERE id = ?", id)
	})
}

// CreateProvider inserts a provider, generating its ID if empty
func (r *EventRepository) CreateProvider(ctx context.Context, p *domain.Provider) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	row := db.ProviderFromDomain(*p)
	query := `
		INSERT INTO providers (id, name, short_description, website_url, cover_url, address, feed_url)
		VALUES (:id, :name, :short_description, :website_url, :cover_url, :address, :feed_url)
	`
	err := withRetry(ctx, func() error {
		_, err := r.db.NamedExecContext(ctx, query, row)
		return err
	})
	if isUniqueError(err) {
		return fmt.Errorf("provider %s: %w", p.ID, ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("create provider: %w", err)
	}
	return nil
}

// GetProvider returns a provider by ID, ErrNotFound if missing
func (r *EventRepository) GetProvider(ctx context.Context, id string) (*domain.Provider, error) {
	var row db.Provider
	err := r.db.GetContext(ctx, &row, "SELECT * FROM providers WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get provider: %w", err)
	}
	res := row.ToDomain()
	return &res, nil
}

// ListProviders returns all providers ordered by name
func (r *EventRepository) ListProviders(ctx context.Context) ([]domain.Provider, error) {
	return r.selectProviders(ctx, "SELECT * FROM providers ORDER BY name")
}

// ProvidersWithFeeds returns providers having a feed to import events from
func (r *EventRepository) ProvidersWithFeeds(ctx context.Context) ([]domain.Provider, error) {
	return r.selectProviders(ctx, "SELECT * FROM providers WHERE feed_url IS NOT NULL AND feed_url != '' ORDER BY name")
}

func (r *EventRepository) selectProviders(ctx context.Context, query string) ([]domain.Provider, error) {
	var rows []db.Provider
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}
	res := make([]domain.Provider, 0, len(rows))
	for _, row := range rows {
		res = append(res, row.ToDomain())
	}
	return res, nil
}

// Update replaces the stored fields of the event with the given ID, ErrNotFound if missing.
// The import hash is kept, so a later import of the same item overwrites the change.
func (r *EventRepository) Update(ctx context.Context, ev *domain.Event) error {
	row := db.EventFromDomain(*ev)
	query := `
		UPDATE event SET
			provider_id = :provider_id,
			title = :title,
			details = :details,
			start_date = :start_date,
			end_date = :end_date,
			start_time = :start_time,
			end_time = :end_time,
			cover_url = :cover_url,
			price_type = :price_type,
			price_amount = :price_amount,
			location = :location
		WHERE id = :id
	`
	return r.execOne(ctx, "update event", func() (sql.Result, error) {
		return r.db.NamedExecContext(ctx, query, row)
	})
}

// UpdateProvider replaces the stored fields of the provider, ErrNotFound if missing
func (r *EventRepository) UpdateProvider(ctx context.Context, p *domain.Provider) error {
	row := db.ProviderFromDomain(*p)
	query := `
		UPDATE providers SET
			name = :name,
			short_description = :short_description,
			website_url = :website_url,
			cover_url = :cover_url,
			address = :address,
			feed_url = :feed_url,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = :id
	`
	return r.execOne(ctx, "update provider", func() (sql.Result, error) {
		return r.db.NamedExecContext(ctx, query, row)
	})
}

// DeleteProvider removes the provider together with its events, ErrNotFound if missing
func (r *EventRepository) DeleteProvider(ctx context.Context, id string) error {
	return r.execOne(ctx, "delete provider", func() (sql.Result, error) {
		return r.db.ExecContext(ctx, "DELETE FROM providers WHERE id = ?", id)
	})
}

// execOne runs a write expected to touch a single row, ErrNotFound if it touched none
func (r *EventRepository) execOne(ctx context.Context, op string, exec func() (sql.Result, error)) error {
	var affected int64
	err := withRetry(ctx, func() error {
		res, err := exec()
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats counts profiles, events and providers, and per provider its events and the ones
// starting on or after today (YYYY-MM-DD). Providers come newest first with their
// recently added events.
func (r *EventRepository) Stats(ctx context.Context, today string) (*domain.Dashboard, error) {
	var totals struct {
		Profiles  int `db:"profiles"`
		Events    int `db:"events"`
		Providers int `db:"providers"`
	}
	counts := `
		SELECT
			(SELECT COUNT(*) FROM profiles) AS profiles,
			(SELECT COUNT(*) FROM event) AS events,
			(SELECT COUNT(*) FROM providers) AS providers
	`
	if err := r.db.GetContext(ctx, &totals, counts); err != nil {
		return nil, fmt.Errorf("count totals: %w", err)
	}
	res := &domain.Dashboard{Profiles: totals.Profiles, Events: totals.Events, Providers: totals.Providers}

	var rows []struct {
		ID           string `db:"id"`
		Name         string `db:"name"`
		TotalEvents  int    `db:"total_events"`
		ActiveEvents int    `db:"active_events"`
	}
	query := `
		SELECT
			p.id,
			p.name,
			COUNT(e.id) AS total_events,
			COALESCE(SUM(CASE WHEN e.start_date >= ? THEN 1 ELSE 0 END), 0) AS active_events
		FROM providers p
		LEFT JOIN event e ON e.provider_id = p.id
		GROUP BY p.id
		ORDER BY p.created_at DESC, p.name
	`
	if err := r.db.SelectContext(ctx, &rows, query, today); err != nil {
		return nil, fmt.Errorf("provider metrics: %w", err)
	}

	res.ProviderMetrics = make([]domain.ProviderMetrics, 0, len(rows))
	for _, row := range rows {
		evs, err := r.recentlyAdded(ctx, row.ID, recentPerProvider)
		if err != nil {
			return nil, err
		}
		res.ProviderMetrics = append(res.ProviderMetrics, domain.ProviderMetrics{ID: row.ID, Name: row.Name,
			TotalEvents: row.TotalEvents, ActiveEvents: row.ActiveEvents, RecentEvents: evs})
	}

	all, err := r.recentlyAdded(ctx, "", recentOverall)
	if err != nil {
		return nil, err
	}
	res.RecentEvents = all
	return res, nil
}

// recentlyAdded returns the last added events, of a single provider if providerID is set
func (r *EventRepository) recentlyAdded(ctx context.Context, providerID string, limit int) ([]domain.Event, error) {
	if limit <= 0 {
		return []domain.Event{}, nil
	}
	query, args := eventSelect, []any{}
	if providerID != "" {
		query += " WHERE e.provider_id = ?"
		args = append(args, providerID)
	}
	query += " ORDER BY e.created_at DESC, e.rowid DESC LIMIT ?"
	args = append(args, limit)

	var rows []db.Event
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("recent events: %w", err)
	}
	res := make([]domain.Event, 0, len(rows))
	for _, row := range rows {
		res = append(res, row.ToDomain())
	}
	return res, nil
}
