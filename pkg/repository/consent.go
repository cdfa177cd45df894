package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/blizbi/blizbi/pkg/db"
	"github.com/blizbi/blizbi/pkg/domain"
)

// ConsentRepository handles user_consent rows
type ConsentRepository struct {
	db *sqlx.DB
}

// NewConsentRepository creates a new consent repository
func NewConsentRepository(conn *sqlx.DB) *ConsentRepository {
	return &ConsentRepository{db: conn}
}

// Get returns the consent record of the user, ErrNotFound if there is none
func (r *ConsentRepository) Get(ctx context.Context, userID string) (*domain.ConsentRecord, error) {
	var row db.Consent
	err := r.db.GetContext(ctx, &row, "SELECT * FROM user_consent WHERE user_id = ?", userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get consent: %w", err)
	}
	res := row.ToDomain()
	return &res, nil
}

// Upsert stores the consent record, replacing any previous one of the user
func (r *ConsentRepository) Upsert(ctx context.Context, rec domain.ConsentRecord) error {
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = time.Now()
	}
	row := db.Consent{
		UserID:      rec.UserID,
		Preferences: db.Preferences(rec.Preferences),
		Version:     rec.Version,
		UpdatedAt:   rec.UpdatedAt.UTC(),
	}
	query := `
		INSERT INTO user_consent (user_id, preferences, version, updated_at)
		VALUES (:user_id, :preferences, :version, :updated_at)
		ON CONFLICT(user_id) DO UPDATE SET
			preferences = excluded.preferences,
			version = excluded.version,
			updated_at = excluded.updated_at
	`
	err := withRetry(ctx, func() error {
		_, err := r.db.NamedExecContext(ctx, query, row)
		return err
	})
	if err != nil {
		return fmt.Errorf("upsert consent: %w", err)
	}
	return nil
}

// Delete removes the consent record of the user. Missing record is not an error.
func (r *ConsentRepository) Delete(ctx context.Context, userID string) error {
	err := withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, "DELETE FROM user_consent WHERE user_id = ?", userID)
		return err
	})
	if err != nil {
		return fmt.Errorf("delete consent: %w", err)
	}
	return nil
}
