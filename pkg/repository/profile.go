package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/blizbi/blizbi/pkg/db"
	"github.com/blizbi/blizbi/pkg/domain"
)

// ProfileRepository handles profile-related database operations
type ProfileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(conn *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: conn}
}

// GetByClerkID returns the profile owned by the identity, ErrNotFound if there is none
func (r *ProfileRepository) GetByClerkID(ctx context.Context, clerkID string) (*domain.Profile, error) {
	var row db.Profile
	err := r.db.GetContext(ctx, &row, "SELECT * FROM profiles WHERE clerk_id = ?", clerkID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	res := row.ToDomain()
	return &res, nil
}

// Create inserts a profile for the identity, ErrDuplicate if one exists already
func (r *ProfileRepository) Create(ctx context.Context, clerkID string) (*domain.Profile, error) {
	row := db.Profile{ID: uuid.NewString(), ClerkID: clerkID, InterestIDs: db.Strings{}}
	err := withRetry(ctx, func() error {
		_, err := r.db.NamedExecContext(ctx,
			`INSERT INTO profiles (id, clerk_id, interest_ids) VALUES (:id, :clerk_id, :interest_ids)`, row)
		return err
	})
	if isUniqueError(err) {
		return nil, fmt.Errorf("create profile for %s: %w", clerkID, ErrDuplicate)
	}
	if err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return r.GetByClerkID(ctx, clerkID)
}

// Ensure returns the profile of the identity, creating it on first use
func (r *ProfileRepository) Ensure(ctx context.Context, clerkID string) (*domain.Profile, error) {
	p, err := r.GetByClerkID(ctx, clerkID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	p, err = r.Create(ctx, clerkID)
	if errors.Is(err, ErrDuplicate) {
		// created concurrently by another request
		return r.GetByClerkID(ctx, clerkID)
	}
	return p, err
}

// UpdateInterests replaces the interest list of the profile
func (r *ProfileRepository) UpdateInterests(ctx context.Context, clerkID string, interestIDs []string) (*domain.Profile, error) {
	var affected int64
	err := withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, "UPDATE profiles SET interest_ids = ? WHERE clerk_id = ?",
			db.Strings(interestIDs), clerkID)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update interests: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByClerkID(ctx, clerkID)
}

// DeleteByClerkID removes the profile of the identity. Bookmarks and chat history cascade.
func (r *ProfileRepository) DeleteByClerkID(ctx context.Context, clerkID string) error {
	err := withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, "DELETE FROM profiles WHERE clerk_id = ?", clerkID)
		return err
	})
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}
