package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/blizbi/blizbi/pkg/domain"
)

// InterestRepository keeps the topics profiles can pick
type InterestRepository struct {
	db *sqlx.DB
}

// NewInterestRepository creates a new interest repository
func NewInterestRepository(conn *sqlx.DB) *InterestRepository {
	return &InterestRepository{db: conn}
}

// List returns all interests ordered by name
func (r *InterestRepository) List(ctx context.Context) ([]domain.Interest, error) {
	var rows []struct {
		ID   string `db:"id"`
		Name string `db:"name"`
	}
	if err := r.db.SelectContext(ctx, &rows, "SELECT id, name FROM interests ORDER BY name"); err != nil {
		return nil, fmt.Errorf("list interests: %w", err)
	}
	res := make([]domain.Interest, 0, len(rows))
	for _, row := range rows {
		res = append(res, domain.Interest{ID: row.ID, Name: row.Name})
	}
	return res, nil
}

// Create adds an interest, generating its ID if empty. Names are unique, ErrDuplicate otherwise.
func (r *InterestRepository) Create(ctx context.Context, in *domain.Interest) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.ID == "" {
		in.ID = uuid.NewString()
	}
	err := withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, "INSERT INTO interests (id, name) VALUES (?, ?)", in.ID, in.Name)
		return err
	})
	if isUniqueError(err) {
		return fmt.Errorf("interest %s: %w", in.Name, ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("create interest: %w", err)
	}
	return nil
}
