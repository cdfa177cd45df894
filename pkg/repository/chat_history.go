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

// ChatHistoryRepository keeps one message array per profile
type ChatHistoryRepository struct {
	db *sqlx.DB
}

// NewChatHistoryRepository creates a new chat history repository
func NewChatHistoryRepository(conn *sqlx.DB) *ChatHistoryRepository {
	return &ChatHistoryRepository{db: conn}
}

// Get returns the stored messages of the profile, empty if nothing was stored yet
func (r *ChatHistoryRepository) Get(ctx context.Context, profileID string) ([]domain.Message, error) {
	var row db.ChatHistory
	err := r.db.GetContext(ctx, &row, "SELECT * FROM chat_history WHERE profile_id = ?", profileID)
	if errors.Is(err, sql.ErrNoRows) {
		return []domain.Message{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get chat history: %w", err)
	}
	if row.Messages == nil {
		return []domain.Message{}, nil
	}
	return []domain.Message(row.Messages), nil
}

// Append adds messages to the end of the stored array
func (r *ChatHistoryRepository) Append(ctx context.Context, profileID string, msgs ...domain.Message) error {
	if len(msgs) == 0 {
		return nil
	}
	err := withRetry(ctx, func() error {
		return db.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
			var current db.Messages
			err := tx.GetContext(ctx, &current, "SELECT messages FROM chat_history WHERE profile_id = ?", profileID)
			if err != nil && !errors.Is(err, sql.ErrNoRows) {
				return err
			}
			updated := append(current, msgs...) //nolint:gocritic // current is a fresh slice
			_, err = tx.ExecContext(ctx, `
				INSERT INTO chat_history (profile_id, messages, updated_at) VALUES (?, ?, ?)
				ON CONFLICT(profile_id) DO UPDATE SET messages = excluded.messages, updated_at = excluded.updated_at`,
				profileID, updated, time.Now().UTC())
			return err
		})
	})
	if err != nil {
		return fmt.Errorf("append chat history: %w", err)
	}
	return nil
}

// Clear empties the stored array, keeping the row
func (r *ChatHistoryRepository) Clear(ctx context.Context, profileID string) error {
	err := withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx,
			"UPDATE chat_history SET messages = '[]', updated_at = ? WHERE profile_id = ?", time.Now().UTC(), profileID)
		return err
	})
	if err != nil {
		return fmt.Errorf("clear chat history: %w", err)
	}
	return nil
}

// DeleteByProfile removes the chat history row of the profile
func (r *ChatHistoryRepository) DeleteByProfile(ctx context.Context, profileID string) error {
	err := withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, "DELETE FROM chat_history WHERE profile_id = ?", profileID)
		return err
	})
	if err != nil {
		return fmt.Errorf("delete chat history: %w", err)
	}
	return nil
}
