package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/smswithoutborders/vault-server/shared/models"
)

// EntityTokenRepository provides CRUD over EntityToken rows keyed on
// (eid, platform, identifier hash).
type EntityTokenRepository struct {
	*BaseRepository
	db *sqlx.DB
}

// NewEntityTokenRepository wraps db with token-specific queries.
func NewEntityTokenRepository(db *sqlx.DB) *EntityTokenRepository {
	return &EntityTokenRepository{BaseRepository: NewBaseRepository(db), db: db}
}

// Create persists a new token row.
func (r *EntityTokenRepository) Create(ctx context.Context, t *models.EntityToken) error {
	return r.BaseRepository.Create(ctx, InsertEntityTokenQuery, t)
}

// ListByEID returns every token row owned by eid, projected to
// {platform, account_identifier} by the caller after decryption.
func (r *EntityTokenRepository) ListByEID(ctx context.Context, eid string) ([]models.EntityToken, error) {
	var tokens []models.EntityToken
	if err := r.db.SelectContext(ctx, &tokens, SelectEntityTokensByEIDQuery, eid); err != nil {
		return nil, err
	}
	return tokens, nil
}

// Find loads a single token row by its natural key.
func (r *EntityTokenRepository) Find(ctx context.Context, eid, platform, accountIdentifierHash string) (*models.EntityToken, error) {
	var t models.EntityToken
	err := r.db.GetContext(ctx, &t, SelectEntityTokenQuery, eid, platform, accountIdentifierHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Count returns how many tokens eid owns.
func (r *EntityTokenRepository) Count(ctx context.Context, eid string) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, CountEntityTokensQuery, eid); err != nil {
		return 0, err
	}
	return n, nil
}

// Save updates a token's encrypted material.
func (r *EntityTokenRepository) Save(ctx context.Context, t *models.EntityToken) error {
	SetUpdateTimestamp(t)
	return r.BaseRepository.Update(ctx, UpdateEntityTokenQuery, t)
}

// Delete removes a token row by its natural key.
func (r *EntityTokenRepository) Delete(ctx context.Context, eid, platform, accountIdentifierHash string) error {
	_, err := r.db.ExecContext(ctx, DeleteEntityTokenQuery, eid, platform, accountIdentifierHash)
	return err
}
