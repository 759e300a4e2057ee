package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/smswithoutborders/vault-server/shared/models"
)

// ErrNotFound is returned by lookups that find no matching row.
var ErrNotFound = errors.New("repository: not found")

// EntityRepository provides create/find/update/delete over the Entity
// table.
type EntityRepository struct {
	*BaseRepository
	db *sqlx.DB
}

// NewEntityRepository wraps db with Entity-specific queries.
func NewEntityRepository(db *sqlx.DB) *EntityRepository {
	return &EntityRepository{BaseRepository: NewBaseRepository(db), db: db}
}

// Create persists a new entity row. SetCreateTimestamps must be called by
// the caller before Create so CreatedAt/UpdatedAt are populated.
func (r *EntityRepository) Create(ctx context.Context, e *models.Entity) error {
	return r.BaseRepository.Create(ctx, InsertEntityQuery, e)
}

// FindByEID loads an entity by its primary identifier.
func (r *EntityRepository) FindByEID(ctx context.Context, eid string) (*models.Entity, error) {
	var e models.Entity
	if err := r.db.GetContext(ctx, &e, SelectEntityByEIDQuery, eid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// FindByPhoneHash loads an entity by the unique phone-number-hash index.
func (r *EntityRepository) FindByPhoneHash(ctx context.Context, phoneHash string) (*models.Entity, error) {
	var e models.Entity
	if err := r.db.GetContext(ctx, &e, SelectEntityByPhoneHashQuery, phoneHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// FindByDeviceID loads an entity by its current device_id.
func (r *EntityRepository) FindByDeviceID(ctx context.Context, deviceID string) (*models.Entity, error) {
	var e models.Entity
	if err := r.db.GetContext(ctx, &e, SelectEntityByDeviceIDQuery, deviceID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// Save persists mutated fields on an already-loaded entity.
func (r *EntityRepository) Save(ctx context.Context, e *models.Entity) error {
	SetUpdateTimestamp(e)
	return r.BaseRepository.Update(ctx, UpdateEntityQuery, e)
}

// Delete removes the entity row. Callers must have already verified that
// no tokens reference it.
func (r *EntityRepository) Delete(ctx context.Context, eid string) error {
	return r.BaseRepository.Delete(ctx, DeleteEntityQuery, eid)
}
