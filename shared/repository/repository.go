package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/smswithoutborders/vault-server/shared/models"
)

// BaseRepository provides common database operations
type BaseRepository struct {
	db *sqlx.DB
}

func NewBaseRepository(db *sqlx.DB) *BaseRepository {
	return &BaseRepository{db: db}
}

// Create creates a new record
func (r *BaseRepository) Create(ctx context.Context, query string, args interface{}) error {
	_, err := r.db.NamedExecContext(ctx, query, args)
	if err != nil {
		logx.Errorf("Failed to create record: %v", err)
		return fmt.Errorf("failed to create record: %w", err)
	}
	return nil
}

// GetByID retrieves a record by ID
func (r *BaseRepository) GetByID(ctx context.Context, dest interface{}, query string, id interface{}) error {
	err := r.db.GetContext(ctx, dest, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("record not found")
		}
		logx.Errorf("Failed to get record by ID: %v", err)
		return fmt.Errorf("failed to get record by ID: %w", err)
	}
	return nil
}

// Update updates a record
func (r *BaseRepository) Update(ctx context.Context, query string, args interface{}) error {
	_, err := r.db.NamedExecContext(ctx, query, args)
	if err != nil {
		logx.Errorf("Failed to update record: %v", err)
		return fmt.Errorf("failed to update record: %w", err)
	}
	return nil
}

// Delete deletes a record by ID
func (r *BaseRepository) Delete(ctx context.Context, query string, id interface{}) error {
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		logx.Errorf("Failed to delete record: %v", err)
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}

// List retrieves multiple records
func (r *BaseRepository) List(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	err := r.db.SelectContext(ctx, dest, query, args...)
	if err != nil {
		logx.Errorf("Failed to list records: %v", err)
		return fmt.Errorf("failed to list records: %w", err)
	}
	return nil
}

// Transaction executes a function within a database transaction
func (r *BaseRepository) Transaction(ctx context.Context, fn func(*sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		logx.Errorf("Failed to begin transaction: %v", err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	err = fn(tx)
	return err
}

// Common queries shared between the entity and token repositories.
const (
	InsertEntityQuery = `
		INSERT INTO entities (eid, phone_number_hash, password_hash, country_code_ciphertext,
			device_id, client_publish_pub_key, client_device_id_pub_key,
			publish_keypair, device_id_keypair, server_state, created_at, updated_at)
		VALUES (:eid, :phone_number_hash, :password_hash, :country_code_ciphertext,
			:device_id, :client_publish_pub_key, :client_device_id_pub_key,
			:publish_keypair, :device_id_keypair, :server_state, :created_at, :updated_at)`

	SelectEntityByEIDQuery = `
		SELECT eid, phone_number_hash, password_hash, country_code_ciphertext,
			device_id, client_publish_pub_key, client_device_id_pub_key,
			publish_keypair, device_id_keypair, server_state, created_at, updated_at
		FROM entities WHERE eid = $1`

	SelectEntityByPhoneHashQuery = `
		SELECT eid, phone_number_hash, password_hash, country_code_ciphertext,
			device_id, client_publish_pub_key, client_device_id_pub_key,
			publish_keypair, device_id_keypair, server_state, created_at, updated_at
		FROM entities WHERE phone_number_hash = $1`

	SelectEntityByDeviceIDQuery = `
		SELECT eid, phone_number_hash, password_hash, country_code_ciphertext,
			device_id, client_publish_pub_key, client_device_id_pub_key,
			publish_keypair, device_id_keypair, server_state, created_at, updated_at
		FROM entities WHERE device_id = $1`

	UpdateEntityQuery = `
		UPDATE entities
		SET password_hash = :password_hash, country_code_ciphertext = :country_code_ciphertext,
			device_id = :device_id, client_publish_pub_key = :client_publish_pub_key,
			client_device_id_pub_key = :client_device_id_pub_key,
			publish_keypair = :publish_keypair, device_id_keypair = :device_id_keypair,
			server_state = :server_state, updated_at = :updated_at
		WHERE eid = :eid`

	DeleteEntityQuery = `DELETE FROM entities WHERE eid = $1`

	InsertEntityTokenQuery = `
		INSERT INTO entity_tokens (id, eid, platform, account_identifier_hash,
			account_identifier, account_tokens, created_at, updated_at)
		VALUES (:id, :eid, :platform, :account_identifier_hash,
			:account_identifier, :account_tokens, :created_at, :updated_at)`

	SelectEntityTokensByEIDQuery = `
		SELECT id, eid, platform, account_identifier_hash, account_identifier, account_tokens, created_at, updated_at
		FROM entity_tokens WHERE eid = $1`

	SelectEntityTokenQuery = `
		SELECT id, eid, platform, account_identifier_hash, account_identifier, account_tokens, created_at, updated_at
		FROM entity_tokens WHERE eid = $1 AND platform = $2 AND account_identifier_hash = $3`

	CountEntityTokensQuery = `SELECT COUNT(*) FROM entity_tokens WHERE eid = $1`

	UpdateEntityTokenQuery = `
		UPDATE entity_tokens SET account_tokens = :account_tokens, updated_at = :updated_at WHERE id = :id`

	DeleteEntityTokenQuery = `DELETE FROM entity_tokens WHERE eid = $1 AND platform = $2 AND account_identifier_hash = $3`
)

// SetCreateTimestamps stamps CreatedAt/UpdatedAt on insert.
func SetCreateTimestamps(model interface{}) {
	now := time.Now()
	switch m := model.(type) {
	case *models.Entity:
		m.CreatedAt = now
		m.UpdatedAt = now
	case *models.EntityToken:
		m.CreatedAt = now
		m.UpdatedAt = now
	}
}

// SetUpdateTimestamp stamps UpdatedAt on mutation.
func SetUpdateTimestamp(model interface{}) {
	now := time.Now()
	switch m := model.(type) {
	case *models.Entity:
		m.UpdatedAt = now
	case *models.EntityToken:
		m.UpdatedAt = now
	}
}
