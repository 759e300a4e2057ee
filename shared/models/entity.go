package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Entity is one registered vault user, keyed on eid. Sensitive fields are
// stored already hashed or encrypted by the caller; the model itself
// performs no cryptography.
type Entity struct {
	EID                    string         `db:"eid" json:"eid"`
	PhoneNumberHash        string         `db:"phone_number_hash" json:"-"`
	PasswordHash           string         `db:"password_hash" json:"-"`
	CountryCodeCiphertext  string         `db:"country_code_ciphertext" json:"-"`
	DeviceID               sql.NullString `db:"device_id" json:"-"`
	ClientPublishPubKey    string         `db:"client_publish_pub_key" json:"-"`
	ClientDeviceIDPubKey   string         `db:"client_device_id_pub_key" json:"-"`
	PublishKeypair         []byte         `db:"publish_keypair" json:"-"`
	DeviceIDKeypair        []byte         `db:"device_id_keypair" json:"-"`
	ServerState            []byte         `db:"server_state" json:"-"`
	CreatedAt              time.Time      `db:"created_at" json:"-"`
	UpdatedAt              time.Time      `db:"updated_at" json:"-"`
}

// EntityToken is a stored platform credential, many per entity, keyed on
// (entity, platform, account_identifier_hash).
type EntityToken struct {
	ID                    uuid.UUID `db:"id" json:"id"`
	EID                   string    `db:"eid" json:"-"`
	Platform              string    `db:"platform" json:"platform"`
	AccountIdentifierHash string    `db:"account_identifier_hash" json:"-"`
	AccountIdentifier     string    `db:"account_identifier" json:"-"`
	AccountTokens         string    `db:"account_tokens" json:"-"`
	CreatedAt             time.Time `db:"created_at" json:"-"`
	UpdatedAt             time.Time `db:"updated_at" json:"-"`
}
