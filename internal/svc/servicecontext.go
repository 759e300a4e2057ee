// Package svc wires the vault rpc service's dependencies: one struct built
// once at startup, passed into every Logic.
package svc

import (
	"os"

	"github.com/smswithoutborders/vault-server/internal/config"
	"github.com/smswithoutborders/vault-server/internal/cryptoutil"
	"github.com/smswithoutborders/vault-server/internal/entitylock"
	"github.com/smswithoutborders/vault-server/internal/keystore"
	"github.com/smswithoutborders/vault-server/internal/otp"
	"github.com/smswithoutborders/vault-server/shared/repository"
	"github.com/smswithoutborders/vault-server/third_party/cache"
	"github.com/smswithoutborders/vault-server/third_party/database"
)

// SupportedPlatforms is the whitelist StoreEntityToken, GetEntityAccessToken,
// and DeleteEntityToken enforce. Only gmail is supported for now.
var SupportedPlatforms = []string{"gmail"}

// IsSupportedPlatform reports whether platform is in SupportedPlatforms.
func IsSupportedPlatform(platform string) bool {
	for _, p := range SupportedPlatforms {
		if p == platform {
			return true
		}
	}
	return false
}

// ServiceContext bundles every dependency a Logic needs.
type ServiceContext struct {
	Config config.Config

	Entities *repository.EntityRepository
	Tokens   *repository.EntityTokenRepository

	Keystore *keystore.Store
	Locks    *entitylock.Map
	OTP      otp.Gateway

	HashingKey    []byte
	EncryptionKey []byte
}

// NewServiceContext constructs the full dependency graph from Config.
func NewServiceContext(c config.Config) *ServiceContext {
	db, err := database.NewPostgresConnection(database.PostgresConfig{
		Host:     c.Database.Host,
		Port:     c.Database.Port,
		User:     c.Database.User,
		Password: c.Database.Password,
		DBName:   c.Database.DBName,
		SSLMode:  c.Database.SSLMode,
	})
	if err != nil {
		panic(err)
	}

	hashingKey, err := cryptoutil.LoadKey([]byte(c.Crypto.HashingSalt), 32, "vault/hashing-key")
	if err != nil {
		panic(err)
	}
	encryptionKey, err := cryptoutil.LoadKey([]byte(c.Crypto.HashingSalt), 32, "vault/encryption-key")
	if err != nil {
		panic(err)
	}

	if err := os.MkdirAll(c.Keystore.Path, 0o700); err != nil {
		panic(err)
	}

	redisConn, err := cache.NewRedisConnection(cache.RedisConfig{
		Host:     c.Redis.Host,
		Port:     c.Redis.Port,
		Password: c.Redis.Password,
		DB:       c.Redis.DB,
	})
	if err != nil {
		panic(err)
	}

	return &ServiceContext{
		Config:        c,
		Entities:      repository.NewEntityRepository(db),
		Tokens:        repository.NewEntityTokenRepository(db),
		Keystore:      keystore.New(c.Keystore.Path),
		Locks:         entitylock.New(),
		OTP:           otp.NewRedisGateway(redisConn.GetClient(), c.OTPCodeTTL(), c.OTPRetryAfter()),
		HashingKey:    hashingKey,
		EncryptionKey: encryptionKey,
	}
}
