package otp

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisGateway is a development/integration-test reference Gateway. It
// generates its own codes and stores pending verification state in Redis
// using a Setex-backed expiring-key pattern. It is not a production SMS
// delivery integration.
type RedisGateway struct {
	rdb        *redis.Client
	codeTTL    time.Duration
	retryAfter time.Duration
}

// NewRedisGateway returns a Gateway backed by rdb. codeTTL bounds how long a
// sent code remains verifiable; retryAfter is surfaced as the
// next-attempt-epoch delta after each send.
func NewRedisGateway(rdb *redis.Client, codeTTL, retryAfter time.Duration) *RedisGateway {
	return &RedisGateway{rdb: rdb, codeTTL: codeTTL, retryAfter: retryAfter}
}

func pendingKey(phone string) string {
	return fmt.Sprintf("vault:otp:pending:%s", phone)
}

// SendOTP generates a six-digit code, stores it under the phone's pending
// key, and reports the epoch at which the client may retry.
func (g *RedisGateway) SendOTP(ctx context.Context, phone string) (bool, string, int64, error) {
	code, err := generateCode()
	if err != nil {
		return false, "", 0, err
	}
	if err := g.rdb.Set(ctx, pendingKey(phone), code, g.codeTTL).Err(); err != nil {
		return false, "", 0, err
	}
	next := time.Now().Add(g.retryAfter).Unix()
	return true, "verification code sent", next, nil
}

// VerifyOTP checks code against the stored pending value and clears it on
// success so a code cannot be replayed.
func (g *RedisGateway) VerifyOTP(ctx context.Context, phone, code string) (bool, string, error) {
	key := pendingKey(phone)
	stored, err := g.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, "no pending verification for this number", nil
	}
	if err != nil {
		return false, "", err
	}
	if stored != code {
		return false, "incorrect verification code", nil
	}
	if err := g.rdb.Del(ctx, key).Err(); err != nil {
		return false, "", err
	}
	return true, "verified", nil
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
