// Package sessiontoken implements the vault's long-lived token: a bearer
// credential bound to an entity and signed with the device-id shared key.
// It is deliberately not a JWT: the wire form and signing key are bespoke
// to the vault's X25519-agreement model.
package sessiontoken

import (
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/smswithoutborders/vault-server/internal/cryptoutil"
)

// DefaultLifetime is the standard 30-day token validity window. The service
// takes the lifetime from its configuration, whose default is the same 30
// days; this constant is not read there.
const DefaultLifetime = 30 * 24 * time.Hour

// ErrMalformed is returned for any envelope that does not parse into the
// expected eid:payload.signature shape.
var ErrMalformed = errors.New("sessiontoken: malformed token")

// ErrInvalidSignature is returned when the HMAC over the payload does not
// match. A signature or payload that is not valid base64url yields
// ErrMalformed instead.
var ErrInvalidSignature = errors.New("sessiontoken: invalid signature")

// ErrExpired is returned when now is past the payload's expires_at.
var ErrExpired = errors.New("sessiontoken: expired")

// ErrEIDMismatch is returned when the payload's eid does not match the
// token's outer eid — defence against cross-pasting one entity's signed
// payload onto another entity's prefix.
var ErrEIDMismatch = errors.New("sessiontoken: eid mismatch")

type payload struct {
	EID       string `json:"eid"`
	IssuedAt  int64  `json:"issued_at"`
	ExpiresAt int64  `json:"expires_at"`
}

// Mint produces the wire form eid_hex:base64url_payload.base64url_hmac,
// signed with sharedKey (the server/client device-id X25519 agreement).
func Mint(sharedKey [32]byte, eidHex string, issuedAt, expiresAt time.Time) (string, error) {
	p := payload{EID: eidHex, IssuedAt: issuedAt.Unix(), ExpiresAt: expiresAt.Unix()}
	raw, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	payloadB64 := base64.RawURLEncoding.EncodeToString(raw)
	sig := cryptoutil.HMAC(sharedKey[:], []byte(payloadB64))
	sigB64 := base64.RawURLEncoding.EncodeToString(sig)
	return eidHex + ":" + payloadB64 + "." + sigB64, nil
}

// Split separates the outer eid from the payload.signature half, splitting
// only on the first colon so a payload/signature containing ':' (never
// actually, since both are base64url) would still be handled safely.
func Split(token string) (eidHex, rest string, err error) {
	parts := strings.SplitN(token, ":", 2)
	if len(parts) != 2 {
		return "", "", ErrMalformed
	}
	return parts[0], parts[1], nil
}

// Verify checks the signature of rest (the "payload.signature" half) against
// sharedKey, enforces expiry, and asserts the embedded eid equals
// expectedEIDHex. It returns the parsed issued/expires times on success.
func Verify(sharedKey [32]byte, rest, expectedEIDHex string, now time.Time) (issuedAt, expiresAt time.Time, err error) {
	dot := strings.LastIndex(rest, ".")
	if dot < 0 {
		return time.Time{}, time.Time{}, ErrMalformed
	}
	payloadB64, sigB64 := rest[:dot], rest[dot+1:]

	sig, err := base64.RawURLEncoding.DecodeString(sigB64)
	if err != nil {
		return time.Time{}, time.Time{}, ErrMalformed
	}
	expected := cryptoutil.HMAC(sharedKey[:], []byte(payloadB64))
	if len(sig) != len(expected) || subtle.ConstantTimeCompare(sig, expected) != 1 {
		return time.Time{}, time.Time{}, ErrInvalidSignature
	}

	raw, err := base64.RawURLEncoding.DecodeString(payloadB64)
	if err != nil {
		return time.Time{}, time.Time{}, ErrMalformed
	}
	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return time.Time{}, time.Time{}, ErrMalformed
	}
	if p.EID != expectedEIDHex {
		return time.Time{}, time.Time{}, ErrEIDMismatch
	}
	expiresAt = time.Unix(p.ExpiresAt, 0)
	if now.After(expiresAt) {
		return time.Time{}, time.Time{}, ErrExpired
	}
	return time.Unix(p.IssuedAt, 0), expiresAt, nil
}

// DecodeEID converts the token's hex eid segment to raw bytes, validating
// it is exactly 16 bytes (the eid is a 16-byte UUID).
func DecodeEID(eidHex string) ([]byte, error) {
	raw, err := hex.DecodeString(eidHex)
	if err != nil || len(raw) != 16 {
		return nil, ErrMalformed
	}
	return raw, nil
}
