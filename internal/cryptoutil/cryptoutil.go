// Package cryptoutil implements the primitives the vault's identity and
// payload subsystems build on: HMAC digests, AES-GCM envelopes, and X25519
// key agreement. Keys are derived once at startup from a configured salt and
// held in memory for the process lifetime; rotation is out of scope.
package cryptoutil

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"io"

	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/hkdf"
)

// ErrDecryptionFailed is returned when an AES-GCM envelope fails to
// authenticate. Callers must not distinguish this from a not-found error in
// any message surfaced to a client.
var ErrDecryptionFailed = errors.New("cryptoutil: decryption failed")

// ErrInvalidPublicKey is returned by IsValidX25519PublicKey's callers when a
// supplied key is malformed, wrong-length, or the all-zero point.
var ErrInvalidPublicKey = errors.New("cryptoutil: invalid x25519 public key")

// LoadKey derives an n-byte key deterministically from salt using HKDF over
// a SHA-256 extract/expand schedule. The same (salt, n, info) always yields
// the same key, which is what lets phone-hash and device-id computations
// stay stable across restarts.
func LoadKey(salt []byte, n int, info string) ([]byte, error) {
	kdf := hkdf.New(sha256.New, salt, nil, []byte(info))
	key := make([]byte, n)
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, err
	}
	return key, nil
}

// HMAC returns the 32-byte HMAC-SHA256 of msg under key.
func HMAC(key, msg []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(msg)
	return mac.Sum(nil)
}

// HMACHex is HMAC rendered as a lowercase hex string, the wire shape the
// vault uses for phone hashes, password hashes, and device IDs.
func HMACHex(key, msg []byte) string {
	return hex.EncodeToString(HMAC(key, msg))
}

// VerifyHMAC recomputes HMAC(key, msg) and compares it against expectedHex
// in constant time.
func VerifyHMAC(key, msg []byte, expectedHex string) bool {
	expected, err := hex.DecodeString(expectedHex)
	if err != nil {
		return false
	}
	got := HMAC(key, msg)
	return subtle.ConstantTimeCompare(got, expected) == 1
}

// AESGCMEncrypt seals plaintext under key and returns base64(nonce||ct||tag).
func AESGCMEncrypt(key, plaintext []byte) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}
	sealed := gcm.Seal(nonce, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// AESGCMDecrypt opens a base64(nonce||ct||tag) envelope produced by
// AESGCMEncrypt. Any authentication failure or malformed input returns
// ErrDecryptionFailed, never a more specific error.
func AESGCMDecrypt(key []byte, b64 string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	if len(raw) < gcm.NonceSize() {
		return nil, ErrDecryptionFailed
	}
	nonce, ct := raw[:gcm.NonceSize()], raw[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ct, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

// X25519KeyPair is a raw, unserialized Curve25519 keypair.
type X25519KeyPair struct {
	Private [32]byte
	Public  [32]byte
}

// X25519Keygen generates a fresh X25519 keypair.
func X25519Keygen() (X25519KeyPair, error) {
	var kp X25519KeyPair
	if _, err := io.ReadFull(rand.Reader, kp.Private[:]); err != nil {
		return kp, err
	}
	pub, err := curve25519.X25519(kp.Private[:], curve25519.Basepoint)
	if err != nil {
		return kp, err
	}
	copy(kp.Public[:], pub)
	return kp, nil
}

// X25519Agree performs a Diffie-Hellman agreement, returning the 32-byte
// shared secret.
func X25519Agree(priv [32]byte, peerPub [32]byte) ([32]byte, error) {
	var shared [32]byte
	out, err := curve25519.X25519(priv[:], peerPub[:])
	if err != nil {
		return shared, err
	}
	copy(shared[:], out)
	return shared, nil
}

// IsValidX25519PublicKey reports whether b64 decodes to exactly 32 bytes and
// is not the all-zero point (a low-order point that would make the
// agreement output predictable).
func IsValidX25519PublicKey(b64 string) bool {
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil || len(raw) != 32 {
		return false
	}
	var zero [32]byte
	return subtle.ConstantTimeCompare(raw, zero[:]) != 1
}

// DecodeX25519PublicKey decodes and validates a base64 X25519 public key.
func DecodeX25519PublicKey(b64 string) ([32]byte, error) {
	var out [32]byte
	if !IsValidX25519PublicKey(b64) {
		return out, ErrInvalidPublicKey
	}
	raw, _ := base64.StdEncoding.DecodeString(b64)
	copy(out[:], raw)
	return out, nil
}

// EncodePublicKey renders a 32-byte public key as base64 for the wire.
func EncodePublicKey(pub [32]byte) string {
	return base64.StdEncoding.EncodeToString(pub[:])
}
