// Package deviceid computes the vault's lightweight per-device authenticator,
// grounded on original_source/src/device_id.py: an unsalted HMAC over the
// raw concatenation of phone number and client public key.
package deviceid

import "github.com/smswithoutborders/vault-server/internal/cryptoutil"

// Compute returns hex(HMAC_SHA256(sharedKey, phone||clientPubB64)). The
// concatenation has no separator by design — both ends must agree on this.
func Compute(sharedKey [32]byte, phone, clientPubB64 string) string {
	msg := append([]byte(phone), []byte(clientPubB64)...)
	return cryptoutil.HMACHex(sharedKey[:], msg)
}
