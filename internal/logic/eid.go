package logic

import "github.com/google/uuid"

// eidNamespace anchors the UUID5-style derivation of eid from a phone
// number's hash. Any fixed namespace works as long as it never changes
// across deployments of the same vault.
var eidNamespace = uuid.MustParse("a7e5e5b0-2a7b-4e8c-9b0a-0f6a7c3d9e21")

// DeriveEID computes the vault's 16-byte entity identifier deterministically
// from a phone number's hash, so repeated registration attempts for the
// same phone always compute the same eid.
func DeriveEID(phoneNumberHash string) string {
	id := uuid.NewSHA1(eidNamespace, []byte(phoneNumberHash))
	return hexNoDashes(id)
}

func hexNoDashes(id uuid.UUID) string {
	const hexdigits = "0123456789abcdef"
	buf := make([]byte, 32)
	for i, b := range id {
		buf[i*2] = hexdigits[b>>4]
		buf[i*2+1] = hexdigits[b&0x0f]
	}
	return string(buf)
}
