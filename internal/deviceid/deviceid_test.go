package deviceid

import "testing"

func TestComputeDeterministic(t *testing.T) {
	var key [32]byte
	copy(key[:], []byte("shared-key-material-for-testing"))

	a := Compute(key, "+237600000000", "client-pub-key-b64")
	b := Compute(key, "+237600000000", "client-pub-key-b64")
	if a != b {
		t.Fatal("Compute must be deterministic for identical inputs")
	}
}

func TestComputeDiffersByInput(t *testing.T) {
	var key [32]byte
	copy(key[:], []byte("shared-key-material-for-testing"))

	base := Compute(key, "+237600000000", "client-pub-key-b64")

	if got := Compute(key, "+237600000001", "client-pub-key-b64"); got == base {
		t.Fatal("Compute must change when the phone number changes")
	}
	if got := Compute(key, "+237600000000", "different-pub-key"); got == base {
		t.Fatal("Compute must change when the client public key changes")
	}

	var otherKey [32]byte
	copy(otherKey[:], []byte("a-completely-different-key-here"))
	if got := Compute(otherKey, "+237600000000", "client-pub-key-b64"); got == base {
		t.Fatal("Compute must change when the shared key changes")
	}
}
