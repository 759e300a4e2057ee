package ratchet

import (
	"bytes"
	"testing"

	"github.com/smswithoutborders/vault-server/internal/cryptoutil"
)

func TestSerializeDeserializeStateRoundTrip(t *testing.T) {
	dhs, err := cryptoutil.X25519Keygen()
	if err != nil {
		t.Fatalf("X25519Keygen: %v", err)
	}

	s := &State{
		DHs:     dhs,
		HasDHr:  true,
		HasCKs:  true,
		HasCKr:  true,
		Ns:      3,
		Nr:      5,
		PN:      2,
		Skipped: make(map[skippedKey][32]byte),
	}
	copy(s.DHr[:], bytes.Repeat([]byte{0x11}, 32))
	copy(s.RK[:], bytes.Repeat([]byte{0x22}, 32))
	copy(s.CKs[:], bytes.Repeat([]byte{0x33}, 32))
	copy(s.CKr[:], bytes.Repeat([]byte{0x44}, 32))

	var mk1, mk2 [32]byte
	copy(mk1[:], bytes.Repeat([]byte{0x55}, 32))
	copy(mk2[:], bytes.Repeat([]byte{0x66}, 32))
	k1 := skippedKey{dhPub: s.DHr, n: 0}
	k2 := skippedKey{dhPub: s.DHr, n: 1}
	s.Skipped[k1] = mk1
	s.Skipped[k2] = mk2
	s.skipOrder = []skippedKey{k1, k2}

	got, err := DeserializeState(SerializeState(s))
	if err != nil {
		t.Fatalf("DeserializeState: %v", err)
	}

	if got.DHs.Public != s.DHs.Public || got.DHs.Private != s.DHs.Private {
		t.Fatal("DHs keypair did not round trip")
	}
	if got.DHr != s.DHr || got.HasDHr != s.HasDHr {
		t.Fatal("DHr did not round trip")
	}
	if got.RK != s.RK {
		t.Fatal("RK did not round trip")
	}
	if got.CKs != s.CKs || got.HasCKs != s.HasCKs {
		t.Fatal("CKs did not round trip")
	}
	if got.CKr != s.CKr || got.HasCKr != s.HasCKr {
		t.Fatal("CKr did not round trip")
	}
	if got.Ns != s.Ns || got.Nr != s.Nr || got.PN != s.PN {
		t.Fatal("counters did not round trip")
	}
	if len(got.Skipped) != 2 || got.Skipped[k1] != mk1 || got.Skipped[k2] != mk2 {
		t.Fatal("skipped-key cache did not round trip")
	}
	if len(got.skipOrder) != 2 || got.skipOrder[0] != k1 || got.skipOrder[1] != k2 {
		t.Fatal("skip eviction order did not round trip")
	}
}

func TestDeserializeStateRejectsBadVersion(t *testing.T) {
	if _, err := DeserializeState([]byte{0xFF, 1, 2, 3}); err != ErrCorruptState {
		t.Fatalf("expected ErrCorruptState for an unknown version byte, got %v", err)
	}
}

func TestDeserializeStateRejectsTruncatedBlob(t *testing.T) {
	dhs, err := cryptoutil.X25519Keygen()
	if err != nil {
		t.Fatalf("X25519Keygen: %v", err)
	}
	s := &State{DHs: dhs, Skipped: make(map[skippedKey][32]byte)}
	full := SerializeState(s)

	if _, err := DeserializeState(full[:len(full)-10]); err != ErrCorruptState {
		t.Fatalf("expected ErrCorruptState for a truncated blob, got %v", err)
	}
	if _, err := DeserializeState(nil); err != ErrCorruptState {
		t.Fatalf("expected ErrCorruptState for an empty blob, got %v", err)
	}
}
