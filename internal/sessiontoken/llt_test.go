package sessiontoken

import (
	"testing"
	"time"
)

func testEID() string {
	return "0123456789abcdef0123456789abcdef"[:32]
}

func TestMintVerifyRoundTrip(t *testing.T) {
	var shared [32]byte
	copy(shared[:], []byte("shared-key-material-for-testing"))

	eid := testEID()
	now := time.Unix(1_700_000_000, 0)
	token, err := Mint(shared, eid, now, now.Add(DefaultLifetime))
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}

	gotEID, rest, err := Split(token)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if gotEID != eid {
		t.Fatalf("Split eid = %q, want %q", gotEID, eid)
	}

	issuedAt, expiresAt, err := Verify(shared, rest, eid, now.Add(time.Hour))
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !issuedAt.Equal(now) {
		t.Fatalf("issuedAt = %v, want %v", issuedAt, now)
	}
	if !expiresAt.Equal(now.Add(DefaultLifetime)) {
		t.Fatalf("expiresAt = %v, want %v", expiresAt, now.Add(DefaultLifetime))
	}
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	var shared, other [32]byte
	copy(shared[:], []byte("shared-key-material-for-testing"))
	copy(other[:], []byte("a-completely-different-key-here"))

	eid := testEID()
	now := time.Unix(1_700_000_000, 0)
	token, err := Mint(shared, eid, now, now.Add(DefaultLifetime))
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	_, rest, _ := Split(token)

	if _, _, err := Verify(other, rest, eid, now); err != ErrInvalidSignature {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	var shared [32]byte
	copy(shared[:], []byte("shared-key-material-for-testing"))

	eid := testEID()
	now := time.Unix(1_700_000_000, 0)
	token, err := Mint(shared, eid, now, now.Add(time.Minute))
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	_, rest, _ := Split(token)

	if _, _, err := Verify(shared, rest, eid, now.Add(time.Hour)); err != ErrExpired {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestVerifyRejectsEIDMismatch(t *testing.T) {
	var shared [32]byte
	copy(shared[:], []byte("shared-key-material-for-testing"))

	eid := testEID()
	now := time.Unix(1_700_000_000, 0)
	token, err := Mint(shared, eid, now, now.Add(DefaultLifetime))
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	_, rest, _ := Split(token)

	otherEID := "ffffffffffffffffffffffffffffffff"[:32]
	if _, _, err := Verify(shared, rest, otherEID, now); err != ErrEIDMismatch {
		t.Fatalf("expected ErrEIDMismatch, got %v", err)
	}
}

func TestSplitRejectsMissingColon(t *testing.T) {
	if _, _, err := Split("no-colon-here"); err != ErrMalformed {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestDecodeEIDValidatesLength(t *testing.T) {
	if _, err := DecodeEID(testEID()); err != nil {
		t.Fatalf("DecodeEID: %v", err)
	}
	if _, err := DecodeEID("abcd"); err != ErrMalformed {
		t.Fatalf("expected ErrMalformed for a too-short eid, got %v", err)
	}
}
