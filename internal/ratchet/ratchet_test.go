package ratchet

import (
	"bytes"
	"testing"

	"github.com/smswithoutborders/vault-server/internal/cryptoutil"
)

func freshKeypair(t *testing.T) cryptoutil.X25519KeyPair {
	t.Helper()
	kp, err := cryptoutil.X25519Keygen()
	if err != nil {
		t.Fatalf("X25519Keygen: %v", err)
	}
	return kp
}

// symmetricPair builds a sender/receiver state pair sharing a chain key on
// the same DH ratchet step, modeling the steady-state portion of the
// protocol (no DH change) so Encrypt/Decrypt can be exercised without
// simulating the client-side handshake that lives outside this module.
func symmetricPair(t *testing.T) (sender, receiver *State) {
	t.Helper()
	senderDH := freshKeypair(t)

	var chainKey [32]byte
	copy(chainKey[:], bytes.Repeat([]byte{0x42}, 32))

	sender = &State{
		DHs:     senderDH,
		CKs:     chainKey,
		HasCKs:  true,
		Skipped: make(map[skippedKey][32]byte),
	}
	receiver = &State{
		DHr:     senderDH.Public,
		HasDHr:  true,
		CKr:     chainKey,
		HasCKr:  true,
		Skipped: make(map[skippedKey][32]byte),
	}
	return sender, receiver
}

func TestEncryptRequiresSendingChain(t *testing.T) {
	s := NewReceivingState([32]byte{}, freshKeypair(t))
	if _, _, _, err := Encrypt(s, []byte("hi")); err == nil {
		t.Fatal("Encrypt must fail before a sending chain is established")
	}
}

func TestEncryptDecryptInOrder(t *testing.T) {
	sender, receiver := symmetricPair(t)

	messages := [][]byte{[]byte("first"), []byte("second"), []byte("third")}
	for _, msg := range messages {
		header, ct, nextSender, err := Encrypt(sender, msg)
		if err != nil {
			t.Fatalf("Encrypt: %v", err)
		}
		sender = nextSender

		pt, nextReceiver, err := Decrypt(receiver, header, ct)
		if err != nil {
			t.Fatalf("Decrypt: %v", err)
		}
		receiver = nextReceiver

		if !bytes.Equal(pt, msg) {
			t.Fatalf("decrypted %q, want %q", pt, msg)
		}
	}
}

func TestDecryptOutOfOrderUsesSkippedKeys(t *testing.T) {
	sender, receiver := symmetricPair(t)

	var headers []Header
	var cts [][]byte
	for _, msg := range [][]byte{[]byte("m0"), []byte("m1"), []byte("m2")} {
		h, ct, next, err := Encrypt(sender, msg)
		if err != nil {
			t.Fatalf("Encrypt: %v", err)
		}
		sender = next
		headers = append(headers, h)
		cts = append(cts, ct)
	}

	pt2, receiver, err := Decrypt(receiver, headers[2], cts[2])
	if err != nil {
		t.Fatalf("Decrypt m2: %v", err)
	}
	if !bytes.Equal(pt2, []byte("m2")) {
		t.Fatalf("decrypted %q, want m2", pt2)
	}
	if len(receiver.Skipped) != 2 {
		t.Fatalf("expected 2 skipped keys cached, got %d", len(receiver.Skipped))
	}

	pt0, receiver, err := Decrypt(receiver, headers[0], cts[0])
	if err != nil {
		t.Fatalf("Decrypt m0: %v", err)
	}
	if !bytes.Equal(pt0, []byte("m0")) {
		t.Fatalf("decrypted %q, want m0", pt0)
	}

	pt1, receiver, err := Decrypt(receiver, headers[1], cts[1])
	if err != nil {
		t.Fatalf("Decrypt m1: %v", err)
	}
	if !bytes.Equal(pt1, []byte("m1")) {
		t.Fatalf("decrypted %q, want m1", pt1)
	}
	if len(receiver.Skipped) != 0 {
		t.Fatalf("all skipped keys should have been consumed, got %d left", len(receiver.Skipped))
	}
}

func TestDecryptRejectsTamperedCiphertext(t *testing.T) {
	sender, receiver := symmetricPair(t)

	header, ct, _, err := Encrypt(sender, []byte("secret"))
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	tampered := append([]byte(nil), ct...)
	tampered[len(tampered)-1] ^= 0xFF

	if _, _, err := Decrypt(receiver, header, tampered); err != ErrAuthFailed {
		t.Fatalf("expected ErrAuthFailed, got %v", err)
	}
}

func TestDecryptStateUnchangedOnFailure(t *testing.T) {
	sender, receiver := symmetricPair(t)
	before := receiver.Nr

	header, ct, _, err := Encrypt(sender, []byte("secret"))
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	tampered := append([]byte(nil), ct...)
	tampered[0] ^= 0xFF

	_, returned, err := Decrypt(receiver, header, tampered)
	if err == nil {
		t.Fatal("expected an error from a tampered ciphertext")
	}
	if returned != receiver {
		t.Fatal("Decrypt must return the original state pointer on failure")
	}
	if receiver.Nr != before {
		t.Fatal("Decrypt must not mutate the original state on failure")
	}
}

func TestSkipMessageKeysExceedsBound(t *testing.T) {
	_, receiver := symmetricPair(t)
	if err := receiver.skipMessageKeys(receiver.DHr, MaxSkippedKeys+1); err != ErrTooManySkipped {
		t.Fatalf("expected ErrTooManySkipped, got %v", err)
	}
}

func TestHeaderEncodeDecodeRoundTrip(t *testing.T) {
	kp := freshKeypair(t)
	h := Header{DHPub: kp.Public, PN: 7, N: 42}

	decoded, err := DecodeHeader(h.Encode())
	if err != nil {
		t.Fatalf("DecodeHeader: %v", err)
	}
	if decoded != h {
		t.Fatalf("decoded header %+v, want %+v", decoded, h)
	}

	if _, err := DecodeHeader([]byte{1, 2, 3}); err != ErrAuthFailed {
		t.Fatalf("expected ErrAuthFailed for a short buffer, got %v", err)
	}
}
