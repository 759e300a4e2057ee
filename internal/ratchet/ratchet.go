// Package ratchet implements a Double-Ratchet-style forward-secret channel
// for the publish path: a State advances through DH and symmetric-chain
// ratchet steps, deriving a fresh key for every message sent or received.
package ratchet

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/smswithoutborders/vault-server/internal/cryptoutil"
)

// MaxSkippedKeys bounds the skipped-message-key cache, counted across all
// chains held in the state. Exceeding it during a single ratchet step is a
// decrypt error.
const MaxSkippedKeys = 1000

var (
	// ErrTooManySkipped is returned when honoring a header's PN/N would
	// require caching more than MaxSkippedKeys message keys.
	ErrTooManySkipped = errors.New("ratchet: too many skipped messages")
	// ErrAuthFailed covers AEAD authentication failure and malformed frames.
	ErrAuthFailed = errors.New("ratchet: decryption failed")
)

var (
	rootInfo = []byte("vault/ratchet/root")
	ckSeed   = []byte{0x02}
	mkSeed   = []byte{0x01}
)

// Header is the per-message ratchet header carried alongside the
// ciphertext: the sender's current DH public key, the length of the
// previous sending chain, and the index within the current chain.
type Header struct {
	DHPub [32]byte
	PN    uint32
	N     uint32
}

const headerLen = 32 + 4 + 4

// Encode serializes a Header to its wire form.
func (h Header) Encode() []byte {
	buf := make([]byte, headerLen)
	copy(buf[0:32], h.DHPub[:])
	binary.BigEndian.PutUint32(buf[32:36], h.PN)
	binary.BigEndian.PutUint32(buf[36:40], h.N)
	return buf
}

// DecodeHeader parses a wire-form header.
func DecodeHeader(buf []byte) (Header, error) {
	var h Header
	if len(buf) != headerLen {
		return h, ErrAuthFailed
	}
	copy(h.DHPub[:], buf[0:32])
	h.PN = binary.BigEndian.Uint32(buf[32:36])
	h.N = binary.BigEndian.Uint32(buf[36:40])
	return h, nil
}

type skippedKey struct {
	dhPub [32]byte
	n     uint32
}

// State is the full Double Ratchet tuple for one entity's publish channel.
type State struct {
	DHs       cryptoutil.X25519KeyPair
	DHr       [32]byte
	HasDHr    bool
	RK        [32]byte
	CKs       [32]byte
	HasCKs    bool
	CKr       [32]byte
	HasCKr    bool
	Ns        uint32
	Nr        uint32
	PN        uint32
	Skipped   map[skippedKey][32]byte
	skipOrder []skippedKey
}

// NewReceivingState seeds a fresh state for the first inbound message on a
// channel: the root key is the X25519 agreement already established
// out-of-band (publish_shared_key), and DHs is the server's existing
// publish keypair.
func NewReceivingState(sharedKey [32]byte, dhs cryptoutil.X25519KeyPair) *State {
	return &State{
		DHs:     dhs,
		RK:      sharedKey,
		Skipped: make(map[skippedKey][32]byte),
	}
}

// Clone returns a deep copy of the state, used so a failed persistence
// attempt cannot leave the in-memory state and the stored state diverging.
func (s *State) Clone() *State {
	c := *s
	c.Skipped = make(map[skippedKey][32]byte, len(s.Skipped))
	for k, v := range s.Skipped {
		c.Skipped[k] = v
	}
	c.skipOrder = append([]skippedKey(nil), s.skipOrder...)
	return &c
}

func kdfRK(rk [32]byte, dhOut [32]byte) (newRK, newCK [32]byte, err error) {
	h := hkdf.New(sha256.New, dhOut[:], rk[:], rootInfo)
	out := make([]byte, 64)
	if _, err := io.ReadFull(h, out); err != nil {
		return newRK, newCK, err
	}
	copy(newRK[:], out[:32])
	copy(newCK[:], out[32:])
	return newRK, newCK, nil
}

func kdfCK(ck [32]byte) (newCK, mk [32]byte) {
	macCK := hmac.New(sha256.New, ck[:])
	macCK.Write(ckSeed)
	copy(newCK[:], macCK.Sum(nil))

	macMK := hmac.New(sha256.New, ck[:])
	macMK.Write(mkSeed)
	copy(mk[:], macMK.Sum(nil))
	return newCK, mk
}

func seal(mk [32]byte, header Header, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(mk[:])
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	ad := header.Encode()
	return gcm.Seal(nonce[:0:gcm.NonceSize()], nonce, plaintext, ad), nil
}

func open(mk [32]byte, header Header, ct []byte) ([]byte, error) {
	block, err := aes.NewCipher(mk[:])
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	ad := header.Encode()
	pt, err := gcm.Open(nil, nonce, ct, ad)
	if err != nil {
		return nil, ErrAuthFailed
	}
	return pt, nil
}

// Encrypt advances the sending chain and seals plaintext, returning the
// header to transmit alongside the ciphertext and the advanced state. s is
// not modified; the caller persists the returned state before handing the
// ciphertext out.
func Encrypt(s *State, plaintext []byte) (Header, []byte, *State, error) {
	next := s.Clone()
	if !next.HasCKs {
		return Header{}, nil, s, errors.New("ratchet: no sending chain established")
	}
	newCK, mk := kdfCK(next.CKs)
	next.CKs = newCK

	header := Header{DHPub: next.DHs.Public, PN: next.PN, N: next.Ns}
	ct, err := seal(mk, header, plaintext)
	if err != nil {
		return Header{}, nil, s, err
	}
	next.Ns++
	return header, ct, next, nil
}

// Decrypt runs the full receive-side algorithm: DH ratchet on sender-key
// change, chain advance with skipped-key caching, and AEAD open. It never
// mutates s in place; on any failure the original state is returned
// unchanged.
func Decrypt(s *State, header Header, ct []byte) ([]byte, *State, error) {
	next := s.Clone()

	if mk, ok := next.takeSkipped(header.DHPub, header.N); ok {
		pt, err := open(mk, header, ct)
		if err != nil {
			return nil, s, err
		}
		return pt, next, nil
	}

	if !next.HasDHr || header.DHPub != next.DHr {
		if next.HasDHr {
			if err := next.skipMessageKeys(next.DHr, header.PN); err != nil {
				return nil, s, err
			}
		}
		if err := next.dhRatchet(header.DHPub); err != nil {
			return nil, s, err
		}
	}

	if err := next.skipMessageKeys(header.DHPub, header.N); err != nil {
		return nil, s, err
	}

	newCK, mk := kdfCK(next.CKr)
	next.CKr = newCK
	next.Nr++

	pt, err := open(mk, header, ct)
	if err != nil {
		return nil, s, err
	}
	return pt, next, nil
}

func (s *State) dhRatchet(remotePub [32]byte) error {
	s.PN = s.Ns
	s.Ns = 0
	s.Nr = 0
	s.DHr = remotePub
	s.HasDHr = true

	sharedRecv, err := cryptoutil.X25519Agree(s.DHs.Private, s.DHr)
	if err != nil {
		return err
	}
	rk, ckr, err := kdfRK(s.RK, sharedRecv)
	if err != nil {
		return err
	}
	s.RK, s.CKr, s.HasCKr = rk, ckr, true

	fresh, err := cryptoutil.X25519Keygen()
	if err != nil {
		return err
	}
	s.DHs = fresh

	sharedSend, err := cryptoutil.X25519Agree(s.DHs.Private, s.DHr)
	if err != nil {
		return err
	}
	rk2, cks, err := kdfRK(s.RK, sharedSend)
	if err != nil {
		return err
	}
	s.RK, s.CKs, s.HasCKs = rk2, cks, true
	return nil
}

func (s *State) skipMessageKeys(dhPub [32]byte, until uint32) error {
	if !s.HasCKr {
		return nil
	}
	if until < s.Nr {
		return nil
	}
	if int(until-s.Nr)+len(s.skipOrder) > MaxSkippedKeys {
		return ErrTooManySkipped
	}
	for s.Nr < until {
		newCK, mk := kdfCK(s.CKr)
		s.CKr = newCK
		key := skippedKey{dhPub: dhPub, n: s.Nr}
		s.Skipped[key] = mk
		s.skipOrder = append(s.skipOrder, key)
		s.Nr++
	}
	if len(s.skipOrder) > MaxSkippedKeys {
		return ErrTooManySkipped
	}
	return nil
}

func (s *State) takeSkipped(dhPub [32]byte, n uint32) ([32]byte, bool) {
	key := skippedKey{dhPub: dhPub, n: n}
	mk, ok := s.Skipped[key]
	if !ok {
		return mk, false
	}
	delete(s.Skipped, key)
	for i, k := range s.skipOrder {
		if k == key {
			s.skipOrder = append(s.skipOrder[:i], s.skipOrder[i+1:]...)
			break
		}
	}
	return mk, true
}
