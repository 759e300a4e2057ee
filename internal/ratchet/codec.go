package ratchet

import (
	"encoding/binary"
	"errors"
)

// ErrCorruptState is returned when a stored ratchet state blob cannot be
// parsed, e.g. after a version change.
var ErrCorruptState = errors.New("ratchet: corrupt state blob")

const stateVersion byte = 1

func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}

// SerializeState encodes s into a versioned opaque blob (version byte +
// fields), suitable for the Entity.ServerState column.
func SerializeState(s *State) []byte {
	buf := make([]byte, 0, 256)
	buf = append(buf, stateVersion)
	buf = append(buf, boolByte(s.HasDHr))
	buf = append(buf, s.DHr[:]...)
	buf = append(buf, s.RK[:]...)
	buf = append(buf, boolByte(s.HasCKs))
	buf = append(buf, s.CKs[:]...)
	buf = append(buf, boolByte(s.HasCKr))
	buf = append(buf, s.CKr[:]...)

	var u32 [4]byte
	binary.BigEndian.PutUint32(u32[:], s.Ns)
	buf = append(buf, u32[:]...)
	binary.BigEndian.PutUint32(u32[:], s.Nr)
	buf = append(buf, u32[:]...)
	binary.BigEndian.PutUint32(u32[:], s.PN)
	buf = append(buf, u32[:]...)

	buf = append(buf, s.DHs.Private[:]...)
	buf = append(buf, s.DHs.Public[:]...)

	binary.BigEndian.PutUint32(u32[:], uint32(len(s.skipOrder)))
	buf = append(buf, u32[:]...)
	for _, k := range s.skipOrder {
		mk := s.Skipped[k]
		buf = append(buf, k.dhPub[:]...)
		binary.BigEndian.PutUint32(u32[:], k.n)
		buf = append(buf, u32[:]...)
		buf = append(buf, mk[:]...)
	}
	return buf
}

// DeserializeState reverses SerializeState.
func DeserializeState(buf []byte) (*State, error) {
	if len(buf) < 1 || buf[0] != stateVersion {
		return nil, ErrCorruptState
	}
	r := &reader{buf: buf[1:]}

	s := &State{Skipped: make(map[skippedKey][32]byte)}
	s.HasDHr = r.bool()
	r.fixed(s.DHr[:])
	r.fixed(s.RK[:])
	s.HasCKs = r.bool()
	r.fixed(s.CKs[:])
	s.HasCKr = r.bool()
	r.fixed(s.CKr[:])
	s.Ns = r.u32()
	s.Nr = r.u32()
	s.PN = r.u32()
	r.fixed(s.DHs.Private[:])
	r.fixed(s.DHs.Public[:])

	n := r.u32()
	for i := uint32(0); i < n; i++ {
		var k skippedKey
		r.fixed(k.dhPub[:])
		k.n = r.u32()
		var mk [32]byte
		r.fixed(mk[:])
		s.Skipped[k] = mk
		s.skipOrder = append(s.skipOrder, k)
	}
	if r.err != nil {
		return nil, r.err
	}
	return s, nil
}

type reader struct {
	buf []byte
	err error
}

func (r *reader) need(n int) []byte {
	if r.err != nil || len(r.buf) < n {
		r.err = ErrCorruptState
		return nil
	}
	out := r.buf[:n]
	r.buf = r.buf[n:]
	return out
}

func (r *reader) fixed(dst []byte) {
	b := r.need(len(dst))
	if b == nil {
		return
	}
	copy(dst, b)
}

func (r *reader) bool() bool {
	b := r.need(1)
	if b == nil {
		return false
	}
	return b[0] == 1
}

func (r *reader) u32() uint32 {
	b := r.need(4)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

