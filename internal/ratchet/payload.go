package ratchet

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
)

// ErrMalformedFrame is returned when a wire payload's length prefix or
// embedded header does not parse.
var ErrMalformedFrame = errors.New("ratchet: malformed payload frame")

// EncodeFrame builds the relay SMS wire form:
// base64([u32_be header_len][header][ciphertext]).
func EncodeFrame(header Header, ciphertext []byte) string {
	hb := header.Encode()
	buf := make([]byte, 4+len(hb)+len(ciphertext))
	binary.BigEndian.PutUint32(buf[0:4], uint32(len(hb)))
	copy(buf[4:4+len(hb)], hb)
	copy(buf[4+len(hb):], ciphertext)
	return base64.StdEncoding.EncodeToString(buf)
}

// DecodeFrame parses the base64 relay SMS wire form back into a header and
// ciphertext.
func DecodeFrame(b64 string) (Header, []byte, error) {
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil || len(raw) < 4 {
		return Header{}, nil, ErrMalformedFrame
	}
	hlen := binary.BigEndian.Uint32(raw[0:4])
	if uint64(hlen)+4 > uint64(len(raw)) {
		return Header{}, nil, ErrMalformedFrame
	}
	header, err := DecodeHeader(raw[4 : 4+hlen])
	if err != nil {
		return Header{}, nil, ErrMalformedFrame
	}
	ct := raw[4+hlen:]
	return header, ct, nil
}
