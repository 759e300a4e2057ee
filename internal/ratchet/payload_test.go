package ratchet

import (
	"testing"

	"github.com/smswithoutborders/vault-server/internal/cryptoutil"
)

func TestEncodeDecodeFrameRoundTrip(t *testing.T) {
	kp, err := cryptoutil.X25519Keygen()
	if err != nil {
		t.Fatalf("X25519Keygen: %v", err)
	}
	header := Header{DHPub: kp.Public, PN: 3, N: 11}
	ciphertext := []byte("sealed-bytes-go-here")

	frame := EncodeFrame(header, ciphertext)

	gotHeader, gotCT, err := DecodeFrame(frame)
	if err != nil {
		t.Fatalf("DecodeFrame: %v", err)
	}
	if gotHeader != header {
		t.Fatalf("decoded header %+v, want %+v", gotHeader, header)
	}
	if string(gotCT) != string(ciphertext) {
		t.Fatalf("decoded ciphertext %q, want %q", gotCT, ciphertext)
	}
}

func TestDecodeFrameRejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"not base64":              "not-valid-base64!!!",
		"too short":               "YWI=",
		"length overruns buffer":  "/////2RhdGE=", // huge length prefix, tiny body
	}
	for name, b64 := range cases {
		t.Run(name, func(t *testing.T) {
			if _, _, err := DecodeFrame(b64); err != ErrMalformedFrame {
				t.Fatalf("expected ErrMalformedFrame, got %v", err)
			}
		})
	}
}
