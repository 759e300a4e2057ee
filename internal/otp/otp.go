// Package otp defines the vault's out-of-band ownership-proof collaborator.
// Rate limiting, delivery channel, and code generation belong to the
// gateway implementation; the vault only sends and verifies.
package otp

import "context"

// Gateway sends and verifies one-time codes keyed on a phone number. Both
// operations are opaque to the caller: the vault surfaces Message and
// NextAttemptEpoch verbatim to the client.
type Gateway interface {
	SendOTP(ctx context.Context, phone string) (ok bool, message string, nextAttemptEpoch int64, err error)
	VerifyOTP(ctx context.Context, phone, code string) (ok bool, message string, err error)
}
