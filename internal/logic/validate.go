// Package logic implements the vault's ten RPC handlers, one file per
// operation, each a struct embedding logx.Logger and constructed
// per-request with NewXLogic(ctx, svcCtx).
package logic

import (
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/smswithoutborders/vault-server/internal/cryptoutil"
)

// Field is one requirement in a validation call: either a single field name
// (Name) that must be non-empty, or a set of Alternatives of which at least
// one must be non-empty.
type Field struct {
	Name         string
	Alternatives []string
}

// Req is shorthand for a single required field.
func Req(name string) Field { return Field{Name: name} }

// OneOf is shorthand for an alternatives requirement.
func OneOf(names ...string) Field { return Field{Alternatives: names} }

// ValidateFields checks that every Field in fields is satisfied by values,
// and that any name listed in x25519Fields which is present in fields
// decodes to a valid 32-byte, non-zero X25519 public key. It returns a
// single INVALID_ARGUMENT status naming every offending field.
func ValidateFields(values map[string]string, fields []Field, x25519Fields map[string]bool) error {
	var missing []string

	for _, f := range fields {
		if f.Name != "" {
			if strings.TrimSpace(values[f.Name]) == "" {
				missing = append(missing, f.Name)
			}
			continue
		}
		satisfied := false
		for _, alt := range f.Alternatives {
			if strings.TrimSpace(values[alt]) != "" {
				satisfied = true
				break
			}
		}
		if !satisfied {
			missing = append(missing, "one of "+strings.Join(f.Alternatives, "|"))
		}
	}

	var invalidKeys []string
	for name := range x25519Fields {
		if !fieldPresent(fields, name) {
			continue
		}
		v := values[name]
		if v == "" {
			continue
		}
		if !cryptoutil.IsValidX25519PublicKey(v) {
			invalidKeys = append(invalidKeys, name)
		}
	}

	if len(missing) == 0 && len(invalidKeys) == 0 {
		return nil
	}

	var msg strings.Builder
	msg.WriteString("invalid request:")
	if len(missing) > 0 {
		msg.WriteString(fmt.Sprintf(" missing fields [%s]", strings.Join(missing, ", ")))
	}
	if len(invalidKeys) > 0 {
		msg.WriteString(fmt.Sprintf(" invalid x25519 public key(s) [%s]", strings.Join(invalidKeys, ", ")))
	}
	return status.Error(codes.InvalidArgument, msg.String())
}

func fieldPresent(fields []Field, name string) bool {
	for _, f := range fields {
		if f.Name == name {
			return true
		}
		for _, alt := range f.Alternatives {
			if alt == name {
				return true
			}
		}
	}
	return false
}

// errGeneric is the deliberately vague message used for every authentication
// failure, so a caller cannot distinguish an unknown eid from an expired or
// forged token.
const errGeneric = "session expired or invalid; please log in again"

func errUnauthenticated() error {
	return status.Error(codes.Unauthenticated, errGeneric)
}

func errInternal(cause error) error {
	return status.Error(codes.Internal, "an internal error occurred")
}
