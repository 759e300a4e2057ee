package logic

import (
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/smswithoutborders/vault-server/internal/cryptoutil"
)

func validPubKey(t *testing.T) string {
	t.Helper()
	kp, err := cryptoutil.X25519Keygen()
	if err != nil {
		t.Fatalf("X25519Keygen: %v", err)
	}
	return cryptoutil.EncodePublicKey(kp.Public)
}

func TestValidateFieldsRequired(t *testing.T) {
	values := map[string]string{"phone_number": "+237600000000", "password": ""}
	err := ValidateFields(values, []Field{Req("phone_number"), Req("password")}, nil)
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}

	values["password"] = "hunter2"
	if err := ValidateFields(values, []Field{Req("phone_number"), Req("password")}, nil); err != nil {
		t.Fatalf("expected no error once all required fields are set, got %v", err)
	}
}

func TestValidateFieldsOneOf(t *testing.T) {
	values := map[string]string{"long_lived_token": "", "device_id": ""}
	if err := ValidateFields(values, []Field{OneOf("long_lived_token", "device_id")}, nil); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument when neither alternative is set, got %v", err)
	}

	values["device_id"] = "abc123"
	if err := ValidateFields(values, []Field{OneOf("long_lived_token", "device_id")}, nil); err != nil {
		t.Fatalf("expected no error once one alternative is set, got %v", err)
	}
}

func TestValidateFieldsX25519(t *testing.T) {
	good := validPubKey(t)

	values := map[string]string{"client_publish_pub_key": "not-a-valid-key"}
	err := ValidateFields(values, []Field{Req("client_publish_pub_key")}, map[string]bool{"client_publish_pub_key": true})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument for a malformed public key, got %v", err)
	}

	values["client_publish_pub_key"] = good
	if err := ValidateFields(values, []Field{Req("client_publish_pub_key")}, map[string]bool{"client_publish_pub_key": true}); err != nil {
		t.Fatalf("expected no error for a valid public key, got %v", err)
	}
}

func TestValidateFieldsX25519OnlyChecksPresentFields(t *testing.T) {
	values := map[string]string{"device_id": "abc123"}
	err := ValidateFields(values, []Field{Req("device_id")}, map[string]bool{"client_publish_pub_key": true})
	if err != nil {
		t.Fatalf("x25519 check must be skipped for a field not in the requirement list, got %v", err)
	}
}

func TestErrUnauthenticatedIsGeneric(t *testing.T) {
	err := errUnauthenticated()
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}
	if status.Convert(err).Message() != errGeneric {
		t.Fatalf("errUnauthenticated must always return the generic message")
	}
}
