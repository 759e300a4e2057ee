package keystore

import (
	"path/filepath"
	"testing"
)

func TestGetOrCreateIdempotent(t *testing.T) {
	s := New(t.TempDir())
	path := s.PublishPath("eid1")

	first, err := s.GetOrCreate(path)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	second, err := s.GetOrCreate(path)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if first.Public != second.Public || first.Private != second.Private {
		t.Fatal("GetOrCreate must return the same keypair on replay")
	}
}

func TestRotateReplacesKeypair(t *testing.T) {
	s := New(t.TempDir())
	path := s.DeviceIDPath("eid1")

	before, err := s.GetOrCreate(path)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	after, err := s.Rotate(path)
	if err != nil {
		t.Fatalf("Rotate: %v", err)
	}
	if before.Public == after.Public {
		t.Fatal("Rotate must generate a fresh keypair, not reuse the existing one")
	}

	loaded, err := s.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Public != after.Public {
		t.Fatal("Load must see the rotated keypair persisted to disk")
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	s := New(t.TempDir())
	path := filepath.Join(s.baseDir, "missing_publish.db")

	if err := s.Remove(path); err != nil {
		t.Fatalf("Remove on a missing file must not error: %v", err)
	}

	if _, err := s.GetOrCreate(path); err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if err := s.Remove(path); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := s.Load(path); err == nil {
		t.Fatal("Load should fail once the keypair file has been removed")
	}
}

func TestSerializeBlobRoundTrip(t *testing.T) {
	s := New(t.TempDir())
	kp, err := s.GetOrCreate(s.PublishPath("eid1"))
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}

	blob := SerializeBlob(kp)
	got, err := DeserializeBlob(blob)
	if err != nil {
		t.Fatalf("DeserializeBlob: %v", err)
	}
	if got.Public != kp.Public || got.Private != kp.Private {
		t.Fatal("DeserializeBlob must reverse SerializeBlob exactly")
	}

	if _, err := DeserializeBlob([]byte{0xFF}); err != ErrCorrupt {
		t.Fatalf("expected ErrCorrupt for a malformed blob, got %v", err)
	}
}
