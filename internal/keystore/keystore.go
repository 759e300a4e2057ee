// Package keystore persists X25519 keypairs to disk, one file per
// (eid, purpose), with create-if-absent locking for idempotent
// registration and an explicit Rotate path.
package keystore

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/smswithoutborders/vault-server/internal/cryptoutil"
)

// ErrCorrupt is returned when an on-disk keypair file cannot be parsed.
var ErrCorrupt = errors.New("keystore: corrupt keypair file")

const fileVersion byte = 1

// Store is a directory of serialized X25519 keypairs.
type Store struct {
	baseDir string

	mu       sync.Mutex
	fileLock map[string]*sync.Mutex
}

// New returns a Store rooted at baseDir. baseDir must already exist.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, fileLock: make(map[string]*sync.Mutex)}
}

// PublishPath returns the on-disk path for an entity's publish keypair.
func (s *Store) PublishPath(eid string) string {
	return filepath.Join(s.baseDir, eid+"_publish.db")
}

// DeviceIDPath returns the on-disk path for an entity's device-id keypair.
func (s *Store) DeviceIDPath(eid string) string {
	return filepath.Join(s.baseDir, eid+"_device_id.db")
}

func (s *Store) lockFor(path string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.fileLock[path]
	if !ok {
		l = &sync.Mutex{}
		s.fileLock[path] = l
	}
	return l
}

// GetOrCreate loads the keypair at path if it exists, otherwise generates
// and persists a fresh one. Concurrent callers for the same path observe
// exactly one keypair written to disk and the same public key returned —
// the idempotence required for replayed registration attempts.
func (s *Store) GetOrCreate(path string) (cryptoutil.X25519KeyPair, error) {
	lock := s.lockFor(path)
	lock.Lock()
	defer lock.Unlock()

	if kp, err := load(path); err == nil {
		return kp, nil
	} else if !os.IsNotExist(err) {
		return cryptoutil.X25519KeyPair{}, err
	}

	kp, err := cryptoutil.X25519Keygen()
	if err != nil {
		return kp, err
	}
	if err := persist(path, kp); err != nil {
		return cryptoutil.X25519KeyPair{}, err
	}
	return kp, nil
}

// Rotate deletes any existing keypair at path and generates a fresh one,
// used only by authentication's device rotation: the opposite of
// GetOrCreate's idempotence.
func (s *Store) Rotate(path string) (cryptoutil.X25519KeyPair, error) {
	lock := s.lockFor(path)
	lock.Lock()
	defer lock.Unlock()

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return cryptoutil.X25519KeyPair{}, err
	}
	kp, err := cryptoutil.X25519Keygen()
	if err != nil {
		return kp, err
	}
	if err := persist(path, kp); err != nil {
		return cryptoutil.X25519KeyPair{}, err
	}
	return kp, nil
}

// Load reads a keypair without creating one, for re-deriving agreements
// from stored entity state.
func (s *Store) Load(path string) (cryptoutil.X25519KeyPair, error) {
	lock := s.lockFor(path)
	lock.Lock()
	defer lock.Unlock()
	return load(path)
}

// Remove deletes a keypair file. It is not an error if the file is absent.
func (s *Store) Remove(path string) error {
	lock := s.lockFor(path)
	lock.Lock()
	defer lock.Unlock()
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// file layout: [version:1B][private:32B][public:32B]
func persist(path string, kp cryptoutil.X25519KeyPair) error {
	buf := make([]byte, 1+32+32)
	buf[0] = fileVersion
	copy(buf[1:33], kp.Private[:])
	copy(buf[33:65], kp.Public[:])

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func load(path string) (cryptoutil.X25519KeyPair, error) {
	var kp cryptoutil.X25519KeyPair
	raw, err := os.ReadFile(path)
	if err != nil {
		return kp, err
	}
	if len(raw) != 65 || raw[0] != fileVersion {
		return kp, ErrCorrupt
	}
	copy(kp.Private[:], raw[1:33])
	copy(kp.Public[:], raw[33:65])
	return kp, nil
}

// serialized keypair blob stored alongside the entity row, distinct from the
// on-disk keystore file — lets the DB record which public key the keystore
// should currently hold without re-reading the file.
func SerializeBlob(kp cryptoutil.X25519KeyPair) []byte {
	buf := make([]byte, 1+32+32)
	buf[0] = fileVersion
	copy(buf[1:33], kp.Private[:])
	copy(buf[33:65], kp.Public[:])
	return buf
}

func DeserializeBlob(buf []byte) (cryptoutil.X25519KeyPair, error) {
	var kp cryptoutil.X25519KeyPair
	if len(buf) != 65 || buf[0] != fileVersion {
		return kp, ErrCorrupt
	}
	copy(kp.Private[:], buf[1:33])
	copy(kp.Public[:], buf[33:65])
	return kp, nil
}
