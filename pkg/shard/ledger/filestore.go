package ledger

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrLedgerUnavailable wraps any failure to create or read the
// backing directory of a FileStore.
var ErrLedgerUnavailable = errors.New("fragment ledger unavailable")

// FileStore persists one JSON file per canonicalized fragment key
// under a directory. Contains is a stat-and-verify; Save is a
// create-if-absent write. This gives the single-writer guarantee
// documented as sufficient, not the linearizable compare-and-set true
// concurrent shard assignment would need.
type FileStore struct {
	dir string
}

// NewFileStore creates (if necessary) dir and returns a FileStore
// backed by it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
	}
	return &FileStore{dir: dir}, nil
}

type fragmentRecord struct {
	Fragment string `json:"fragment"`
}

// Save writes key's record if it is not already present.
func (f *FileStore) Save(key string) error {
	path := f.pathFor(key)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
	}

	data, err := json.Marshal(fragmentRecord{Fragment: key})
	if err != nil {
		return fmt.Errorf("failed to marshal fragment record: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
	}
	return nil
}

// Contains reports whether key has been recorded.
func (f *FileStore) Contains(key string) (bool, error) {
	data, err := os.ReadFile(f.pathFor(key))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
	}

	var rec fragmentRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return false, fmt.Errorf("failed to unmarshal fragment record: %w", err)
	}
	return rec.Fragment == key, nil
}

// pathFor hashes key into a filesystem-safe filename; fragment keys
// contain a "|" delimiter that is legal in a filename on Linux but not
// guaranteed portable, and an MD5-keyed name keeps the file name
// length fixed regardless of key length.
func (f *FileStore) pathFor(key string) string {
	sum := md5.Sum([]byte(key))
	return filepath.Join(f.dir, hex.EncodeToString(sum[:])+".json")
}
