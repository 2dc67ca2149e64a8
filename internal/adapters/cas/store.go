// Package cas implements the result store: one JSON record per script, keyed
// by the hash of the script path.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/sameunit/internal/core/domain"
	"go.trai.ch/sameunit/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ResultStore = (*Store)(nil)

// Store implements ports.ResultStore using a file-per-script strategy.
type Store struct {
	dir string
}

// NewStore creates a ResultStore backed by the directory at dir.
// The directory is created on the first Put.
func NewStore(dir string) *Store {
	return &Store{dir: filepath.Clean(dir)}
}

// Get retrieves the record of a script. It returns nil, nil if none was stored.
func (s *Store) Get(script string) (*domain.ScriptRecord, error) {
	filename := s.filename(script)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "script", script)
	}

	var record domain.ScriptRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "script", script)
	}

	return &record, nil
}

// Put stores the record, replacing any previous record of the same script.
func (s *Store) Put(record domain.ScriptRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(s.filename(record.Script), data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "script", record.Script)
	}

	return nil
}

// filename maps a script path to its record file. Relative and absolute
// spellings of the same path share one record.
func (s *Store) filename(script string) string {
	key := filepath.Clean(script)
	if abs, err := filepath.Abs(key); err == nil {
		key = abs
	}
	hash := sha256.Sum256([]byte(key))
	return filepath.Join(s.dir, hex.EncodeToString(hash[:])+".json")
}
