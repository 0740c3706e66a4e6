// Package cas stores rule results on disk, one file per content key.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/sdkcompat/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.RuleCache below <root>/.sdkcompat/cache.
type Store struct{}

// NewStore creates a Store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the entry for key.
func (s *Store) Get(root, key string) (*domain.CachedRewrite, error) {
	//nolint:gosec // Path is built from the build root and a hex key
	data, err := os.ReadFile(s.filename(root, key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	var entry domain.CachedRewrite
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "key", key)
	}
	return &entry, nil
}

// Put stores entry under entry.Key.
func (s *Store) Put(root string, entry domain.CachedRewrite) error {
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	filename := s.filename(root, entry.Key)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	//nolint:gosec // Path is built from the build root and a hex key
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	return nil
}

func (s *Store) filename(root, key string) string {
	return filepath.Join(root, domain.DefaultCachePath(), key+".json")
}
