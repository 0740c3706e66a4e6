// Package modulemeta reads and writes Gradle module metadata (.module) files.
package modulemeta

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/tidwall/gjson"
	"go.trai.ch/sdkcompat/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store reads component metadata from a directory tree and writes patched
// copies. Documents it has read are kept so that writes preserve every field
// the domain model does not carry (files, capabilities, createdBy).
type Store struct {
	mu      sync.RWMutex
	sources map[string][]byte
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{sources: make(map[string][]byte)}
}

// Components implements ports.ComponentRepository. Every *.module file below
// root is parsed; the result is sorted by coordinate.
func (s *Store) Components(ctx context.Context, root string) ([]*domain.ComponentMetadata, error) {
	var out []*domain.ComponentMetadata

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() || filepath.Ext(path) != domain.ModuleMetadataExt {
			return nil
		}

		//nolint:gosec // path comes from walking the configured repository
		data, err := os.ReadFile(path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to read module metadata"), "path", path)
		}

		meta, err := Parse(data)
		if err != nil {
			return zerr.With(err, "path", path)
		}

		s.mu.Lock()
		s.sources[meta.ID.String()] = data
		s.mu.Unlock()

		out = append(out, meta)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(out, func(a, b *domain.ComponentMetadata) int {
		return strings.Compare(a.ID.String(), b.ID.String())
	})
	return out, nil
}

// Parse decodes one module metadata document.
func Parse(data []byte) (*domain.ComponentMetadata, error) {
	if !gjson.ValidBytes(data) {
		return nil, zerr.With(domain.ErrInvalidModuleMetadata, "reason", "not valid JSON")
	}

	doc := gjson.ParseBytes(data)
	component := doc.Get("component")
	id := domain.ModuleCoordinate{
		LibraryCoordinate: domain.LibraryCoordinate{
			Group:    component.Get("group").String(),
			Artifact: component.Get("module").String(),
		},
		Version: component.Get("version").String(),
	}
	if id.Group == "" || id.Artifact == "" || id.Version == "" {
		return nil, zerr.With(domain.ErrInvalidModuleMetadata, "reason", "incomplete component coordinate")
	}

	meta := &domain.ComponentMetadata{ID: id}
	var parseErr error
	doc.Get("variants").ForEach(func(_, v gjson.Result) bool {
		variant := domain.Variant{
			Name:       v.Get("name").String(),
			Attributes: domain.Attributes{},
		}
		v.Get("attributes").ForEach(func(k, val gjson.Result) bool {
			variant.Attributes[k.String()] = val.String()
			return true
		})

		v.Get("dependencies").ForEach(func(_, dep gjson.Result) bool {
			coord := domain.ModuleCoordinate{
				LibraryCoordinate: domain.LibraryCoordinate{
					Group:    dep.Get("group").String(),
					Artifact: dep.Get("module").String(),
				},
				Version: requestedVersion(dep.Get("version")),
			}
			if coord.Group == "" || coord.Artifact == "" {
				parseErr = zerr.With(domain.ErrInvalidModuleMetadata, "variant", variant.Name)
				return false
			}
			variant.Dependencies = append(variant.Dependencies, domain.DependencyDeclaration{
				Coordinate: coord,
				Reason:     dep.Get("reason").String(),
			})
			return true
		})
		if parseErr != nil {
			return false
		}

		meta.Variants = append(meta.Variants, variant)
		return true
	})
	if parseErr != nil {
		return nil, zerr.With(parseErr, "component", id.String())
	}

	return meta, nil
}

// requestedVersion picks the most specific constraint of a version block.
func requestedVersion(v gjson.Result) string {
	for _, key := range []string{"strictly", "requires", "prefers"} {
		if s := v.Get(key).String(); s != "" {
			return s
		}
	}
	return ""
}

func (s *Store) source(id string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.sources[id]
	return data, ok
}
