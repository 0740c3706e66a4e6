package modulemeta

import (
	"context"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.trai.ch/sdkcompat/internal/core/domain"
	"go.trai.ch/zerr"
)

const formatVersion = "1.1"

// Write implements ports.MetadataWriter. The document lands at the Maven
// layout path below outDir. When meta was read through Components the
// original document is patched; otherwise a new one is generated.
func (s *Store) Write(ctx context.Context, outDir string, meta *domain.ComponentMetadata) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	doc, ok := s.source(meta.ID.String())
	if !ok {
		doc = newDocument(meta.ID)
	}

	doc, err := Patch(doc, meta)
	if err != nil {
		return zerr.With(err, "component", meta.ID.String())
	}

	path := filepath.Join(outDir, LayoutPath(meta.ID))
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create metadata directory"), "path", path)
	}
	//nolint:gosec // path is built from the output directory and the component coordinate
	if err := os.WriteFile(path, doc, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write module metadata"), "path", path)
	}
	return nil
}

// LayoutPath returns the Maven repository path of a component's .module file.
func LayoutPath(id domain.ModuleCoordinate) string {
	return filepath.Join(
		filepath.FromSlash(strings.ReplaceAll(id.Group, ".", "/")),
		id.Artifact,
		id.Version,
		id.Artifact+"-"+id.Version+domain.ModuleMetadataExt,
	)
}

func newDocument(id domain.ModuleCoordinate) []byte {
	doc := []byte(`{}`)
	doc, _ = sjson.SetBytes(doc, "formatVersion", formatVersion)
	doc, _ = sjson.SetBytes(doc, "component.group", id.Group)
	doc, _ = sjson.SetBytes(doc, "component.module", id.Artifact)
	doc, _ = sjson.SetBytes(doc, "component.version", id.Version)
	return doc
}

// Patch rewrites the variants of doc to match meta. Attributes of existing
// variants are overwritten key by key, variants missing from doc are appended
// and fields unknown to the domain model are left untouched.
func Patch(doc []byte, meta *domain.ComponentMetadata) ([]byte, error) {
	var err error
	for _, v := range meta.Variants {
		idx := variantIndex(doc, v.Name)
		if idx < 0 {
			doc, err = appendVariant(doc, v)
			if err != nil {
				return nil, err
			}
			continue
		}

		base := "variants." + strconv.Itoa(idx) + ".attributes."
		for _, key := range slices.Sorted(maps.Keys(v.Attributes)) {
			doc, err = sjson.SetBytes(doc, base+gjson.Escape(key), attributeValue(key, v.Attributes[key]))
			if err != nil {
				return nil, zerr.Wrap(err, "failed to patch variant attribute")
			}
		}
	}
	return doc, nil
}

func variantIndex(doc []byte, name string) int {
	idx := -1
	gjson.GetBytes(doc, "variants").ForEach(func(k, v gjson.Result) bool {
		if v.Get("name").String() == name {
			idx = int(k.Int())
			return false
		}
		return true
	})
	return idx
}

func appendVariant(doc []byte, v domain.Variant) ([]byte, error) {
	raw := []byte(`{}`)
	raw, err := sjson.SetBytes(raw, "name", v.Name)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to encode variant")
	}
	for _, key := range slices.Sorted(maps.Keys(v.Attributes)) {
		raw, err = sjson.SetBytes(raw, "attributes."+gjson.Escape(key), attributeValue(key, v.Attributes[key]))
		if err != nil {
			return nil, zerr.Wrap(err, "failed to encode variant attribute")
		}
	}
	for i, d := range v.Dependencies {
		base := "dependencies." + strconv.Itoa(i) + "."
		raw, _ = sjson.SetBytes(raw, base+"group", d.Coordinate.Group)
		raw, _ = sjson.SetBytes(raw, base+"module", d.Coordinate.Artifact)
		raw, _ = sjson.SetBytes(raw, base+"version.requires", d.Coordinate.Version)
		if d.Reason != "" {
			raw, _ = sjson.SetBytes(raw, base+"reason", d.Reason)
		}
	}

	out, err := sjson.SetRawBytes(doc, "variants.-1", raw)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to append variant")
	}
	return out, nil
}

// attributeValue keeps integer attributes numeric as Gradle writes them.
func attributeValue(key, val string) any {
	if key == domain.CompileSdkAttribute {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return val
}
