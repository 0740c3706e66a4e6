package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// LibraryCoordinate identifies a dependency family by group and artifact.
type LibraryCoordinate struct {
	Group    string
	Artifact string
}

// String returns the coordinate as "group:artifact".
func (c LibraryCoordinate) String() string {
	return c.Group + ":" + c.Artifact
}

// ParseLibraryCoordinate parses "group:artifact".
func ParseLibraryCoordinate(s string) (LibraryCoordinate, error) {
	group, artifact, ok := strings.Cut(s, ":")
	if !ok || group == "" || artifact == "" || strings.Contains(artifact, ":") {
		return LibraryCoordinate{}, zerr.With(ErrInvalidCoordinate, "coordinate", s)
	}
	return LibraryCoordinate{Group: group, Artifact: artifact}, nil
}

// ModuleCoordinate is a LibraryCoordinate pinned to a version.
type ModuleCoordinate struct {
	LibraryCoordinate
	Version string
}

// String returns the coordinate as "group:artifact:version".
func (c ModuleCoordinate) String() string {
	return c.LibraryCoordinate.String() + ":" + c.Version
}

// ParseModuleCoordinate parses "group:artifact:version".
func ParseModuleCoordinate(s string) (ModuleCoordinate, error) {
	idx := strings.LastIndex(s, ":")
	if idx < 0 {
		return ModuleCoordinate{}, zerr.With(ErrInvalidCoordinate, "coordinate", s)
	}
	lib, err := ParseLibraryCoordinate(s[:idx])
	if err != nil {
		return ModuleCoordinate{}, zerr.With(ErrInvalidCoordinate, "coordinate", s)
	}
	version := s[idx+1:]
	if version == "" {
		return ModuleCoordinate{}, zerr.With(ErrInvalidCoordinate, "coordinate", s)
	}
	return ModuleCoordinate{LibraryCoordinate: lib, Version: version}, nil
}
