package domain

import "path/filepath"

const (
	// StateDirName is the name of the per-build state directory.
	StateDirName = ".sdkcompat"

	// CacheDirName is the name of the rule cache directory.
	CacheDirName = "cache"

	// ConfigFileName is the default build descriptor.
	ConfigFileName = "sdkcompat.yaml"

	// StarlarkConfigFileName is the Starlark build descriptor looked up when
	// ConfigFileName is absent.
	StarlarkConfigFileName = "sdkcompat.star"

	// ModuleMetadataExt is the extension of Gradle module metadata files.
	ModuleMetadataExt = ".module"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the rule cache location relative to a build root.
func DefaultCachePath() string {
	return filepath.Join(StateDirName, CacheDirName)
}
