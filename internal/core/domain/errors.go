package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when no build descriptor exists at the given path.
	ErrConfigNotFound = zerr.New("build descriptor not found")

	// ErrConfigReadFailed is returned when the build descriptor cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read build descriptor")

	// ErrConfigParseFailed is returned when the build descriptor is not valid.
	ErrConfigParseFailed = zerr.New("failed to parse build descriptor")

	// ErrMissingProjectName is returned when a project has no name.
	ErrMissingProjectName = zerr.New("missing project name")

	// ErrInvalidProjectKind is returned when an android project kind is unknown.
	ErrInvalidProjectKind = zerr.New("invalid android project kind")

	// ErrInvalidRule is returned when a rule lacks a coordinate, substitute or threshold.
	ErrInvalidRule = zerr.New("invalid rewrite rule")

	// ErrUnsupportedConfigFormat is returned when the descriptor extension is not recognised.
	ErrUnsupportedConfigFormat = zerr.New("unsupported build descriptor format")

	// ErrDuplicateProject is returned when two projects share the same path.
	ErrDuplicateProject = zerr.New("duplicate project")

	// ErrDuplicateConfiguration is returned when a project declares a configuration name twice.
	ErrDuplicateConfiguration = zerr.New("duplicate configuration")

	// ErrDuplicateComponent is returned when the same component is declared twice.
	ErrDuplicateComponent = zerr.New("duplicate component")

	// ErrInvalidCoordinate is returned when a group:artifact[:version] string is malformed.
	ErrInvalidCoordinate = zerr.New("invalid coordinate")

	// ErrMalformedVersion is returned when a version string cannot be ordered.
	ErrMalformedVersion = zerr.New("malformed version")

	// ErrMalformedPlatformVersion is returned when compileSdkVersion is not of the form <prefix>-<integer>.
	ErrMalformedPlatformVersion = zerr.New("malformed platform version")

	// ErrThresholdOrder is returned when a threshold entry does not extend the table.
	ErrThresholdOrder = zerr.New("threshold trigger must be greater than the previous trigger")

	// ErrInvalidFloor is returned when a threshold floor is not a positive platform level.
	ErrInvalidFloor = zerr.New("threshold floor must be positive")

	// ErrAttributeNotInteger is returned when an integer attribute carries a non-integer value.
	ErrAttributeNotInteger = zerr.New("attribute value is not an integer")

	// ErrNoMatchingVariant is returned when no variant satisfies the consumer attributes.
	ErrNoMatchingVariant = zerr.New("no matching variant")

	// ErrAmbiguousVariant is returned when several variants remain after disambiguation.
	ErrAmbiguousVariant = zerr.New("ambiguous variant selection")

	// ErrComponentNotFound is returned when the repository has no metadata for a coordinate.
	ErrComponentNotFound = zerr.New("component not found")

	// ErrEvaluationFailed is returned when at least one project failed evaluation.
	ErrEvaluationFailed = zerr.New("evaluation failed")

	// ErrStoreReadFailed is returned when the rule cache cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read rule cache")

	// ErrStoreUnmarshalFailed is returned when a cache entry cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal rule cache entry")

	// ErrStoreMarshalFailed is returned when a cache entry cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal rule cache entry")

	// ErrStoreCreateFailed is returned when the cache directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create rule cache directory")

	// ErrStoreWriteFailed is returned when a cache entry cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write rule cache entry")

	// ErrInvalidModuleMetadata is returned when a module metadata document cannot be read.
	ErrInvalidModuleMetadata = zerr.New("invalid module metadata")

	// ErrUnsupportedOutputFormat is returned for an unknown report format.
	ErrUnsupportedOutputFormat = zerr.New("unsupported output format")
)
