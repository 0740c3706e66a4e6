package domain

import (
	"maps"
	"strconv"

	"go.trai.ch/zerr"
)

const (
	// UsageAttribute is the standard attribute describing how a variant is consumed.
	UsageAttribute = "org.gradle.usage"
	// UsageJavaRuntime marks a variant usable on the runtime classpath.
	UsageJavaRuntime = "java-runtime"
	// UsageJavaAPI marks a variant usable on the compile classpath.
	UsageJavaAPI = "java-api"

	// CompileSdkAttribute carries the compile SDK level a variant requires,
	// or the level a consuming configuration provides.
	CompileSdkAttribute = "sdkcompat.android.compileSdkVersion"
	// CompileSdkAttributeName is the short form used in generated variant names.
	CompileSdkAttributeName = "compileSdkVersion"

	// FallbackSentinel is the selection value of generated fallback variants.
	// It is below every real SDK level so the fallback never outranks a real match.
	FallbackSentinel = 0
)

// Attributes maps attribute keys to their string encoded values.
// Integer typed attributes are stored in decimal.
type Attributes map[string]string

// Clone returns an independent copy.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return Attributes{}
	}
	return maps.Clone(a)
}

// SetInt stores an integer value.
func (a Attributes) SetInt(key string, value int) {
	a[key] = strconv.Itoa(value)
}

// Int reads an integer value. The second result is false when the key is absent.
func (a Attributes) Int(key string) (int, bool, error) {
	raw, ok := a[key]
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		err = zerr.With(ErrAttributeNotInteger, "attribute", key)
		return 0, true, zerr.With(err, "value", raw)
	}
	return n, true, nil
}
