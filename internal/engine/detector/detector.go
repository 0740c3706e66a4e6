// Package detector finds the compile SDK level a project declares.
package detector

import (
	"sync"

	"go.trai.ch/sdkcompat/internal/core/domain"
	"go.trai.ch/sdkcompat/internal/core/ports"
	"go.trai.ch/zerr"
)

type detection struct {
	level domain.PlatformVersion
	found bool
	err   error
}

// Detector reads the compile SDK level from a project's android extension.
// Results are memoized per project path for the lifetime of the Detector.
type Detector struct {
	logger ports.Logger

	mu    sync.Mutex
	cache map[string]detection
}

// New creates a Detector that reports absent extensions through logger.
func New(logger ports.Logger) *Detector {
	return &Detector{
		logger: logger,
		cache:  make(map[string]detection),
	}
}

// Detect returns the project's compile SDK level. The boolean is false when
// the project has no android extension or no compileSdkVersion; that is a
// normal outcome and is only logged. A value that is present but malformed
// is returned as an error.
func (d *Detector) Detect(p *domain.Project) (domain.PlatformVersion, bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if r, ok := d.cache[p.Path]; ok {
		return r.level, r.found, r.err
	}

	r := d.detect(p)
	d.cache[p.Path] = r
	return r.level, r.found, r.err
}

func (d *Detector) detect(p *domain.Project) detection {
	if p.Android == nil {
		d.logger.Warn("android extension not found, '" + p.Name + "' is not an Android project")
		return detection{}
	}
	if p.Android.CompileSdkVersion == "" {
		d.logger.Warn("compileSdkVersion not found, missing from project '" + p.Name + "'")
		return detection{}
	}

	level, err := domain.ParsePlatformVersion(p.Android.CompileSdkVersion)
	if err != nil {
		return detection{err: zerr.With(err, "project", p.Name)}
	}
	return detection{level: level, found: true}
}
