// Package config loads the build descriptor into the domain model.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/sdkcompat/internal/core/domain"
	"go.trai.ch/sdkcompat/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader for YAML and Starlark descriptors.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the descriptor at path. When path is a directory the descriptor
// is searched for in it and its parents.
func (l *Loader) Load(path string) (*domain.Build, error) {
	configPath, err := findConfiguration(path)
	if err != nil {
		return nil, err
	}

	var desc Descriptor
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		err = readAndUnmarshalYAML(configPath, &desc)
	case ".star", ".bzl":
		err = readStarlark(configPath, &desc)
	default:
		err = zerr.With(domain.ErrUnsupportedConfigFormat, "path", configPath)
	}
	if err != nil {
		return nil, err
	}

	return l.toBuild(configPath, &desc)
}

func findConfiguration(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", zerr.With(domain.ErrConfigNotFound, "path", path)
	}
	if !info.IsDir() {
		return path, nil
	}

	dir, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve descriptor directory")
	}

	for {
		for _, name := range []string{domain.ConfigFileName, domain.StarlarkConfigFileName} {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", path)
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is provided by the user
	data, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}
	return nil
}

func (l *Loader) toBuild(configPath string, desc *Descriptor) (*domain.Build, error) {
	build := &domain.Build{
		Root:       resolveRoot(configPath, desc.Root),
		Repository: desc.Repository,
	}

	for i := range desc.Rules {
		rule, err := toRule(&desc.Rules[i])
		if err != nil {
			return nil, zerr.With(err, "rule_index", i)
		}
		build.Rules = append(build.Rules, rule)
	}

	seen := make(map[string]bool, len(desc.Projects))
	for i := range desc.Projects {
		p, err := l.toProject(&desc.Projects[i])
		if err != nil {
			return nil, err
		}
		if seen[p.Path] {
			return nil, zerr.With(domain.ErrDuplicateProject, "project_path", p.Path)
		}
		seen[p.Path] = true
		build.Projects = append(build.Projects, p)
	}

	for i := range desc.Components {
		meta, err := toComponent(&desc.Components[i])
		if err != nil {
			return nil, err
		}
		build.Components = append(build.Components, meta)
	}

	return build, nil
}

func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	if filepath.IsAbs(configuredRoot) {
		return filepath.Clean(configuredRoot)
	}
	return filepath.Clean(filepath.Join(configDir, configuredRoot))
}

func toRule(dto *RuleDTO) (domain.RuleConfig, error) {
	if dto.Coordinate == "" || dto.Substitute == "" {
		return domain.RuleConfig{}, zerr.With(domain.ErrInvalidRule, "coordinate", dto.Coordinate)
	}

	coord, err := domain.ParseLibraryCoordinate(dto.Coordinate)
	if err != nil {
		return domain.RuleConfig{}, err
	}
	sub, err := domain.ParseModuleCoordinate(dto.Substitute)
	if err != nil {
		return domain.RuleConfig{}, err
	}
	if dto.Floor < 0 {
		return domain.RuleConfig{}, zerr.With(domain.ErrInvalidFloor, "floor", dto.Floor)
	}

	var table domain.ThresholdTable
	for _, th := range dto.Thresholds {
		if err := table.Add(domain.Threshold{Trigger: th.Trigger, Floor: th.Floor}); err != nil {
			return domain.RuleConfig{}, err
		}
	}
	if table.Len() == 0 {
		return domain.RuleConfig{}, zerr.With(domain.ErrInvalidRule, "coordinate", dto.Coordinate)
	}

	return domain.RuleConfig{
		Coordinate:    coord,
		Substitute:    sub,
		Thresholds:    table,
		FloorOverride: dto.Floor,
	}, nil
}

func (l *Loader) toProject(dto *ProjectDTO) (*domain.Project, error) {
	if dto.Name == "" {
		return nil, domain.ErrMissingProjectName
	}

	p := &domain.Project{Name: dto.Name, Path: dto.Path}
	if p.Path == "" {
		p.Path = ":" + dto.Name
	}

	if dto.Android != nil {
		kind := domain.ProjectKind(dto.Android.Kind)
		switch kind {
		case "":
			kind = domain.KindApplication
		case domain.KindApplication, domain.KindLibrary:
		default:
			err := zerr.With(domain.ErrInvalidProjectKind, "kind", dto.Android.Kind)
			return nil, zerr.With(err, "project", dto.Name)
		}
		p.Android = &domain.AndroidExtension{Kind: kind, CompileSdkVersion: dto.Android.CompileSdkVersion}

		if len(dto.Configurations) == 0 {
			l.Logger.Warn("android project '" + dto.Name + "' declares no configurations")
		}
	}

	for _, c := range dto.Configurations {
		if _, dup := p.Configuration(c.Name); dup {
			err := zerr.With(domain.ErrDuplicateConfiguration, "configuration", c.Name)
			return nil, zerr.With(err, "project", dto.Name)
		}
		cfg := &domain.Configuration{Name: c.Name, Attributes: domain.Attributes{}}
		for k, v := range c.Attributes {
			cfg.Attributes[k] = v
		}
		for _, d := range c.Dependencies {
			coord, err := domain.ParseModuleCoordinate(d)
			if err != nil {
				return nil, zerr.With(err, "project", dto.Name)
			}
			cfg.Dependencies = append(cfg.Dependencies, coord)
		}
		p.Configurations = append(p.Configurations, cfg)
	}

	return p, nil
}

func toComponent(dto *ComponentDTO) (*domain.ComponentMetadata, error) {
	id, err := domain.ParseModuleCoordinate(dto.ID)
	if err != nil {
		return nil, err
	}

	meta := &domain.ComponentMetadata{ID: id}
	for _, v := range dto.Variants {
		variant := domain.Variant{Name: v.Name, Attributes: domain.Attributes{}}
		for k, val := range v.Attributes {
			variant.Attributes[k] = val
		}
		for _, d := range v.Dependencies {
			coord, err := domain.ParseModuleCoordinate(d.Coordinate)
			if err != nil {
				return nil, zerr.With(err, "component", dto.ID)
			}
			variant.Dependencies = append(variant.Dependencies, domain.DependencyDeclaration{Coordinate: coord, Reason: d.Reason})
		}
		meta.Variants = append(meta.Variants, variant)
	}
	return meta, nil
}
