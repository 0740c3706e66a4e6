package config

import (
	"os"
	"strconv"

	"github.com/bazelbuild/buildtools/build"
	"go.trai.ch/sdkcompat/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Top level calls of a Starlark descriptor. Each takes the keyword arguments
// of the matching YAML section; nested calls such as android(...) or
// variant(...) evaluate to a dict of their keyword arguments.
const (
	callBuild     = "build"
	callRule      = "rule"
	callProject   = "project"
	callComponent = "component"
)

// readStarlark parses a Starlark descriptor into desc.
//
//	WORK = "androidx.work:work-runtime"
//	build(repository = "m2")
//	rule(coordinate = WORK, substitute = WORK + ":2.6.0", thresholds = [threshold(trigger = "2.7.0", floor = 31)])
//	project(name = "app", android = android(compileSdkVersion = "android-30"), configurations = [...])
func readStarlark(configPath string, desc *Descriptor) error {
	// #nosec G304 -- configPath is provided by the user
	data, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	f, err := build.ParseDefault(configPath, data)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}

	e := &starlarkEval{vars: make(map[string]any)}
	doc := map[string]any{}
	var rules, projects, components []any

	for _, stmt := range f.Stmt {
		switch s := stmt.(type) {
		case *build.AssignExpr:
			lhs, ok := s.LHS.(*build.Ident)
			if !ok {
				continue
			}
			v, err := e.value(s.RHS)
			if err != nil {
				return withPos(err, configPath, s)
			}
			e.vars[lhs.Name] = v
		case *build.CallExpr:
			ident, ok := s.X.(*build.Ident)
			if !ok {
				continue
			}
			kwargs, err := e.kwargs(s)
			if err != nil {
				return withPos(err, configPath, s)
			}
			switch ident.Name {
			case callBuild:
				for k, v := range kwargs {
					doc[k] = v
				}
			case callRule:
				rules = append(rules, kwargs)
			case callProject:
				projects = append(projects, kwargs)
			case callComponent:
				components = append(components, kwargs)
			default:
				err := zerr.With(zerr.New("unknown descriptor function"), "function", ident.Name)
				return withPos(err, configPath, s)
			}
		}
	}

	doc["rules"] = rules
	doc["projects"] = projects
	doc["components"] = components

	// The YAML schema is the single source of field names and types.
	raw, err := yaml.Marshal(doc)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	if err := yaml.Unmarshal(raw, desc); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}
	return nil
}

func withPos(err error, path string, expr build.Expr) error {
	start, _ := expr.Span()
	return zerr.With(zerr.With(err, "path", path), "line", start.Line)
}

type starlarkEval struct {
	vars map[string]any
}

func (e *starlarkEval) kwargs(call *build.CallExpr) (map[string]any, error) {
	out := make(map[string]any, len(call.List))
	for _, arg := range call.List {
		assign, ok := arg.(*build.AssignExpr)
		if !ok {
			return nil, zerr.New("descriptor functions take keyword arguments only")
		}
		lhs, ok := assign.LHS.(*build.Ident)
		if !ok {
			return nil, zerr.New("invalid keyword argument")
		}
		v, err := e.value(assign.RHS)
		if err != nil {
			return nil, zerr.With(err, "argument", lhs.Name)
		}
		out[lhs.Name] = v
	}
	return out, nil
}

func (e *starlarkEval) value(expr build.Expr) (any, error) {
	switch x := expr.(type) {
	case *build.StringExpr:
		return x.Value, nil
	case *build.LiteralExpr:
		n, err := strconv.Atoi(x.Token)
		if err != nil {
			return nil, zerr.With(zerr.New("unsupported literal"), "literal", x.Token)
		}
		return n, nil
	case *build.Ident:
		switch x.Name {
		case "True":
			return true, nil
		case "False":
			return false, nil
		case "None":
			return nil, nil
		}
		v, ok := e.vars[x.Name]
		if !ok {
			return nil, zerr.With(zerr.New("undefined variable"), "variable", x.Name)
		}
		return v, nil
	case *build.ListExpr:
		out := make([]any, 0, len(x.List))
		for _, item := range x.List {
			v, err := e.value(item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case *build.DictExpr:
		out := make(map[string]any, len(x.List))
		for _, kv := range x.List {
			key, err := e.value(kv.Key)
			if err != nil {
				return nil, err
			}
			ks, ok := key.(string)
			if !ok {
				return nil, zerr.New("dict keys must be strings")
			}
			v, err := e.value(kv.Value)
			if err != nil {
				return nil, err
			}
			out[ks] = v
		}
		return out, nil
	case *build.CallExpr:
		return e.kwargs(x)
	case *build.BinaryExpr:
		return e.binary(x)
	default:
		return nil, zerr.New("unsupported expression")
	}
}

func (e *starlarkEval) binary(x *build.BinaryExpr) (any, error) {
	if x.Op != "+" {
		return nil, zerr.With(zerr.New("unsupported operator"), "operator", x.Op)
	}
	l, err := e.value(x.X)
	if err != nil {
		return nil, err
	}
	r, err := e.value(x.Y)
	if err != nil {
		return nil, err
	}

	switch lv := l.(type) {
	case string:
		if rv, ok := r.(string); ok {
			return lv + rv, nil
		}
	case []any:
		if rv, ok := r.([]any); ok {
			return append(append([]any{}, lv...), rv...), nil
		}
	case int:
		if rv, ok := r.(int); ok {
			return lv + rv, nil
		}
	}
	return nil, zerr.New("mismatched operand types for +")
}
