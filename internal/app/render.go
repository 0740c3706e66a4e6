package app

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/sdkcompat/internal/core/domain"
	"go.trai.ch/sdkcompat/internal/ui/output"
	"go.trai.ch/sdkcompat/internal/ui/style"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Format selects how reports are rendered.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatYAML, FormatJSON:
		return f, nil
	default:
		return "", zerr.With(domain.ErrUnsupportedOutputFormat, "format", s)
	}
}

// RenderReport writes report to w in the given format.
func RenderReport(w io.Writer, report *domain.Report, format Format) error {
	if format != FormatText {
		return encode(w, report, format)
	}

	p := newPrinter(w)
	for _, pr := range report.Projects {
		name := p.bold(pr.Project) + p.kind(pr.Kind)
		switch {
		case pr.Skipped:
			p.line(name + " " + p.muted("skipped"))
		default:
			p.line(name + " " + p.muted("compileSdk "+strconv.Itoa(pr.CompileSdk)))
		}

		for _, s := range pr.Selections {
			subject := s.Configuration + " " + s.Dependency
			if s.Error != "" {
				p.line("  " + p.colored(style.Cross, style.Red) + " " + subject + " " + p.colored(s.Error, style.Red))
				continue
			}
			p.line("  " + p.colored(style.Dot, style.Accent) + " " + subject + " " + style.Arrow + " " + s.Variant)
			for _, add := range s.Adds {
				p.line("      + " + add)
			}
		}
	}

	if !slices.ContainsFunc(report.Rewrites, func(r domain.RewriteRecord) bool { return r.Applied }) {
		return p.err
	}

	p.line("")
	p.line(p.bold("rewrites"))
	for _, r := range report.Rewrites {
		if !r.Applied {
			continue
		}
		msg := r.Component + " " + style.Arrow + " " + r.Variant + " " + p.muted("(floor "+strconv.Itoa(r.Floor)+")")
		if r.Cached {
			msg += " " + p.muted("cached")
		}
		p.line("  " + p.colored(style.Check, style.Green) + " " + msg)
	}
	return p.err
}

// RenderDetections writes detections to w in the given format.
func RenderDetections(w io.Writer, detections []Detection, format Format) error {
	if format != FormatText {
		return encode(w, detections, format)
	}

	p := newPrinter(w)
	for _, d := range detections {
		name := d.Project + p.kind(d.Kind)
		switch {
		case d.Error != "":
			p.line(p.colored(style.Cross, style.Red) + " " + name + " " + p.colored(d.Error, style.Red))
		case d.Found:
			p.line(p.colored(style.Check, style.Green) + " " + name + " " + style.Arrow + " " + strconv.Itoa(d.CompileSdk))
		default:
			p.line(p.colored(style.Warning, style.Yellow) + " " + name + " " + p.muted("not an Android project"))
		}
	}
	return p.err
}

// RenderProgress writes one line per recorded step. Steps that never
// finished are shown as pending.
func RenderProgress(w io.Writer, steps []domain.Step) error {
	p := newPrinter(w)
	for _, s := range steps {
		switch {
		case s.Error != "":
			p.line(p.colored(style.Cross, style.Red) + " " + s.Name + " " + p.colored(s.Error, style.Red))
		case !s.Done:
			p.line(p.colored(style.Dot, style.Yellow) + " " + s.Name + " " + p.muted("pending"))
		case s.Cached:
			p.line(p.colored(style.Check, style.Green) + " " + s.Name + " " + p.muted("cached"))
		default:
			p.line(p.colored(style.Check, style.Green) + " " + s.Name)
		}
	}
	return p.err
}

func encode(w io.Writer, v any, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return zerr.Wrap(err, "failed to encode json")
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return zerr.Wrap(err, "failed to encode yaml")
		}
		return enc.Close()
	default:
		return zerr.With(domain.ErrUnsupportedOutputFormat, "format", string(format))
	}
}

// printer keeps the first write error so callers can check it once.
type printer struct {
	out *termenv.Output
	err error
}

func newPrinter(w io.Writer) *printer {
	return &printer{out: output.New(w)}
}

func (p *printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.out, s)
}

func (p *printer) bold(s string) string {
	return p.out.String(s).Bold().String()
}

// kind renders " (library)" style suffixes; non-Android projects get none.
func (p *printer) kind(k domain.ProjectKind) string {
	if k == "" {
		return ""
	}
	return " " + p.muted("("+string(k)+")")
}

func (p *printer) muted(s string) string {
	return p.colored(s, style.Slate)
}

func (p *printer) colored(s string, c lipgloss.Color) string {
	return p.out.String(s).Foreground(p.out.Color(string(c))).String()
}
