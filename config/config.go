// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/txline/sweep"
	"github.com/katalvlaran/txline/waveguide"
)

// Defaults applied to empty fields.
const (
	DefaultScale  = "linear"
	DefaultFormat = "html"
	DefaultPer    = "cm"
	DefaultPath   = "loss.html"
	DefaultTitle  = "Transmission-line attenuation"
)

// ErrInvalidConfig wraps every structural validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// File is the whole YAML document.
type File struct {
	Sweep  SweepSpec  `yaml:"sweep"`
	Output OutputSpec `yaml:"output"`
	Lines  []LineSpec `yaml:"lines" validate:"required,min=1,dive"`
}

// SweepSpec describes the frequency grid.
type SweepSpec struct {
	Start  float64 `yaml:"start" validate:"gt=0"`
	Stop   float64 `yaml:"stop" validate:"gtefield=Start"`
	Points int     `yaml:"points" validate:"min=1,max=1000000"`
	Scale  string  `yaml:"scale" validate:"oneof=linear log"`
}

// OutputSpec describes the report.
type OutputSpec struct {
	Path   string `yaml:"path" validate:"required"`
	Format string `yaml:"format" validate:"oneof=html csv"`
	Per    string `yaml:"per" validate:"oneof=m cm mm"`
	Title  string `yaml:"title"`
}

// LineSpec describes one line. Only the dimensions of its kind are read:
// coax uses A and B, two-wire S and A, parallel-plate S and T.
type LineSpec struct {
	Name       string  `yaml:"name" validate:"required"`
	Kind       string  `yaml:"kind" validate:"required"`
	A          float64 `yaml:"a"`
	B          float64 `yaml:"b"`
	S          float64 `yaml:"s"`
	T          float64 `yaml:"t"`
	Metal      string  `yaml:"metal" validate:"required"`
	Dielectric string  `yaml:"dielectric" validate:"required"`
}

// Default returns the reference sweep: the three demo geometries in copper
// and vacuum from 0.1 to 3 THz, attenuation in dB/cm.
func Default() *File {
	return &File{
		Sweep:  SweepSpec{Start: 0.1e12, Stop: 3e12, Points: 201, Scale: DefaultScale},
		Output: OutputSpec{Path: DefaultPath, Format: DefaultFormat, Per: DefaultPer, Title: DefaultTitle},
		Lines: []LineSpec{
			{Name: "twwg", Kind: "two-wire", S: 3.5e-3, A: 1e-3, Metal: "Cu", Dielectric: "vac"},
			{Name: "coax", Kind: "coax", A: 1e-3, B: 4e-3, Metal: "Cu", Dielectric: "vac"},
			{Name: "ppwg", Kind: "parallel-plate", S: 3e-3, T: 3e-3, Metal: "Cu", Dielectric: "vac"},
		},
	}
}

// Load reads and parses the file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML, fills defaults and validates the structure.
// Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	f.applyDefaults()
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

func (f *File) applyDefaults() {
	if f.Sweep.Scale == "" {
		f.Sweep.Scale = DefaultScale
	}
	if f.Output.Format == "" {
		f.Output.Format = DefaultFormat
	}
	if f.Output.Per == "" {
		f.Output.Per = DefaultPer
	}
	if f.Output.Path == "" {
		f.Output.Path = DefaultPath
	}
	if f.Output.Title == "" {
		f.Output.Title = DefaultTitle
	}
}

// Validate checks the struct tags, kind names and name uniqueness.
func (f *File) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, summarize(err))
	}
	seen := make(map[string]struct{}, len(f.Lines))
	for i, l := range f.Lines {
		if _, err := waveguide.ParseKind(l.Kind); err != nil {
			return fmt.Errorf("%w: lines[%d]: %v", ErrInvalidConfig, i, err)
		}
		if _, dup := seen[l.Name]; dup {
			return fmt.Errorf("%w: lines[%d]: duplicate name %q", ErrInvalidConfig, i, l.Name)
		}
		seen[l.Name] = struct{}{}
	}

	return nil
}

// summarize flattens validator errors into "Namespace: tag=param" items.
func summarize(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msg := ""
	for i, fe := range verrs {
		if i > 0 {
			msg += "; "
		}
		msg += fe.Namespace() + ": " + fe.Tag()
		if p := fe.Param(); p != "" {
			msg += "=" + p
		}
	}

	return msg
}

// Build constructs the waveguide described by l.
func (l LineSpec) Build() (*waveguide.Line, error) {
	kind, err := waveguide.ParseKind(l.Kind)
	if err != nil {
		return nil, fmt.Errorf("config: line %q: %w", l.Name, err)
	}
	var topo waveguide.Topology
	switch kind {
	case waveguide.KindCoax:
		topo = waveguide.Coax{A: l.A, B: l.B}
	case waveguide.KindTwoWire:
		topo = waveguide.TwoWire{S: l.S, A: l.A}
	default:
		topo = waveguide.ParallelPlate{S: l.S, T: l.T}
	}
	ln, err := waveguide.New(topo, l.Metal, l.Dielectric)
	if err != nil {
		return nil, fmt.Errorf("config: line %q: %w", l.Name, err)
	}

	return ln, nil
}

// BuildLines constructs every line in document order.
func (f *File) BuildLines() ([]sweep.Named, error) {
	out := make([]sweep.Named, 0, len(f.Lines))
	for _, l := range f.Lines {
		ln, err := l.Build()
		if err != nil {
			return nil, err
		}
		out = append(out, sweep.Named{Name: l.Name, Line: ln})
	}

	return out, nil
}

// Grid returns the frequency grid described by s.
func (s SweepSpec) Grid() ([]float64, error) {
	if s.Scale == "log" {
		return sweep.Logspace(s.Start, s.Stop, s.Points)
	}

	return sweep.Linspace(s.Start, s.Stop, s.Points)
}

// Unit returns the reporting length unit.
func (o OutputSpec) Unit() (sweep.LengthUnit, error) {
	return sweep.ParseLengthUnit(o.Per)
}
