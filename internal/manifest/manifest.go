// Package manifest loads build manifests for glslangc.
//
// A manifest lists the shaders to compile together with shared defaults:
//
//	target: vulkan1.2
//	spirv: "1.5"
//	include: [shaders/include]
//	out_dir: build/spv
//	shaders:
//	  - source: shaders/mesh.vert
//	  - source: shaders/lit.frag.glsl
//	    output: lit.spv
//	    size_optimized: true
//
// YAML (.yaml, .yml) and TOML (.toml) documents are accepted. Relative paths
// are resolved against the manifest's directory.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Manifest is a set of shaders and the defaults they share.
type Manifest struct {
	// Target is the default client, e.g. "vulkan1.2", "opengl4.5" or "none".
	Target string `yaml:"target" toml:"target" validate:"omitempty,target"`

	// SPIRV is the default SPIR-V version, e.g. "1.5". Empty means the
	// target's default.
	SPIRV string `yaml:"spirv" toml:"spirv" validate:"omitempty,spirv"`

	// Include lists directories searched for #include.
	Include []string `yaml:"include" toml:"include" validate:"dive,required"`

	// Limits names a YAML file of resource limits. Empty means defaults.
	Limits string `yaml:"limits" toml:"limits"`

	// OutDir receives outputs that do not name an absolute path.
	OutDir string `yaml:"out_dir" toml:"out_dir"`

	// Jobs bounds concurrent compilations. Zero means one per CPU.
	Jobs int `yaml:"jobs" toml:"jobs" validate:"gte=0"`

	Shaders []Shader `yaml:"shaders" toml:"shaders" validate:"required,min=1,dive"`

	dir string
}

// Shader is one compilation unit of a manifest.
type Shader struct {
	Source string `yaml:"source" toml:"source" validate:"required"`

	// Stage overrides the stage inferred from the source extension.
	Stage string `yaml:"stage" toml:"stage" validate:"omitempty,stage"`

	// Output defaults to the source base name with a .spv suffix.
	Output string `yaml:"output" toml:"output"`

	Target        string `yaml:"target" toml:"target" validate:"omitempty,target"`
	SPIRV         string `yaml:"spirv" toml:"spirv" validate:"omitempty,spirv"`
	SizeOptimized bool   `yaml:"size_optimized" toml:"size_optimized"`
}

// Format is a manifest encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("manifest: unsupported extension %q", filepath.Ext(path))
	}
}

// Load reads, decodes and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	m, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.dir = filepath.Dir(path)
	return m, nil
}

// Parse decodes and validates a manifest. Relative paths are left as
// written; use Load to anchor them to a directory.
func Parse(data []byte, format Format) (*Manifest, error) {
	var m Manifest
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil {
			return nil, fmt.Errorf("manifest: decode yaml: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&m); err != nil {
			return nil, fmt.Errorf("manifest: decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("manifest: unknown format %d", format)
	}

	if err := validate.Struct(&m); err != nil {
		return nil, validationError(err)
	}
	return &m, nil
}

// Resolve anchors p to the manifest's directory unless it is absolute.
func (m *Manifest) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || m.dir == "" {
		return p
	}
	return filepath.Join(m.dir, p)
}

// IncludeDirs returns the include directories resolved against the
// manifest's directory.
func (m *Manifest) IncludeDirs() []string {
	dirs := make([]string, len(m.Include))
	for i, d := range m.Include {
		dirs[i] = m.Resolve(d)
	}
	return dirs
}

// OutputPath returns where the SPIR-V for s is written.
func (m *Manifest) OutputPath(s Shader) string {
	out := s.Output
	if out == "" {
		base := filepath.Base(s.Source)
		base = strings.TrimSuffix(base, ".glsl")
		base = strings.TrimSuffix(base, ".hlsl")
		out = base + ".spv"
	}
	if filepath.IsAbs(out) {
		return out
	}
	if m.OutDir != "" {
		return m.Resolve(filepath.Join(m.OutDir, out))
	}
	return m.Resolve(filepath.Join(filepath.Dir(s.Source), out))
}

// TargetFor returns the effective target and SPIR-V version of s.
func (m *Manifest) TargetFor(s Shader) (target, spirv string) {
	target, spirv = m.Target, m.SPIRV
	if s.Target != "" {
		target = s.Target
	}
	if s.SPIRV != "" {
		spirv = s.SPIRV
	}
	return target, spirv
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("manifest: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: failed %q (%s)", fe.Namespace(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
		}
	}
	return fmt.Errorf("manifest: invalid: %s", strings.Join(msgs, "; "))
}
