package scene

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-light-bridge/pkg/host"
	"github.com/df07/go-light-bridge/pkg/lights"
)

// Rig is a light rig: physical lights and the props they illuminate.
// Rigs are stored as YAML or TOML files.
type Rig struct {
	Name        string  `yaml:"name" toml:"name"`
	Description string  `yaml:"description,omitempty" toml:"description,omitempty"`
	Group       string  `yaml:"group,omitempty" toml:"group,omitempty"`
	UnitScale   float64 `yaml:"unit_scale,omitempty" toml:"unit_scale,omitempty"` // meters per scene unit, 1 if unset
	Frame       int     `yaml:"frame,omitempty" toml:"frame,omitempty"`           // export frame

	Lights []LightSpec `yaml:"lights" toml:"lights"`
	Props  []PropSpec  `yaml:"props,omitempty" toml:"props,omitempty"`

	// BaseDir resolves relative mesh files. LoadRig sets it to the rig's directory.
	BaseDir string `yaml:"-" toml:"-"`
}

// LightSpec describes one physical light. Unset fields keep the light's defaults.
type LightSpec struct {
	Name        string    `yaml:"name" toml:"name"`
	Enabled     *bool     `yaml:"enabled,omitempty" toml:"enabled,omitempty"`
	Type        string    `yaml:"type,omitempty" toml:"type,omitempty"`   // area, spot, point, directional
	Shape       string    `yaml:"shape,omitempty" toml:"shape,omitempty"` // disc, cylinder, sphere, rectangle, mesh
	Intensity   *float64  `yaml:"intensity,omitempty" toml:"intensity,omitempty"`
	Units       string    `yaml:"units,omitempty" toml:"units,omitempty"` // watts, luminance, radiance, lumen
	ColourMode  string    `yaml:"colour_mode,omitempty" toml:"colour_mode,omitempty"`
	Colour      []float64 `yaml:"colour,omitempty,flow" toml:"colour,omitempty"`
	Temperature *float64  `yaml:"temperature,omitempty" toml:"temperature,omitempty"`
	Efficacy    *float64  `yaml:"efficacy,omitempty" toml:"efficacy,omitempty"`
	Width       *float64  `yaml:"width,omitempty" toml:"width,omitempty"`
	Length      *float64  `yaml:"length,omitempty" toml:"length,omitempty"`
	Upright     *bool     `yaml:"upright,omitempty" toml:"upright,omitempty"`
	Visible     *bool     `yaml:"visible,omitempty" toml:"visible,omitempty"`
	DoubleSided *bool     `yaml:"double_sided,omitempty" toml:"double_sided,omitempty"`
	Mesh        string    `yaml:"mesh,omitempty" toml:"mesh,omitempty"` // prop name or mesh file
	InnerCone   *float64  `yaml:"inner_cone,omitempty" toml:"inner_cone,omitempty"`
	OuterCone   *float64  `yaml:"outer_cone,omitempty" toml:"outer_cone,omitempty"`

	Position []float64 `yaml:"position,omitempty,flow" toml:"position,omitempty"`
	Rotation []float64 `yaml:"rotation,omitempty,flow" toml:"rotation,omitempty"` // XYZ euler degrees

	Keys []KeySpec `yaml:"keys,omitempty" toml:"keys,omitempty"`
}

// KeySpec animates one float or colour parameter of a light, addressed by
// its parameter name
type KeySpec struct {
	Frame  int       `yaml:"frame" toml:"frame"`
	Param  string    `yaml:"param" toml:"param"`
	Value  *float64  `yaml:"value,omitempty" toml:"value,omitempty"`
	Colour []float64 `yaml:"colour,omitempty,flow" toml:"colour,omitempty"`
}

// PropSpec is a mesh placed in the scene. Mesh lights can reference props by
// name; hidden props only serve as emitter shapes.
type PropSpec struct {
	Name     string        `yaml:"name" toml:"name"`
	Mesh     string        `yaml:"mesh,omitempty" toml:"mesh,omitempty"`   // mesh file
	Shape    string        `yaml:"shape,omitempty" toml:"shape,omitempty"` // rectangle, disc, cylinder, sphere
	Size     []float64     `yaml:"size,omitempty,flow" toml:"size,omitempty"`
	Position []float64     `yaml:"position,omitempty,flow" toml:"position,omitempty"`
	Rotation []float64     `yaml:"rotation,omitempty,flow" toml:"rotation,omitempty"`
	Hidden   bool          `yaml:"hidden,omitempty" toml:"hidden,omitempty"`
	Material *MaterialSpec `yaml:"material,omitempty" toml:"material,omitempty"`
}

// MaterialSpec describes a prop surface
type MaterialSpec struct {
	Type      string         `yaml:"type" toml:"type"` // diffuse, transparent, refraction, emissive, add
	Colour    []float64      `yaml:"colour,omitempty,flow" toml:"colour,omitempty"`
	Map       string         `yaml:"map,omitempty" toml:"map,omitempty"`
	Roughness float64        `yaml:"roughness,omitempty" toml:"roughness,omitempty"`
	IOR       float64        `yaml:"ior,omitempty" toml:"ior,omitempty"`
	NormalMap string         `yaml:"normal_map,omitempty" toml:"normal_map,omitempty"`
	Fresnel   *FresnelSpec   `yaml:"fresnel,omitempty" toml:"fresnel,omitempty"`
	Layers    []MaterialSpec `yaml:"layers,omitempty" toml:"layers,omitempty"`
}

// FresnelSpec drives a material colour with a view-dependent Fresnel term.
// Type "fresnel" uses IOR (default 1.5); "schlick" uses the normal-incidence
// Reflectance (default white).
type FresnelSpec struct {
	Type        string    `yaml:"type" toml:"type"`
	IOR         float64   `yaml:"ior,omitempty" toml:"ior,omitempty"`
	Reflectance []float64 `yaml:"reflectance,omitempty,flow" toml:"reflectance,omitempty"`
	NormalMap   string    `yaml:"normal_map,omitempty" toml:"normal_map,omitempty"`
	InvecMap    string    `yaml:"invec_map,omitempty" toml:"invec_map,omitempty"`
}

// Rig file formats
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// FormatForPath returns the rig format implied by a file extension
func FormatForPath(path string) (string, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".toml":
		return FormatTOML, true
	default:
		return "", false
	}
}

// LoadRig reads and validates a rig file
func LoadRig(path string) (*Rig, error) {
	format, ok := FormatForPath(path)
	if !ok {
		return nil, fmt.Errorf("unsupported rig file %s: want .yaml, .yml or .toml", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rig: %w", err)
	}
	rig, err := ParseRig(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	rig.BaseDir = filepath.Dir(path)
	return rig, nil
}

// ParseRig decodes and validates a rig. Unknown fields are errors.
func ParseRig(data []byte, format string) (*Rig, error) {
	rig := &Rig{}
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(rig); err != nil {
			return nil, fmt.Errorf("failed to decode rig: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(rig); err != nil {
			return nil, fmt.Errorf("failed to decode rig: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown rig format %q", format)
	}
	if err := rig.Validate(); err != nil {
		return nil, err
	}
	return rig, nil
}

// Encode writes the rig in the given format
func (r *Rig) Encode(format string) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return nil, fmt.Errorf("failed to encode rig: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatTOML:
		data, err := toml.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("failed to encode rig: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown rig format %q", format)
	}
}

// Validate checks names, enum values and vector sizes
func (r *Rig) Validate() error {
	var errs []error
	names := make(map[string]bool)
	claim := func(what, name string) {
		if name == "" {
			errs = append(errs, fmt.Errorf("%s without a name", what))
			return
		}
		if names[name] {
			errs = append(errs, fmt.Errorf("duplicate name %q", name))
		}
		names[name] = true
	}

	if r.UnitScale < 0 {
		errs = append(errs, fmt.Errorf("negative unit_scale %g", r.UnitScale))
	}
	for _, l := range r.Lights {
		claim("light", l.Name)
		if err := l.validate(); err != nil {
			errs = append(errs, fmt.Errorf("light %q: %w", l.Name, err))
		}
	}
	for _, p := range r.Props {
		claim("prop", p.Name)
		if err := p.validate(); err != nil {
			errs = append(errs, fmt.Errorf("prop %q: %w", p.Name, err))
		}
	}
	return errors.Join(errs...)
}

func (l *LightSpec) validate() error {
	if l.Type != "" {
		if _, err := lights.ParseLightType(l.Type); err != nil {
			return err
		}
	}
	if l.Shape != "" {
		if _, err := lights.ParseShapeMode(l.Shape); err != nil {
			return err
		}
	}
	if l.Units != "" {
		if _, err := lights.ParseIntensityUnits(l.Units); err != nil {
			return err
		}
	}
	if l.ColourMode != "" {
		if _, err := lights.ParseColourMode(l.ColourMode); err != nil {
			return err
		}
	}
	for _, v := range []struct {
		name string
		vec  []float64
	}{{"colour", l.Colour}, {"position", l.Position}, {"rotation", l.Rotation}} {
		if v.vec != nil && len(v.vec) != 3 {
			return fmt.Errorf("%s needs 3 components, got %d", v.name, len(v.vec))
		}
	}
	for i, k := range l.Keys {
		if err := k.validate(); err != nil {
			return fmt.Errorf("key %d: %w", i, err)
		}
	}
	return nil
}

func (k *KeySpec) validate() error {
	def, ok := lights.PhysicalLightDesc.Lookup(k.Param)
	if !ok {
		return fmt.Errorf("unknown parameter %q", k.Param)
	}
	switch def.Type {
	case host.TypeFloat:
		if k.Value == nil {
			return fmt.Errorf("%s key needs a value", k.Param)
		}
	case host.TypeColor:
		if len(k.Colour) != 3 {
			return fmt.Errorf("%s key needs a 3 component colour", k.Param)
		}
	default:
		return fmt.Errorf("parameter %q cannot be animated", k.Param)
	}
	return nil
}

func (p *PropSpec) validate() error {
	switch {
	case p.Mesh != "" && p.Shape != "":
		return errors.New("mesh and shape are exclusive")
	case p.Mesh == "" && p.Shape == "":
		return errors.New("needs a mesh or a shape")
	}
	if p.Shape != "" {
		if _, ok := propShapes[strings.ToLower(p.Shape)]; !ok {
			return fmt.Errorf("unknown shape %q", p.Shape)
		}
	}
	for _, v := range []struct {
		name string
		vec  []float64
	}{{"position", p.Position}, {"rotation", p.Rotation}} {
		if v.vec != nil && len(v.vec) != 3 {
			return fmt.Errorf("%s needs 3 components, got %d", v.name, len(v.vec))
		}
	}
	if p.Material != nil {
		return p.Material.validate()
	}
	return nil
}

func (m *MaterialSpec) validate() error {
	if m.Colour != nil && len(m.Colour) != 3 {
		return fmt.Errorf("material colour needs 3 components, got %d", len(m.Colour))
	}
	if m.Fresnel != nil {
		switch strings.ToLower(m.Type) {
		case "emissive", "add":
			return fmt.Errorf("%s material cannot take a fresnel colour", m.Type)
		}
		if m.Map != "" {
			return errors.New("material map and fresnel are mutually exclusive")
		}
		if err := m.Fresnel.validate(); err != nil {
			return err
		}
	}
	switch strings.ToLower(m.Type) {
	case "diffuse", "transparent", "refraction", "emissive":
		return nil
	case "add":
		if len(m.Layers) != 2 {
			return fmt.Errorf("add material needs 2 layers, got %d", len(m.Layers))
		}
		for i := range m.Layers {
			if err := m.Layers[i].validate(); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown material type %q", m.Type)
	}
}

func (f *FresnelSpec) validate() error {
	switch strings.ToLower(f.Type) {
	case "fresnel":
		if f.IOR < 0 {
			return fmt.Errorf("fresnel ior must not be negative, got %g", f.IOR)
		}
	case "schlick":
		if f.Reflectance != nil && len(f.Reflectance) != 3 {
			return fmt.Errorf("fresnel reflectance needs 3 components, got %d", len(f.Reflectance))
		}
	default:
		return fmt.Errorf("unknown fresnel type %q", f.Type)
	}
	return nil
}
