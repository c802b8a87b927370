package scene

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-light-bridge/pkg/core"
	"github.com/df07/go-light-bridge/pkg/geometry"
	"github.com/df07/go-light-bridge/pkg/host"
	"github.com/df07/go-light-bridge/pkg/lights"
	"github.com/df07/go-light-bridge/pkg/material"
)

// Prop is the host object of a rig prop
type Prop struct {
	Hidden   bool
	Material material.Material // nil for the default surface

	mesh     *host.Mesh // procedural props
	ref      host.MeshRef
	resolver host.MeshResolver
}

func (p *Prop) ClassName() string {
	return "Prop"
}

// RenderMesh returns the prop mesh, loading file meshes on demand
func (p *Prop) RenderMesh(t host.TimeValue) (*host.Mesh, bool) {
	if p.mesh != nil {
		return p.mesh, true
	}
	if p.ref == "" || p.resolver == nil {
		return nil, false
	}
	return p.resolver.ResolveMesh(p.ref, t)
}

// Built is a rig instanced as host objects
type Built struct {
	Scene  *host.Scene
	Lights []*lights.PhysicalLight
	Props  []*Prop
}

// Build creates a host scene from the rig. Prop meshes stored in files are
// resolved through files when they are first needed.
func (r *Rig) Build(files host.MeshResolver) (*Built, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	b := &Built{Scene: &host.Scene{}}

	for i := range r.Props {
		spec := &r.Props[i]
		prop, err := spec.build(files)
		if err != nil {
			return nil, fmt.Errorf("prop %q: %w", spec.Name, err)
		}
		node := host.NewNode(spec.Name, prop)
		node.Transform = nodeTransform(spec.Position, spec.Rotation)
		b.Scene.Add(node)
		b.Props = append(b.Props, prop)
	}

	for i := range r.Lights {
		spec := &r.Lights[i]
		light := lights.NewPhysicalLight()
		if err := spec.apply(light.Params); err != nil {
			return nil, fmt.Errorf("light %q: %w", spec.Name, err)
		}
		node := host.NewNode(spec.Name, light)
		node.Transform = nodeTransform(spec.Position, spec.Rotation)
		b.Scene.Add(node)
		b.Lights = append(b.Lights, light)
	}
	return b, nil
}

// nodeTransform places a node at position with XYZ euler rotation in degrees
func nodeTransform(position, rotation []float64) mgl32.Mat4 {
	tm := mgl32.Ident4()
	if len(position) == 3 {
		tm = mgl32.Translate3D(float32(position[0]), float32(position[1]), float32(position[2]))
	}
	if len(rotation) == 3 {
		q := mgl32.AnglesToQuat(
			mgl32.DegToRad(float32(rotation[0])),
			mgl32.DegToRad(float32(rotation[1])),
			mgl32.DegToRad(float32(rotation[2])),
			mgl32.XYZ,
		)
		tm = tm.Mul4(q.Mat4())
	}
	return tm
}

// apply writes the spec into a physical light parameter block
func (l *LightSpec) apply(pb *host.ParamBlock) error {
	if l.Enabled != nil {
		pb.SetBool(lights.ParamEnabled, *l.Enabled)
	}
	if l.Type != "" {
		lt, err := lights.ParseLightType(l.Type)
		if err != nil {
			return err
		}
		pb.SetInt(lights.ParamLightType, int(lt))
	}

	shape := l.Shape
	if shape == "" && l.Mesh != "" {
		shape = lights.ShapeMesh.String()
	}
	if shape != "" {
		sm, err := lights.ParseShapeMode(shape)
		if err != nil {
			return err
		}
		pb.SetInt(lights.ParamAreaShape, int(sm))
	}
	if l.Mesh != "" {
		pb.SetRef(lights.ParamLightMesh, host.MeshRef(l.Mesh))
	}

	if l.Units != "" {
		u, err := lights.ParseIntensityUnits(l.Units)
		if err != nil {
			return err
		}
		pb.SetInt(lights.ParamIntensityUnits, int(u))
	}

	mode := l.ColourMode
	if mode == "" && l.Temperature != nil {
		mode = lights.ColourModeTemperature.String()
	}
	if mode != "" {
		cm, err := lights.ParseColourMode(mode)
		if err != nil {
			return err
		}
		pb.SetInt(lights.ParamColourMode, int(cm))
	}
	if len(l.Colour) == 3 {
		pb.SetColor(lights.ParamColour, core.NewVec3(l.Colour[0], l.Colour[1], l.Colour[2]))
	}

	floats := []struct {
		id host.ParamID
		v  *float64
	}{
		{lights.ParamIntensity, l.Intensity},
		{lights.ParamTemperature, l.Temperature},
		{lights.ParamEfficacy, l.Efficacy},
		{lights.ParamWidth, l.Width},
		{lights.ParamLength, l.Length},
		{lights.ParamInnerCone, l.InnerCone},
		{lights.ParamOuterCone, l.OuterCone},
	}
	for _, f := range floats {
		if f.v != nil {
			pb.SetFloat(f.id, *f.v)
		}
	}

	bools := []struct {
		id host.ParamID
		v  *bool
	}{
		{lights.ParamUpright, l.Upright},
		{lights.ParamVisible, l.Visible},
		{lights.ParamDoubleSided, l.DoubleSided},
	}
	for _, b := range bools {
		if b.v != nil {
			pb.SetBool(b.id, *b.v)
		}
	}

	for _, k := range l.Keys {
		if err := k.apply(pb); err != nil {
			return err
		}
	}
	return nil
}

// apply adds the key after any static value so the track wins
func (k *KeySpec) apply(pb *host.ParamBlock) error {
	def, ok := pb.Desc().Lookup(k.Param)
	if !ok {
		return fmt.Errorf("unknown parameter %q", k.Param)
	}
	t := host.FrameTime(k.Frame)
	switch def.Type {
	case host.TypeFloat:
		if k.Value == nil {
			return fmt.Errorf("%s key needs a value", k.Param)
		}
		pb.AddFloatKey(def.ID, t, *k.Value)
	case host.TypeColor:
		if len(k.Colour) != 3 {
			return fmt.Errorf("%s key needs a 3 component colour", k.Param)
		}
		pb.AddColorKey(def.ID, t, core.NewVec3(k.Colour[0], k.Colour[1], k.Colour[2]))
	default:
		return fmt.Errorf("parameter %q cannot be animated", k.Param)
	}
	return nil
}

// propShapes builds procedural prop meshes from up to two size values
var propShapes = map[string]func(size []float64) *geometry.Mesh{
	"rectangle": func(size []float64) *geometry.Mesh {
		half := mgl32.Vec2{float32(sizeAt(size, 0) / 2), float32(sizeAt(size, 1) / 2)}
		return geometry.Rectangle(half.Mul(-1), half)
	},
	"disc": func(size []float64) *geometry.Mesh {
		return geometry.Disc(float32(sizeAt(size, 0) / 2))
	},
	"sphere": func(size []float64) *geometry.Mesh {
		return geometry.Sphere(float32(sizeAt(size, 0) / 2))
	},
	"cylinder": func(size []float64) *geometry.Mesh {
		return geometry.Cylinder(float32(sizeAt(size, 0)/2), float32(sizeAt(size, 1)))
	},
}

// sizeAt returns size[i], repeating the last value and defaulting to 1
func sizeAt(size []float64, i int) float64 {
	switch {
	case len(size) == 0:
		return 1
	case i < len(size):
		return size[i]
	default:
		return size[len(size)-1]
	}
}

func (p *PropSpec) build(files host.MeshResolver) (*Prop, error) {
	prop := &Prop{Hidden: p.Hidden}
	if p.Material != nil {
		m, err := p.Material.build()
		if err != nil {
			return nil, err
		}
		prop.Material = m
	}

	if p.Mesh != "" {
		prop.ref = host.MeshRef(p.Mesh)
		prop.resolver = files
		return prop, nil
	}

	gen, ok := propShapes[strings.ToLower(p.Shape)]
	if !ok {
		return nil, fmt.Errorf("unknown shape %q", p.Shape)
	}
	prop.mesh = toHostMesh(gen(p.Size))
	return prop, nil
}

// toHostMesh fan-triangulates generated geometry into a host mesh
func toHostMesh(m *geometry.Mesh) *host.Mesh {
	out := &host.Mesh{Verts: m.Points}
	off := 0
	for _, n := range m.FaceCounts {
		for k := 1; k+1 < int(n); k++ {
			out.Faces = append(out.Faces, host.Face{V: [3]int32{
				m.Indices[off], m.Indices[off+k], m.Indices[off+k+1],
			}})
		}
		off += int(n)
	}
	return out
}

func (m *MaterialSpec) colour() (material.ColorSource, error) {
	if m.Fresnel != nil {
		node, err := m.Fresnel.build()
		if err != nil {
			return material.ColorSource{}, err
		}
		return material.NewNodeColor(node), nil
	}
	return m.solidColour(), nil
}

func (m *MaterialSpec) solidColour() material.ColorSource {
	if m.Map != "" {
		return material.NewMappedColor(m.Map)
	}
	if len(m.Colour) == 3 {
		return material.NewSolidColor(core.NewVec3(m.Colour[0], m.Colour[1], m.Colour[2]))
	}
	return material.NewSolidColor(core.NewVec3(1, 1, 1))
}

func (m *MaterialSpec) build() (material.Material, error) {
	kind := strings.ToLower(m.Type)
	switch kind {
	case "emissive":
		return material.NewEmissive(m.solidColour().Color), nil
	case "add":
		if len(m.Layers) != 2 {
			return nil, fmt.Errorf("add material needs 2 layers, got %d", len(m.Layers))
		}
		a, err := m.Layers[0].build()
		if err != nil {
			return nil, err
		}
		b, err := m.Layers[1].build()
		if err != nil {
			return nil, err
		}
		return &material.Add{Material1: a, Material2: b}, nil
	}

	colour, err := m.colour()
	if err != nil {
		return nil, err
	}
	switch kind {
	case "diffuse":
		return &material.Diffuse{Albedo: colour, NormalMap: m.NormalMap}, nil
	case "transparent":
		return &material.Transparent{Color: colour}, nil
	case "refraction":
		ior := m.IOR
		if ior == 0 {
			ior = 1.5
		}
		return &material.MicrofacetRefraction{
			Color:     colour,
			Roughness: material.ScalarSource{Value: m.Roughness},
			IOR:       ior,
			NormalMap: m.NormalMap,
		}, nil
	default:
		return nil, fmt.Errorf("unknown material type %q", m.Type)
	}
}

func (f *FresnelSpec) build() (material.ValueSource, error) {
	switch strings.ToLower(f.Type) {
	case "fresnel":
		ior := f.IOR
		if ior == 0 {
			ior = 1.5
		}
		return &material.Fresnel{
			IOR:       material.ScalarSource{Value: ior},
			NormalMap: f.NormalMap,
			InvecMap:  f.InvecMap,
		}, nil
	case "schlick":
		refl := core.NewVec3(1, 1, 1)
		if len(f.Reflectance) == 3 {
			refl = core.NewVec3(f.Reflectance[0], f.Reflectance[1], f.Reflectance[2])
		}
		return &material.FresnelSchlick{
			Reflectance: material.NewSolidColor(refl),
			NormalMap:   f.NormalMap,
			InvecMap:    f.InvecMap,
		}, nil
	default:
		return nil, fmt.Errorf("unknown fresnel type %q", f.Type)
	}
}
