package gltfscene

import (
	"fmt"
	"sort"

	"github.com/qmuntal/gltf"

	"github.com/df07/go-light-bridge/pkg/rpr"
)

// Shader is a material description converted to a glTF material on write
type Shader struct {
	kind   rpr.ShaderType
	inputs map[string]rpr.Value
	a, b   rpr.Shader
}

func (s *Shader) NodeKind() string                   { return "shader:" + s.kind.String() }
func (s *Shader) Type() rpr.ShaderType               { return s.kind }
func (s *Shader) SetValue(input string, v rpr.Value) { s.inputs[input] = v }

// imageNode is a texture reference. Other value nodes have no glTF form and
// are dropped, with a warning, when the material is written.
type imageNode struct {
	path  string
	flags rpr.MapFlags
}

func (n *imageNode) NodeKind() string { return "image" }

type opaqueNode struct {
	kind string
}

func (n *opaqueNode) NodeKind() string { return n.kind }

func (s *Scope) NewShader(t rpr.ShaderType) (rpr.Shader, error) {
	if t < rpr.ShaderDiffuse || t > rpr.ShaderAdd {
		return nil, fmt.Errorf("gltfscene: unknown shader type %v", t)
	}
	return &Shader{kind: t, inputs: make(map[string]rpr.Value)}, nil
}

func (s *Scope) ShaderAdd(a, b rpr.Shader) (rpr.Shader, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("gltfscene: add shader needs two operands")
	}
	return &Shader{kind: rpr.ShaderAdd, inputs: make(map[string]rpr.Value), a: a, b: b}, nil
}

func (s *Scope) ValueImage(path string, flags rpr.MapFlags) (rpr.Value, error) {
	if path == "" {
		return rpr.Value{}, fmt.Errorf("gltfscene: empty image path")
	}
	return rpr.NodeValue(&imageNode{path: path, flags: flags}), nil
}

func (s *Scope) ValueNormalMap(image rpr.Value, strength float32) (rpr.Value, error) {
	return rpr.NodeValue(&opaqueNode{kind: "normal_map"}), nil
}

func (s *Scope) ValueFresnel(ior, normal, invec rpr.Value) (rpr.Value, error) {
	return rpr.NodeValue(&opaqueNode{kind: "fresnel"}), nil
}

func (s *Scope) ValueFresnelSchlick(reflectance, normal, invec rpr.Value) (rpr.Value, error) {
	return rpr.NodeValue(&opaqueNode{kind: "fresnel_schlick"}), nil
}

// material writes a glTF material for s and returns its index
func (b *builder) material(name string, s rpr.Shader) (int, error) {
	m := &gltf.Material{
		Name: name,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float64{1, 1, 1, 1},
			MetallicFactor:  ptr(0.0),
			RoughnessFactor: ptr(1.0),
		},
	}
	if err := b.applyShader(m, s); err != nil {
		return 0, err
	}
	b.doc.Materials = append(b.doc.Materials, m)
	return len(b.doc.Materials) - 1, nil
}

func (b *builder) applyShader(m *gltf.Material, s rpr.Shader) error {
	sh, ok := s.(*Shader)
	if !ok {
		return fmt.Errorf("shader %T belongs to another backend", s)
	}
	pbr := m.PBRMetallicRoughness
	b.warnDropped(m.Name, sh)

	switch sh.kind {
	case rpr.ShaderEmissive:
		// emitters reflect nothing
		pbr.BaseColorFactor = &[4]float64{0, 0, 0, 1}
		b.applyEmission(m, sh.inputs[rpr.InputColor])
	case rpr.ShaderDiffuse:
		b.applyBaseColor(m, sh.inputs[rpr.InputColor])
	case rpr.ShaderTransparent:
		b.applyBaseColor(m, sh.inputs[rpr.InputColor])
		m.AlphaMode = gltf.AlphaBlend
		pbr.BaseColorFactor[3] = 0
	case rpr.ShaderMicrofacetRefraction:
		b.applyBaseColor(m, sh.inputs[rpr.InputColor])
		if v, ok := sh.inputs[rpr.InputRoughness]; ok && !v.IsNode() {
			pbr.RoughnessFactor = ptr(float64(v.Const[0]))
		}
		ext := map[string]any{"transmissionFactor": 1.0}
		b.setExtension(m, ExtMaterialsTransmit, ext)
		if v, ok := sh.inputs[rpr.InputIOR]; ok && !v.IsNode() {
			b.setExtension(m, ExtMaterialsIOR, map[string]any{"ior": float64(v.Const[0])})
		}
	case rpr.ShaderAdd:
		// glTF cannot add two BSDFs: the first operand defines the surface
		// and an emissive operand contributes its emission
		if err := b.applyShader(m, sh.a); err != nil {
			return err
		}
		e, ok := sh.b.(*Shader)
		if !ok || e.kind != rpr.ShaderEmissive {
			b.logger.Printf("Warning: material %q: glTF cannot add a second %s layer, dropped\n", m.Name, shaderKind(sh.b))
			break
		}
		b.warnDropped(m.Name, e)
		b.applyEmission(m, e.inputs[rpr.InputColor])
	default:
		return fmt.Errorf("unknown shader type %v", sh.kind)
	}
	return nil
}

// warnDropped reports every node-valued input of sh that has no glTF form.
// Only a color input sampling an image is written, as a texture.
func (b *builder) warnDropped(material string, sh *Shader) {
	inputs := make([]string, 0, len(sh.inputs))
	for input := range sh.inputs {
		inputs = append(inputs, input)
	}
	sort.Strings(inputs)

	for _, input := range inputs {
		v := sh.inputs[input]
		if !v.IsNode() {
			continue
		}
		if _, ok := v.Node.(*imageNode); ok && input == rpr.InputColor {
			continue
		}
		b.logger.Printf("Warning: material %q: %s input %s has no glTF form, dropped\n", material, input, v.Node.NodeKind())
	}
}

func shaderKind(s rpr.Shader) string {
	if s == nil {
		return "nil"
	}
	return s.Type().String()
}

func (b *builder) applyBaseColor(m *gltf.Material, v rpr.Value) {
	pbr := m.PBRMetallicRoughness
	if img, ok := v.Node.(*imageNode); ok {
		pbr.BaseColorTexture = &gltf.TextureInfo{Index: b.texture(img.path)}
		return
	}
	if v.IsNode() || v.IsNull() {
		return
	}
	pbr.BaseColorFactor = &[4]float64{float64(v.Const[0]), float64(v.Const[1]), float64(v.Const[2]), 1}
}

// applyEmission stores colors brighter than one as a unit color plus
// KHR_materials_emissive_strength
func (b *builder) applyEmission(m *gltf.Material, v rpr.Value) {
	if img, ok := v.Node.(*imageNode); ok {
		m.EmissiveTexture = &gltf.TextureInfo{Index: b.texture(img.path)}
		m.EmissiveFactor = [3]float64{1, 1, 1}
		return
	}
	if v.IsNode() {
		return
	}
	color, peak := splitPeak([3]float32{v.Const[0], v.Const[1], v.Const[2]})
	if peak <= 1 {
		m.EmissiveFactor = [3]float64{float64(v.Const[0]), float64(v.Const[1]), float64(v.Const[2])}
		return
	}
	m.EmissiveFactor = color
	b.setExtension(m, ExtEmissiveStrength, map[string]any{"emissiveStrength": peak})
}

func (b *builder) setExtension(m *gltf.Material, name string, v any) {
	if m.Extensions == nil {
		m.Extensions = gltf.Extensions{}
	}
	m.Extensions[name] = v
	b.used[name] = true
}

// texture returns the texture sampling the image at path, adding it once
func (b *builder) texture(path string) int {
	if idx, ok := b.textures[path]; ok {
		return idx
	}
	b.doc.Images = append(b.doc.Images, &gltf.Image{URI: path})
	b.doc.Textures = append(b.doc.Textures, &gltf.Texture{Source: gltf.Index(len(b.doc.Images) - 1)})
	idx := len(b.doc.Textures) - 1
	b.textures[path] = idx
	return idx
}

func ptr[T any](v T) *T { return &v }
