package memory

import (
	"fmt"

	"github.com/df07/go-light-bridge/pkg/rpr"
)

// Shader is a recorded shader node
type Shader struct {
	Kind   rpr.ShaderType
	Inputs map[string]rpr.Value
	// A and B are the operands of an add shader
	A, B rpr.Shader
}

func (s *Shader) NodeKind() string                  { return "shader:" + s.Kind.String() }
func (s *Shader) Type() rpr.ShaderType              { return s.Kind }
func (s *Shader) SetValue(input string, v rpr.Value) { s.Inputs[input] = v }

// Color returns the constant color input, if any
func (s *Shader) Color() ([3]float32, bool) {
	v, ok := s.Inputs[rpr.InputColor]
	if !ok || v.IsNode() {
		return [3]float32{}, false
	}
	return [3]float32{v.Const[0], v.Const[1], v.Const[2]}, true
}

// ValueNode is a recorded non-shader material node
type ValueNode struct {
	Kind     string
	Path     string
	Flags    rpr.MapFlags
	Strength float32
	Inputs   map[string]rpr.Value
}

func (v *ValueNode) NodeKind() string { return v.Kind }

// Value node kinds
const (
	NodeImage          = "image"
	NodeNormalMap      = "normal_map"
	NodeFresnel        = "fresnel"
	NodeFresnelSchlick = "fresnel_schlick"
)

func (s *Scope) NewShader(t rpr.ShaderType) (rpr.Shader, error) {
	if s.FailCreate {
		return nil, ErrInjected
	}
	if t < rpr.ShaderDiffuse || t > rpr.ShaderAdd {
		return nil, fmt.Errorf("memory: unknown shader type %v", t)
	}
	sh := &Shader{Kind: t, Inputs: make(map[string]rpr.Value)}
	s.Shaders = append(s.Shaders, sh)
	s.record("NewShader(%s)", t)
	return sh, nil
}

func (s *Scope) ShaderAdd(a, b rpr.Shader) (rpr.Shader, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("memory: add shader needs two operands")
	}
	shader, err := s.NewShader(rpr.ShaderAdd)
	if err != nil {
		return nil, err
	}
	sh := shader.(*Shader)
	sh.A, sh.B = a, b
	return sh, nil
}

func (s *Scope) newValue(n *ValueNode) (rpr.Value, error) {
	if s.FailCreate {
		return rpr.Value{}, ErrInjected
	}
	if n.Inputs == nil {
		n.Inputs = make(map[string]rpr.Value)
	}
	s.Values = append(s.Values, n)
	s.record("Value(%s)", n.Kind)
	return rpr.NodeValue(n), nil
}

func (s *Scope) ValueImage(path string, flags rpr.MapFlags) (rpr.Value, error) {
	if path == "" {
		return rpr.Value{}, fmt.Errorf("memory: empty image path")
	}
	return s.newValue(&ValueNode{Kind: NodeImage, Path: path, Flags: flags})
}

func (s *Scope) ValueNormalMap(image rpr.Value, strength float32) (rpr.Value, error) {
	return s.newValue(&ValueNode{
		Kind:     NodeNormalMap,
		Strength: strength,
		Inputs:   map[string]rpr.Value{"image": image},
	})
}

func (s *Scope) ValueFresnel(ior, normal, invec rpr.Value) (rpr.Value, error) {
	return s.newValue(&ValueNode{
		Kind:   NodeFresnel,
		Inputs: map[string]rpr.Value{"ior": ior, "normal": normal, "invec": invec},
	})
}

func (s *Scope) ValueFresnelSchlick(reflectance, normal, invec rpr.Value) (rpr.Value, error) {
	return s.newValue(&ValueNode{
		Kind:   NodeFresnelSchlick,
		Inputs: map[string]rpr.Value{"reflectance": reflectance, "normal": normal, "invec": invec},
	})
}
