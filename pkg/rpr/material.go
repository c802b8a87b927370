package rpr

import "fmt"

// ShaderType selects the renderer material model
type ShaderType int

const (
	ShaderDiffuse ShaderType = iota
	ShaderEmissive
	ShaderTransparent
	ShaderMicrofacetRefraction
	ShaderAdd
)

func (st ShaderType) String() string {
	switch st {
	case ShaderDiffuse:
		return "diffuse"
	case ShaderEmissive:
		return "emissive"
	case ShaderTransparent:
		return "transparent"
	case ShaderMicrofacetRefraction:
		return "microfacet_refraction"
	case ShaderAdd:
		return "add"
	default:
		return fmt.Sprintf("ShaderType(%d)", int(st))
	}
}

// Shader inputs
const (
	InputColor     = "color"
	InputRoughness = "roughness"
	InputIOR       = "ior"
	InputNormal    = "normal"
)

// MapFlags control how texture maps are sampled
type MapFlags uint

const (
	// MapNoGamma samples the texture as linear data
	MapNoGamma MapFlags = 1 << iota
)

// Node is a node in the renderer's material graph
type Node interface {
	NodeKind() string
}

// Value is a shader input: either a constant or the output of a node
type Value struct {
	Const [4]float32
	Node  Node
}

// Float returns a constant value with all components set to v
func Float(v float32) Value {
	return Value{Const: [4]float32{v, v, v, v}}
}

// RGB returns a constant color value
func RGB(r, g, b float32) Value {
	return Value{Const: [4]float32{r, g, b, 1}}
}

// NodeValue wraps a node output
func NodeValue(n Node) Value {
	return Value{Node: n}
}

// IsNode reports whether v comes from a material node
func (v Value) IsNode() bool {
	return v.Node != nil
}

// IsNull reports whether v is the zero value (no constant, no node)
func (v Value) IsNull() bool {
	return v.Node == nil && v.Const == [4]float32{}
}

// Shader is a material node that can be assigned to a Shape
type Shader interface {
	Node
	Type() ShaderType
	SetValue(input string, v Value)
}

// MaterialSystem creates shaders and value nodes
type MaterialSystem interface {
	NewShader(t ShaderType) (Shader, error)
	ShaderAdd(a, b Shader) (Shader, error)
	ValueImage(path string, flags MapFlags) (Value, error)
	ValueNormalMap(image Value, strength float32) (Value, error)
	ValueFresnel(ior, normal, invec Value) (Value, error)
	ValueFresnelSchlick(reflectance, normal, invec Value) (Value, error)
}
