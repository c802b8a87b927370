package material

import (
	"github.com/df07/go-light-bridge/pkg/core"
	"github.com/df07/go-light-bridge/pkg/rpr"
)

// ColorSource is a constant color optionally overridden by a texture map or
// a procedural value node. The node wins over the map.
type ColorSource struct {
	Color core.Vec3
	Map   string // texture path; empty for none
	Node  ValueSource
}

// NewSolidColor creates a color source without a map
func NewSolidColor(color core.Vec3) ColorSource {
	return ColorSource{Color: color}
}

// NewMappedColor creates a color source sampling a texture
func NewMappedColor(path string) ColorSource {
	return ColorSource{Map: path}
}

// NewNodeColor creates a color source driven by a value node such as a Fresnel term
func NewNodeColor(node ValueSource) ColorSource {
	return ColorSource{Color: core.NewVec3(1, 1, 1), Node: node}
}

// value returns the node or map when present, the constant color otherwise
func (cs ColorSource) value(p *Parser, flags rpr.MapFlags) (rpr.Value, error) {
	if cs.Node != nil {
		return p.Value(cs.Node)
	}
	if cs.Map != "" {
		return p.CreateMap(cs.Map, flags)
	}
	c := cs.Color.Float32()
	return rpr.RGB(c[0], c[1], c[2]), nil
}

// ScalarSource is a constant scalar optionally overridden by a texture map
type ScalarSource struct {
	Value float64
	Map   string
}

func (ss ScalarSource) value(p *Parser, flags rpr.MapFlags) (rpr.Value, error) {
	if ss.Map != "" {
		return p.CreateMap(ss.Map, flags)
	}
	return rpr.Float(float32(ss.Value)), nil
}
