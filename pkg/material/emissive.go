package material

import (
	"github.com/df07/go-light-bridge/pkg/core"
	"github.com/df07/go-light-bridge/pkg/rpr"
)

// Emissive emits a constant radiance and does not reflect
type Emissive struct {
	Emission core.Vec3
}

// NewEmissive creates an emissive material
func NewEmissive(emission core.Vec3) *Emissive {
	return &Emissive{Emission: emission}
}

// Shader implements Material
func (e *Emissive) Shader(p *Parser) (rpr.Shader, error) {
	s, err := p.newShader(rpr.ShaderEmissive)
	if err != nil {
		return nil, err
	}
	c := e.Emission.Float32()
	s.SetValue(rpr.InputColor, rpr.RGB(c[0], c[1], c[2]))
	return s, nil
}
