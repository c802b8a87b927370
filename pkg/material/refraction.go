package material

import "github.com/df07/go-light-bridge/pkg/rpr"

// MicrofacetRefraction is a rough dielectric transmission material
type MicrofacetRefraction struct {
	Color     ColorSource
	Roughness ScalarSource // maps are sampled as linear data
	IOR       float64
	NormalMap string
}

// Shader implements Material
func (mr *MicrofacetRefraction) Shader(p *Parser) (rpr.Shader, error) {
	s, err := p.newShader(rpr.ShaderMicrofacetRefraction)
	if err != nil {
		return nil, err
	}

	color, err := mr.Color.value(p, 0)
	if err != nil {
		return nil, err
	}
	s.SetValue(rpr.InputColor, color)

	roughness, err := mr.Roughness.value(p, rpr.MapNoGamma)
	if err != nil {
		return nil, err
	}
	s.SetValue(rpr.InputRoughness, roughness)
	s.SetValue(rpr.InputIOR, rpr.Float(float32(mr.IOR)))

	if mr.NormalMap != "" {
		n, err := p.normalMap(mr.NormalMap)
		if err != nil {
			return nil, err
		}
		s.SetValue(rpr.InputNormal, n)
	}
	return s, nil
}
