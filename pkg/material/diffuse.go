package material

import "github.com/df07/go-light-bridge/pkg/rpr"

// Diffuse is a Lambertian material
type Diffuse struct {
	Albedo    ColorSource
	NormalMap string
}

// Shader implements Material
func (d *Diffuse) Shader(p *Parser) (rpr.Shader, error) {
	s, err := p.newShader(rpr.ShaderDiffuse)
	if err != nil {
		return nil, err
	}

	color, err := d.Albedo.value(p, 0)
	if err != nil {
		return nil, err
	}
	s.SetValue(rpr.InputColor, color)

	if d.NormalMap != "" {
		n, err := p.normalMap(d.NormalMap)
		if err != nil {
			return nil, err
		}
		s.SetValue(rpr.InputNormal, n)
	}
	return s, nil
}
