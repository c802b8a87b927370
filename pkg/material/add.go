package material

import "github.com/df07/go-light-bridge/pkg/rpr"

// Add sums the contributions of two materials
type Add struct {
	Material1 Material
	Material2 Material
}

// Shader implements Material. When either input is missing the result is
// the default diffuse shader.
func (a *Add) Shader(p *Parser) (rpr.Shader, error) {
	if a.Material1 == nil || a.Material2 == nil {
		p.logf("Add material is missing an input, using default diffuse\n")
		return p.defaultShader()
	}

	s1, err := a.Material1.Shader(p)
	if err != nil {
		return nil, err
	}
	s2, err := a.Material2.Shader(p)
	if err != nil {
		return nil, err
	}
	return p.MS.ShaderAdd(s1, s2)
}
