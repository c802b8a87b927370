package material

import "github.com/df07/go-light-bridge/pkg/rpr"

// Transparent passes light through, tinted by Color
type Transparent struct {
	Color ColorSource
}

// Shader implements Material
func (tr *Transparent) Shader(p *Parser) (rpr.Shader, error) {
	s, err := p.newShader(rpr.ShaderTransparent)
	if err != nil {
		return nil, err
	}
	color, err := tr.Color.value(p, 0)
	if err != nil {
		return nil, err
	}
	s.SetValue(rpr.InputColor, color)
	return s, nil
}
