// Package material translates host material descriptions into renderer
// shaders and value nodes.
package material

import (
	"fmt"

	"github.com/df07/go-light-bridge/pkg/core"
	"github.com/df07/go-light-bridge/pkg/rpr"
)

// Material can be turned into a renderer shader
type Material interface {
	Shader(p *Parser) (rpr.Shader, error)
}

// ValueSource can be turned into a renderer value node (e.g. a Fresnel term)
type ValueSource interface {
	Value(p *Parser) (rpr.Value, error)
}

// Parser creates shaders through a renderer material system
type Parser struct {
	MS     rpr.MaterialSystem
	Logger core.Logger
}

// NewParser creates a parser for ms
func NewParser(ms rpr.MaterialSystem) *Parser {
	return &Parser{MS: ms, Logger: core.DiscardLogger{}}
}

// Shader translates m. A nil material yields the default diffuse shader.
func (p *Parser) Shader(m Material) (rpr.Shader, error) {
	if m == nil {
		return p.defaultShader()
	}
	return m.Shader(p)
}

// Value translates a value source
func (p *Parser) Value(v ValueSource) (rpr.Value, error) {
	return v.Value(p)
}

// CreateMap creates an image value for a texture path. An empty path is
// "no map" and returns the null value.
func (p *Parser) CreateMap(path string, flags rpr.MapFlags) (rpr.Value, error) {
	if path == "" {
		return rpr.Value{}, nil
	}
	v, err := p.MS.ValueImage(path, flags)
	if err != nil {
		return rpr.Value{}, fmt.Errorf("failed to load map %q: %w", path, err)
	}
	return v, nil
}

// normalMap creates a tangent-space normal map value with unit strength
func (p *Parser) normalMap(path string) (rpr.Value, error) {
	img, err := p.CreateMap(path, rpr.MapNoGamma)
	if err != nil || img.IsNull() {
		return img, err
	}
	return p.MS.ValueNormalMap(img, 1)
}

func (p *Parser) newShader(t rpr.ShaderType) (rpr.Shader, error) {
	s, err := p.MS.NewShader(t)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s shader: %w", t, err)
	}
	return s, nil
}

func (p *Parser) defaultShader() (rpr.Shader, error) {
	return p.newShader(rpr.ShaderDiffuse)
}

func (p *Parser) logf(format string, args ...interface{}) {
	if p.Logger != nil {
		p.Logger.Printf(format, args...)
	}
}
