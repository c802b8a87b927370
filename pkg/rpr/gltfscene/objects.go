package gltfscene

import (
	"github.com/df07/go-light-bridge/pkg/rpr"
)

// Shape is an emitter mesh waiting to be written
type Shape struct {
	scope *Scope

	name        string
	data        rpr.MeshData
	transform   [16]float32 // row-major
	shader      rpr.Shader
	castShadows bool
	visible     bool
}

func (sh *Shape) SetTransform(m [16]float32, transpose bool) {
	sh.transform = toRowMajor(m, transpose)
}

func (sh *Shape) SetName(name string)               { sh.name = name }
func (sh *Shape) SetShader(s rpr.Shader)            { sh.shader = s }
func (sh *Shape) SetShadowFlag(castShadows bool)    { sh.castShadows = castShadows }
func (sh *Shape) SetPrimaryVisibility(visible bool) { sh.visible = visible }

// Light is a punctual light waiting to be written
type Light struct {
	scope *Scope

	kind         string
	name         string
	transform    [16]float32 // row-major
	power        [3]float32
	inner, outer float32
}

func (l *Light) SetTransform(m [16]float32, transpose bool) {
	l.transform = toRowMajor(m, transpose)
}

func (l *Light) SetName(name string) { l.name = name }

func (l *Light) SetRadiantPower(r, g, b float32) {
	l.power = [3]float32{r, g, b}
}

func (l *Light) SetConeShape(inner, outer float32) {
	l.inner, l.outer = inner, outer
}

func toRowMajor(m [16]float32, transpose bool) [16]float32 {
	if !transpose {
		return m
	}
	var out [16]float32
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r*4+c] = m[c*4+r]
		}
	}
	return out
}

// columnMajor converts a row-major renderer matrix to the glTF layout
func columnMajor(m [16]float32) [16]float64 {
	var out [16]float64
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[c*4+r] = float64(m[r*4+c])
		}
	}
	return out
}
