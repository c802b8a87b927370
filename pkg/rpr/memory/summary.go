package memory

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Summary is a serializable view of the attached scene
type Summary struct {
	Shapes []ShapeSummary `yaml:"shapes,omitempty"`
	Lights []LightSummary `yaml:"lights,omitempty"`
}

// ShapeSummary describes one attached emitter mesh
type ShapeSummary struct {
	Name        string     `yaml:"name"`
	Vertices    int        `yaml:"vertices"`
	Faces       int        `yaml:"faces"`
	Normals     bool       `yaml:"normals"`
	Shader      string     `yaml:"shader,omitempty"`
	Emission    []float32  `yaml:"emission,flow,omitempty"`
	Visible     bool       `yaml:"visible"`
	CastShadows bool       `yaml:"cast_shadows"`
	Position    [3]float32 `yaml:"position,flow"`
	Extent      [3]float32 `yaml:"extent,flow"`
}

// LightSummary describes one attached native light
type LightSummary struct {
	Name     string     `yaml:"name"`
	Kind     string     `yaml:"kind"`
	Power    [3]float32 `yaml:"power,flow"`
	Inner    float32    `yaml:"inner_cone,omitempty"`
	Outer    float32    `yaml:"outer_cone,omitempty"`
	Position [3]float32 `yaml:"position,flow"`
}

// Summary collects the attached objects in attach order
func (s *Scope) Summary() Summary {
	var sum Summary
	for _, sh := range s.AttachedShapes() {
		ss := ShapeSummary{
			Name:        sh.Name,
			Vertices:    sh.Mesh.NumVertices,
			Faces:       sh.Mesh.NumFaces(),
			Normals:     sh.Mesh.Normals != nil,
			Visible:     sh.Visible,
			CastShadows: sh.CastShadows,
			Position:    sh.Position(),
			Extent:      sh.Bounds().Size().Float32(),
		}
		if sh.Shader != nil {
			ss.Shader = sh.Shader.Type().String()
			if shader, ok := sh.Shader.(*Shader); ok {
				if c, ok := shader.Color(); ok {
					ss.Emission = c[:]
				}
			}
		}
		sum.Shapes = append(sum.Shapes, ss)
	}
	for _, l := range s.AttachedLights() {
		sum.Lights = append(sum.Lights, LightSummary{
			Name:     l.Name,
			Kind:     l.Kind,
			Power:    l.Power,
			Inner:    l.Inner,
			Outer:    l.Outer,
			Position: l.Position(),
		})
	}
	return sum
}

// WriteYAML writes the scene summary as YAML
func (s *Scope) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s.Summary()); err != nil {
		return fmt.Errorf("failed to encode scene summary: %w", err)
	}
	return enc.Close()
}
