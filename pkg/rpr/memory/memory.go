// Package memory is a recording renderer backend. Every call is kept so the
// resulting scene can be inspected, summarized, or asserted on in tests.
package memory

import (
	"errors"
	"fmt"

	"github.com/df07/go-light-bridge/pkg/rpr"
)

// ErrInjected is returned by creation calls when Scope.FailCreate is set
var ErrInjected = errors.New("memory: injected failure")

// Scope records renderer objects. It implements rpr.Scope, rpr.Context,
// rpr.MaterialSystem and rpr.Scene in one place.
type Scope struct {
	Shapes   []*Shape
	Lights   []*Light
	Shaders  []*Shader
	Values   []*ValueNode
	Attached []rpr.SceneObject
	Calls    []string

	// FailCreate makes every object creation call fail
	FailCreate bool
	// FailAttach makes Attach fail
	FailAttach bool

	nextID   int
	attached map[rpr.SceneObject]bool
}

// NewScope creates an empty recording scope
func NewScope() *Scope {
	return &Scope{attached: make(map[rpr.SceneObject]bool)}
}

func (s *Scope) Context() rpr.Context               { return s }
func (s *Scope) MaterialSystem() rpr.MaterialSystem { return s }
func (s *Scope) Scene() rpr.Scene                   { return s }

func (s *Scope) record(format string, args ...interface{}) {
	s.Calls = append(s.Calls, fmt.Sprintf(format, args...))
}

func (s *Scope) newID(prefix string) string {
	s.nextID++
	return fmt.Sprintf("%s%d", prefix, s.nextID)
}

// CreateMesh records a mesh creation call. The buffers are validated the way
// a renderer would: sizes must agree with counts and strides.
func (s *Scope) CreateMesh(data rpr.MeshData) (rpr.Shape, error) {
	if s.FailCreate {
		return nil, ErrInjected
	}
	if err := checkMeshData(data); err != nil {
		return nil, err
	}
	shape := &Shape{
		scope:       s,
		ID:          s.newID("shape"),
		Mesh:        data,
		Transform:   identity,
		CastShadows: true,
		Visible:     true,
	}
	s.Shapes = append(s.Shapes, shape)
	s.record("CreateMesh(%s, vertices=%d, faces=%d)", shape.ID, data.NumVertices, data.NumFaces())
	return shape, nil
}

func (s *Scope) createLight(kind string) (*Light, error) {
	if s.FailCreate {
		return nil, ErrInjected
	}
	light := &Light{scope: s, ID: s.newID(kind), Kind: kind, Transform: identity}
	s.Lights = append(s.Lights, light)
	s.record("Create%sLight(%s)", kind, light.ID)
	return light, nil
}

func (s *Scope) CreatePointLight() (rpr.Light, error) {
	l, err := s.createLight(LightPoint)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Scope) CreateDirectionalLight() (rpr.Light, error) {
	l, err := s.createLight(LightDirectional)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Scope) CreateSpotLight() (rpr.SpotLight, error) {
	l, err := s.createLight(LightSpot)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// Attach transfers ownership of obj to the scene. Objects from another
// backend and objects that are already attached are rejected.
func (s *Scope) Attach(obj rpr.SceneObject) error {
	if s.FailAttach {
		return ErrInjected
	}
	var id string
	switch o := obj.(type) {
	case *Shape:
		if o.scope != s {
			return fmt.Errorf("memory: shape %s belongs to another scope", o.ID)
		}
		id = o.ID
	case *Light:
		if o.scope != s {
			return fmt.Errorf("memory: light %s belongs to another scope", o.ID)
		}
		id = o.ID
	default:
		return fmt.Errorf("memory: cannot attach %T", obj)
	}
	if s.attached[obj] {
		return fmt.Errorf("memory: %s is already attached", id)
	}
	s.attached[obj] = true
	s.Attached = append(s.Attached, obj)
	s.record("Attach(%s)", id)
	return nil
}

// IsAttached reports whether obj was attached to the scene
func (s *Scope) IsAttached(obj rpr.SceneObject) bool {
	return s.attached[obj]
}

// AttachedShapes returns the attached shapes in attach order
func (s *Scope) AttachedShapes() []*Shape {
	var shapes []*Shape
	for _, obj := range s.Attached {
		if shape, ok := obj.(*Shape); ok {
			shapes = append(shapes, shape)
		}
	}
	return shapes
}

// AttachedLights returns the attached native lights in attach order
func (s *Scope) AttachedLights() []*Light {
	var lights []*Light
	for _, obj := range s.Attached {
		if light, ok := obj.(*Light); ok {
			lights = append(lights, light)
		}
	}
	return lights
}

func checkMeshData(data rpr.MeshData) error {
	if data.VertexStride < rpr.Float3Stride {
		return fmt.Errorf("memory: vertex stride %d too small", data.VertexStride)
	}
	if len(data.Vertices)*4 < data.NumVertices*data.VertexStride {
		return fmt.Errorf("memory: %d vertex floats for %d vertices", len(data.Vertices), data.NumVertices)
	}
	if data.NumNormals > 0 && len(data.Normals)*4 < data.NumNormals*data.NormalStride {
		return fmt.Errorf("memory: %d normal floats for %d normals", len(data.Normals), data.NumNormals)
	}
	total := 0
	for _, c := range data.FaceVertexCounts {
		total += int(c)
	}
	if total != len(data.VertexIndices) {
		return fmt.Errorf("memory: face counts sum to %d, have %d indices", total, len(data.VertexIndices))
	}
	for _, idx := range data.VertexIndices {
		if idx < 0 || int(idx) >= data.NumVertices {
			return fmt.Errorf("memory: vertex index %d out of range", idx)
		}
	}
	if data.NormalIndices != nil && len(data.NormalIndices) != len(data.VertexIndices) {
		return fmt.Errorf("memory: %d normal indices for %d vertex indices", len(data.NormalIndices), len(data.VertexIndices))
	}
	return nil
}
