// Package gltfscene is a renderer backend that writes the attached scene as
// a glTF 2.0 document. Emitter meshes become mesh nodes with emissive
// materials and native lights become KHR_lights_punctual lights.
package gltfscene

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"

	"github.com/df07/go-light-bridge/pkg/core"
	"github.com/df07/go-light-bridge/pkg/rpr"
)

// Extension names written by this backend
const (
	ExtLightsPunctual    = "KHR_lights_punctual"
	ExtEmissiveStrength  = "KHR_materials_emissive_strength"
	ExtMaterialsIOR      = "KHR_materials_ior"
	ExtMaterialsTransmit = "KHR_materials_transmission"
)

// Light types of KHR_lights_punctual
const (
	LightPoint       = "point"
	LightDirectional = "directional"
	LightSpot        = "spot"
)

var identity = [16]float32{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// Scope collects renderer objects for one glTF document. It implements
// rpr.Scope, rpr.Context, rpr.MaterialSystem and rpr.Scene.
//
// Shader inputs glTF cannot express (normal maps, Fresnel nodes, mapped
// roughness) are reported to Logger when the document is built.
type Scope struct {
	Logger core.Logger

	attached []rpr.SceneObject
	seen     map[rpr.SceneObject]bool
}

// NewScope creates an empty scope
func NewScope() *Scope {
	return &Scope{Logger: core.DiscardLogger{}, seen: make(map[rpr.SceneObject]bool)}
}

func (s *Scope) Context() rpr.Context               { return s }
func (s *Scope) MaterialSystem() rpr.MaterialSystem { return s }
func (s *Scope) Scene() rpr.Scene                   { return s }

// CreateMesh copies the mesh buffers. Faces are triangulated when the
// document is built.
func (s *Scope) CreateMesh(data rpr.MeshData) (rpr.Shape, error) {
	if data.NumVertices == 0 || data.NumFaces() == 0 {
		return nil, errors.New("gltfscene: empty mesh")
	}
	if data.VertexStride < rpr.Float3Stride || data.VertexStride%4 != 0 {
		return nil, fmt.Errorf("gltfscene: unsupported vertex stride %d", data.VertexStride)
	}
	if data.NumNormals > 0 && (data.NormalStride < rpr.Float3Stride || data.NormalStride%4 != 0) {
		return nil, fmt.Errorf("gltfscene: unsupported normal stride %d", data.NormalStride)
	}
	return &Shape{
		scope:       s,
		data:        data,
		transform:   identity,
		castShadows: true,
		visible:     true,
	}, nil
}

func (s *Scope) CreatePointLight() (rpr.Light, error) {
	return &Light{scope: s, kind: LightPoint, transform: identity}, nil
}

func (s *Scope) CreateDirectionalLight() (rpr.Light, error) {
	return &Light{scope: s, kind: LightDirectional, transform: identity}, nil
}

func (s *Scope) CreateSpotLight() (rpr.SpotLight, error) {
	return &Light{scope: s, kind: LightSpot, transform: identity}, nil
}

// Attach adds obj to the document. Objects of another backend and objects
// that are already attached are rejected.
func (s *Scope) Attach(obj rpr.SceneObject) error {
	switch o := obj.(type) {
	case *Shape:
		if o.scope != s {
			return errors.New("gltfscene: shape belongs to another scope")
		}
	case *Light:
		if o.scope != s {
			return errors.New("gltfscene: light belongs to another scope")
		}
	default:
		return fmt.Errorf("gltfscene: cannot attach %T", obj)
	}
	if s.seen[obj] {
		return errors.New("gltfscene: object is already attached")
	}
	s.seen[obj] = true
	s.attached = append(s.attached, obj)
	return nil
}

// Len returns the number of attached objects
func (s *Scope) Len() int {
	return len(s.attached)
}

// Document builds a glTF document holding every attached object, in
// attach order, as root nodes of a single scene
func (s *Scope) Document() (*gltf.Document, error) {
	b := newBuilder(s.Logger)
	for _, obj := range s.attached {
		var err error
		switch o := obj.(type) {
		case *Shape:
			err = b.addShape(o)
		case *Light:
			b.addLight(o)
		}
		if err != nil {
			return nil, err
		}
	}
	return b.finish(), nil
}

// Save writes the document to path. A .glb extension selects the binary
// container; anything else is written as .gltf with embedded buffers.
func (s *Scope) Save(path string) error {
	doc, err := s.Document()
	if err != nil {
		return err
	}

	if strings.EqualFold(filepath.Ext(path), ".glb") {
		if err := gltf.SaveBinary(doc, path); err != nil {
			return fmt.Errorf("failed to save %s: %w", path, err)
		}
		return nil
	}

	for _, buf := range doc.Buffers {
		buf.EmbeddedResource()
	}
	if err := gltf.Save(doc, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
