package host

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// MeshRef references a mesh source: a node name in the host scene or an
// external mesh file. The empty ref means "no mesh".
type MeshRef string

// Face is one triangle of a host mesh
type Face struct {
	V [3]int32
}

// Mesh is a triangulated host mesh
type Mesh struct {
	Verts []mgl32.Vec3
	Faces []Face
}

// Validate checks that every face index addresses a vertex
func (m *Mesh) Validate() error {
	for i, f := range m.Faces {
		for _, idx := range f.V {
			if idx < 0 || int(idx) >= len(m.Verts) {
				return fmt.Errorf("face %d: vertex index %d out of range [0,%d)", i, idx, len(m.Verts))
			}
		}
	}
	return nil
}

// Object is the data a node instances
type Object interface {
	ClassName() string
}

// ShapeObject is an object that can produce a render-time triangle mesh
type ShapeObject interface {
	Object
	RenderMesh(t TimeValue) (*Mesh, bool)
}

// MeshObject is a static editable mesh
type MeshObject struct {
	Mesh *Mesh
}

func (mo *MeshObject) ClassName() string {
	return "Editable Mesh"
}

// RenderMesh returns the stored mesh; a nil mesh resolves to nothing
func (mo *MeshObject) RenderMesh(t TimeValue) (*Mesh, bool) {
	return mo.Mesh, mo.Mesh != nil
}

// Node places an object in the scene
type Node struct {
	Name      string
	Transform mgl32.Mat4 // object-to-world, column-vector convention
	Object    Object
}

// NewNode creates a node at the identity transform
func NewNode(name string, obj Object) *Node {
	return &Node{Name: name, Transform: mgl32.Ident4(), Object: obj}
}

// WorldTM returns the node's world transform
func (n *Node) WorldTM() mgl32.Mat4 {
	return n.Transform
}

// MeshResolver resolves a mesh reference to a render-time triangle mesh.
// Any unresolvable step yields (nil, false); it is never an error.
type MeshResolver interface {
	ResolveMesh(ref MeshRef, t TimeValue) (*Mesh, bool)
}

// MeshResolverFunc adapts a function to MeshResolver
type MeshResolverFunc func(ref MeshRef, t TimeValue) (*Mesh, bool)

func (f MeshResolverFunc) ResolveMesh(ref MeshRef, t TimeValue) (*Mesh, bool) {
	return f(ref, t)
}

// Resolvers tries each resolver in order and returns the first hit
type Resolvers []MeshResolver

func (rs Resolvers) ResolveMesh(ref MeshRef, t TimeValue) (*Mesh, bool) {
	for _, r := range rs {
		if r == nil {
			continue
		}
		if m, ok := r.ResolveMesh(ref, t); ok {
			return m, true
		}
	}
	return nil, false
}

// NodeLocator finds the node instancing an object
type NodeLocator interface {
	FindNode(obj Object) *Node
}

// Scene is a flat collection of host nodes
type Scene struct {
	Nodes []*Node
}

// Add appends nodes to the scene
func (s *Scene) Add(nodes ...*Node) {
	s.Nodes = append(s.Nodes, nodes...)
}

// NodeByName returns the first node with the given name
func (s *Scene) NodeByName(name string) *Node {
	for _, n := range s.Nodes {
		if n.Name == name {
			return n
		}
	}
	return nil
}

// FindNode implements NodeLocator
func (s *Scene) FindNode(obj Object) *Node {
	for _, n := range s.Nodes {
		if n.Object == obj {
			return n
		}
	}
	return nil
}

// ResolveMesh implements MeshResolver by following node -> object -> shape object -> render mesh
func (s *Scene) ResolveMesh(ref MeshRef, t TimeValue) (*Mesh, bool) {
	if ref == "" {
		return nil, false
	}
	node := s.NodeByName(string(ref))
	if node == nil || node.Object == nil {
		return nil, false
	}
	shape, ok := node.Object.(ShapeObject)
	if !ok {
		return nil, false
	}
	return shape.RenderMesh(t)
}
