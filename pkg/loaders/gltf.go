package loaders

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/df07/go-light-bridge/pkg/host"
)

// GLTFMesh is one named mesh of a glTF document with all of its triangle
// primitives merged
type GLTFMesh struct {
	Name string
	Mesh *host.Mesh
}

// LoadGLTF loads the triangle meshes of a .gltf or .glb file, in document
// order. Vertices are in mesh-local space; node transforms are not applied.
func LoadGLTF(path string) ([]GLTFMesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open glTF file: %w", err)
	}
	meshes, err := readGLTFMeshes(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return meshes, nil
}

func readGLTFMeshes(doc *gltf.Document) ([]GLTFMesh, error) {
	var out []GLTFMesh

	for mi, m := range doc.Meshes {
		name := m.Name
		if name == "" {
			name = fmt.Sprintf("mesh%d", mi)
		}

		mesh := &host.Mesh{}
		for pi, prim := range m.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				// points and lines have no area
				continue
			}
			if err := appendGLTFPrimitive(doc, prim, mesh); err != nil {
				return nil, fmt.Errorf("mesh %q primitive %d: %w", name, pi, err)
			}
		}
		out = append(out, GLTFMesh{Name: name, Mesh: mesh})
	}
	return out, nil
}

func appendGLTFPrimitive(doc *gltf.Document, prim *gltf.Primitive, mesh *host.Mesh) error {
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return fmt.Errorf("positions: %w", err)
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return fmt.Errorf("indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}
	if len(indices)%3 != 0 {
		return fmt.Errorf("%d indices is not a triangle list", len(indices))
	}

	base := int32(len(mesh.Verts))
	for _, p := range positions {
		mesh.Verts = append(mesh.Verts, mgl32.Vec3{p[0], p[1], p[2]})
	}
	for i := 0; i < len(indices); i += 3 {
		mesh.Faces = append(mesh.Faces, host.Face{V: [3]int32{
			base + int32(indices[i]),
			base + int32(indices[i+1]),
			base + int32(indices[i+2]),
		}})
	}
	return mesh.Validate()
}
