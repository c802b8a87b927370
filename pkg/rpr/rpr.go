// Package rpr describes the renderer binding the exporter talks to.
// Backends (in-memory recording, glTF output) implement these interfaces;
// exporters never depend on a concrete renderer.
package rpr

// Byte sizes used for buffer strides
const (
	Float3Stride = 12 // three float32 components
	IntStride    = 4  // one int32 index
)

// MeshData is the raw buffer form of a mesh creation call.
// Vertices and Normals hold tightly packed float32 triples; strides are in bytes.
// Normals and NormalIndices are optional; when Normals is nil the renderer computes them.
type MeshData struct {
	Vertices     []float32
	NumVertices  int
	VertexStride int

	Normals      []float32
	NumNormals   int
	NormalStride int

	VertexIndices     []int32
	VertexIndexStride int

	NormalIndices     []int32
	NormalIndexStride int

	FaceVertexCounts []int32
}

// NumFaces returns the number of faces in the mesh
func (md MeshData) NumFaces() int {
	return len(md.FaceVertexCounts)
}

// SceneObject is anything that can be attached to a Scene
type SceneObject interface {
	// SetTransform sets the object-to-world matrix. The matrix is row-major unless
	// transpose is true, in which case it is column-major.
	SetTransform(m [16]float32, transpose bool)
	SetName(name string)
}

// Shape is a renderer mesh instance
type Shape interface {
	SceneObject
	SetShader(s Shader)
	SetShadowFlag(castShadows bool)
	SetPrimaryVisibility(visible bool)
}

// Light is a native (non-geometric) renderer light
type Light interface {
	SceneObject
	SetRadiantPower(r, g, b float32)
}

// SpotLight is a Light with a cone. Angles are half-angles in radians.
type SpotLight interface {
	Light
	SetConeShape(inner, outer float32)
}

// Context creates renderer objects. Handles returned here are owned by the
// caller until they are attached to a Scene.
type Context interface {
	CreateMesh(data MeshData) (Shape, error)
	CreatePointLight() (Light, error)
	CreateDirectionalLight() (Light, error)
	CreateSpotLight() (SpotLight, error)
}

// Scene owns attached objects
type Scene interface {
	Attach(obj SceneObject) error
}

// Scope bundles the renderer objects borrowed for one export call
type Scope interface {
	Context() Context
	MaterialSystem() MaterialSystem
	Scene() Scene
}
