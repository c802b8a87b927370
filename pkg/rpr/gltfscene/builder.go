package gltfscene

import (
	"fmt"
	"sort"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/df07/go-light-bridge/pkg/core"
	"github.com/df07/go-light-bridge/pkg/rpr"
)

// builder accumulates one glTF document
type builder struct {
	doc      *gltf.Document
	lights   []any
	used     map[string]bool
	textures map[string]int
	logger   core.Logger
}

func newBuilder(logger core.Logger) *builder {
	if logger == nil {
		logger = core.DiscardLogger{}
	}
	doc := gltf.NewDocument()
	doc.Asset.Generator = "lightbridge"
	if len(doc.Scenes) == 0 {
		doc.Scenes = []*gltf.Scene{{Name: "Scene"}}
		doc.Scene = gltf.Index(0)
	}
	return &builder{
		doc:      doc,
		used:     make(map[string]bool),
		textures: make(map[string]int),
		logger:   logger,
	}
}

func (b *builder) addNode(n *gltf.Node) {
	b.doc.Nodes = append(b.doc.Nodes, n)
	scene := b.doc.Scenes[0]
	scene.Nodes = append(scene.Nodes, len(b.doc.Nodes)-1)
}

func (b *builder) addShape(sh *Shape) error {
	prim, err := b.primitive(sh.data)
	if err != nil {
		return fmt.Errorf("gltfscene: shape %q: %w", sh.name, err)
	}
	if sh.shader != nil {
		mat, err := b.material(sh.name, sh.shader)
		if err != nil {
			return fmt.Errorf("gltfscene: shape %q: %w", sh.name, err)
		}
		prim.Material = gltf.Index(mat)
	}

	b.doc.Meshes = append(b.doc.Meshes, &gltf.Mesh{
		Name:       sh.name,
		Primitives: []*gltf.Primitive{prim},
	})

	node := &gltf.Node{
		Name:   sh.name,
		Mesh:   gltf.Index(len(b.doc.Meshes) - 1),
		Matrix: columnMajor(sh.transform),
	}
	// glTF has no notion of camera visibility or shadow casting
	if !sh.visible || !sh.castShadows {
		node.Extras = map[string]any{
			"visible":     sh.visible,
			"castShadows": sh.castShadows,
		}
	}
	b.addNode(node)
	return nil
}

// primitive writes the mesh buffers. Meshes with their own normal indices
// are unwelded so every corner carries its normal.
func (b *builder) primitive(data rpr.MeshData) (*gltf.Primitive, error) {
	corners, err := triangulate(data)
	if err != nil {
		return nil, err
	}

	if data.NumNormals == 0 {
		positions := make([][3]float32, data.NumVertices)
		for i := range positions {
			positions[i] = vec3At(data.Vertices, data.VertexStride, i)
		}
		indices := make([]uint32, len(corners))
		for i, c := range corners {
			indices[i] = uint32(c.vertex)
		}
		return &gltf.Primitive{
			Attributes: map[string]int{"POSITION": modeler.WritePosition(b.doc, positions)},
			Indices:    gltf.Index(modeler.WriteIndices(b.doc, indices)),
		}, nil
	}

	positions := make([][3]float32, len(corners))
	normals := make([][3]float32, len(corners))
	for i, c := range corners {
		positions[i] = vec3At(data.Vertices, data.VertexStride, int(c.vertex))
		normals[i] = vec3At(data.Normals, data.NormalStride, int(c.normal))
	}
	return &gltf.Primitive{
		Attributes: map[string]int{
			"POSITION": modeler.WritePosition(b.doc, positions),
			"NORMAL":   modeler.WriteNormal(b.doc, normals),
		},
	}, nil
}

func (b *builder) addLight(l *Light) {
	color, intensity := splitPeak(l.power)
	light := map[string]any{
		"type":      l.kind,
		"color":     color,
		"intensity": intensity,
	}
	if l.name != "" {
		light["name"] = l.name
	}
	if l.kind == LightSpot {
		light["spot"] = map[string]any{
			"innerConeAngle": float64(l.inner),
			"outerConeAngle": float64(l.outer),
		}
	}
	b.lights = append(b.lights, light)
	b.used[ExtLightsPunctual] = true

	b.addNode(&gltf.Node{
		Name:   l.name,
		Matrix: columnMajor(l.transform),
		Extensions: gltf.Extensions{
			ExtLightsPunctual: map[string]any{"light": len(b.lights) - 1},
		},
	})
}

func (b *builder) finish() *gltf.Document {
	doc := b.doc
	if len(b.lights) > 0 {
		if doc.Extensions == nil {
			doc.Extensions = gltf.Extensions{}
		}
		doc.Extensions[ExtLightsPunctual] = map[string]any{"lights": b.lights}
	}
	for ext := range b.used {
		doc.ExtensionsUsed = append(doc.ExtensionsUsed, ext)
	}
	sort.Strings(doc.ExtensionsUsed)

	// a scene without meshes has nothing to put in the default buffer
	buffers := doc.Buffers[:0]
	for _, buf := range doc.Buffers {
		if len(buf.Data) > 0 {
			buffers = append(buffers, buf)
		}
	}
	doc.Buffers = buffers
	return doc
}

// splitPeak splits an unbounded color into a normalized color and its peak
func splitPeak(c [3]float32) ([3]float64, float64) {
	peak := float64(max(c[0], c[1], c[2]))
	if peak <= 0 {
		return [3]float64{0, 0, 0}, 0
	}
	return [3]float64{float64(c[0]) / peak, float64(c[1]) / peak, float64(c[2]) / peak}, peak
}

func vec3At(buf []float32, stride, i int) [3]float32 {
	off := i * stride / 4
	return [3]float32{buf[off], buf[off+1], buf[off+2]}
}

type corner struct {
	vertex, normal int32
}

// triangulate fans every face into triangles and checks every index
func triangulate(data rpr.MeshData) ([]corner, error) {
	if len(data.Vertices)*4 < data.NumVertices*data.VertexStride {
		return nil, fmt.Errorf("%d vertex floats for %d vertices", len(data.Vertices), data.NumVertices)
	}
	if data.NumNormals > 0 && len(data.Normals)*4 < data.NumNormals*data.NormalStride {
		return nil, fmt.Errorf("%d normal floats for %d normals", len(data.Normals), data.NumNormals)
	}

	var out []corner
	off := 0
	at := func(k int) (corner, error) {
		if k >= len(data.VertexIndices) {
			return corner{}, fmt.Errorf("face counts exceed %d indices", len(data.VertexIndices))
		}
		c := corner{vertex: data.VertexIndices[k], normal: data.VertexIndices[k]}
		if data.NormalIndices != nil {
			if k >= len(data.NormalIndices) {
				return corner{}, fmt.Errorf("face counts exceed %d normal indices", len(data.NormalIndices))
			}
			c.normal = data.NormalIndices[k]
		}
		if c.vertex < 0 || int(c.vertex) >= data.NumVertices {
			return corner{}, fmt.Errorf("vertex index %d out of range", c.vertex)
		}
		if data.NumNormals > 0 && (c.normal < 0 || int(c.normal) >= data.NumNormals) {
			return corner{}, fmt.Errorf("normal index %d out of range", c.normal)
		}
		return c, nil
	}

	for f, n := range data.FaceVertexCounts {
		if n < 3 {
			return nil, fmt.Errorf("face %d has %d vertices", f, n)
		}
		for k := 1; k+1 < int(n); k++ {
			for _, idx := range [3]int{off, off + k, off + k + 1} {
				c, err := at(idx)
				if err != nil {
					return nil, fmt.Errorf("face %d: %w", f, err)
				}
				out = append(out, c)
			}
		}
		off += int(n)
	}
	return out, nil
}
