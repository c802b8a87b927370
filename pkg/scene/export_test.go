package scene

import (
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-light-bridge/pkg/geometry"
	"github.com/df07/go-light-bridge/pkg/host"
	"github.com/df07/go-light-bridge/pkg/rpr"
	"github.com/df07/go-light-bridge/pkg/rpr/gltfscene"
	"github.com/df07/go-light-bridge/pkg/rpr/memory"
)

func attachedNames(s *memory.Scope) []string {
	var names []string
	for _, obj := range s.Attached {
		switch o := obj.(type) {
		case *memory.Shape:
			names = append(names, o.Name)
		case *memory.Light:
			names = append(names, o.Name)
		}
	}
	return names
}

func shapeNamed(t *testing.T, s *memory.Scope, name string) *memory.Shape {
	t.Helper()
	for _, sh := range s.AttachedShapes() {
		if sh.Name == name {
			return sh
		}
	}
	t.Fatalf("no shape %q", name)
	return nil
}

func TestExport_Studio(t *testing.T) {
	scope := memory.NewScope()
	res, err := Export(NewStudioRig(), scope, ExportOptions{})
	require.NoError(t, err)

	assert.Equal(t, ExportResult{Lights: 7, Skipped: 1, Props: 4}, res)
	assert.Equal(t, []string{
		"Floor", "Pedestal", "Subject", "Sign",
		"Key", "Fill", "Rim", "Practical", "Tube", "Strip", "Sun",
	}, attachedNames(scope))

	assert.Len(t, scope.AttachedShapes(), 9)
	lights := scope.AttachedLights()
	require.Len(t, lights, 2)
	assert.Equal(t, memory.LightSpot, lights[0].Kind)
	assert.Equal(t, memory.LightDirectional, lights[1].Kind)

	// props are regular geometry, emitters do not cast shadows
	floor := shapeNamed(t, scope, "Floor")
	assert.True(t, floor.CastShadows)
	assert.Equal(t, rpr.ShaderDiffuse, floor.Shader.Type())

	// the pedestal colour is a Fresnel node, not a constant
	pedestal := shapeNamed(t, scope, "Pedestal").Shader.(*memory.Shader)
	colour := pedestal.Inputs[rpr.InputColor]
	require.True(t, colour.IsNode())
	node := colour.Node.(*memory.ValueNode)
	assert.Equal(t, memory.NodeFresnelSchlick, node.Kind)
	assert.Equal(t, rpr.RGB(0.9, 0.9, 0.9), node.Inputs["reflectance"])

	sign := shapeNamed(t, scope, "Sign")
	assert.Equal(t, rpr.ShaderAdd, sign.Shader.Type())

	key := shapeNamed(t, scope, "Key")
	assert.False(t, key.CastShadows)
	assert.Equal(t, rpr.ShaderEmissive, key.Shader.Type())
	assert.False(t, shapeNamed(t, scope, "Fill").Visible)

	strip := shapeNamed(t, scope, "Strip")
	assert.Equal(t, 2*(geometry.PointsPerArc+1), strip.Mesh.NumVertices, "the strip uses the hidden prop mesh")
}

func TestExport_Frame(t *testing.T) {
	emission := func(frame int) [3]float32 {
		scope := memory.NewScope()
		_, err := Export(NewStudioRig(), scope, ExportOptions{Frame: &frame})
		require.NoError(t, err)
		c, ok := shapeNamed(t, scope, "Practical").Shader.(*memory.Shader).Color()
		require.True(t, ok)
		return c
	}

	start := emission(0)
	assert.Greater(t, start[0], float32(0))
	assert.Equal(t, [3]float32{0, 0, 0}, emission(24), "the practical is keyed off by frame 24")
}

func TestExport_UnitScale(t *testing.T) {
	position := func(opts ExportOptions) [3]float32 {
		scope := memory.NewScope()
		_, err := Export(NewCornellRig(), scope, opts)
		require.NoError(t, err)
		return shapeNamed(t, scope, "Ceiling Light").Position()
	}

	assert.InDeltaSlice(t, []float32{2.775, 5.54, 2.775}, sliceOf(position(ExportOptions{})), 1e-4)
	assert.InDeltaSlice(t, []float32{277.5, 554, 277.5}, sliceOf(position(ExportOptions{UnitScale: 1})), 1e-3)
}

func sliceOf(v [3]float32) []float32 { return v[:] }

func TestExport_UnresolvedMeshLight(t *testing.T) {
	logger := &recordingLogger{}
	rig := &Rig{
		BaseDir: t.TempDir(),
		Lights: []LightSpec{
			{Name: "Ghost", Type: "area", Mesh: "missing.ply", Units: "lumen"},
			{Name: "Bulb", Type: "point"},
		},
	}

	scope := memory.NewScope()
	res, err := Export(rig, scope, ExportOptions{Logger: logger})
	require.NoError(t, err)
	assert.Equal(t, ExportResult{Lights: 1, Skipped: 1}, res)
	assert.Equal(t, []string{"Bulb"}, attachedNames(scope))
	assert.NotEmpty(t, logger.lines)
}

func TestExport_PreAttach(t *testing.T) {
	var seen []string
	opts := ExportOptions{PreAttach: func(obj rpr.SceneObject, node *host.Node) {
		seen = append(seen, node.Name)
	}}
	_, err := Export(NewCornellRig(), memory.NewScope(), opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ceiling Light"}, seen, "the hook only sees lights")
}

func TestExport_RendererFailure(t *testing.T) {
	scope := memory.NewScope()
	scope.FailAttach = true
	_, err := Export(NewCornellRig(), scope, ExportOptions{})
	assert.Error(t, err)

	scope = memory.NewScope()
	scope.FailCreate = true
	_, err = Export(NewStudioRig(), scope, ExportOptions{})
	assert.Error(t, err)
}

func TestExport_GLTF(t *testing.T) {
	scope := gltfscene.NewScope()
	res, err := Export(NewStudioRig(), scope, ExportOptions{})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "studio.glb")
	require.NoError(t, scope.Save(path))

	doc, err := gltf.Open(path)
	require.NoError(t, err)
	assert.Len(t, doc.Nodes, res.Lights+res.Props)
	assert.Len(t, doc.Meshes, 9)
	assert.Contains(t, doc.ExtensionsUsed, gltfscene.ExtLightsPunctual)
	assert.Contains(t, doc.ExtensionsUsed, gltfscene.ExtEmissiveStrength)
}

// recordingLogger keeps every formatted line
type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) Printf(format string, args ...interface{}) {
	r.lines = append(r.lines, format)
}
