package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-light-bridge/pkg/core"
	"github.com/df07/go-light-bridge/pkg/geometry"
	"github.com/df07/go-light-bridge/pkg/host"
	"github.com/df07/go-light-bridge/pkg/lights"
	"github.com/df07/go-light-bridge/pkg/material"
)

func lightNamed(t *testing.T, b *Built, name string) *lights.PhysicalLight {
	t.Helper()
	node := b.Scene.NodeByName(name)
	require.NotNil(t, node, "no node %q", name)
	light, ok := node.Object.(*lights.PhysicalLight)
	require.True(t, ok, "%q is not a light", name)
	return light
}

func TestRig_BuildStudio(t *testing.T) {
	rig := NewStudioRig()
	b, err := rig.Build(nil)
	require.NoError(t, err)

	assert.Len(t, b.Props, len(rig.Props))
	assert.Len(t, b.Lights, len(rig.Lights))
	assert.Len(t, b.Scene.Nodes, len(rig.Props)+len(rig.Lights))

	key := lightNamed(t, b, "Key").Params
	snap, err := lights.Capture(key, 0)
	require.NoError(t, err)
	assert.Equal(t, lights.Area{Shape: lights.Rectangle{Width: 0.6, Length: 1.2}}, snap.Kind)
	assert.Equal(t, lights.UnitsLumen, snap.Units)
	assert.Equal(t, lights.ColourModeTemperature, snap.ColourMode, "a temperature selects temperature mode")
	assert.Equal(t, 5600.0, snap.Temperature)

	rim, err := lights.Capture(lightNamed(t, b, "Rim").Params, 0)
	require.NoError(t, err)
	assert.Equal(t, lights.Spot{InnerCone: 30, OuterCone: 40}, rim.Kind)

	fill, err := lights.Capture(lightNamed(t, b, "Fill").Params, 0)
	require.NoError(t, err)
	assert.False(t, fill.Visible)
	assert.Equal(t, core.NewVec3(0.9, 0.95, 1), fill.Colour)

	bulb, err := lights.Capture(lightNamed(t, b, "Bulb").Params, 0)
	require.NoError(t, err)
	assert.False(t, bulb.Enabled)

	tube, err := lights.Capture(lightNamed(t, b, "Tube").Params, 0)
	require.NoError(t, err)
	assert.Equal(t, lights.Area{Shape: lights.Cylinder{Width: 0.05, Length: 1.2, Upright: true}}, tube.Kind)
}

func TestRig_BuildKeys(t *testing.T) {
	b, err := NewStudioRig().Build(nil)
	require.NoError(t, err)

	practical := lightNamed(t, b, "Practical").Params
	assert.True(t, practical.IsAnimated(lights.ParamIntensity))
	assert.InDelta(t, 40.0, practical.Float(lights.ParamIntensity, host.FrameTime(0)), 1e-9)
	assert.InDelta(t, 20.0, practical.Float(lights.ParamIntensity, host.FrameTime(12)), 1e-9)
	assert.InDelta(t, 0.0, practical.Float(lights.ParamIntensity, host.FrameTime(30)), 1e-9)

	rig := &Rig{Lights: []LightSpec{{
		Name:   "Shift",
		Colour: vec(1, 1, 1),
		Keys: []KeySpec{
			{Frame: 0, Param: "colour", Colour: vec(1, 0, 0)},
			{Frame: 10, Param: "colour", Colour: vec(0, 0, 1)},
		},
	}}}
	b, err = rig.Build(nil)
	require.NoError(t, err)
	c := lightNamed(t, b, "Shift").Params.Color(lights.ParamColour, host.FrameTime(5))
	assert.InDelta(t, 0.5, c.X, 1e-9)
	assert.InDelta(t, 0.5, c.Z, 1e-9)
}

func TestRig_BuildMeshLight(t *testing.T) {
	b, err := NewStudioRig().Build(nil)
	require.NoError(t, err)

	strip, err := lights.Capture(lightNamed(t, b, "Strip").Params, 0)
	require.NoError(t, err)
	assert.Equal(t, lights.Area{Shape: lights.MeshShape{Ref: "Strip Mesh"}}, strip.Kind, "a mesh selects the mesh shape")

	m, ok := b.Scene.ResolveMesh("Strip Mesh", 0)
	require.True(t, ok)
	assert.NoError(t, m.Validate())
	assert.Len(t, m.Verts, 2*(geometry.PointsPerArc+1))
	assert.Len(t, m.Faces, 4*geometry.PointsPerArc)
}

func TestRig_BuildFileProp(t *testing.T) {
	want := &host.Mesh{
		Verts: []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Faces: []host.Face{{V: [3]int32{0, 1, 2}}},
	}
	var asked []host.MeshRef
	files := host.MeshResolverFunc(func(ref host.MeshRef, t host.TimeValue) (*host.Mesh, bool) {
		asked = append(asked, ref)
		return want, ref == "tri.ply"
	})

	rig := &Rig{Props: []PropSpec{
		{Name: "Tri", Mesh: "tri.ply"},
		{Name: "Gone", Mesh: "gone.ply"},
	}}
	b, err := rig.Build(files)
	require.NoError(t, err)
	assert.Empty(t, asked, "file meshes load on demand")

	m, ok := b.Props[0].RenderMesh(0)
	assert.True(t, ok)
	assert.Same(t, want, m)

	_, ok = b.Props[1].RenderMesh(0)
	assert.False(t, ok)
	assert.Equal(t, []host.MeshRef{"tri.ply", "gone.ply"}, asked)

	noResolver, err := rig.Build(nil)
	require.NoError(t, err)
	_, ok = noResolver.Props[0].RenderMesh(0)
	assert.False(t, ok)
}

func TestRig_BuildInvalid(t *testing.T) {
	rig := &Rig{Lights: []LightSpec{{Name: "L", Type: "laser"}}}
	_, err := rig.Build(nil)
	assert.Error(t, err)
}

func TestNodeTransform(t *testing.T) {
	tm := nodeTransform(vec(1, 2, 3), nil)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, tm.Col(3).Vec3())

	// -90 degrees about X turns the -Z emitting side downward
	tm = nodeTransform(nil, vec(-90, 0, 0))
	dir := tm.Mul4x1(mgl32.Vec4{0, 0, -1, 0}).Vec3()
	want := mgl32.Vec3{0, -1, 0}
	for i := range want {
		assert.InDelta(t, want[i], dir[i], 1e-5, "component %d of %v", i, dir)
	}

	assert.Equal(t, mgl32.Ident4(), nodeTransform(nil, nil))
}

func TestToHostMesh(t *testing.T) {
	m := toHostMesh(geometry.Rectangle(mgl32.Vec2{0, 0}, mgl32.Vec2{1, 1}))
	assert.Len(t, m.Verts, 4)
	assert.Equal(t, []host.Face{{V: [3]int32{0, 1, 3}}, {V: [3]int32{0, 3, 2}}}, m.Faces)

	quad := &geometry.Mesh{
		Points:     []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		Indices:    []int32{0, 1, 2, 3},
		FaceCounts: []int32{4},
	}
	assert.Equal(t, []host.Face{{V: [3]int32{0, 1, 2}}, {V: [3]int32{0, 2, 3}}}, toHostMesh(quad).Faces)
}

func TestSizeAt(t *testing.T) {
	assert.Equal(t, 1.0, sizeAt(nil, 0))
	assert.Equal(t, 2.0, sizeAt([]float64{2}, 1))
	assert.Equal(t, 3.0, sizeAt([]float64{2, 3}, 1))
}

func TestMaterialSpec_Build(t *testing.T) {
	tests := []struct {
		name  string
		spec  MaterialSpec
		check func(t *testing.T, m material.Material)
	}{
		{"Diffuse", MaterialSpec{Type: "Diffuse", Colour: vec(0.1, 0.2, 0.3), NormalMap: "n.png"}, func(t *testing.T, m material.Material) {
			d := m.(*material.Diffuse)
			assert.Equal(t, core.NewVec3(0.1, 0.2, 0.3), d.Albedo.Color)
			assert.Equal(t, "n.png", d.NormalMap)
		}},
		{"Mapped", MaterialSpec{Type: "diffuse", Map: "wood.png"}, func(t *testing.T, m material.Material) {
			assert.Equal(t, "wood.png", m.(*material.Diffuse).Albedo.Map)
		}},
		{"Default colour", MaterialSpec{Type: "transparent"}, func(t *testing.T, m material.Material) {
			assert.Equal(t, core.NewVec3(1, 1, 1), m.(*material.Transparent).Color.Color)
		}},
		{"Refraction default IOR", MaterialSpec{Type: "refraction", Roughness: 0.2}, func(t *testing.T, m material.Material) {
			r := m.(*material.MicrofacetRefraction)
			assert.Equal(t, 1.5, r.IOR)
			assert.Equal(t, 0.2, r.Roughness.Value)
		}},
		{"Emissive", MaterialSpec{Type: "emissive", Colour: vec(2, 2, 2)}, func(t *testing.T, m material.Material) {
			assert.Equal(t, core.NewVec3(2, 2, 2), m.(*material.Emissive).Emission)
		}},
		{"Fresnel colour", MaterialSpec{Type: "refraction", Fresnel: &FresnelSpec{Type: "Fresnel", InvecMap: "in.png"}}, func(t *testing.T, m material.Material) {
			f, ok := m.(*material.MicrofacetRefraction).Color.Node.(*material.Fresnel)
			require.True(t, ok)
			assert.Equal(t, 1.5, f.IOR.Value, "default ior")
			assert.Equal(t, "in.png", f.InvecMap)
		}},
		{"Schlick colour", MaterialSpec{Type: "diffuse", Fresnel: &FresnelSpec{Type: "schlick", Reflectance: vec(0.04, 0.04, 0.04)}}, func(t *testing.T, m material.Material) {
			fs, ok := m.(*material.Diffuse).Albedo.Node.(*material.FresnelSchlick)
			require.True(t, ok)
			assert.Equal(t, core.NewVec3(0.04, 0.04, 0.04), fs.Reflectance.Color)
		}},
		{"Add", MaterialSpec{Type: "add", Layers: []MaterialSpec{{Type: "diffuse"}, {Type: "emissive"}}}, func(t *testing.T, m material.Material) {
			a := m.(*material.Add)
			assert.IsType(t, &material.Diffuse{}, a.Material1)
			assert.IsType(t, &material.Emissive{}, a.Material2)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := tt.spec.build()
			require.NoError(t, err)
			tt.check(t, m)
		})
	}

	_, err := (&MaterialSpec{Type: "metal"}).build()
	assert.Error(t, err)
	_, err = (&MaterialSpec{Type: "add"}).build()
	assert.Error(t, err)
	_, err = (&MaterialSpec{Type: "diffuse", Fresnel: &FresnelSpec{Type: "fresnelish"}}).build()
	assert.Error(t, err)
}
