package lights

import "github.com/go-gl/mathgl/mgl32"

// RendererTransform converts a node's object-to-world matrix to the renderer
// convention: scale is removed from the rotation part (lights are never
// scaled), the translation is multiplied by unitScale, and the result is
// written row-major for SetTransform(m, false).
func RendererTransform(tm mgl32.Mat4, unitScale float32) [16]float32 {
	m := tm
	for c := 0; c < 3; c++ {
		col := m.Col(c).Vec3()
		if l := col.Len(); l > 0 {
			col = col.Mul(1 / l)
		}
		m.SetCol(c, col.Vec4(0))
	}
	m.SetCol(3, m.Col(3).Vec3().Mul(unitScale).Vec4(1))

	return [16]float32(m.Transpose())
}
