package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-5

// requireValidMesh checks the structural invariants every generator must uphold
func requireValidMesh(t *testing.T, m *Mesh) {
	t.Helper()
	require.NoError(t, m.Validate())

	total := 0
	for _, c := range m.FaceCounts {
		require.EqualValues(t, 3, c, "only triangles are generated")
		total += int(c)
	}
	require.Equal(t, len(m.Indices), total)
}

// signedVolume returns the volume enclosed by a closed mesh; it is positive
// when the counter-clockwise face normals point outward
func signedVolume(m *Mesh) float64 {
	var vol float64
	for i := 0; i < m.FaceCount(); i++ {
		a, b, c := m.Triangle(i)
		vol += float64(a.Dot(b.Cross(c))) / 6
	}
	return vol
}

func vecNear(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < tolerance
}
