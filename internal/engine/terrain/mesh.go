package terrain

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Mesh owns the vertex and triangle buffers for one generated terrain.
// It is immutable once built; regeneration builds a new Mesh.
type Mesh struct {
	Vertices  []mgl32.Vec3
	Triangles [][3]uint32
}

// BuildMesh converts a height grid into a triangulated mesh.
//
// Vertices are laid out row-major (index i*size+j), centered on the
// origin and scaled by cellSpacing on X/Z, with Y = height*heightScale.
// Each interior cell emits two triangles sharing a diagonal; the
// winding order determines the outward normal sign and must not change.
func BuildMesh(grid *HeightGrid, cellSpacing, heightScale float64) *Mesh {
	size := grid.Size
	if size < 0 {
		size = 0
	}

	mesh := &Mesh{
		Vertices: make([]mgl32.Vec3, 0, size*size),
	}

	half := float64(size) / 2.0
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			x := (float64(i) - half) * cellSpacing
			z := (float64(j) - half) * cellSpacing
			y := grid.At(i, j) * heightScale
			mesh.Vertices = append(mesh.Vertices, mgl32.Vec3{float32(x), float32(y), float32(z)})
		}
	}

	// A grid below 2x2 has no interior cells and produces no triangles.
	if size >= 2 {
		mesh.Triangles = make([][3]uint32, 0, 2*(size-1)*(size-1))
		for i := 0; i < size-1; i++ {
			for j := 0; j < size-1; j++ {
				a := uint32(i*size + j)
				b := a + 1
				c := uint32((i+1)*size + j)
				d := c + 1

				mesh.Triangles = append(mesh.Triangles, [3]uint32{a, b, c})
				mesh.Triangles = append(mesh.Triangles, [3]uint32{b, d, c})
			}
		}
	}

	return mesh
}

// FaceNormal computes the flat-shading normal for one triangle.
// Degenerate (zero-area) triangles yield unit +Y instead of NaN.
func (m *Mesh) FaceNormal(tri [3]uint32) mgl32.Vec3 {
	v1 := m.Vertices[tri[0]]
	v2 := m.Vertices[tri[1]]
	v3 := m.Vertices[tri[2]]

	n := v2.Sub(v1).Cross(v3.Sub(v1))
	if n.Len() < 1e-6 {
		return mgl32.Vec3{0, 1, 0}
	}
	return n.Normalize()
}
