package geometry

import "math"

// Tetrahedron is a solid bounded by four triangular faces
type Tetrahedron struct {
	V1, V2, V3, V4 Vector3
}

// NewTetrahedron creates a new tetrahedron
func NewTetrahedron(v1, v2, v3, v4 Vector3) Tetrahedron {
	return Tetrahedron{V1: v1, V2: v2, V3: v3, V4: v4}
}

// SignedVolume returns (1/6) (V2-V1) . ((V3-V1) x (V4-V1)). The sign flips
// with every odd permutation of the vertices.
func (t Tetrahedron) SignedVolume() float64 {
	a := t.V2.Sub(t.V1)
	b := t.V3.Sub(t.V1)
	c := t.V4.Sub(t.V1)
	return a.Triple(b, c) / 6.0
}

// Volume returns the unsigned volume. Degenerate tetrahedra yield 0.
func (t Tetrahedron) Volume() float64 {
	return math.Abs(t.SignedVolume())
}

// Faces returns the four bounding triangles, each with the vertex order it
// has in the tetrahedron (no outward orientation is implied).
func (t Tetrahedron) Faces() [4]Triangle {
	return [4]Triangle{
		TriangleFromVertices(t.V1, t.V2, t.V3),
		TriangleFromVertices(t.V1, t.V2, t.V4),
		TriangleFromVertices(t.V1, t.V3, t.V4),
		TriangleFromVertices(t.V2, t.V3, t.V4),
	}
}

// Centroid returns the average of the four vertices
func (t Tetrahedron) Centroid() Vector3 {
	return t.V1.Add(t.V2).Add(t.V3).Add(t.V4).Mul(0.25)
}
