package stl

import (
	"github.com/philipparndt/gocmm/pkg/geometry"
	"github.com/philipparndt/gocmm/pkg/mesh"
)

// Model represents a complete STL model
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// FromSurface builds a model from facets indexing into points. Normals follow
// the right-hand rule over each facet's vertex order, so outward-oriented
// facets (see mesh.OrientBoundary) give outward normals.
func FromSurface(name string, points []geometry.Vector3, facets []mesh.Facet) *Model {
	model := &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0, len(facets)),
	}
	for _, f := range facets {
		model.AddTriangle(geometry.TriangleFromVertices(points[f[0]], points[f[1]], points[f[2]]))
	}
	return model
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}

// Volume returns the enclosed volume of a closed, consistently oriented
// model by summing signed tetrahedra against the origin.
func (m *Model) Volume() float64 {
	volume := 0.0
	origin := geometry.Vector3{}
	for _, t := range m.Triangles {
		volume += geometry.NewTetrahedron(origin, t.V1, t.V2, t.V3).SignedVolume()
	}
	return volume
}

// Vertices returns each distinct vertex once, in first-seen order
func (m *Model) Vertices() []geometry.Vector3 {
	seen := make(map[geometry.Vector3]struct{}, len(m.Triangles))
	vertices := make([]geometry.Vector3, 0, len(m.Triangles))
	for _, t := range m.Triangles {
		for _, v := range [3]geometry.Vector3{t.V1, t.V2, t.V3} {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			vertices = append(vertices, v)
		}
	}
	return vertices
}
