// Package cmm reads marker files such as the Chimera .cmm format, where each
// marker is a line like
//
//	<marker id="1" x="12.5" y="-3.25" z="7" r="1" g="1" b="0" radius="0.8"/>
package cmm

import (
	"github.com/philipparndt/gocmm/pkg/geometry"
)

// Marker is a single marker record
type Marker struct {
	ID     string
	X      float64
	Y      float64
	Z      float64
	Radius float64
	// Line is the 1-based line number the record was read from
	Line int
}

// Position returns the marker coordinates as a point
func (m Marker) Position() geometry.Vector3 {
	return geometry.NewVector3(m.X, m.Y, m.Z)
}

// MarkerSet is the ordered list of markers read from one file
type MarkerSet struct {
	Name    string
	Source  string
	Markers []Marker
}

// NewMarkerSet creates an empty marker set
func NewMarkerSet(source string) *MarkerSet {
	return &MarkerSet{
		Source:  source,
		Markers: make([]Marker, 0),
	}
}

// AddMarker appends a marker, preserving file order
func (s *MarkerSet) AddMarker(m Marker) {
	s.Markers = append(s.Markers, m)
}

// Len returns the number of markers
func (s *MarkerSet) Len() int {
	return len(s.Markers)
}

// Points returns the marker positions in file order. Index i of the result
// is marker i.
func (s *MarkerSet) Points() []geometry.Vector3 {
	points := make([]geometry.Vector3, len(s.Markers))
	for i, m := range s.Markers {
		points[i] = m.Position()
	}
	return points
}
