// Package delaunay computes 3D Delaunay tetrahedralizations by incremental
// Bowyer-Watson insertion. Every hull face is closed by a ghost cell joining
// it to a vertex at infinity, so the real cells always cover the convex hull
// of the inserted points.
package delaunay

import (
	"context"
	"math"
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/philipparndt/gocmm/pkg/geometry"
	"github.com/philipparndt/gocmm/pkg/mesh"
)

// ghost is the index of the vertex at infinity
const ghost = -1

// Tetrahedralizer is the default mesh.Tetrahedralizer
type Tetrahedralizer struct {
	opts options
}

var _ mesh.Tetrahedralizer = (*Tetrahedralizer)(nil)

// New creates a Tetrahedralizer
func New(setters ...Option) *Tetrahedralizer {
	opts := options{
		epsilon: defaultEpsilon,
		logger:  zap.NewNop().Sugar(),
	}
	for _, set := range setters {
		set(&opts)
	}
	return &Tetrahedralizer{opts: opts}
}

// cell is a live tetrahedron with positive orientation. A ghost cell holds
// the ghost vertex in one slot; replacing it by any point beyond the hull
// face gives positive orientation. r2 is negative for cells that never
// conflict through their circumsphere.
type cell struct {
	v      mesh.Tetrahedron
	center geometry.Vector3
	r2     float64
}

func (c cell) ghostSlot() int {
	for i, k := range c.v {
		if k == ghost {
			return i
		}
	}
	return -1
}

// Tetrahedralize returns the Delaunay tetrahedra of points. Points that
// coincide with an earlier point are skipped and appear in no tetrahedron.
func (d *Tetrahedralizer) Tetrahedralize(ctx context.Context, points []geometry.Vector3) ([]mesh.Tetrahedron, error) {
	n := len(points)
	if n < 4 {
		return nil, &mesh.DegenerateInputError{Points: n, Reason: "at least 4 points are required"}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i, p := range points {
		if !p.IsFinite() {
			return nil, errors.Errorf("point %d has a non-finite coordinate %v", i, p)
		}
	}

	bbox := geometry.BoundsOf(points)
	scale := bbox.Diagonal()
	if scale == 0 {
		return nil, &mesh.DegenerateInputError{Points: n, Reason: "all points coincide"}
	}

	// Work in a unit-diagonal frame centered on the origin.
	center := bbox.Center()
	pts := make([]geometry.Vector3, n)
	for i, p := range points {
		pts[i] = p.Sub(center).Mul(1 / scale)
	}
	seed, err := seedTetrahedron(pts, d.opts.epsilon)
	if err != nil {
		return nil, err
	}

	cells := initialCells(pts, seed)
	seeded := make(map[int]bool, 4)
	for _, k := range seed {
		seeded[k] = true
	}

	skipped := 0
	for i := 0; i < n; i++ {
		if seeded[i] {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var inserted bool
		cells, inserted, err = d.insert(pts, cells, i)
		if err != nil {
			return nil, errors.Wrapf(err, "inserting point %d", i)
		}
		if !inserted {
			skipped++
			d.opts.logger.Debugw("skipping duplicate point", "index", i, "point", points[i])
		}
	}

	result := make([]mesh.Tetrahedron, 0, len(cells))
	for _, c := range cells {
		if c.ghostSlot() < 0 {
			result = append(result, c.v)
		}
	}
	if len(result) == 0 {
		return nil, &mesh.DegenerateInputError{Points: n, Reason: "no tetrahedra could be formed"}
	}

	d.opts.logger.Debugw("tetrahedralized",
		"points", n,
		"duplicates", skipped,
		"tetrahedra", len(result),
		"hullFaces", len(cells)-len(result),
	)
	return result, nil
}

// seedTetrahedron picks four points spanning three dimensions: the first
// point, the one farthest from it, the one farthest from the line through
// both, and the one farthest from their plane.
func seedTetrahedron(pts []geometry.Vector3, eps float64) (mesh.Tetrahedron, error) {
	var seed mesh.Tetrahedron
	p0 := pts[0]

	dist := 0.0
	for i, p := range pts {
		if l := p.Distance(p0); l > dist {
			seed[1], dist = i, l
		}
	}
	if dist <= eps {
		return seed, &mesh.DegenerateInputError{Points: len(pts), Reason: "all points coincide"}
	}

	axis := pts[seed[1]].Sub(p0).Normalize()
	dist = 0.0
	for i, p := range pts {
		if l := axis.Cross(p.Sub(p0)).Length(); l > dist {
			seed[2], dist = i, l
		}
	}
	if dist <= eps {
		return seed, &mesh.DegenerateInputError{Points: len(pts), Reason: "all points are collinear"}
	}

	normal := axis.Cross(pts[seed[2]].Sub(p0)).Normalize()
	dist = 0.0
	for i, p := range pts {
		if l := math.Abs(normal.Dot(p.Sub(p0))); l > dist {
			seed[3], dist = i, l
		}
	}
	if dist <= eps {
		return seed, &mesh.DegenerateInputError{Points: len(pts), Reason: "all points are coplanar"}
	}
	return seed, nil
}

// initialCells returns the seed tetrahedron and the ghost cells on its faces.
func initialCells(pts []geometry.Vector3, seed mesh.Tetrahedron) []cell {
	if orientCell(pts, seed) < 0 {
		seed[0], seed[1] = seed[1], seed[0]
	}

	cells := []cell{newCell(pts, seed)}
	for k := 0; k < 4; k++ {
		g := replace(seed, k, ghost)
		// Mirrored, so points outside the face are on the positive side.
		a, b := (k+1)%4, (k+2)%4
		g[a], g[b] = g[b], g[a]
		cells = append(cells, cell{v: g, r2: -1})
	}
	return cells
}

func newCell(pts []geometry.Vector3, v mesh.Tetrahedron) cell {
	for _, k := range v {
		if k == ghost {
			return cell{v: v, r2: -1}
		}
	}
	center, r2, ok := circumsphere(pts[v[0]], pts[v[1]], pts[v[2]], pts[v[3]])
	if !ok {
		// Too flat for a circumsphere; it only leaves through containment.
		return cell{v: v, r2: -1}
	}
	return cell{v: v, center: center, r2: r2}
}

// replace returns v with the vertex in slot swapped for k.
func replace(v mesh.Tetrahedron, slot, k int) mesh.Tetrahedron {
	v[slot] = k
	return v
}

// contains reports whether p lies inside or on the closed real cell.
func contains(pts []geometry.Vector3, v mesh.Tetrahedron, pi int) bool {
	for slot := 0; slot < 4; slot++ {
		if orientCell(pts, replace(v, slot, pi)) < 0 {
			return false
		}
	}
	return true
}

// split returns the face of v opposite slot skip.
func split(v mesh.Tetrahedron, skip int) mesh.Facet {
	var face mesh.Facet
	k := 0
	for i := 0; i < 4; i++ {
		if i != skip {
			face[k] = v[i]
			k++
		}
	}
	return face
}

func hasGhost(f mesh.Facet) bool {
	return f[0] == ghost || f[1] == ghost || f[2] == ghost
}

type cavityFace struct {
	face  mesh.Facet
	owner int
	slot  int
	count int
}

// insert adds point pi. The cavity holds every real cell whose circumsphere
// or closed interior holds the point, and every ghost cell whose hull face
// the point lies beyond. A ghost whose face is coplanar with the point
// follows the real cell behind that face. The cavity then loses cells until
// each of its boundary faces is visible from the point, which keeps it
// star-shaped when rounding disagrees about near-cospherical cells.
func (d *Tetrahedralizer) insert(pts []geometry.Vector3, cells []cell, pi int) ([]cell, bool, error) {
	p := pts[pi]
	inCavity := make([]bool, len(cells))
	pinned := make([]bool, len(cells))
	anyPinned := false
	var coplanar []int

	for j, c := range cells {
		if slot := c.ghostSlot(); slot >= 0 {
			switch o := orientCell(pts, replace(c.v, slot, pi)); {
			case o > 0:
				pinned[j], inCavity[j], anyPinned = true, true, true
			case o == 0:
				coplanar = append(coplanar, j)
			}
			continue
		}
		if contains(pts, c.v, pi) {
			pinned[j], inCavity[j], anyPinned = true, true, true
			continue
		}
		if c.r2 >= 0 && p.Sub(c.center).LengthSquared() < c.r2 {
			inCavity[j] = true
		}
	}
	if !anyPinned {
		return nil, false, errors.New("point lies in no cell")
	}

	if len(coplanar) > 0 {
		behind := make(map[mesh.Facet]int, 4*len(cells))
		for j, c := range cells {
			if c.ghostSlot() < 0 {
				for _, f := range c.v.Facets() {
					behind[f] = j
				}
			}
		}
		for _, j := range coplanar {
			c := cells[j]
			if r, ok := behind[split(c.v, c.ghostSlot()).Canonical()]; ok {
				inCavity[j] = inCavity[r]
			}
		}
	}

	tol2 := d.opts.epsilon * d.opts.epsilon
	for j, c := range cells {
		if !pinned[j] {
			continue
		}
		for _, k := range c.v {
			if k != ghost && pts[k].Sub(p).LengthSquared() <= tol2 {
				return cells, false, nil
			}
		}
	}

	var boundary []cavityFace
	for {
		boundary = cavityBoundary(cells, inCavity)

		var drop []int
		for _, f := range boundary {
			if visible(pts, cells[f.owner].v, f, pi) {
				continue
			}
			if pinned[f.owner] {
				return nil, false, errors.Errorf("cavity face %s is not visible from the point", f.face.Canonical())
			}
			drop = append(drop, f.owner)
		}
		if len(drop) == 0 {
			break
		}
		for _, j := range drop {
			inCavity[j] = false
		}
	}

	next := make([]cell, 0, len(cells)+2*len(boundary))
	for j, c := range cells {
		if !inCavity[j] {
			next = append(next, c)
		}
	}
	for _, f := range boundary {
		next = append(next, newCell(pts, replace(cells[f.owner].v, f.slot, pi)))
	}
	return next, true, nil
}

// visible reports whether replacing the vertex in f.slot by pi keeps the
// owner positively oriented. For a face through the ghost vertex, an edge of
// the hull horizon, the new hull face must keep the orientation of the old
// one.
func visible(pts []geometry.Vector3, owner mesh.Tetrahedron, f cavityFace, pi int) bool {
	if !hasGhost(f.face) {
		return orientCell(pts, replace(owner, f.slot, pi)) > 0
	}
	return hullNormal(pts, owner).Dot(hullNormal(pts, replace(owner, f.slot, pi))) > 0
}

// hullNormal is the outward normal of a ghost cell's hull face.
func hullNormal(pts []geometry.Vector3, v mesh.Tetrahedron) geometry.Vector3 {
	g := cell{v: v}.ghostSlot()
	f := split(v, g)
	n := pts[f[1]].Sub(pts[f[0]]).Cross(pts[f[2]].Sub(pts[f[0]]))
	if (3-g)%2 == 1 {
		return n.Mul(-1)
	}
	return n
}

// cavityBoundary returns the faces belonging to exactly one cavity cell,
// sorted by canonical facet.
func cavityBoundary(cells []cell, inCavity []bool) []cavityFace {
	faces := make(map[mesh.Facet]*cavityFace)
	for j, c := range cells {
		if !inCavity[j] {
			continue
		}
		for slot := 0; slot < 4; slot++ {
			face := split(c.v, slot)
			key := face.Canonical()
			if f, ok := faces[key]; ok {
				f.count++
				continue
			}
			faces[key] = &cavityFace{face: face, owner: j, slot: slot, count: 1}
		}
	}

	boundary := make([]cavityFace, 0, len(faces))
	for _, f := range faces {
		if f.count == 1 {
			boundary = append(boundary, *f)
		}
	}
	sort.Slice(boundary, func(i, j int) bool {
		return boundary[i].face.Canonical().Less(boundary[j].face.Canonical())
	})
	return boundary
}
