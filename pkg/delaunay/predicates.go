package delaunay

import (
	"github.com/philipparndt/gocmm/pkg/geometry"
	"github.com/philipparndt/gocmm/pkg/mesh"
)

// orient is six times the signed volume of (a, b, c, d). It is positive when
// d lies on the side of plane abc that the right-hand normal points to.
func orient(a, b, c, d geometry.Vector3) float64 {
	return b.Sub(a).Triple(c.Sub(a), d.Sub(a))
}

// orientCell is orient over the points of v. It is evaluated on the sorted
// indices and corrected by the permutation parity, so every cell sharing the
// same four points rounds to the same magnitude. v must not hold the ghost.
func orientCell(pts []geometry.Vector3, v mesh.Tetrahedron) float64 {
	sign := 1.0
	for i := 1; i < 4; i++ {
		for j := i; j > 0 && v[j-1] > v[j]; j-- {
			v[j-1], v[j] = v[j], v[j-1]
			sign = -sign
		}
	}
	return sign * orient(pts[v[0]], pts[v[1]], pts[v[2]], pts[v[3]])
}

// circumsphere returns the center and squared radius of the sphere through
// four points. ok is false for a flat tetrahedron.
func circumsphere(a, b, c, d geometry.Vector3) (center geometry.Vector3, r2 float64, ok bool) {
	u := b.Sub(a)
	v := c.Sub(a)
	w := d.Sub(a)

	den := 2 * u.Triple(v, w)
	if den == 0 {
		return geometry.Vector3{}, 0, false
	}

	offset := v.Cross(w).Mul(u.LengthSquared()).
		Add(w.Cross(u).Mul(v.LengthSquared())).
		Add(u.Cross(v).Mul(w.LengthSquared())).
		Mul(1 / den)

	return a.Add(offset), offset.LengthSquared(), true
}
