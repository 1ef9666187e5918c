package geom

// point.go: exact 3D coordinates. Adapted from math/lin/vector.go's V3 —
// same Add/Sub/Scale shape, but operating on *big.Rat so every result is
// exact instead of floating point.

// Point3D is an exact coordinate in 3-space. The zero value is the origin.
type Point3D struct {
	X, Y, Z R
}

// NewPoint3D builds a point from exact coordinates.
func NewPoint3D(x, y, z R) Point3D { return Point3D{X: x, Y: y, Z: z} }

// PointInt builds a point from integer coordinates, a convenience for
// literal test fixtures and the worked examples in spec.md §8.
func PointInt(x, y, z int64) Point3D {
	return Point3D{X: RInt(x), Y: RInt(y), Z: RInt(z)}
}

// Add returns p + q.
func (p Point3D) Add(q Point3D) Point3D {
	return Point3D{rAdd(p.X, q.X), rAdd(p.Y, q.Y), rAdd(p.Z, q.Z)}
}

// Sub returns p - q.
func (p Point3D) Sub(q Point3D) Point3D {
	return Point3D{rSub(p.X, q.X), rSub(p.Y, q.Y), rSub(p.Z, q.Z)}
}

// Scale returns p * s.
func (p Point3D) Scale(s R) Point3D {
	return Point3D{rMul(p.X, s), rMul(p.Y, s), rMul(p.Z, s)}
}

// Div returns p / s. Panics if s is zero.
func (p Point3D) Div(s R) Point3D {
	return Point3D{rDiv(p.X, s), rDiv(p.Y, s), rDiv(p.Z, s)}
}

// Neg returns -p.
func (p Point3D) Neg() Point3D {
	return Point3D{rNeg(p.X), rNeg(p.Y), rNeg(p.Z)}
}

// Eq (==) returns true if p and q have identical coordinates. Equality on
// exact rationals is exact: there is no tolerance band.
func (p Point3D) Eq(q Point3D) bool {
	return rEq(p.X, q.X) && rEq(p.Y, q.Y) && rEq(p.Z, q.Z)
}

// WithX returns a copy of p with its x-coordinate replaced, a convenience
// for building a point at a known x whose y/z are filled in afterward by
// projection.
func (p Point3D) WithX(x R) Point3D {
	return Point3D{X: x, Y: p.Y, Z: p.Z}
}

// Mean returns the arithmetic mean of the given points. Panics on an empty
// slice: there is no meaningful mean of zero points.
func Mean(pts []Point3D) Point3D {
	if len(pts) == 0 {
		panic("geom: Mean of no points")
	}
	sum := pts[0]
	for _, p := range pts[1:] {
		sum = sum.Add(p)
	}
	return sum.Div(RInt(int64(len(pts))))
}
