package geom

import "fmt"

// Line3D is a directed infinite line through P1 and P2 (P1 != P2).
type Line3D struct {
	P1, P2 Point3D
}

// NewLine3D builds a line through two distinct points. Panics if p1 == p2.
func NewLine3D(p1, p2 Point3D) Line3D {
	if p1.Eq(p2) {
		panic(fmt.Errorf("geom: line requires two distinct points, got %v twice", p1))
	}
	return Line3D{P1: p1, P2: p2}
}

// Direction returns p2 - p1, the line's (unnormalized) direction vector.
func (l Line3D) Direction() Point3D { return l.P2.Sub(l.P1) }

// Kind implements Element.
func (l Line3D) Kind() ElementKind { return LineElement }

func (l Line3D) String() string {
	return fmt.Sprintf("Line3D(%v -> %v)", l.P1, l.P2)
}

// Ray3D is a directed half-line from P1 in Direction (Direction != 0). The
// direction is not normalized; its x-component sign governs which side of
// P1 the ray extends on, which is what break_element and the x-range
// clipping in intersect/project rely on.
type Ray3D struct {
	P1        Point3D
	Direction Point3D
}

// NewRay3D builds a ray. Panics if direction is the zero vector.
func NewRay3D(p1, direction Point3D) Ray3D {
	if direction.X.Sign() == 0 && direction.Y.Sign() == 0 && direction.Z.Sign() == 0 {
		panic(fmt.Errorf("geom: ray requires a non-zero direction"))
	}
	return Ray3D{P1: p1, Direction: direction}
}

// P2 returns a second point on the ray, p1 + direction.
func (r Ray3D) P2() Point3D { return r.P1.Add(r.Direction) }

// Kind implements Element.
func (r Ray3D) Kind() ElementKind { return RayElement }

func (r Ray3D) String() string {
	return fmt.Sprintf("Ray3D(%v, dir=%v)", r.P1, r.Direction)
}

// Segment3D is a bounded segment [P1, P2] (P1 != P2).
type Segment3D struct {
	P1, P2 Point3D
}

// NewSegment3D builds a segment. Panics if p1 == p2: a zero-length segment
// carries no direction and every downstream operation (height, break,
// project) needs one.
func NewSegment3D(p1, p2 Point3D) Segment3D {
	if p1.Eq(p2) {
		panic(fmt.Errorf("geom: segment requires two distinct endpoints, got %v twice", p1))
	}
	return Segment3D{P1: p1, P2: p2}
}

// Kind implements Element.
func (s Segment3D) Kind() ElementKind { return SegmentElement }

func (s Segment3D) String() string {
	return fmt.Sprintf("Segment3D(%v -> %v)", s.P1, s.P2)
}

// XRange returns the segment's x-extent, min then max.
func (s Segment3D) XRange() (lo, hi R) { return rMin(s.P1.X, s.P2.X), rMax(s.P1.X, s.P2.X) }
