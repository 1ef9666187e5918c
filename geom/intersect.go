package geom

import "fmt"

// intersect.go: pairwise intersections and the parallel test. Ported from
// original_source/intersection.py.

// IntersectPlanePlane returns the line of intersection of p1 and p2, or
// (Line3D{}, false) if the planes are parallel.
func IntersectPlanePlane(p1, p2 *Plane) (Line3D, bool) {
	// direction of the intersection line: normal(p1) x normal(p2)
	dx := rSub(rMul(p1.B, p2.C), rMul(p1.C, p2.B))
	dy := rSub(rMul(p1.C, p2.A), rMul(p1.A, p2.C))
	dz := rSub(rMul(p1.A, p2.B), rMul(p1.B, p2.A))
	if dx.Sign() == 0 && dy.Sign() == 0 && dz.Sign() == 0 {
		return Line3D{}, false // parallel (or coincident: a degeneracy excluded by assumption)
	}
	dir := Point3D{dx, dy, dz}

	// Find one point on both planes by fixing whichever coordinate the
	// direction has non-zero extent in and solving the 2x2 system for the
	// other two.
	var p0 Point3D
	switch {
	case dz.Sign() != 0:
		// fix z=0, solve for x,y
		// A1 x + B1 y = -D1 ; A2 x + B2 y = -D2
		det := rSub(rMul(p1.A, p2.B), rMul(p1.B, p2.A))
		x := rDiv(rSub(rMul(rNeg(p1.D), p2.B), rMul(rNeg(p2.D), p1.B)), det)
		y := rDiv(rSub(rMul(p1.A, rNeg(p2.D)), rMul(p2.A, rNeg(p1.D))), det)
		p0 = Point3D{x, y, Zero()}
	case dy.Sign() != 0:
		// fix y=0, solve for x,z
		det := rSub(rMul(p1.A, p2.C), rMul(p1.C, p2.A))
		x := rDiv(rSub(rMul(rNeg(p1.D), p2.C), rMul(rNeg(p2.D), p1.C)), det)
		z := rDiv(rSub(rMul(p1.A, rNeg(p2.D)), rMul(p2.A, rNeg(p1.D))), det)
		p0 = Point3D{x, Zero(), z}
	default:
		// fix x=0, solve for y,z
		det := rSub(rMul(p1.B, p2.C), rMul(p1.C, p2.B))
		y := rDiv(rSub(rMul(rNeg(p1.D), p2.C), rMul(rNeg(p2.D), p1.C)), det)
		z := rDiv(rSub(rMul(p1.B, rNeg(p2.D)), rMul(p2.B, rNeg(p1.D))), det)
		p0 = Point3D{Zero(), y, z}
	}
	return NewLine3D(p0, p0.Add(dir)), true
}

// IntersectLinePlane returns the point where line crosses plane, or
// (Point3D{}, false) if line is parallel to plane.
func IntersectLinePlane(l Line3D, p *Plane) (Point3D, bool) {
	dir := l.Direction()
	// solve for t: A(x0+t dx) + B(y0+t dy) + C(z0+t dz) + D = 0
	denom := rAdd(rAdd(rMul(p.A, dir.X), rMul(p.B, dir.Y)), rMul(p.C, dir.Z))
	if denom.Sign() == 0 {
		return Point3D{}, false
	}
	numer := rAdd(rAdd(rMul(p.A, l.P1.X), rMul(p.B, l.P1.Y)), rAdd(rMul(p.C, l.P1.Z), p.D))
	t := rDiv(rNeg(numer), denom)
	return l.P1.Add(dir.Scale(t)), true
}

// intersectLineLine returns the intersection point of two (assumed
// coplanar, non-parallel) lines by solving via the x and y coordinates,
// matching the x-range clipping the rest of this file relies on.
func intersectLineLine(l1, l2 Line3D) (Point3D, bool) {
	d1, d2 := l1.Direction(), l2.Direction()
	// Solve l1.P1 + t*d1 = l2.P1 + s*d2 using the x,y components; z is
	// taken from l1's parametrization (the lines are assumed to actually
	// meet, i.e. coplanar).
	det := rSub(rMul(d1.X, rNeg(d2.Y)), rMul(d1.Y, rNeg(d2.X)))
	if det.Sign() == 0 {
		return Point3D{}, false
	}
	rx := rSub(l2.P1.X, l1.P1.X)
	ry := rSub(l2.P1.Y, l1.P1.Y)
	t := rDiv(rSub(rMul(rx, rNeg(d2.Y)), rMul(ry, rNeg(d2.X))), det)
	return l1.P1.Add(d1.Scale(t)), true
}

// IntersectLineLine returns the intersection point of two lines, or
// (Point3D{}, false) if parallel.
func IntersectLineLine(l1, l2 Line3D) (Point3D, bool) {
	if ParallelLineLine(l1, l2) {
		return Point3D{}, false
	}
	return intersectLineLine(l1, l2)
}

// IntersectSegmentSegment returns the intersection point of two segments
// if it falls within both of their x-ranges, matching the prototype's
// reliance on x-coordinates (under the general-position assumption that
// direction vectors have non-zero x).
func IntersectSegmentSegment(s1, s2 Segment3D) (Point3D, bool) {
	p, ok := intersectLineLine(NewLine3D(s1.P1, s1.P2), NewLine3D(s2.P1, s2.P2))
	if !ok {
		return Point3D{}, false
	}
	lo1, hi1 := s1.XRange()
	lo2, hi2 := s2.XRange()
	if p.X.Cmp(lo1) < 0 || p.X.Cmp(hi1) > 0 || p.X.Cmp(lo2) < 0 || p.X.Cmp(hi2) > 0 {
		return Point3D{}, false
	}
	return p, true
}

// IntersectRaySegment returns the intersection point of a ray and a
// segment if it falls within the segment's x-range and in the ray's
// direction.
func IntersectRaySegment(r Ray3D, s Segment3D) (Point3D, bool) {
	p, ok := intersectLineLine(NewLine3D(r.P1, r.P2()), NewLine3D(s.P1, s.P2))
	if !ok {
		return Point3D{}, false
	}
	lo, hi := s.XRange()
	if p.X.Cmp(lo) < 0 || p.X.Cmp(hi) > 0 {
		return Point3D{}, false
	}
	if p.X.Cmp(r.P1.X) < 0 && r.Direction.X.Sign() > 0 {
		return Point3D{}, false
	}
	if p.X.Cmp(r.P1.X) > 0 && r.Direction.X.Sign() < 0 {
		return Point3D{}, false
	}
	return p, true
}

// IntersectRayRay returns the intersection point of two rays if it falls
// in both of their directions.
func IntersectRayRay(r1, r2 Ray3D) (Point3D, bool) {
	p, ok := intersectLineLine(NewLine3D(r1.P1, r1.P2()), NewLine3D(r2.P1, r2.P2()))
	if !ok {
		return Point3D{}, false
	}
	for _, r := range []Ray3D{r1, r2} {
		if p.X.Cmp(r.P1.X) < 0 && r.Direction.X.Sign() > 0 {
			return Point3D{}, false
		}
		if p.X.Cmp(r.P1.X) > 0 && r.Direction.X.Sign() < 0 {
			return Point3D{}, false
		}
	}
	return p, true
}

// directionRatiosParallel compares two direction vectors componentwise,
// treating a pair of zero components in the same dimension as "parallel
// in that dimension" (matching intersection.py's _get_direction_ratios).
func directionRatiosParallel(d1, d2 Point3D) bool {
	var ratio R
	haveRatio := false
	comps := [][2]R{{d1.X, d2.X}, {d1.Y, d2.Y}, {d1.Z, d2.Z}}
	for _, c := range comps {
		c1, c2 := c[0], c[1]
		if c1.Sign() == 0 && c2.Sign() == 0 {
			continue
		}
		if c1.Sign() == 0 || c2.Sign() == 0 {
			return false
		}
		r := rDiv(c1, c2)
		if !haveRatio {
			ratio, haveRatio = r, true
			continue
		}
		if !rEq(r, ratio) {
			return false
		}
	}
	return true
}

// ParallelLineLine reports whether two lines have parallel directions.
func ParallelLineLine(l1, l2 Line3D) bool {
	return directionRatiosParallel(l1.Direction(), l2.Direction())
}

// ParallelSegSeg reports whether two segments have parallel directions.
func ParallelSegSeg(s1, s2 Segment3D) bool {
	return directionRatiosParallel(s1.P2.Sub(s1.P1), s2.P2.Sub(s2.P1))
}

// ParallelPlanePlane reports whether two planes have parallel normals.
func ParallelPlanePlane(p1, p2 *Plane) bool {
	return directionRatiosParallel(Point3D{p1.A, p1.B, p1.C}, Point3D{p2.A, p2.B, p2.C})
}

// Parallel dispatches on the runtime types of a and b, matching the
// Python prototype's parallel(). Supports the Segment/Ray/Line
// combinations the 2D decomposition needs.
func Parallel(a, b any) bool {
	dirOf := func(e any) (Point3D, bool) {
		switch v := e.(type) {
		case Segment3D:
			return v.P2.Sub(v.P1), true
		case Ray3D:
			return v.Direction, true
		case Line3D:
			return v.Direction(), true
		default:
			return Point3D{}, false
		}
	}
	da, ok1 := dirOf(a)
	db, ok2 := dirOf(b)
	if !ok1 || !ok2 {
		panic(fmt.Errorf("geom: parallel not implemented for %T and %T", a, b))
	}
	return directionRatiosParallel(da, db)
}

// Intersection holds the result of Intersect: exactly one of Point, Line
// is meaningful, selected by IsLine.
type Intersection struct {
	Point  Point3D
	Line   Line3D
	IsLine bool
}

// Intersect dispatches on the runtime types of a and b, matching the
// Python prototype's intersect(). Returns found=false for parallel
// (non-intersecting) inputs (spec.md §7.4: callers must handle emptiness).
func Intersect(a, b any) (Intersection, bool) {
	switch av := a.(type) {
	case *Plane:
		if bv, ok := b.(*Plane); ok {
			l, ok := IntersectPlanePlane(av, bv)
			return Intersection{Line: l, IsLine: true}, ok
		}
		if bv, ok := b.(Line3D); ok {
			p, ok := IntersectLinePlane(bv, av)
			return Intersection{Point: p}, ok
		}
	case Line3D:
		if bv, ok := b.(*Plane); ok {
			p, ok := IntersectLinePlane(av, bv)
			return Intersection{Point: p}, ok
		}
		if bv, ok := b.(Line3D); ok {
			p, ok := IntersectLineLine(av, bv)
			return Intersection{Point: p}, ok
		}
	case Segment3D:
		if bv, ok := b.(Segment3D); ok {
			p, ok := IntersectSegmentSegment(av, bv)
			return Intersection{Point: p}, ok
		}
		if bv, ok := b.(Ray3D); ok {
			p, ok := IntersectRaySegment(bv, av)
			return Intersection{Point: p}, ok
		}
	case Ray3D:
		if bv, ok := b.(Segment3D); ok {
			p, ok := IntersectRaySegment(av, bv)
			return Intersection{Point: p}, ok
		}
		if bv, ok := b.(Ray3D); ok {
			p, ok := IntersectRayRay(av, bv)
			return Intersection{Point: p}, ok
		}
	}
	panic(fmt.Errorf("geom: intersection not implemented for %T and %T", a, b))
}

// AllTripleIntersections returns every point where three of the given
// planes meet (supplemented from original_source/intersection.py's
// get_all_intersection_points — a standalone utility over the 0-dimensional
// skeleton of the arrangement, not used by vd/vd2d itself).
func AllTripleIntersections(planes []*Plane) []Point3D {
	var pts []Point3D
	n := len(planes)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			line, ok := IntersectPlanePlane(planes[i], planes[j])
			if !ok {
				continue
			}
			for k := j + 1; k < n; k++ {
				p, ok := IntersectLinePlane(line, planes[k])
				if ok {
					pts = append(pts, p)
				}
			}
		}
	}
	return pts
}
