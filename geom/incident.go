package geom

import "fmt"

// incident.go: ported from z_dist.py's incident(). "a lies on b" is true
// iff every defining point of a has zero height to b along the
// contextually relevant axis.

// IncidentPointPlane reports whether point lies on plane.
func IncidentPointPlane(point Point3D, plane *Plane) bool {
	return HeightPointPlane(point, plane, AxisZ).Value().Sign() == 0
}

// IncidentSegmentPlane reports whether both of a segment's endpoints lie
// on plane.
func IncidentSegmentPlane(seg Segment3D, plane *Plane) bool {
	return IncidentPointPlane(seg.P1, plane) && IncidentPointPlane(seg.P2, plane)
}

// IncidentRayPlane reports whether a ray's anchor and a second point along
// it both lie on plane.
func IncidentRayPlane(ray Ray3D, plane *Plane) bool {
	return IncidentPointPlane(ray.P1, plane) && IncidentPointPlane(ray.P2(), plane)
}

// IncidentLinePlane reports whether both defining points of line lie on
// plane.
func IncidentLinePlane(line Line3D, plane *Plane) bool {
	return IncidentPointPlane(line.P1, plane) && IncidentPointPlane(line.P2, plane)
}

// IncidentPointLine reports whether point lies on the infinite line.
func IncidentPointLine(point Point3D, line Line3D) bool {
	dir := line.Direction()
	w := point.Sub(line.P1)
	// point lies on the line iff w is parallel to dir: cross product zero.
	cx := rSub(rMul(w.Y, dir.Z), rMul(w.Z, dir.Y))
	cy := rSub(rMul(w.Z, dir.X), rMul(w.X, dir.Z))
	cz := rSub(rMul(w.X, dir.Y), rMul(w.Y, dir.X))
	return cx.Sign() == 0 && cy.Sign() == 0 && cz.Sign() == 0
}

// IncidentPointSegment reports whether point lies on the line through seg
// and within its x-range.
func IncidentPointSegment(point Point3D, seg Segment3D) bool {
	if !IncidentPointLine(point, NewLine3D(seg.P1, seg.P2)) {
		return false
	}
	lo, hi := seg.XRange()
	return point.X.Cmp(lo) >= 0 && point.X.Cmp(hi) <= 0
}

// IncidentPointRay reports whether point lies on the line through ray, in
// the direction the ray actually extends.
func IncidentPointRay(point Point3D, ray Ray3D) bool {
	if !IncidentPointLine(point, NewLine3D(ray.P1, ray.P2())) {
		return false
	}
	pv := point.Sub(ray.P1)
	if ray.Direction.X.Sign() != 0 && (pv.X.Sign() > 0) != (ray.Direction.X.Sign() > 0) && pv.X.Sign() != 0 {
		return false
	}
	if ray.Direction.Y.Sign() != 0 && (pv.Y.Sign() > 0) != (ray.Direction.Y.Sign() > 0) && pv.Y.Sign() != 0 {
		return false
	}
	if ray.Direction.Z.Sign() != 0 && (pv.Z.Sign() > 0) != (ray.Direction.Z.Sign() > 0) && pv.Z.Sign() != 0 {
		return false
	}
	return true
}

// Incident dispatches on the runtime types of a and b, matching the
// Python prototype's incident(). Swaps arguments for the reverse-order
// cases the prototype handles explicitly.
func Incident(a, b any) bool {
	switch av := a.(type) {
	case Point3D:
		switch bv := b.(type) {
		case *Plane:
			return IncidentPointPlane(av, bv)
		case Segment3D:
			return IncidentPointSegment(av, bv)
		case Line3D:
			return IncidentPointLine(av, bv)
		case Ray3D:
			return IncidentPointRay(av, bv)
		}
	case Segment3D:
		if bv, ok := b.(*Plane); ok {
			return IncidentSegmentPlane(av, bv)
		}
	case Ray3D:
		if bv, ok := b.(*Plane); ok {
			return IncidentRayPlane(av, bv)
		}
	case Line3D:
		if bv, ok := b.(*Plane); ok {
			return IncidentLinePlane(av, bv)
		}
	case *Plane:
		return Incident(b, a)
	}
	panic(fmt.Errorf("geom: incident not implemented for %T and %T", a, b))
}
