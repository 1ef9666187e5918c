package geom

import "fmt"

// project.go: projection along an axis. Ported from
// original_source/project.py.

// xyPlane is the canonical horizontal plane z=0, used by ProjectOntoXY.
var xyPlane = NewPlaneFromPoints(PointInt(0, 0, 0), PointInt(1, 0, 0), PointInt(0, 1, 0))

// ProjectPointPlane solves the plane equation for the axis coordinate at
// point's other two coordinates, leaving those unchanged.
func ProjectPointPlane(point Point3D, plane *Plane, axis Axis) Point3D {
	switch axis {
	case AxisZ:
		return Point3D{point.X, point.Y, plane.ZAt(point.X, point.Y)}
	case AxisY:
		return Point3D{point.X, plane.YAt(point.X, point.Z), point.Z}
	default:
		panic(fmt.Errorf("geom: project(point,plane) axis must be y or z, got %v", axis))
	}
}

// ProjectPointLine walks the line's parameter to match point's non-axis
// coordinate, failing if the line's direction has no component in that
// coordinate.
func ProjectPointLine(point Point3D, line Line3D, axis Axis) Point3D {
	dir := line.Direction()
	switch axis {
	case AxisY:
		if point.Z.Sign() != 0 || line.P1.Z.Sign() != 0 || line.P2.Z.Sign() != 0 {
			panic(fmt.Errorf("geom: project(point,line,'y') requires objects on the xy-plane"))
		}
		if dir.X.Sign() == 0 {
			panic(fmt.Errorf("geom: cannot project onto a y-vertical line"))
		}
		t := rDiv(rSub(point.X, line.P1.X), dir.X)
		return Point3D{point.X, rAdd(line.P1.Y, rMul(t, dir.Y)), Zero()}
	case AxisZ:
		if dir.X.Sign() == 0 && dir.Y.Sign() == 0 {
			panic(fmt.Errorf("geom: cannot project onto a z-vertical line"))
		}
		var t R
		if dir.X.Sign() != 0 {
			t = rDiv(rSub(point.X, line.P1.X), dir.X)
		} else {
			t = rDiv(rSub(point.Y, line.P1.Y), dir.Y)
		}
		return Point3D{point.X, point.Y, rAdd(line.P1.Z, rMul(t, dir.Z))}
	default:
		panic(fmt.Errorf("geom: project(point,line) only supports y or z, got %v", axis))
	}
}

// ProjectPointSegment projects point onto the segment's supporting line,
// returning (projected, false) if the result falls outside the segment's
// x-range.
func ProjectPointSegment(point Point3D, seg Segment3D, axis Axis) (Point3D, bool) {
	p := ProjectPointLine(point, NewLine3D(seg.P1, seg.P2), axis)
	lo, hi := seg.XRange()
	if p.X.Cmp(lo) < 0 || p.X.Cmp(hi) > 0 {
		return Point3D{}, false
	}
	return p, true
}

// ProjectPointRay projects point onto the ray's supporting line, returning
// (projected, false) if the result falls behind the ray's anchor.
func ProjectPointRay(point Point3D, ray Ray3D, axis Axis) (Point3D, bool) {
	p := ProjectPointLine(point, NewLine3D(ray.P1, ray.P2()), axis)
	if ray.Direction.X.Sign() > 0 && p.X.Cmp(ray.P1.X) < 0 {
		return Point3D{}, false
	}
	if ray.Direction.X.Sign() < 0 && p.X.Cmp(ray.P1.X) > 0 {
		return Point3D{}, false
	}
	return p, true
}

// ProjectSegmentPlane projects both endpoints.
func ProjectSegmentPlane(seg Segment3D, plane *Plane, axis Axis) Segment3D {
	return NewSegment3D(ProjectPointPlane(seg.P1, plane, axis), ProjectPointPlane(seg.P2, plane, axis))
}

// ProjectRayPlane projects the anchor and anchor+direction, rebuilding a
// ray from the results.
func ProjectRayPlane(ray Ray3D, plane *Plane, axis Axis) Ray3D {
	p1 := ProjectPointPlane(ray.P1, plane, axis)
	p2 := ProjectPointPlane(ray.P2(), plane, axis)
	return NewRay3D(p1, p2.Sub(p1))
}

// ProjectLinePlane projects both defining points.
func ProjectLinePlane(line Line3D, plane *Plane, axis Axis) Line3D {
	return NewLine3D(ProjectPointPlane(line.P1, plane, axis), ProjectPointPlane(line.P2, plane, axis))
}

// ProjectOntoXY projects onto the canonical horizontal plane through the
// origin along z — shorthand for project(thing, "xy", 'z') in the Python
// prototype.
func ProjectOntoXY(e Element) Element {
	switch v := e.(type) {
	case Segment3D:
		return ProjectSegmentPlane(v, xyPlane, AxisZ)
	case Ray3D:
		return ProjectRayPlane(v, xyPlane, AxisZ)
	case Line3D:
		return ProjectLinePlane(v, xyPlane, AxisZ)
	default:
		panic(fmt.Errorf("geom: project(%v, xy, z) not implemented", e.Kind()))
	}
}

// Project dispatches on the runtime types of a and b, matching the Python
// prototype's project(). Prefer the typed ProjectXxx functions inside
// this package.
func Project(a any, b any, axis Axis) (any, bool) {
	switch av := a.(type) {
	case Point3D:
		switch bv := b.(type) {
		case *Plane:
			return ProjectPointPlane(av, bv, axis), true
		case Segment3D:
			return ProjectPointSegment(av, bv, axis)
		case Ray3D:
			return ProjectPointRay(av, bv, axis)
		case Line3D:
			return ProjectPointLine(av, bv, axis), true
		}
	case Segment3D:
		if bv, ok := b.(*Plane); ok {
			return ProjectSegmentPlane(av, bv, axis), true
		}
	case Ray3D:
		if bv, ok := b.(*Plane); ok {
			return ProjectRayPlane(av, bv, axis), true
		}
	case Line3D:
		if bv, ok := b.(*Plane); ok {
			return ProjectLinePlane(av, bv, axis), true
		}
	}
	panic(fmt.Errorf("geom: projection not implemented for %T and %T along %v", a, b, axis))
}
