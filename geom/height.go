package geom

import "fmt"

// height.go: the height/z_dist predicates. Ported from
// original_source/z_dist.py. The Python prototype returns either a number
// or `False` to mean "undefined" — the design notes flag this as a
// correctness hazard (a stray False could be compared as 0). Height is an
// explicit optional value instead: callers must call Defined() before
// using Value().

// Height is the result of a height query: either a signed exact distance,
// or Undefined (e.g. a point whose x falls outside a segment's x-range).
type Height struct {
	v       R
	defined bool
}

// UndefinedHeight is the in-band "not applicable" result.
func UndefinedHeight() Height { return Height{} }

// DefinedHeight wraps a real height value.
func DefinedHeight(v R) Height { return Height{v: v, defined: true} }

// Defined reports whether the height is a real value.
func (h Height) Defined() bool { return h.defined }

// Value returns the signed distance. Panics if the height is undefined:
// callers must check Defined first (spec.md §7.3).
func (h Height) Value() R {
	if !h.defined {
		panic(fmt.Errorf("geom: Value() called on an undefined Height"))
	}
	return h.v
}

// Sign returns -1, 0 or 1. Panics if undefined.
func (h Height) Sign() int { return h.Value().Sign() }

// HeightPointPlane returns the signed distance from point to plane along
// axis (x and y held fixed, axis coordinate solved from the plane
// equation, then subtracted from point's own coordinate). Positive means
// point is on the positive-axis side of plane.
func HeightPointPlane(point Point3D, plane *Plane, axis Axis) Height {
	switch axis {
	case AxisZ:
		z := plane.ZAt(point.X, point.Y)
		return DefinedHeight(rSub(point.Z, z))
	case AxisY:
		y := plane.YAt(point.X, point.Z)
		return DefinedHeight(rSub(point.Y, y))
	default:
		panic(fmt.Errorf("geom: height(point,plane) axis must be y or z, got %v", axis))
	}
}

// HeightPointLine returns the signed distance from point to the infinite
// line along axis, holding x fixed (or, if the line has no extent in x,
// the remaining non-axis coordinate: y for axis z, z for axis y).
// Panics if the line has no extent usable to solve for the requested axis
// (spec.md §4.2/§9: the line would need to be parallel to the query axis
// in a way that leaves no free parameter).
func HeightPointLine(point Point3D, line Line3D, axis Axis) Height {
	dir := line.Direction()
	switch axis {
	case AxisZ:
		if dir.X.Sign() == 0 && dir.Y.Sign() == 0 {
			panic(fmt.Errorf("geom: cannot compute height of point above a z-vertical line"))
		}
		var t R
		if dir.X.Sign() != 0 {
			t = rDiv(rSub(point.X, line.P1.X), dir.X)
		} else {
			t = rDiv(rSub(point.Y, line.P1.Y), dir.Y)
		}
		z := rAdd(line.P1.Z, rMul(t, dir.Z))
		return DefinedHeight(rSub(point.Z, z))
	case AxisY:
		if dir.X.Sign() == 0 && dir.Z.Sign() == 0 {
			panic(fmt.Errorf("geom: cannot compute height of point above a y-vertical line"))
		}
		var t R
		if dir.X.Sign() != 0 {
			t = rDiv(rSub(point.X, line.P1.X), dir.X)
		} else {
			t = rDiv(rSub(point.Z, line.P1.Z), dir.Z)
		}
		y := rAdd(line.P1.Y, rMul(t, dir.Y))
		return DefinedHeight(rSub(point.Y, y))
	default:
		panic(fmt.Errorf("geom: height(point,line) only supports y or z, got %v", axis))
	}
}

// HeightPointSegment returns the signed distance from point to the
// segment's supporting line along y, or UndefinedHeight if point.x falls
// outside the segment's x-range.
func HeightPointSegment(point Point3D, seg Segment3D, axis Axis) Height {
	if axis != AxisY {
		panic(fmt.Errorf("geom: height(point,segment) only supports axis y, got %v", axis))
	}
	lo, hi := seg.XRange()
	if point.X.Cmp(lo) < 0 || point.X.Cmp(hi) > 0 {
		return UndefinedHeight()
	}
	return HeightPointLine(point, NewLine3D(seg.P1, seg.P2), AxisY)
}

// HeightPointRay mirrors HeightPointSegment for a half-line: the x-range
// is governed by the sign of the ray's direction.x.
func HeightPointRay(point Point3D, ray Ray3D, axis Axis) Height {
	if axis != AxisY {
		panic(fmt.Errorf("geom: height(point,ray) only supports axis y, got %v", axis))
	}
	if point.X.Cmp(ray.P1.X) < 0 && ray.Direction.X.Sign() > 0 {
		return UndefinedHeight()
	}
	if point.X.Cmp(ray.P1.X) > 0 && ray.Direction.X.Sign() < 0 {
		return UndefinedHeight()
	}
	return HeightPointLine(point, NewLine3D(ray.P1, ray.P2()), AxisY)
}

// HeightRayPlane returns the height of a ray's starting point above plane
// along z. Used by is_above/is_below, which additionally check the ray's
// direction to decide whether it stays above/below indefinitely.
func HeightRayPlane(ray Ray3D, plane *Plane, axis Axis) Height {
	if axis != AxisZ {
		panic(fmt.Errorf("geom: height(ray,plane) only supports axis z, got %v", axis))
	}
	return HeightPointPlane(ray.P1, plane, AxisZ)
}

// HeightSegmentPlane returns the height of a segment's midpoint above
// plane along z.
func HeightSegmentPlane(seg Segment3D, plane *Plane, axis Axis) Height {
	if axis != AxisZ {
		panic(fmt.Errorf("geom: height(segment,plane) only supports axis z, got %v", axis))
	}
	mid := Mean([]Point3D{seg.P1, seg.P2})
	return HeightPointPlane(mid, plane, AxisZ)
}

// HeightOf dispatches on the runtime types of a and b, matching the
// Python prototype's height(a, b, axis). Prefer the typed HeightXxx
// functions above inside this package; HeightOf exists for callers (and
// tests) that want the dynamic-dispatch entry point described in
// spec.md §6.
func HeightOf(a, b any, axis Axis) Height {
	switch av := a.(type) {
	case Point3D:
		switch bv := b.(type) {
		case *Plane:
			return HeightPointPlane(av, bv, axis)
		case Segment3D:
			return HeightPointSegment(av, bv, axis)
		case Ray3D:
			return HeightPointRay(av, bv, axis)
		case Line3D:
			return HeightPointLine(av, bv, axis)
		}
	case Ray3D:
		if bv, ok := b.(*Plane); ok {
			return HeightRayPlane(av, bv, axis)
		}
	case Segment3D:
		if bv, ok := b.(*Plane); ok {
			return HeightSegmentPlane(av, bv, axis)
		}
	}
	panic(fmt.Errorf("geom: height not implemented for %T and %T along %v", a, b, axis))
}
