package geom

import "fmt"

// above_below.go: is_above, is_below, find_directly_above/below and
// is_directly_above. Ported from original_source/z_dist.py.
//
// Sign convention carried over from height.go: HeightOf(a, b, axis) is
// positive when a is on the positive-axis side of b. So "b is directly
// above a" means height(a, b, axis) is negative (a is below b), and the
// closest such b has the height nearest zero from below.
//
// Design note (spec.md §9, "Open questions from the source"): the later
// z_dist.py had find_directly_above/below with swapped sign checks
// relative to this one; this file implements the earlier, docstring-
// consistent variant, which is also the only one that makes
// find_directly_above actually return something above a.

// IsAbove reports whether a is strictly above b along axis, for every
// defining point of a.
func IsAbove(a, b any, axis Axis) bool {
	switch av := a.(type) {
	case Point3D:
		if bv, ok := b.(*Plane); ok {
			return HeightPointPlane(av, bv, axis).Value().Sign() > 0
		}
	case Segment3D:
		if bv, ok := b.(*Plane); ok {
			return HeightPointPlane(av.P1, bv, axis).Value().Sign() > 0 &&
				HeightPointPlane(av.P2, bv, axis).Value().Sign() > 0
		}
	case Ray3D:
		if bv, ok := b.(*Plane); ok {
			if axis != AxisZ {
				panic(fmt.Errorf("geom: is_above(Ray3D,Plane) requires axis z"))
			}
			return HeightRayPlane(av, bv, axis).Value().Sign() > 0 && av.Direction.Z.Sign() >= 0
		}
	}
	panic(fmt.Errorf("geom: is_above not implemented for %T and %T along %v", a, b, axis))
}

// IsBelow mirrors IsAbove.
func IsBelow(a, b any, axis Axis) bool {
	switch av := a.(type) {
	case Point3D:
		if bv, ok := b.(*Plane); ok {
			return HeightPointPlane(av, bv, axis).Value().Sign() < 0
		}
	case Segment3D:
		if bv, ok := b.(*Plane); ok {
			return HeightPointPlane(av.P1, bv, axis).Value().Sign() < 0 &&
				HeightPointPlane(av.P2, bv, axis).Value().Sign() < 0
		}
	case Ray3D:
		if bv, ok := b.(*Plane); ok {
			if axis != AxisZ {
				panic(fmt.Errorf("geom: is_below(Ray3D,Plane) requires axis z"))
			}
			return HeightRayPlane(av, bv, axis).Value().Sign() < 0 && av.Direction.Z.Sign() <= 0
		}
	}
	panic(fmt.Errorf("geom: is_below not implemented for %T and %T along %v", a, b, axis))
}

// FindDirectlyAbove returns the element of bs directly above point a along
// axis: among the candidates strictly above a, the one closest to a. The
// second return value is false if no candidate lies above a.
func FindDirectlyAbove[B any](a Point3D, bs []B, axis Axis) (best B, found bool) {
	var bestH Height
	for _, b := range bs {
		h := HeightOf(a, any(b), axis)
		if !h.Defined() {
			continue
		}
		if h.Sign() >= 0 {
			continue // b is not above a
		}
		if !found || bestH.Value().Cmp(h.Value()) < 0 {
			best, bestH, found = b, h, true
		}
	}
	return best, found
}

// FindDirectlyBelow mirrors FindDirectlyAbove.
func FindDirectlyBelow[B any](a Point3D, bs []B, axis Axis) (best B, found bool) {
	var bestH Height
	for _, b := range bs {
		h := HeightOf(a, any(b), axis)
		if !h.Defined() {
			continue
		}
		if h.Sign() <= 0 {
			continue // b is not below a
		}
		if !found || bestH.Value().Cmp(h.Value()) > 0 {
			best, bestH, found = b, h, true
		}
	}
	return best, found
}

// IsDirectlyAbove reports whether plane is the element FindDirectlyAbove
// would return for point among planes: plane is strictly above point, and
// no other candidate in planes sits strictly between them.
func IsDirectlyAbove(point Point3D, plane *Plane, planes []*Plane, axis Axis) bool {
	h := HeightOf(point, any(plane), axis)
	if !h.Defined() || h.Sign() >= 0 {
		return false
	}
	for _, p := range planes {
		if p == plane {
			continue
		}
		h2 := HeightOf(point, any(p), axis)
		if h2.Defined() && h2.Sign() < 0 && h2.Value().Cmp(h.Value()) > 0 {
			return false
		}
	}
	return true
}
