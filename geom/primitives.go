package geom

import "fmt"

// primitives.go: endpoints, mid_point and break_element. Ported from
// original_source/primitives.py, generalized to break along any axis
// (the Python prototype only supported the y-axis; spec.md §4.5 calls for
// breaking along x, which is what vd2d actually needs — each input
// segment/ray is broken at the x-coordinates of the events projected onto
// it).

// coordOf returns the coordinate of p along axis.
func coordOf(p Point3D, axis Axis) R {
	switch axis {
	case AxisX:
		return p.X
	case AxisY:
		return p.Y
	case AxisZ:
		return p.Z
	default:
		panic(fmt.Errorf("geom: unknown axis %v", axis))
	}
}

// Endpoints returns a segment's two endpoints or a ray's single anchor
// point, matching the Python prototype's singledispatch endpoints().
// Panics for a Line3D or Plane: an infinite line/plane has no endpoints.
func Endpoints(e Element) []Point3D {
	switch v := e.(type) {
	case Segment3D:
		return []Point3D{v.P1, v.P2}
	case Ray3D:
		return []Point3D{v.P1}
	default:
		panic(fmt.Errorf("geom: endpoints not implemented for %v", e.Kind()))
	}
}

// MidPoint returns the arithmetic mean of a segment's endpoints, or
// p1+direction for a ray (the prototype's stand-in "middle" used only to
// probe what's directly above/below the piece, per spec.md §4.5).
func MidPoint(e Element) Point3D {
	switch v := e.(type) {
	case Segment3D:
		return Mean([]Point3D{v.P1, v.P2})
	case Ray3D:
		return v.P2()
	default:
		panic(fmt.Errorf("geom: mid_point not implemented for %v", e.Kind()))
	}
}

// BreakElement splits a segment or ray at the point where its axis
// coordinate equals v.
//
//   - Segment: returns two segments sharing the break point.
//   - Ray: returns a segment [anchor, break] and a new ray continuing from
//     break in the original direction.
//
// If v coincides with an endpoint's axis coordinate, the original element
// is returned unchanged as a single-element slice (no zero-length
// pieces). Panics if v is outside the element's axis-range, or if the
// element has no extent along axis (direction component is zero) — both
// are contract violations by the caller (spec.md §7.2).
func BreakElement(e Element, v R, axis Axis) []Element {
	switch el := e.(type) {
	case Segment3D:
		return breakSegment(el, v, axis)
	case Ray3D:
		return breakRay(el, v, axis)
	case Line3D:
		return breakLine(el, v, axis)
	default:
		panic(fmt.Errorf("geom: break_element not implemented for %v", e.Kind()))
	}
}

// breakLine splits an infinite line into two rays from the break point,
// going in opposite directions (spec.md §4.5).
func breakLine(l Line3D, v R, axis Axis) []Element {
	dir := l.Direction()
	dc := coordOf(dir, axis)
	if dc.Sign() == 0 {
		panic(fmt.Errorf("geom: break_element: line has no extent along axis %s", axis))
	}
	c1 := coordOf(l.P1, axis)
	t := rDiv(rSub(v, c1), dc)
	p := l.P1.Add(dir.Scale(t))
	return []Element{NewRay3D(p, dir), NewRay3D(p, dir.Neg())}
}

func breakSegment(s Segment3D, v R, axis Axis) []Element {
	c1, c2 := coordOf(s.P1, axis), coordOf(s.P2, axis)
	lo, hi := rMin(c1, c2), rMax(c1, c2)
	if v.Cmp(lo) < 0 || v.Cmp(hi) > 0 {
		panic(fmt.Errorf("geom: break_element: %s=%s outside segment range [%s,%s]", axis, v.RatString(), lo.RatString(), hi.RatString()))
	}
	if rEq(v, c1) || rEq(v, c2) {
		return []Element{s}
	}
	dir := s.P2.Sub(s.P1)
	dc := coordOf(dir, axis)
	if dc.Sign() == 0 {
		panic(fmt.Errorf("geom: break_element: segment has no extent along axis %s", axis))
	}
	t := rDiv(rSub(v, c1), dc)
	p := s.P1.Add(dir.Scale(t))
	return []Element{NewSegment3D(s.P1, p), NewSegment3D(p, s.P2)}
}

func breakRay(r Ray3D, v R, axis Axis) []Element {
	c1 := coordOf(r.P1, axis)
	dc := coordOf(r.Direction, axis)
	if dc.Sign() == 0 {
		panic(fmt.Errorf("geom: break_element: ray has no extent along axis %s", axis))
	}
	if dc.Sign() > 0 && v.Cmp(c1) < 0 {
		panic(fmt.Errorf("geom: break_element: %s=%s is behind ray start %s", axis, v.RatString(), c1.RatString()))
	}
	if dc.Sign() < 0 && v.Cmp(c1) > 0 {
		panic(fmt.Errorf("geom: break_element: %s=%s is behind ray start %s", axis, v.RatString(), c1.RatString()))
	}
	if rEq(v, c1) {
		return []Element{r}
	}
	t := rDiv(rSub(v, c1), dc)
	p := r.P1.Add(r.Direction.Scale(t))
	return []Element{NewSegment3D(r.P1, p), NewRay3D(p, r.Direction)}
}
