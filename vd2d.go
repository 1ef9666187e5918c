// SPDX-FileCopyrightText : © 2026 vd3planes contributors.
// SPDX-License-Identifier: BSD-2-Clause

package vd

import (
	"sort"

	"github.com/openvd/vd3planes/geom"
)

// vd2d.go: the 2D vertical decomposition of one plane's carriers, per
// spec.md §4.6. Grounded on original_source/vd.py's vd2d, generalized to
// break along x (the prototype broke along y; spec.md calls for x, which
// is what keeps the resulting strips' y_floor/y_ceil supporting lines
// from being sliced mid-interior) and to maintain points_above/points_below
// as two independent maps rather than mutating one shared p_segs list.

// VD2D computes the 2D cells on a host plane given its crossing-free
// carriers (segments and rays already lying on that plane). Exposed
// directly for testing, matching the prototype's vd2d(plane, elements).
// plane itself plays no role in the 2D computation (every operation works
// in x/y alone, per §4.4's flattening convention) but is kept in the
// signature to match the documented external interface (spec.md §6).
func VD2D(plane *geom.Plane, carriers []geom.Element) []Cell2D {
	cells, _ := vd2dTraced(carriers)
	return cells
}

// vd2dTraced is the internal form that also returns the event maps. Its
// only caller is VD2D, which discards them.
func vd2dTraced(carriers []geom.Element) ([]Cell2D, *Trace) {
	trace := newTrace()

	var points []geom.Point3D
	for _, s := range carriers {
		points = append(points, carrierPoints(s)...)
	}

	for i := 0; i < len(carriers); i++ {
		for j := i + 1; j < len(carriers); j++ {
			si, sj := carriers[i], carriers[j]
			if geom.Parallel(si, sj) {
				continue
			}
			inter, ok := geom.Intersect(si, sj)
			if !ok || inter.IsLine {
				continue
			}
			p := inter.Point
			points = append(points, p)
			trace.addAbove(si, p)
			trace.addAbove(sj, p)
			trace.addBelow(si, p)
			trace.addBelow(sj, p)
		}
	}

	for _, p := range points {
		if above, ok := geom.FindDirectlyAbove(p, carriers, geom.AxisY); ok {
			if proj, ok := projectOntoCarrierY(p, above); ok {
				trace.addBelow(above, proj)
			}
		}
		if below, ok := geom.FindDirectlyBelow(p, carriers, geom.AxisY); ok {
			if proj, ok := projectOntoCarrierY(p, below); ok {
				trace.addAbove(below, proj)
			}
		}
	}

	segsAbove := breakCarriers(carriers, trace.above)
	segsBelow := breakCarriers(carriers, trace.below)

	var cells []Cell2D
	for _, s := range segsAbove {
		cells = append(cells, upperCell(s, segsAbove))
	}
	for _, s := range segsBelow {
		mid := carrierMid(s)
		if _, ok := geom.FindDirectlyBelow(mid, segsBelow, geom.AxisY); !ok {
			cells = append(cells, lowerEnvelopeCell(s))
		}
	}
	return cells, trace
}

// projectOntoCarrierY projects p onto e's supporting line along y.
func projectOntoCarrierY(p geom.Point3D, e geom.Element) (geom.Point3D, bool) {
	res, ok := geom.Project(p, e, geom.AxisY)
	if !ok {
		return geom.Point3D{}, false
	}
	return res.(geom.Point3D), true
}

// breakCarriers breaks every element of carriers at the x-coordinates of
// its recorded events, propagating each break through the growing list of
// pieces for that carrier (spec.md §4.6 step 4, "break_segment_at_points").
func breakCarriers(carriers []geom.Element, events map[geom.Element][]geom.Point3D) []geom.Element {
	var out []geom.Element
	for _, s := range carriers {
		pieces := []geom.Element{s}
		for _, p := range sortByX(events[s]) {
			var next []geom.Element
			for _, piece := range pieces {
				if withinXRange(piece, p.X) {
					next = append(next, geom.BreakElement(piece, p.X, geom.AxisX)...)
				} else {
					next = append(next, piece)
				}
			}
			pieces = next
		}
		out = append(out, pieces...)
	}
	return out
}

func sortByX(pts []geom.Point3D) []geom.Point3D {
	sorted := append([]geom.Point3D{}, pts...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].X.Cmp(sorted[j].X) < 0 })
	return sorted
}

func withinXRange(e geom.Element, v geom.R) bool {
	switch el := e.(type) {
	case geom.Segment3D:
		lo, hi := el.XRange()
		return v.Cmp(lo) >= 0 && v.Cmp(hi) <= 0
	case geom.Ray3D:
		if el.Direction.X.Sign() > 0 {
			return v.Cmp(el.P1.X) >= 0
		}
		return v.Cmp(el.P1.X) <= 0
	case geom.Line3D:
		return true
	default:
		return false
	}
}

// carrierPoints returns the endpoint events a carrier contributes to the
// sweep, or nil for an infinite Line3D carrier (no endpoint, nothing to
// register): an unbroken whole-line carrier only arises when its host
// plane has exactly one other plane to intersect with (spec.md §8
// scenario 3), in which case there is nothing else on the face to bound
// it against.
func carrierPoints(e geom.Element) []geom.Point3D {
	if _, ok := e.(geom.Line3D); ok {
		return nil
	}
	return geom.Endpoints(e)
}

// carrierMid returns a representative interior point of a carrier, used
// to probe what lies directly above/below it. For an infinite Line3D
// carrier any point on it is representative, since by construction
// nothing else on the face interacts with it.
func carrierMid(e geom.Element) geom.Point3D {
	if l, ok := e.(geom.Line3D); ok {
		return l.P1
	}
	return geom.MidPoint(e)
}

// carrierLine returns the (non-degenerate) supporting line of a segment or
// ray, used to build y_floor/y_ceil.
func carrierLine(e geom.Element) geom.Line3D {
	switch el := e.(type) {
	case geom.Segment3D:
		return geom.NewLine3D(el.P1, el.P2)
	case geom.Ray3D:
		return geom.NewLine3D(el.P1, el.P2())
	case geom.Line3D:
		return el
	default:
		panic("vd: carrierLine: unsupported element " + e.Kind().String())
	}
}

// flattenXY returns l with both defining points' z set to zero, the
// convention Cell2D's y_floor/y_ceil lines are carried in (§6, "supporting
// lines are carried as Line3D values with z-coordinate zero").
func flattenXY(l geom.Line3D) geom.Line3D {
	return geom.NewLine3D(
		geom.NewPoint3D(l.P1.X, l.P1.Y, geom.Zero()),
		geom.NewPoint3D(l.P2.X, l.P2.Y, geom.Zero()),
	)
}

// xRangeOf returns the x-bounds of a piece: both present for a segment,
// one of them nil for a ray (the open side, per direction.x's sign).
func xRangeOf(e geom.Element) (xFloor, xCeil geom.R) {
	switch el := e.(type) {
	case geom.Segment3D:
		lo, hi := el.XRange()
		return lo, hi
	case geom.Ray3D:
		if el.Direction.X.Sign() > 0 {
			return el.P1.X, nil
		}
		return nil, el.P1.X
	case geom.Line3D:
		return nil, nil
	default:
		panic("vd: xRangeOf: unsupported element " + e.Kind().String())
	}
}

// upperCell builds the 2D cell lying immediately above piece s, per
// spec.md §4.6 step 5.
func upperCell(s geom.Element, segsAbove []geom.Element) Cell2D {
	xFloor, xCeil := xRangeOf(s)
	yFloor := flattenXY(carrierLine(s))

	var yCeil *geom.Line3D
	mid := carrierMid(s)
	if above, ok := geom.FindDirectlyAbove(mid, segsAbove, geom.AxisY); ok {
		l := flattenXY(carrierLine(above))
		yCeil = &l
	}

	return Cell2D{XFloor: xFloor, XCeil: xCeil, YFloor: &yFloor, YCeil: yCeil}
}

// lowerEnvelopeCell builds the unbounded-below cell for a piece that sits
// on the lower envelope of the arrangement, per spec.md §4.6 step 6.
func lowerEnvelopeCell(s geom.Element) Cell2D {
	xFloor, xCeil := xRangeOf(s)
	yCeil := flattenXY(carrierLine(s))
	return Cell2D{XFloor: xFloor, XCeil: xCeil, YFloor: nil, YCeil: &yCeil}
}
