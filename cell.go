// SPDX-FileCopyrightText : © 2026 vd3planes contributors.
// SPDX-License-Identifier: BSD-2-Clause

package vd

import (
	"fmt"
	"math"
	"sort"

	"github.com/openvd/vd3planes/geom"
)

// Cell2D is a 2D pseudo-trapezoidal cell on the surface of a single
// plane: a vertical strip between x_floor/x_ceil bounded above and below
// by the supporting lines y_floor/y_ceil. A nil bound means "none" —
// unbounded in that direction.
type Cell2D struct {
	XFloor, XCeil geom.R
	YFloor, YCeil *geom.Line3D
}

func (c Cell2D) String() string {
	return fmt.Sprintf("Cell2D{x:[%s,%s] y:[%s,%s]}",
		formatBound(c.XFloor), formatBound(c.XCeil),
		formatLineBound(c.YFloor), formatLineBound(c.YCeil))
}

// Cell3D is a 3D cell of the decomposition: a Cell2D lifted onto the
// planes z_floor/z_ceil that bound it from below and above. A nil bound
// means the cell is unbounded in that direction.
type Cell3D struct {
	Cell2D
	ZFloor, ZCeil *geom.Plane
}

func (c Cell3D) String() string {
	return fmt.Sprintf("Cell3D{x:[%s,%s] y:[%s,%s] z:[%s,%s]}",
		formatBound(c.XFloor), formatBound(c.XCeil),
		formatLineBound(c.YFloor), formatLineBound(c.YCeil),
		formatPlaneBound(c.ZFloor), formatPlaneBound(c.ZCeil))
}

// FindCenterPoint computes a representative interior point of a 2D cell,
// ported from vd.py's find_center_point. At least one of XFloor/XCeil and
// at least one of YFloor/YCeil must be present; FindCenterPoint panics
// when both bounds of either pair are nil.
func FindCenterPoint(c Cell2D) geom.Point3D {
	var x geom.R
	switch {
	case c.XFloor == nil && c.XCeil == nil:
		panic("vd: FindCenterPoint: cell has no x bound at all")
	case c.XFloor == nil:
		x = geom.Sub(c.XCeil, geom.RInt(1))
	case c.XCeil == nil:
		x = geom.Add(c.XFloor, geom.RInt(1))
	default:
		x = geom.Div(geom.Add(c.XFloor, c.XCeil), geom.RInt(2))
	}

	switch {
	case c.YFloor == nil && c.YCeil == nil:
		panic("vd: FindCenterPoint: cell has no y bound at all")
	case c.YFloor == nil:
		p := geom.ProjectPointLine(geom.PointInt(0, 0, 0).WithX(x), *c.YCeil, geom.AxisY)
		return p.Sub(geom.PointInt(0, 1, 0))
	case c.YCeil == nil:
		p := geom.ProjectPointLine(geom.PointInt(0, 0, 0).WithX(x), *c.YFloor, geom.AxisY)
		return p.Add(geom.PointInt(0, 1, 0))
	default:
		y1 := geom.ProjectPointLine(geom.PointInt(0, 0, 0).WithX(x), *c.YFloor, geom.AxisY)
		y2 := geom.ProjectPointLine(geom.PointInt(0, 0, 0).WithX(x), *c.YCeil, geom.AxisY)
		y := geom.Div(geom.Add(y1.Y, y2.Y), geom.RInt(2))
		return geom.NewPoint3D(x, y, geom.Zero())
	}
}

// Contains reports whether p lies strictly inside cell (cells.py's
// is_point_in_cell).
func (c Cell3D) Contains(p geom.Point3D) bool {
	return cellMembership(c, p, false)
}

// ContainsOrBoundary reports whether p lies inside cell or on one of its
// bounding walls (cells.py's is_point_in_cell_or_on_boundary). This is
// the variant spec.md §8 uses for the sampled-centre testable property.
func (c Cell3D) ContainsOrBoundary(p geom.Point3D) bool {
	return cellMembership(c, p, true)
}

func cellMembership(c Cell3D, p geom.Point3D, inclusive bool) bool {
	if c.XFloor != nil {
		if inclusive && p.X.Cmp(c.XFloor) < 0 {
			return false
		}
		if !inclusive && p.X.Cmp(c.XFloor) <= 0 {
			return false
		}
	}
	if c.XCeil != nil {
		if inclusive && p.X.Cmp(c.XCeil) > 0 {
			return false
		}
		if !inclusive && p.X.Cmp(c.XCeil) >= 0 {
			return false
		}
	}
	if c.YFloor != nil {
		if !boundsSide(p, *c.YFloor, geom.AxisY, inclusive, true) {
			return false
		}
	}
	if c.YCeil != nil {
		if !boundsSide(p, *c.YCeil, geom.AxisY, inclusive, false) {
			return false
		}
	}
	if c.ZFloor != nil {
		if !boundsSidePlane(p, c.ZFloor, inclusive, true) {
			return false
		}
	}
	if c.ZCeil != nil {
		if !boundsSidePlane(p, c.ZCeil, inclusive, false) {
			return false
		}
	}
	return true
}

// boundsSide checks p is on the correct side of a line bound along axis:
// above (floor=true) or below (floor=false).
func boundsSide(p geom.Point3D, line geom.Line3D, axis geom.Axis, inclusive, floor bool) bool {
	h := geom.HeightPointLine(p, line, axis)
	if !h.Defined() {
		return false
	}
	if floor {
		if inclusive {
			return h.Value().Sign() >= 0
		}
		return h.Value().Sign() > 0
	}
	if inclusive {
		return h.Value().Sign() <= 0
	}
	return h.Value().Sign() < 0
}

func boundsSidePlane(p geom.Point3D, plane *geom.Plane, inclusive, floor bool) bool {
	h := geom.HeightPointPlane(p, plane, geom.AxisZ)
	if floor {
		if inclusive {
			return h.Sign() >= 0
		}
		return h.Sign() > 0
	}
	if inclusive {
		return h.Sign() <= 0
	}
	return h.Sign() < 0
}

// Side names a bounding wall of a Cell3D, used by WallPolygon to pick
// which wall to reconstruct.
type Side int

const (
	SideXFloor Side = iota
	SideXCeil
	SideYFloor
	SideYCeil
	SideZFloor
	SideZCeil
)

// wallBoundingBoxHalf is the half-width of the +/-1000 bounding box (in
// place of cells.py's hardcoded +/-10) used to clip unbounded walls down
// to a finite polygon for display.
const wallBoundingBoxHalf = 1000

// WallPolygon reconstructs the bounded polygon of one wall of cell,
// ported from cells.py's get_cell_wall_surface/find_cell_vertices. It
// exists for tooling/visualizers that need an actual polygon rather than
// the four/six bounding values alone; the core decomposition algorithm
// never calls it. The clockwise sort around the wall's centroid uses
// math.Atan2 on a float64 sort key only — the vertex positions it sorts
// stay exact rationals throughout.
func (c Cell3D) WallPolygon(which Side) ([]geom.Point3D, error) {
	target, ok := c.sidePlane(which)
	if !ok {
		return nil, fmt.Errorf("vd: WallPolygon: side %v has no bound on this cell", which)
	}

	bounding := c.boundingPlanes()
	box := boundingBoxPlanes()
	candidates := append(append([]*geom.Plane{}, bounding...), box...)

	var points []geom.Point3D
	for i, pi := range candidates {
		if pi == target {
			continue
		}
		for j := i + 1; j < len(candidates); j++ {
			pj := candidates[j]
			if pj == target {
				continue
			}
			line, ok := geom.IntersectPlanePlane(target, pi)
			if !ok {
				continue
			}
			pt, ok := geom.IntersectLinePlane(line, pj)
			if !ok {
				continue
			}
			if !c.ContainsOrBoundary(pt) {
				continue
			}
			if !withinBox(pt) {
				continue
			}
			points = append(points, pt)
		}
	}
	points = dedupePoints(points)
	if len(points) < 3 {
		return nil, nil
	}
	return sortClockwise(points, target), nil
}

func (c Cell3D) sidePlane(which Side) (*geom.Plane, bool) {
	switch which {
	case SideXFloor:
		if c.XFloor == nil {
			return nil, false
		}
		return verticalXPlane(c.XFloor), true
	case SideXCeil:
		if c.XCeil == nil {
			return nil, false
		}
		return verticalXPlane(c.XCeil), true
	case SideYFloor:
		if c.YFloor == nil {
			return nil, false
		}
		return verticalYPlane(*c.YFloor), true
	case SideYCeil:
		if c.YCeil == nil {
			return nil, false
		}
		return verticalYPlane(*c.YCeil), true
	case SideZFloor:
		return c.ZFloor, c.ZFloor != nil
	case SideZCeil:
		return c.ZCeil, c.ZCeil != nil
	}
	return nil, false
}

func (c Cell3D) boundingPlanes() []*geom.Plane {
	var ps []*geom.Plane
	if c.XFloor != nil {
		ps = append(ps, verticalXPlane(c.XFloor))
	}
	if c.XCeil != nil {
		ps = append(ps, verticalXPlane(c.XCeil))
	}
	if c.YFloor != nil {
		ps = append(ps, verticalYPlane(*c.YFloor))
	}
	if c.YCeil != nil {
		ps = append(ps, verticalYPlane(*c.YCeil))
	}
	if c.ZFloor != nil {
		ps = append(ps, c.ZFloor)
	}
	if c.ZCeil != nil {
		ps = append(ps, c.ZCeil)
	}
	return ps
}

func verticalXPlane(x geom.R) *geom.Plane {
	return geom.NewPlaneFromPoints(
		geom.NewPoint3D(x, geom.RInt(0), geom.RInt(0)),
		geom.NewPoint3D(x, geom.RInt(1), geom.RInt(0)),
		geom.NewPoint3D(x, geom.RInt(0), geom.RInt(1)),
	)
}

func verticalYPlane(l geom.Line3D) *geom.Plane {
	p3 := l.P1.Add(geom.PointInt(0, 0, 1))
	return geom.NewPlaneFromPoints(l.P1, l.P2, p3)
}

func boundingBoxPlanes() []*geom.Plane {
	h := geom.RInt(wallBoundingBoxHalf)
	neg := geom.Neg(h)
	return []*geom.Plane{
		verticalXPlane(h),
		verticalXPlane(neg),
		geom.NewPlaneFromPoints(geom.NewPoint3D(geom.RInt(0), h, geom.RInt(0)), geom.NewPoint3D(geom.RInt(1), h, geom.RInt(0)), geom.NewPoint3D(geom.RInt(0), h, geom.RInt(1))),
		geom.NewPlaneFromPoints(geom.NewPoint3D(geom.RInt(0), neg, geom.RInt(0)), geom.NewPoint3D(geom.RInt(1), neg, geom.RInt(0)), geom.NewPoint3D(geom.RInt(0), neg, geom.RInt(1))),
		geom.NewPlaneFromPoints(geom.NewPoint3D(geom.RInt(0), geom.RInt(0), h), geom.NewPoint3D(geom.RInt(1), geom.RInt(0), h), geom.NewPoint3D(geom.RInt(0), geom.RInt(1), h)),
		geom.NewPlaneFromPoints(geom.NewPoint3D(geom.RInt(0), geom.RInt(0), neg), geom.NewPoint3D(geom.RInt(1), geom.RInt(0), neg), geom.NewPoint3D(geom.RInt(0), geom.RInt(1), neg)),
	}
}

func withinBox(p geom.Point3D) bool {
	h := geom.RInt(wallBoundingBoxHalf)
	neg := geom.Neg(h)
	within := func(v geom.R) bool { return v.Cmp(neg) >= 0 && v.Cmp(h) <= 0 }
	return within(p.X) && within(p.Y) && within(p.Z)
}

func dedupePoints(pts []geom.Point3D) []geom.Point3D {
	var out []geom.Point3D
	for _, p := range pts {
		dup := false
		for _, q := range out {
			if p.Eq(q) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}

func sortClockwise(pts []geom.Point3D, plane *geom.Plane) []geom.Point3D {
	center := geom.Mean(pts)
	xAxis := pts[0].Sub(center)
	xAxis = normalizeFloat(xAxis)
	normal := geom.NewPoint3D(plane.A, plane.B, plane.C)
	yAxis := crossFloat(normal, xAxis)
	yAxis = normalizeFloat(yAxis)

	keys := make([]float64, len(pts))
	for i, p := range pts {
		d := p.Sub(center)
		tx := dotFloat(d, xAxis)
		ty := dotFloat(d, yAxis)
		keys[i] = math.Atan2(ty, tx)
	}
	idx := make([]int, len(pts))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return keys[idx[i]] < keys[idx[j]] })
	out := make([]geom.Point3D, len(pts))
	for i, k := range idx {
		out[i] = pts[k]
	}
	return out
}

func toFloat(p geom.Point3D) (x, y, z float64) {
	x, _ = p.X.Float64()
	y, _ = p.Y.Float64()
	z, _ = p.Z.Float64()
	return
}

func normalizeFloat(p geom.Point3D) geom.Point3D {
	x, y, z := toFloat(p)
	n := math.Sqrt(x*x + y*y + z*z)
	if n == 0 {
		return p
	}
	return geom.NewPoint3D(geom.RFloat(x/n), geom.RFloat(y/n), geom.RFloat(z/n))
}

func crossFloat(a, b geom.Point3D) geom.Point3D {
	ax, ay, az := toFloat(a)
	bx, by, bz := toFloat(b)
	return geom.NewPoint3D(
		geom.RFloat(ay*bz-az*by),
		geom.RFloat(az*bx-ax*bz),
		geom.RFloat(ax*by-ay*bx),
	)
}

func dotFloat(a, b geom.Point3D) float64 {
	ax, ay, az := toFloat(a)
	bx, by, bz := toFloat(b)
	return ax*bx + ay*by + az*bz
}
