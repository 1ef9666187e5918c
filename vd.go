// SPDX-FileCopyrightText : © 2026 vd3planes contributors.
// SPDX-License-Identifier: BSD-2-Clause

package vd

import (
	"sync"
	"time"

	"github.com/openvd/vd3planes/geom"
)

// vd.go: the 3D driver, per spec.md §4.7. Ported from
// original_source/vd.py's overall shape (per-plane p_segs, a vd2d call per
// face, centre-point classification against the full plane list), but
// following spec.md's more complete break/redirect pipeline rather than
// the prototype's single unified break set: triple-plane points and
// xy-projection crossings are computed once per plane-pair intersection
// line, the resulting pieces are redirected onto whichever neighbouring
// plane sits directly above/below them, and each face is decomposed with
// vd2d independently for its upper and lower side.

// edge is one plane-pair's line of intersection, carried alongside the
// two planes that produced it so later steps know which planes' carrier
// lists the pieces belong to.
type edge struct {
	line geom.Line3D
	a, b *geom.Plane
}

func buildEdges(planes []*geom.Plane) []edge {
	var edges []edge
	for i := 0; i < len(planes); i++ {
		for j := i + 1; j < len(planes); j++ {
			line, ok := geom.IntersectPlanePlane(planes[i], planes[j])
			if !ok {
				continue
			}
			edges = append(edges, edge{line: line, a: planes[i], b: planes[j]})
		}
	}
	return edges
}

// computeBreakPoints finds, for every edge, the points spec.md §4.7 step 2
// calls for: a triple-plane point for every other plane the edge's line
// crosses (added to both the above and below break sets, since a genuine
// vertex of the arrangement bounds every face meeting along this edge),
// and an xy-projection crossing against every other edge whose projected
// path crosses this one without the two lines actually meeting in 3D.
func computeBreakPoints(edges []edge, planes []*geom.Plane) (above, below [][]geom.Point3D) {
	above = make([][]geom.Point3D, len(edges))
	below = make([][]geom.Point3D, len(edges))
	for i, e := range edges {
		for _, p := range planes {
			pt, ok := geom.IntersectLinePlane(e.line, p)
			if !ok {
				continue
			}
			above[i] = append(above[i], pt)
			below[i] = append(below[i], pt)
		}
		for j, peer := range edges {
			if j == i {
				continue
			}
			q, focusLower, ok := projectionCrossing(e.line, peer.line, planes)
			if !ok {
				continue
			}
			if focusLower {
				above[i] = append(above[i], q)
			} else {
				below[i] = append(below[i], q)
			}
		}
	}
	return above, below
}

// projectionCrossing finds where focus and peer's xy-projections cross
// without the two lines meeting in 3D (spec.md §4.7 step 2, second
// bullet), and reports which of the two is lower at that point — the
// event belongs to the lower line's "above" break set, and the higher
// line's "below" break set. A third plane whose height at that point
// falls strictly between the two lines' heights makes the crossing
// invisible from either line's face, and is not reported (the visibility
// guard named in spec.md §9's lower-envelope note, generalised here to
// every pair, not just the lower envelope).
func projectionCrossing(focus, peer geom.Line3D, planes []*geom.Plane) (q geom.Point3D, focusLower, ok bool) {
	ffocus := flattenToXY(focus)
	fpeer := flattenToXY(peer)
	xy, crossed := geom.IntersectLineLine(ffocus, fpeer)
	if !crossed {
		return geom.Point3D{}, false, false
	}
	qFocus := pointOnLineAtXY(focus, xy)
	qPeer := pointOnLineAtXY(peer, xy)
	switch qFocus.Z.Cmp(qPeer.Z) {
	case 0:
		return geom.Point3D{}, false, false // genuine 3D crossing, handled as a triple point elsewhere
	case -1:
		focusLower = true
	}
	lo, hi := qFocus.Z, qPeer.Z
	if lo.Cmp(hi) > 0 {
		lo, hi = hi, lo
	}
	for _, p := range planes {
		z := p.ZAt(xy.X, xy.Y)
		if z.Cmp(lo) > 0 && z.Cmp(hi) < 0 {
			return geom.Point3D{}, false, false
		}
	}
	return qFocus, focusLower, true
}

// flattenToXY drops a line's z-coordinate, the projection vd2d's own
// carriers are kept in (§4.4; facesToCells flattens them before each
// VD2D call).
func flattenToXY(l geom.Line3D) geom.Line3D {
	return geom.ProjectOntoXY(l).(geom.Line3D)
}

// pointOnLineAtXY finds the point on line above or below xy, matching
// xy's x-coordinate (or, when the line has no extent in x, its
// y-coordinate), under the general-position assumption the rest of the
// kernel relies on.
func pointOnLineAtXY(line geom.Line3D, xy geom.Point3D) geom.Point3D {
	return geom.ProjectPointLine(xy, line, geom.AxisZ)
}

// breakLineAtPoints breaks an edge's line at its recorded events, per
// spec.md §4.7 step 3. An edge with no recorded events at all (only
// possible when its two defining planes have no third plane or other
// edge to interact with — exactly the two-plane arrangement of spec.md
// §8 scenario 3) is returned unbroken: vd2d's own carrier handling treats
// a bare Line3D carrier as spanning the whole face, which is exactly
// right when nothing else bounds it.
func breakLineAtPoints(line geom.Line3D, pts []geom.Point3D) []geom.Element {
	sorted := sortByX(pts)
	pieces := []geom.Element{line}
	for _, p := range sorted {
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
	return pieces
}

// findPlaneAbove/findPlaneBelow mirror geom.FindDirectlyAbove/Below for a
// carrier element rather than a bare point (spec.md §4.7 step 4, "find
// the plane directly above s"): geom.HeightOf supports a Segment3D or
// Ray3D queried against a *geom.Plane, which is all step 4 ever needs. A
// bare Line3D carrier (the two-plane edge case above) has no third plane
// to be redirected onto, so it reports not-found rather than reaching
// into geom.HeightOf, which has no Line3D/Plane combination at all.
func findPlaneAbove(e geom.Element, planes []*geom.Plane) (*geom.Plane, bool) {
	if _, ok := e.(geom.Line3D); ok {
		return nil, false
	}
	var best *geom.Plane
	var bestH geom.Height
	found := false
	for _, p := range planes {
		h := geom.HeightOf(e, any(p), geom.AxisZ)
		if !h.Defined() || h.Sign() >= 0 {
			continue
		}
		if !found || bestH.Value().Cmp(h.Value()) < 0 {
			best, bestH, found = p, h, true
		}
	}
	return best, found
}

func findPlaneBelow(e geom.Element, planes []*geom.Plane) (*geom.Plane, bool) {
	if _, ok := e.(geom.Line3D); ok {
		return nil, false
	}
	var best *geom.Plane
	var bestH geom.Height
	found := false
	for _, p := range planes {
		h := geom.HeightOf(e, any(p), geom.AxisZ)
		if !h.Defined() || h.Sign() <= 0 {
			continue
		}
		if !found || bestH.Value().Cmp(h.Value()) > 0 {
			best, bestH, found = p, h, true
		}
	}
	return best, found
}

// projectElementOntoPlaneZ lifts a segment or ray onto target along z,
// preserving its kind (spec.md §4.7 step 4, "project(s, p', 'z')").
func projectElementOntoPlaneZ(e geom.Element, target *geom.Plane) geom.Element {
	switch el := e.(type) {
	case geom.Segment3D:
		return geom.ProjectSegmentPlane(el, target, geom.AxisZ)
	case geom.Ray3D:
		return geom.ProjectRayPlane(el, target, geom.AxisZ)
	default:
		panic("vd: projectElementOntoPlaneZ: unsupported element " + e.Kind().String())
	}
}

// degeneratePlaneCells handles a plane with no incident edges at all —
// it doesn't intersect any other plane in the arrangement (the
// single-plane case of spec.md §8 scenario 1 is the only one that arises
// under the general-position assumption, since two non-parallel planes
// always intersect). The whole plane is one unbounded face; any point on
// it is representative for classifying what lies above/below.
func degeneratePlaneCells(p *geom.Plane, planes []*geom.Plane) []Cell3D {
	sample := p.P1
	var cells []Cell3D
	var zCeil *geom.Plane
	if found, ok := geom.FindDirectlyAbove(sample, planes, geom.AxisZ); ok {
		zCeil = found
	}
	cells = append(cells, Cell3D{ZFloor: p, ZCeil: zCeil})
	if _, ok := geom.FindDirectlyBelow(sample, planes, geom.AxisZ); !ok {
		cells = append(cells, Cell3D{ZFloor: nil, ZCeil: p})
	}
	return cells
}

// facesToCells decomposes one plane's upper and lower faces with vd2d
// and lifts each resulting 2D cell into a Cell3D, per spec.md §4.7 steps
// 5-7: a 2D cell's centre is lifted back onto p along z, then classified
// against the full plane list to find z_ceil (upper face) or to confirm
// the lower-envelope condition (lower face, z_floor left unset).
func facesToCells(p *geom.Plane, planes []*geom.Plane, segsAbove, segsBelow []geom.Element) []Cell3D {
	flat := func(es []geom.Element) []geom.Element {
		out := make([]geom.Element, len(es))
		for i, e := range es {
			out[i] = geom.ProjectOntoXY(e)
		}
		return out
	}
	var cells []Cell3D
	for _, c := range VD2D(p, flat(segsAbove)) {
		center := FindCenterPoint(c)
		lifted := geom.ProjectPointPlane(center, p, geom.AxisZ)
		var zCeil *geom.Plane
		if found, ok := geom.FindDirectlyAbove(lifted, planes, geom.AxisZ); ok {
			zCeil = found
		}
		cells = append(cells, Cell3D{Cell2D: c, ZFloor: p, ZCeil: zCeil})
	}
	for _, c := range VD2D(p, flat(segsBelow)) {
		center := FindCenterPoint(c)
		lifted := geom.ProjectPointPlane(center, p, geom.AxisZ)
		if _, ok := geom.FindDirectlyBelow(lifted, planes, geom.AxisZ); ok {
			continue // not on the arrangement's lower envelope
		}
		cells = append(cells, Cell3D{Cell2D: c, ZFloor: nil, ZCeil: p})
	}
	return cells
}

// VD computes the vertical decomposition of an arrangement of planes in
// general position, returning every 3D cell (spec.md §4.7). Options
// configure the worker count and logger (config.go; the WithTrace flag is
// not read here and no event maps are returned); with
// Workers(n) for n > 1 the outer loop over planes runs across n
// goroutines, one plane's carrier maps and vd2d call entirely thread-
// local to its own goroutine, with only the final cell-list flatten
// synchronizing (spec.md §5).
func VD(planes []*geom.Plane, opts ...Option) ([]Cell3D, Stats, error) {
	cfg := configDefaults
	for _, o := range opts {
		o(&cfg)
	}
	var stats Stats
	if len(planes) == 0 {
		return nil, stats, ErrNoPlanes
	}
	start := time.Now()
	stats.Planes = len(planes)

	edges := buildEdges(planes)
	aboveBreaks, belowBreaks := computeBreakPoints(edges, planes)

	incidence := map[*geom.Plane]int{}
	intersectAbove := map[*geom.Plane][]geom.Element{}
	intersectBelow := map[*geom.Plane][]geom.Element{}
	for i, e := range edges {
		incidence[e.a]++
		incidence[e.b]++
		ab := breakLineAtPoints(e.line, aboveBreaks[i])
		bl := breakLineAtPoints(e.line, belowBreaks[i])
		intersectAbove[e.a] = append(intersectAbove[e.a], ab...)
		intersectAbove[e.b] = append(intersectAbove[e.b], ab...)
		intersectBelow[e.a] = append(intersectBelow[e.a], bl...)
		intersectBelow[e.b] = append(intersectBelow[e.b], bl...)
	}

	redirectedAbove := map[*geom.Plane][]geom.Element{}
	redirectedBelow := map[*geom.Plane][]geom.Element{}
	for _, p := range planes {
		for _, s := range intersectAbove[p] {
			if target, ok := findPlaneAbove(s, planes); ok {
				redirectedBelow[target] = append(redirectedBelow[target], projectElementOntoPlaneZ(s, target))
			}
		}
		for _, s := range intersectBelow[p] {
			if target, ok := findPlaneBelow(s, planes); ok {
				redirectedAbove[target] = append(redirectedAbove[target], projectElementOntoPlaneZ(s, target))
			}
		}
	}

	results := make([][]Cell3D, len(planes))
	segCounts := make([]int, len(planes))

	work := func(i int) {
		p := planes[i]
		if incidence[p] == 0 {
			results[i] = degeneratePlaneCells(p, planes)
			return
		}
		segsAbove := append(append([]geom.Element{}, intersectAbove[p]...), redirectedBelow[p]...)
		segsBelow := append(append([]geom.Element{}, intersectBelow[p]...), redirectedAbove[p]...)
		segCounts[i] = len(segsAbove) + len(segsBelow)
		results[i] = facesToCells(p, planes, segsAbove, segsBelow)
	}

	if cfg.workers <= 1 {
		for i := range planes {
			work(i)
		}
	} else {
		sem := make(chan struct{}, cfg.workers)
		var wg sync.WaitGroup
		for i := range planes {
			wg.Add(1)
			sem <- struct{}{}
			go func(i int) {
				defer wg.Done()
				defer func() { <-sem }()
				work(i)
			}(i)
		}
		wg.Wait()
	}

	var cells []Cell3D
	for i := range planes {
		cells = append(cells, results[i]...)
		stats.Segments += segCounts[i]
	}
	if len(cells) == 0 {
		return nil, stats, ErrEmptyArrangement
	}
	stats.Cells = len(cells)
	stats.Elapsed = time.Since(start)
	if cfg.logger != nil {
		cfg.logger.Debug("vd: decomposition complete",
			"planes", stats.Planes, "segments", stats.Segments, "cells", stats.Cells, "elapsed", stats.Elapsed)
	}
	return cells, stats, nil
}
