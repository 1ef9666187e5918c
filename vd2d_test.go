// SPDX-FileCopyrightText : © 2026 vd3planes contributors.
// SPDX-License-Identifier: BSD-2-Clause

package vd

import (
	"testing"

	"github.com/openvd/vd3planes/geom"
)

// TestVD2DCrossingSegments is close to spec.md §8 scenario 4: two segments
// crossing once at the origin, the second one slanted rather than parallel
// to the y-axis (so the x-sweep used by vd2d's break/sort logic has a
// well-defined single crossing event to work with, and no carrier lacks
// x-extent).
func TestVD2DCrossingSegments(t *testing.T) {
	plane := geom.NewPlaneFromPoints(geom.PointInt(0, 0, 0), geom.PointInt(1, 0, 0), geom.PointInt(0, 1, 0))
	a := geom.NewSegment3D(geom.PointInt(-5, 0, 0), geom.PointInt(5, 0, 0))
	b := geom.NewSegment3D(geom.PointInt(-1, -5, 0), geom.PointInt(1, 5, 0))
	cells := VD2D(plane, []geom.Element{a, b})
	if len(cells) == 0 {
		t.Fatalf("expected at least one cell for two crossing segments")
	}
	for _, c := range cells {
		if c.YFloor == nil && c.YCeil == nil {
			t.Errorf("expected every cell to be bounded by at least one carrier, got %v", c)
		}
	}
}

// TestVD2DSingleCarrier checks the degenerate case vd.go's edge-breaking
// can hand vd2d: a bare infinite Line3D with no other carriers to
// interact with (spec.md §8 scenario 3, per plane).
func TestVD2DSingleCarrier(t *testing.T) {
	plane := geom.NewPlaneFromPoints(geom.PointInt(0, 0, 0), geom.PointInt(1, 0, 0), geom.PointInt(0, 1, 0))
	line := geom.NewLine3D(geom.PointInt(0, 0, 0), geom.PointInt(1, 0, 0))
	cells := VD2D(plane, []geom.Element{line})
	if len(cells) != 2 {
		t.Fatalf("expected exactly 2 cells (above and below the line), got %d", len(cells))
	}
	for _, c := range cells {
		if c.XFloor != nil || c.XCeil != nil {
			t.Errorf("expected both cells unbounded in x, got %v", c)
		}
	}
	sawAbove, sawBelow := false, false
	for _, c := range cells {
		if c.YFloor != nil && c.YCeil == nil {
			sawAbove = true
		}
		if c.YFloor == nil && c.YCeil != nil {
			sawBelow = true
		}
	}
	if !sawAbove || !sawBelow {
		t.Errorf("expected one cell bounded below and one bounded above by the line, got %v", cells)
	}
}

func TestVD2DEmptyCarriers(t *testing.T) {
	plane := geom.NewPlaneFromPoints(geom.PointInt(0, 0, 0), geom.PointInt(1, 0, 0), geom.PointInt(0, 1, 0))
	cells := VD2D(plane, nil)
	if len(cells) != 0 {
		t.Errorf("expected no cells for no carriers, got %d", len(cells))
	}
}
