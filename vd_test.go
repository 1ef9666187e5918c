// SPDX-FileCopyrightText : © 2026 vd3planes contributors.
// SPDX-License-Identifier: BSD-2-Clause

package vd

import (
	"testing"

	"github.com/openvd/vd3planes/geom"
)

// TestVDSinglePlane is spec.md §8 scenario 1.
func TestVDSinglePlane(t *testing.T) {
	ground := geom.NewPlaneFromPoints(geom.PointInt(0, 0, 0), geom.PointInt(1, 0, 0), geom.PointInt(0, 1, 0))
	cells, stats, err := VD([]*geom.Plane{ground})
	if err != nil {
		t.Fatalf("VD: %v", err)
	}
	if len(cells) != 2 {
		t.Fatalf("expected 2 cells for a single plane, got %d", len(cells))
	}
	sawUnboundedAbove, sawUnboundedBelow := false, false
	for _, c := range cells {
		if c.XFloor != nil || c.XCeil != nil || c.YFloor != nil || c.YCeil != nil {
			t.Errorf("expected every bound besides z to be none, got %v", c)
		}
		if c.ZFloor == ground && c.ZCeil == nil {
			sawUnboundedAbove = true
		}
		if c.ZFloor == nil && c.ZCeil == ground {
			sawUnboundedBelow = true
		}
	}
	if !sawUnboundedAbove || !sawUnboundedBelow {
		t.Errorf("expected one cell above the plane and one below, got %v", cells)
	}
	if stats.Planes != 1 || stats.Cells != 2 {
		t.Errorf("stats = %+v, want Planes=1 Cells=2", stats)
	}
}

// TestVDTwoCrossingPlanes is spec.md §8 scenario 3.
func TestVDTwoCrossingPlanes(t *testing.T) {
	ground := geom.NewPlaneFromPoints(geom.PointInt(0, 0, 0), geom.PointInt(1, 0, 0), geom.PointInt(0, 1, 0))
	slanted := geom.NewPlaneFromPoints(geom.PointInt(0, 0, 0), geom.PointInt(1, 0, 0), geom.PointInt(0, 1, 1))
	cells, _, err := VD([]*geom.Plane{ground, slanted})
	if err != nil {
		t.Fatalf("VD: %v", err)
	}
	if len(cells) != 4 {
		t.Fatalf("expected 4 cells for two crossing planes, got %d: %v", len(cells), cells)
	}
}

func TestVDNoPlanes(t *testing.T) {
	if _, _, err := VD(nil); err != ErrNoPlanes {
		t.Errorf("VD(nil) error = %v, want ErrNoPlanes", err)
	}
}

func TestVDParallelOption(t *testing.T) {
	ground := geom.NewPlaneFromPoints(geom.PointInt(0, 0, 0), geom.PointInt(1, 0, 0), geom.PointInt(0, 1, 0))
	slanted := geom.NewPlaneFromPoints(geom.PointInt(0, 0, 0), geom.PointInt(1, 0, 0), geom.PointInt(0, 1, 1))
	cells, _, err := VD([]*geom.Plane{ground, slanted}, Workers(4))
	if err != nil {
		t.Fatalf("VD with Workers(4): %v", err)
	}
	if len(cells) != 4 {
		t.Errorf("expected the parallel path to agree with the sequential one: got %d cells", len(cells))
	}
}

func TestFindPlaneAboveBelow(t *testing.T) {
	low := geom.NewPlaneFromPoints(geom.PointInt(0, 0, 0), geom.PointInt(1, 0, 0), geom.PointInt(0, 1, 0))
	high := geom.NewPlaneFromPoints(geom.PointInt(0, 0, 5), geom.PointInt(1, 0, 5), geom.PointInt(0, 1, 5))
	seg := geom.NewSegment3D(geom.PointInt(-1, 0, 2), geom.PointInt(1, 0, 2))
	planes := []*geom.Plane{low, high}

	above, ok := findPlaneAbove(seg, planes)
	if !ok || above != high {
		t.Errorf("findPlaneAbove(seg) = %v, %v, want high, true", above, ok)
	}
	below, ok := findPlaneBelow(seg, planes)
	if !ok || below != low {
		t.Errorf("findPlaneBelow(seg) = %v, %v, want low, true", below, ok)
	}
}

func TestFindPlaneAboveBelowLineNotSupported(t *testing.T) {
	low := geom.NewPlaneFromPoints(geom.PointInt(0, 0, 0), geom.PointInt(1, 0, 0), geom.PointInt(0, 1, 0))
	line := geom.NewLine3D(geom.PointInt(0, 0, 2), geom.PointInt(1, 0, 2))
	if _, ok := findPlaneAbove(line, []*geom.Plane{low}); ok {
		t.Errorf("expected a bare Line3D carrier to never redirect")
	}
	if _, ok := findPlaneBelow(line, []*geom.Plane{low}); ok {
		t.Errorf("expected a bare Line3D carrier to never redirect")
	}
}
