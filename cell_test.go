// SPDX-FileCopyrightText : © 2026 vd3planes contributors.
// SPDX-License-Identifier: BSD-2-Clause

package vd

import (
	"testing"

	"github.com/openvd/vd3planes/geom"
)

func boxCell(t *testing.T) Cell3D {
	t.Helper()
	yFloor := geom.NewLine3D(geom.PointInt(0, 0, 0), geom.PointInt(1, 0, 0))
	yCeil := geom.NewLine3D(geom.PointInt(0, 2, 0), geom.PointInt(1, 2, 0))
	zFloor := geom.NewPlaneFromPoints(geom.PointInt(0, 0, 0), geom.PointInt(1, 0, 0), geom.PointInt(0, 1, 0))
	zCeil := geom.NewPlaneFromPoints(geom.PointInt(0, 0, 1), geom.PointInt(1, 0, 1), geom.PointInt(0, 1, 1))
	return Cell3D{
		Cell2D: Cell2D{XFloor: geom.RInt(0), XCeil: geom.RInt(2), YFloor: &yFloor, YCeil: &yCeil},
		ZFloor: zFloor,
		ZCeil:  zCeil,
	}
}

func TestFindCenterPointBoundedCell(t *testing.T) {
	c := boxCell(t).Cell2D
	center := FindCenterPoint(c)
	if !center.Eq(geom.PointInt(1, 1, 0)) {
		t.Errorf("FindCenterPoint = %v, want (1,1,0)", center)
	}
}

func TestFindCenterPointUnboundedX(t *testing.T) {
	c := boxCell(t).Cell2D
	c.XFloor = nil
	center := FindCenterPoint(c)
	if center.X.Cmp(c.XCeil) >= 0 {
		t.Errorf("expected centre x (%v) strictly left of x_ceil (%v) when x_floor is none", center.X, c.XCeil)
	}
}

func TestCellContains(t *testing.T) {
	c := boxCell(t)
	inside := geom.NewPoint3D(geom.RInt(1), geom.RInt(1), geom.RFrac(1, 2))
	if !c.Contains(inside) {
		t.Errorf("expected %v to be strictly inside %v", inside, c)
	}
	onFloor := geom.NewPoint3D(geom.RInt(1), geom.RInt(1), geom.RInt(0))
	if c.Contains(onFloor) {
		t.Errorf("expected a point on z_floor to not count as strictly inside")
	}
	if !c.ContainsOrBoundary(onFloor) {
		t.Errorf("expected a point on z_floor to count as on the boundary")
	}
	outside := geom.NewPoint3D(geom.RInt(5), geom.RInt(1), geom.RFrac(1, 2))
	if c.Contains(outside) || c.ContainsOrBoundary(outside) {
		t.Errorf("expected %v to be outside %v entirely", outside, c)
	}
}

func TestWallPolygonZFloor(t *testing.T) {
	c := boxCell(t)
	points, err := c.WallPolygon(SideZFloor)
	if err != nil {
		t.Fatalf("WallPolygon(SideZFloor) error: %v", err)
	}
	if len(points) < 3 {
		t.Fatalf("expected a real polygon for a fully bounded wall, got %d points", len(points))
	}
	for _, p := range points {
		if p.Z.Sign() != 0 {
			t.Errorf("expected every z_floor wall vertex to lie on z=0, got %v", p)
		}
		if !c.ContainsOrBoundary(p) {
			t.Errorf("expected wall vertex %v to lie on the cell's boundary", p)
		}
	}
}

func TestWallPolygonMissingSide(t *testing.T) {
	c := boxCell(t)
	c.XFloor = nil
	if _, err := c.WallPolygon(SideXFloor); err == nil {
		t.Errorf("expected an error reconstructing a wall the cell has no bound on")
	}
}
