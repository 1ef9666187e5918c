package geom

import "testing"

func TestFindDirectlyAboveAndBelow(t *testing.T) {
	low := NewPlaneFromPoints(PointInt(0, 0, 0), PointInt(1, 0, 0), PointInt(0, 1, 0))   // z=0
	mid := NewPlaneFromPoints(PointInt(0, 0, 2), PointInt(1, 0, 2), PointInt(0, 1, 2))   // z=2
	high := NewPlaneFromPoints(PointInt(0, 0, 5), PointInt(1, 0, 5), PointInt(0, 1, 5)) // z=5

	planes := []*Plane{low, mid, high}
	point := PointInt(0, 0, 1) // between low and mid

	above, ok := FindDirectlyAbove(point, planes, AxisZ)
	if !ok || above != mid {
		t.Errorf("expected z=2 plane directly above point, got %v ok=%v", above, ok)
	}
	below, ok := FindDirectlyBelow(point, planes, AxisZ)
	if !ok || below != low {
		t.Errorf("expected z=0 plane directly below point, got %v ok=%v", below, ok)
	}
}

func TestFindDirectlyAboveStability(t *testing.T) {
	low := NewPlaneFromPoints(PointInt(0, 0, 0), PointInt(1, 0, 0), PointInt(0, 1, 0))
	high := NewPlaneFromPoints(PointInt(0, 0, 9), PointInt(1, 0, 9), PointInt(0, 1, 9))
	planes := []*Plane{low, high}
	point := PointInt(0, 0, -1)

	above, ok := FindDirectlyAbove(point, planes, AxisZ)
	if !ok {
		t.Fatalf("expected a plane above point")
	}
	h := HeightOf(point, any(above), AxisZ)
	if h.Sign() >= 0 {
		t.Errorf("plane found directly above should have negative height(point,plane), got %v", h)
	}
	for _, p := range planes {
		if p == above {
			continue
		}
		h2 := HeightOf(point, any(p), AxisZ)
		if h2.Defined() && h2.Sign() < 0 && h2.Value().Cmp(h.Value()) > 0 {
			t.Errorf("found plane is not actually the closest one above point")
		}
	}
}

func TestIsDirectlyAbove(t *testing.T) {
	low := NewPlaneFromPoints(PointInt(0, 0, 0), PointInt(1, 0, 0), PointInt(0, 1, 0))
	mid := NewPlaneFromPoints(PointInt(0, 0, 2), PointInt(1, 0, 2), PointInt(0, 1, 2))
	point := PointInt(0, 0, 1)
	if !IsDirectlyAbove(point, mid, []*Plane{low, mid}, AxisZ) {
		t.Errorf("mid plane should be directly above point")
	}
	if IsDirectlyAbove(point, low, []*Plane{low, mid}, AxisZ) {
		t.Errorf("low plane is below point, not above")
	}
}

func TestIsAboveRayRequiresDirectionSign(t *testing.T) {
	ground := NewPlaneFromPoints(PointInt(0, 0, 0), PointInt(1, 0, 0), PointInt(0, 1, 0))
	upward := NewRay3D(PointInt(0, 0, 1), PointInt(0, 0, 1))
	if !IsAbove(upward, ground, AxisZ) {
		t.Errorf("ray starting above ground and pointing further up should be above")
	}
	downward := NewRay3D(PointInt(0, 0, 1), PointInt(0, 0, -1))
	if IsAbove(downward, ground, AxisZ) {
		t.Errorf("ray starting above ground but heading back down is not unconditionally above")
	}
}
