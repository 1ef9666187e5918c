package geom

import "testing"

func TestBreakElementSegmentPreservesEndpoints(t *testing.T) {
	seg := NewSegment3D(PointInt(0, 0, 0), PointInt(10, 0, 0))
	pieces := BreakElement(seg, RInt(4), AxisX)
	if len(pieces) != 2 {
		t.Fatalf("expected 2 pieces, got %d", len(pieces))
	}
	all := map[Point3D]bool{}
	for _, p := range pieces {
		for _, e := range Endpoints(p) {
			all[e] = true
		}
	}
	for _, want := range []Point3D{PointInt(0, 0, 0), PointInt(10, 0, 0), PointInt(4, 0, 0)} {
		if !containsPoint(all, want) {
			t.Errorf("missing expected endpoint %v in union %v", want, all)
		}
	}
}

func containsPoint(set map[Point3D]bool, p Point3D) bool {
	for k := range set {
		if k.Eq(p) {
			return true
		}
	}
	return false
}

func TestBreakElementAtEndpointReturnsUnchanged(t *testing.T) {
	seg := NewSegment3D(PointInt(0, 0, 0), PointInt(10, 0, 0))
	pieces := BreakElement(seg, RInt(0), AxisX)
	if len(pieces) != 1 {
		t.Errorf("breaking exactly at an endpoint should not create a zero-length piece, got %d pieces", len(pieces))
	}
}

func TestBreakElementOutOfRangePanics(t *testing.T) {
	seg := NewSegment3D(PointInt(0, 0, 0), PointInt(10, 0, 0))
	defer func() {
		if recover() == nil {
			t.Errorf("breaking outside the element's range should panic")
		}
	}()
	BreakElement(seg, RInt(20), AxisX)
}

func TestBreakElementRay(t *testing.T) {
	ray := NewRay3D(PointInt(0, 0, 0), PointInt(1, 0, 0))
	pieces := BreakElement(ray, RInt(3), AxisX)
	if len(pieces) != 2 {
		t.Fatalf("expected a segment and a ray, got %d pieces", len(pieces))
	}
	seg, ok := pieces[0].(Segment3D)
	if !ok || !seg.P1.Eq(PointInt(0, 0, 0)) || !seg.P2.Eq(PointInt(3, 0, 0)) {
		t.Errorf("expected segment [(0,0,0),(3,0,0)], got %v", pieces[0])
	}
	newRay, ok := pieces[1].(Ray3D)
	if !ok || !newRay.P1.Eq(PointInt(3, 0, 0)) || !newRay.Direction.Eq(PointInt(1, 0, 0)) {
		t.Errorf("expected ray from (3,0,0) continuing in direction (1,0,0), got %v", pieces[1])
	}
}

func TestMidPointSegment(t *testing.T) {
	seg := NewSegment3D(PointInt(0, 0, 0), PointInt(10, 4, 0))
	if mid := MidPoint(seg); !mid.Eq(PointInt(5, 2, 0)) {
		t.Errorf("expected midpoint (5,2,0), got %v", mid)
	}
}
