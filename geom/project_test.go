package geom

import "testing"

func TestProjectRoundTrip(t *testing.T) {
	slanted := NewPlaneFromPoints(PointInt(0, 0, 0), PointInt(1, 0, 1), PointInt(0, 1, 0)) // z=x
	p := PointInt(3, 4, 100)
	proj := ProjectPointPlane(p, slanted, AxisZ)
	h := HeightPointPlane(proj, slanted, AxisZ)
	if h.Value().Sign() != 0 {
		t.Errorf("projecting then measuring height should give zero, got %s", h.Value().RatString())
	}
}

func TestProjectIdempotent(t *testing.T) {
	slanted := NewPlaneFromPoints(PointInt(0, 0, 0), PointInt(1, 0, 1), PointInt(0, 1, 0))
	p := PointInt(3, 4, 100)
	once := ProjectPointPlane(p, slanted, AxisZ)
	twice := ProjectPointPlane(once, slanted, AxisZ)
	if !once.Eq(twice) {
		t.Errorf("projecting an already-projected point should be a no-op: %v vs %v", once, twice)
	}
}

func TestProjectPointSegmentOutOfRange(t *testing.T) {
	seg := NewSegment3D(PointInt(-5, 0, 0), PointInt(5, 0, 0))
	if _, ok := ProjectPointSegment(PointInt(10, 3, 0), seg, AxisY); ok {
		t.Errorf("projecting a point whose x falls outside the segment should fail")
	}
}
