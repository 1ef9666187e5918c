package geom

import "testing"

func TestHeightPointPlaneZ(t *testing.T) {
	ground := NewPlaneFromPoints(PointInt(0, 0, 0), PointInt(1, 0, 0), PointInt(0, 1, 0))
	h := HeightPointPlane(PointInt(5, 5, 3), ground, AxisZ)
	if !h.Defined() || h.Value().Cmp(RInt(3)) != 0 {
		t.Errorf("height of (5,5,3) above z=0 should be 3, got %v", h)
	}
}

func TestHeightPointSegmentUndefinedOutsideRange(t *testing.T) {
	seg := NewSegment3D(PointInt(-5, 0, 0), PointInt(5, 0, 0))
	h := HeightPointSegment(PointInt(10, 1, 0), seg, AxisY)
	if h.Defined() {
		t.Errorf("point with x outside segment range should be undefined, got %v", h.Value())
	}
	h2 := HeightPointSegment(PointInt(0, 1, 0), seg, AxisY)
	if !h2.Defined() || h2.Value().Sign() <= 0 {
		t.Errorf("point above segment within range should have positive defined height, got %v", h2)
	}
}

func TestHeightOfDispatch(t *testing.T) {
	ground := NewPlaneFromPoints(PointInt(0, 0, 0), PointInt(1, 0, 0), PointInt(0, 1, 0))
	h := HeightOf(PointInt(0, 0, 1), ground, AxisZ)
	if !h.Defined() || h.Sign() != 1 {
		t.Errorf("expected positive height, got %v", h)
	}
}

func TestValuePanicsWhenUndefined(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Value() on an undefined Height should panic")
		}
	}()
	UndefinedHeight().Value()
}
