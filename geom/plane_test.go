package geom

import "testing"

func TestNewPlaneFromPointsZGround(t *testing.T) {
	p := NewPlaneFromPoints(PointInt(0, 0, 0), PointInt(1, 0, 0), PointInt(0, 1, 0))
	if p.C.Sign() == 0 {
		t.Fatalf("z=0 plane should have non-zero C, got %v", p)
	}
	z := p.ZAt(RInt(5), RInt(-3))
	if z.Sign() != 0 {
		t.Errorf("z=0 plane should have ZAt(x,y)=0 everywhere, got %s", z.RatString())
	}
}

func TestNewPlaneFromPointsCollinearPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("collinear points should panic")
		}
	}()
	NewPlaneFromPoints(PointInt(0, 0, 0), PointInt(1, 1, 1), PointInt(2, 2, 2))
}

func TestPlaneZAtSlanted(t *testing.T) {
	// plane z = x
	p := NewPlaneFromPoints(PointInt(0, 0, 0), PointInt(0, 1, 0), PointInt(1, 0, 1))
	if z := p.ZAt(RInt(3), RInt(7)); z.Cmp(RInt(3)) != 0 {
		t.Errorf("plane z=x at x=3 should give z=3, got %s", z.RatString())
	}
}
