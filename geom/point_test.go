package geom

import "testing"

func TestPointArithmetic(t *testing.T) {
	a := PointInt(1, 2, 3)
	b := PointInt(4, -1, 2)
	if sum := a.Add(b); !sum.Eq(PointInt(5, 1, 5)) {
		t.Errorf("Add: got %v, want (5,1,5)", sum)
	}
	if diff := a.Sub(b); !diff.Eq(PointInt(-3, 3, 1)) {
		t.Errorf("Sub: got %v, want (-3,3,1)", diff)
	}
	if scaled := a.Scale(RInt(2)); !scaled.Eq(PointInt(2, 4, 6)) {
		t.Errorf("Scale: got %v, want (2,4,6)", scaled)
	}
}

func TestPointEqIgnoresRationalRepresentation(t *testing.T) {
	a := NewPoint3D(RFrac(1, 2), RFrac(2, 4), Zero())
	b := NewPoint3D(RFrac(3, 6), RFrac(1, 2), Zero())
	if !a.Eq(b) {
		t.Errorf("expected (1/2,2/4,0) == (3/6,1/2,0), got a=%v b=%v", a, b)
	}
}

func TestMeanPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Mean of no points should panic")
		}
	}()
	Mean(nil)
}
