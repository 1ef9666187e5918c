// SPDX-FileCopyrightText : © 2026 vd3planes contributors.
// SPDX-License-Identifier: BSD-2-Clause

package vd

import (
	"testing"

	"github.com/openvd/vd3planes/geom"
)

func TestTraceRecordsByCarrierIdentity(t *testing.T) {
	tr := newTrace()
	a := geom.NewSegment3D(geom.PointInt(0, 0, 0), geom.PointInt(1, 0, 0))
	b := geom.NewSegment3D(geom.PointInt(0, 0, 0), geom.PointInt(1, 0, 0)) // same coordinates, distinct value

	tr.addAbove(a, geom.PointInt(1, 1, 0))
	tr.addBelow(a, geom.PointInt(1, -1, 0))

	if got := tr.PointsAbove(a); len(got) != 1 || !got[0].Eq(geom.PointInt(1, 1, 0)) {
		t.Errorf("PointsAbove(a) = %v, want one point (1,1,0)", got)
	}
	if got := tr.PointsBelow(a); len(got) != 1 || !got[0].Eq(geom.PointInt(1, -1, 0)) {
		t.Errorf("PointsBelow(a) = %v, want one point (1,-1,0)", got)
	}
	// b was never recorded, even though it has the same coordinates as a.
	if got := tr.PointsAbove(b); got != nil {
		t.Errorf("PointsAbove(b) = %v, want nil (b was never recorded)", got)
	}
}

func TestTraceUnknownCarrierIsEmpty(t *testing.T) {
	tr := newTrace()
	s := geom.NewSegment3D(geom.PointInt(0, 0, 0), geom.PointInt(1, 0, 0))
	if got := tr.PointsAbove(s); len(got) != 0 {
		t.Errorf("PointsAbove on an untouched carrier = %v, want empty", got)
	}
	if got := tr.PointsBelow(s); len(got) != 0 {
		t.Errorf("PointsBelow on an untouched carrier = %v, want empty", got)
	}
}
