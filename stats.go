// SPDX-FileCopyrightText : © 2026 vd3planes contributors.
// SPDX-License-Identifier: BSD-2-Clause

package vd

import (
	"fmt"
	"time"
)

// Stats accumulates bookkeeping for a single VD invocation, the way the
// teacher's Timing struct accumulates per-frame numbers. Useful for
// seeing where time and work went on a large arrangement.
type Stats struct {
	Elapsed  time.Duration // wall-clock time spent in VD.
	Planes   int           // planes in the arrangement.
	Segments int           // carrier pieces handed to the per-plane vd2d calls, upper and lower face together.
	Cells    int           // 3D cells emitted.
}

// Zero resets Stats to its initial state.
func (s *Stats) Zero() {
	s.Elapsed = 0
	s.Planes = 0
	s.Segments = 0
	s.Cells = 0
}

// Dump prints a one-line summary, matching the format of the teacher's
// Timing.Dump.
func (s *Stats) Dump() {
	fmt.Printf("planes:%d segments:%d cells:%d elapsed:%s\n",
		s.Planes, s.Segments, s.Cells, s.Elapsed)
}
