// SPDX-FileCopyrightText : © 2026 vd3planes contributors.
// SPDX-License-Identifier: BSD-2-Clause

package vd

import "github.com/openvd/vd3planes/geom"

// arena.go hands out stable integer indices for the planes in an
// arrangement, so that cells can reference z_floor/z_ceil/y_floor/y_ceil
// by index instead of holding a *geom.Plane directly. This is a trimmed
// version of the teacher's eid allocator: VD has a single-shot lifecycle
// (spec.md §3 - built once per arrangement, then discarded), so there is
// no edition counter and no dispose/recycle path. Once allocated, an
// index is valid for the lifetime of the arena.

// planeIdx is an index into an arena's plane slice.
type planeIdx uint32

const noPlane = planeIdx(^uint32(0))

// arena owns the planes of one arrangement and assigns each a stable
// index, so internal bookkeeping (break queues, above/below maps) can key
// on a small integer instead of a pointer.
type arena struct {
	planes []*geom.Plane
	index  map[*geom.Plane]planeIdx
}

func newArena(planes []*geom.Plane) *arena {
	a := &arena{
		planes: make([]*geom.Plane, 0, len(planes)),
		index:  make(map[*geom.Plane]planeIdx, len(planes)),
	}
	for _, p := range planes {
		a.add(p)
	}
	return a
}

// add registers p if not already present and returns its index.
func (a *arena) add(p *geom.Plane) planeIdx {
	if idx, ok := a.index[p]; ok {
		return idx
	}
	idx := planeIdx(len(a.planes))
	a.planes = append(a.planes, p)
	a.index[p] = idx
	return idx
}

func (a *arena) at(idx planeIdx) *geom.Plane {
	if idx == noPlane {
		return nil
	}
	return a.planes[idx]
}

func (a *arena) len() int { return len(a.planes) }
