// SPDX-FileCopyrightText : © 2026 vd3planes contributors.
// SPDX-License-Identifier: BSD-2-Clause

package vd

import "github.com/openvd/vd3planes/geom"

// trace.go carries the points_above/points_below event maps vd2d builds
// while decomposing a plane (spec.md §4.6), as an explicit return value
// instead of the ambient global state the prototype kept per-module
// (design notes: "Global state in vd2d"). A carrier (Segment3D/Ray3D
// value) is used as its own map key. Its coordinates are *big.Rat
// pointers, so a key matches copies of the same built element but not a
// separately built element with equal coordinates.

// Trace records, for each carrier element on a host plane, the points
// that witness an event visible looking up (PointsAbove) or down
// (PointsBelow) from its interior.
type Trace struct {
	above map[geom.Element][]geom.Point3D
	below map[geom.Element][]geom.Point3D
}

func newTrace() *Trace {
	return &Trace{
		above: make(map[geom.Element][]geom.Point3D),
		below: make(map[geom.Element][]geom.Point3D),
	}
}

func (t *Trace) addAbove(e geom.Element, p geom.Point3D) { t.above[e] = append(t.above[e], p) }
func (t *Trace) addBelow(e geom.Element, p geom.Point3D) { t.below[e] = append(t.below[e], p) }

// PointsAbove returns the recorded above-events for carrier e.
func (t *Trace) PointsAbove(e geom.Element) []geom.Point3D { return t.above[e] }

// PointsBelow returns the recorded below-events for carrier e.
func (t *Trace) PointsBelow(e geom.Element) []geom.Point3D { return t.below[e] }
