// SPDX-FileCopyrightText : © 2026 vd3planes contributors.
// SPDX-License-Identifier: BSD-2-Clause

// Package vd computes the vertical decomposition of an arrangement of
// planes in 3-space: for every point not on any plane, the cell containing
// it is bounded below by the nearest plane underneath and above by the
// nearest plane overhead, with each cell further split along x and y
// wherever a plane's own boundary (its intersections with the rest of the
// arrangement) passes through.
//
// vd was ported from HayimShaul/vd-3dplanes. The go code matches the file
// and function names of the original code where a direct correspondence
// exists, to help debug porting errors:
//
//	vd                 : vd-3dplanes
//	geom/point.go       : mytypes.py (Point3D)
//	geom/line.go        : mytypes.py (Line3D, Ray3D, Segment3D)
//	geom/plane.go       : mytypes.py (Plane)
//	geom/element.go     : mytypes.py (the union the prototype left implicit)
//	geom/rat.go         : mytypes.py's scalar arithmetic helpers
//	geom/axis.go        : the 'x'/'y'/'z' string axis argument threaded
//	                      throughout the prototype, made an enum
//	geom/height.go      : z_dist.py (height)
//	geom/above_below.go : z_dist.py (is_above, is_below, find_directly_above,
//	                      find_directly_below, is_directly_above)
//	geom/incident.go    : z_dist.py (incident)
//	geom/project.go     : project.py
//	geom/intersect.go   : intersection.py
//	geom/primitives.go  : primitives.py
//	cell.go             : cells.py
//	trace.go            : vd.py's points_above/points_below globals
//	vd2d.go             : vd.py (vd2d)
//	vd.go               : vd.py (vd)
package vd
