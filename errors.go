// SPDX-FileCopyrightText : © 2026 vd3planes contributors.
// SPDX-License-Identifier: BSD-2-Clause

package vd

import "errors"

// errors.go collects the contract-violation errors VD can return (VD2D
// returns no error). Degenerate geometry (collinear points, zero-extent
// breaks) is unrecoverable and panics from the geom package instead - see
// geom/plane.go and geom/primitives.go. These errors are for conditions
// a caller can reasonably trigger and recover from: an empty arrangement,
// or a decomposition that yields no cells.

var (
	// ErrNoPlanes is returned when VD is called with an empty arrangement.
	ErrNoPlanes = errors.New("vd: no planes given")

	// ErrEmptyArrangement is returned when VD's decomposition, over all
	// planes together, yields no cells, which should not happen for a
	// well-formed arrangement but is checked rather than assumed.
	ErrEmptyArrangement = errors.New("vd: plane produced no cells")
)
