// SPDX-FileCopyrightText : © 2026 vd3planes contributors.
// SPDX-License-Identifier: BSD-2-Clause

package vd

import (
	"fmt"

	"github.com/openvd/vd3planes/geom"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// format.go renders cell bounds for tracing/debug output. The core
// algorithm never leaves exact rational arithmetic; this is purely a
// display concern, so it is the one place a decimal approximation is
// acceptable.

var printer = message.NewPrinter(language.English)

// formatBound renders an optional rational bound, matching the "none"
// convention used throughout spec.md for unbounded sides of a cell.
func formatBound(r geom.R) string {
	if r == nil {
		return "none"
	}
	f, _ := r.Float64()
	return printer.Sprintf("%.4f", f)
}

// formatLineBound renders an optional line bound (used for y_floor/y_ceil
// in a 2D cell).
func formatLineBound(l *geom.Line3D) string {
	if l == nil {
		return "none"
	}
	return fmt.Sprintf("line(%s)", l.String())
}

// formatPlaneBound renders an optional plane bound (used for
// z_floor/z_ceil in a 3D cell).
func formatPlaneBound(p *geom.Plane) string {
	if p == nil {
		return "none"
	}
	return fmt.Sprintf("plane(%s)", p.String())
}
