// SPDX-FileCopyrightText : © 2026 vd3planes contributors.
// SPDX-License-Identifier: BSD-2-Clause

// Package geom is the exact-arithmetic geometric kernel: points, planes,
// lines, rays and segments in 3-space, plus the predicates, intersection,
// projection and primitive-breaking operations the vertical decomposition
// algorithm is built from.
//
// Coordinates are math/big.Rat values. Every arithmetic operation here
// allocates and returns a fresh *big.Rat rather than mutating an operand in
// place, so a Point3D (or any other kernel value) is safe to share and
// compare by value once constructed. Floating point never enters a
// coordinate: sorting, incidence and "directly above" all rely on exact
// zero/sign tests, and a float would silently break them.
//
// This package is ported from the `vd-3dplanes` Python prototype
// (original_source/mytypes.py, z_dist.py, intersection.py, project.py,
// primitives.py). Function names match the Python originals where a
// direct correspondence exists.
package geom

import "math/big"

// R is shorthand for an exact rational coordinate or scalar.
type R = *big.Rat

// RInt builds an exact rational from an integer.
func RInt(n int64) R { return big.NewRat(n, 1) }

// RFrac builds an exact rational num/den.
func RFrac(num, den int64) R { return big.NewRat(num, den) }

// Zero is the exact rational 0.
func Zero() R { return new(big.Rat) }

// rAdd, rSub, rMul, rDiv, rNeg never mutate their operands: each allocates
// a fresh result, matching math/lin's chainable-but-non-aliasing style
// while staying exact.
func rAdd(a, b R) R { return new(big.Rat).Add(a, b) }
func rSub(a, b R) R { return new(big.Rat).Sub(a, b) }
func rMul(a, b R) R { return new(big.Rat).Mul(a, b) }
func rNeg(a R) R    { return new(big.Rat).Neg(a) }

// rDiv panics if b is zero: division by zero is always a contract
// violation in this kernel (callers must check for a zero coefficient or
// zero direction component before dividing).
func rDiv(a, b R) R {
	if b.Sign() == 0 {
		panic("geom: division by zero")
	}
	return new(big.Rat).Quo(a, b)
}

func rEq(a, b R) bool { return a.Cmp(b) == 0 }

// rMin, rMax order two rationals.
func rMin(a, b R) R {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

func rMax(a, b R) R {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// Add, Sub, Mul, Div, Neg are the exported forms of the arithmetic helpers
// above, for callers outside this package (e.g. the root vd package's
// cell-centre and wall-reconstruction code) that need to combine exact
// coordinates without reaching into unexported internals.
func Add(a, b R) R { return rAdd(a, b) }
func Sub(a, b R) R { return rSub(a, b) }
func Mul(a, b R) R { return rMul(a, b) }
func Div(a, b R) R { return rDiv(a, b) }
func Neg(a R) R    { return rNeg(a) }

// RFloat builds an exact rational approximating f, for the one place this
// kernel accepts floating point input: normalizing a direction vector for
// the clockwise angular sort in a cell's wall-polygon reconstruction. The
// sort key is float; the positions being sorted never are.
func RFloat(f float64) R {
	r := new(big.Rat)
	r.SetFloat64(f)
	return r
}

