package geom

import "fmt"

// plane.go: infinite planes, defined by three non-collinear points, with
// the implicit equation Ax+By+Cz+D=0 cached at construction time. Adapted
// from physics/clipping.go's cPlane{normal, point}, generalized from a
// normal+point pair to the full coefficient form the predicates need.

// Plane is an infinite plane in general position: it is never parallel to
// the z-axis (C != 0), a precondition assumed by every operation that
// queries the plane along z. Some operations (height/project along y)
// additionally assume B != 0.
type Plane struct {
	P1, P2, P3 Point3D // three defining points, never collinear
	A, B, C, D R        // cached coefficients of Ax+By+Cz+D=0
}

// NewPlaneFromPoints builds a plane through three non-collinear points.
// Panics if the points are collinear (A==B==C==0): a degenerate plane has
// no equation to cache, and this is a contract violation by the caller,
// not a recoverable condition.
func NewPlaneFromPoints(p1, p2, p3 Point3D) *Plane {
	u := p2.Sub(p1)
	v := p3.Sub(p1)
	// normal = u x v
	a := rSub(rMul(u.Y, v.Z), rMul(u.Z, v.Y))
	b := rSub(rMul(u.Z, v.X), rMul(u.X, v.Z))
	c := rSub(rMul(u.X, v.Y), rMul(u.Y, v.X))
	if a.Sign() == 0 && b.Sign() == 0 && c.Sign() == 0 {
		panic(fmt.Errorf("geom: three collinear points do not define a plane: %v %v %v", p1, p2, p3))
	}
	// D = -(a*p1.x + b*p1.y + c*p1.z)
	d := rNeg(rAdd(rAdd(rMul(a, p1.X), rMul(b, p1.Y)), rMul(c, p1.Z)))
	return &Plane{P1: p1, P2: p2, P3: p3, A: a, B: b, C: c, D: d}
}

// Coefficients returns the plane's implicit equation Ax+By+Cz+D=0.
func (p *Plane) Coefficients() (a, b, c, d R) { return p.A, p.B, p.C, p.D }

// ZAt solves the plane equation for z at (x, y). Panics if C == 0: the
// plane is parallel to the z-axis, a precondition violation (spec.md §4.1,
// §9: "vertical planes are not supported").
func (p *Plane) ZAt(x, y R) R {
	if p.C.Sign() == 0 {
		panic(fmt.Errorf("geom: plane %s has zero z-coefficient, cannot solve for z", p))
	}
	// z = -(A*x + B*y + D) / C
	return rDiv(rNeg(rAdd(rAdd(rMul(p.A, x), rMul(p.B, y)), p.D)), p.C)
}

// YAt solves the plane equation for y at (x, z). Panics if B == 0.
func (p *Plane) YAt(x, z R) R {
	if p.B.Sign() == 0 {
		panic(fmt.Errorf("geom: plane %s has zero y-coefficient, cannot solve for y", p))
	}
	// y = -(A*x + C*z + D) / B
	return rDiv(rNeg(rAdd(rAdd(rMul(p.A, x), rMul(p.C, z)), p.D)), p.B)
}

func (p *Plane) String() string {
	return fmt.Sprintf("Plane{%s x + %s y + %s z + %s = 0}", p.A.RatString(), p.B.RatString(), p.C.RatString(), p.D.RatString())
}

// Kind implements Element for use in the closed Element sum type alongside
// Segment3D, Ray3D and Line3D (design note: "Re-express as a closed sum
// type Element = Segment | Ray | Line | Plane").
func (p *Plane) Kind() ElementKind { return PlaneElement }
