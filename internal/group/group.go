// Copyright (c) 2017 George Tankersley. All rights reserved.
// Copyright (c) 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package group implements the group law of a twisted Edwards curve described
// by a models.TwistedEdwards.
//
// It is a straightforward, variable-time implementation meant for checking
// curve parameters, not for handling secrets.
package group

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bw6-761/fr"
	"github.com/pkg/errors"

	"github.com/kevaundray/curves/models"
)

// Curve is a twisted Edwards curve. It is read-only after NewCurve returns.
type Curve struct {
	params   models.TwistedEdwards
	d        fr.Element
	order    big.Int
	cofactor big.Int
}

// NewCurve returns the Curve described by p.
func NewCurve(p models.TwistedEdwards) *Curve {
	c := &Curve{params: p, d: p.CoeffD()}
	c.order.Set(p.ScalarField())
	c.cofactor.Set(models.Cofactor(p))
	return c
}

// Parameters returns the parameters c was built from.
func (c *Curve) Parameters() models.TwistedEdwards {
	return c.params
}

// From EFD https://hyperelliptic.org/EFD/g1p/auto-twisted-extended.html
// An elliptic curve in twisted Edwards form has parameters a, d and coordinates
// x, y satisfying the following equations:
//
//	a * x^2 + y^2 = 1 + d * x^2 * y^2
//
// Extended coordinates represent x, y as (X, Y, Z, T) satisfying the following
// equations:
//
//	x = X / Z
//	y = Y / Z
//	x * y = T / Z
//
// This representation was introduced in the HisilWongCarterDawson paper "Twisted
// Edwards curves revisited" (Asiacrypt 2008).
type Point struct {
	curve      *Curve
	x, y, z, t fr.Element

	// Make the type not comparable, since equal points can be represented by
	// different Go values.
	_ [0]func()
}

func checkInitialized(points ...*Point) {
	for _, p := range points {
		if p.curve == nil {
			panic("group: use of uninitialized Point")
		}
	}
}

func checkSameCurve(points ...*Point) *Curve {
	checkInitialized(points...)
	c := points[0].curve
	for _, p := range points[1:] {
		if p.curve != c {
			panic("group: points belong to different curves")
		}
	}
	return c
}

// Identity returns a new Point set to the identity (0, 1).
func (c *Curve) Identity() *Point {
	v := &Point{curve: c}
	v.y.SetOne()
	v.z.SetOne()
	return v
}

// Generator returns a new Point set to the generator of the curve.
func (c *Curve) Generator() *Point {
	x, y := c.params.AffineGenerator()
	return c.fromAffine(&x, &y)
}

// NewPoint returns a new Point set to the affine point (x, y). If (x, y) is not
// on the curve, NewPoint returns nil and an error.
func (c *Curve) NewPoint(x, y *fr.Element) (*Point, error) {
	if !models.IsOnTwistedEdwards(c.params, x, y) {
		return nil, errors.Errorf("group: (%s, %s) is not on the curve", x, y)
	}
	return c.fromAffine(x, y), nil
}

// Converts (x,y) to (X:Y:T:Z) extended coordinates, as described in "Twisted
// Edwards Curves Revisited", Hisil-Wong-Carter-Dawson 2008, Section 3.1.
func (c *Curve) fromAffine(x, y *fr.Element) *Point {
	v := &Point{curve: c}
	v.x.Set(x)
	v.y.Set(y)
	v.z.SetOne()
	v.t.Mul(x, y)
	return v
}

// Curve returns the curve v belongs to.
func (v *Point) Curve() *Curve {
	return v.curve
}

// Set sets v = u, and returns v.
func (v *Point) Set(u *Point) *Point {
	checkInitialized(u)
	v.curve = u.curve
	v.x, v.y, v.z, v.t = u.x, u.y, u.z, u.t
	return v
}

// Affine returns the affine coordinates of v.
func (v *Point) Affine() (x, y fr.Element) {
	checkInitialized(v)
	var zinv fr.Element
	zinv.Inverse(&v.z)
	x.Mul(&v.x, &zinv)
	y.Mul(&v.y, &zinv)
	return x, y
}

// ExtendedCoordinates returns v in extended coordinates (X:Y:Z:T) where
// x = X/Z, y = Y/Z, and xy = T/Z as in https://eprint.iacr.org/2008/522.
func (v *Point) ExtendedCoordinates() (X, Y, Z, T fr.Element) {
	checkInitialized(v)
	return v.x, v.y, v.z, v.t
}

// Montgomery returns the image of v on the birationally equivalent Montgomery
// curve. The identity and the point (0, -1) have no affine image, and
// Montgomery returns models.ErrExceptionalPoint for them.
func (v *Point) Montgomery() (u, w fr.Element, err error) {
	x, y := v.Affine()
	return models.ToMontgomery(&x, &y)
}

// This is the unified addition formula "add-2008-hwcd", which is complete when
// a is a square and d is not.
// https://hyperelliptic.org/EFD/g1p/auto-twisted-extended.html#addition-add-2008-hwcd
//
//	A ← X1*X2
//	B ← Y1*Y2
//	C ← T1*d*T2
//	D ← Z1*Z2
//	E ← (X1+Y1)*(X2+Y2)-A-B
//	F ← D-C
//	G ← D+C
//	H ← B-a*A
//	X3 ← E*F
//	Y3 ← G*H
//	T3 ← E*H
//	Z3 ← F*G

// Add sets v = p + q, and returns v.
func (v *Point) Add(p, q *Point) *Point {
	c := checkSameCurve(p, q)

	var A, B, C, D, E, F, G, H, tmp fr.Element
	A.Mul(&p.x, &q.x)
	B.Mul(&p.y, &q.y)
	C.Mul(&p.t, &q.t)
	C.Mul(&C, &c.d)
	D.Mul(&p.z, &q.z)

	E.Add(&p.x, &p.y)
	tmp.Add(&q.x, &q.y)
	E.Mul(&E, &tmp)
	E.Sub(&E, &A)
	E.Sub(&E, &B)

	F.Sub(&D, &C)
	G.Add(&D, &C)
	tmp = c.params.MulByA(A)
	H.Sub(&B, &tmp)

	v.curve = c
	v.x.Mul(&E, &F)
	v.y.Mul(&G, &H)
	v.t.Mul(&E, &H)
	v.z.Mul(&F, &G)
	return v
}

// Subtract sets v = p - q, and returns v.
func (v *Point) Subtract(p, q *Point) *Point {
	checkSameCurve(p, q)
	negQ := new(Point).Negate(q)
	return v.Add(p, negQ)
}

// This implements the explicit formulas from HWCD Section 3.3, "Dedicated
// Doubling in [extended coordinates]".
//
// Explicit formula is as follows. Cost is 4M + 4S + 1D.
//
//	A ← X1^2
//	B ← Y1^2
//	C ← 2*Z1^2
//	D ← a*A
//	E ← (X1+Y1)^2 − A − B
//	G ← D+B
//	F ← G−C
//	H ← D−B
//	X3 ← E*F
//	Y3 ← G*H
//	T3 ← E*H
//	Z3 ← F*G

// Double sets v = 2 * p, and returns v.
func (v *Point) Double(p *Point) *Point {
	c := checkSameCurve(p)

	var A, B, C, D, E, F, G, H fr.Element

	// A ← X1^2, B ← Y1^2
	A.Square(&p.x)
	B.Square(&p.y)

	// C ← 2*Z1^2
	C.Square(&p.z)
	C.Double(&C)

	// D ← a*A
	D = c.params.MulByA(A)

	// E ← (X1+Y1)^2 − A − B
	E.Add(&p.x, &p.y)
	E.Square(&E)
	E.Sub(&E, &A)
	E.Sub(&E, &B)

	G.Add(&D, &B) // G ← D+B
	F.Sub(&G, &C) // F ← G−C
	H.Sub(&D, &B) // H ← D−B

	v.curve = c
	v.x.Mul(&E, &F) // X3 ← E*F
	v.y.Mul(&G, &H) // Y3 ← G*H
	v.t.Mul(&E, &H) // T3 ← E*H
	v.z.Mul(&F, &G) // Z3 ← F*G
	return v
}

// Negate sets v = -p, and returns v.
func (v *Point) Negate(p *Point) *Point {
	c := checkSameCurve(p)
	v.curve = c
	v.x.Neg(&p.x)
	v.y.Set(&p.y)
	v.z.Set(&p.z)
	v.t.Neg(&p.t)
	return v
}

// Equal reports whether v is equivalent to u.
func (v *Point) Equal(u *Point) bool {
	checkSameCurve(v, u)
	var t1, t2, t3, t4 fr.Element
	t1.Mul(&v.x, &u.z)
	t2.Mul(&u.x, &v.z)
	t3.Mul(&v.y, &u.z)
	t4.Mul(&u.y, &v.z)
	return t1.Equal(&t2) && t3.Equal(&t4)
}

// IsIdentity reports whether v is the identity.
func (v *Point) IsIdentity() bool {
	checkInitialized(v)
	return v.x.IsZero() && v.y.Equal(&v.z)
}

// IsOnCurve reports whether v satisfies the curve equation and the extended
// coordinates invariant XY = TZ.
func (v *Point) IsOnCurve() bool {
	checkInitialized(v)
	if v.z.IsZero() {
		return false
	}
	x, y := v.Affine()
	if !models.IsOnTwistedEdwards(v.curve.params, &x, &y) {
		return false
	}
	var lhs, rhs fr.Element
	lhs.Mul(&v.x, &v.y)
	rhs.Mul(&v.t, &v.z)
	return lhs.Equal(&rhs)
}
