// Copyright (c) 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package models

import (
	"github.com/consensys/gnark-crypto/ecc/bw6-761/fr"
	"github.com/pkg/errors"
)

var (
	// ErrSingularCurve is returned when coefficients do not describe a
	// non-singular curve, so that no birational map exists.
	ErrSingularCurve = errors.New("models: singular curve coefficients")

	// ErrExceptionalPoint is returned for points where the birational map is
	// not defined, such as the identity and the points of order two.
	ErrExceptionalPoint = errors.New("models: point is exceptional for the birational map")
)

var feOne, feTwo, feFour fr.Element

func init() {
	feOne.SetOne()
	feTwo.SetUint64(2)
	feFour.SetUint64(4)
}

// MontgomeryCoefficients returns the coefficients of the Montgomery curve
//
//	B·v² = u³ + A·u² + u
//
// which is birationally equivalent to a·x² + y² = 1 + d·x²·y², where
//
//	A = 2·(a + d) / (a - d)
//	B = 4 / (a - d)
//
// If a = 0, d = 0 or a = d, the twisted Edwards curve is singular and
// MontgomeryCoefficients returns ErrSingularCurve.
func MontgomeryCoefficients(a, d *fr.Element) (A, B fr.Element, err error) {
	if a.IsZero() || d.IsZero() {
		return A, B, errors.Wrap(ErrSingularCurve, "a·d = 0")
	}
	var diff, inv fr.Element
	diff.Sub(a, d)
	if diff.IsZero() {
		return A, B, errors.Wrap(ErrSingularCurve, "a = d")
	}
	inv.Inverse(&diff)

	A.Add(a, d)
	A.Mul(&A, &feTwo)
	A.Mul(&A, &inv)

	B.Mul(&feFour, &inv)
	return A, B, nil
}

// TwistedEdwardsCoefficients is the inverse of MontgomeryCoefficients:
//
//	a = (A + 2) / B
//	d = (A - 2) / B
//
// If B = 0 or A = ±2, TwistedEdwardsCoefficients returns ErrSingularCurve.
func TwistedEdwardsCoefficients(A, B *fr.Element) (a, d fr.Element, err error) {
	if B.IsZero() {
		return a, d, errors.Wrap(ErrSingularCurve, "B = 0")
	}
	var inv fr.Element
	inv.Inverse(B)

	a.Add(A, &feTwo)
	d.Sub(A, &feTwo)
	if a.IsZero() || d.IsZero() {
		return fr.Element{}, fr.Element{}, errors.Wrap(ErrSingularCurve, "A = ±2")
	}
	a.Mul(&a, &inv)
	d.Mul(&d, &inv)
	return a, d, nil
}

// ToMontgomery maps the twisted Edwards point (x, y) to the Montgomery point
//
//	u = (1 + y) / (1 - y)
//	v = u / x
//
// The map is undefined for y = 1 or x = 0, which are the identity and the
// point (0, -1) of order two, and ToMontgomery returns ErrExceptionalPoint.
func ToMontgomery(x, y *fr.Element) (u, v fr.Element, err error) {
	var den, inv fr.Element
	den.Sub(&feOne, y)
	if den.IsZero() || x.IsZero() {
		return u, v, ErrExceptionalPoint
	}

	inv.Inverse(&den)
	u.Add(&feOne, y)
	u.Mul(&u, &inv)

	inv.Inverse(x)
	v.Mul(&u, &inv)
	return u, v, nil
}

// FromMontgomery maps the Montgomery point (u, v) to the twisted Edwards point
//
//	x = u / v
//	y = (u - 1) / (u + 1)
//
// The map is undefined for v = 0 or u = -1, and FromMontgomery returns
// ErrExceptionalPoint.
func FromMontgomery(u, v *fr.Element) (x, y fr.Element, err error) {
	var den, inv fr.Element
	den.Add(u, &feOne)
	if den.IsZero() || v.IsZero() {
		return x, y, ErrExceptionalPoint
	}

	inv.Inverse(v)
	x.Mul(u, &inv)

	inv.Inverse(&den)
	y.Sub(u, &feOne)
	y.Mul(&y, &inv)
	return x, y, nil
}
