// Copyright (c) 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package models describes the curve-specific data that a generic twisted
// Edwards or Montgomery arithmetic engine needs in order to specialize its
// formulas for one curve.
//
// Curves described here are defined over the scalar field of BW6-761, which
// is also the base field of BLS12-377, so that coordinates are
// github.com/consensys/gnark-crypto/ecc/bw6-761/fr elements. Scalars differ
// from curve to curve and are exchanged as canonical *big.Int values.
//
// Each model is a separate capability. A curve that supports both the twisted
// Edwards and the Montgomery model implements TwistedEdwards and Montgomery on
// two distinct types, which refer to each other through the Montgomery and
// TwistedEdwards methods. The coefficients of the two models are related by
// the birational map implemented in this package by MontgomeryCoefficients and
// TwistedEdwardsCoefficients.
package models

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bw6-761/fr"
)

// Parameters is the data every curve model shares.
type Parameters interface {
	// ScalarField returns r, the prime order of the subgroup of interest.
	ScalarField() *big.Int

	// Cofactor returns h as little-endian 64-bit limbs. The full group of
	// points has order h·r.
	Cofactor() []uint64

	// CofactorInverse returns h⁻¹ mod r in [0, r).
	CofactorInverse() *big.Int
}

// TwistedEdwards is implemented by curves that have a twisted Edwards model
//
//	a·x² + y² = 1 + d·x²·y²
type TwistedEdwards interface {
	Parameters

	CoeffA() fr.Element
	CoeffD() fr.Element

	// AffineGenerator returns the affine coordinates of the generator.
	AffineGenerator() (x, y fr.Element)

	// MulByA returns a·x. It must agree with a generic multiplication by
	// CoeffA for every x, and it is used in its place by the group law.
	MulByA(x fr.Element) fr.Element

	// Montgomery returns the birationally equivalent Montgomery model.
	Montgomery() Montgomery
}

// Montgomery is implemented by curves that have a Montgomery model
//
//	B·y² = x³ + A·x² + x
type Montgomery interface {
	Parameters

	CoeffA() fr.Element
	CoeffB() fr.Element

	// TwistedEdwards returns the birationally equivalent twisted Edwards
	// model.
	TwistedEdwards() TwistedEdwards
}

// Cofactor returns the cofactor of p as an integer.
func Cofactor(p Parameters) *big.Int {
	limbs := p.Cofactor()
	h := new(big.Int)
	for i := len(limbs) - 1; i >= 0; i-- {
		h.Lsh(h, 64)
		h.Or(h, new(big.Int).SetUint64(limbs[i]))
	}
	return h
}

// IsOnTwistedEdwards reports whether (x, y) satisfies the curve equation of p.
func IsOnTwistedEdwards(p TwistedEdwards, x, y *fr.Element) bool {
	var xx, yy, lhs, rhs fr.Element
	xx.Square(x)
	yy.Square(y)

	// a·x² + y²
	lhs = p.MulByA(xx)
	lhs.Add(&lhs, &yy)

	// 1 + d·x²·y²
	d := p.CoeffD()
	rhs.Mul(&xx, &yy)
	rhs.Mul(&rhs, &d)
	rhs.Add(&rhs, &feOne)

	return lhs.Equal(&rhs)
}

// IsOnMontgomery reports whether (u, v) satisfies the curve equation of p.
func IsOnMontgomery(p Montgomery, u, v *fr.Element) bool {
	A, B := p.CoeffA(), p.CoeffB()
	var lhs, rhs, uu fr.Element

	// B·v²
	lhs.Square(v)
	lhs.Mul(&lhs, &B)

	// u³ + A·u² + u = u·(u² + A·u + 1)
	uu.Square(u)
	rhs.Mul(&A, u)
	rhs.Add(&rhs, &uu)
	rhs.Add(&rhs, &feOne)
	rhs.Mul(&rhs, u)

	return lhs.Equal(&rhs)
}
