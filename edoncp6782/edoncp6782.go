// Copyright (c) 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package edoncp6782 defines the parameters of ed_on_cp6_782, the twisted
// Edwards curve
//
//	-x² + y² = 1 + 79743·x²·y²
//
// over the scalar field of CP6-782. That field is also the scalar field of
// BW6-761 and the base field of BLS12-377, so the curve can be used inside
// proofs over either outer curve. The curve is birationally equivalent to the
// Montgomery curve
//
//	B·y² = x³ + A·x² + x
//
// with A and B as returned by MontgomeryParameters.
//
// The group of points has order 8·r, where r is the 374-bit prime returned by
// scalar.Modulus.
//
// This package only describes the curve. Coordinates are
// github.com/consensys/gnark-crypto/ecc/bw6-761/fr elements, and the group law
// belongs to any engine that accepts a models.TwistedEdwards.
package edoncp6782

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bw6-761/fr"

	"github.com/kevaundray/curves/edoncp6782/scalar"
	"github.com/kevaundray/curves/models"
)

const cofactor = 8

const (
	// cofactorInverseString is 8⁻¹ mod r.
	cofactorInverseString = "12124894969357926281749346891948134384518445910386624712788431705725441736421489799867521238554906438478484045560"

	coeffDString = "79743"

	montgomeryAString = "90083623084271891037116870487743067984710080209539149685414147055329063590616489392386084989619674926965747987765"
	montgomeryBString = "168580802928697202973535863207150465551683432545375510854470115611391404757724333382582803149953685197474573470410"

	generatorXString = "174701772324485506941690903512423551998294352968833659960042362742684869862495746426366187462669992073196420267127"
	generatorYString = "208487200052258845495340374451540775445408439654930191324011635560142523886549663106522691296420655144190624954833"
)

var (
	coeffA, coeffD         fr.Element
	montgomeryA            fr.Element
	montgomeryB            fr.Element
	generatorX, generatorY fr.Element
	cofactorInverse        scalar.Element
)

func init() {
	// a = -1
	coeffA.SetOne()
	coeffA.Neg(&coeffA)

	mustSetString(&coeffD, coeffDString)
	mustSetString(&montgomeryA, montgomeryAString)
	mustSetString(&montgomeryB, montgomeryBString)
	mustSetString(&generatorX, generatorXString)
	mustSetString(&generatorY, generatorYString)

	if _, err := cofactorInverse.SetString(cofactorInverseString); err != nil {
		panic("edoncp6782: invalid cofactor inverse: " + err.Error())
	}
	if prod := cofactorTimes(&cofactorInverse); !prod.IsOne() {
		panic("edoncp6782: h·h⁻¹ = " + prod.String() + " mod r")
	}
}

// cofactorTimes returns h·k mod r.
func cofactorTimes(k *scalar.Element) scalar.Element {
	var h, prod scalar.Element
	h.SetLimbs([]uint64{cofactor})
	prod.Multiply(&h, k)
	return prod
}

func mustSetString(z *fr.Element, s string) {
	if _, err := z.SetString(s); err != nil {
		panic("edoncp6782: invalid constant " + s + ": " + err.Error())
	}
}

// CofactorInverse returns 8⁻¹ mod r.
func CofactorInverse() scalar.Element {
	return cofactorInverse
}

var (
	_ models.TwistedEdwards = EdwardsParameters{}
	_ models.Montgomery     = MontgomeryParameters{}
)

// modelParameters implements models.Parameters for both models.
type modelParameters struct{}

func (modelParameters) ScalarField() *big.Int {
	return scalar.Modulus()
}

func (modelParameters) Cofactor() []uint64 {
	return []uint64{cofactor}
}

func (modelParameters) CofactorInverse() *big.Int {
	return cofactorInverse.BigInt(new(big.Int))
}

// EdwardsParameters is the twisted Edwards model of ed_on_cp6_782.
type EdwardsParameters struct {
	modelParameters
}

// CoeffA returns a = -1.
func (EdwardsParameters) CoeffA() fr.Element {
	return coeffA
}

// CoeffD returns d = 79743.
func (EdwardsParameters) CoeffD() fr.Element {
	return coeffD
}

// AffineGenerator returns the coordinates of the generator of the
// prime-order subgroup.
func (EdwardsParameters) AffineGenerator() (x, y fr.Element) {
	return generatorX, generatorY
}

// MulByA returns a·x. Multiplication by a is just negation.
func (EdwardsParameters) MulByA(x fr.Element) fr.Element {
	x.Neg(&x)
	return x
}

// Montgomery returns the Montgomery model of ed_on_cp6_782.
func (EdwardsParameters) Montgomery() models.Montgomery {
	return MontgomeryParameters{}
}

// MontgomeryParameters is the Montgomery model of ed_on_cp6_782.
type MontgomeryParameters struct {
	modelParameters
}

// CoeffA returns A = 2·(a + d) / (a - d).
func (MontgomeryParameters) CoeffA() fr.Element {
	return montgomeryA
}

// CoeffB returns B = 4 / (a - d).
func (MontgomeryParameters) CoeffB() fr.Element {
	return montgomeryB
}

// TwistedEdwards returns the twisted Edwards model of ed_on_cp6_782.
func (MontgomeryParameters) TwistedEdwards() models.TwistedEdwards {
	return EdwardsParameters{}
}
