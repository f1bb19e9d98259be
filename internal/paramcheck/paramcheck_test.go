// Copyright (c) 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paramcheck

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bw6-761/fr"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevaundray/curves/edoncp6782"
	"github.com/kevaundray/curves/models"
)

func resultsByName(r Report) map[string]Result {
	m := make(map[string]Result, len(r.Results))
	for _, res := range r.Results {
		m[res.Name] = res
	}
	return m
}

func requireOnlyFailure(t *testing.T, r Report, name string) {
	t.Helper()
	for _, res := range r.Results {
		if res.Name == name {
			assert.Error(t, res.Err, res.Name)
		} else {
			assert.NoError(t, res.Err, res.Name)
		}
	}
	require.Error(t, r.Err())
	require.Contains(t, r.Err().Error(), name)
}

func TestEdOnCP6782(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.Out = &buf
	l.Level = logrus.DebugLevel

	report := Run(edoncp6782.EdwardsParameters{}, WithSamples(64), WithLogger(logrus.NewEntry(l)))
	require.NoError(t, report.Err())
	require.Len(t, report.Results, len(checks))

	got := resultsByName(report)
	for _, name := range []string{
		GeneratorOnCurve, CofactorInverse, MulByA, MontgomeryCoefficients,
		MontgomeryGenerator, GeneratorOrder, CofactorClearing, ReferenceCurve,
	} {
		require.Contains(t, got, name)
		require.True(t, got[name].Passed(), name)
		require.Contains(t, buf.String(), name)
	}
}

// badGenerator moves the generator off the curve.
type badGenerator struct {
	edoncp6782.EdwardsParameters
}

func (badGenerator) AffineGenerator() (x, y fr.Element) {
	x, y = edoncp6782.EdwardsParameters{}.AffineGenerator()
	y.Double(&y)
	return x, y
}

// badMulByA drifts from a generic multiplication by a on a single input.
type badMulByA struct {
	edoncp6782.EdwardsParameters
}

func (badMulByA) MulByA(x fr.Element) fr.Element {
	if x.IsOne() {
		return x
	}
	return edoncp6782.EdwardsParameters{}.MulByA(x)
}

// badCofactorInverse declares 4⁻¹ instead of 8⁻¹.
type badCofactorInverse struct {
	edoncp6782.EdwardsParameters
}

func (badCofactorInverse) CofactorInverse() *big.Int {
	return new(big.Int).ModInverse(big.NewInt(4), edoncp6782.EdwardsParameters{}.ScalarField())
}

// badMontgomery pairs the curve with a Montgomery model whose B is off.
type badMontgomery struct {
	edoncp6782.EdwardsParameters
}

func (badMontgomery) Montgomery() models.Montgomery {
	return wrongB{}
}

type wrongB struct {
	edoncp6782.MontgomeryParameters
}

func (wrongB) CoeffB() fr.Element {
	B := edoncp6782.MontgomeryParameters{}.CoeffB()
	B.Double(&B)
	return B
}

// smallSubgroupGenerator uses G + (0, -1), which is on the curve but is not in
// the prime-order subgroup.
type smallSubgroupGenerator struct {
	edoncp6782.EdwardsParameters
}

func (smallSubgroupGenerator) AffineGenerator() (x, y fr.Element) {
	// (x, y) + (0, -1) = (-x, -y)
	x, y = edoncp6782.EdwardsParameters{}.AffineGenerator()
	x.Neg(&x)
	y.Neg(&y)
	return x, y
}

// otherD declares d = 79744, which gnark-crypto does not agree with.
type otherD struct {
	edoncp6782.EdwardsParameters
}

func (otherD) CoeffD() fr.Element {
	d := edoncp6782.EdwardsParameters{}.CoeffD()
	d.Add(&d, new(fr.Element).SetOne())
	return d
}

// noMulByA returns its argument, as if a were 1.
type noMulByA struct {
	edoncp6782.EdwardsParameters
}

func (noMulByA) MulByA(x fr.Element) fr.Element {
	return x
}

func TestDetectsBadGenerator(t *testing.T) {
	report := Run(badGenerator{})
	got := resultsByName(report)
	require.Error(t, got[GeneratorOnCurve].Err)
	require.Error(t, got[ReferenceCurve].Err)
	require.Error(t, report.Err())
}

func TestDetectsMulByADrift(t *testing.T) {
	requireOnlyFailure(t, Run(badMulByA{}, WithSamples(4)), MulByA)
}

func TestDetectsBadCofactorInverse(t *testing.T) {
	requireOnlyFailure(t, Run(badCofactorInverse{}, WithSamples(4)), CofactorInverse)
}

func TestDetectsBadMontgomeryModel(t *testing.T) {
	report := Run(badMontgomery{}, WithSamples(4))
	got := resultsByName(report)
	require.Error(t, got[MontgomeryCoefficients].Err)
	require.Error(t, got[MontgomeryGenerator].Err)
	require.NoError(t, got[GeneratorOnCurve].Err)
	require.NoError(t, got[GeneratorOrder].Err)
}

func TestDetectsGeneratorOutsideSubgroup(t *testing.T) {
	report := Run(smallSubgroupGenerator{}, WithSamples(4))
	got := resultsByName(report)
	require.NoError(t, got[GeneratorOnCurve].Err)
	require.Error(t, got[GeneratorOrder].Err)
	require.Error(t, got[ReferenceCurve].Err)
}

func TestReferenceCurveAgrees(t *testing.T) {
	c := &checker{params: edoncp6782.EdwardsParameters{}}
	require.NoError(t, c.referenceCurve())

	c.params = otherD{}
	err := c.referenceCurve()
	require.Error(t, err)
	require.Contains(t, err.Error(), "79743")
}

func TestGeneratorOnCurveIgnoresMulByA(t *testing.T) {
	report := Run(noMulByA{}, WithSamples(4))
	got := resultsByName(report)
	require.NoError(t, got[GeneratorOnCurve].Err)
	require.NoError(t, got[ReferenceCurve].Err)
	require.Error(t, got[MulByA].Err)
}
