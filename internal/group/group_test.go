// Copyright (c) 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package group

import (
	"math/big"
	mathrand "math/rand"
	"reflect"
	"testing"
	"testing/quick"

	"github.com/consensys/gnark-crypto/ecc/bw6-761/fr"
	"github.com/stretchr/testify/require"

	"github.com/kevaundray/curves/edoncp6782"
	"github.com/kevaundray/curves/models"
)

var (
	// quickCheckConfig will make each quickcheck test run (4 * -quickchecks)
	// times. The default value of -quickchecks is 100. Scalar multiplications
	// here are slow, so the scale is kept low.
	quickCheckConfig = &quick.Config{MaxCountScale: 1 << 2}

	curve = NewCurve(edoncp6782.EdwardsParameters{})
	G     = curve.Generator()
	I     = curve.Identity()
)

// scalarArg is a random integer of up to 448 bits, so that it exceeds r.
type scalarArg struct {
	k *big.Int
}

func (scalarArg) Generate(rand *mathrand.Rand, size int) reflect.Value {
	var buf [56]byte
	rand.Read(buf[:])
	k := new(big.Int).SetBytes(buf[:rand.Intn(len(buf))+1])
	if rand.Intn(4) == 0 {
		k.Neg(k)
	}
	return reflect.ValueOf(scalarArg{k})
}

func mustElement(t *testing.T, s string) fr.Element {
	t.Helper()
	var e fr.Element
	_, err := e.SetString(s)
	require.NoError(t, err)
	return e
}

func checkOnCurve(t *testing.T, points ...*Point) {
	t.Helper()
	for i, p := range points {
		if !p.IsOnCurve() {
			t.Errorf("point %d is not on the curve", i)
		}
	}
}

// twoTorsion returns (0, -1), the point of order two.
func twoTorsion(t *testing.T) *Point {
	t.Helper()
	var x, y fr.Element
	y.SetOne()
	y.Neg(&y)
	p, err := curve.NewPoint(&x, &y)
	require.NoError(t, err)
	return p
}

// fourTorsion returns (√(1/a), 0), a point of order four.
func fourTorsion(t *testing.T) *Point {
	t.Helper()
	a := curve.Parameters().CoeffA()
	var x, y fr.Element
	x.Inverse(&a)
	require.NotNil(t, x.Sqrt(&x), "1/a is not a square")
	p, err := curve.NewPoint(&x, &y)
	require.NoError(t, err)
	return p
}

// randomPoint returns a uniformly random point of the full group.
func randomPoint(t *testing.T) *Point {
	t.Helper()
	params := curve.Parameters()
	a, d := params.CoeffA(), params.CoeffD()
	for {
		// x² = (1 - y²) / (a - d·y²)
		var y, yy, num, den, x fr.Element
		_, err := y.SetRandom()
		require.NoError(t, err)
		yy.Square(&y)
		num.SetOne()
		num.Sub(&num, &yy)
		den.Mul(&d, &yy)
		den.Sub(&a, &den)
		den.Inverse(&den)
		x.Mul(&num, &den)
		if x.Sqrt(&x) == nil {
			continue
		}
		p, err := curve.NewPoint(&x, &y)
		require.NoError(t, err)
		return p
	}
}

func TestGeneratorOnCurve(t *testing.T) {
	checkOnCurve(t, G, I)
	require.False(t, G.IsIdentity())
	require.True(t, I.IsIdentity())

	x, y := G.Affine()
	gx, gy := edoncp6782.EdwardsParameters{}.AffineGenerator()
	require.True(t, x.Equal(&gx))
	require.True(t, y.Equal(&gy))
}

func TestNewPointRejectsOffCurve(t *testing.T) {
	x, y := G.Affine()
	y.Add(&y, &y)
	p, err := curve.NewPoint(&x, &y)
	require.Error(t, err)
	require.Nil(t, p)
}

func TestAddSubNegOnGenerator(t *testing.T) {
	Gneg := new(Point).Negate(G)
	checkLhs, checkRhs := new(Point), new(Point)

	checkLhs.Add(G, G)
	checkRhs.Double(G)
	require.True(t, checkLhs.Equal(checkRhs), "G + G != [2]G")
	checkOnCurve(t, checkLhs, checkRhs)

	checkLhs.Subtract(G, G)
	checkRhs.Add(G, Gneg)
	require.True(t, checkLhs.Equal(checkRhs), "G - G != G + (-G)")
	require.True(t, checkLhs.IsIdentity(), "G - G != 0")
	require.True(t, checkRhs.IsIdentity(), "G + (-G) != 0")

	checkLhs.Add(G, I)
	require.True(t, checkLhs.Equal(G), "G + 0 != G")
	checkLhs.Double(I)
	require.True(t, checkLhs.IsIdentity(), "[2]0 != 0")
}

func TestKnownMultiples(t *testing.T) {
	tests := []struct {
		k    int64
		x, y string
	}{
		{
			k: 2,
			x: "81921320986256200192250655946126137537498231837337444210793869526332810804381994474916842612590568141583789017946",
			y: "37164343736927563942828136616541195121924491824245198518123300726655067155221636983031738283085815513382938781534",
		},
		{
			k: 5,
			x: "237409702498946303851939108108878742514744659804169117956961564205290510060050345535658324730720543856236822036299",
			y: "256282350724670549492987030899972477287304009991681612503810920440636612649006391287272608950880771455664871587830",
		},
	}
	for _, tt := range tests {
		var p Point
		p.ScalarMult(big.NewInt(tt.k), G)
		checkOnCurve(t, &p)

		x, y := p.Affine()
		wantX, wantY := mustElement(t, tt.x), mustElement(t, tt.y)
		require.True(t, x.Equal(&wantX), "[%d]G: x = %s", tt.k, x.String())
		require.True(t, y.Equal(&wantY), "[%d]G: y = %s", tt.k, y.String())
	}
}

func TestScalarMultSmallScalars(t *testing.T) {
	var p Point
	p.ScalarMult(big.NewInt(0), G)
	require.True(t, p.IsIdentity(), "0*G != 0")

	p.ScalarMult(big.NewInt(1), G)
	require.True(t, p.Equal(G), "1*G != G")

	p.ScalarMult(big.NewInt(-1), G)
	require.True(t, p.Equal(new(Point).Negate(G)), "-1*G != -G")

	// Aliasing the receiver and the argument.
	p.Set(G)
	p.ScalarMult(big.NewInt(3), &p)
	want := new(Point).Add(G, G)
	want.Add(want, G)
	require.True(t, p.Equal(want), "3*G != G+G+G")
}

func TestScalarMulDistributesOverAdd(t *testing.T) {
	scalarMulDistributesOverAdd := func(x, y scalarArg) bool {
		z := new(big.Int).Add(x.k, y.k)
		var p, q, r, check Point
		p.ScalarMult(x.k, G)
		q.ScalarMult(y.k, G)
		r.ScalarMult(z, G)
		check.Add(&p, &q)
		checkOnCurve(t, &p, &q, &r, &check)
		return check.Equal(&r)
	}

	if err := quick.Check(scalarMulDistributesOverAdd, quickCheckConfig); err != nil {
		t.Error(err)
	}
}

func TestAddIsAssociativeAndCommutative(t *testing.T) {
	p, q, s := randomPoint(t), randomPoint(t), randomPoint(t)

	lhs := new(Point).Add(p, q)
	lhs.Add(lhs, s)
	rhs := new(Point).Add(q, s)
	rhs.Add(p, rhs)
	require.True(t, lhs.Equal(rhs), "(p+q)+s != p+(q+s)")

	require.True(t, new(Point).Add(p, q).Equal(new(Point).Add(q, p)), "p+q != q+p")
	checkOnCurve(t, lhs, rhs)
}

func TestGeneratorOrder(t *testing.T) {
	var p Point
	p.MultByPrimeOrder(G)
	require.True(t, p.IsIdentity(), "r*G != 0")
	require.True(t, G.InPrimeOrderSubgroup())

	p.MultByCofactor(G)
	require.False(t, p.IsIdentity(), "h*G == 0")
	checkOnCurve(t, &p)

	p.ScalarMult(big.NewInt(8), G)
	require.True(t, p.Equal(new(Point).MultByCofactor(G)))
}

func TestFullGroupOrder(t *testing.T) {
	params := curve.Parameters()
	n := new(big.Int).Mul(params.ScalarField(), models.Cofactor(params))
	for i := 0; i < 4; i++ {
		p := randomPoint(t)
		require.True(t, new(Point).ScalarMult(n, p).IsIdentity(), "(h*r)*P != 0")
	}
}

func TestTorsionPoints(t *testing.T) {
	T2 := twoTorsion(t)
	require.True(t, new(Point).Double(T2).IsIdentity(), "T2 does not have order 2")
	require.False(t, T2.InPrimeOrderSubgroup())

	T4 := fourTorsion(t)
	twice := new(Point).Double(T4)
	require.False(t, twice.IsIdentity())
	require.True(t, twice.Equal(T2), "[2]T4 != T2")
	require.True(t, new(Point).MultByCofactor(T4).IsIdentity(), "h*T4 != 0")
}

func TestCofactorClearing(t *testing.T) {
	points := []*Point{
		new(Point).Add(G, twoTorsion(t)),
		new(Point).Add(G, fourTorsion(t)),
		randomPoint(t),
		randomPoint(t),
	}
	h := models.Cofactor(curve.Parameters())
	for i, p := range points {
		once := new(Point).MultByCofactor(p)
		twice := new(Point).MultByCofactor(once)
		require.True(t, once.InPrimeOrderSubgroup(), "point %d: clear(P) not in subgroup", i)
		require.True(t, twice.InPrimeOrderSubgroup(), "point %d: clear(clear(P)) not in subgroup", i)
		require.True(t, twice.Equal(new(Point).ScalarMult(h, once)),
			"point %d: clear(clear(P)) != h*clear(P)", i)
		checkOnCurve(t, once, twice)
	}
	require.False(t, points[0].InPrimeOrderSubgroup())
}

// genericA is a curve whose multiplication by a goes through a generic field
// multiplication.
type genericA struct {
	models.TwistedEdwards
}

func (g genericA) MulByA(x fr.Element) fr.Element {
	a := g.CoeffA()
	x.Mul(&x, &a)
	return x
}

func TestMulByAIsDropIn(t *testing.T) {
	generic := NewCurve(genericA{edoncp6782.EdwardsParameters{}})
	gp, gq := generic.Generator(), generic.Generator()

	var p, q Point
	p.ScalarMult(big.NewInt(123456789), G)
	q.ScalarMult(big.NewInt(123456789), gq)
	gp.Double(gp)

	X1, Y1, Z1, T1 := p.ExtendedCoordinates()
	X2, Y2, Z2, T2 := q.ExtendedCoordinates()
	require.Equal(t, X1, X2)
	require.Equal(t, Y1, Y2)
	require.Equal(t, Z1, Z2)
	require.Equal(t, T1, T2)

	X1, _, _, _ = new(Point).Double(G).ExtendedCoordinates()
	X2, _, _, _ = gp.ExtendedCoordinates()
	require.Equal(t, X1, X2)
}

func TestMontgomeryImage(t *testing.T) {
	mont := curve.Parameters().Montgomery()
	for _, p := range []*Point{G, new(Point).Double(G), randomPoint(t)} {
		u, v, err := p.Montgomery()
		require.NoError(t, err)
		require.True(t, models.IsOnMontgomery(mont, &u, &v))

		x, y, err := models.FromMontgomery(&u, &v)
		require.NoError(t, err)
		back, err := curve.NewPoint(&x, &y)
		require.NoError(t, err)
		require.True(t, back.Equal(p))
	}

	_, _, err := I.Montgomery()
	require.ErrorIs(t, err, models.ErrExceptionalPoint)
	_, _, err = twoTorsion(t).Montgomery()
	require.ErrorIs(t, err, models.ErrExceptionalPoint)
}

func TestMisuse(t *testing.T) {
	other := NewCurve(genericA{edoncp6782.EdwardsParameters{}})
	require.Panics(t, func() { new(Point).Add(G, other.Generator()) })
	require.Panics(t, func() { new(Point).Double(new(Point)) })
	require.Panics(t, func() { new(Point).IsIdentity() })
}
