// Copyright (c) 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package group

import "math/big"

// ScalarMult sets v = k * p, and returns v. k may be negative or larger than
// the order of p.
//
// The scalar multiplication is done in variable time.
func (v *Point) ScalarMult(k *big.Int, p *Point) *Point {
	c := checkSameCurve(p)

	// p and v may alias, so the base is copied before v is overwritten.
	base := new(Point).Set(p)
	if k.Sign() < 0 {
		base.Negate(base)
	}

	acc := c.Identity()
	for i := k.BitLen() - 1; i >= 0; i-- {
		acc.Double(acc)
		if k.Bit(i) == 1 {
			acc.Add(acc, base)
		}
	}
	return v.Set(acc)
}

// MultByCofactor sets v = h * p, where h is the cofactor of the curve, and
// returns v. The result is in the prime-order subgroup.
func (v *Point) MultByCofactor(p *Point) *Point {
	c := checkSameCurve(p)
	h := &c.cofactor

	// Powers of two, such as the common cofactors 4 and 8, only need doublings.
	if n := h.BitLen() - 1; n >= 0 && h.TrailingZeroBits() == uint(n) {
		v.Set(p)
		for i := 0; i < n; i++ {
			v.Double(v)
		}
		return v
	}
	return v.ScalarMult(h, p)
}

// MultByPrimeOrder sets v = r * p, where r is the order of the scalar field,
// and returns v. If and only if p is the identity or a point on the prime-order
// subgroup, v will be set to the identity. This can be used to check if p has a
// low-order component.
func (v *Point) MultByPrimeOrder(p *Point) *Point {
	c := checkSameCurve(p)
	return v.ScalarMult(&c.order, p)
}

// InPrimeOrderSubgroup reports whether r * v is the identity.
func (v *Point) InPrimeOrderSubgroup() bool {
	return new(Point).MultByPrimeOrder(v).IsIdentity()
}
