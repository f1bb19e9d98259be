// Copyright (c) 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scalar implements arithmetic modulo the prime order
//
//	r = 32333053251621136751331591711861691692049189094364332567435817881934511297123972799646723302813083835942624121493
//
// of the prime-order subgroup of ed_on_cp6_782.
//
// Operations are not constant time.
package scalar

import (
	"math/big"

	"github.com/pkg/errors"
)

// Limbs is the number of 64-bit words of an Element.
const Limbs = 6

const modulusString = "32333053251621136751331591711861691692049189094364332567435817881934511297123972799646723302813083835942624121493"

var modulus = func() *big.Int {
	r, ok := new(big.Int).SetString(modulusString, 10)
	if !ok {
		panic("scalar: invalid modulus")
	}
	return r
}()

// Modulus returns r.
func Modulus() *big.Int {
	return new(big.Int).Set(modulus)
}

// Element is an integer modulo r. The zero value is a valid zero element.
//
// This type works similarly to math/big.Int, and all arguments and receivers
// are allowed to alias. Unlike math/big.Int, Element values can be copied and
// compared with ==.
type Element struct {
	// l holds the canonical value in [0, r) as little-endian limbs.
	l [Limbs]uint64
}

func (e *Element) toBig(res *big.Int) *big.Int {
	var w big.Int
	res.SetUint64(0)
	for i := Limbs - 1; i >= 0; i-- {
		res.Lsh(res, 64)
		res.Or(res, w.SetUint64(e.l[i]))
	}
	return res
}

// fromBig sets e = x, which must already be in [0, r).
func (e *Element) fromBig(x *big.Int) *Element {
	var w big.Int
	w.Set(x)
	for i := 0; i < Limbs; i++ {
		e.l[i] = new(big.Int).And(&w, mask64).Uint64()
		w.Rsh(&w, 64)
	}
	return e
}

var mask64 = new(big.Int).SetUint64(^uint64(0))

// SetLimbs sets e to the little-endian 64-bit limbs x, reduced modulo r, and
// returns e.
func (e *Element) SetLimbs(x []uint64) *Element {
	var v, w big.Int
	for i := len(x) - 1; i >= 0; i-- {
		v.Lsh(&v, 64)
		v.Or(&v, w.SetUint64(x[i]))
	}
	return e.fromBig(v.Mod(&v, modulus))
}

// SetString sets e to the decimal value s, which must be in [0, r), and
// returns e. If s is not a canonical decimal encoding, SetString returns nil
// and an error, and the receiver is unchanged.
func (e *Element) SetString(s string) (*Element, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, errors.Errorf("scalar: invalid decimal %q", s)
	}
	if v.Sign() < 0 || v.Cmp(modulus) >= 0 {
		return nil, errors.Errorf("scalar: %q is not in [0, r)", s)
	}
	return e.fromBig(v), nil
}

// BigInt sets res to the canonical value of e in [0, r), and returns res.
func (e *Element) BigInt(res *big.Int) *big.Int {
	return e.toBig(res)
}

// Multiply sets e = x * y mod r, and returns e.
func (e *Element) Multiply(x, y *Element) *Element {
	var a, b big.Int
	a.Mul(x.toBig(&a), y.toBig(&b))
	return e.fromBig(a.Mod(&a, modulus))
}

// IsOne reports whether e = 1.
func (e *Element) IsOne() bool {
	return e.l == [Limbs]uint64{1}
}

// String returns the decimal representation of e.
func (e *Element) String() string {
	return e.toBig(new(big.Int)).String()
}
