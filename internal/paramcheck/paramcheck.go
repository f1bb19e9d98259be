// Copyright (c) 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paramcheck verifies offline that a set of twisted Edwards curve
// parameters is self-consistent: the generator is on the curve and has prime
// order, the cofactor inverse is correct, the Montgomery model matches, and
// the specialized multiplication by a agrees with a generic multiplication.
// The curve and generator order are also cross-checked against the twisted
// Edwards curve of github.com/consensys/gnark-crypto/ecc/bw6-761/twistededwards.
package paramcheck

import (
	"fmt"
	"io"
	"math/big"
	"strings"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bw6-761/fr"
	"github.com/consensys/gnark-crypto/ecc/bw6-761/twistededwards"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/kevaundray/curves/internal/group"
	"github.com/kevaundray/curves/models"
)

// DefaultSamples is the default number of random elements on which MulByA is
// compared against a generic multiplication.
const DefaultSamples = 256

// Check names.
const (
	GeneratorOnCurve       = "generator-on-curve"
	CofactorInverse        = "cofactor-inverse"
	MulByA                 = "mul-by-a"
	MontgomeryCoefficients = "montgomery-coefficients"
	MontgomeryGenerator    = "montgomery-generator"
	GeneratorOrder         = "generator-order"
	CofactorClearing       = "cofactor-clearing"
	ReferenceCurve         = "reference-curve"
)

// Result is the outcome of a single check.
type Result struct {
	Name     string
	Err      error
	Duration time.Duration
}

// Passed reports whether the check succeeded.
func (r Result) Passed() bool {
	return r.Err == nil
}

// Report is the outcome of Run.
type Report struct {
	Results []Result
}

// Err returns nil if every check passed, and otherwise an error listing the
// failed checks.
func (r Report) Err() error {
	var failed []string
	for _, res := range r.Results {
		if !res.Passed() {
			failed = append(failed, fmt.Sprintf("%s: %v", res.Name, res.Err))
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return errors.Errorf("paramcheck: %d check(s) failed: %s", len(failed), strings.Join(failed, "; "))
}

type config struct {
	samples int
	logger  *logrus.Entry
}

// Option configures Run.
type Option func(*config)

// WithSamples sets the number of random elements used by the mul-by-a check,
// in addition to 0, 1 and -1.
func WithSamples(n int) Option {
	return func(c *config) {
		c.samples = n
	}
}

// WithLogger sets the logger Run reports progress to. By default nothing is
// logged.
func WithLogger(l *logrus.Entry) Option {
	return func(c *config) {
		c.logger = l
	}
}

type check struct {
	name string
	run  func(*checker) error
}

var checks = []check{
	{GeneratorOnCurve, (*checker).generatorOnCurve},
	{CofactorInverse, (*checker).cofactorInverse},
	{MulByA, (*checker).mulByA},
	{MontgomeryCoefficients, (*checker).montgomeryCoefficients},
	{MontgomeryGenerator, (*checker).montgomeryGenerator},
	{GeneratorOrder, (*checker).generatorOrder},
	{CofactorClearing, (*checker).cofactorClearing},
	{ReferenceCurve, (*checker).referenceCurve},
}

type checker struct {
	params  models.TwistedEdwards
	curve   *group.Curve
	samples int
}

// Run runs every check against p and returns their results in a fixed
// order. A failing check does not stop the following ones.
func Run(p models.TwistedEdwards, opts ...Option) Report {
	cfg := config{samples: DefaultSamples}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		l := logrus.New()
		l.Out = io.Discard
		cfg.logger = logrus.NewEntry(l)
	}

	c := &checker{params: p, curve: group.NewCurve(p), samples: cfg.samples}
	report := Report{Results: make([]Result, 0, len(checks))}
	for _, chk := range checks {
		start := time.Now()
		err := runCheck(c, chk)
		res := Result{Name: chk.name, Err: err, Duration: time.Since(start)}
		report.Results = append(report.Results, res)

		entry := cfg.logger.WithFields(logrus.Fields{
			"check":    chk.name,
			"duration": res.Duration,
		})
		if err != nil {
			entry.WithError(err).Error("check failed")
		} else {
			entry.Debug("check passed")
		}
	}
	return report
}

// runCheck turns panics from the group engine, such as those caused by a
// zero-value parameter set, into check failures.
func runCheck(c *checker, chk check) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("panic: %v", r)
		}
	}()
	return chk.run(c)
}

// onCurve reports whether a·x² + y² = 1 + d·x²·y², multiplying by the
// declared a rather than through MulByA.
func onCurve(a, d, x, y *fr.Element) bool {
	var xx, yy, lhs, rhs fr.Element
	xx.Square(x)
	yy.Square(y)
	lhs.Mul(a, &xx)
	lhs.Add(&lhs, &yy)
	rhs.Mul(&xx, &yy)
	rhs.Mul(&rhs, d)
	rhs.Add(&rhs, new(fr.Element).SetOne())
	return lhs.Equal(&rhs)
}

func (c *checker) generatorOnCurve() error {
	x, y := c.params.AffineGenerator()
	a, d := c.params.CoeffA(), c.params.CoeffD()
	if !onCurve(&a, &d, &x, &y) {
		return errors.Errorf("generator (%s, %s) does not satisfy a·x² + y² = 1 + d·x²·y²", x.String(), y.String())
	}
	return nil
}

func (c *checker) cofactorInverse() error {
	r := c.params.ScalarField()
	if r.Sign() <= 0 || !r.ProbablyPrime(20) {
		return errors.Errorf("scalar field order %s is not prime", r)
	}
	h := models.Cofactor(c.params)
	if h.Sign() == 0 {
		return errors.New("cofactor is zero")
	}
	inv := c.params.CofactorInverse()
	if inv.Sign() < 0 || inv.Cmp(r) >= 0 {
		return errors.Errorf("cofactor inverse %s is not reduced modulo r", inv)
	}
	prod := new(big.Int).Mul(h, inv)
	if prod.Mod(prod, r).Cmp(big.NewInt(1)) != 0 {
		return errors.Errorf("h·h⁻¹ = %s mod r, want 1", prod)
	}
	return nil
}

func (c *checker) mulByA() error {
	a := c.params.CoeffA()
	samples := make([]fr.Element, 3, 3+c.samples)
	samples[1].SetOne()
	samples[2].SetOne()
	samples[2].Neg(&samples[2])
	for i := 0; i < c.samples; i++ {
		var e fr.Element
		if _, err := e.SetRandom(); err != nil {
			return errors.Wrap(err, "sampling field element")
		}
		samples = append(samples, e)
	}

	for _, e := range samples {
		var want fr.Element
		want.Mul(&a, &e)
		if got := c.params.MulByA(e); got != want {
			return errors.Errorf("MulByA(%s) = %s, want %s", e.String(), got.String(), want.String())
		}
	}
	return nil
}

func (c *checker) montgomeryCoefficients() error {
	mont := c.params.Montgomery()
	a, d := c.params.CoeffA(), c.params.CoeffD()
	A, B := mont.CoeffA(), mont.CoeffB()

	gotA, gotB, err := models.MontgomeryCoefficients(&a, &d)
	if err != nil {
		return err
	}
	if !gotA.Equal(&A) || !gotB.Equal(&B) {
		return errors.Errorf("(a, d) maps to (A, B) = (%s, %s), declared (%s, %s)",
			gotA.String(), gotB.String(), A.String(), B.String())
	}

	gotA, gotD, err := models.TwistedEdwardsCoefficients(&A, &B)
	if err != nil {
		return err
	}
	if !gotA.Equal(&a) || !gotD.Equal(&d) {
		return errors.Errorf("(A, B) maps to (a, d) = (%s, %s), declared (%s, %s)",
			gotA.String(), gotD.String(), a.String(), d.String())
	}

	back := mont.TwistedEdwards()
	backA, backD := back.CoeffA(), back.CoeffD()
	if !backA.Equal(&a) || !backD.Equal(&d) {
		return errors.New("the Montgomery model refers back to a different twisted Edwards model")
	}
	return nil
}

func (c *checker) montgomeryGenerator() error {
	u, v, err := c.curve.Generator().Montgomery()
	if err != nil {
		return errors.Wrap(err, "mapping generator")
	}
	if !models.IsOnMontgomery(c.params.Montgomery(), &u, &v) {
		return errors.Errorf("generator maps to (%s, %s), which is not on the Montgomery curve", u.String(), v.String())
	}
	x, y, err := models.FromMontgomery(&u, &v)
	if err != nil {
		return errors.Wrap(err, "mapping generator back")
	}
	gx, gy := c.params.AffineGenerator()
	if !x.Equal(&gx) || !y.Equal(&gy) {
		return errors.New("generator does not survive the round trip through the Montgomery model")
	}
	return nil
}

func (c *checker) generatorOrder() error {
	g := c.curve.Generator()
	if g.IsIdentity() {
		return errors.New("generator is the identity")
	}
	if !g.InPrimeOrderSubgroup() {
		return errors.New("r·G is not the identity")
	}
	if models.Cofactor(c.params).Cmp(big.NewInt(1)) > 0 {
		if new(group.Point).MultByCofactor(g).IsIdentity() {
			return errors.New("h·G is the identity")
		}
	}
	return nil
}

func (c *checker) cofactorClearing() error {
	// (0, -1) has order two on every twisted Edwards curve.
	var zero, minusOne fr.Element
	minusOne.SetOne()
	minusOne.Neg(&minusOne)
	t2, err := c.curve.NewPoint(&zero, &minusOne)
	if err != nil {
		return err
	}

	g := c.curve.Generator()
	for i, p := range []*group.Point{g, new(group.Point).Add(g, t2)} {
		once := new(group.Point).MultByCofactor(p)
		twice := new(group.Point).MultByCofactor(once)
		if !once.InPrimeOrderSubgroup() {
			return errors.Errorf("point %d: h·P is not in the prime-order subgroup", i)
		}
		if !twice.InPrimeOrderSubgroup() {
			return errors.Errorf("point %d: h·(h·P) is not in the prime-order subgroup", i)
		}
	}
	return nil
}

// referenceCurve compares the parameters with the twisted Edwards curve that
// gnark-crypto defines over the same field, and checks the order of the
// generator with gnark-crypto's group law, which does not go through MulByA.
func (c *checker) referenceCurve() error {
	ref := twistededwards.GetEdwardsCurve()

	a, d := c.params.CoeffA(), c.params.CoeffD()
	if !a.Equal(&ref.A) || !d.Equal(&ref.D) {
		return errors.Errorf("(a, d) = (%s, %s), gnark-crypto declares (%s, %s)",
			a.String(), d.String(), ref.A.String(), ref.D.String())
	}
	if r := c.params.ScalarField(); r.Cmp(&ref.Order) != 0 {
		return errors.Errorf("scalar field order %s, gnark-crypto declares %s", r, &ref.Order)
	}
	var h big.Int
	ref.Cofactor.BigInt(&h)
	if got := models.Cofactor(c.params); got.Cmp(&h) != 0 {
		return errors.Errorf("cofactor %s, gnark-crypto declares %s", got, &h)
	}

	x, y := c.params.AffineGenerator()
	g := twistededwards.NewPointAffine(x, y)
	if !g.IsOnCurve() {
		return errors.New("generator is not on the gnark-crypto curve")
	}
	var p twistededwards.PointAffine
	if !p.ScalarMultiplication(&g, &ref.Order).IsZero() {
		return errors.New("gnark-crypto computes r·G ≠ O")
	}
	if p.ScalarMultiplication(&g, &h).IsZero() {
		return errors.New("gnark-crypto computes h·G = O")
	}
	return nil
}
