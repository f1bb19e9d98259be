// Copyright (c) 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bw6-761/fr"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/kevaundray/curves/edoncp6782"
	"github.com/kevaundray/curves/models"
)

const curveName = "ed_on_cp6_782"

// curveDump is the printable form of the curve constants. Field elements are
// decimal strings.
type curveDump struct {
	Name            string `json:"name"`
	BaseField       string `json:"base_field"`
	ScalarField     string `json:"scalar_field"`
	Cofactor        string `json:"cofactor"`
	CofactorInverse string `json:"cofactor_inverse"`
	TwistedEdwards  struct {
		A          string `json:"a"`
		D          string `json:"d"`
		GeneratorX string `json:"generator_x"`
		GeneratorY string `json:"generator_y"`
	} `json:"twisted_edwards"`
	Montgomery struct {
		A string `json:"a"`
		B string `json:"b"`
	} `json:"montgomery"`
}

func newCurveDump(p models.TwistedEdwards) curveDump {
	str := func(e fr.Element) string {
		return e.String()
	}

	var d curveDump
	d.Name = curveName
	d.BaseField = fr.Modulus().String()
	d.ScalarField = p.ScalarField().String()
	d.Cofactor = models.Cofactor(p).String()
	d.CofactorInverse = p.CofactorInverse().String()

	x, y := p.AffineGenerator()
	d.TwistedEdwards.A = signed(p.CoeffA())
	d.TwistedEdwards.D = str(p.CoeffD())
	d.TwistedEdwards.GeneratorX = str(x)
	d.TwistedEdwards.GeneratorY = str(y)

	mont := p.Montgomery()
	d.Montgomery.A = str(mont.CoeffA())
	d.Montgomery.B = str(mont.CoeffB())
	return d
}

// signed prints e as a negative number when -e is small, so that a = -1
// reads as such.
func signed(e fr.Element) string {
	var neg fr.Element
	neg.Neg(&e)
	n := neg.BigInt(new(big.Int))
	if e.IsZero() || n.BitLen() > 64 {
		return e.String()
	}
	return "-" + n.String()
}

func (c *cli) newParamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "params",
		Short:   "Print the curve constants",
		PreRunE: c.loadConfig,
		RunE:    c.runParams,
	}
	cmd.Flags().String("format", c.config.Format, "text or json")
	return cmd
}

func (c *cli) runParams(cmd *cobra.Command, args []string) error {
	d := newCurveDump(edoncp6782.EdwardsParameters{})
	out := cmd.OutOrStdout()

	switch c.config.Format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(d), "encoding parameters")
	case "text":
		return writeText(out, d)
	default:
		return errors.Errorf("unknown format %q", c.config.Format)
	}
}

func writeText(w io.Writer, d curveDump) error {
	rows := []struct{ name, value string }{
		{"curve", d.Name},
		{"base field", d.BaseField},
		{"scalar field", d.ScalarField},
		{"cofactor", d.Cofactor},
		{"cofactor inverse", d.CofactorInverse},
		{"te a", d.TwistedEdwards.A},
		{"te d", d.TwistedEdwards.D},
		{"te generator x", d.TwistedEdwards.GeneratorX},
		{"te generator y", d.TwistedEdwards.GeneratorY},
		{"montgomery A", d.Montgomery.A},
		{"montgomery B", d.Montgomery.B},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%-18s %s\n", r.name, r.value); err != nil {
			return errors.Wrap(err, "writing parameters")
		}
	}
	return nil
}
