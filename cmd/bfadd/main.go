// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bfadd adds binary floating-point numbers with a given precision and
// rounding mode, and prints the correctly rounded result with its ordering
// relative to the exact result.
//
// Operands are Float literals as printed by bfadd itself, like 0x1.8p+01#2,
// or any number accepted by big.Float with base 0 that is exact in 64 bits.
// The second operand of add and sub may also be a fraction like 1/3, or a
// decimal number like 0.1, taken as an exact rational.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"golang.org/x/xerrors"

	"github.com/db47h/bfloat"
	"github.com/db47h/bfloat/internal/logging"
	"github.com/db47h/bfloat/math"
)

const version = "0.1.0"

// Globals holds the flags shared by all commands.
type Globals struct {
	Prec      uint   `short:"p" default:"53" help:"Precision of the result in bits."`
	Mode      string `short:"m" default:"nearest" enum:"nearest,down,up,floor,ceiling,exact" help:"Rounding mode (${enum})."`
	Format    string `short:"f" default:"literal" enum:"literal,g,e,f,p" help:"Output format (${enum})."`
	LogLevel  string `name:"log-level" default:"warn" enum:"debug,info,warn,error" help:"Log level (${enum})."`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" help:"Log format (${enum})."`
}

// CLI defines the command-line interface for bfadd.
type CLI struct {
	Globals

	Add     AddCmd     `cmd:"" help:"Add two numbers"`
	Sub     SubCmd     `cmd:"" help:"Subtract two numbers"`
	Sum     SumCmd     `cmd:"" help:"Add many numbers with a single rounding"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// AddCmd adds two operands.
type AddCmd struct {
	X string `arg:"" help:"First operand"`
	Y string `arg:"" help:"Second operand, possibly rational"`
}

// Run executes the add command.
func (c *AddCmd) Run(ctx *kong.Context, g *Globals, log *slog.Logger) error {
	return binop(ctx.Stdout, g, log, c.X, c.Y, false)
}

// SubCmd subtracts two operands.
type SubCmd struct {
	X string `arg:"" help:"First operand"`
	Y string `arg:"" help:"Second operand, possibly rational"`
}

// Run executes the sub command.
func (c *SubCmd) Run(ctx *kong.Context, g *Globals, log *slog.Logger) error {
	return binop(ctx.Stdout, g, log, c.X, c.Y, true)
}

// SumCmd adds any number of operands.
type SumCmd struct {
	Terms []string `arg:"" optional:"" help:"Operands"`
}

// Run executes the sum command.
func (c *SumCmd) Run(ctx *kong.Context, g *Globals, log *slog.Logger) error {
	mode, err := parseMode(g.Mode)
	if err != nil {
		return err
	}
	xs := make([]*bfloat.Float, len(c.Terms))
	for i, s := range c.Terms {
		if xs[i], err = bfloat.ParseFloat(s); err != nil {
			return err
		}
		log.Debug("parsed term", "index", i, "value", xs[i])
	}
	z := new(bfloat.Float)
	o, err := guard(func() bfloat.Ordering {
		_, o := math.Sum(z, g.Prec, mode, xs...)
		return o
	})
	if err != nil {
		return err
	}
	log.Info("sum", "terms", len(xs), "prec", g.Prec, "mode", mode, "ordering", o)
	return output(ctx.Stdout, g, z, o)
}

// VersionCmd prints the version.
type VersionCmd struct{}

// Run executes the version command.
func (c *VersionCmd) Run(ctx *kong.Context) error {
	_, err := fmt.Fprintf(ctx.Stdout, "bfadd version %s\n", version)
	return err
}

func binop(w io.Writer, g *Globals, log *slog.Logger, xs, ys string, sub bool) error {
	mode, err := parseMode(g.Mode)
	if err != nil {
		return err
	}
	x, err := bfloat.ParseFloat(xs)
	if err != nil {
		return err
	}
	log.Debug("parsed operand", "x", x)

	z := new(bfloat.Float)
	var op func() bfloat.Ordering
	if y, err := bfloat.ParseFloat(ys); err == nil {
		log.Debug("parsed operand", "y", y)
		op = func() (o bfloat.Ordering) {
			if sub {
				_, o = z.SubPrecRound(x, y, g.Prec, mode)
			} else {
				_, o = z.AddPrecRound(x, y, g.Prec, mode)
			}
			return o
		}
	} else {
		r, ok := new(big.Rat).SetString(ys)
		if !ok {
			return xerrors.Errorf("bfadd: invalid operand %q: %w", ys, err)
		}
		log.Debug("parsed rational operand", "y", r)
		op = func() (o bfloat.Ordering) {
			if sub {
				_, o = z.SubRationalPrecRound(x, r, g.Prec, mode)
			} else {
				_, o = z.AddRationalPrecRound(x, r, g.Prec, mode)
			}
			return o
		}
	}

	o, err := guard(op)
	if err != nil {
		return err
	}
	log.Info("result", "sub", sub, "prec", g.Prec, "mode", mode, "ordering", o)
	return output(w, g, z, o)
}

// guard runs f and returns the errors raised by bfloat as panics.
func guard(f func() bfloat.Ordering) (o bfloat.Ordering, err error) {
	defer func() {
		e := recover()
		if e == nil {
			return
		}
		var (
			errInexact bfloat.ErrInexact
			errPrec    bfloat.ErrPrecision
		)
		if err, _ = e.(error); err == nil || !xerrors.As(err, &errInexact) && !xerrors.As(err, &errPrec) {
			panic(e)
		}
		err = xerrors.Errorf("bfadd: %w", err)
	}()
	return f(), nil
}

func output(w io.Writer, g *Globals, z *bfloat.Float, o bfloat.Ordering) error {
	var s string
	if g.Format == "literal" {
		s = z.String()
	} else {
		s = z.Text(g.Format[0], -1)
	}
	_, err := fmt.Fprintf(w, "%s %v\n", s, o)
	return err
}

func parseMode(s string) (bfloat.RoundingMode, error) {
	for m := bfloat.Nearest; m <= bfloat.Exact; m++ {
		if strings.EqualFold(m.String(), s) {
			return m, nil
		}
	}
	return 0, xerrors.Errorf("bfadd: unknown rounding mode %q", s)
}

func (g *Globals) logger(w io.Writer) (*slog.Logger, error) {
	level, err := logging.ParseLevel(g.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(g.LogFormat)
	if err != nil {
		return nil, err
	}
	return logging.New(w, level, format), nil
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("bfadd"),
		kong.Description("Correctly rounded binary floating-point addition"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	}, options...)
	return kong.New(cli, options...)
}

// run parses args and executes the selected command.
func run(parser *kong.Kong, cli *CLI, args []string, stderr io.Writer) error {
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	log, err := cli.logger(stderr)
	if err != nil {
		return err
	}
	return ctx.Run(ctx, &cli.Globals, log)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}
	err = run(parser, &cli, os.Args[1:], os.Stderr)
	parser.FatalIfErrorf(err)
}
