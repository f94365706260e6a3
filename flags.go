package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"braces.dev/errtrace"
	"github.com/peterbourgon/ff/v3"

	"github.com/frozolotl/typst-ansi-hl/internal/syntax"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// params holds all arguments for typst-ansi-hl.
type params struct {
	version bool
	help    Help

	Discord   bool
	Mode      syntax.Mode
	SoftLimit int

	// Input is the path to read from, or empty for stdin.
	Input string
}

// cliParser parses the command line arguments for typst-ansi-hl.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	fset := flag.NewFlagSet("typst-ansi-hl", flag.ContinueOnError)
	fset.SetOutput(cmd.Stderr)
	fset.Usage = func() {
		_ = DefaultHelp.Write(cmd.Stderr)
	}

	var p params

	// Output shape:
	fset.BoolVar(&p.Discord, "discord", false, "")
	fset.BoolVar(&p.Discord, "d", false, "")
	fset.Var(modeFlag{&p.Mode}, "mode", "")
	fset.IntVar(&p.SoftLimit, "soft-limit", 0, "")

	// Program-level:
	fset.BoolVar(&p.version, "version", false, "")
	fset.Var(&p.help, "help", "")
	fset.Var(&p.help, "h", "")

	return &p, fset
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, fset := cmd.newFlagSet()
	if err := ff.Parse(fset, args, ff.WithEnvVarPrefix("TYPST_ANSI_HL")); err != nil {
		return nil, errtrace.Wrap(err)
	}
	args = fset.Args()

	if p.version {
		fmt.Fprintln(cmd.Stdout, "typst-ansi-hl", _version)
		return nil, errHelp
	}

	if p.help == DefaultHelp && len(args) > 0 {
		// The user might have done "-h foo"
		// instead of "-h=foo".
		// If the argument is a known help topic,
		// take it.
		var h Help
		if err := h.Set(args[0]); err == nil {
			p.help = h
		}
	}

	switch p.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := p.help.Write(cmd.Stderr); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errHelp
	}

	if p.SoftLimit < 0 {
		fmt.Fprintln(cmd.Stderr, "The soft limit must not be negative.")
		return nil, errInvalidArguments
	}

	switch len(args) {
	case 0:
		// read from stdin
	case 1:
		p.Input = args[0]
	default:
		fmt.Fprintln(cmd.Stderr, "Please provide at most one input path.")
		_ = UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	return p, nil
}

// modeFlag adapts a syntax.Mode to flag.Getter.
type modeFlag struct{ mode *syntax.Mode }

var _ flag.Getter = modeFlag{}

func (f modeFlag) Get() any { return *f.mode }

func (f modeFlag) String() string {
	if f.mode == nil {
		return ""
	}
	return f.mode.String()
}

func (f modeFlag) Set(s string) error {
	m, err := syntax.ParseMode(s)
	if err != nil {
		return errtrace.Wrap(err)
	}
	*f.mode = m
	return nil
}
