// typst-ansi-hl highlights Typst code using ANSI escape sequences.
//
// It reads Typst source from a file or stdin and writes the
// highlighted text to stdout. See -h for usage.
package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"braces.dev/errtrace"

	"github.com/frozolotl/typst-ansi-hl/internal/highlight"
)

func main() {
	cmd := mainCmd{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdin  io.Reader // == os.Stdin
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	if err := cmd.run(opts); err != nil {
		cmd.log.Printf("typst-ansi-hl: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) error {
	var (
		src []byte
		err error
	)
	if opts.Input != "" {
		src, err = os.ReadFile(opts.Input)
		if err != nil {
			return errtrace.Errorf("read %q: %w", opts.Input, err)
		}
	} else {
		src, err = io.ReadAll(cmd.Stdin)
		if err != nil {
			return errtrace.Errorf("read stdin: %w", err)
		}
	}

	h := highlight.New().WithMode(opts.Mode)
	if opts.Discord {
		h.ForDiscord()
	}
	if opts.SoftLimit > 0 {
		h.WithSoftLimit(opts.SoftLimit)
	}

	res, err := h.Highlight(string(src))
	if err != nil {
		return errtrace.Errorf("highlight input: %w", err)
	}

	_, err = cmd.Stdout.Write(res.Output)
	return errtrace.Wrap(err)
}
