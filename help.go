package main

import (
	_ "embed"
	"flag"
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"
)

// Help is typst-ansi-hl's -h/-help flag.
// It supports retrieving help on various topics by passing in a parameter.
type Help string

var (
	//go:embed help/default.txt
	_defaultHelp string

	//go:embed help/mode.txt
	_modeHelp string

	//go:embed help/limit.txt
	_limitHelp string

	_usageHelp = firstLineOf(_defaultHelp)

	_helpTopics = map[Help]string{
		"default": _defaultHelp,
		"limit":   _limitHelp,
		"mode":    _modeHelp,
		"usage":   _usageHelp,
	}
)

func firstLineOf(s string) string {
	if idx := strings.IndexRune(s, '\n'); idx >= 0 {
		s = s[:idx+1]
	}
	return s
}

const (
	// NoHelp means that the user did not request any help.
	NoHelp Help = ""

	// DefaultHelp is the default help topic.
	DefaultHelp Help = "default"

	// UsageHelp is the one-line usage message.
	UsageHelp Help = "usage"
)

var _ flag.Getter = (*Help)(nil)

// Get reports the current value of the flag.
func (h *Help) Get() any { return *h }

func (h *Help) String() string { return string(*h) }

// IsBoolFlag allows using -h without an argument.
func (*Help) IsBoolFlag() bool { return true }

// Set receives a command line value for the flag.
func (h *Help) Set(s string) error {
	switch s {
	case "", "true":
		// '-h' without an argument.
		*h = DefaultHelp
		return nil
	}
	topic := Help(s)
	if _, ok := _helpTopics[topic]; !ok {
		return errtrace.Errorf("unknown help topic %q", s)
	}
	*h = topic
	return nil
}

// Write writes this help topic to the given writer.
func (h Help) Write(w io.Writer) error {
	text, ok := _helpTopics[h]
	if !ok {
		return errtrace.Errorf("unknown help topic %q", string(h))
	}
	_, err := fmt.Fprint(w, text)
	return errtrace.Wrap(err)
}
