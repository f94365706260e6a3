package syntax

import "braces.dev/errtrace"

// Mode selects which of Typst's top-level grammars
// is used to interpret the input.
type Mode int

const (
	// ModeMarkup parses the input as Typst markup.
	// This is what a .typ file contains at the top level.
	ModeMarkup Mode = iota

	// ModeCode parses the input as Typst code,
	// the same grammar that follows a '#' in markup.
	ModeCode

	// ModeMath parses the input as Typst math,
	// the grammar between '$' delimiters.
	ModeMath
)

// ParseMode parses a mode from its command line spelling.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "markup":
		return ModeMarkup, nil
	case "code":
		return ModeCode, nil
	case "math":
		return ModeMath, nil
	}
	return 0, errtrace.Errorf("unknown mode %q: expected markup, code, or math", s)
}

func (m Mode) String() string {
	switch m {
	case ModeCode:
		return "code"
	case ModeMath:
		return "math"
	default:
		return "markup"
	}
}
