package highlight

import (
	"strings"

	"github.com/muesli/termenv"
)

// Fidelity is a color-richness tier, ordered from richest to poorest.
// Degrading fidelity never grows the encoded output for a fixed span
// sequence: lower tiers emit strictly shorter color sequences and can
// only merge, never split, style transitions.
type Fidelity int

const (
	FidelityTruecolor Fidelity = iota
	FidelityAnsi256
	FidelityAnsi16
	FidelityPlainText
)

// degrade steps down one fidelity level.
// FidelityPlainText is terminal.
func (f Fidelity) degrade() Fidelity {
	if f >= FidelityPlainText {
		return FidelityPlainText
	}
	return f + 1
}

func (f Fidelity) String() string {
	switch f {
	case FidelityTruecolor:
		return "truecolor"
	case FidelityAnsi256:
		return "ansi256"
	case FidelityAnsi16:
		return "ansi16"
	default:
		return "plain"
	}
}

func (f Fidelity) profile() termenv.Profile {
	switch f {
	case FidelityTruecolor:
		return termenv.TrueColor
	case FidelityAnsi256:
		return termenv.ANSI256
	case FidelityAnsi16:
		return termenv.ANSI
	default:
		return termenv.Ascii
	}
}

// resolvedStyle is a theme style projected to a fidelity level.
// The zero value is "no styling".
type resolvedStyle struct {
	fg            termenv.Color // nil for the default color
	bold          bool
	italic        bool
	underline     bool
	strikethrough bool
}

func (s resolvedStyle) isZero() bool { return s == resolvedStyle{} }

// sgr renders the escape sequence that switches the terminal to this
// style. The sequence always begins with a full reset so that the
// previous style's attributes never leak through.
func (s resolvedStyle) sgr() string {
	var b strings.Builder
	b.WriteString("\x1b[0")
	if s.bold {
		b.WriteString(";1")
	}
	if s.italic {
		b.WriteString(";3")
	}
	if s.underline {
		b.WriteString(";4")
	}
	if s.strikethrough {
		b.WriteString(";9")
	}
	if s.fg != nil {
		b.WriteByte(';')
		b.WriteString(s.fg.Sequence(false))
	}
	b.WriteByte('m')
	return b.String()
}

// styleTable holds every category's style at one fidelity level,
// so that repeated encode passes never re-resolve per span.
type styleTable [numCategories]resolvedStyle

// resolveAll projects the theme to the given fidelity.
// At FidelityPlainText everything resolves to the zero style.
// The projection truecolor → 256 → 16 is termenv's nearest-color
// conversion; it is deterministic, so equal truecolor styles stay
// equal at every lower level.
func resolveAll(theme Theme, f Fidelity) *styleTable {
	var table styleTable
	if f == FidelityPlainText {
		return &table
	}
	profile := f.profile()
	for cat := Category(0); cat < numCategories; cat++ {
		st, ok := theme[cat]
		if !ok {
			continue
		}
		rs := resolvedStyle{
			bold:          st.Bold,
			italic:        st.Italic,
			underline:     st.Underline,
			strikethrough: st.Strikethrough,
		}
		if st.Foreground != nil {
			// FromColor projects into the profile's color model,
			// so no separate Convert step is needed.
			rs.fg = profile.FromColor(st.Foreground)
		}
		table[cat] = rs
	}
	return &table
}
