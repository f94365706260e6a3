package highlight

import (
	"bytes"
	"strings"
)

const (
	sgrReset = "\x1b[0m"

	// discordFence opens the code block Discord renders as
	// ANSI-colored content.
	discordFence = "```ansi\n"

	// zeroWidthJoiner splits backtick runs that would otherwise
	// close the Discord fence early.
	zeroWidthJoiner = "‍"
)

// encodeANSI serializes the source with SGR escape transitions.
//
// A transition is emitted only when a span's resolved style differs
// from the one already active, and only immediately before content,
// so no escape is ever emitted for text that does not follow it.
// Encoding the same inputs always yields byte-identical output.
func encodeANSI(src string, spans []Span, styles *styleTable, discord bool) []byte {
	e := ansiEncoder{discord: discord}
	if discord {
		e.buf.WriteString(discordFence)
	}
	for _, sp := range spans {
		e.setStyle(styles[sp.Category])
		e.writeText(src[sp.Start:sp.End])
	}
	e.finish()
	return e.buf.Bytes()
}

// ansiEncoder tracks the emitted style state.
//
// Style changes are deferred until content is written, in the manner
// of a color writer that drops sequences nothing follows. In discord
// mode the encoder re-asserts the active style after every newline,
// because Discord's renderer resets styling at line boundaries.
type ansiEncoder struct {
	buf     bytes.Buffer
	discord bool

	active  resolvedStyle
	pending *resolvedStyle
	restyle bool
}

func (e *ansiEncoder) setStyle(s resolvedStyle) {
	if s == e.active {
		e.pending = nil
		return
	}
	e.pending = &s
}

func (e *ansiEncoder) writeText(s string) {
	for len(s) > 0 {
		line := s
		newline := false
		if i := strings.IndexByte(s, '\n'); i >= 0 {
			line, s = s[:i], s[i+1:]
			newline = true
		} else {
			s = ""
		}
		if line != "" {
			e.flushStyle()
			if e.discord {
				line = escapeFences(line)
			}
			e.buf.WriteString(line)
		}
		if newline {
			e.buf.WriteByte('\n')
			if e.discord {
				e.restyle = true
			}
		}
	}
}

// flushStyle emits any pending style change, or re-asserts the
// active style at the start of a discord line.
func (e *ansiEncoder) flushStyle() {
	if e.pending != nil {
		e.active = *e.pending
		e.pending = nil
		e.restyle = false
		e.buf.WriteString(e.active.sgr())
		return
	}
	if e.restyle {
		e.restyle = false
		if !e.active.isZero() {
			e.buf.WriteString(e.active.sgr())
		}
	}
}

func (e *ansiEncoder) finish() {
	if !e.active.isZero() {
		e.buf.WriteString(sgrReset)
		e.active = resolvedStyle{}
	}
	if e.discord {
		// The closing fence must sit on its own line.
		if b := e.buf.Bytes(); len(b) > 0 && b[len(b)-1] != '\n' {
			e.buf.WriteByte('\n')
		}
		e.buf.WriteString("```\n")
	}
}

// escapeFences breaks up runs of three or more backticks by
// interleaving zero-width joiners, so the content cannot close the
// surrounding Discord code block.
func escapeFences(line string) string {
	if !strings.Contains(line, "```") {
		return line
	}
	var b strings.Builder
	run := 0
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c != '`' {
			b.WriteByte(c)
			run = 0
			continue
		}
		run++
		if run >= 3 {
			b.WriteString(zeroWidthJoiner)
		}
		b.WriteByte(c)
	}
	return b.String()
}
