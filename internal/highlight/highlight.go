package highlight

import (
	"braces.dev/errtrace"

	"github.com/frozolotl/typst-ansi-hl/internal/syntax"
)

// Highlighter highlights Typst source as ANSI-colored text.
//
//	res, err := highlight.New().
//		ForDiscord().
//		WithSoftLimit(2000).
//		Highlight("This is _Typst_ #underline[code].")
//
// A Highlighter is cheap to construct and safe to share between
// goroutines once configured: highlighting reads only immutable state.
type Highlighter struct {
	discord   bool
	mode      syntax.Mode
	softLimit int
	theme     Theme
}

// New returns a Highlighter for markup input with the default theme,
// no Discord compatibility, and no size limit.
func New() *Highlighter {
	return &Highlighter{
		mode:  syntax.ModeMarkup,
		theme: DefaultTheme(),
	}
}

// ForDiscord formats the output for Discord: the result is wrapped in
// an `ansi` code block, the active style is re-asserted on every line,
// and code fences inside the source are escaped.
func (h *Highlighter) ForDiscord() *Highlighter {
	h.discord = true
	return h
}

// WithMode selects how the input is parsed. Default: markup.
func (h *Highlighter) WithMode(mode syntax.Mode) *Highlighter {
	h.mode = mode
	return h
}

// WithSoftLimit softly enforces a byte size limit on the output.
//
// If an output exceeds the limit, color fidelity is reduced until it
// fits. If even unstyled output is too large, it is returned anyway:
// the limit bounds decoration, never content.
func (h *Highlighter) WithSoftLimit(n int) *Highlighter {
	h.softLimit = n
	return h
}

// WithTheme replaces the default theme.
func (h *Highlighter) WithTheme(theme Theme) *Highlighter {
	h.theme = theme
	return h
}

// Result is the outcome of one highlighting request.
type Result struct {
	// Output is the encoded text, source bytes included verbatim.
	Output []byte

	// Fidelity is the color fidelity the output was encoded at.
	Fidelity Fidelity

	// Degraded reports that a soft limit forced the fidelity below
	// truecolor, or could not be satisfied at all.
	Degraded bool
}

// Highlight parses and highlights the given source.
//
// It fails only if the parsed tree breaks the span partition contract,
// which is a bug, not an input error; see [ErrInvariant].
func (h *Highlighter) Highlight(src string) (Result, error) {
	root := syntax.Parse(src, h.mode)
	spans, err := extractSpans(root, src)
	if err != nil {
		return Result{}, errtrace.Wrap(err)
	}
	return h.negotiate(src, spans), nil
}

// negotiate runs encode passes across descending fidelity levels until
// the output fits the soft limit. The span sequence is extracted once
// and shared by every pass; only resolution and encoding repeat.
func (h *Highlighter) negotiate(src string, spans []Span) Result {
	encode := func(f Fidelity) []byte {
		return encodeANSI(src, spans, resolveAll(h.theme, f), h.discord)
	}

	if h.softLimit <= 0 {
		return Result{Output: encode(FidelityTruecolor), Fidelity: FidelityTruecolor}
	}

	for f := FidelityTruecolor; ; f = f.degrade() {
		out := encode(f)
		if len(out) <= h.softLimit {
			return Result{Output: out, Fidelity: f, Degraded: f != FidelityTruecolor}
		}
		if f == FidelityPlainText {
			// Even unstyled output exceeds the limit.
			// Emit it anyway; content is never cut.
			return Result{Output: out, Fidelity: f, Degraded: true}
		}
	}
}
