// Package highlight renders Typst syntax trees as ANSI-colored text.
//
// A tree from [syntax.Parse] is flattened into a sequence of [Span]s,
// each a contiguous byte range carrying one semantic [Category].
// Categories resolve to concrete colors at a [Fidelity] level,
// and an encoder interleaves the source bytes with minimal
// SGR transitions.
//
// When a soft byte limit is set, the [Highlighter] re-encodes the same
// span sequence at descending fidelity levels until the output fits.
// The limit bounds decoration, never content: if even unstyled output
// is too large, it is returned anyway.
package highlight
