package highlight

import (
	"errors"

	"braces.dev/errtrace"

	"github.com/frozolotl/typst-ansi-hl/internal/syntax"
)

// ErrInvariant reports a syntax tree whose node ranges do not
// partition the source. This is a contract breach by the parser,
// not a user input error.
var ErrInvariant = errors.New("syntax tree does not partition the source")

// categoryOf maps a node kind to its highlight category.
// The second result is false for kinds with no category of their own;
// their spans inherit from the nearest categorized ancestor.
func categoryOf(k syntax.Kind) (Category, bool) {
	switch k {
	case syntax.KindLineComment, syntax.KindBlockComment:
		return CategoryComment, true
	case syntax.KindPunct:
		return CategoryPunctuation, true
	case syntax.KindEscape, syntax.KindShorthand:
		return CategoryEscape, true
	case syntax.KindStrong:
		return CategoryStrong, true
	case syntax.KindEmph:
		return CategoryEmph, true
	case syntax.KindLink:
		return CategoryLink, true
	case syntax.KindRaw, syntax.KindRawDelim, syntax.KindRawLang, syntax.KindRawInner:
		return CategoryRaw, true
	case syntax.KindLabel:
		return CategoryLabel, true
	case syntax.KindRef:
		return CategoryRef, true
	case syntax.KindHeading:
		return CategoryHeading, true
	case syntax.KindListMarker, syntax.KindEnumMarker:
		return CategoryListMarker, true
	case syntax.KindTermMarker:
		return CategoryListTerm, true
	case syntax.KindDollar:
		return CategoryMathDelimiter, true
	case syntax.KindMathOperator:
		return CategoryMathOperator, true
	case syntax.KindKeyword:
		return CategoryKeyword, true
	case syntax.KindOperator:
		return CategoryOperator, true
	case syntax.KindNumber:
		return CategoryNumber, true
	case syntax.KindString:
		return CategoryString, true
	case syntax.KindFuncIdent:
		return CategoryFunction, true
	case syntax.KindHash, syntax.KindIdent:
		return CategoryInterpolated, true
	case syntax.KindError:
		return CategoryError, true
	default:
		// Text, Space, containers, and any future kinds
		// inherit from their surroundings.
		return CategoryPlain, false
	}
}

// extractSpans flattens the tree into the ordered, contiguous span
// sequence the encoder consumes. The tree is walked exactly once per
// highlighting request, regardless of how many encode passes follow.
func extractSpans(root *syntax.Node, src string) ([]Span, error) {
	e := extractor{src: src}
	e.walk(root, CategoryPlain)
	if e.off != len(src) {
		return nil, errtrace.Errorf(
			"%w: tree covers %d of %d bytes", ErrInvariant, e.off, len(src))
	}
	return e.spans, nil
}

type extractor struct {
	src   string
	off   int
	spans []Span
}

func (e *extractor) walk(n *syntax.Node, inherited Category) {
	cat := inherited
	if c, ok := categoryOf(n.Kind()); ok {
		cat = c
	}

	if n.Kind() == syntax.KindRaw {
		e.rawNode(n)
		return
	}

	if n.Leaf() {
		// Zero-width leaves mark recovery points; they fill no bytes.
		e.emit(n.Len(), cat)
		return
	}
	for _, child := range n.Children() {
		e.walk(child, cat)
	}
}

// rawNode emits spans for a raw element.
// Fences and language tags render as raw text;
// the inner content of a tagged block is sub-highlighted
// with the lexer for that language, when one is known.
func (e *extractor) rawNode(n *syntax.Node) {
	var lang string
	for _, child := range n.Children() {
		if child.Kind() == syntax.KindRawLang {
			lang = child.Text()
		}
	}
	for _, child := range n.Children() {
		if child.Kind() == syntax.KindRawInner {
			for _, tok := range rawTokens(lang, child.Text()) {
				e.emit(tok.length, tok.category)
			}
			continue
		}
		e.emit(child.Len(), CategoryRaw)
	}
}

// emit appends an n-byte span at the current offset,
// merging it into the previous span when the category matches.
func (e *extractor) emit(n int, cat Category) {
	if n == 0 {
		return
	}
	start := e.off
	e.off += n
	if len(e.spans) > 0 {
		last := &e.spans[len(e.spans)-1]
		if last.End == start && last.Category == cat {
			last.End = e.off
			return
		}
	}
	e.spans = append(e.spans, Span{Start: start, End: e.off, Category: cat})
}
