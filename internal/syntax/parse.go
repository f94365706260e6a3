package syntax

import (
	"strings"
	"unicode/utf8"
)

// Parse parses src under the given grammar mode.
// It never fails: malformed input degrades to text leaves,
// and unterminated constructs close with zero-width error leaves.
func Parse(src string, mode Mode) *Node {
	p := &parser{src: src}
	switch mode {
	case ModeCode:
		var nodes []*Node
		for !p.eof() {
			nodes = append(nodes, p.codeToken(false)...)
		}
		return NewInner(KindCode, nodes...)
	case ModeMath:
		var nodes []*Node
		for !p.eof() {
			nodes = append(nodes, p.mathToken())
		}
		return NewInner(KindMath, nodes...)
	default:
		return NewInner(KindMarkup, p.markup(0, false)...)
	}
}

// parser is a forward-only cursor over the source.
// Every production consumes at least one byte,
// except the zero-width error leaves emitted at recovery points.
type parser struct {
	src string
	pos int
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) peekAt(off int) byte {
	if p.pos+off >= len(p.src) {
		return 0
	}
	return p.src[p.pos+off]
}

// markup parses markup content.
// It stops before term (when non-zero), before a newline when inline,
// or at the end of input, whichever comes first.
func (p *parser) markup(term byte, inline bool) []*Node {
	var nodes []*Node
	for !p.eof() {
		c := p.peek()
		switch {
		case term != 0 && c == term:
			return nodes
		case inline && c == '\n':
			return nodes
		case isSpace(c):
			nodes = append(nodes, p.space(inline))
		case c == '/' && p.peekAt(1) == '/':
			nodes = append(nodes, p.lineComment())
		case c == '/' && p.peekAt(1) == '*':
			nodes = append(nodes, p.blockComment())
		case !inline && c == '=' && p.atLineStart() && p.headingAhead():
			nodes = append(nodes, p.heading())
		case p.atLineStart() && c == '-' && p.peekAt(1) == ' ':
			nodes = append(nodes, p.take(KindListMarker, 1))
		case p.atLineStart() && c == '+' && p.peekAt(1) == ' ':
			nodes = append(nodes, p.take(KindEnumMarker, 1))
		case p.atLineStart() && c == '/' && p.peekAt(1) == ' ':
			nodes = append(nodes, p.take(KindTermMarker, 1))
		case p.atLineStart() && isDigit(c) && p.enumAhead():
			nodes = append(nodes, p.enumMarker())
		case c == '*':
			nodes = append(nodes, p.delimited(KindStrong, KindStar, '*', inline))
		case c == '_':
			nodes = append(nodes, p.delimited(KindEmph, KindUnderscore, '_', inline))
		case c == '`':
			nodes = append(nodes, p.raw())
		case c == '#':
			nodes = append(nodes, p.hashExpr()...)
		case c == '$':
			nodes = append(nodes, p.equation())
		case c == '\\':
			nodes = append(nodes, p.escape())
		case c == '<' && p.labelAhead():
			nodes = append(nodes, p.label())
		case c == '@' && isIdentStart(p.peekAt(1)):
			nodes = append(nodes, p.ref())
		case c == '~':
			nodes = append(nodes, p.take(KindShorthand, 1))
		case c == '-' && p.peekAt(1) == '-':
			if p.peekAt(2) == '-' {
				nodes = append(nodes, p.take(KindShorthand, 3))
			} else {
				nodes = append(nodes, p.take(KindShorthand, 2))
			}
		case p.linkAhead():
			nodes = append(nodes, p.link())
		default:
			nodes = append(nodes, p.text(term))
		}
	}
	return nodes
}

// take consumes n bytes into a leaf of the given kind.
func (p *parser) take(kind Kind, n int) *Node {
	leaf := NewLeaf(kind, p.src[p.pos:p.pos+n])
	p.pos += n
	return leaf
}

func (p *parser) space(inline bool) *Node {
	start := p.pos
	for !p.eof() {
		c := p.peek()
		if c == ' ' || c == '\t' || c == '\r' || (c == '\n' && !inline) {
			p.pos++
			continue
		}
		break
	}
	return NewLeaf(KindSpace, p.src[start:p.pos])
}

// atLineStart reports whether only spaces and tabs
// separate the cursor from the start of its line.
func (p *parser) atLineStart() bool {
	for i := p.pos - 1; i >= 0; i-- {
		switch p.src[i] {
		case ' ', '\t':
		case '\n':
			return true
		default:
			return false
		}
	}
	return true
}

func (p *parser) headingAhead() bool {
	i := p.pos
	for i < len(p.src) && p.src[i] == '=' {
		i++
	}
	return i == len(p.src) || p.src[i] == ' ' || p.src[i] == '\t' || p.src[i] == '\n'
}

func (p *parser) heading() *Node {
	start := p.pos
	for !p.eof() && p.peek() == '=' {
		p.pos++
	}
	children := []*Node{NewLeaf(KindHeadingMarker, p.src[start:p.pos])}
	children = append(children, p.markup(0, true)...)
	return NewInner(KindHeading, children...)
}

func (p *parser) enumAhead() bool {
	i := p.pos
	for i < len(p.src) && isDigit(p.src[i]) {
		i++
	}
	return i < len(p.src)-1 && p.src[i] == '.' && p.src[i+1] == ' '
}

func (p *parser) enumMarker() *Node {
	start := p.pos
	for !p.eof() && isDigit(p.peek()) {
		p.pos++
	}
	p.pos++ // '.'
	return NewLeaf(KindEnumMarker, p.src[start:p.pos])
}

// delimited parses *strong* and _emph_ spans.
// A span left open at its boundary closes with a zero-width error leaf.
func (p *parser) delimited(kind, mark Kind, delim byte, inline bool) *Node {
	children := []*Node{p.take(mark, 1)}
	children = append(children, p.markup(delim, inline)...)
	if !p.eof() && p.peek() == delim {
		children = append(children, p.take(mark, 1))
	} else {
		children = append(children, NewLeaf(KindError, ""))
	}
	return NewInner(kind, children...)
}

func (p *parser) raw() *Node {
	start := p.pos
	for !p.eof() && p.peek() == '`' {
		p.pos++
	}
	ticks := p.pos - start
	delim := p.src[start:p.pos]

	if ticks == 2 {
		// `` is an empty inline raw element.
		return NewInner(KindRaw, NewLeaf(KindRawDelim, delim))
	}

	children := []*Node{NewLeaf(KindRawDelim, delim)}
	if ticks >= 3 && isIdentStart(p.peek()) {
		children = append(children, p.rawLang())
	}

	idx := strings.Index(p.src[p.pos:], delim)
	if idx < 0 {
		if !p.eof() {
			children = append(children, p.take(KindRawInner, len(p.src)-p.pos))
		}
		children = append(children, NewLeaf(KindError, ""))
		return NewInner(KindRaw, children...)
	}
	if idx > 0 {
		children = append(children, p.take(KindRawInner, idx))
	}
	// Consume the whole closing backtick run.
	end := p.pos
	for end < len(p.src) && p.src[end] == '`' {
		end++
	}
	children = append(children, p.take(KindRawDelim, end-p.pos))
	return NewInner(KindRaw, children...)
}

func (p *parser) rawLang() *Node {
	start := p.pos
	for !p.eof() && isIdentByte(p.peek()) {
		p.pos++
	}
	return NewLeaf(KindRawLang, p.src[start:p.pos])
}

// hashExpr parses a '#'-introduced code expression embedded in markup.
// Keyword expressions continue to the end of the line;
// function calls continue through their argument groups.
func (p *parser) hashExpr() []*Node {
	nodes := []*Node{p.take(KindHash, 1)}
	if !isIdentStart(p.peek()) {
		return nodes
	}
	name := p.readIdent()
	switch {
	case isKeyword(name):
		nodes = append(nodes, NewLeaf(KindKeyword, name))
		nodes = append(nodes, p.codeLine()...)
	case p.peek() == '(' || p.peek() == '[':
		nodes = append(nodes, NewLeaf(KindFuncIdent, name))
		if p.peek() == '(' {
			nodes = append(nodes, p.parenGroup()...)
		}
		for p.peek() == '[' {
			nodes = append(nodes, p.contentBlock()...)
		}
	default:
		nodes = append(nodes, NewLeaf(KindIdent, name))
	}
	return nodes
}

// codeLine tokenizes code up to, but not including, the next newline.
func (p *parser) codeLine() []*Node {
	var nodes []*Node
	for !p.eof() && p.peek() != '\n' {
		nodes = append(nodes, p.codeToken(true)...)
	}
	return nodes
}

// parenGroup tokenizes a parenthesized argument group, brackets included.
func (p *parser) parenGroup() []*Node {
	nodes := []*Node{p.take(KindPunct, 1)} // '('
	for !p.eof() {
		if p.peek() == ')' {
			return append(nodes, p.take(KindPunct, 1))
		}
		nodes = append(nodes, p.codeToken(false)...)
	}
	return append(nodes, NewLeaf(KindError, ""))
}

// contentBlock parses a bracketed markup argument.
func (p *parser) contentBlock() []*Node {
	nodes := []*Node{p.take(KindPunct, 1)} // '['
	nodes = append(nodes, p.markup(']', false)...)
	if !p.eof() && p.peek() == ']' {
		return append(nodes, p.take(KindPunct, 1))
	}
	return append(nodes, NewLeaf(KindError, ""))
}

const operatorBytes = "+-*/=<>!&|.%:;,?"

// codeToken consumes one code construct.
// It may return multiple nodes for nested groups.
func (p *parser) codeToken(stopNL bool) []*Node {
	c := p.peek()
	switch {
	case isSpace(c):
		if stopNL && c == '\n' {
			// The caller owns the newline.
			return nil
		}
		return []*Node{p.codeSpace(stopNL)}
	case c == '/' && p.peekAt(1) == '/':
		return []*Node{p.lineComment()}
	case c == '/' && p.peekAt(1) == '*':
		return []*Node{p.blockComment()}
	case c == '"':
		return p.codeString()
	case isDigit(c):
		return []*Node{p.number()}
	case isIdentStart(c):
		name := p.readIdent()
		switch {
		case isKeyword(name):
			return []*Node{NewLeaf(KindKeyword, name)}
		case p.peek() == '(' || p.peek() == '[':
			return []*Node{NewLeaf(KindFuncIdent, name)}
		default:
			return []*Node{NewLeaf(KindIdent, name)}
		}
	case c == '(':
		return p.parenGroup()
	case c == '[':
		return p.contentBlock()
	case c == '{' || c == '}' || c == ')' || c == ']':
		return []*Node{p.take(KindPunct, 1)}
	case c == '`':
		return []*Node{p.raw()}
	case c == '$':
		return []*Node{p.equation()}
	case c == '#':
		return []*Node{p.take(KindHash, 1)}
	case strings.IndexByte(operatorBytes, c) >= 0:
		start := p.pos
		for !p.eof() && strings.IndexByte(operatorBytes, p.peek()) >= 0 {
			if p.peek() == '/' && (p.peekAt(1) == '/' || p.peekAt(1) == '*') {
				break
			}
			p.pos++
		}
		kind := KindOperator
		if s := p.src[start:p.pos]; s == "," || s == ";" || s == ":" {
			kind = KindPunct
		}
		return []*Node{NewLeaf(kind, p.src[start:p.pos])}
	default:
		return []*Node{p.takeRune(KindText)}
	}
}

func (p *parser) codeSpace(stopNL bool) *Node {
	start := p.pos
	for !p.eof() && isSpace(p.peek()) {
		if stopNL && p.peek() == '\n' {
			break
		}
		p.pos++
	}
	return NewLeaf(KindSpace, p.src[start:p.pos])
}

// codeString parses a double-quoted string literal.
// An unterminated string runs to the end of its line.
func (p *parser) codeString() []*Node {
	start := p.pos
	p.pos++ // opening quote
	for !p.eof() {
		c := p.peek()
		if c == '\\' && p.pos+1 < len(p.src) {
			p.pos += 2
			continue
		}
		if c == '"' {
			p.pos++
			return []*Node{NewLeaf(KindString, p.src[start:p.pos])}
		}
		if c == '\n' {
			break
		}
		p.pos++
	}
	return []*Node{
		NewLeaf(KindString, p.src[start:p.pos]),
		NewLeaf(KindError, ""),
	}
}

func (p *parser) number() *Node {
	start := p.pos
	for !p.eof() && isDigit(p.peek()) {
		p.pos++
	}
	if p.peek() == '.' && isDigit(p.peekAt(1)) {
		p.pos++
		for !p.eof() && isDigit(p.peek()) {
			p.pos++
		}
	}
	// Unit suffixes such as 12pt, 1.5em, 50%.
	if p.peek() == '%' {
		p.pos++
	} else {
		for !p.eof() && isAlpha(p.peek()) {
			p.pos++
		}
	}
	return NewLeaf(KindNumber, p.src[start:p.pos])
}

func (p *parser) equation() *Node {
	children := []*Node{p.take(KindDollar, 1)}
	for !p.eof() && p.peek() != '$' {
		children = append(children, p.mathToken())
	}
	if !p.eof() {
		children = append(children, p.take(KindDollar, 1))
	} else {
		children = append(children, NewLeaf(KindError, ""))
	}
	return NewInner(KindEquation, children...)
}

func (p *parser) mathToken() *Node {
	c := p.peek()
	switch {
	case isSpace(c):
		start := p.pos
		for !p.eof() && isSpace(p.peek()) {
			p.pos++
		}
		return NewLeaf(KindSpace, p.src[start:p.pos])
	case c == '$':
		return p.take(KindDollar, 1)
	case c == '\\':
		return p.escape()
	case isDigit(c):
		start := p.pos
		for !p.eof() && isDigit(p.peek()) {
			p.pos++
		}
		if p.peek() == '.' && isDigit(p.peekAt(1)) {
			p.pos++
			for !p.eof() && isDigit(p.peek()) {
				p.pos++
			}
		}
		return NewLeaf(KindNumber, p.src[start:p.pos])
	case isAlpha(c):
		start := p.pos
		for !p.eof() && isAlpha(p.peek()) {
			p.pos++
		}
		return NewLeaf(KindMathIdent, p.src[start:p.pos])
	default:
		return p.takeRune(KindMathOperator)
	}
}

// escape parses \c, \u{...}, and trailing-backslash line breaks.
func (p *parser) escape() *Node {
	start := p.pos
	p.pos++ // backslash
	if p.eof() || p.peek() == '\n' {
		return NewLeaf(KindEscape, p.src[start:p.pos])
	}
	if p.peek() == 'u' && p.peekAt(1) == '{' {
		p.pos += 2
		for !p.eof() && isHexDigit(p.peek()) {
			p.pos++
		}
		if p.peek() == '}' {
			p.pos++
		}
		return NewLeaf(KindEscape, p.src[start:p.pos])
	}
	_, size := utf8.DecodeRuneInString(p.src[p.pos:])
	p.pos += size
	return NewLeaf(KindEscape, p.src[start:p.pos])
}

func (p *parser) labelAhead() bool {
	i := p.pos + 1
	for i < len(p.src) && isLabelByte(p.src[i]) {
		i++
	}
	return i > p.pos+1 && i < len(p.src) && p.src[i] == '>'
}

func (p *parser) label() *Node {
	start := p.pos
	p.pos++ // '<'
	for p.peek() != '>' {
		p.pos++
	}
	p.pos++ // '>'
	return NewLeaf(KindLabel, p.src[start:p.pos])
}

func (p *parser) ref() *Node {
	start := p.pos
	p.pos++ // '@'
	for !p.eof() && isLabelByte(p.peek()) {
		p.pos++
	}
	return NewLeaf(KindRef, p.src[start:p.pos])
}

func (p *parser) linkAhead() bool {
	rest := p.src[p.pos:]
	return strings.HasPrefix(rest, "http://") || strings.HasPrefix(rest, "https://")
}

func (p *parser) link() *Node {
	start := p.pos
	for !p.eof() {
		c := p.peek()
		if isSpace(c) || c == ']' || c == ')' {
			break
		}
		p.pos++
	}
	return NewLeaf(KindLink, p.src[start:p.pos])
}

func (p *parser) lineComment() *Node {
	start := p.pos
	if idx := strings.IndexByte(p.src[p.pos:], '\n'); idx >= 0 {
		p.pos += idx
	} else {
		p.pos = len(p.src)
	}
	return NewLeaf(KindLineComment, p.src[start:p.pos])
}

// blockComment parses a block comment, which may nest.
func (p *parser) blockComment() *Node {
	start := p.pos
	p.pos += 2
	depth := 1
	for !p.eof() && depth > 0 {
		switch {
		case p.peek() == '/' && p.peekAt(1) == '*':
			depth++
			p.pos += 2
		case p.peek() == '*' && p.peekAt(1) == '/':
			depth--
			p.pos += 2
		default:
			p.pos++
		}
	}
	return NewLeaf(KindBlockComment, p.src[start:p.pos])
}

// text consumes prose up to the next construct the grammar recognizes.
// It always consumes at least one rune.
func (p *parser) text(term byte) *Node {
	start := p.pos
	for !p.eof() {
		c := p.peek()
		if isSpace(c) || (term != 0 && c == term) {
			break
		}
		if strings.IndexByte("*_`#$\\<@~", c) >= 0 {
			break
		}
		if c == '/' && (p.peekAt(1) == '/' || p.peekAt(1) == '*') {
			break
		}
		if c == '-' && p.peekAt(1) == '-' {
			break
		}
		if c == 'h' && p.pos > start && p.linkAhead() {
			break
		}
		p.pos++
	}
	if p.pos == start {
		return p.takeRune(KindText)
	}
	return NewLeaf(KindText, p.src[start:p.pos])
}

func (p *parser) takeRune(kind Kind) *Node {
	_, size := utf8.DecodeRuneInString(p.src[p.pos:])
	if size == 0 {
		size = 1
	}
	return p.take(kind, size)
}

func (p *parser) readIdent() string {
	start := p.pos
	p.pos++
	for !p.eof() {
		c := p.peek()
		if isIdentByte(c) && c != '-' {
			p.pos++
			continue
		}
		// Hyphens join kebab-case identifiers only between words.
		if c == '-' && (isAlpha(p.peekAt(1)) || isDigit(p.peekAt(1))) {
			p.pos++
			continue
		}
		break
	}
	return p.src[start:p.pos]
}

var keywords = map[string]struct{}{
	"let": {}, "set": {}, "show": {}, "if": {}, "else": {}, "for": {},
	"while": {}, "in": {}, "not": {}, "and": {}, "or": {}, "return": {},
	"import": {}, "include": {}, "as": {}, "context": {},
	"none": {}, "auto": {}, "true": {}, "false": {},
}

func isKeyword(s string) bool {
	_, ok := keywords[s]
	return ok
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\r' || c == '\n' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isIdentStart(c byte) bool { return isAlpha(c) || c == '_' }

func isIdentByte(c byte) bool { return isAlpha(c) || isDigit(c) || c == '_' || c == '-' }

func isLabelByte(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '-' || c == '_' || c == ':' || c == '.'
}
