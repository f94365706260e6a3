package syntax

// Kind discriminates syntax tree nodes.
//
// The set covers the practical subset of Typst's grammar
// that this highlighter distinguishes.
// Unrecognized constructs parse as KindText leaves.
type Kind uint8

const (
	// Container kinds.

	KindMarkup   Kind = iota // top-level markup
	KindCode                 // top-level code
	KindMath                 // top-level math
	KindHeading              // heading line, marker included
	KindStrong               // *strong* emphasis
	KindEmph                 // _emphasis_
	KindEquation             // $inline math$
	KindRaw                  // `raw` or ```fenced raw```

	// Markup leaves.

	KindText          // plain prose
	KindSpace         // whitespace, possibly spanning newlines
	KindLineComment   // // comment
	KindBlockComment  // /* comment */
	KindHeadingMarker // leading '=' run of a heading
	KindStar          // '*' delimiter of strong
	KindUnderscore    // '_' delimiter of emph
	KindRawDelim      // backtick fence of a raw node
	KindRawLang       // language tag after a raw fence
	KindRawInner      // raw content between fences
	KindLabel         // <label>
	KindRef           // @reference
	KindLink          // http(s) URL
	KindEscape        // \escape
	KindShorthand     // ~, --, ---
	KindListMarker    // '-' bullet
	KindEnumMarker    // '+' or '1.' enumeration
	KindTermMarker    // '/' term list

	// Code leaves.

	KindHash      // '#' introducing code in markup
	KindIdent     // identifier
	KindFuncIdent // identifier called as a function
	KindKeyword   // let, if, none, true, ...
	KindNumber    // number literal, unit suffixes included
	KindString    // "string literal"
	KindOperator  // +, ==, =>, ...
	KindPunct     // brackets, commas, semicolons

	// Math leaves.

	KindDollar       // '$' equation delimiter
	KindMathIdent    // identifier in math
	KindMathOperator // operator or symbol in math

	// KindError marks recovery points, usually zero-width.
	KindError
)

var kindNames = [...]string{
	KindMarkup:        "Markup",
	KindCode:          "Code",
	KindMath:          "Math",
	KindHeading:       "Heading",
	KindStrong:        "Strong",
	KindEmph:          "Emph",
	KindEquation:      "Equation",
	KindRaw:           "Raw",
	KindText:          "Text",
	KindSpace:         "Space",
	KindLineComment:   "LineComment",
	KindBlockComment:  "BlockComment",
	KindHeadingMarker: "HeadingMarker",
	KindStar:          "Star",
	KindUnderscore:    "Underscore",
	KindRawDelim:      "RawDelim",
	KindRawLang:       "RawLang",
	KindRawInner:      "RawInner",
	KindLabel:         "Label",
	KindRef:           "Ref",
	KindLink:          "Link",
	KindEscape:        "Escape",
	KindShorthand:     "Shorthand",
	KindListMarker:    "ListMarker",
	KindEnumMarker:    "EnumMarker",
	KindTermMarker:    "TermMarker",
	KindHash:          "Hash",
	KindIdent:         "Ident",
	KindFuncIdent:     "FuncIdent",
	KindKeyword:       "Keyword",
	KindNumber:        "Number",
	KindString:        "String",
	KindOperator:      "Operator",
	KindPunct:         "Punct",
	KindDollar:        "Dollar",
	KindMathIdent:     "MathIdent",
	KindMathOperator:  "MathOperator",
	KindError:         "Error",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}
