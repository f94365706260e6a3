package highlight

// Category is a semantic highlight class, independent of presentation.
type Category uint8

const (
	CategoryPlain Category = iota
	CategoryComment
	CategoryPunctuation
	CategoryEscape
	CategoryStrong
	CategoryEmph
	CategoryLink
	CategoryRaw
	CategoryLabel
	CategoryRef
	CategoryHeading
	CategoryListMarker
	CategoryListTerm
	CategoryMathDelimiter
	CategoryMathOperator
	CategoryKeyword
	CategoryOperator
	CategoryNumber
	CategoryString
	CategoryFunction
	CategoryInterpolated
	CategoryError

	numCategories
)

var categoryNames = [numCategories]string{
	CategoryPlain:         "plain",
	CategoryComment:       "comment",
	CategoryPunctuation:   "punctuation",
	CategoryEscape:        "escape",
	CategoryStrong:        "strong",
	CategoryEmph:          "emph",
	CategoryLink:          "link",
	CategoryRaw:           "raw",
	CategoryLabel:         "label",
	CategoryRef:           "ref",
	CategoryHeading:       "heading",
	CategoryListMarker:    "list-marker",
	CategoryListTerm:      "list-term",
	CategoryMathDelimiter: "math-delimiter",
	CategoryMathOperator:  "math-operator",
	CategoryKeyword:       "keyword",
	CategoryOperator:      "operator",
	CategoryNumber:        "number",
	CategoryString:        "string",
	CategoryFunction:      "function",
	CategoryInterpolated:  "interpolated",
	CategoryError:         "error",
}

func (c Category) String() string {
	if c < numCategories {
		return categoryNames[c]
	}
	return "plain"
}

// Span assigns a category to a contiguous byte range of the source.
//
// A valid span sequence is ordered by Start, has no gaps or overlaps,
// contains no empty spans, and covers the source exactly.
type Span struct {
	Start, End int
	Category   Category
}
