package highlight

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Style is the theme-defined appearance of a category
// before any fidelity projection.
// A nil Foreground keeps the terminal's default color.
type Style struct {
	Foreground    color.Color
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
}

// Theme maps categories to truecolor styles.
// Categories absent from the theme render unstyled.
// Lower-fidelity colors are always derived from these truecolor
// values by projection, never looked up separately.
type Theme map[Category]Style

// DefaultTheme returns the built-in theme.
// Its hues follow the classic terminal palette so that projection
// down to 16 colors lands where users expect.
func DefaultTheme() Theme {
	var (
		gray    = hex("#7f7f7f")
		red     = hex("#cd0000")
		green   = hex("#00cd00")
		yellow  = hex("#cdcd00")
		blue    = hex("#0a64ed")
		magenta = hex("#cd00cd")
		cyan    = hex("#00cdcd")
		white   = hex("#e5e5e5")
	)
	return Theme{
		CategoryComment:       {Foreground: gray},
		CategoryEscape:        {Foreground: cyan},
		CategoryStrong:        {Foreground: yellow, Bold: true},
		CategoryEmph:          {Foreground: yellow, Italic: true},
		CategoryLink:          {Foreground: blue, Underline: true},
		CategoryRaw:           {Foreground: white},
		CategoryLabel:         {Foreground: blue, Underline: true},
		CategoryRef:           {Foreground: blue, Underline: true},
		CategoryHeading:       {Foreground: cyan, Bold: true},
		CategoryListMarker:    {Foreground: cyan},
		CategoryListTerm:      {Foreground: cyan},
		CategoryMathDelimiter: {Foreground: cyan},
		CategoryMathOperator:  {Foreground: cyan},
		CategoryKeyword:       {Foreground: magenta},
		CategoryOperator:      {Foreground: cyan},
		CategoryNumber:        {Foreground: yellow},
		CategoryString:        {Foreground: green},
		CategoryFunction:      {Foreground: blue, Italic: true},
		CategoryInterpolated:  {Foreground: white},
		CategoryError:         {Foreground: red},
	}
}

// hex parses a theme color, panicking on malformed input.
// Theme tables are compile-time constants; a bad value is a bug.
func hex(s string) color.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("bad theme color %q: %v", s, err))
	}
	return c
}
