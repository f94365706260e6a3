package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/frozolotl/typst-ansi-hl/internal/syntax"
)

func extractFor(t testing.TB, src string, mode syntax.Mode) []Span {
	t.Helper()

	spans, err := extractSpans(syntax.Parse(src, mode), src)
	require.NoError(t, err)
	return spans
}

func TestExtractSpans_categories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give string
		mode syntax.Mode
		want []Span
	}{
		{
			desc: "plain text merges into one span",
			give: "word another word",
			mode: syntax.ModeMarkup,
			want: []Span{{0, 17, CategoryPlain}},
		},
		{
			desc: "heading spans the whole line",
			give: "= H\nrest",
			mode: syntax.ModeMarkup,
			want: []Span{
				{0, 3, CategoryHeading},
				{3, 8, CategoryPlain},
			},
		},
		{
			desc: "strong absorbs its markers",
			give: "a *b* c",
			mode: syntax.ModeMarkup,
			want: []Span{
				{0, 2, CategoryPlain},
				{2, 5, CategoryStrong},
				{5, 7, CategoryPlain},
			},
		},
		{
			desc: "zero-width recovery leaves are skipped",
			give: "*x",
			mode: syntax.ModeMarkup,
			want: []Span{{0, 2, CategoryStrong}},
		},
		{
			desc: "code keywords and strings",
			give: `let x = "s"`,
			mode: syntax.ModeCode,
			want: []Span{
				{0, 3, CategoryKeyword},
				{3, 4, CategoryPlain},
				{4, 5, CategoryInterpolated},
				{5, 6, CategoryPlain},
				{6, 7, CategoryOperator},
				{7, 8, CategoryPlain},
				{8, 11, CategoryString},
			},
		},
		{
			desc: "untagged raw block stays raw",
			give: "`code`",
			mode: syntax.ModeMarkup,
			want: []Span{{0, 6, CategoryRaw}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, extractFor(t, tt.give, tt.mode))
		})
	}
}

func TestExtractSpans_rawSubLanguage(t *testing.T) {
	t.Parallel()

	src := "```python\nx = 1\n```"
	spans := extractFor(t, src, syntax.ModeMarkup)

	cats := make(map[Category]bool)
	for _, sp := range spans {
		cats[sp.Category] = true
	}
	assert.True(t, cats[CategoryOperator], "expected an operator span from the python lexer")
	assert.True(t, cats[CategoryNumber], "expected a number span from the python lexer")
	assert.True(t, cats[CategoryRaw], "fences must stay raw")
}

func TestExtractSpans_rawUnknownLanguage(t *testing.T) {
	t.Parallel()

	src := "```nosuchlanguage\nhello\n```"
	spans := extractFor(t, src, syntax.ModeMarkup)
	assert.Equal(t, []Span{{0, len(src), CategoryRaw}}, spans)
}

func TestExtractSpans_invariantViolation(t *testing.T) {
	t.Parallel()

	// A tree over different source text cannot partition it.
	root := syntax.Parse("abc", syntax.ModeMarkup)
	_, err := extractSpans(root, "abcd")
	assert.ErrorIs(t, err, ErrInvariant)
}

// The spans partition [0, len(src)) exactly:
// ordered, contiguous, non-empty.
func TestExtractSpans_partition(t *testing.T) {
	t.Parallel()

	alphabet := []rune("abcz ABC\n\t123*_`#$\\<>@~-=/.\"[]()+h:tps")
	modes := []syntax.Mode{syntax.ModeMarkup, syntax.ModeCode, syntax.ModeMath}

	rapid.Check(t, func(rt *rapid.T) {
		src := rapid.StringOfN(rapid.RuneFrom(alphabet), 0, 300, -1).Draw(rt, "src")
		mode := rapid.SampledFrom(modes).Draw(rt, "mode")

		spans, err := extractSpans(syntax.Parse(src, mode), src)
		require.NoError(rt, err)

		off := 0
		for _, sp := range spans {
			require.Equal(rt, off, sp.Start, "gap or overlap at %d", off)
			require.Greater(rt, sp.End, sp.Start, "empty span at %d", off)
			off = sp.End
		}
		require.Equal(rt, len(src), off, "spans must cover the source")
	})
}
