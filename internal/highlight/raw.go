package highlight

import (
	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// rawToken is a run of raw-block content with its category.
type rawToken struct {
	length   int
	category Category
}

// rawTokens sub-highlights the inner text of a raw block tagged with a
// language, using the Chroma lexer for that language. Unknown
// languages, lexing failures, and token streams that do not cover the
// text exactly all fall back to a single raw-colored run.
func rawTokens(lang, text string) []rawToken {
	if text == "" {
		return nil
	}
	plain := []rawToken{{length: len(text), category: CategoryRaw}}
	if lang == "" {
		return plain
	}

	lexer := lexers.Get(lang)
	if lexer == nil {
		return plain
	}
	it, err := chroma.Coalesce(lexer).Tokenise(nil, text)
	if err != nil {
		return plain
	}

	var toks []rawToken
	total := 0
	for _, t := range it.Tokens() {
		total += len(t.Value)
		toks = append(toks, rawToken{
			length:   len(t.Value),
			category: categoryOfToken(t.Type),
		})
	}
	if total != len(text) {
		// The lexer dropped or synthesized bytes; don't trust it.
		return plain
	}
	return toks
}

// categoryOfToken projects Chroma's token taxonomy onto ours.
func categoryOfToken(t chroma.TokenType) Category {
	switch {
	case t.InCategory(chroma.Comment):
		return CategoryComment
	case t.InCategory(chroma.Keyword):
		return CategoryKeyword
	case t.InSubCategory(chroma.LiteralString):
		return CategoryString
	case t.InSubCategory(chroma.LiteralNumber):
		return CategoryNumber
	case t == chroma.NameFunction || t == chroma.NameFunctionMagic:
		return CategoryFunction
	case t.InCategory(chroma.Operator):
		return CategoryOperator
	case t.InCategory(chroma.Punctuation):
		return CategoryPunctuation
	default:
		return CategoryRaw
	}
}
