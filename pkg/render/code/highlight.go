package code

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Token is a run of text drawn in one colour.
type Token struct {
	Text  string
	Color string
}

// Highlight splits code into lines of coloured tokens. The result always has
// exactly one entry per line of code; an empty line has no tokens.
func Highlight(code, languageID, themeID string) [][]Token {
	lang := LanguageOrDefault(languageID)
	colors := ThemeOrDefault(themeID).Colors
	n := len(strings.Split(code, "\n"))

	lexer := lexers.Get(lang.Label)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return plain(code, colors.Default)
	}

	out := make([][]Token, 0, n)
	for _, line := range chroma.SplitTokensIntoLines(it.Tokens()) {
		var row []Token
		for _, tok := range line {
			text := strings.TrimSuffix(tok.Value, "\n")
			if text == "" {
				continue
			}
			row = append(row, Token{Text: text, Color: colors.For(tok.Type)})
		}
		out = append(out, row)
	}

	// Lexers that force a trailing newline yield an extra empty line.
	for len(out) > n {
		out = out[:len(out)-1]
	}
	for len(out) < n {
		out = append(out, nil)
	}
	return out
}

func plain(code, color string) [][]Token {
	lines := strings.Split(code, "\n")
	out := make([][]Token, len(lines))
	for i, l := range lines {
		if l != "" {
			out[i] = []Token{{Text: l, Color: color}}
		}
	}
	return out
}

// For returns the colour of a chroma token type.
func (c Colors) For(t chroma.TokenType) string {
	switch {
	case t == chroma.KeywordType || t == chroma.NameClass || t == chroma.NameBuiltin:
		return c.Type
	case t.InCategory(chroma.Keyword):
		return c.Keyword
	case t.InCategory(chroma.Comment):
		return c.Comment
	case t.InSubCategory(chroma.LiteralString):
		return c.String
	case t.InSubCategory(chroma.LiteralNumber):
		return c.Number
	case t == chroma.OperatorWord:
		return c.Keyword
	case t.InCategory(chroma.Operator):
		return c.Operator
	case t == chroma.Punctuation:
		return c.Punctuation
	case t == chroma.NameFunction || t == chroma.NameFunctionMagic:
		return c.Function
	case t == chroma.NameTag:
		return c.Tag
	case t == chroma.NameAttribute:
		return c.Attribute
	case t == chroma.NameProperty:
		return c.Property
	case t == chroma.NameConstant || t == chroma.NameBuiltinPseudo:
		return c.Keyword
	case t.InCategory(chroma.Name):
		return c.Variable
	}
	return c.Default
}
