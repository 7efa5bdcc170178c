package sqltoken

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tokenize(t *testing.T, input string, flags Flags) []Token {
	t.Helper()
	s := NewState([]byte(input), flags)
	var out []Token
	for Tokenize(s) {
		out = append(out, s.Current)
	}
	return out
}

func TestTokenizeBasicSelect(t *testing.T) {
	toks := tokenize(t, "SELECT * FROM users WHERE id = 1", 0)
	var types []Type
	for _, tok := range toks {
		types = append(types, tok.Type)
	}
	assert.NotEmpty(t, types)
	assert.Equal(t, Operator, toks[1].Type) // '*'
}

func TestTokenizeStringLiteral(t *testing.T) {
	toks := tokenize(t, "'it''s a test'", 0)
	if assert.Len(t, toks, 1) {
		assert.Equal(t, String, toks[0].Type)
		assert.Equal(t, byte('\''), toks[0].StrOpen)
		assert.Equal(t, byte('\''), toks[0].StrClose)
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	toks := tokenize(t, "'abc", 0)
	if assert.Len(t, toks, 1) {
		assert.Equal(t, String, toks[0].Type)
		assert.Equal(t, byte(0), toks[0].StrClose)
	}
}

func TestTokenizeInitialQuotedContext(t *testing.T) {
	toks := tokenize(t, "abc' OR 1=1 -- ", QuoteSingle)
	if assert.NotEmpty(t, toks) {
		assert.Equal(t, String, toks[0].Type)
		assert.Equal(t, byte('\''), toks[0].StrOpen)
	}
}

func TestTokenizeDashDashComment(t *testing.T) {
	toks := tokenize(t, "SELECT 1 -- drop everything", 0)
	last := toks[len(toks)-1]
	assert.Equal(t, Comment, last.Type)
}

func TestTokenizeCStyleCommentEvilWhenNested(t *testing.T) {
	toks := tokenize(t, "/* outer /* inner */ */", 0)
	assert.Equal(t, Evil, toks[0].Type)
}

func TestTokenizeNumberForms(t *testing.T) {
	cases := map[string]Type{
		"123":     Number,
		"1.5":     Number,
		".5":      Number,
		"0x1F":    Number,
		"0b101":   Number,
		"1e10":    Number,
		"1.5e-3":  Number,
	}
	for in, want := range cases {
		toks := tokenize(t, in, 0)
		if assert.NotEmpty(t, toks, "input %q", in) {
			assert.Equal(t, want, toks[0].Type, "input %q", in)
		}
	}
}

func TestTokenizeLoneDot(t *testing.T) {
	toks := tokenize(t, ".", 0)
	if assert.Len(t, toks, 1) {
		assert.Equal(t, Dot, toks[0].Type)
	}
}

func TestTokenizeBracketedIdentifier(t *testing.T) {
	toks := tokenize(t, "[my column]", 0)
	if assert.Len(t, toks, 1) {
		assert.Equal(t, Bareword, toks[0].Type)
		assert.Equal(t, "[my column]", toks[0].ValString())
	}
}

func TestTokenizeVariable(t *testing.T) {
	toks := tokenize(t, "@@version", 0)
	if assert.Len(t, toks, 1) {
		assert.Equal(t, Variable, toks[0].Type)
		assert.Equal(t, 2, toks[0].Count)
	}
}

func TestTokenizeDollarQuoted(t *testing.T) {
	toks := tokenize(t, "$tag$hello world$tag$", 0)
	if assert.Len(t, toks, 1) {
		assert.Equal(t, String, toks[0].Type)
		assert.Equal(t, "hello world", toks[0].ValString())
	}
}

func TestTokenizeMoneyLiteral(t *testing.T) {
	toks := tokenize(t, "$123.45", 0)
	if assert.Len(t, toks, 1) {
		assert.Equal(t, Number, toks[0].Type)
	}
}
