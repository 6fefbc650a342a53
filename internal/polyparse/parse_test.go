package polyparse_test

import (
	"testing"

	"github.com/agbru/algebra/internal/polyparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerms(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  []polyparse.Term
	}{
		{"empty", "", nil},
		{"blank", "  \t", nil},
		{"constant", "-7", []polyparse.Term{{Neg: true, Coef: "7"}}},
		{"full", "2*x^2+5*x-7", []polyparse.Term{
			{Coef: "2", HasVar: true, Exp: "2"},
			{Coef: "5", HasVar: true},
			{Neg: true, Coef: "7"},
		}},
		{"unit coefficients", "x^3 - x", []polyparse.Term{
			{HasVar: true, Exp: "3"},
			{Neg: true, HasVar: true},
		}},
		{"negative exponent", "x^-1+x^(2)", []polyparse.Term{
			{HasVar: true, Exp: "-1"},
			{HasVar: true, Exp: "2"},
		}},
		{"parenthesised coefficient", "(3/2)*x-(y+1)*x^2", []polyparse.Term{
			{Coef: "3/2", HasVar: true},
			{Neg: true, Coef: "y+1", HasVar: true, Exp: "2"},
		}},
		{"wrapped", "((x+1))", []polyparse.Term{
			{HasVar: true},
			{Coef: "1"},
		}},
		{"rational word", "-1/3*x", []polyparse.Term{{Neg: true, Coef: "1/3", HasVar: true}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := polyparse.Terms(tc.input, "x")
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTermsErrors(t *testing.T) {
	t.Parallel()
	for _, input := range []string{"2*", "2*y", "x^", "2 x", "(x+1", "x+)", "+", "()*x", "--x"} {
		_, err := polyparse.Terms(input, "x")
		var se *polyparse.SyntaxError
		assert.ErrorAs(t, err, &se, input)
	}
}

func TestSyntaxErrorOffsetInsideParentheses(t *testing.T) {
	t.Parallel()
	_, err := polyparse.Terms("(x+*)", "x")
	var se *polyparse.SyntaxError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 3, se.Offset)
}

func TestIsList(t *testing.T) {
	t.Parallel()
	assert.True(t, polyparse.IsList("((1,2),(3,4))"))
	assert.True(t, polyparse.IsList("()"))
	assert.True(t, polyparse.IsList(" ( (-7, 0) ) "))
	assert.False(t, polyparse.IsList("(x+1)"))
	assert.False(t, polyparse.IsList("((x+1))"))
	assert.False(t, polyparse.IsList("(1,2)*x"))
}

func TestListTerms(t *testing.T) {
	t.Parallel()
	got, err := polyparse.ListTerms("((-7,0),((y+1),1),(2, 2))")
	require.NoError(t, err)
	assert.Equal(t, []polyparse.Pair{
		{Coef: "-7", Deg: "0"},
		{Coef: "(y+1)", Deg: "1"},
		{Coef: "2", Deg: "2"},
	}, got)

	got, err = polyparse.ListTerms("()")
	require.NoError(t, err)
	assert.Empty(t, got)

	for _, bad := range []string{"((1))", "((1,2,3))", "((1,2)(3,4))", "((,2))", "(1,2)"} {
		_, err := polyparse.ListTerms(bad)
		assert.Error(t, err, bad)
	}
}

func TestLexerTokens(t *testing.T) {
	t.Parallel()
	tokens, err := polyparse.Lex([]rune("2*x^-1 + (a,b)"))
	require.NoError(t, err)
	kinds := make([]uint, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []uint{
		polyparse.WORD, polyparse.STAR, polyparse.WORD, polyparse.CARET, polyparse.MINUS, polyparse.WORD,
		polyparse.PLUS, polyparse.LPAREN, polyparse.WORD, polyparse.COMMA, polyparse.WORD, polyparse.RPAREN,
	}, kinds)
}

func FuzzTerms(f *testing.F) {
	for _, seed := range []string{"2*x^2+5*x-7", "((1,2))", "x^-3", "(x"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, input string) {
		_, _ = polyparse.Terms(input, "x")
		if polyparse.IsList(input) {
			_, _ = polyparse.ListTerms(input)
		}
	})
}
