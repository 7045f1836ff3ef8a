package cnc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanToken(t *testing.T) {
	for _, tc := range []struct {
		in   string
		kind TokenKind
		text string
		rest string
	}{
		{"", TokenNone, "", ""},
		{"   \t", TokenNone, "", ""},
		{"42", TokenNumber, "42", ""},
		{"-5", TokenNumber, "-5", ""},
		{"+5", TokenNumber, "+5", ""},
		{"3.25", TokenNumber, "3.25", ""},
		{".5", TokenNumber, ".5", ""},
		{"2e3", TokenNumber, "2e3", ""},
		{"-1.5E-2", TokenNumber, "-1.5E-2", ""},
		{"(1,2)", TokenComplex, "(1,2)", ""},
		{"(1.5e-3, 2)", TokenComplex, "(1.5e-3, 2)", ""},
		{"(-1,-2) 3", TokenComplex, "(-1,-2)", " 3"},
		{"+", TokenOperator, "+", ""},
		{"-", TokenOperator, "-", ""},
		{"*", TokenOperator, "*", ""},
		{"/", TokenOperator, "/", ""},
		{"- 5", TokenOperator, "-", " 5"},
		{"sqrt", TokenWord, "sqrt", ""},
		{"e", TokenWord, "e", ""},
		{"xtoy 2", TokenWord, "xtoy", " 2"},
		{"  pi", TokenWord, "pi", ""},
		{"2 3 +", TokenNumber, "2", " 3 +"},
		{"3-2", TokenNumber, "3", "-2"},
		{"#!", TokenInvalid, "#!", ""},
		{"(1 2)", TokenInvalid, "(1 2)", ""},
	} {
		t.Run(tc.in, func(t *testing.T) {
			tok, rest := ScanToken(tc.in)
			assert.Equal(t, tc.kind, tok.Kind, "kind of %q", tc.in)
			assert.Equal(t, tc.text, tok.Text)
			assert.Equal(t, tc.rest, rest)
		})
	}
}

func TestScanLine(t *testing.T) {
	var kinds []TokenKind
	var texts []string
	rest := "2 (0,1) * pi quit"
	for {
		tok, tail := ScanToken(rest)
		if tok.Kind == TokenNone {
			break
		}
		kinds = append(kinds, tok.Kind)
		texts = append(texts, tok.Text)
		rest = tail
	}
	assert.Equal(t, []TokenKind{TokenNumber, TokenComplex, TokenOperator, TokenWord, TokenWord}, kinds)
	assert.Equal(t, []string{"2", "(0,1)", "*", "pi", "quit"}, texts)
}

func TestSplitComplex(t *testing.T) {
	re, im, err := splitComplex("(1.5,-2e4)")
	require.NoError(t, err)
	assert.Equal(t, "1.5", re)
	assert.Equal(t, "-2e4", im)

	_, _, err = splitComplex("(1 2)")
	assert.Error(t, err)
}
