package cnc

import (
	"fmt"
	"regexp"
	"strings"
)

// TokenKind classifies one lexeme of an input line.
type TokenKind int

const (
	// TokenNone means the text held nothing but whitespace.
	TokenNone TokenKind = iota
	// TokenComplex is a parenthesized pair literal "(re,im)".
	TokenComplex
	// TokenNumber is a signed decimal or scientific literal.
	TokenNumber
	// TokenOperator is one of + - * /.
	TokenOperator
	// TokenWord is an alphabetic command name.
	TokenWord
	// TokenInvalid is anything the grammar does not recognize.
	TokenInvalid
)

// Token is one scanned lexeme.
type Token struct {
	Kind TokenKind
	Text string
}

// numPattern matches a signed decimal or scientific numeric literal.
const numPattern = `[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([Ee][+-]?[0-9]+)?`

var (
	complexPattern  = regexp.MustCompile(`^\((` + numPattern + `)\s*,\s*(` + numPattern + `)\)`)
	numberPattern   = regexp.MustCompile(`^` + numPattern)
	operatorPattern = regexp.MustCompile(`^[+\-*/]`)
	wordPattern     = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*`)
)

// ScanToken extracts the first token from text and returns it with the
// unconsumed suffix. Complex pair literals are matched before plain
// numbers; a bare sign with no digits falls through to the operator
// class, while a signed digit run ("-5") is a number.
func ScanToken(text string) (Token, string) {
	text = strings.TrimLeft(text, " \t\r\n")
	if text == "" {
		return Token{Kind: TokenNone}, ""
	}
	for _, try := range []struct {
		kind TokenKind
		pat  *regexp.Regexp
	}{
		{TokenComplex, complexPattern},
		{TokenNumber, numberPattern},
		{TokenOperator, operatorPattern},
		{TokenWord, wordPattern},
	} {
		if m := try.pat.FindString(text); m != "" {
			return Token{Kind: try.kind, Text: m}, text[len(m):]
		}
	}
	return Token{Kind: TokenInvalid, Text: text}, ""
}

// splitComplex takes a TokenComplex lexeme apart into its real and
// imaginary literals.
func splitComplex(text string) (re, im string, err error) {
	m := complexPattern.FindStringSubmatch(text)
	if m == nil {
		return "", "", fmt.Errorf("malformed complex literal %q", text)
	}
	return m[1], m[4], nil
}
