package tokenizer

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrUnterminatedString   = errors.New("unterminated string literal")
	ErrUnterminatedSelector = errors.New("unterminated attribute selector")
)

// TokenType represents the type of a token
type TokenType int

const (
	// EOF marks the end of input
	EOF TokenType = iota
	// WHITESPACE is a run of space characters
	WHITESPACE
	// WORD is a surface word: action candidate, role marker, or reference
	WORD
	// SELECTOR is a CSS-selector-shaped literal (#id, .class, [attr], compounds)
	SELECTOR
	// QUOTE is a quoted string literal, value kept verbatim including quotes
	QUOTE
	// NUMBER is a numeric literal
	NUMBER
	// POSSESSIVE is the English possessive clitic ('s)
	POSSESSIVE
	// OTHER is any character sequence the tokenizer does not classify
	OTHER
)

// String returns the string representation of TokenType
func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case WHITESPACE:
		return "WHITESPACE"
	case WORD:
		return "WORD"
	case SELECTOR:
		return "SELECTOR"
	case QUOTE:
		return "QUOTE"
	case NUMBER:
		return "NUMBER"
	case POSSESSIVE:
		return "POSSESSIVE"
	case OTHER:
		return "OTHER"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Position is the location of a token in the source text
type Position struct {
	Line   int // 1-based
	Column int // 1-based, in runes
	Offset int // 0-based, in bytes
}

// String returns "line:column"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is one lexical unit of a command sentence
type Token struct {
	Type     TokenType
	Value    string
	Position Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Type, t.Value, t.Position)
}
