package tokenizer

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenIterator uses Go 1.24 iterator pattern
type TokenIterator iter.Seq2[Token, error]

// CommandTokenizer splits a command sentence into tokens. Words are
// whitespace separated; selector-shaped substrings and quoted strings stay
// single tokens whatever characters they contain.
type CommandTokenizer struct {
	input   string
	options TokenizerOptions
}

// TokenizerOptions are options for the tokenizer
type TokenizerOptions struct {
	SkipWhitespace bool
}

// NewCommandTokenizer creates a new CommandTokenizer
func NewCommandTokenizer(input string, options ...TokenizerOptions) *CommandTokenizer {
	opts := TokenizerOptions{
		SkipWhitespace: false,
	}
	if len(options) > 0 {
		opts = options[0]
	}

	return &CommandTokenizer{
		input:   input,
		options: opts,
	}
}

// Tokens returns an iterator of tokens
func (t *CommandTokenizer) Tokens() TokenIterator {
	return func(yield func(Token, error) bool) {
		tok := &tokenizer{
			input:  t.input,
			line:   1,
			column: 1,
		}

		tok.readChar()

		for {
			token, err := tok.nextToken()
			if err != nil {
				if !yield(Token{}, err) {
					return
				}
				continue
			}

			if token.Type == EOF {
				yield(token, nil)
				return
			}

			if t.options.SkipWhitespace && token.Type == WHITESPACE {
				continue
			}

			if !yield(token, nil) {
				return
			}
		}
	}
}

// AllTokens gets all tokens as a slice
func (t *CommandTokenizer) AllTokens() ([]Token, error) {
	tokens := make([]Token, 0, 16)

	var lastError error

	for token, err := range t.Tokens() {
		if err != nil {
			lastError = err
			continue
		}

		tokens = append(tokens, token)

		if token.Type == EOF {
			break
		}
	}

	return tokens, lastError
}

// Split tokenizes input and returns the non-whitespace tokens. Tokens that
// fail to terminate (open quote, open bracket) are dropped rather than
// failing the whole sentence.
func Split(input string) []Token {
	tokens := make([]Token, 0, 16)
	t := NewCommandTokenizer(input, TokenizerOptions{SkipWhitespace: true})

	for token, err := range t.Tokens() {
		if err != nil {
			continue
		}

		if token.Type == EOF {
			break
		}

		tokens = append(tokens, token)
	}

	return tokens
}

// Internal tokenizer implementation
type tokenizer struct {
	input    string
	position int // byte offset of the next unread character
	line     int
	column   int
	current  rune
	size     int // byte length of current
}

// nextToken gets the next token
func (t *tokenizer) nextToken() (Token, error) {
	switch {
	case t.current == 0:
		return t.newToken(EOF, ""), nil
	case unicode.IsSpace(t.current):
		return t.readWhitespace(), nil
	case t.current == '#' || t.current == '.' || t.current == '[':
		return t.readSelector()
	case t.current == '\'':
		if t.isPossessiveClitic() {
			return t.readPossessive(), nil
		}

		return t.readString('\'')
	case t.current == '"':
		return t.readString('"')
	case t.current == '-' && unicode.IsDigit(t.peekChar()):
		return t.readNumber(), nil
	case unicode.IsDigit(t.current):
		return t.readNumber(), nil
	case unicode.IsLetter(t.current) || t.current == '_':
		return t.readWord()
	default:
		return t.readOther(), nil
	}
}

// readChar reads the next character
func (t *tokenizer) readChar() {
	if t.position >= len(t.input) {
		t.current = 0
		t.size = 0
		t.position = len(t.input)

		return
	}

	r, size := utf8.DecodeRuneInString(t.input[t.position:])
	t.current = r
	t.size = size
	t.position += size

	if t.current == '\n' {
		t.line++
		t.column = 1
	} else {
		t.column++
	}
}

// peekChar looks ahead at the next character
func (t *tokenizer) peekChar() rune {
	if t.position >= len(t.input) {
		return 0
	}

	r, _ := utf8.DecodeRuneInString(t.input[t.position:])

	return r
}

// peekCharAfter looks ahead past the next character
func (t *tokenizer) peekCharAfter() rune {
	if t.position >= len(t.input) {
		return 0
	}

	_, size := utf8.DecodeRuneInString(t.input[t.position:])
	if t.position+size >= len(t.input) {
		return 0
	}

	r, _ := utf8.DecodeRuneInString(t.input[t.position+size:])

	return r
}

func (t *tokenizer) newToken(tokenType TokenType, value string) Token {
	return Token{
		Type:  tokenType,
		Value: value,
		Position: Position{
			Line:   t.line,
			Column: t.column - 1,
			Offset: t.position - t.size,
		},
	}
}

// isPossessiveClitic reports whether the current apostrophe starts 's
// followed by a word boundary
func (t *tokenizer) isPossessiveClitic() bool {
	if t.peekChar() != 's' {
		return false
	}

	after := t.peekCharAfter()

	return after == 0 || unicode.IsSpace(after)
}

func (t *tokenizer) readPossessive() Token {
	token := t.newToken(POSSESSIVE, "'s")
	t.readChar() // '
	t.readChar() // s

	return token
}

// readWhitespace reads whitespace characters
func (t *tokenizer) readWhitespace() Token {
	var builder strings.Builder

	token := t.newToken(WHITESPACE, "")

	for t.current != 0 && unicode.IsSpace(t.current) {
		builder.WriteRune(t.current)
		t.readChar()
	}

	token.Value = builder.String()

	return token
}

// readWord reads a surface word. A word followed immediately by '[' turns
// into a tag[attr] selector.
func (t *tokenizer) readWord() (Token, error) {
	var builder strings.Builder

	token := t.newToken(WORD, "")

	for t.current != 0 && isWordRune(t.current) {
		builder.WriteRune(t.current)
		t.readChar()
	}

	if t.current == '[' {
		token.Type = SELECTOR
		return t.finishSelector(token, &builder)
	}

	token.Value = builder.String()

	return token, nil
}

// readNumber reads a numeric literal with an optional sign and fraction
func (t *tokenizer) readNumber() Token {
	var builder strings.Builder

	token := t.newToken(NUMBER, "")

	if t.current == '-' {
		builder.WriteRune(t.current)
		t.readChar()
	}

	for t.current != 0 && (unicode.IsDigit(t.current) || t.current == '.') {
		// a dot not followed by a digit belongs to the next token
		if t.current == '.' && !unicode.IsDigit(t.peekChar()) {
			break
		}

		builder.WriteRune(t.current)
		t.readChar()
	}

	token.Value = builder.String()

	return token
}

// readString reads a quoted literal, value kept verbatim including quotes
func (t *tokenizer) readString(quote rune) (Token, error) {
	var builder strings.Builder

	token := t.newToken(QUOTE, "")

	builder.WriteRune(t.current)
	t.readChar()

	for t.current != 0 && t.current != quote {
		builder.WriteRune(t.current)
		t.readChar()
	}

	if t.current == 0 {
		token.Type = OTHER
		token.Value = builder.String()

		return token, ErrUnterminatedString
	}

	builder.WriteRune(t.current) // closing quote
	t.readChar()

	token.Value = builder.String()

	return token, nil
}

// readSelector reads a selector-shaped token. Whitespace only terminates
// the selector outside brackets and quotes, so [data-label="a b"] stays one
// token.
func (t *tokenizer) readSelector() (Token, error) {
	var builder strings.Builder

	token := t.newToken(SELECTOR, "")

	return t.finishSelector(token, &builder)
}

func (t *tokenizer) finishSelector(token Token, builder *strings.Builder) (Token, error) {
	depth := 0

	var quote rune

	for t.current != 0 {
		if quote != 0 {
			if t.current == quote {
				quote = 0
			}
		} else {
			switch {
			case t.current == '\'' && t.isPossessiveClitic():
				// #element's value: the clitic is its own token
				token.Type = SELECTOR
				token.Value = builder.String()

				return token, nil
			case t.current == '\'' || t.current == '"':
				quote = t.current
			case t.current == '[':
				depth++
			case t.current == ']':
				depth--
			case unicode.IsSpace(t.current) && depth <= 0:
				token.Type = SELECTOR
				token.Value = builder.String()

				return token, nil
			}
		}

		builder.WriteRune(t.current)
		t.readChar()
	}

	token.Value = builder.String()

	if depth > 0 || quote != 0 {
		return token, ErrUnterminatedSelector
	}

	return token, nil
}

// readOther reads unclassified characters up to the next whitespace
func (t *tokenizer) readOther() Token {
	var builder strings.Builder

	token := t.newToken(OTHER, "")

	for t.current != 0 && !unicode.IsSpace(t.current) {
		builder.WriteRune(t.current)
		t.readChar()
	}

	token.Value = builder.String()

	return token
}

// isWordRune reports whether r can appear inside a surface word
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || r == '_'
}
