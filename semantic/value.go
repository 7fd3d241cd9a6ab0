package semantic

import "strings"

// SelectorKind classifies the shape of a CSS selector literal
type SelectorKind string

const (
	SelectorID        SelectorKind = "id"
	SelectorClass     SelectorKind = "class"
	SelectorAttribute SelectorKind = "attribute"
	SelectorCompound  SelectorKind = "compound"
)

// Value is the payload bound to a role. It is a closed tagged union:
// Selector, Reference, Literal, PropertyPath. Payload text is preserved
// byte-for-byte through parse and render; only the grammar around it is
// translated.
type Value interface {
	isValue()

	// Surface returns the payload as it appears in source text. For
	// PropertyPath this is the neutral possessive form; renderers apply
	// the target language's own possessive grammar instead.
	Surface() string
}

// Selector is a CSS-selector-shaped literal (#id, .class, [attr], compounds)
type Selector struct {
	Raw  string
	Kind SelectorKind
}

func (Selector) isValue() {}

// Surface returns the selector text unchanged
func (s Selector) Surface() string { return s.Raw }

// NewSelector classifies raw and returns the Selector value
func NewSelector(raw string) Selector {
	return Selector{Raw: raw, Kind: ClassifySelector(raw)}
}

// ClassifySelector determines the selector kind from its shape
func ClassifySelector(raw string) SelectorKind {
	if raw == "" {
		return SelectorCompound
	}

	rest := raw[1:]

	switch raw[0] {
	case '#':
		if strings.ContainsAny(rest, "#.[") {
			return SelectorCompound
		}

		return SelectorID
	case '.':
		if strings.ContainsAny(rest, "#.[") {
			return SelectorCompound
		}

		return SelectorClass
	case '[':
		return SelectorAttribute
	default:
		// tag[attr] and other chains
		return SelectorCompound
	}
}

// Reference is a pronoun-like context reference (me, it, ...)
type Reference struct {
	Name string
}

func (Reference) isValue() {}

// Surface returns the reference word
func (r Reference) Surface() string { return r.Name }

// LiteralKind distinguishes literal payload types
type LiteralKind string

const (
	LiteralString  LiteralKind = "string"
	LiteralNumber  LiteralKind = "number"
	LiteralBoolean LiteralKind = "boolean"
)

// Literal is a quoted string, numeric, or boolean literal. Raw keeps the
// source spelling, quotes included for strings.
type Literal struct {
	Kind LiteralKind
	Raw  string
}

func (Literal) isValue() {}

// Surface returns the literal source spelling unchanged
func (l Literal) Surface() string { return l.Raw }

// PropertyPath is a possessive property access such as #element's value.
// Object and Property are preserved; the possessive connective is surface
// grammar and belongs to each language.
type PropertyPath struct {
	Object   Value
	Property string
}

func (PropertyPath) isValue() {}

// Surface renders the neutral (English clitic) possessive form
func (p PropertyPath) Surface() string {
	return p.Object.Surface() + "'s " + p.Property
}
