// Package parser turns command sentences in any supported language into
// language-neutral semantic nodes. Parsing is lenient: words the language's
// tables do not explain are counted and dropped, never an error.
package parser

import (
	"errors"
	"strings"

	lingua "github.com/hyperfixi/lingua"
	"github.com/hyperfixi/lingua/langpack"
	"github.com/hyperfixi/lingua/semantic"
	tok "github.com/hyperfixi/lingua/tokenizer"
)

// Parse converts text in the given language to a semantic node. It returns
// (nil, nil) when the sentence cannot be understood: empty input, an
// unsupported language code, or no recognizable action token. Errors are
// reserved for broken language pack data.
func Parse(text string, lang lingua.LanguageCode) (*semantic.Node, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	pack, err := langpack.Load(lang)
	if err != nil {
		if errors.Is(err, lingua.ErrUnsupportedLanguage) {
			return nil, nil
		}

		return nil, err
	}

	tokens := tok.Split(text)
	if len(tokens) == 0 {
		return nil, nil
	}

	actionIndex := -1

	var action lingua.Action

	for i, token := range tokens {
		if token.Type != tok.WORD {
			continue
		}

		if found, ok := pack.LookupAction(token.Value); ok {
			actionIndex = i
			action = found

			break
		}
	}

	if actionIndex < 0 {
		return nil, nil
	}

	rest := make([]tok.Token, 0, len(tokens)-1)
	rest = append(rest, tokens[:actionIndex]...)
	rest = append(rest, tokens[actionIndex+1:]...)

	items := collapsePossessives(rest, pack)
	roles := make(map[semantic.Role]semantic.Value)

	// item index where the pre-action arguments end; collapsing may have
	// merged tokens, so recount by source width
	boundary := 0
	for covered := 0; boundary < len(items) && covered < actionIndex; boundary++ {
		covered += items[boundary].width
	}

	bindMarkedRoles(items, pack, roles)
	bindImplicitPatient(items, pack, boundary, roles)

	ignored := 0

	for _, it := range items {
		if !it.consumed {
			ignored += it.width
		}
	}

	meta := semantic.Metadata{
		SourceText:    text,
		TokenCount:    len(tokens),
		IgnoredTokens: ignored,
	}

	return semantic.NewNode(action, roles, meta), nil
}

// bindMarkedRoles walks the argument items and binds role markers to their
// neighbor: the following item for before-marking languages, the preceding
// one for after-marking languages. The marker table wins over shape
// heuristics; the first binding of a role wins over later ones.
func bindMarkedRoles(items []item, pack *langpack.Pack, roles map[semantic.Role]semantic.Value) {
	for i := range items {
		it := &items[i]
		if it.consumed || it.value != nil || it.token.Type != tok.WORD {
			continue
		}

		role, ok := pack.LookupMarker(it.token.Value)
		if !ok {
			continue
		}

		var argument *item

		if pack.MarkerPosition == langpack.MarkerBefore {
			if i+1 < len(items) && bindable(&items[i+1], pack) {
				argument = &items[i+1]
			}
		} else {
			if i > 0 && bindable(&items[i-1], pack) {
				argument = &items[i-1]
			}
		}

		if argument == nil {
			continue
		}

		if _, bound := roles[role]; bound {
			continue
		}

		roles[role] = itemValue(argument)
		argument.consumed = true
		it.consumed = true
	}
}

// bindImplicitPatient fills the patient slot from the sentence's bare
// argument: the first unconsumed value after the action for SVO/VSO, the
// one closest before it for SOV.
func bindImplicitPatient(items []item, pack *langpack.Pack, boundary int, roles map[semantic.Role]semantic.Value) {
	if _, bound := roles[semantic.RolePatient]; bound {
		return
	}

	pick := func(i int, shapedOnly bool) bool {
		it := &items[i]
		if it.consumed || !bindable(it, pack) {
			return false
		}

		if shapedOnly && it.value == nil {
			switch it.token.Type {
			case tok.SELECTOR, tok.QUOTE, tok.NUMBER:
			default:
				return false
			}
		}

		roles[semantic.RolePatient] = itemValue(it)
		it.consumed = true

		return true
	}

	// decorative words around a selector must not shadow it, so shaped
	// values (selectors, literals, possessives) win over bare words
	for _, shapedOnly := range []bool{true, false} {
		if pack.Info.WordOrder == lingua.WordOrderSOV {
			// items before the action, nearest first
			for i := min(boundary, len(items)) - 1; i >= 0; i-- {
				if pick(i, shapedOnly) {
					return
				}
			}

			for i := boundary; i < len(items); i++ {
				if pick(i, shapedOnly) {
					return
				}
			}

			continue
		}

		for i := boundary; i < len(items); i++ {
			if pick(i, shapedOnly) {
				return
			}
		}

		for i := min(boundary, len(items)) - 1; i >= 0; i-- {
			if pick(i, shapedOnly) {
				return
			}
		}
	}
}

// bindable reports whether an item can fill a role slot. Marker words and
// the possessive connective stay grammar, never payload.
func bindable(it *item, pack *langpack.Pack) bool {
	if it.consumed {
		return false
	}

	if it.value != nil {
		return true
	}

	switch it.token.Type {
	case tok.SELECTOR, tok.QUOTE, tok.NUMBER, tok.WORD, tok.OTHER:
	default:
		return false
	}

	if it.token.Type == tok.WORD {
		word := it.token.Value
		if _, ok := pack.LookupMarker(word); ok {
			return false
		}

		if _, ok := pack.LookupAction(word); ok {
			return false
		}

		if pack.IsPossessiveConnective(word) {
			return false
		}
	}

	return true
}

// itemValue returns the semantic value of an item, classifying single
// tokens by shape.
func itemValue(it *item) semantic.Value {
	if it.value != nil {
		return it.value
	}

	return classifyToken(it.token)
}

// classifyToken chooses the value variant for one surface token.
func classifyToken(token tok.Token) semantic.Value {
	switch token.Type {
	case tok.SELECTOR:
		return semantic.NewSelector(token.Value)
	case tok.QUOTE:
		return semantic.Literal{Kind: semantic.LiteralString, Raw: token.Value}
	case tok.NUMBER:
		return semantic.Literal{Kind: semantic.LiteralNumber, Raw: token.Value}
	default:
		if token.Value == "true" || token.Value == "false" {
			return semantic.Literal{Kind: semantic.LiteralBoolean, Raw: token.Value}
		}

		return semantic.Reference{Name: token.Value}
	}
}
