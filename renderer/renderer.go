// Package renderer emits a semantic node as a surface sentence in any
// supported language. Only the action word, role markers, and possessive
// grammar are translated; selector, literal, and reference payloads are
// copied through byte-for-byte.
package renderer

import (
	"fmt"
	"strings"

	lingua "github.com/hyperfixi/lingua"
	"github.com/hyperfixi/lingua/langpack"
	"github.com/hyperfixi/lingua/semantic"
)

// Render produces the surface text of node in the target language. Output
// keeps logical token order for every script; right-to-left display
// ordering is left to the presentation layer (Unicode bidi).
func Render(node *semantic.Node, lang lingua.LanguageCode) (string, error) {
	if node == nil {
		return "", lingua.ErrNilNode
	}

	pack, err := langpack.Load(lang)
	if err != nil {
		return "", err
	}

	order, ok := pack.TemplateOrder(node.RoleKey())
	if !ok {
		// graceful degradation: the generic order covers every role
		order = fallbackOrder(pack, node)
	}

	words := make([]string, 0, 2*len(order))

	for _, slot := range order {
		if slot == "action" {
			surface, ok := pack.ActionSurface(node.Action())
			if !ok {
				return "", fmt.Errorf("%w: %s has no %s surface form", lingua.ErrUnknownAction, node.Action(), lang)
			}

			words = append(words, surface)

			continue
		}

		role := semantic.Role(slot)

		value, ok := node.Role(role)
		if !ok {
			continue
		}

		words = append(words, roleWords(pack, role, value)...)
	}

	return assemble(words, pack.Info.Direction), nil
}

// fallbackOrder filters the language's generic order down to the node's
// roles, keeping the action slot.
func fallbackOrder(pack *langpack.Pack, node *semantic.Node) []string {
	order := make([]string, 0, node.RoleCount()+1)

	for _, slot := range pack.DefaultOrder() {
		if slot == "action" {
			order = append(order, slot)
			continue
		}

		if _, ok := node.Role(semantic.Role(slot)); ok {
			order = append(order, slot)
		}
	}

	return order
}

// roleWords emits marker plus payload in the position the language marks
// roles: marker first for prepositions, payload first for particles.
func roleWords(pack *langpack.Pack, role semantic.Role, value semantic.Value) []string {
	payload := valueSurface(pack, value)

	marker, marked := pack.Marker(role)
	if !marked {
		return []string{payload}
	}

	if pack.MarkerPosition == langpack.MarkerBefore {
		return []string{marker, payload}
	}

	return []string{payload, marker}
}

// valueSurface renders one value. Payload text is never translated; the
// possessive connective around a PropertyPath is.
func valueSurface(pack *langpack.Pack, value semantic.Value) string {
	switch v := value.(type) {
	case semantic.Selector:
		return v.Raw
	case semantic.Reference:
		return v.Name
	case semantic.Literal:
		return v.Raw
	case semantic.PropertyPath:
		return possessiveSurface(pack, v)
	default:
		return value.Surface()
	}
}

func possessiveSurface(pack *langpack.Pack, path semantic.PropertyPath) string {
	object := valueSurface(pack, path.Object)
	possessive := pack.Possessive

	if possessive.Clitic {
		return object + possessive.Connective + " " + path.Property
	}

	if possessive.Connective == "" {
		// juxtaposition (Arabic idafa): property then owner
		if possessive.Order == langpack.PropertyFirst {
			return path.Property + " " + object
		}

		return object + " " + path.Property
	}

	if possessive.Order == langpack.PropertyFirst {
		return path.Property + " " + possessive.Connective + " " + object
	}

	return object + " " + possessive.Connective + " " + path.Property
}

// assemble joins the surface words. Tokens stay in logical order for both
// directions; RTL presentation reordering belongs to the display layer,
// and reordering here would make rendered Arabic unparseable.
func assemble(words []string, _ lingua.Direction) string {
	return strings.Join(words, " ")
}
