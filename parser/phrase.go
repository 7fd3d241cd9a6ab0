package parser

import (
	"slices"

	pc "github.com/shibukawa/parsercombinator"

	"github.com/hyperfixi/lingua/langpack"
	"github.com/hyperfixi/lingua/semantic"
	tok "github.com/hyperfixi/lingua/tokenizer"
)

// item is one argument-phrase unit: either a single surface token or a
// collapsed possessive phrase.
type item struct {
	token    tok.Token
	value    semantic.Value // set for collapsed possessive phrases
	width    int            // source tokens covered by this item
	consumed bool
}

func primitiveType(types ...tok.TokenType) pc.Parser[tok.Token] {
	return func(pctx *pc.ParseContext[tok.Token], tokens []pc.Token[tok.Token]) (int, []pc.Token[tok.Token], error) {
		if len(tokens) > 0 && slices.Contains(types, tokens[0].Val.Type) {
			return 1, tokens[:1], nil
		}

		return 0, nil, pc.ErrNotMatch
	}
}

// wordValue matches a bare word that carries no grammar for this language:
// not an action, not a marker, not the possessive connective.
func wordValue(pack *langpack.Pack) pc.Parser[tok.Token] {
	return func(pctx *pc.ParseContext[tok.Token], tokens []pc.Token[tok.Token]) (int, []pc.Token[tok.Token], error) {
		if len(tokens) == 0 || tokens[0].Val.Type != tok.WORD {
			return 0, nil, pc.ErrNotMatch
		}

		word := tokens[0].Val.Value
		if _, ok := pack.LookupAction(word); ok {
			return 0, nil, pc.ErrNotMatch
		}

		if _, ok := pack.LookupMarker(word); ok {
			return 0, nil, pc.ErrNotMatch
		}

		if pack.IsPossessiveConnective(word) {
			return 0, nil, pc.ErrNotMatch
		}

		return 1, tokens[:1], nil
	}
}

// objectValue matches a token that can own a property: a selector or a
// bare word reference.
func objectValue(pack *langpack.Pack) pc.Parser[tok.Token] {
	return pc.Or(primitiveType(tok.SELECTOR), wordValue(pack))
}

func connectiveWord(pack *langpack.Pack) pc.Parser[tok.Token] {
	return func(pctx *pc.ParseContext[tok.Token], tokens []pc.Token[tok.Token]) (int, []pc.Token[tok.Token], error) {
		if len(tokens) > 0 && tokens[0].Val.Type == tok.WORD && pack.IsPossessiveConnective(tokens[0].Val.Value) {
			return 1, tokens[:1], nil
		}

		return 0, nil, pc.ErrNotMatch
	}
}

// possessivePhrase builds the three-token possessive pattern for one
// language: object 's property, object の property, or property de object.
func possessivePhrase(pack *langpack.Pack) pc.Parser[tok.Token] {
	if pack.Possessive.Clitic {
		return pc.Seq(objectValue(pack), primitiveType(tok.POSSESSIVE), wordValue(pack))
	}

	if pack.Possessive.Connective == "" {
		// juxtaposition possessives render but cannot be recognized
		return nil
	}

	if pack.Possessive.Order == langpack.PropertyFirst {
		return pc.Seq(wordValue(pack), connectiveWord(pack), objectValue(pack))
	}

	return pc.Seq(objectValue(pack), connectiveWord(pack), wordValue(pack))
}

func toParserTokens(tokens []tok.Token) []pc.Token[tok.Token] {
	results := make([]pc.Token[tok.Token], len(tokens))

	for i, token := range tokens {
		results[i] = pc.Token[tok.Token]{
			Type: "raw",
			Pos: &pc.Pos{
				Line:  token.Position.Line,
				Col:   token.Position.Column,
				Index: token.Position.Offset,
			},
			Val: token,
			Raw: token.Value,
		}
	}

	return results
}

// collapsePossessives turns possessive patterns into single PropertyPath
// items and wraps every other token as a one-token item.
func collapsePossessives(tokens []tok.Token, pack *langpack.Pack) []item {
	items := make([]item, 0, len(tokens))
	phrase := possessivePhrase(pack)

	if phrase == nil {
		for _, token := range tokens {
			items = append(items, item{token: token, width: 1})
		}

		return items
	}

	pctx := pc.NewParseContext[tok.Token]()
	pTokens := toParserTokens(tokens)

	for i := 0; i < len(tokens); {
		consumed, match, err := phrase(pctx, pTokens[i:])
		if err != nil || consumed != 3 {
			items = append(items, item{token: tokens[i], width: 1})
			i++

			continue
		}

		var object, property tok.Token
		if pack.Possessive.Order == langpack.PropertyFirst && !pack.Possessive.Clitic {
			property = match[0].Val
			object = match[2].Val
		} else {
			object = match[0].Val
			property = match[2].Val
		}

		items = append(items, item{
			token: object,
			value: semantic.PropertyPath{
				Object:   classifyToken(object),
				Property: property.Value,
			},
			width: consumed,
		})
		i += consumed
	}

	return items
}
