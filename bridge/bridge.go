// Package bridge composes the parser and renderer into the public
// translation facade. Translation degrades, never fails: unparseable input
// passes through unchanged with zero confidence.
package bridge

import (
	lingua "github.com/hyperfixi/lingua"
	"github.com/hyperfixi/lingua/langpack"
	"github.com/hyperfixi/lingua/parser"
	"github.com/hyperfixi/lingua/renderer"
	"github.com/hyperfixi/lingua/semantic"
)

// lowConfidenceFloor is the confidence of a semantic translation that had
// to drop tokens; dropping more tokens never pushes confidence below it.
const lowConfidenceFloor = 0.5

// TranslationResult reports one translation and how it was produced.
type TranslationResult struct {
	Output       string
	SourceLang   lingua.LanguageCode
	TargetLang   lingua.LanguageCode
	UsedSemantic bool
	Confidence   float64
}

// ParseDetails reports a parse attempt for callers that feed the main DSL
// pipeline. When the direct path fails, FallbackText carries the original
// input for the plain-text path.
type ParseDetails struct {
	Node           *semantic.Node
	Statement      *semantic.Statement
	UsedDirectPath bool
	FallbackText   string
	ExtractionRate float64
}

// Bridge is the multilingual semantic bridge facade. The zero value is
// ready to use; language tables load lazily on first touch and are shared
// by all bridges in the process.
type Bridge struct{}

// New creates a Bridge.
func New() *Bridge {
	return &Bridge{}
}

// Warmup eagerly loads every language table. Optional: the first call per
// language pays the same cost otherwise.
func (b *Bridge) Warmup() error {
	for _, code := range lingua.SupportedLanguages() {
		if _, err := langpack.Load(code); err != nil {
			return err
		}
	}

	return nil
}

// Parse converts text to a semantic node, nil when the sentence cannot be
// understood.
func (b *Bridge) Parse(text string, lang lingua.LanguageCode) (*semantic.Node, error) {
	return parser.Parse(text, lang)
}

// Render emits a semantic node in the target language.
func (b *Bridge) Render(node *semantic.Node, lang lingua.LanguageCode) (string, error) {
	return renderer.Render(node, lang)
}

// Translate converts text between two languages. It always returns a
// string: the translation when the semantic path succeeds, the original
// text otherwise.
func (b *Bridge) Translate(text string, source, target lingua.LanguageCode) string {
	return b.TranslateWithDetails(text, source, target).Output
}

// TranslateWithDetails converts text between two languages and reports the
// path taken and a confidence estimate.
func (b *Bridge) TranslateWithDetails(text string, source, target lingua.LanguageCode) TranslationResult {
	result := TranslationResult{
		Output:     text,
		SourceLang: source,
		TargetLang: target,
	}

	// identity short-circuit: no parse, no render, full confidence
	if source == target {
		result.Confidence = 1.0
		return result
	}

	node, err := parser.Parse(text, source)
	if err != nil || node == nil {
		return result
	}

	output, err := renderer.Render(node, target)
	if err != nil {
		return result
	}

	result.Output = output
	result.UsedSemantic = true
	result.Confidence = confidence(node.Meta())

	return result
}

// AllTranslations translates text from source into every supported
// language, keyed by target code. Entries are independent of one another.
func (b *Bridge) AllTranslations(text string, source lingua.LanguageCode) map[lingua.LanguageCode]TranslationResult {
	results := make(map[lingua.LanguageCode]TranslationResult, len(lingua.SupportedLanguages()))

	for _, target := range lingua.SupportedLanguages() {
		results[target] = b.TranslateWithDetails(text, source, target)
	}

	return results
}

// ParseToAST converts text to the statement shape the main DSL parser
// produces, nil when parsing fails.
func (b *Bridge) ParseToAST(text string, lang lingua.LanguageCode) *semantic.Statement {
	return b.ParseToASTWithDetails(text, lang).Statement
}

// ParseToASTWithDetails reports the full parse outcome, including the
// fallback text for the plain-text path when the direct path fails.
func (b *Bridge) ParseToASTWithDetails(text string, lang lingua.LanguageCode) ParseDetails {
	node, err := parser.Parse(text, lang)
	if err != nil || node == nil {
		return ParseDetails{FallbackText: text}
	}

	statement := node.Statement()

	return ParseDetails{
		Node:           node,
		Statement:      &statement,
		UsedDirectPath: true,
		ExtractionRate: node.Meta().ExtractionRate(),
	}
}

// SupportedLanguages lists every supported language code.
func (b *Bridge) SupportedLanguages() []lingua.LanguageCode {
	return lingua.SupportedLanguages()
}

// LanguageInfo returns the metadata of one language.
func (b *Bridge) LanguageInfo(code lingua.LanguageCode) (lingua.LanguageInfo, bool) {
	return lingua.GetLanguageInfo(code)
}

// IsLanguageSupported reports whether code is supported.
func (b *Bridge) IsLanguageSupported(code lingua.LanguageCode) bool {
	return lingua.IsLanguageSupported(code)
}

// AllLanguageInfo returns a copy of the language metadata table.
func (b *Bridge) AllLanguageInfo() []lingua.LanguageInfo {
	return lingua.AllLanguageInfo()
}

// confidence scores a successful semantic translation: 1.0 when every
// source token was consumed, degrading with each dropped token down to the
// floor.
func confidence(meta semantic.Metadata) float64 {
	if meta.TokenCount == 0 || meta.IgnoredTokens == 0 {
		return 1.0
	}

	score := 1.0 - float64(meta.IgnoredTokens)/float64(meta.TokenCount)
	if score < lowConfidenceFloor {
		return lowConfidenceFloor
	}

	return score
}
