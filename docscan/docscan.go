// Package docscan finds command sentences embedded in markdown documents
// and feeds them through the semantic bridge, so authoring docs can carry
// the same snippet in several languages.
package docscan

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	lingua "github.com/hyperfixi/lingua"
	"github.com/hyperfixi/lingua/bridge"
)

// Sentinel errors
var (
	ErrInvalidFrontMatter = fmt.Errorf("invalid front matter")
)

// DefaultTags are the fenced code block info strings treated as command
// snippets when the caller does not configure its own set.
var DefaultTags = []string{"hyperscript", "_hs"}

// Block is one fenced command snippet found in a document
type Block struct {
	Text      string // block content, possibly several sentences on separate lines
	Tag       string // the fence info string that matched
	StartLine int    // 1-based line of the first content line
}

// Document is a scanned markdown document
type Document struct {
	FrontMatter map[string]any
	SourceLang  lingua.LanguageCode
	Blocks      []Block
}

// Parse scans markdown for fenced command blocks. tags selects the fence
// info strings to accept; nil means DefaultTags. A front matter key
// "language" overrides fallback as the document's source language.
func Parse(reader io.Reader, fallback lingua.LanguageCode, tags []string) (*Document, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}

	frontMatter, body, err := parseFrontMatter(string(content))
	if err != nil {
		return nil, err
	}

	document := &Document{
		FrontMatter: frontMatter,
		SourceLang:  fallback,
	}

	if lang, ok := frontMatter["language"].(string); ok {
		code := lingua.LanguageCode(lang)
		if !lingua.IsLanguageSupported(code) {
			return nil, fmt.Errorf("%w: %s", lingua.ErrUnsupportedLanguage, lang)
		}

		document.SourceLang = code
	}

	if len(tags) == 0 {
		tags = DefaultTags
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
		),
	)

	bodyBytes := []byte(body)
	bodyOffset := len(content) - len(bodyBytes)
	offsetLines := bytes.Count(content[:bodyOffset], []byte("\n"))

	doc := md.Parser().Parse(text.NewReader(bodyBytes))

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		codeBlock, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		tag := codeBlockInfo(codeBlock, bodyBytes)
		if !matchesTag(tag, tags) {
			return ast.WalkContinue, nil
		}

		document.Blocks = append(document.Blocks, Block{
			Text:      codeBlockContent(codeBlock, bodyBytes),
			Tag:       tag,
			StartLine: codeBlockLine(codeBlock, bodyBytes) + offsetLines,
		})

		return ast.WalkContinue, nil
	})

	return document, nil
}

// TranslatedLine is one translated sentence with its document line number
type TranslatedLine struct {
	Line   int
	Result bridge.TranslationResult
}

// BlockTranslation is one block translated line by line
type BlockTranslation struct {
	Block Block
	Lines []TranslatedLine
}

// Translate runs every block of the document through the bridge, one
// sentence per line. Blank lines are skipped; unparseable lines pass
// through with zero confidence, matching the bridge's degradation
// contract.
func Translate(document *Document, br *bridge.Bridge, target lingua.LanguageCode) []BlockTranslation {
	results := make([]BlockTranslation, 0, len(document.Blocks))

	for _, block := range document.Blocks {
		translation := BlockTranslation{Block: block}

		for i, line := range strings.Split(block.Text, "\n") {
			sentence := strings.TrimSpace(line)
			if sentence == "" {
				continue
			}

			translation.Lines = append(translation.Lines, TranslatedLine{
				Line:   block.StartLine + i,
				Result: br.TranslateWithDetails(sentence, document.SourceLang, target),
			})
		}

		results = append(results, translation)
	}

	return results
}

// parseFrontMatter extracts YAML front matter from markdown content
func parseFrontMatter(content string) (map[string]any, string, error) {
	if !strings.HasPrefix(content, "---\n") {
		return make(map[string]any), content, nil
	}

	endIndex := strings.Index(content[4:], "\n---")
	if endIndex == -1 {
		return nil, "", ErrInvalidFrontMatter
	}

	endIndex += 4

	frontMatterContent := content[4:endIndex]

	remaining := content[endIndex+4:]
	if i := strings.Index(remaining, "\n"); i >= 0 {
		remaining = remaining[i+1:]
	}

	var frontMatter map[string]any

	err := yaml.Unmarshal([]byte(frontMatterContent), &frontMatter)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrInvalidFrontMatter, err)
	}

	if frontMatter == nil {
		frontMatter = make(map[string]any)
	}

	return frontMatter, remaining, nil
}

// codeBlockInfo extracts the info string from a fenced code block
func codeBlockInfo(codeBlock *ast.FencedCodeBlock, content []byte) string {
	if codeBlock.Info != nil {
		segment := codeBlock.Info.Segment
		return strings.TrimSpace(string(content[segment.Start:segment.Stop]))
	}

	return ""
}

func matchesTag(tag string, tags []string) bool {
	for _, candidate := range tags {
		if strings.EqualFold(tag, candidate) {
			return true
		}
	}

	return false
}

// codeBlockContent extracts the content of a code block
func codeBlockContent(codeBlock *ast.FencedCodeBlock, content []byte) string {
	var result strings.Builder

	if codeBlock.Lines() != nil {
		for i := 0; i < codeBlock.Lines().Len(); i++ {
			line := codeBlock.Lines().At(i)
			result.Write(content[line.Start:line.Stop])
		}
	}

	return strings.TrimRight(result.String(), "\n")
}

// codeBlockLine returns the 1-based line number of the first content line
func codeBlockLine(codeBlock *ast.FencedCodeBlock, content []byte) int {
	if codeBlock.Lines() == nil || codeBlock.Lines().Len() == 0 {
		return 0
	}

	start := codeBlock.Lines().At(0).Start

	return bytes.Count(content[:start], []byte("\n")) + 1
}
