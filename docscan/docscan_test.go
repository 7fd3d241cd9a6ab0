package docscan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lingua "github.com/hyperfixi/lingua"
	"github.com/hyperfixi/lingua/bridge"
)

func TestParseBasicDocument(t *testing.T) {
	content := `# Button behaviors

Click handling:

` + "```hyperscript" + `
toggle .active on #button
` + "```" + `

Some prose in between.

` + "```_hs" + `
hide #modal
show #panel
` + "```" + `
`

	doc, err := Parse(strings.NewReader(content), lingua.LangEnglish, nil)
	require.NoError(t, err)

	require.Len(t, doc.Blocks, 2)
	assert.Equal(t, lingua.LangEnglish, doc.SourceLang)

	assert.Equal(t, "toggle .active on #button", doc.Blocks[0].Text)
	assert.Equal(t, "hyperscript", doc.Blocks[0].Tag)

	assert.Equal(t, "hide #modal\nshow #panel", doc.Blocks[1].Text)
	assert.Equal(t, "_hs", doc.Blocks[1].Tag)
}

func TestParseSkipsOtherFences(t *testing.T) {
	content := "```go\nfmt.Println(\"hi\")\n```\n\n```hyperscript\nlog \"ready\"\n```\n\n```\nno info string\n```\n"

	doc, err := Parse(strings.NewReader(content), lingua.LangEnglish, nil)
	require.NoError(t, err)

	require.Len(t, doc.Blocks, 1)
	assert.Equal(t, `log "ready"`, doc.Blocks[0].Text)
}

func TestParseCustomTags(t *testing.T) {
	content := "```fixi\ntoggle .active\n```\n\n```hyperscript\nhide #modal\n```\n"

	doc, err := Parse(strings.NewReader(content), lingua.LangEnglish, []string{"fixi"})
	require.NoError(t, err)

	require.Len(t, doc.Blocks, 1)
	assert.Equal(t, "toggle .active", doc.Blocks[0].Text)
	assert.Equal(t, "fixi", doc.Blocks[0].Tag)
}

func TestParseFrontMatterLanguage(t *testing.T) {
	content := `---
title: ボタンの挙動
language: ja
---

` + "```hyperscript" + `
#button の .active を 切り替え
` + "```" + `
`

	doc, err := Parse(strings.NewReader(content), lingua.LangEnglish, nil)
	require.NoError(t, err)

	assert.Equal(t, lingua.LangJapanese, doc.SourceLang)
	assert.Equal(t, "ボタンの挙動", doc.FrontMatter["title"])
	require.Len(t, doc.Blocks, 1)
}

func TestParseFrontMatterUnsupportedLanguage(t *testing.T) {
	content := "---\nlanguage: tlh\n---\n\nbody\n"

	_, err := Parse(strings.NewReader(content), lingua.LangEnglish, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, lingua.ErrUnsupportedLanguage)
}

func TestParseUnterminatedFrontMatter(t *testing.T) {
	content := "---\ntitle: broken\n\nno closing delimiter\n"

	_, err := Parse(strings.NewReader(content), lingua.LangEnglish, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFrontMatter)
}

func TestParseLineNumbers(t *testing.T) {
	content := `---
language: en
---

intro text

` + "```hyperscript" + `
toggle .active
` + "```" + `
`

	doc, err := Parse(strings.NewReader(content), lingua.LangEnglish, nil)
	require.NoError(t, err)
	require.Len(t, doc.Blocks, 1)

	// content line sits on line 8 of the full file
	assert.Equal(t, 8, doc.Blocks[0].StartLine)
}

func TestTranslateDocument(t *testing.T) {
	content := "```hyperscript\ntoggle .active on #button\nhide #modal\n```\n"

	doc, err := Parse(strings.NewReader(content), lingua.LangEnglish, nil)
	require.NoError(t, err)

	br := bridge.New()
	results := Translate(doc, br, lingua.LangJapanese)

	require.Len(t, results, 1)
	require.Len(t, results[0].Lines, 2)

	for _, line := range results[0].Lines {
		assert.True(t, line.Result.UsedSemantic)
		assert.Equal(t, lingua.LangJapanese, line.Result.TargetLang)
	}

	assert.Contains(t, results[0].Lines[0].Result.Output, "切り替え")
	assert.Contains(t, results[0].Lines[1].Result.Output, "#modal")
	assert.Equal(t, results[0].Lines[0].Line+1, results[0].Lines[1].Line)
}

func TestTranslateSkipsBlankLines(t *testing.T) {
	content := "```hyperscript\ntoggle .active\n\nhide #modal\n```\n"

	doc, err := Parse(strings.NewReader(content), lingua.LangEnglish, nil)
	require.NoError(t, err)

	br := bridge.New()
	results := Translate(doc, br, lingua.LangSpanish)

	require.Len(t, results, 1)
	require.Len(t, results[0].Lines, 2)

	// the blank line still counts for numbering
	assert.Equal(t, results[0].Lines[0].Line+2, results[0].Lines[1].Line)
}

func TestTranslateDegradesGracefully(t *testing.T) {
	content := "```hyperscript\nthis is not a command at all here\n```\n"

	doc, err := Parse(strings.NewReader(content), lingua.LangEnglish, nil)
	require.NoError(t, err)

	br := bridge.New()
	results := Translate(doc, br, lingua.LangFrench)

	require.Len(t, results, 1)
	require.Len(t, results[0].Lines, 1)

	line := results[0].Lines[0].Result
	assert.False(t, line.UsedSemantic)
	assert.Equal(t, "this is not a command at all here", line.Output)
	assert.Equal(t, 0.0, line.Confidence)
}
