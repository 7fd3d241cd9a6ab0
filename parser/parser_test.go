package parser

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	lingua "github.com/hyperfixi/lingua"
	"github.com/hyperfixi/lingua/semantic"
)

func TestParseSimpleCommand(t *testing.T) {
	node, err := Parse("toggle .active", lingua.LangEnglish)
	assert.NoError(t, err)
	assert.NotZero(t, node)

	assert.Equal(t, lingua.ActionToggle, node.Action())

	value, ok := node.Role(semantic.RolePatient)
	assert.True(t, ok)

	selector, ok := value.(semantic.Selector)
	assert.True(t, ok)
	assert.Equal(t, ".active", selector.Raw)
	assert.Equal(t, semantic.SelectorClass, selector.Kind)

	assert.Equal(t, 0, node.Meta().IgnoredTokens)
	assert.Equal(t, "toggle .active", node.Meta().SourceText)
}

func TestParseTagAttributeSelector(t *testing.T) {
	node, err := Parse(`toggle input[type="text"]`, lingua.LangEnglish)
	assert.NoError(t, err)
	assert.NotZero(t, node)

	assert.Equal(t, lingua.ActionToggle, node.Action())

	value, ok := node.Role(semantic.RolePatient)
	assert.True(t, ok)

	selector, ok := value.(semantic.Selector)
	assert.True(t, ok)
	assert.Equal(t, `input[type="text"]`, selector.Raw)
	assert.Equal(t, semantic.SelectorCompound, selector.Kind)

	assert.Equal(t, 0, node.Meta().IgnoredTokens)
}

func TestParseMarkedRoles(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		lang   lingua.LanguageCode
		action lingua.Action
		roles  map[semantic.Role]string
	}{
		{
			name:   "english destination",
			text:   "add .hidden to #panel",
			lang:   lingua.LangEnglish,
			action: lingua.ActionAdd,
			roles: map[semantic.Role]string{
				semantic.RolePatient:     ".hidden",
				semantic.RoleDestination: "#panel",
			},
		},
		{
			name:   "english source",
			text:   "remove .badge from #list",
			lang:   lingua.LangEnglish,
			action: lingua.ActionRemove,
			roles: map[semantic.Role]string{
				semantic.RolePatient: ".badge",
				semantic.RoleSource:  "#list",
			},
		},
		{
			name:   "spanish destination",
			text:   "agregar .hidden a #panel",
			lang:   lingua.LangSpanish,
			action: lingua.ActionAdd,
			roles: map[semantic.Role]string{
				semantic.RolePatient:     ".hidden",
				semantic.RoleDestination: "#panel",
			},
		},
		{
			name:   "japanese particles",
			text:   "#target に .active を 切り替え",
			lang:   lingua.LangJapanese,
			action: lingua.ActionToggle,
			roles: map[semantic.Role]string{
				semantic.RolePatient:     ".active",
				semantic.RoleDestination: "#target",
			},
		},
		{
			name:   "japanese implicit patient",
			text:   ".active 切り替え",
			lang:   lingua.LangJapanese,
			action: lingua.ActionToggle,
			roles: map[semantic.Role]string{
				semantic.RolePatient: ".active",
			},
		},
		{
			name:   "korean particles",
			text:   "#panel 에 .hidden 를 추가",
			lang:   lingua.LangKorean,
			action: lingua.ActionAdd,
			roles: map[semantic.Role]string{
				semantic.RolePatient:     ".hidden",
				semantic.RoleDestination: "#panel",
			},
		},
		{
			name:   "arabic verb first",
			text:   "بدل .active على #target",
			lang:   lingua.LangArabic,
			action: lingua.ActionToggle,
			roles: map[semantic.Role]string{
				semantic.RolePatient:     ".active",
				semantic.RoleDestination: "#target",
			},
		},
		{
			name:   "quechua case particles",
			text:   "#panel man .hidden ta yapay",
			lang:   lingua.LangQuechua,
			action: lingua.ActionAdd,
			roles: map[semantic.Role]string{
				semantic.RolePatient:     ".hidden",
				semantic.RoleDestination: "#panel",
			},
		},
		{
			name:   "chinese coverb",
			text:   "添加 .hidden 到 #panel",
			lang:   lingua.LangChinese,
			action: lingua.ActionAdd,
			roles: map[semantic.Role]string{
				semantic.RolePatient:     ".hidden",
				semantic.RoleDestination: "#panel",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := Parse(tt.text, tt.lang)
			assert.NoError(t, err)
			assert.NotZero(t, node)

			assert.Equal(t, tt.action, node.Action())
			assert.Equal(t, len(tt.roles), node.RoleCount())

			for role, expected := range tt.roles {
				value, ok := node.Role(role)
				assert.True(t, ok)
				assert.Equal(t, expected, value.Surface())
			}

			assert.Equal(t, 0, node.Meta().IgnoredTokens)
		})
	}
}

func TestParseQuotedLiteral(t *testing.T) {
	node, err := Parse(`log "hello, world"`, lingua.LangEnglish)
	assert.NoError(t, err)
	assert.NotZero(t, node)

	value, ok := node.Role(semantic.RolePatient)
	assert.True(t, ok)

	literal, ok := value.(semantic.Literal)
	assert.True(t, ok)
	assert.Equal(t, semantic.LiteralString, literal.Kind)
	assert.Equal(t, `"hello, world"`, literal.Raw)
}

func TestParseNumericLiteral(t *testing.T) {
	node, err := Parse("wait 2.5", lingua.LangEnglish)
	assert.NoError(t, err)
	assert.NotZero(t, node)

	value, ok := node.Role(semantic.RolePatient)
	assert.True(t, ok)

	literal, ok := value.(semantic.Literal)
	assert.True(t, ok)
	assert.Equal(t, semantic.LiteralNumber, literal.Kind)
	assert.Equal(t, "2.5", literal.Raw)
}

func TestParseReference(t *testing.T) {
	node, err := Parse("focus me", lingua.LangEnglish)
	assert.NoError(t, err)
	assert.NotZero(t, node)

	value, ok := node.Role(semantic.RolePatient)
	assert.True(t, ok)

	reference, ok := value.(semantic.Reference)
	assert.True(t, ok)
	assert.Equal(t, "me", reference.Name)
}

func TestParsePossessive(t *testing.T) {
	t.Run("english clitic", func(t *testing.T) {
		node, err := Parse("get #input's value", lingua.LangEnglish)
		assert.NoError(t, err)
		assert.NotZero(t, node)

		value, ok := node.Role(semantic.RolePatient)
		assert.True(t, ok)

		path, ok := value.(semantic.PropertyPath)
		assert.True(t, ok)
		assert.Equal(t, "value", path.Property)

		object, ok := path.Object.(semantic.Selector)
		assert.True(t, ok)
		assert.Equal(t, "#input", object.Raw)
	})

	t.Run("japanese connective", func(t *testing.T) {
		node, err := Parse("#input の value を 取得", lingua.LangJapanese)
		assert.NoError(t, err)
		assert.NotZero(t, node)

		value, ok := node.Role(semantic.RolePatient)
		assert.True(t, ok)

		path, ok := value.(semantic.PropertyPath)
		assert.True(t, ok)
		assert.Equal(t, "value", path.Property)
		assert.Equal(t, "#input", path.Object.Surface())
	})

	t.Run("spanish property first", func(t *testing.T) {
		node, err := Parse("obtener valor de #input", lingua.LangSpanish)
		assert.NoError(t, err)
		assert.NotZero(t, node)

		value, ok := node.Role(semantic.RolePatient)
		assert.True(t, ok)

		path, ok := value.(semantic.PropertyPath)
		assert.True(t, ok)
		assert.Equal(t, "valor", path.Property)
		assert.Equal(t, "#input", path.Object.Surface())
	})

	t.Run("marker beats possessive shape", func(t *testing.T) {
		// "de" marks source here because .x is not a property word
		node, err := Parse("quitar .x de #y", lingua.LangSpanish)
		assert.NoError(t, err)
		assert.NotZero(t, node)

		value, ok := node.Role(semantic.RoleSource)
		assert.True(t, ok)
		assert.Equal(t, "#y", value.Surface())

		patient, ok := node.Role(semantic.RolePatient)
		assert.True(t, ok)
		assert.Equal(t, ".x", patient.Surface())
	})
}

func TestParseLeniency(t *testing.T) {
	node, err := Parse("please toggle the .active class", lingua.LangEnglish)
	assert.NoError(t, err)
	assert.NotZero(t, node)

	assert.Equal(t, lingua.ActionToggle, node.Action())

	value, ok := node.Role(semantic.RolePatient)
	assert.True(t, ok)
	assert.Equal(t, ".active", value.Surface())

	// "please", "the", "class" are dropped, not errors
	assert.Equal(t, 3, node.Meta().IgnoredTokens)
	assert.Equal(t, 5, node.Meta().TokenCount)
}

func TestParseReturnsNil(t *testing.T) {
	tests := []struct {
		name string
		text string
		lang lingua.LanguageCode
	}{
		{name: "empty", text: "", lang: lingua.LangEnglish},
		{name: "whitespace only", text: "   \t  ", lang: lingua.LangEnglish},
		{name: "no action", text: "the quick brown fox", lang: lingua.LangEnglish},
		{name: "unsupported language", text: "toggle .active", lang: "xx"},
		{name: "action from another language", text: "alternar .active", lang: lingua.LangEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := Parse(tt.text, tt.lang)
			assert.NoError(t, err)
			assert.Zero(t, node)
		})
	}
}

func TestParseNeverPanics(t *testing.T) {
	inputs := []string{
		"toggle " + strings.Repeat("x ", 1000),
		strings.Repeat(".a", 500),
		"toggle ‮.active‭",
		"🙂 🙃 toggle 🙂 .active",
		"toggle .active\x00trailing",
		`log "unterminated`,
		"hide [data-open",
		`toggle input[type="text"]`,
		`toggle input[type=`,
		"show a[b]c[d]",
	}

	for _, input := range inputs {
		node, err := Parse(input, lingua.LangEnglish)
		assert.NoError(t, err)

		_ = node // nil or valid, never a panic
	}
}

func TestParseDuplicateMarkerKeepsFirst(t *testing.T) {
	node, err := Parse("add .a to #x to #y", lingua.LangEnglish)
	assert.NoError(t, err)
	assert.NotZero(t, node)

	value, ok := node.Role(semantic.RoleDestination)
	assert.True(t, ok)
	assert.Equal(t, "#x", value.Surface())
}
