package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"

	lingua "github.com/hyperfixi/lingua"
)

func TestResolveLanguage(t *testing.T) {
	code, err := resolveLanguage("ja", "en")
	assert.NoError(t, err)
	assert.Equal(t, lingua.LangJapanese, code)

	code, err = resolveLanguage("", "en")
	assert.NoError(t, err)
	assert.Equal(t, lingua.LangEnglish, code)

	_, err = resolveLanguage("tlh", "en")
	assert.IsError(t, err, lingua.ErrUnsupportedLanguage)

	_, err = resolveLanguage("", "")
	assert.IsError(t, err, lingua.ErrUnsupportedLanguage)
}

func TestResolveTargets(t *testing.T) {
	config := &lingua.Config{Targets: []string{"ja", "ko"}}

	targets, err := resolveTargets(nil, config)
	assert.NoError(t, err)
	assert.Equal(t, []lingua.LanguageCode{lingua.LangJapanese, lingua.LangKorean}, targets)

	targets, err = resolveTargets([]string{"ar"}, config)
	assert.NoError(t, err)
	assert.Equal(t, []lingua.LanguageCode{lingua.LangArabic}, targets)

	_, err = resolveTargets([]string{"tlh"}, config)
	assert.IsError(t, err, lingua.ErrUnsupportedLanguage)

	all, err := resolveTargets(nil, &lingua.Config{})
	assert.NoError(t, err)
	assert.Equal(t, len(lingua.SupportedLanguages()), len(all))
}

func TestResolveFormat(t *testing.T) {
	config := &lingua.Config{Output: lingua.OutputConfig{Format: "json"}}

	format, err := resolveFormat("", config)
	assert.NoError(t, err)
	assert.Equal(t, "json", format)

	format, err = resolveFormat("text", config)
	assert.NoError(t, err)
	assert.Equal(t, "text", format)

	_, err = resolveFormat("xml", config)
	assert.IsError(t, err, ErrInvalidOutputFormat)
}

func TestCollectDocFiles(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"a.md", "b.md", "c.txt"} {
		err := os.WriteFile(filepath.Join(dir, name), []byte("# doc\n"), 0o644)
		assert.NoError(t, err)
	}

	// explicit files win over patterns
	files, err := collectDocFiles([]string{"explicit.md"}, []string{dir})
	assert.NoError(t, err)
	assert.Equal(t, []string{"explicit.md"}, files)

	// a directory pattern scans its markdown files
	files, err = collectDocFiles(nil, []string{dir})
	assert.NoError(t, err)
	assert.Equal(t, 2, len(files))

	// a glob pattern is used as-is
	files, err = collectDocFiles(nil, []string{filepath.Join(dir, "*.txt")})
	assert.NoError(t, err)
	assert.Equal(t, 1, len(files))

	_, err = collectDocFiles(nil, []string{filepath.Join(dir, "*.rst")})
	assert.IsError(t, err, ErrNoInputFiles)
}
