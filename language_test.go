package lingua

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestLanguageTableIsComplete(t *testing.T) {
	codes := SupportedLanguages()
	assert.Equal(t, 13, len(codes))

	for _, code := range codes {
		info, ok := GetLanguageInfo(code)
		assert.True(t, ok)
		assert.Equal(t, code, info.Code)
		assert.NotZero(t, info.Name)
		assert.NotZero(t, info.NativeName)
	}
}

func TestWordOrderPartition(t *testing.T) {
	expected := map[LanguageCode]WordOrder{
		LangEnglish:    WordOrderSVO,
		LangSpanish:    WordOrderSVO,
		LangChinese:    WordOrderSVO,
		LangPortuguese: WordOrderSVO,
		LangFrench:     WordOrderSVO,
		LangGerman:     WordOrderSVO,
		LangIndonesian: WordOrderSVO,
		LangSwahili:    WordOrderSVO,
		LangJapanese:   WordOrderSOV,
		LangKorean:     WordOrderSOV,
		LangTurkish:    WordOrderSOV,
		LangQuechua:    WordOrderSOV,
		LangArabic:     WordOrderVSO,
	}

	for code, order := range expected {
		info, ok := GetLanguageInfo(code)
		assert.True(t, ok)
		assert.Equal(t, order, info.WordOrder)
	}
}

func TestArabicIsOnlyRTL(t *testing.T) {
	for _, info := range AllLanguageInfo() {
		if info.Code == LangArabic {
			assert.Equal(t, DirectionRTL, info.Direction)
		} else {
			assert.Equal(t, DirectionLTR, info.Direction)
		}
	}
}

func TestGetLanguageInfoUnsupported(t *testing.T) {
	_, ok := GetLanguageInfo("xx")
	assert.False(t, ok)
	assert.False(t, IsLanguageSupported("xx"))
}

func TestAllLanguageInfoReturnsCopy(t *testing.T) {
	first := AllLanguageInfo()
	first[0].Name = "mutated"

	second := AllLanguageInfo()
	assert.NotEqual(t, "mutated", second[0].Name)
}

func TestActionVocabulary(t *testing.T) {
	actions := Actions()
	assert.Equal(t, 23, len(actions))

	for _, a := range actions {
		assert.True(t, IsValidAction(a))
	}

	assert.False(t, IsValidAction("explode"))
}
