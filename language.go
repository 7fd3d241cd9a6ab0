package lingua

// LanguageCode identifies one of the supported surface languages.
// This type is shared across all packages.
type LanguageCode string

const (
	LangEnglish    LanguageCode = "en"
	LangSpanish    LanguageCode = "es"
	LangJapanese   LanguageCode = "ja"
	LangKorean     LanguageCode = "ko"
	LangArabic     LanguageCode = "ar"
	LangChinese    LanguageCode = "zh"
	LangTurkish    LanguageCode = "tr"
	LangPortuguese LanguageCode = "pt"
	LangFrench     LanguageCode = "fr"
	LangGerman     LanguageCode = "de"
	LangIndonesian LanguageCode = "id"
	LangQuechua    LanguageCode = "qu"
	LangSwahili    LanguageCode = "sw"
)

// Direction is the writing direction of a language
type Direction string

const (
	DirectionLTR Direction = "ltr"
	DirectionRTL Direction = "rtl"
)

// WordOrder is the canonical action/argument ordering of a language's
// basic clause
type WordOrder string

const (
	WordOrderSVO WordOrder = "SVO"
	WordOrderSOV WordOrder = "SOV"
	WordOrderVSO WordOrder = "VSO"
	WordOrderVOS WordOrder = "VOS"
)

// LanguageInfo describes one supported language
type LanguageInfo struct {
	Code       LanguageCode
	Name       string
	NativeName string
	Direction  Direction
	WordOrder  WordOrder
}

// languageOrder fixes the iteration order for fan-out operations and UI
// listings. It must list every key of languageTable exactly once.
var languageOrder = []LanguageCode{
	LangEnglish, LangSpanish, LangJapanese, LangKorean, LangArabic,
	LangChinese, LangTurkish, LangPortuguese, LangFrench, LangGerman,
	LangIndonesian, LangQuechua, LangSwahili,
}

var languageTable = map[LanguageCode]LanguageInfo{
	LangEnglish:    {Code: LangEnglish, Name: "English", NativeName: "English", Direction: DirectionLTR, WordOrder: WordOrderSVO},
	LangSpanish:    {Code: LangSpanish, Name: "Spanish", NativeName: "Español", Direction: DirectionLTR, WordOrder: WordOrderSVO},
	LangJapanese:   {Code: LangJapanese, Name: "Japanese", NativeName: "日本語", Direction: DirectionLTR, WordOrder: WordOrderSOV},
	LangKorean:     {Code: LangKorean, Name: "Korean", NativeName: "한국어", Direction: DirectionLTR, WordOrder: WordOrderSOV},
	LangArabic:     {Code: LangArabic, Name: "Arabic", NativeName: "العربية", Direction: DirectionRTL, WordOrder: WordOrderVSO},
	LangChinese:    {Code: LangChinese, Name: "Chinese", NativeName: "中文", Direction: DirectionLTR, WordOrder: WordOrderSVO},
	LangTurkish:    {Code: LangTurkish, Name: "Turkish", NativeName: "Türkçe", Direction: DirectionLTR, WordOrder: WordOrderSOV},
	LangPortuguese: {Code: LangPortuguese, Name: "Portuguese", NativeName: "Português", Direction: DirectionLTR, WordOrder: WordOrderSVO},
	LangFrench:     {Code: LangFrench, Name: "French", NativeName: "Français", Direction: DirectionLTR, WordOrder: WordOrderSVO},
	LangGerman:     {Code: LangGerman, Name: "German", NativeName: "Deutsch", Direction: DirectionLTR, WordOrder: WordOrderSVO},
	LangIndonesian: {Code: LangIndonesian, Name: "Indonesian", NativeName: "Bahasa Indonesia", Direction: DirectionLTR, WordOrder: WordOrderSVO},
	LangQuechua:    {Code: LangQuechua, Name: "Quechua", NativeName: "Runasimi", Direction: DirectionLTR, WordOrder: WordOrderSOV},
	LangSwahili:    {Code: LangSwahili, Name: "Swahili", NativeName: "Kiswahili", Direction: DirectionLTR, WordOrder: WordOrderSVO},
}

// SupportedLanguages returns the codes of all supported languages in a
// stable order.
func SupportedLanguages() []LanguageCode {
	result := make([]LanguageCode, len(languageOrder))
	copy(result, languageOrder)

	return result
}

// GetLanguageInfo returns the metadata for a language code. The second
// return value is false for unsupported codes.
func GetLanguageInfo(code LanguageCode) (LanguageInfo, bool) {
	info, ok := languageTable[code]
	return info, ok
}

// IsLanguageSupported reports whether code is one of the 13 supported
// language codes.
func IsLanguageSupported(code LanguageCode) bool {
	_, ok := languageTable[code]
	return ok
}

// AllLanguageInfo returns the metadata of every supported language in the
// same order as SupportedLanguages. The slice is a copy; mutating it does
// not affect the table.
func AllLanguageInfo() []LanguageInfo {
	result := make([]LanguageInfo, 0, len(languageOrder))
	for _, code := range languageOrder {
		result = append(result, languageTable[code])
	}

	return result
}
