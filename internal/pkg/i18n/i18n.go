package i18n

// Language is a supported display language code.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageHindi   Language = "hi"
	LanguageTamil   Language = "ta"
)

// LanguageDefault is used whenever no valid selection is persisted.
const LanguageDefault = LanguageEnglish

// ParseLanguage maps a raw stored code to a Language. Unknown codes are
// rejected so corrupted preference records fall back to the default.
func ParseLanguage(code string) (Language, bool) {
	switch Language(code) {
	case LanguageEnglish, LanguageHindi, LanguageTamil:
		return Language(code), true
	}
	return LanguageDefault, false
}

// Languages lists every supported language.
func Languages() []Language {
	return []Language{LanguageEnglish, LanguageHindi, LanguageTamil}
}

// Translate resolves key for lang. Resolution order: exact key+language
// match, then the caller-supplied fallback, then the raw key itself. It
// never returns an empty string.
func Translate(lang Language, key, fallback string) string {
	if entry, ok := translations[key]; ok {
		if text, ok := entry[lang]; ok && text != "" {
			return text
		}
	}
	if fallback != "" {
		return fallback
	}
	return key
}

// Keys returns every translation key, mainly for diagnostics and tests.
func Keys() []string {
	keys := make([]string, 0, len(translations))
	for k := range translations {
		keys = append(keys, k)
	}
	return keys
}
