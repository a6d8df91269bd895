package domain

// Language identifies the languages the service renders and translates.
type Language string

const (
	LanguageArabic  Language = "ar"
	LanguageEnglish Language = "en"
	LanguageFrench  Language = "fr"
)

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	switch l {
	case LanguageArabic, LanguageEnglish, LanguageFrench:
		return true
	}
	return false
}
