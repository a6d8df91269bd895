package translate

import "lawmate/pkg/domain"

// terms maps canonical English legal terms to their equivalents. Lookup is an
// exact string match; no fuzzy or case-insensitive matching.
var terms = map[string]map[domain.Language]string{
	"Force majeure": {
		domain.LanguageArabic:  "القوة القاهرة",
		domain.LanguageEnglish: "Force majeure",
		domain.LanguageFrench:  "Force majeure",
	},
	"Jurisdiction": {
		domain.LanguageArabic:  "الاختصاص القضائي",
		domain.LanguageEnglish: "Jurisdiction",
		domain.LanguageFrench:  "Juridiction",
	},
	"Breach of contract": {
		domain.LanguageArabic:  "إخلال بالعقد",
		domain.LanguageEnglish: "Breach of contract",
		domain.LanguageFrench:  "Rupture de contrat",
	},
	"Notarization": {
		domain.LanguageArabic:  "التوثيق العدلي",
		domain.LanguageEnglish: "Notarization",
		domain.LanguageFrench:  "Notarisation",
	},
}

// Term translates a legal term into the target language. Unknown terms and
// unknown languages come back unchanged; this is a total function and never
// fails.
func Term(term string, target domain.Language) string {
	entry, ok := terms[term]
	if !ok {
		return term
	}
	translated, ok := entry[target]
	if !ok {
		return term
	}
	return translated
}
