package template

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"lawmate/pkg/domain"
)

// Watermark is appended to every rendered document, separated from the body
// by a blank line. Article 84 of the Lebanese Bar Association law governs
// document drafting assistance.
const Watermark = "بموجب المادة ٨٤ من قانون المحاماة اللبناني"

var placeholderPattern = regexp.MustCompile(`\{\{([a-zA-Z][a-zA-Z0-9_]*)\}\}`)

// Clock abstracts time.Now so date substitution is testable.
type Clock func() time.Time

// Renderer substitutes {{identifier}} tokens in template bodies. Missing
// fields stay visible as literal tokens; the one exception is {{date}}, which
// falls back to the current date in the renderer's language.
type Renderer struct {
	lang  domain.Language
	clock Clock
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithLanguage sets the locale used for date fallback formatting.
func WithLanguage(lang domain.Language) RendererOption {
	return func(r *Renderer) {
		if lang.Valid() {
			r.lang = lang
		}
	}
}

// WithClock sets the clock function for testability.
func WithClock(clock Clock) RendererOption {
	return func(r *Renderer) {
		if clock != nil {
			r.clock = clock
		}
	}
}

// NewRenderer builds a Renderer defaulting to Arabic and real time.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		lang:  domain.LanguageArabic,
		clock: time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Render produces the final document text. Substitution is a single pass over
// the body: a field value containing {{...}} syntax is never re-processed.
func (r *Renderer) Render(tpl Template, fields map[string]string) string {
	body := placeholderPattern.ReplaceAllStringFunc(tpl.Body, func(token string) string {
		name := token[2 : len(token)-2]
		if value, ok := fields[name]; ok {
			return value
		}
		if name == "date" {
			return FormatDate(r.clock(), r.lang)
		}
		return token
	})

	return body + "\n\n" + Watermark
}

var arabicIndicDigits = [10]rune{'٠', '١', '٢', '٣', '٤', '٥', '٦', '٧', '٨', '٩'}

// FormatDate renders a calendar date the way each locale writes it. Arabic
// output uses Arabic-Indic digits.
func FormatDate(t time.Time, lang domain.Language) string {
	switch lang {
	case domain.LanguageEnglish:
		return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
	case domain.LanguageFrench:
		return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
	default:
		return toArabicIndic(fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year()))
	}
}

func toArabicIndic(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(arabicIndicDigits[r-'0'])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
