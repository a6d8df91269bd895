package httptransport

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"lawmate/internal/compliance"
	"lawmate/internal/notify"
	"lawmate/internal/template"
	"lawmate/internal/translate"
	"lawmate/pkg/domain"
	derrors "lawmate/pkg/domain-errors"
)

// GenerateService is the slice of the generate service the handlers need.
type GenerateService interface {
	Render(ctx context.Context, templateID string, fields map[string]string) (string, error)
	Templates() []template.Template
	RequiredFields(templateID string) []string
}

// ComplianceChecker runs the rule table over a document.
type ComplianceChecker interface {
	Check(ctx context.Context, documentType, text string) compliance.Report
}

// LegalHandler exposes the template catalog, document generation, compliance
// checking and term translation. These endpoints are public: generation does
// not persist anything, so there is nothing to protect.
type LegalHandler struct {
	generate GenerateService
	checker  ComplianceChecker
}

func NewLegalHandler(generate GenerateService, checker ComplianceChecker) *LegalHandler {
	return &LegalHandler{generate: generate, checker: checker}
}

func (h *LegalHandler) Register(r chi.Router) {
	r.Get("/api/templates", h.handleListTemplates)
	r.Get("/api/templates/{id}/fields", h.handleTemplateFields)
	r.Post("/api/generate", h.handleGenerate)
	r.Post("/api/compliance/check", h.handleComplianceCheck)
	r.Post("/api/translate", h.handleTranslate)
}

// templateInfo is the catalog projection. Bodies stay server-side; clients
// only ever see rendered output.
type templateInfo struct {
	ID             string                     `json:"id"`
	Names          map[domain.Language]string `json:"names"`
	Category       template.Category          `json:"category"`
	RequiredFields []string                   `json:"requiredFields"`
}

func (h *LegalHandler) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	templates := h.generate.Templates()
	out := make([]templateInfo, 0, len(templates))
	for _, t := range templates {
		out = append(out, templateInfo{
			ID:             t.ID,
			Names:          t.Names,
			Category:       t.Category,
			RequiredFields: t.RequiredFields,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *LegalHandler) handleTemplateFields(w http.ResponseWriter, r *http.Request) {
	fields := h.generate.RequiredFields(chi.URLParam(r, "id"))
	if fields == nil {
		fields = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"fields": fields})
}

func (h *LegalHandler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		TemplateID string            `json:"templateId"`
		Fields     map[string]string `json:"fields"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.TemplateID == "" {
		writeError(w, derrors.New(derrors.CodeInvalidInput, "templateId is required"))
		return
	}

	text, err := h.generate.Render(ctx, req.TemplateID, req.Fields)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"text": text,
		"sms":  notify.DocumentReady(h.templateName(req.TemplateID)),
	})
}

// templateName resolves the Arabic display name for the SMS text, falling
// back to the raw id. The render above already proved the id exists.
func (h *LegalHandler) templateName(templateID string) string {
	for _, t := range h.generate.Templates() {
		if t.ID == templateID {
			if name, ok := t.Names[domain.LanguageArabic]; ok {
				return name
			}
			break
		}
	}
	return templateID
}

func (h *LegalHandler) handleComplianceCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		DocumentType string `json:"documentType"`
		Text         string `json:"text"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.DocumentType == "" {
		writeError(w, derrors.New(derrors.CodeInvalidInput, "documentType is required"))
		return
	}

	writeJSON(w, http.StatusOK, h.checker.Check(ctx, req.DocumentType, req.Text))
}

func (h *LegalHandler) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Term string          `json:"term"`
		Lang domain.Language `json:"lang"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Term == "" {
		writeError(w, derrors.New(derrors.CodeInvalidInput, "term is required"))
		return
	}
	if req.Lang == "" {
		req.Lang = domain.LanguageArabic
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"term":        req.Term,
		"translation": translate.Term(req.Term, req.Lang),
	})
}
