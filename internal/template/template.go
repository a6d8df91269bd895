package template

import (
	"lawmate/pkg/domain"
	derrors "lawmate/pkg/domain-errors"
)

// Category groups templates for catalog display.
type Category string

const (
	CategoryCivil      Category = "civil"
	CategoryCommercial Category = "commercial"
	CategoryPersonal   Category = "personal"
	CategoryTax        Category = "tax"
)

// Template is one entry of the closed document catalog. Bodies carry
// {{identifier}} placeholders that the renderer substitutes.
type Template struct {
	ID             string
	Names          map[domain.Language]string
	Category       Category
	Body           string
	RequiredFields []string
}

// ErrTemplateNotFound keeps unknown-id lookups consistent for callers.
var ErrTemplateNotFound = derrors.New(derrors.CodeNotFound, "template not found")

// Registry holds the template catalog. Templates are defined at process start
// and never mutated, so lookups need no locking.
type Registry struct {
	templates map[string]Template
	order     []string
}

// NewRegistry builds the registry from the built-in catalog.
func NewRegistry() *Registry {
	r := &Registry{templates: make(map[string]Template, len(catalog))}
	for _, t := range catalog {
		r.templates[t.ID] = t
		r.order = append(r.order, t.ID)
	}
	return r
}

// GetTemplate resolves a template by id. Unknown ids are a hard failure;
// callers must not degrade to a partial render.
func (r *Registry) GetTemplate(id string) (Template, error) {
	t, ok := r.templates[id]
	if !ok {
		return Template{}, ErrTemplateNotFound
	}
	return t, nil
}

// RequiredFields returns the advisory field list for a template. Unknown ids
// yield an empty slice rather than an error; this query only feeds UI hints.
func (r *Registry) RequiredFields(id string) []string {
	t, ok := r.templates[id]
	if !ok {
		return nil
	}
	return t.RequiredFields
}

// List returns the catalog in declaration order.
func (r *Registry) List() []Template {
	out := make([]Template, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.templates[id])
	}
	return out
}
