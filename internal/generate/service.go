package generate

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"lawmate/internal/platform/metrics"
	"lawmate/internal/template"
)

var tracer = otel.Tracer("lawmate/internal/generate")

// Service turns a template id plus field values into final document text.
// Persistence is the caller's concern; this service only renders.
type Service struct {
	registry *template.Registry
	renderer *template.Renderer
	metrics  *metrics.Metrics
}

// NewService wires the registry and renderer. metrics may be nil in tests.
func NewService(registry *template.Registry, renderer *template.Renderer, m *metrics.Metrics) *Service {
	return &Service{registry: registry, renderer: renderer, metrics: m}
}

// Render resolves the template and substitutes the supplied fields. An
// unknown template id is a terminal error for the render; there is no
// fallback template.
func (s *Service) Render(ctx context.Context, templateID string, fields map[string]string) (string, error) {
	_, span := tracer.Start(ctx, "generate.Render",
		trace.WithAttributes(attribute.String("template.id", templateID)))
	defer span.End()

	tpl, err := s.registry.GetTemplate(templateID)
	if err != nil {
		return "", err
	}

	text := s.renderer.Render(tpl, fields)
	if s.metrics != nil {
		s.metrics.DocumentsRendered.WithLabelValues(templateID).Inc()
	}
	return text, nil
}

// Templates lists the catalog for UI display.
func (s *Service) Templates() []template.Template {
	return s.registry.List()
}

// RequiredFields returns the advisory field list for a template id. Unknown
// ids yield an empty list, not an error.
func (s *Service) RequiredFields(templateID string) []string {
	return s.registry.RequiredFields(templateID)
}
