package compliance

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"lawmate/internal/platform/metrics"
)

var tracer = otel.Tracer("lawmate/internal/compliance")

// Checker evaluates the advisory rule table against a rendered document.
// It is stateless after construction and safe for concurrent use.
type Checker struct {
	rules   []rule
	metrics *metrics.Metrics
}

// CheckerOption configures a Checker.
type CheckerOption func(*checkerConfig)

type checkerConfig struct {
	tripoliDetector textPredicate
	metrics         *metrics.Metrics
}

// WithJurisdictionDetector replaces the keyword-based Tripoli detection.
// Substring matching on free text is fragile; callers that know the
// jurisdiction structurally should inject their own predicate.
func WithJurisdictionDetector(p func(text string) bool) CheckerOption {
	return func(c *checkerConfig) {
		if p != nil {
			c.tripoliDetector = p
		}
	}
}

// WithMetrics records check counts per document type.
func WithMetrics(m *metrics.Metrics) CheckerOption {
	return func(c *checkerConfig) {
		c.metrics = m
	}
}

// NewChecker builds a Checker with the built-in rule table.
func NewChecker(opts ...CheckerOption) *Checker {
	cfg := &checkerConfig{tripoliDetector: defaultTripoliDetector}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return &Checker{rules: buildRules(cfg.tripoliDetector), metrics: cfg.metrics}
}

// Check runs every rule in table order against the document. Unknown document
// types are not an error; they simply match fewer rules and come back with
// the default Beirut jurisdiction.
func (c *Checker) Check(ctx context.Context, documentType, text string) Report {
	_, span := tracer.Start(ctx, "compliance.Check",
		trace.WithAttributes(attribute.String("document.type", documentType)))
	defer span.End()

	e := &evaluation{
		court:         CourtBeirut,
		procedureType: ProcedureBeirut,
		violations:    []Violation{},
	}

	for _, r := range c.rules {
		if r.docType != "" && r.docType != documentType {
			continue
		}
		if r.trigger != nil && !r.trigger(text) {
			continue
		}
		r.apply(e)
	}

	span.SetAttributes(attribute.Int("violations.count", len(e.violations)))
	if c.metrics != nil {
		c.metrics.ComplianceChecks.WithLabelValues(documentType).Inc()
	}

	return Report{
		Violations:        e.violations,
		Court:             e.court,
		StampDuty:         stampDutyFor(e.procedureType),
		RequiredDocuments: requiredDocuments,
		ProcedureType:     e.procedureType,
	}
}
