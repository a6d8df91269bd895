package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lawmate/internal/platform/metrics"
	"lawmate/internal/platform/middleware"
)

// Deps carries everything the router needs. AskAI and Metrics may be nil;
// the corresponding surface degrades instead of panicking.
type Deps struct {
	Logger       *slog.Logger
	Metrics      *metrics.Metrics
	JWTValidator middleware.JWTValidator

	Auth      AuthService
	Documents DocumentService
	Generate  GenerateService
	Checker   ComplianceChecker
	Directory DirectoryService
	AskAI     AskAIClient
}

// NewRouter wires all endpoints behind the shared middleware chain.
// Authenticated routes sit in their own group behind bearer-JWT auth.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.ContentTypeJSON)
	if deps.Metrics != nil {
		r.Use(middleware.Latency(deps.Metrics))
	}

	r.Get("/health", handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	authHandler := NewAuthHandler(deps.Auth, deps.Logger)
	documentHandler := NewDocumentHandler(deps.Documents)
	legalHandler := NewLegalHandler(deps.Generate, deps.Checker)
	directoryHandler := NewDirectoryHandler(deps.Directory)
	askaiHandler := NewAskAIHandler(deps.AskAI)

	authHandler.Register(r)
	legalHandler.Register(r)
	directoryHandler.Register(r)
	askaiHandler.Register(r)

	r.Group(func(pr chi.Router) {
		pr.Use(middleware.RequireAuth(deps.JWTValidator, deps.Logger))
		authHandler.RegisterProtected(pr)
		documentHandler.Register(pr)
		directoryHandler.RegisterProtected(pr)
	})

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
