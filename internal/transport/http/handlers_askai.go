package httptransport

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"lawmate/internal/askai"
	derrors "lawmate/pkg/domain-errors"
)

// AskAIClient forwards legal questions to the hosted assistant.
type AskAIClient interface {
	Ask(ctx context.Context, q askai.Question) (*askai.Answer, error)
}

// AskAIHandler proxies the legal Q&A endpoint. When no upstream is configured
// the route still exists but reports unavailability.
type AskAIHandler struct {
	client AskAIClient
}

func NewAskAIHandler(client AskAIClient) *AskAIHandler {
	return &AskAIHandler{client: client}
}

func (h *AskAIHandler) Register(r chi.Router) {
	r.Post("/api/askai", h.handleAsk)
}

func (h *AskAIHandler) handleAsk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.client == nil {
		writeError(w, derrors.New(derrors.CodeUnavailable, "legal assistant is not configured"))
		return
	}

	var q askai.Question
	if err := decodeJSON(r, &q); err != nil {
		writeError(w, err)
		return
	}

	answer, err := h.client.Ask(ctx, q)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"answer": answer.Text()})
}
