package httptransport

import (
	"context"
	"errors"
	"net/http"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi/v5"

	"lawmate/internal/document"
	"lawmate/internal/platform/middleware"
	derrors "lawmate/pkg/domain-errors"
)

// DocumentService is the slice of the document service the handlers need.
type DocumentService interface {
	Create(ctx context.Context, userID string, req document.CreateRequest) (*document.Document, error)
	List(ctx context.Context, userID string) ([]*document.Document, error)
	Get(ctx context.Context, userID, docID string) (*document.Document, error)
	Update(ctx context.Context, userID, docID string, req document.UpdateRequest) (*document.Document, error)
	Delete(ctx context.Context, userID, docID string) error
}

type DocumentHandler struct {
	docs DocumentService
}

func NewDocumentHandler(docs DocumentService) *DocumentHandler {
	return &DocumentHandler{docs: docs}
}

// Register mounts the document CRUD routes. All of them require auth.
func (h *DocumentHandler) Register(r chi.Router) {
	r.Route("/api/documents", func(r chi.Router) {
		r.Post("/", h.handleCreate)
		r.Get("/", h.handleList)
		r.Get("/{id}", h.handleGet)
		r.Put("/{id}", h.handleUpdate)
		r.Delete("/{id}", h.handleDelete)
	})
}

func (h *DocumentHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req document.CreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if !govalidator.StringLength(req.Title, "1", "500") {
		writeError(w, derrors.New(derrors.CodeInvalidInput, "title is required"))
		return
	}

	doc, err := h.docs.Create(ctx, middleware.GetUserID(ctx), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, doc)
}

func (h *DocumentHandler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	docs, err := h.docs.List(ctx, middleware.GetUserID(ctx))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, docs)
}

func (h *DocumentHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	doc, err := h.docs.Get(ctx, middleware.GetUserID(ctx), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, documentError(err))
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

func (h *DocumentHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req document.UpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if !govalidator.StringLength(req.Title, "1", "500") {
		writeError(w, derrors.New(derrors.CodeInvalidInput, "title is required"))
		return
	}

	doc, err := h.docs.Update(ctx, middleware.GetUserID(ctx), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, documentError(err))
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

func (h *DocumentHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.docs.Delete(ctx, middleware.GetUserID(ctx), chi.URLParam(r, "id")); err != nil {
		writeError(w, documentError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func documentError(err error) error {
	if errors.Is(err, document.ErrNotFound) {
		return derrors.New(derrors.CodeNotFound, "document not found")
	}
	return err
}
