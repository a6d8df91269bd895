package httptransport

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"lawmate/internal/directory"
	derrors "lawmate/pkg/domain-errors"
)

// DirectoryService is the slice of the directory service the handlers need.
type DirectoryService interface {
	Lawyers(ctx context.Context) ([]directory.Listing, error)
	Mokhtars(ctx context.Context) ([]directory.Listing, error)
	BookMokhtar(ctx context.Context, mokhtarID string, req directory.BookingRequest) (string, error)
}

type DirectoryHandler struct {
	directory DirectoryService
}

func NewDirectoryHandler(service DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directory: service}
}

// Register mounts the public listing routes.
func (h *DirectoryHandler) Register(r chi.Router) {
	r.Get("/api/lawyers", h.handleLawyers)
	r.Get("/api/mokhtars", h.handleMokhtars)
}

// RegisterProtected mounts the booking route, which needs a signed-in user.
func (h *DirectoryHandler) RegisterProtected(r chi.Router) {
	r.Post("/api/mokhtars/{id}/book", h.handleBookMokhtar)
}

func (h *DirectoryHandler) handleLawyers(w http.ResponseWriter, r *http.Request) {
	listings, err := h.directory.Lawyers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listings)
}

func (h *DirectoryHandler) handleMokhtars(w http.ResponseWriter, r *http.Request) {
	listings, err := h.directory.Mokhtars(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listings)
}

func (h *DirectoryHandler) handleBookMokhtar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req directory.BookingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Date == "" {
		writeError(w, derrors.New(derrors.CodeInvalidInput, "date is required"))
		return
	}

	confirmation, err := h.directory.BookMokhtar(ctx, chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"confirmation": confirmation})
}
