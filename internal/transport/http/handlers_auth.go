package httptransport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi/v5"

	"lawmate/internal/auth"
	"lawmate/internal/platform/middleware"
	derrors "lawmate/pkg/domain-errors"
)

// AuthService is the slice of the auth service the handlers need.
type AuthService interface {
	Register(ctx context.Context, req auth.RegisterRequest) (*auth.User, string, error)
	Login(ctx context.Context, email, password, userAgentHeader string) (*auth.User, string, error)
	Profile(ctx context.Context, userID string) (*auth.User, error)
	UpdateProfile(ctx context.Context, userID string, update auth.ProfileUpdate) (*auth.User, error)
}

type AuthHandler struct {
	auth   AuthService
	logger *slog.Logger
}

func NewAuthHandler(service AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: service, logger: logger}
}

// Register mounts the public auth routes. Profile routes are mounted
// separately under the authenticated group.
func (h *AuthHandler) Register(r chi.Router) {
	r.Post("/api/register", h.handleRegister)
	r.Post("/api/login", h.handleLogin)
}

// RegisterProtected mounts the routes that need a valid bearer token.
func (h *AuthHandler) RegisterProtected(r chi.Router) {
	r.Get("/api/profile", h.handleGetProfile)
	r.Put("/api/profile", h.handleUpdateProfile)
}

type sessionResponse struct {
	Token string     `json:"token"`
	User  *auth.User `json:"user"`
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req auth.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validateRegisterRequest(req); err != nil {
		writeError(w, err)
		return
	}

	user, token, err := h.auth.Register(ctx, req)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			writeError(w, derrors.New(derrors.CodeConflict, "email already registered"))
			return
		}
		h.logger.ErrorContext(ctx, "registration failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, sessionResponse{Token: token, User: user})
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, derrors.New(derrors.CodeInvalidInput, "email and password are required"))
		return
	}

	user, token, err := h.auth.Login(ctx, req.Email, req.Password, r.UserAgent())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{Token: token, User: user})
}

func (h *AuthHandler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := h.auth.Profile(ctx, middleware.GetUserID(ctx))
	if err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			writeError(w, derrors.New(derrors.CodeNotFound, "user not found"))
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var update auth.ProfileUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, err)
		return
	}
	if update.FirstName == "" || update.LastName == "" {
		writeError(w, derrors.New(derrors.CodeInvalidInput, "first and last name are required"))
		return
	}

	user, err := h.auth.UpdateProfile(ctx, middleware.GetUserID(ctx), update)
	if err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			writeError(w, derrors.New(derrors.CodeNotFound, "user not found"))
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func validateRegisterRequest(req auth.RegisterRequest) error {
	if !govalidator.StringLength(req.Email, "1", "255") || !govalidator.IsEmail(req.Email) {
		return derrors.New(derrors.CodeInvalidInput, "invalid email")
	}
	// bcrypt truncates past 72 bytes.
	if !govalidator.StringLength(req.Password, "8", "72") {
		return derrors.New(derrors.CodeInvalidInput, "password must be between 8 and 72 characters")
	}
	if !govalidator.StringLength(req.FirstName, "1", "100") || !govalidator.StringLength(req.LastName, "1", "100") {
		return derrors.New(derrors.CodeInvalidInput, "first and last name are required")
	}
	if !req.UserType.Valid() {
		return derrors.New(derrors.CodeInvalidInput, "invalid user type")
	}
	return nil
}
