package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mssola/useragent"
	"golang.org/x/crypto/bcrypt"

	"lawmate/internal/audit"
	"lawmate/internal/platform/metrics"
	derrors "lawmate/pkg/domain-errors"
)

const bcryptCost = 10

// Service implements registration, login and profile management. Password
// hashing and token issuance live here so handlers stay thin.
type Service struct {
	store    Store
	tokens   *JWTService
	tokenTTL time.Duration
	metrics  *metrics.Metrics
	audit    audit.Publisher
	logger   *slog.Logger
}

func NewService(store Store, tokens *JWTService, tokenTTL time.Duration, m *metrics.Metrics, publisher audit.Publisher, logger *slog.Logger) *Service {
	if publisher == nil {
		publisher = audit.Noop{}
	}
	return &Service{
		store:    store,
		tokens:   tokens,
		tokenTTL: tokenTTL,
		metrics:  m,
		audit:    publisher,
		logger:   logger,
	}
}

// Register creates an account and returns it with a fresh access token.
// Professional accounts (lawyer, mokhtar) start unapproved.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, "", derrors.New(derrors.CodeInternal, "failed to hash password")
	}

	now := time.Now().UTC()
	user := &User{
		ID:           uuid.New(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hash),
		UserType:     req.UserType,
		BusinessName: req.BusinessName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Professional fields only apply to the matching account type.
	switch req.UserType {
	case UserTypeLawyer:
		user.LicenseNumber = req.LicenseNumber
		user.BarAssociation = req.BarAssociation
		user.Phone = req.Phone
		user.Specialties = req.Specialties
		user.Languages = req.Languages
		user.PricePerSession = req.PricePerSession
		user.Experience = req.Experience
	case UserTypeMokhtar:
		user.MokhtarOffice = req.MokhtarOffice
	}

	if err := s.store.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.GenerateAccessToken(user, s.tokenTTL)
	if err != nil {
		return nil, "", derrors.New(derrors.CodeInternal, "failed to issue token")
	}

	if s.metrics != nil {
		s.metrics.UsersRegistered.Inc()
	}
	s.audit.Publish(ctx, audit.NewEvent(user.ID.String(), audit.ActionUserRegistered, ""))

	return user, token, nil
}

// Login verifies credentials and returns the user with a fresh access token.
// The User-Agent header is parsed for the structured login log only.
func (s *Service) Login(ctx context.Context, email, password, userAgentHeader string) (*User, string, error) {
	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		// Do not reveal whether the email exists.
		return nil, "", derrors.New(derrors.CodeUnauthorized, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", derrors.New(derrors.CodeUnauthorized, "invalid credentials")
	}

	token, err := s.tokens.GenerateAccessToken(user, s.tokenTTL)
	if err != nil {
		return nil, "", derrors.New(derrors.CodeInternal, "failed to issue token")
	}

	ua := useragent.New(userAgentHeader)
	browser, version := ua.Browser()
	s.logger.InfoContext(ctx, "user logged in",
		"user_id", user.ID.String(),
		"user_type", user.UserType,
		"browser", browser,
		"browser_version", version,
		"os", ua.OS(),
		"mobile", ua.Mobile(),
	)
	s.audit.Publish(ctx, audit.NewEvent(user.ID.String(), audit.ActionUserLoggedIn, ""))

	return user, token, nil
}

// Profile returns the account for an authenticated user id.
func (s *Service) Profile(ctx context.Context, userID string) (*User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, derrors.New(derrors.CodeInvalidInput, "invalid user id")
	}
	return s.store.FindByID(ctx, id)
}

// ProfileUpdate carries the mutable profile fields.
type ProfileUpdate struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	BusinessName string `json:"businessName"`
}

// UpdateProfile applies the mutable fields and returns the updated account.
func (s *Service) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*User, error) {
	user, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.FirstName = update.FirstName
	user.LastName = update.LastName
	user.BusinessName = update.BusinessName
	user.UpdatedAt = time.Now().UTC()

	if err := s.store.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
