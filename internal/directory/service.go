package directory

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"lawmate/internal/auth"
	"lawmate/internal/notify"
	derrors "lawmate/pkg/domain-errors"
)

const (
	cacheKeyLawyers  = "directory:lawyers"
	cacheKeyMokhtars = "directory:mokhtars"
)

// UserSource is the slice of the user store the directory needs.
type UserSource interface {
	FindByID(ctx context.Context, id uuid.UUID) (*auth.User, error)
	ListByType(ctx context.Context, userType auth.UserType) ([]*auth.User, error)
}

// Service serves the public lawyer and mokhtar listings. Listings change
// rarely, so reads go through a TTL cache.
type Service struct {
	users  UserSource
	cache  Cache
	ttl    time.Duration
	logger *slog.Logger
}

func NewService(users UserSource, cache Cache, ttl time.Duration, logger *slog.Logger) *Service {
	return &Service{users: users, cache: cache, ttl: ttl, logger: logger}
}

// Lawyers returns the public lawyer directory.
func (s *Service) Lawyers(ctx context.Context) ([]Listing, error) {
	return s.listings(ctx, cacheKeyLawyers, auth.UserTypeLawyer)
}

// Mokhtars returns the public mokhtar directory.
func (s *Service) Mokhtars(ctx context.Context) ([]Listing, error) {
	return s.listings(ctx, cacheKeyMokhtars, auth.UserTypeMokhtar)
}

func (s *Service) listings(ctx context.Context, cacheKey string, userType auth.UserType) ([]Listing, error) {
	if cached, ok := s.cache.Get(ctx, cacheKey); ok {
		var listings []Listing
		if err := json.Unmarshal(cached, &listings); err == nil {
			return listings, nil
		}
		s.logger.WarnContext(ctx, "discarding unreadable directory cache entry", "key", cacheKey)
	}

	users, err := s.users.ListByType(ctx, userType)
	if err != nil {
		return nil, err
	}

	listings := make([]Listing, 0, len(users))
	for _, user := range users {
		listings = append(listings, listingFromUser(user))
	}

	if payload, err := json.Marshal(listings); err == nil {
		s.cache.Set(ctx, cacheKey, payload, s.ttl)
	}

	return listings, nil
}

// BookingRequest carries a mokhtar booking. The appointment itself is not
// stored anywhere yet; the endpoint only confirms.
type BookingRequest struct {
	Date string `json:"date"`
}

// BookMokhtar confirms an appointment with a mokhtar and returns the SMS
// confirmation text. Bookings are not persisted; the confirmation code is
// cosmetic.
func (s *Service) BookMokhtar(ctx context.Context, mokhtarID string, req BookingRequest) (string, error) {
	id, err := uuid.Parse(mokhtarID)
	if err != nil {
		return "", derrors.New(derrors.CodeNotFound, "mokhtar not found")
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return "", derrors.New(derrors.CodeNotFound, "mokhtar not found")
	}
	if user.UserType != auth.UserTypeMokhtar {
		return "", derrors.New(derrors.CodeNotFound, "mokhtar not found")
	}

	mokhtarName := user.FirstName + " " + user.LastName
	if user.BusinessName != "" {
		mokhtarName = user.BusinessName
	}

	return notify.BookingConfirmation(mokhtarName, req.Date), nil
}
