package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	derrors "lawmate/pkg/domain-errors"
)

const chromeUA = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

type ServiceSuite struct {
	suite.Suite
	service *Service
	ctx     context.Context
}

func (s *ServiceSuite) SetupTest() {
	tokens := NewJWTService("test-signing-key", "lawmate-test")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = NewService(NewInMemoryStore(), tokens, time.Hour, nil, nil, logger)
	s.ctx = context.Background()
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) register(req RegisterRequest) (*User, string) {
	user, token, err := s.service.Register(s.ctx, req)
	s.Require().NoError(err)
	return user, token
}

func (s *ServiceSuite) TestRegister() {
	s.Run("creates a regular user and issues a token", func() {
		user, token := s.register(RegisterRequest{
			FirstName: "Ahmad",
			LastName:  "Khalil",
			Email:     "ahmad@example.com",
			Password:  "secret123",
			UserType:  UserTypeUser,
		})

		s.NotEmpty(token)
		s.False(user.Approved)
		s.NotEqual("secret123", user.PasswordHash)

		claims, err := s.service.tokens.ValidateToken(token)
		s.Require().NoError(err)
		s.Equal(user.ID.String(), claims.UserID)
		s.Equal("user", claims.UserType)
	})

	s.Run("rejects duplicate emails", func() {
		req := RegisterRequest{Email: "dup@example.com", Password: "pw", UserType: UserTypeUser}
		s.register(req)

		_, _, err := s.service.Register(s.ctx, req)
		s.Require().Error(err)
		s.ErrorIs(err, ErrEmailTaken)
		s.True(derrors.Is(err, derrors.CodeConflict))
	})

	s.Run("drops lawyer fields for non-lawyer accounts", func() {
		user, _ := s.register(RegisterRequest{
			Email:         "plain@example.com",
			Password:      "pw",
			UserType:      UserTypeUser,
			LicenseNumber: "L-1234",
			MokhtarOffice: "Beirut Office",
		})

		s.Empty(user.LicenseNumber)
		s.Empty(user.MokhtarOffice)
	})

	s.Run("keeps professional fields for the matching type", func() {
		lawyer, _ := s.register(RegisterRequest{
			Email:          "lawyer@example.com",
			Password:       "pw",
			UserType:       UserTypeLawyer,
			LicenseNumber:  "L-5678",
			BarAssociation: "Beirut Bar",
		})
		s.Equal("L-5678", lawyer.LicenseNumber)

		mokhtar, _ := s.register(RegisterRequest{
			Email:         "mokhtar@example.com",
			Password:      "pw",
			UserType:      UserTypeMokhtar,
			MokhtarOffice: "Achrafieh",
		})
		s.Equal("Achrafieh", mokhtar.MokhtarOffice)
	})
}

func (s *ServiceSuite) TestLogin() {
	s.register(RegisterRequest{Email: "login@example.com", Password: "correct-horse", UserType: UserTypeUser})

	s.Run("succeeds with valid credentials", func() {
		user, token, err := s.service.Login(s.ctx, "login@example.com", "correct-horse", chromeUA)
		s.Require().NoError(err)
		s.Equal("login@example.com", user.Email)
		s.NotEmpty(token)
	})

	s.Run("rejects a wrong password", func() {
		_, _, err := s.service.Login(s.ctx, "login@example.com", "wrong", chromeUA)
		s.Require().Error(err)
		s.True(derrors.Is(err, derrors.CodeUnauthorized))
	})

	s.Run("rejects an unknown email with the same error", func() {
		_, _, err := s.service.Login(s.ctx, "nobody@example.com", "whatever", chromeUA)
		s.Require().Error(err)
		s.True(derrors.Is(err, derrors.CodeUnauthorized))
	})
}

func (s *ServiceSuite) TestProfile() {
	user, _ := s.register(RegisterRequest{
		FirstName: "Rana",
		Email:     "rana@example.com",
		Password:  "pw",
		UserType:  UserTypeUser,
	})

	s.Run("fetches the profile by id", func() {
		got, err := s.service.Profile(s.ctx, user.ID.String())
		s.Require().NoError(err)
		s.Equal("Rana", got.FirstName)
	})

	s.Run("rejects malformed ids", func() {
		_, err := s.service.Profile(s.ctx, "not-a-uuid")
		s.Require().Error(err)
		s.True(derrors.Is(err, derrors.CodeInvalidInput))
	})

	s.Run("updates mutable fields", func() {
		got, err := s.service.UpdateProfile(s.ctx, user.ID.String(), ProfileUpdate{
			FirstName:    "Rana",
			LastName:     "Haddad",
			BusinessName: "Haddad Law",
		})
		s.Require().NoError(err)
		s.Equal("Haddad", got.LastName)
		s.Equal("Haddad Law", got.BusinessName)
	})
}

func (s *ServiceSuite) TestTokenValidation() {
	s.Run("rejects garbage tokens", func() {
		_, err := s.service.tokens.ValidateToken("not-a-token")
		s.Require().Error(err)
		s.True(derrors.Is(err, derrors.CodeUnauthorized))
	})

	s.Run("rejects expired tokens", func() {
		user, _ := s.register(RegisterRequest{Email: "expired@example.com", Password: "pw", UserType: UserTypeUser})
		token, err := s.service.tokens.GenerateAccessToken(user, -time.Minute)
		s.Require().NoError(err)

		_, err = s.service.tokens.ValidateToken(token)
		s.Require().Error(err)
		s.True(derrors.Is(err, derrors.CodeUnauthorized))
	})
}
