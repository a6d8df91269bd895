package auth

import "lawmate/internal/platform/middleware"

// MiddlewareValidator adapts JWTService to the middleware's validator
// interface so the platform package does not import auth types.
type MiddlewareValidator struct {
	tokens *JWTService
}

func NewMiddlewareValidator(tokens *JWTService) *MiddlewareValidator {
	return &MiddlewareValidator{tokens: tokens}
}

func (v *MiddlewareValidator) ValidateToken(tokenString string) (*middleware.JWTClaims, error) {
	claims, err := v.tokens.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return &middleware.JWTClaims{
		UserID:   claims.UserID,
		Email:    claims.Email,
		UserType: claims.UserType,
	}, nil
}
