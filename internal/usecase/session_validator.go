package usecase

import (
	"pricing-panel/internal/pkg/jwt"
)

// SessionValidator provides session token validation for middleware.
type SessionValidator interface {
	// ValidateSession returns the company the token was issued for.
	ValidateSession(tokenString string) (string, error)
}

type sessionValidatorImpl struct {
	jwtService *jwt.Service
}

func NewSessionValidator(jwtService *jwt.Service) SessionValidator {
	return &sessionValidatorImpl{
		jwtService: jwtService,
	}
}

func (s *sessionValidatorImpl) ValidateSession(tokenString string) (string, error) {
	claims, err := s.jwtService.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}
	return claims.CompanyID, nil
}
