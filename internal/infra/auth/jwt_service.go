// Package auth provides the concrete implementation of the auth-provider
// boundary. Tokens are minted by the external provider; this service only
// validates them and extracts the opaque user identity.
package auth

import (
	"github.com/shipeast-beep/upkeep-guardian-home/config"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/domain/service"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// jwtService is a concrete implementation of the TokenService interface using
// the JWT standard.
type jwtService struct {
	accessSecret string
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{accessSecret: cfg.SecretKey.Access}, nil
}

// ValidateToken checks the validity of a token string and returns its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse access token")
	}
	if !token.Valid {
		return nil, errors.New("invalid access token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected token claims format")
	}

	claims := &service.Claims{}
	if sub, ok := mapClaims["sub"].(string); ok {
		claims.Subject = sub
	}
	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}
	if claims.Subject == "" {
		return nil, errors.New("access token carries no subject")
	}

	return claims, nil
}
