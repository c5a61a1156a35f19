// Package service defines the interfaces for external collaborators
// (auth provider, document generation, push delivery).
package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the claims extracted from an access token issued by the
// external auth provider. The subject is an opaque user identity; the core
// never stores credentials.
type Claims struct {
	Subject string
	Email   string
	jwt.RegisteredClaims
}

// TokenService defines the interface for validating access tokens minted by
// the external auth provider. This abstracts the token details from the
// delivery layer.
type TokenService interface {
	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
