package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config holds the process-wide signing configuration.
type Config struct {
	SecretKey         string `validate:"required,min=32"`
	Issuer            string `validate:"required"`
	Audience          string `validate:"required"`
	ExpirationMinutes int
}

// Claims represents JWT claims structure.
// Subject carries the user id, ID the per-token jti.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Token is a signed bearer token together with the metadata it encodes.
type Token struct {
	Value     string
	ID        string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// managerImpl implements IManager.
type managerImpl struct {
	secretKey         []byte
	issuer            string
	audience          string
	expirationMinutes int
	now               func() time.Time
}
