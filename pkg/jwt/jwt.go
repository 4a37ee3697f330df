package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Issue generates a new HS256 token. exp is always iat + ExpirationMinutes.
func (m *managerImpl) Issue(userID, email, role string) (Token, error) {
	if len(m.secretKey) < MinSecretKeyLen || m.issuer == "" || m.audience == "" {
		return Token{}, ErrInvalidSigningConfig
	}

	// NumericDate has second precision; truncate so the returned times match the claims.
	issuedAt := m.now().UTC().Truncate(time.Second)
	expiresAt := m.ExpiresAt(issuedAt)

	// Unique JTI for auditing and future revocation
	jti := uuid.New().String()

	claims := Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   userID,
			Audience:  jwt.ClaimStrings{m.audience},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ID:        jti,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return Token{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return Token{
		Value:     signed,
		ID:        jti,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}, nil
}

// Verify verifies and parses a JWT token
func (m *managerImpl) Verify(tokenString string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(m.audience),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(m.now),
	)

	token, err := parser.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.ID == "" || claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing jti or subject", ErrInvalidToken)
	}

	return claims, nil
}

func (m *managerImpl) ExpirationMinutes() int {
	if m.expirationMinutes <= 0 {
		return DefaultExpirationMinutes
	}
	return m.expirationMinutes
}

func (m *managerImpl) ExpiresAt(issuedAt time.Time) time.Time {
	return issuedAt.Add(time.Duration(m.ExpirationMinutes()) * time.Minute)
}
