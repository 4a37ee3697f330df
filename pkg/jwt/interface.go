package jwt

import "time"

// IManager issues and verifies HS256 bearer tokens.
// Implementations are safe for concurrent use.
type IManager interface {
	// Issue mints a token for the user. role may be empty.
	Issue(userID, email, role string) (Token, error)
	// Verify checks signature, algorithm, issuer, audience and expiry.
	Verify(tokenString string) (*Claims, error)
	// ExpirationMinutes is the token lifetime, falling back to DefaultExpirationMinutes.
	ExpirationMinutes() int
	// ExpiresAt returns issuedAt plus the token lifetime.
	ExpiresAt(issuedAt time.Time) time.Time
}

// New validates cfg and creates a JWT manager. A misconfigured signer is a startup error.
func New(cfg Config) (IManager, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return &managerImpl{
		secretKey:         []byte(cfg.SecretKey),
		issuer:            cfg.Issuer,
		audience:          cfg.Audience,
		expirationMinutes: cfg.ExpirationMinutes,
		now:               time.Now,
	}, nil
}
