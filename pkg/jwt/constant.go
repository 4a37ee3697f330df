package jwt

const (
	// MinSecretKeyLen is the minimum length for HS256 secret key.
	MinSecretKeyLen = 32

	// DefaultExpirationMinutes applies when the configured expiration is missing or not positive.
	DefaultExpirationMinutes = 60
)
