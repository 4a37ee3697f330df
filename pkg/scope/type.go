package scope

// Payload is the verified content of a bearer token.
type Payload struct {
	UserID    string
	Email     string
	Role      string
	TokenID   string
	IssuedAt  int64
	ExpiresAt int64
}

type payloadKey struct{}
type scopeKey struct{}
