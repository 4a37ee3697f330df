package model

// Scope is the authenticated caller, derived from a verified bearer token.
type Scope struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Role      string `json:"role,omitempty"`
	TokenID   string `json:"token_id"`
	ExpiresAt int64  `json:"expires_at"`
}
