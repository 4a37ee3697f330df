package scope

import (
	"context"

	"auth-srv/internal/model"
	pkgJWT "auth-srv/pkg/jwt"
)

// NewPayload converts verified claims into a Payload.
func NewPayload(claims *pkgJWT.Claims) Payload {
	p := Payload{
		UserID:  claims.Subject,
		Email:   claims.Email,
		Role:    claims.Role,
		TokenID: claims.ID,
	}
	if claims.IssuedAt != nil {
		p.IssuedAt = claims.IssuedAt.Unix()
	}
	if claims.ExpiresAt != nil {
		p.ExpiresAt = claims.ExpiresAt.Unix()
	}
	return p
}

// NewScope creates a new scope.
func NewScope(payload Payload) model.Scope {
	return model.Scope{
		UserID:    payload.UserID,
		Email:     payload.Email,
		Role:      payload.Role,
		TokenID:   payload.TokenID,
		ExpiresAt: payload.ExpiresAt,
	}
}

// SetPayloadToContext stores the token payload in ctx.
func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, payloadKey{}, payload)
}

// GetPayloadFromContext returns the token payload and whether it was set.
func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	p, ok := ctx.Value(payloadKey{}).(Payload)
	return p, ok
}

// SetScopeToContext stores the caller scope in ctx.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// GetScopeFromContext returns the caller scope, or a zero Scope when unauthenticated.
func GetScopeFromContext(ctx context.Context) model.Scope {
	sc, _ := ctx.Value(scopeKey{}).(model.Scope)
	return sc
}
