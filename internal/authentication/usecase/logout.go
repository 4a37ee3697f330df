package usecase

import (
	"context"

	"auth-srv/internal/authentication"
)

// Logout - Tokens are stateless and there is no revocation list, so there is nothing to end.
func (uc *implUseCase) Logout(ctx context.Context, userID string) error {
	uc.l.Warnf(ctx, "authentication.usecase.Logout: logout requested for user %q but is not supported", userID)
	return authentication.ErrLogoutNotSupported
}
