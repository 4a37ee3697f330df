package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"auth-srv/internal/authentication"
	"auth-srv/internal/user"
)

// Login - Lookup, verify, issue. The caller only learns success or ErrAuthenticationFailed.
func (uc *implUseCase) Login(ctx context.Context, input authentication.LoginInput) (authentication.AuthResult, error) {
	email := strings.TrimSpace(input.Email)
	out := uc.login(ctx, email, input.Password)
	uc.report(ctx, email, out)

	if out.kind != authentication.OutcomeAuthenticated {
		return authentication.AuthResult{}, authentication.ErrAuthenticationFailed
	}
	return out.result, nil
}

func (uc *implUseCase) login(ctx context.Context, email, plaintext string) (out loginOutcome) {
	defer func() {
		if r := recover(); r != nil {
			out = systemFault(fmt.Errorf("panic during login: %v", r))
		}
	}()

	// 1. Lookup
	summary, err := uc.directory.GetUserSummaryByEmail(ctx, email)
	if errors.Is(err, user.ErrUserNotFound) {
		return denied(authentication.ReasonUserNotFound, 0)
	}
	if err != nil {
		return systemFault(fmt.Errorf("get user summary: %w", err))
	}

	cred, err := uc.directory.GetCredentialRecordByEmail(ctx, email)
	if errors.Is(err, user.ErrUserNotFound) {
		return denied(authentication.ReasonCredentialNotFound, summary.UserID)
	}
	if err != nil {
		return systemFault(fmt.Errorf("get credential record: %w", err))
	}
	if cred.UserID != summary.UserID {
		return systemFault(fmt.Errorf("credential record belongs to user %d, summary to %d", cred.UserID, summary.UserID))
	}

	// 2. Verify
	ok, err := uc.hashPool.Verify(ctx, plaintext, cred.PasswordHash)
	if err != nil {
		return systemFault(fmt.Errorf("verify password: %w", err))
	}
	if !ok {
		return denied(authentication.ReasonPasswordMismatch, summary.UserID)
	}

	// 3. Issue
	tok, err := uc.tokens.Issue(summary.SubjectID(), summary.Email, summary.RoleName)
	if err != nil {
		return systemFault(fmt.Errorf("issue token: %w", err))
	}

	return authenticated(authentication.AuthResult{
		Token:     tok.Value,
		TokenID:   tok.ID,
		ExpiresAt: tok.ExpiresAt.UTC(),
		User: authentication.UserInfo{
			UserID:   summary.UserID,
			FullName: summary.FullName,
			Email:    summary.Email,
		},
	})
}
