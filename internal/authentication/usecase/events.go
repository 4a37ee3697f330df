package usecase

import (
	"context"

	"auth-srv/internal/authentication"
)

// report logs the outcome and hands it to the publisher in the background.
// Login never waits on the broker.
func (uc *implUseCase) report(ctx context.Context, email string, out loginOutcome) {
	switch out.kind {
	case authentication.OutcomeAuthenticated:
		uc.l.Infof(ctx, "authentication.usecase.Login: user %d authenticated, token %s", out.userID, out.result.TokenID)
	case authentication.OutcomeDenied:
		uc.l.Warnf(ctx, "authentication.usecase.Login: login denied for %q: %s", email, out.reason)
	default:
		uc.l.Errorf(ctx, "authentication.usecase.Login: login failed for %q: %v", email, out.err)
	}

	if uc.publisher == nil {
		return
	}

	event := authentication.LoginEvent{
		Kind:       out.kind,
		Email:      email,
		UserID:     out.userID,
		Reason:     out.reason,
		OccurredAt: uc.now().UTC(),
	}

	if !uc.publishSlots.TryAcquire(1) {
		uc.l.Warnf(ctx, "authentication.usecase.report: too many login events pending, dropping event for %q", email)
		return
	}

	bgCtx := context.WithoutCancel(ctx)
	uc.pending.Add(1)
	go func() {
		defer uc.pending.Done()
		defer uc.publishSlots.Release(1)

		pubCtx, cancel := context.WithTimeout(bgCtx, publishTimeout)
		defer cancel()
		if err := uc.publisher.PublishLoginEvent(pubCtx, event); err != nil {
			uc.l.Warnf(bgCtx, "authentication.usecase.report: PublishLoginEvent failed: %v", err)
		}
	}()
}
