package usecase

import "auth-srv/internal/authentication"

// loginOutcome is the internal result of a login attempt.
// Only the Authenticated result leaves the package.
type loginOutcome struct {
	kind   authentication.OutcomeKind
	result authentication.AuthResult
	reason authentication.DenyReason
	userID int64
	err    error
}

func authenticated(result authentication.AuthResult) loginOutcome {
	return loginOutcome{
		kind:   authentication.OutcomeAuthenticated,
		result: result,
		userID: result.User.UserID,
	}
}

func denied(reason authentication.DenyReason, userID int64) loginOutcome {
	return loginOutcome{kind: authentication.OutcomeDenied, reason: reason, userID: userID}
}

func systemFault(err error) loginOutcome {
	return loginOutcome{kind: authentication.OutcomeSystemFault, err: err}
}
