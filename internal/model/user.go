package model

import (
	"strconv"
	"time"
)

// User represents a row of the users table joined with its role.
type User struct {
	ID           int64
	FullName     string
	Email        string
	PasswordHash string
	RoleName     string
	IsActive     bool

	// Timestamps
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserSummary is the non-sensitive view of a user. Safe to cache.
type UserSummary struct {
	UserID   int64  `json:"user_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	RoleName string `json:"role_name,omitempty"`
}

// UserCredential is the security-sensitive part of a user, read only during authentication.
type UserCredential struct {
	UserID       int64
	PasswordHash string
}

// Summary returns the non-sensitive view of u.
func (u User) Summary() UserSummary {
	return UserSummary{
		UserID:   u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		RoleName: u.RoleName,
	}
}

// Credential returns the credential record of u.
func (u User) Credential() UserCredential {
	return UserCredential{
		UserID:       u.ID,
		PasswordHash: u.PasswordHash,
	}
}

// SubjectID renders the user id the way it appears in the token subject.
func (s UserSummary) SubjectID() string {
	return strconv.FormatInt(s.UserID, 10)
}
