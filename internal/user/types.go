package user

import (
	"strings"
	"time"
)

const (
	MinPasswordLen = 8
	// MaxPasswordLen is bcrypt's input limit.
	MaxPasswordLen = 72
	MaxFullNameLen = 100
)

type CreateInput struct {
	FullName string
	Email    string
	Password string
	RoleName string
}

// Config tunes the directory.
type Config struct {
	// SummaryCacheTTL is how long a user summary stays in Redis. Zero disables caching.
	SummaryCacheTTL time.Duration
	// DefaultRole is assigned to users created without a role.
	DefaultRole string
}

// NormalizeEmail trims and lower-cases an email so lookups and inserts agree.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
