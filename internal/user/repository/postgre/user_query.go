package postgre

import (
	"database/sql"

	"auth-srv/internal/model"
)

const (
	// uniqueViolation is the PostgreSQL SQLSTATE for a unique constraint failure.
	uniqueViolation = "23505"

	queryGetUserByEmail = `
SELECT u.id, u.full_name, u.email, u.password_hash, COALESCE(r.name, ''), u.is_active, u.created_at, u.updated_at
FROM users u
LEFT JOIN roles r ON r.id = u.role_id
WHERE u.email = $1 AND u.is_active = TRUE`

	// queryCreateUser inserts nothing when the role does not exist.
	queryCreateUser = `
INSERT INTO users (full_name, email, password_hash, role_id)
SELECT $1, $2, $3, r.id FROM roles r WHERE r.name = $4
RETURNING id, is_active, created_at, updated_at`
)

// scanUser reads a row produced by queryGetUserByEmail.
func scanUser(row *sql.Row) (model.User, error) {
	var u model.User
	err := row.Scan(
		&u.ID,
		&u.FullName,
		&u.Email,
		&u.PasswordHash,
		&u.RoleName,
		&u.IsActive,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}
