package repository

type CreateUserOptions struct {
	FullName     string
	Email        string
	PasswordHash string
	RoleName     string
}
