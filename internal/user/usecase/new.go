package usecase

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"auth-srv/internal/user"
	"auth-srv/internal/user/repository"
	"auth-srv/pkg/log"
	"auth-srv/pkg/password"
)

// DefaultRole is assigned when Config.DefaultRole is empty.
const DefaultRole = "USER"

type implUseCase struct {
	repo      repository.PostgresRepository
	cacheRepo repository.CacheRepository
	hashPool  *password.Pool
	l         log.Logger
	cfg       user.Config
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// New builds the user directory. cacheRepo may be nil to disable the summary cache.
func New(
	repo repository.PostgresRepository,
	cacheRepo repository.CacheRepository,
	hashPool *password.Pool,
	l log.Logger,
	cfg user.Config,
) user.UseCase {
	if cfg.DefaultRole == "" {
		cfg.DefaultRole = DefaultRole
	}
	return &implUseCase{
		repo:      repo,
		cacheRepo: cacheRepo,
		hashPool:  hashPool,
		l:         l,
		cfg:       cfg,
	}
}
