package usecase

import (
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"auth-srv/internal/authentication"
	pkgJWT "auth-srv/pkg/jwt"
	"auth-srv/pkg/log"
	"auth-srv/pkg/password"
)

const (
	// publishTimeout bounds a single background audit publish.
	publishTimeout = 2 * time.Second
	// maxPendingPublishes caps audit publishes in flight. Events beyond it are dropped.
	maxPendingPublishes = 256
)

type implUseCase struct {
	directory authentication.Directory
	hashPool  *password.Pool
	tokens    pkgJWT.IManager
	publisher authentication.EventPublisher
	l         log.Logger
	now       func() time.Time

	publishSlots *semaphore.Weighted
	pending      sync.WaitGroup
}

// New wires the login flow. publisher may be nil.
func New(
	directory authentication.Directory,
	hashPool *password.Pool,
	tokens pkgJWT.IManager,
	publisher authentication.EventPublisher,
	l log.Logger,
) authentication.UseCase {
	return &implUseCase{
		directory: directory,
		hashPool:  hashPool,
		tokens:    tokens,
		publisher: publisher,
		l:         l,
		now:       time.Now,

		publishSlots: semaphore.NewWeighted(maxPendingPublishes),
	}
}
