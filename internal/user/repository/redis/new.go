package redis

import (
	"auth-srv/internal/user/repository"
	"auth-srv/pkg/log"
	pkgRedis "auth-srv/pkg/redis"
)

const summaryKeyPrefix = "user:summary:"

type implCache struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

func New(redis pkgRedis.IRedis, l log.Logger) repository.CacheRepository {
	return &implCache{
		redis: redis,
		l:     l,
	}
}

func summaryKey(email string) string {
	return summaryKeyPrefix + email
}
