package middleware

import (
	pkgJWT "auth-srv/pkg/jwt"
	"auth-srv/pkg/log"
)

type Middleware struct {
	l          log.Logger
	jwtManager pkgJWT.IManager
}

func New(l log.Logger, jwtManager pkgJWT.IManager) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
	}
}
