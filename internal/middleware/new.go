package middleware

import (
	"items-service/pkg/log"
	"items-service/pkg/sqldb"
)

type Middleware struct {
	l               log.Logger
	sessions        *sqldb.SessionProvider
	rateLimitPerMin int
}

func New(l log.Logger, sessions *sqldb.SessionProvider, rateLimitPerMin int) Middleware {
	return Middleware{
		l:               l,
		sessions:        sessions,
		rateLimitPerMin: rateLimitPerMin,
	}
}
