package middleware

import (
	"task-submission-bot/pkg/log"
)

// Middleware holds the gin middlewares shared by the HTTP routes.
type Middleware struct {
	l log.Logger
}

func New(l log.Logger) Middleware {
	return Middleware{l: l}
}
