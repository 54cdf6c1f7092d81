package api

import "campus-reservation/internal/pkg/errs"

var (
	errUnauthenticated = errs.New("no authenticated student in context")
	errInvalidID       = errs.New("id must be positive")
)
