package domain

import "errors"

var (
	// ErrUnauthorized indicates missing or invalid credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrEmptyComment indicates the user submitted an empty reply.
	ErrEmptyComment = errors.New("comment cannot be empty")

	// ErrNotFound indicates the requested post or comment does not exist.
	ErrNotFound = errors.New("not found")
)
