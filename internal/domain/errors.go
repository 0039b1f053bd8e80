package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrSlugTaken          = errors.New("slug already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
