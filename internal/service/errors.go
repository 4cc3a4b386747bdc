package service

import "errors"

var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("payment belongs to another merchant")
	ErrNotFound          = errors.New("payment not found")
	ErrUnsupportedMethod = errors.New("unsupported method")
)
