package utils

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrClipNotFound    = errors.New("clip not found")
	ErrSessionNotFound = errors.New("session not found")
)
