package domain

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrVideoNotFound    = errors.New("video not found")
	ErrCategoryExists   = errors.New("category already exists")
	ErrInvalidInput     = errors.New("invalid input")
)
