package app

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
	ErrEntryNotFound = errors.New("entry not found")
	// ErrNotOwner means the record exists but belongs to another user.
	// Handlers must keep it distinguishable from ErrEntryNotFound.
	ErrNotOwner = errors.New("entry belongs to another user")
)
