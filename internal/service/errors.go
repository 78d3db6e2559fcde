package service

import "errors"

var (
	// ErrNotFound is returned when a requested resource does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrForbidden is returned when a resource belongs to another user.
	ErrForbidden = errors.New("resource belongs to another user")
	// ErrEmailTaken is returned when registering an already-known email.
	ErrEmailTaken = errors.New("user already exists")
	// ErrInvalidCredentials is returned on failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
