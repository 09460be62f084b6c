package service

import "errors"

// Sentinel errors surfaced to controllers. Anything else coming out of a
// service is a persistence fault and is reported generically to the user.
var (
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrUserExists         = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
