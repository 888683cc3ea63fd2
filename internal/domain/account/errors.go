package account

import "errors"

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrEmailRequired   = errors.New("identity provider returned no email")
	ErrInvalidEmail    = errors.New("identity provider returned a malformed email")
)
