package access

import "errors"

var (
	ErrUnauthenticated  = errors.New("authentication required")
	ErrAwaitingApproval = errors.New("account is awaiting admin approval")
	ErrForbidden        = errors.New("insufficient privileges")
)
