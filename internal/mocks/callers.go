package mocks

import "github.com/cmlabs-hris/manager-portal-go/internal/domain/access"

// Callers shared by service and handler tests.
var (
	AdminCaller   = access.Caller{AccountID: 1, Email: "boss@example.com", Role: access.RoleAdmin, Status: access.StatusApproved}
	ManagerCaller = access.Caller{AccountID: 2, Email: "lead@example.com", Role: access.RoleManager, Status: access.StatusApproved}
	UserCaller    = access.Caller{AccountID: 3, Email: "staff@example.com", Role: access.RoleUser, Status: access.StatusApproved}
	PendingCaller = access.Caller{AccountID: 4, Email: "new@example.com", Role: access.RoleUser, Status: access.StatusPending}
	Anonymous     = access.Caller{}
)
