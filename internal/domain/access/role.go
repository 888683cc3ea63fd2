package access

type Role string

const (
	RoleUser    Role = "user"    // Approved staff - read-only dashboards
	RoleManager Role = "manager" // Can edit roster slots
	RoleAdmin   Role = "admin"   // Approves accounts, manages teams and pages
)

// Roles lists every valid role, lowest privilege first.
var Roles = []Role{RoleUser, RoleManager, RoleAdmin}

// Rank orders roles by privilege. Unknown roles rank below user.
func (r Role) Rank() int {
	switch r {
	case RoleUser:
		return 1
	case RoleManager:
		return 2
	case RoleAdmin:
		return 3
	default:
		return 0
	}
}

func (r Role) IsValid() bool {
	return r.Rank() > 0
}

// AtLeast reports whether r carries the privileges of required.
func (r Role) AtLeast(required Role) bool {
	return r.Rank() >= required.Rank()
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}
