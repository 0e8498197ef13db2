package domain

// Role is the closed set of workflow roles asserted by the identity
// provider. The core trusts the asserted role and never re-derives it.
type Role string

const (
	RoleEmployee Role = "EMPLOYEE"
	RoleManager  Role = "MANAGER"
	RoleHR       Role = "HR"
)

func ParseRole(v string) (Role, bool) {
	switch Role(v) {
	case RoleEmployee, RoleManager, RoleHR:
		return Role(v), true
	default:
		return "", false
	}
}

// Actor is the authenticated identity attempting a workflow operation.
// ID is the employee id carried in the session token.
type Actor struct {
	ID   string
	Role Role
}
