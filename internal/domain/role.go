package domain

// Role enumerates account roles ordered from least to most privileged.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleStaff    Role = "STAFF"
	RoleManager  Role = "MANAGER"
	RoleAdmin    Role = "ADMIN"
)

// Rank returns the numeric position of the role in the hierarchy.
// Unknown roles rank below every valid role.
func (r Role) Rank() int {
	switch r {
	case RoleCustomer:
		return 1
	case RoleStaff:
		return 2
	case RoleManager:
		return 3
	case RoleAdmin:
		return 4
	default:
		return 0
	}
}

// Valid reports whether the role is one of the known enum values.
func (r Role) Valid() bool {
	return r.Rank() > 0
}

// ParseRole maps a stored or submitted string onto the enum.
func ParseRole(s string) (Role, bool) {
	role := Role(s)
	return role, role.Valid()
}
