package auth

import "github.com/spec-kit/restaurant-service/internal/domain"

// Strictness selects which role-satisfaction rule an operation requires.
type Strictness int

const (
	// Hierarchical is the default rule: admin passes unconditionally, an
	// exact match passes, a manager satisfies a staff requirement, and
	// otherwise a role passes when it outranks a required role.
	Hierarchical Strictness = iota

	// ExactOrAdmin is the stricter rule used by sensitive operations such
	// as changing another account's role: only admins or an exact role
	// match pass. There is no rank fallback.
	ExactOrAdmin
)

// Satisfies reports whether role meets at least one of the required roles
// under the given strictness. The hierarchical rule is a union of four
// checks; the exact-match and manager-staff branches are subsumed by the
// rank comparison for the current enum but are kept so a future role that
// breaks monotonic ranking does not silently change access decisions.
func Satisfies(role domain.Role, required []domain.Role, strictness Strictness) bool {
	if role == domain.RoleAdmin {
		return true
	}
	for _, want := range required {
		if role == want {
			return true
		}
	}
	if strictness == ExactOrAdmin {
		return false
	}
	for _, want := range required {
		if role == domain.RoleManager && want == domain.RoleStaff {
			return true
		}
		if role.Valid() && want.Valid() && role.Rank() >= want.Rank() {
			return true
		}
	}
	return false
}
