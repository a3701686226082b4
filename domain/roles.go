package domain

// Role is the closed set of account roles. Every route constraint and
// landing decision is expressed in terms of these two values; a missing or
// unresolvable role is RoleNone.
type Role string

const (
	RolePatient      Role = "patient"
	RolePractitioner Role = "practitioner"

	// RoleNone marks an authenticated account whose profile row is missing
	// or could not be fetched. Such accounts are never authorized for a
	// role-constrained route.
	RoleNone Role = ""
)

const (
	PatientLanding      = "/patient-dashboard"
	PractitionerLanding = "/practitioner-dashboard"
)

// ParseRole validates a role string coming from a request or a config file.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RolePatient:
		return RolePatient, nil
	case RolePractitioner:
		return RolePractitioner, nil
	default:
		return RoleNone, ErrInvalidRole
	}
}

// Valid reports whether r is one of the two real roles.
func (r Role) Valid() bool {
	return r == RolePatient || r == RolePractitioner
}

// LandingPath is the single place that maps a role to its dashboard.
// Practitioners land on the practitioner dashboard; everyone else, including
// role-less accounts, lands on the patient dashboard.
func (r Role) LandingPath() string {
	if r == RolePractitioner {
		return PractitionerLanding
	}
	return PatientLanding
}

// Subject is the policy-store subject for r. Policies are keyed by role,
// never by individual account, so the subject namespace is just the prefixed
// enum.
func (r Role) Subject() string {
	return "role_" + string(r)
}

// In reports whether r is a member of the allowed set. An empty set admits
// any real role.
func (r Role) In(allowed []Role) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}
