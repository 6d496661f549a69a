package actor

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role is a capability, not a position in a class hierarchy: students own
// carts and registrations, instructors review exception requests for their
// offerings, registrars administer capacity.
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleRegistrar  Role = "registrar"
)

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStudent, RoleInstructor, RoleRegistrar:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

func (r Role) String() string {
	return string(r)
}
