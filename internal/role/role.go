// Package role derives coarse capabilities from the signed-in user.
package role

import (
	"volunteerHub/internal/models"
)

// Role is ordered: Volunteer < Manager < Admin.
type Role int

const (
	None      Role = 0
	Volunteer Role = 1
	Manager   Role = 2
	Admin     Role = 3
)

var names = map[string]Role{
	"ROLE_VOLUNTEER": Volunteer,
	"ROLE_MANAGER":   Manager,
	"ROLE_ADMIN":     Admin,
}

func (r Role) String() string {
	switch r {
	case Volunteer:
		return "volunteer"
	case Manager:
		return "manager"
	case Admin:
		return "admin"
	default:
		return "none"
	}
}

// Of returns the user's role from its id, or from its name when the id is
// missing or unknown.
func Of(u *models.User) Role {
	if u == nil {
		return None
	}

	if r := Role(u.Role.ID); r >= Volunteer && r <= Admin {
		return r
	}

	return names[u.Role.Name]
}

type Capabilities struct {
	Role        Role
	IsVolunteer bool
	IsManager   bool
	IsAdmin     bool
}

func Resolve(u *models.User) Capabilities {
	r := Of(u)

	return Capabilities{
		Role:        r,
		IsVolunteer: r == Volunteer,
		IsManager:   r == Manager,
		IsAdmin:     r == Admin,
	}
}

// Accepts is exact-match: an admin is not accepted where Manager is required.
func (c Capabilities) Accepts(r Role) bool {
	return c.Role != None && c.Role == r
}

// AtLeast compares along Volunteer < Manager < Admin.
func (c Capabilities) AtLeast(r Role) bool {
	return c.Role != None && c.Role >= r
}

// CanManage gates the manager dashboard and its navigation link.
func (c Capabilities) CanManage() bool {
	return c.AtLeast(Manager)
}
