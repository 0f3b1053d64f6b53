package enums

import "fmt"

// TeamRole scopes what a member can do inside a single team.
type TeamRole string

const (
	TeamRoleAdmin  TeamRole = "admin"
	TeamRoleMember TeamRole = "member"
	TeamRoleViewer TeamRole = "viewer"
)

var validTeamRoles = []TeamRole{
	TeamRoleAdmin,
	TeamRoleMember,
	TeamRoleViewer,
}

// String implements fmt.Stringer.
func (r TeamRole) String() string {
	return string(r)
}

// IsValid reports whether the value is a known TeamRole.
func (r TeamRole) IsValid() bool {
	for _, candidate := range validTeamRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseTeamRole converts raw input into a TeamRole.
func ParseTeamRole(value string) (TeamRole, error) {
	for _, candidate := range validTeamRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid team role %q", value)
}
