// Package entities contains core business entities.
package entities

import "strings"

// UserRole is the job function shown on the users page.
type UserRole string

const (
	RoleDeveloper      UserRole = "Developer"
	RoleDesigner       UserRole = "Designer"
	RoleProductManager UserRole = "Product Manager"
	RoleQAEngineer     UserRole = "QA Engineer"
)

// User is a workspace member.
type User struct {
	ID                int64
	Username          string
	Email             string
	ProfilePictureURL string
	TeamID            *int64
	Role              UserRole
}

// SearchFields returns the values matched by free-text queries.
func (u User) SearchFields() []string {
	return []string{u.Username, u.Email}
}

var userRoles = []UserRole{RoleDeveloper, RoleDesigner, RoleProductManager, RoleQAEngineer}

// ParseUserRole resolves a role name case-insensitively.
func ParseUserRole(s string) (UserRole, bool) {
	s = strings.TrimSpace(s)
	for _, r := range userRoles {
		if strings.EqualFold(string(r), s) {
			return r, true
		}
	}
	return "", false
}
