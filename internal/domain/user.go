/**
 * @description
 * This file defines the Role enum for the three kinds of platform accounts and
 * the User summary the admin views work from. Role is parsed once at the session
 * boundary and passed explicitly; nothing in the codebase branches on shared
 * mutable profile state.
 */

package domain

import "fmt"

// Role enumerates the account kinds the platform distinguishes.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleEmployer Role = "employer"
	RoleAdmin    Role = "admin"
)

// ParseRole converts a raw claim value into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleEmployee, RoleEmployer, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// User is the account summary surfaced to admin views.
type User struct {
	ID             int64  `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Username       string `json:"username"`
	Email          string `json:"email,omitempty"`
	Role           Role   `json:"role"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}
