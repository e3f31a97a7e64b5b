/**
 * @description
 * This file computes the navigation menu for a role as a pure function. The
 * legacy client derived its menu from a shared mutable profile object; here the
 * menu is a value of the role and nothing else.
 */

package domain

// MenuItem is one entry in a role's navigation menu.
type MenuItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// NavigationFor returns the menu for the given role. Unknown roles get an empty
// menu rather than a default one.
func NavigationFor(role Role) []MenuItem {
	switch role {
	case RoleEmployee:
		return []MenuItem{
			{Label: "Browse Jobs", Path: "/jobs"},
			{Label: "My Applications", Path: "/applications"},
			{Label: "Subscription", Path: "/subscription"},
			{Label: "Profile", Path: "/profile"},
		}
	case RoleEmployer:
		return []MenuItem{
			{Label: "My Jobs", Path: "/jobs"},
			{Label: "Post a Job", Path: "/jobs/new"},
			{Label: "Applicants", Path: "/applicants"},
			{Label: "Profile", Path: "/profile"},
		}
	case RoleAdmin:
		return []MenuItem{
			{Label: "Jobs", Path: "/admin/jobs"},
			{Label: "Users", Path: "/admin/users"},
			{Label: "Subscriptions", Path: "/admin/subscriptions"},
		}
	}
	return nil
}
