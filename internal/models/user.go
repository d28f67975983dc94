package models

// User is the identity attached to a request. Accounts live outside this
// service, so only the id and the group memberships carried by the bearer
// token are known.
type User struct {
	ID     string   `json:"id"`
	Groups []string `json:"groups"`
}

// InGroup reports whether the user is a member of group.
func (u *User) InGroup(group string) bool {
	if u == nil {
		return false
	}
	for _, g := range u.Groups {
		if g == group {
			return true
		}
	}
	return false
}
