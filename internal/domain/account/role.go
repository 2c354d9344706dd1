package account

import "fmt"

// Role is the closed set of account roles. Adding a role requires updating
// the exhaustive switches in the access policy.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleReader Role = "reader"
)

var roleLabels = map[Role]string{
	RoleAdmin:  "Admin",
	RoleEditor: "Editor",
	RoleReader: "Reader",
}

// IsValid reports whether the role belongs to the closed set.
func (r Role) IsValid() bool {
	_, ok := roleLabels[r]
	return ok
}

// Label returns the display label of the role.
func (r Role) Label() string {
	return roleLabels[r]
}

func (r Role) String() string {
	return string(r)
}

// IsAdmin reports whether the role is Admin.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// IsReader reports whether the role is Reader. Readers own exactly one Plan.
func (r Role) IsReader() bool {
	return r == RoleReader
}

// CanAuthorArticles reports whether accounts with this role may create articles.
func (r Role) CanAuthorArticles() bool {
	return r == RoleAdmin || r == RoleEditor
}

// ParseRole converts a storage value into a Role.
func ParseRole(raw string) (Role, error) {
	r := Role(raw)
	if !r.IsValid() {
		return "", fmt.Errorf("unknown role: %q", raw)
	}
	return r, nil
}
