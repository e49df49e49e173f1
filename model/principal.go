package model

type Role string

const (
	RoleParent  Role = "parent"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleParent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

// IsModerator reports whether the role may moderate content (pin, hide, delete-any)
func (r Role) IsModerator() bool {
	return r == RoleTeacher || r == RoleAdmin
}

// Principal holds the acting identity supplied by the identity provider.
// Role and DisplayName come from token claims, not from a profile lookup.
type Principal struct {
	Id          string `json:"id"`
	Role        Role   `json:"role"`
	DisplayName string `json:"displayName"`
}

func (p *Principal) IsModerator() bool {
	return p != nil && p.Role.IsModerator()
}

func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}
