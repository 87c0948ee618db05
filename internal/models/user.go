package models

// Role is the closed set of council positions. Handlers never compare
// role strings directly; they go through Can.
type Role string

const (
	RolePresident     Role = "President"
	RoleVicePresident Role = "Vice President"
	RoleSecretary     Role = "Secretary"
	RoleTreasurer     Role = "Treasurer"
	RoleMember        Role = "Member"
)

type Capability int

const (
	CapManageMinutes Capability = iota
	CapArchiveMeetings
)

var roleCapabilities = map[Role][]Capability{
	RoleSecretary: {CapManageMinutes, CapArchiveMeetings},
}

func (r Role) Can(cap Capability) bool {
	for _, c := range roleCapabilities[r] {
		if c == cap {
			return true
		}
	}
	return false
}

type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	StudentID string `json:"studentId,omitempty"`
	Avatar    string `json:"avatar"`
	Password  string `json:"-"`
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Identity is the caller attached to the request context by the auth
// middleware. For tokens whose subject is not in the user collection the
// role falls back to Member.
type Identity struct {
	ID    int64
	Email string
	Name  string
	Role  Role
}
