package model

// Role is the authorization role assigned by the backend.
// Kept in string form so it persists cleanly in the session store.
type Role string

const (
	RoleUser       Role = "USER"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// User mirrors the account record the backend returns on login and
// from /api/users/me.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FullName  string `json:"fullname"`
	Avatar    string `json:"avatar"`
	Role      Role   `json:"role"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"createdAt"`
}
