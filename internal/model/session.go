package model

// Session is the authenticated identity restored from the session store
// for the duration of one request. Token present means authenticated;
// the flags below are derived, never stored.
type Session struct {
	Token string
	User  *User
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}

func (s Session) Admin() bool {
	if s.User == nil {
		return false
	}
	return s.User.Role == RoleAdmin || s.User.Role == RoleSuperAdmin
}

// Toast is a transient notification shown once on the next rendered page.
type Toast struct {
	Severity string
	Summary  string
	Detail   string
}
