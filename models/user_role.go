package models

type UserRole string

const (
	AdminRole     UserRole = "admin"
	SuperUserRole UserRole = "super_user"
	PlainUserRole UserRole = "user"
)

var roleHumanName = map[UserRole]string{
	AdminRole:     "Administrador",
	SuperUserRole: "Superusuario",
	PlainUserRole: "Usuario",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

// IsPrivileged reports whether the role bypasses assignment checks.
func (r UserRole) IsPrivileged() bool {
	return r == AdminRole || r == SuperUserRole
}
