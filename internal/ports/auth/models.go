package auth

// Role define los roles que maneja la plataforma.
// @Enum user, shelter, admin
type Role string

const (
	RoleUser    Role = "user"
	RoleShelter Role = "shelter"
	RoleAdmin   Role = "admin"
)

// Claims representa la información extraída del token.
type Claims struct {
	UserID string
	Email  string
	Role   Role
}

// IsAdmin es un atajo para los checks de override administrativo.
func (c Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}
