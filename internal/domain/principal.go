package domain

// Role enumerates the access roles carried in token claims.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleUser    Role = "USUARIO"
	RoleSupport Role = "SUPORTE"
)

// ValidRole reports whether r belongs to the closed role set.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleUser, RoleSupport:
		return true
	}
	return false
}

// Principal is the authenticated caller reconstructed from a verified
// token on every request. It is never persisted; its fields are the single
// source of truth for authorship and ownership metadata.
type Principal struct {
	SubjectID int64
	Email     string
	Role      Role
	SectorID  int64
	Title     string
}
