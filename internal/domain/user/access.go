package user

// Identity is the caller resolved from a verified access token.
type Identity struct {
	UserID   string
	Username string
	Role     Role
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// CanAccess reports whether identity may mutate a record owned by ownerID.
// Owners always may; admins may act on any record.
func CanAccess(identity Identity, ownerID string) bool {
	if identity.UserID == "" {
		return false
	}
	return identity.UserID == ownerID || identity.IsAdmin()
}

// IsValidRole checks the role against the known set
func IsValidRole(role Role) bool {
	return role == RoleUser || role == RoleAdmin
}
