package domain

// Claims are the identity attributes carried in a signed session token. The
// token is not stored server-side: validity is the signature plus an active
// check against the user directory on every authenticated request.
type Claims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// IsAdmin reports whether the claims carry the admin role.
func (c Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}
