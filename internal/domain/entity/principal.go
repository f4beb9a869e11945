package entity

// Principal is the authenticated identity behind a request.
// It is built from verified token claims and passed explicitly to every
// authorization decision.
type Principal struct {
	UserID   int64
	Username string
	Role     Role
}

// IsAdmin reports whether the principal holds the elevated role.
func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }
