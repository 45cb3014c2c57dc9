package domain

// Actor is the authenticated user an operation is performed for.
type Actor struct {
	ID   UserID
	Role Role
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }
