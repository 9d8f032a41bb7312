// File: models/session.go
package models

// Session is the role-tagged current-user record the identity store persists.
// Exactly one of Tourist or Provider is set, selected by Role.
type Session struct {
	Role     UserRole         `json:"role"`
	Tourist  *Tourist         `json:"tourist,omitempty"`
	Provider *ServiceProvider `json:"provider,omitempty"`
}

// Account returns the shared identity fields of whichever shape is set, or nil
// for a malformed session.
func (s *Session) Account() *User {
	if s == nil {
		return nil
	}
	switch {
	case s.Tourist != nil:
		return &s.Tourist.User
	case s.Provider != nil:
		return &s.Provider.User
	}
	return nil
}
