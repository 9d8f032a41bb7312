// File: models/user.go
package models

import "time"

// UserRole tags the three account kinds on the platform.
type UserRole string

const (
	RoleTourist  UserRole = "tourist"
	RoleProvider UserRole = "provider"
	RoleAdmin    UserRole = "admin"
)

// User carries the identity fields shared by every account. Role is fixed at
// creation and never changes afterwards.
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       UserRole  `json:"role"`
	Avatar     string    `json:"avatar,omitempty"`
	Language   string    `json:"language,omitempty"`
	JoinedDate time.Time `json:"joinedDate"`
}

// Tourist is a visitor account. Bookings is a derived view over the canonical
// booking collection and must never be mutated directly.
type Tourist struct {
	User
	MarhabaPassID string    `json:"marhabaPassId"`
	Bookings      []Booking `json:"bookings"`
	Favorites     []string  `json:"favorites"` // favorited experience IDs
}

// ServiceProvider is a host account publishing experiences. Experiences is a
// derived view over the canonical experience collection.
type ServiceProvider struct {
	User
	Bio         string       `json:"bio,omitempty"`
	Languages   []string     `json:"languages"`
	Location    string       `json:"location"`
	Verified    bool         `json:"verified"`
	Experiences []Experience `json:"experiences"`
}
