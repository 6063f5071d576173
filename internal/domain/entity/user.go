// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role represents a user's capability level. Roles are strictly ordered:
// Admin ⊇ Editor ⊇ Viewer.
type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleEditor Role = "Editor"
	RoleViewer Role = "Viewer"
)

// roleRank maps roles to their position in the capability order.
var roleRank = map[Role]int{
	RoleViewer: 0,
	RoleEditor: 1,
	RoleAdmin:  2,
}

// AtLeast reports whether the role grants at least the capabilities of min.
func (r Role) AtLeast(min Role) bool {
	return roleRank[r] >= roleRank[min]
}

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// User represents an account in the bookkeeping system.
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Role      Role
	Avatar    string // optional avatar URL
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser creates a new User entity.
func NewUser(name, email string, role Role, avatar string) *User {
	now := time.Now().UTC()
	return &User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Role:      role,
		Avatar:    avatar,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Actor identifies the user performing an operation, carrying just enough
// state for permission checks in the application layer.
type Actor struct {
	UserID uuid.UUID
	Name   string
	Role   Role
}
