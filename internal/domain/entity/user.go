package entity

import "time"

// User roles.
const (
	RoleAdmin = "admin"
)

// User is a console operator. The practice has a single firm, so users
// carry no tenant reference.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
