package domain

import "time"

type UserRole string

const (
	RoleClient UserRole = "user"
	RoleAdmin  UserRole = "admin"
)

type User struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Role      UserRole
	Phone     string
	AvatarURL string
	Addresses []Address
	CreatedAt time.Time
}
