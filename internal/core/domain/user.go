package domain

// RoleAdmin is the role of the seeded administrator.
const RoleAdmin = "admin"

// User represents a user allowed to log in.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
	Role         string `json:"role"`
}
