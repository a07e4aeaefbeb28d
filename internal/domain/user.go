package domain

import "time"

// User roles.
const (
	RoleAssociate = "Associate"
	RolePartner   = "Partner"
	RoleAdmin     = "Admin"
)

// User is one authenticated account. PasswordHash never leaves the server.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// ValidRole reports whether r is a known user role.
func ValidRole(r string) bool {
	return r == RoleAssociate || r == RolePartner || r == RoleAdmin
}

// SignupRequest registers a new account.
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
}

// SigninRequest authenticates an existing account.
type SigninRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the session token and the authenticated user.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
