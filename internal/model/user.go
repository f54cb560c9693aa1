package model

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an account record and doubles as the authentication principal.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"` // Never expose the hash in JSON responses
	IsActive     bool      `json:"is_active"`
	IsStaff      bool      `json:"-"`
	IsSuperuser  bool      `json:"-"`
	Created      time.Time `json:"created"`
	Updated      time.Time `json:"updated"`
}

// Role maps the staff/superuser flags onto the serialized role names.
func (u *User) Role() string {
	if u.IsStaff && u.IsSuperuser {
		return RoleAdmin
	}
	return RoleUser
}

// Profile is the public projection of an account.
type Profile struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Profile returns the representation served on /users and /users/me.
func (u *User) Profile() Profile {
	return Profile{Email: u.Email, Name: u.Name}
}

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=5"`
}

// LoginRequest is the payload for obtaining a token.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest carries a partial profile update. Pointers distinguish
// "leave unchanged" from "set to zero value".
type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Name     *string `json:"name,omitempty"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=5"`
}

// ReplaceUserRequest is the full-update payload for PUT /users/me.
type ReplaceUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=5"`
}
