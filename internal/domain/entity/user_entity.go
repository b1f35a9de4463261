package entity

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the flat authorization role stored on a user.
type Role string

const (
	RoleParent Role = "parent"
	RoleDoctor Role = "doctor"
	RoleAdmin  Role = "admin"
)

// NormalizeRole lowercases and trims a caller-supplied role string.
func NormalizeRole(s string) Role {
	return Role(strings.ToLower(strings.TrimSpace(s)))
}

// Valid reports whether the role is one of the enumerated values.
func (r Role) Valid() bool {
	return r == RoleParent || r == RoleDoctor || r == RoleAdmin
}

// AllowedForRegistration reports whether the role may be chosen during
// public signup. Admin accounts are only created by the bootstrap seeder.
func (r Role) AllowedForRegistration() bool {
	return r == RoleParent || r == RoleDoctor
}

// User is the aggregate root for the auth domain. PasswordHash holds a
// bcrypt digest and is never serialized to JSON.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName     string             `bson:"fullName" json:"fullName"`
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Role         Role               `bson:"role" json:"role"`
	IsActive     bool               `bson:"isActive" json:"isActive"`
	LastLogin    *time.Time         `bson:"lastLogin" json:"lastLogin"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Profile is the safe projection of a user returned to API callers.
type Profile struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Role     Role   `json:"role"`
}

func (u *User) Profile() Profile {
	return Profile{
		ID:       u.ID.Hex(),
		FullName: u.FullName,
		Email:    u.Email,
		Phone:    u.Phone,
		Role:     u.Role,
	}
}
