// Package model defines database models
package model

import "time"

type Role string

const (
	RoleTenant    Role = "Tenant"
	RoleLandlord  Role = "Landlord"
	RoleDeveloper Role = "Developer"
	RoleAgent     Role = "Agent"
	RoleAdmin     Role = "Admin"
)

// Valid reports whether r is one of the five known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleTenant, RoleLandlord, RoleDeveloper, RoleAgent, RoleAdmin:
		return true
	}
	return false
}

// CanManageListings reports whether r is allowed to create and
// manage property listings
func (r Role) CanManageListings() bool {
	return r == RoleLandlord || r == RoleDeveloper || r == RoleAgent
}

type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"unique;not null" json:"email"`
	Phone        string    `gorm:"unique;not null" json:"phone"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         Role      `gorm:"not null" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Properties []Property `gorm:"foreignKey:UserID" json:"-"`
}

// UserSummary is the outward-facing shape of a user. The password
// hash never leaves the database layer
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  Role   `json:"role"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
		Role:  u.Role,
	}
}
