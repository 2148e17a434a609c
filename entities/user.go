package entities

import "time"

const (
	RoleFarmer     = "farmer"
	RoleNGO        = "ngo"
	RoleDonor      = "donor"
	RoleGovernment = "government"
	RoleAdmin      = "admin"
)

// ValidRole reports whether r is one of the recognised account roles.
func ValidRole(r string) bool {
	switch r {
	case RoleFarmer, RoleNGO, RoleDonor, RoleGovernment, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"not null;default:farmer" json:"role"`
	FullName     string    `json:"full_name"`
	Organization string    `json:"organization"`
	Phone        string    `json:"phone"`
	CreatedAt    time.Time `json:"created_at"`
}

func (User) TableName() string { return "users" }

// RevokedToken marks a bearer token id as logged out until it would have expired anyway.
type RevokedToken struct {
	JTI       string    `gorm:"primaryKey;size:64"`
	ExpiresAt time.Time `gorm:"index"`
}

func (RevokedToken) TableName() string { return "revoked_tokens" }
