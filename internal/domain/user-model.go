package domain

import "gorm.io/gorm"

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleEditor    Role = "editor"
	RoleCounselor Role = "counselor"
	RoleStudent   Role = "student"
	RoleAgent     Role = "agent"
)

// ValidRole reports whether r is one of the closed role set. The role is
// written once at sign-up (or by an admin) and carried as a JWT claim, so
// every request is gated without a follow-up role lookup.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleCounselor, RoleStudent, RoleAgent:
		return true
	}
	return false
}

// Staff roles may read cross-user admin views.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleEditor || r == RoleCounselor
}

type User struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Email        string  `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string  `json:"-"`
	FullName     string  `json:"full_name"`
	Phone        *string `json:"phone,omitempty"`
	Role         Role    `gorm:"type:varchar(20);not null;default:student" json:"role"`
	Status       string  `gorm:"type:varchar(20);not null;default:active" json:"status"`
	gorm.Model
}
