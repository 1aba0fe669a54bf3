package domain

import (
	"time"

	"gorm.io/gorm"
)

type RegistrationStatus string

const (
	RegistrationPending   RegistrationStatus = "pending"
	RegistrationConfirmed RegistrationStatus = "confirmed"
	RegistrationCancelled RegistrationStatus = "cancelled"
)

// CanTransition: pending -> confirmed, and cancelled is reachable from both
// pending and confirmed. Cancelled is terminal.
func (s RegistrationStatus) CanTransition(to RegistrationStatus) bool {
	switch s {
	case RegistrationPending:
		return to == RegistrationConfirmed || to == RegistrationCancelled
	case RegistrationConfirmed:
		return to == RegistrationCancelled
	default:
		return false
	}
}

type Event struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Venue       string     `json:"venue"`
	StartsAt    *time.Time `json:"starts_at,omitempty"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
	ImageURL    string     `json:"image_url"`
	Publishable
	gorm.Model
}

type EventRegistration struct {
	ID      uint               `gorm:"primaryKey" json:"id"`
	EventID uint               `gorm:"index;not null" json:"event_id"`
	Name    string             `gorm:"not null" json:"name"`
	Email   string             `gorm:"index;not null" json:"email"`
	Phone   string             `json:"phone"`
	Message string             `gorm:"type:text" json:"message"`
	Status  RegistrationStatus `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	gorm.Model
}
