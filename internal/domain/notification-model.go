package domain

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type NotificationType string

const (
	NotifInfo    NotificationType = "info"
	NotifSuccess NotificationType = "success"
	NotifWarning NotificationType = "warning"
	NotifError   NotificationType = "error"
)

type NotificationCategory string

const (
	CategoryApplication    NotificationCategory = "application"
	CategoryCounselling    NotificationCategory = "counselling"
	CategoryContact        NotificationCategory = "contact"
	CategoryJobApplication NotificationCategory = "job_application"
	CategorySystem         NotificationCategory = "system"
	CategoryGeneral        NotificationCategory = "general"
)

func ValidNotificationCategory(c NotificationCategory) bool {
	switch c {
	case CategoryApplication, CategoryCounselling, CategoryContact,
		CategoryJobApplication, CategorySystem, CategoryGeneral:
		return true
	}
	return false
}

// Notification rows are created by the notifier worker from domain events.
// Clients only flip is_read (false -> true, never back) or delete.
type Notification struct {
	ID             uint                 `gorm:"primaryKey" json:"id"`
	UserID         uint                 `gorm:"index;not null" json:"user_id"`
	Title          string               `gorm:"not null" json:"title"`
	Message        string               `gorm:"type:text" json:"message"`
	Type           NotificationType     `gorm:"type:varchar(10);not null;default:info" json:"type"`
	Category       NotificationCategory `gorm:"type:varchar(20);not null;default:general;index" json:"category"`
	ReferenceID    *uint                `json:"reference_id,omitempty"`
	ReferenceTable string               `gorm:"type:varchar(40)" json:"reference_table,omitempty"`
	Metadata       datatypes.JSON       `json:"metadata,omitempty"`
	IsRead         bool                 `gorm:"default:false;index" json:"is_read"`
	ReadAt         *time.Time           `json:"read_at,omitempty"`
	gorm.Model
}
