package domain

import (
	"time"

	"gorm.io/gorm"
)

type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationUnderReview ApplicationStatus = "under_review"
	ApplicationApproved    ApplicationStatus = "approved"
	ApplicationRejected    ApplicationStatus = "rejected"
)

func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationPending, ApplicationUnderReview, ApplicationApproved, ApplicationRejected:
		return true
	}
	return false
}

// CanTransition is the forward transition table:
// pending -> under_review -> {approved, rejected}.
// Anything else needs an explicit admin override.
func (s ApplicationStatus) CanTransition(to ApplicationStatus) bool {
	switch s {
	case ApplicationPending:
		return to == ApplicationUnderReview
	case ApplicationUnderReview:
		return to == ApplicationApproved || to == ApplicationRejected
	default:
		return false
	}
}

// Application links a student (by email) to a course at a university in a
// destination country.
type Application struct {
	ID            uint              `gorm:"primaryKey" json:"id"`
	UserID        uint              `gorm:"index;not null" json:"user_id"`
	StudentEmail  string            `gorm:"index;not null" json:"student_email"`
	CourseID      *uint             `json:"course_id,omitempty"`
	UniversityID  *uint             `json:"university_id,omitempty"`
	DestinationID *uint             `json:"destination_id,omitempty"`
	Status        ApplicationStatus `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	ReviewedBy    *uint             `json:"reviewed_by,omitempty"`
	ReviewNote    *string           `json:"review_note,omitempty"`
	ReviewedAt    *time.Time        `json:"reviewed_at,omitempty"`
	gorm.Model
}
