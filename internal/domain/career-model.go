package domain

import "gorm.io/gorm"

type Career struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Department  string `json:"department"`
	Location    string `json:"location"`
	JobType     string `gorm:"type:varchar(20)" json:"job_type"` // full_time / part_time / contract
	Description string `gorm:"type:text" json:"description"`
	Publishable
	gorm.Model
}

type JobApplication struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	CareerID       uint    `gorm:"index;not null" json:"career_id"`
	ApplicantName  string  `gorm:"not null" json:"applicant_name"`
	ApplicantEmail string  `gorm:"index;not null" json:"applicant_email"`
	Phone          string  `json:"phone"`
	CoverLetter    string  `gorm:"type:text" json:"cover_letter"`
	CVURL          string  `gorm:"not null" json:"cv_url"`
	Status         ApplicationStatus `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	ReviewNote     *string `json:"review_note,omitempty"`
	gorm.Model
}
