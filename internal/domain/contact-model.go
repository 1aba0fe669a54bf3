package domain

import "gorm.io/gorm"

type ContactMessage struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `gorm:"type:text;not null" json:"message"`
	gorm.Model
}

type CounsellingRequest struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	Name             string `gorm:"not null" json:"name"`
	Email            string `gorm:"not null" json:"email"`
	Phone            string `json:"phone"`
	PreferredCountry string `json:"preferred_country"`
	StudyLevel       string `json:"study_level"`
	Message          string `gorm:"type:text" json:"message"`
	Status           RegistrationStatus `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	gorm.Model
}
