package dto

type JobApplicationInput struct {
	CareerID       uint   `json:"career_id" form:"career_id" validate:"required"`
	ApplicantName  string `json:"applicant_name" form:"applicant_name" validate:"required,min=2"`
	ApplicantEmail string `json:"applicant_email" form:"applicant_email" validate:"required,email"`
	Phone          string `json:"phone" form:"phone"`
	CoverLetter    string `json:"cover_letter" form:"cover_letter"`
}

type JobApplicationReview struct {
	Status string `json:"status" validate:"required,oneof=under_review approved rejected"`
	Note   string `json:"note"`
}
