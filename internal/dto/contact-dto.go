package dto

type ContactRequest struct {
	Name           string `json:"name" validate:"required,min=2"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone"`
	Subject        string `json:"subject"`
	Message        string `json:"message" validate:"required,min=10"`
	RecaptchaToken string `json:"recaptcha_token"`
}

type CounsellingRequestInput struct {
	Name             string `json:"name" validate:"required,min=2"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone" validate:"required"`
	PreferredCountry string `json:"preferred_country" validate:"required"`
	StudyLevel       string `json:"study_level" validate:"omitempty,oneof=diploma bachelor master phd"`
	Message          string `json:"message"`
	RecaptchaToken   string `json:"recaptcha_token"`
}
