package dto

type EventRegistrationInput struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type RegistrationStatusUpdate struct {
	Status string `json:"status" validate:"required,oneof=confirmed cancelled"`
}
