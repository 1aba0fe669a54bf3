package dto

type ApplicationCreateRequest struct {
	CourseID      *uint `json:"course_id,omitempty"`
	UniversityID  *uint `json:"university_id,omitempty"`
	DestinationID *uint `json:"destination_id,omitempty"`
}

type ApplicationDecision struct {
	Status string `json:"status" validate:"required,oneof=under_review approved rejected"`
	Note   string `json:"note"`
}

// ApplicationOverride is the explicit admin path that may move a status
// backward. It never runs through the forward transition table.
type ApplicationOverride struct {
	Status string `json:"status" validate:"required,oneof=pending under_review approved rejected"`
	Note   string `json:"note" validate:"required"`
}

type ApplicationResponse struct {
	ID            uint    `json:"id"`
	StudentEmail  string  `json:"student_email"`
	CourseID      *uint   `json:"course_id,omitempty"`
	UniversityID  *uint   `json:"university_id,omitempty"`
	DestinationID *uint   `json:"destination_id,omitempty"`
	Status        string  `json:"status"`
	ReviewNote    *string `json:"review_note,omitempty"`
	CreatedAt     string  `json:"created_at"`
}
