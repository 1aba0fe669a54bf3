package dto

// Queue event payloads. Keys name the event; the notifier consumer fans each
// one out into notification rows for its audience.

const (
	EventUserRegistered       = "user.registered"
	EventApplicationSubmitted = "application.submitted"
	EventApplicationDecided   = "application.decided"
	EventProfileSubmitted     = "profile.submitted"
	EventContactReceived      = "contact.received"
	EventCounsellingRequested = "counselling.requested"
	EventJobApplicationSent   = "job_application.received"
	EventEventRegistration    = "event.registration"
)

type UserRegisteredEvent struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type ApplicationSubmittedEvent struct {
	ApplicationID uint   `json:"application_id"`
	UserID        uint   `json:"user_id"`
	StudentEmail  string `json:"student_email"`
}

type ApplicationDecidedEvent struct {
	ApplicationID uint   `json:"application_id"`
	UserID        uint   `json:"user_id"`
	Status        string `json:"status"`
	Note          string `json:"note,omitempty"`
}

type ProfileSubmittedEvent struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
}

type ContactReceivedEvent struct {
	ContactID uint   `json:"contact_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject,omitempty"`
}

type CounsellingRequestedEvent struct {
	RequestID        uint   `json:"request_id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	PreferredCountry string `json:"preferred_country,omitempty"`
}

type JobApplicationEvent struct {
	JobApplicationID uint   `json:"job_application_id"`
	CareerID         uint   `json:"career_id"`
	ApplicantName    string `json:"applicant_name"`
	ApplicantEmail   string `json:"applicant_email"`
}

type EventRegistrationEvent struct {
	RegistrationID uint   `json:"registration_id"`
	EventID        uint   `json:"event_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
}
