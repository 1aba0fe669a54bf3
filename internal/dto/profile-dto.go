package dto

import "time"

// ProfileSectionUpdate is a PATCH-style save of one or more profile
// sections. Nil groups are left untouched.
type ProfileSectionUpdate struct {
	Personal    *PersonalSection    `json:"personal,omitempty"`
	Contact     *ContactSection     `json:"contact,omitempty"`
	Passport    *PassportSection    `json:"passport,omitempty"`
	Education   []EducationInput    `json:"education,omitempty"`
	EnglishTest *EnglishTestSection `json:"english_test,omitempty"`
	Preferences *PreferencesSection `json:"study_preferences,omitempty"`
	Sponsor     *SponsorSection     `json:"sponsor,omitempty"`
	Emergency   *EmergencySection   `json:"emergency_contact,omitempty"`
}

type PersonalSection struct {
	FirstName   string     `json:"first_name" validate:"required"`
	LastName    string     `json:"last_name" validate:"required"`
	DateOfBirth *time.Time `json:"date_of_birth" validate:"required"`
	Nationality string     `json:"nationality" validate:"required"`
}

type ContactSection struct {
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	Country string `json:"country" validate:"required"`
}

type PassportSection struct {
	PassportNumber string     `json:"passport_number" validate:"required"`
	PassportExpiry *time.Time `json:"passport_expiry" validate:"required"`
}

type EducationInput struct {
	Institution   string `json:"institution" validate:"required"`
	Qualification string `json:"qualification" validate:"required"`
	YearCompleted int    `json:"year_completed" validate:"required,gte=1950"`
	Grade         string `json:"grade"`
}

type EnglishTestSection struct {
	TestType string     `json:"test_type" validate:"required,oneof=IELTS TOEFL PTE DUOLINGO"`
	Score    *float64   `json:"score" validate:"required"`
	TestDate *time.Time `json:"test_date,omitempty"`
}

type PreferencesSection struct {
	Country string `json:"country" validate:"required"`
	Course  string `json:"course" validate:"required"`
	Intake  string `json:"intake"`
}

type SponsorSection struct {
	Name     string `json:"name" validate:"required"`
	Relation string `json:"relation" validate:"required"`
}

type EmergencySection struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

type ProfileStatusResponse struct {
	Status      string     `json:"status"`
	Progress    int        `json:"progress"`
	Locked      bool       `json:"locked"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
}
