package domain

import (
	"time"

	"gorm.io/gorm"
)

type ProfileStatus string

const (
	ProfileInvited              ProfileStatus = "invited"
	ProfileIncomplete           ProfileStatus = "profile_incomplete"
	ProfileCompleted            ProfileStatus = "profile_completed"
	ProfileApplicationSubmitted ProfileStatus = "application_submitted"
)

// rank orders the derived statuses so saves never move a profile backward.
func (s ProfileStatus) rank() int {
	switch s {
	case ProfileIncomplete:
		return 1
	case ProfileCompleted:
		return 2
	case ProfileApplicationSubmitted:
		return 3
	default:
		return 0
	}
}

func (s ProfileStatus) Locked() bool {
	return s == ProfileApplicationSubmitted
}

type StudentProfile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	// personal
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Nationality string     `json:"nationality"`

	// contact
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`

	// passport
	PassportNumber string     `json:"passport_number"`
	PassportExpiry *time.Time `json:"passport_expiry,omitempty"`

	// english test
	EnglishTestType  string   `gorm:"type:varchar(20)" json:"english_test_type"` // IELTS / TOEFL / PTE
	EnglishTestScore *float64 `json:"english_test_score,omitempty"`
	EnglishTestDate  *time.Time `json:"english_test_date,omitempty"`

	// study preferences
	PreferredCountry string `json:"preferred_country"`
	PreferredCourse  string `json:"preferred_course"`
	PreferredIntake  string `json:"preferred_intake"`

	// sponsor
	SponsorName     string `json:"sponsor_name"`
	SponsorRelation string `json:"sponsor_relation"`

	// emergency contact
	EmergencyName  string `json:"emergency_name"`
	EmergencyPhone string `json:"emergency_phone"`

	Education []EducationRecord `gorm:"constraint:OnDelete:CASCADE" json:"education,omitempty"`
	Documents []ProfileDocument `gorm:"constraint:OnDelete:CASCADE" json:"documents,omitempty"`

	Status      ProfileStatus `gorm:"type:varchar(30);not null;default:invited" json:"status"`
	SubmittedAt *time.Time    `json:"submitted_at,omitempty"` // set once, never cleared

	gorm.Model
}

// EducationRecord is one entry of the ordered education history.
type EducationRecord struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	StudentProfileID uint   `gorm:"index;not null" json:"student_profile_id"`
	SortOrder        int    `gorm:"not null" json:"sort_order"`
	Institution      string `json:"institution"`
	Qualification    string `json:"qualification"`
	YearCompleted    int    `json:"year_completed"`
	Grade            string `json:"grade"`
}

type ProfileDocument struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	StudentProfileID uint   `gorm:"index;not null" json:"student_profile_id"`
	DocType          string `gorm:"type:varchar(30)" json:"doc_type"` // passport / transcript / test_report / other
	FileURL          string `json:"file_url"`
}

// section names used by the progress computation
const (
	SectionPersonal    = "personal"
	SectionContact     = "contact"
	SectionPassport    = "passport"
	SectionEducation   = "education"
	SectionEnglishTest = "english_test"
	SectionPreferences = "study_preferences"
)

// requiredSections are the field groups that must be non-empty for the
// profile to count as completed. Sponsor, emergency contact and documents
// are optional and do not gate progress.
var requiredSections = []string{
	SectionPersonal,
	SectionContact,
	SectionPassport,
	SectionEducation,
	SectionEnglishTest,
	SectionPreferences,
}

// SectionComplete reports whether every required field of the named group is
// filled in.
func (p *StudentProfile) SectionComplete(section string) bool {
	switch section {
	case SectionPersonal:
		return p.FirstName != "" && p.LastName != "" && p.DateOfBirth != nil && p.Nationality != ""
	case SectionContact:
		return p.Phone != "" && p.Address != "" && p.City != "" && p.Country != ""
	case SectionPassport:
		return p.PassportNumber != "" && p.PassportExpiry != nil
	case SectionEducation:
		return len(p.Education) > 0
	case SectionEnglishTest:
		return p.EnglishTestType != "" && p.EnglishTestScore != nil
	case SectionPreferences:
		return p.PreferredCountry != "" && p.PreferredCourse != ""
	default:
		return false
	}
}

// CalculateProgress returns the fraction (0..100) of required sections that
// are complete.
func (p *StudentProfile) CalculateProgress() int {
	done := 0
	for _, s := range requiredSections {
		if p.SectionComplete(s) {
			done++
		}
	}
	return done * 100 / len(requiredSections)
}

// StatusFromProgress derives the status a profile's field completeness
// supports. It never yields application_submitted; that state is reachable
// only through an explicit submit.
func StatusFromProgress(progress int) ProfileStatus {
	switch {
	case progress >= 100:
		return ProfileCompleted
	case progress > 0:
		return ProfileIncomplete
	default:
		return ProfileInvited
	}
}

// NextProfileStatus recomputes the derived status after a section save.
// The result never ranks below current: completeness only moves the profile
// forward, and a submitted profile stays submitted.
func NextProfileStatus(current ProfileStatus, progress int) ProfileStatus {
	derived := StatusFromProgress(progress)
	if derived.rank() > current.rank() {
		return derived
	}
	return current
}
